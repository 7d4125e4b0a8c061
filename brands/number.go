package brands

import (
	"math"

	iocodec "github.com/reoring/iocodec"
	"github.com/reoring/iocodec/dsl"
)

var (
	// Integer accepts whole numbers, positive or negative.
	Integer = dsl.BrandNumber("Integer", isInteger)

	// PositiveNumber accepts numbers strictly greater than zero.
	PositiveNumber = dsl.BrandNumber("PositiveNumber", func(n float64) bool {
		return n > 0
	})

	// NonNegativeNumber accepts zero and above.
	NonNegativeNumber = dsl.BrandNumber("NonNegativeNumber", func(n float64) bool {
		return n >= 0
	})

	// PositiveInteger accepts whole numbers strictly greater than zero.
	PositiveInteger = dsl.BrandNumber("PositiveInteger", func(n float64) bool {
		return isInteger(n) && n > 0
	})

	// Port accepts whole numbers in 0..65535.
	Port = dsl.BrandNumber("Port", func(n float64) bool {
		return isInteger(n) && n >= 0 && n <= 65535
	})

	// Percentage accepts 0..100 inclusive, fractional values allowed.
	Percentage = dsl.BrandNumber("Percentage", func(n float64) bool {
		return n >= 0 && n <= 100
	})
)

func isInteger(n float64) bool {
	return !math.IsNaN(n) && !math.IsInf(n, 0) && math.Trunc(n) == n
}

func init() {
	iocodec.RegisterTypeMeta("Integer", iocodec.TypeMeta{
		Code:       "INVALID_INTEGER",
		Message:    "Value must be an integer",
		Suggestion: "Provide a whole number",
	})
	iocodec.RegisterTypeMeta("PositiveNumber", iocodec.TypeMeta{
		Code:       "INVALID_NUMBER",
		Message:    "Value must be a positive number",
		Suggestion: "Provide a number greater than zero",
	})
	iocodec.RegisterTypeMeta("NonNegativeNumber", iocodec.TypeMeta{
		Code:       "INVALID_NUMBER",
		Message:    "Value must be a non-negative number",
		Suggestion: "Provide a number of zero or more",
	})
	iocodec.RegisterTypeMeta("PositiveInteger", iocodec.TypeMeta{
		Code:       "INVALID_INTEGER",
		Message:    "Value must be a positive integer",
		Suggestion: "Provide a whole number greater than zero",
	})
	iocodec.RegisterTypeMeta("Port", iocodec.TypeMeta{
		Code:       "INVALID_PORT",
		Message:    "Invalid port number",
		Suggestion: "Provide a whole number between 0 and 65535",
	})
	iocodec.RegisterTypeMeta("Percentage", iocodec.TypeMeta{
		Code:       "INVALID_PERCENTAGE",
		Message:    "Value must be between 0 and 100",
		Suggestion: "Provide a number between 0 and 100",
	})
}
