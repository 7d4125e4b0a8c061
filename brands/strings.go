package brands

import (
	"regexp"
	"strings"

	iocodec "github.com/reoring/iocodec"
	"github.com/reoring/iocodec/dsl"
)

var (
	// NonEmptyString rejects the empty string only.
	NonEmptyString = dsl.BrandString("NonEmptyString", func(s string) bool {
		return len(s) > 0
	})

	// TrimmedString accepts strings with no leading or trailing whitespace.
	TrimmedString = dsl.BrandString("TrimmedString", func(s string) bool {
		return s == strings.TrimSpace(s)
	})

	// LowercaseString accepts strings equal to their own lowercase form.
	LowercaseString = dsl.BrandString("LowercaseString", func(s string) bool {
		return s == strings.ToLower(s)
	})

	// UppercaseString accepts strings equal to their own uppercase form.
	UppercaseString = dsl.BrandString("UppercaseString", func(s string) bool {
		return s == strings.ToUpper(s)
	})

	// HexColor accepts # followed by 3, 4, 6, or 8 hex digits.
	HexColor = dsl.BrandString("HexColor", hexColorPattern.MatchString)

	// Slug accepts lowercase alphanumeric segments joined by single
	// hyphens, with no leading, trailing, or consecutive hyphens.
	Slug = dsl.BrandString("Slug", slugPattern.MatchString)

	// Base64 accepts the standard base64 alphabet with correct padding.
	Base64 = dsl.BrandString("Base64", base64Pattern.MatchString)

	// JWT accepts exactly three dot-separated base64url segments; the
	// signature segment may be empty (unsecured tokens).
	JWT = dsl.BrandString("JWT", jwtPattern.MatchString)
)

var (
	hexColorPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	slugPattern     = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	base64Pattern   = regexp.MustCompile(`^([A-Za-z0-9+/]{4})*([A-Za-z0-9+/]{2}==|[A-Za-z0-9+/]{3}=)?$`)
	jwtPattern      = regexp.MustCompile(`^[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+\.[A-Za-z0-9_-]*$`)
)

func init() {
	iocodec.RegisterTypeMeta("NonEmptyString", iocodec.TypeMeta{
		Code:       "INVALID_FORMAT",
		Message:    "String must not be empty",
		Suggestion: "Provide a non-empty string",
	})
	iocodec.RegisterTypeMeta("TrimmedString", iocodec.TypeMeta{
		Code:       "INVALID_FORMAT",
		Message:    "String must not have leading or trailing whitespace",
		Suggestion: "Trim surrounding whitespace from the value",
	})
	iocodec.RegisterTypeMeta("LowercaseString", iocodec.TypeMeta{
		Code:       "INVALID_FORMAT",
		Message:    "String must be lowercase",
		Suggestion: "Lowercase the value",
	})
	iocodec.RegisterTypeMeta("UppercaseString", iocodec.TypeMeta{
		Code:       "INVALID_FORMAT",
		Message:    "String must be uppercase",
		Suggestion: "Uppercase the value",
	})
	iocodec.RegisterTypeMeta("HexColor", iocodec.TypeMeta{
		Code:       "INVALID_FORMAT",
		Message:    "Invalid hex color format",
		Suggestion: "Provide a # followed by 3, 4, 6, or 8 hex digits",
	})
	iocodec.RegisterTypeMeta("Slug", iocodec.TypeMeta{
		Code:       "INVALID_FORMAT",
		Message:    "Invalid slug format",
		Suggestion: "Use lowercase letters, digits, and single hyphens",
	})
	iocodec.RegisterTypeMeta("Base64", iocodec.TypeMeta{
		Code:       "INVALID_FORMAT",
		Message:    "Invalid base64 format",
		Suggestion: "Provide standard base64 with correct padding",
	})
	iocodec.RegisterTypeMeta("JWT", iocodec.TypeMeta{
		Code:       "INVALID_FORMAT",
		Message:    "Invalid JWT format",
		Suggestion: "Provide three dot-separated base64url segments",
	})
}
