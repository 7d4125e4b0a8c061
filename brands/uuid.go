package brands

import (
	"regexp"

	iocodec "github.com/reoring/iocodec"
	"github.com/reoring/iocodec/dsl"
)

// UUID accepts 8-4-4-4-12 hex groups with a version nibble of 1..5 and a
// variant nibble of 8, 9, a, or b, case-insensitive.
var UUID = dsl.BrandString("UUID", uuidPattern.MatchString)

var uuidPattern = regexp.MustCompile(
	`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[1-5][0-9a-fA-F]{3}-[89abAB][0-9a-fA-F]{3}-[0-9a-fA-F]{12}$`,
)

func init() {
	iocodec.RegisterTypeMeta("UUID", iocodec.TypeMeta{
		Code:       "INVALID_UUID",
		Message:    "Invalid UUID format",
		Suggestion: "Provide a valid UUID, e.g. 123e4567-e89b-12d3-a456-426614174000",
	})
}
