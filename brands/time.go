package brands

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	iocodec "github.com/reoring/iocodec"
	"github.com/reoring/iocodec/dsl"
)

// DateString accepts YYYY-MM-DD calendar dates. The pattern check is
// syntactic only; the parsed (year, month, day) must also round-trip
// through calendar construction, so 2023-02-30 is rejected.
var DateString = dsl.BrandString("DateString", isDateString)

// DateTimeString accepts date-time strings with a literal 'T' separator.
// Date-only strings are rejected even though they parse as dates.
var DateTimeString = dsl.BrandString("DateTimeString", isDateTimeString)

var datePattern = regexp.MustCompile(`^(\d{4})-(0[1-9]|1[0-2])-(0[1-9]|[12]\d|3[01])$`)

func isDateString(s string) bool {
	m := datePattern.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && t.Month() == time.Month(month) && t.Day() == day
}

var dateTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

func isDateTimeString(s string) bool {
	if !strings.Contains(s, "T") {
		return false
	}
	for _, layout := range dateTimeLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

func init() {
	iocodec.RegisterTypeMeta("DateString", iocodec.TypeMeta{
		Code:       "INVALID_DATE",
		Message:    "Invalid date format",
		Suggestion: "Provide a calendar date in YYYY-MM-DD form",
	})
	iocodec.RegisterTypeMeta("DateTimeString", iocodec.TypeMeta{
		Code:       "INVALID_DATETIME",
		Message:    "Invalid datetime format",
		Suggestion: "Provide an ISO 8601 datetime with a 'T' separator",
	})
}
