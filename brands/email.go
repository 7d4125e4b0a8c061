package brands

import (
	"regexp"
	"strings"

	iocodec "github.com/reoring/iocodec"
	"github.com/reoring/iocodec/dsl"
)

// Email accepts a practical RFC 5322 subset: total length at most 254,
// local part at most 64, domain at most 255, no leading, trailing, or
// consecutive dots in the local part.
var Email = dsl.BrandString("Email", isEmail)

var emailPattern = regexp.MustCompile(
	`^[A-Za-z0-9!#$%&'*+/=?^_` + "`" + `{|}~.-]+@[A-Za-z0-9]([A-Za-z0-9-]*[A-Za-z0-9])?(\.[A-Za-z0-9]([A-Za-z0-9-]*[A-Za-z0-9])?)+$`,
)

func isEmail(s string) bool {
	if len(s) > 254 {
		return false
	}
	at := strings.Index(s, "@")
	if at <= 0 || at == len(s)-1 {
		return false
	}
	local, domain := s[:at], s[at+1:]
	if len(local) > 64 || len(domain) > 255 {
		return false
	}
	if strings.HasPrefix(local, ".") || strings.HasSuffix(local, ".") || strings.Contains(local, "..") {
		return false
	}
	return emailPattern.MatchString(s)
}

func init() {
	iocodec.RegisterTypeMeta("Email", iocodec.TypeMeta{
		Code:       "INVALID_EMAIL",
		Message:    "Invalid email format",
		Suggestion: "Provide a valid email address, e.g. user@example.com",
	})
}
