package brands

import (
	"net"
	"net/url"
	"regexp"
	"strings"

	iocodec "github.com/reoring/iocodec"
	"github.com/reoring/iocodec/dsl"
)

// URL accepts absolute http or https URLs only.
var URL = dsl.BrandString("URL", isHTTPURL)

// Phone accepts E.164-shaped phone numbers: 7 to 15 digits, optionally
// decorated with +, spaces, hyphens, parentheses, and dots.
var Phone = dsl.BrandString("Phone", isPhone)

// IPv4 accepts dotted-quad addresses with each octet in 0..255.
var IPv4 = dsl.BrandString("IPv4", isIPv4)

// IPv6 accepts the full IPv6 grammar including :: compression, an
// embedded IPv4 tail, and an optional %zone suffix.
var IPv6 = dsl.BrandString("IPv6", isIPv6)

// IP accepts either address family.
var IP = dsl.BrandString("IP", func(s string) bool {
	return isIPv4(s) || isIPv6(s)
})

func isHTTPURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

var phonePattern = regexp.MustCompile(`^[+\d\s().-]{7,20}$`)

func isPhone(s string) bool {
	if !phonePattern.MatchString(s) {
		return false
	}
	digits := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= 7 && digits <= 15
}

func isIPv4(s string) bool {
	if strings.Count(s, ".") != 3 || strings.Contains(s, ":") {
		return false
	}
	ip := net.ParseIP(s)
	return ip != nil && ip.To4() != nil
}

func isIPv6(s string) bool {
	addr := s
	// zone suffix, e.g. fe80::1%eth0
	if i := strings.Index(addr, "%"); i >= 0 {
		if i == len(addr)-1 {
			return false
		}
		addr = addr[:i]
	}
	if !strings.Contains(addr, ":") {
		return false
	}
	return net.ParseIP(addr) != nil
}

func init() {
	iocodec.RegisterTypeMeta("URL", iocodec.TypeMeta{
		Code:       "INVALID_URL",
		Message:    "Invalid URL format",
		Suggestion: "Provide an absolute http or https URL",
	})
	iocodec.RegisterTypeMeta("Phone", iocodec.TypeMeta{
		Code:       "INVALID_PHONE",
		Message:    "Invalid phone number format",
		Suggestion: "Provide a phone number with 7 to 15 digits",
	})
	iocodec.RegisterTypeMeta("IPv4", iocodec.TypeMeta{
		Code:       "INVALID_IP",
		Message:    "Invalid IPv4 address",
		Suggestion: "Provide a dotted-quad IPv4 address, e.g. 192.168.0.1",
	})
	iocodec.RegisterTypeMeta("IPv6", iocodec.TypeMeta{
		Code:       "INVALID_IP",
		Message:    "Invalid IPv6 address",
		Suggestion: "Provide a valid IPv6 address, e.g. 2001:db8::1",
	})
	iocodec.RegisterTypeMeta("IP", iocodec.TypeMeta{
		Code:       "INVALID_IP",
		Message:    "Invalid IP address",
		Suggestion: "Provide a valid IPv4 or IPv6 address",
	})
}
