package iocodec

import "sync"

// Generic error codes emitted by the formatter. Branded validators register
// their own codes via RegisterTypeMeta.
const (
	CodeRequired      = "REQUIRED"
	CodeInvalidType   = "INVALID_TYPE"
	CodeInvalidFormat = "INVALID_FORMAT"
	CodeUnknown       = "UNKNOWN"
)

// TypeMeta is the default diagnostic metadata of a named type: the
// machine-readable code, the human message, and the remediation hint used
// when a value of that type fails validation.
type TypeMeta struct {
	Code       string
	Message    string
	Suggestion string
}

var (
	typeMetaMu sync.RWMutex
	typeMeta   = map[string]TypeMeta{}
)

// RegisterTypeMeta binds diagnostic metadata to a stable type name.
// Branded validators call this at construction; the formatter consults the
// table by the deepest context entry's type name.
func RegisterTypeMeta(name string, m TypeMeta) {
	typeMetaMu.Lock()
	typeMeta[name] = m
	typeMetaMu.Unlock()
}

// LookupTypeMeta returns the registered metadata for a type name.
func LookupTypeMeta(name string) (TypeMeta, bool) {
	typeMetaMu.RLock()
	m, ok := typeMeta[name]
	typeMetaMu.RUnlock()
	return m, ok
}
