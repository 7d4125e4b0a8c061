package iocodec

import (
	"runtime"
	"strconv"
	"strings"
	"sync"
)

// Kind identifies the structural variant of a Codec. Pattern matching on
// Kind replaces runtime type-name dispatch for error formatting and schema
// export.
type Kind int

const (
	KindPrimitive Kind = iota
	KindRecord
	KindPartialRecord
	KindArray
	KindTuple
	KindUnion
	KindIntersection
	KindLiteral
	KindKeyof
	KindBranded
	KindRecursive
	KindDictionary
	KindReadonly
	KindWithMessage
	// Wrapper variants carried by the combinator layer.
	KindDefault
	KindTransform
	KindRefinement
)

// ValidateFunc validates an untyped input at the position described by ctx.
// It returns the decoded value, or the full set of leaf failures. It must
// never panic for invalid input; panics are reserved for programmer errors.
type ValidateFunc func(v any, ctx Context) (any, Failures)

// EncodeFunc converts a decoded value back to its wire representation.
type EncodeFunc func(v any) any

// Def bundles everything needed to construct a Codec. Constructors resolve
// the configuration once; the resulting Codec is immutable.
type Def struct {
	Kind     Kind
	Name     string
	Validate ValidateFunc
	Encode   EncodeFunc

	// Structural shape, exposed read-only to collaborators such as the
	// schema exporter. Only the fields relevant to Kind are set.
	Fields   map[string]*Codec // Record, PartialRecord
	Members  []*Codec          // Tuple, Union, Intersection
	Elem     *Codec            // Array, Dictionary
	Inner    *Codec            // Branded, Readonly, WithMessage
	Literal  any               // Literal
	Keys     []string          // Keyof
	Messages *Messages         // WithMessage
	Default  any               // Default wrapper
	Resolve  func() *Codec     // Recursive
}

// Codec is a composable validator and encoder for a value shape. Codecs are
// plain immutable values; composition always produces new instances and
// schemas are safe to share across concurrent validations.
type Codec struct {
	kind     Kind
	name     string
	validate ValidateFunc
	encode   EncodeFunc

	fields   map[string]*Codec
	order    []string
	members  []*Codec
	elem     *Codec
	inner    *Codec
	literal  any
	keys     []string
	messages *Messages
	defval   any

	resolve     func() *Codec
	resolveMu   sync.Mutex
	resolved    *Codec
	resolving   bool
	resolvingGo uint64
	resolveDone chan struct{}
}

// New constructs a Codec from a Def. Field and key order is fixed at
// construction (sorted) so that validation and export are deterministic.
func New(d Def) *Codec {
	c := &Codec{
		kind:     d.Kind,
		name:     d.Name,
		validate: d.Validate,
		encode:   d.Encode,
		members:  d.Members,
		elem:     d.Elem,
		inner:    d.Inner,
		literal:  d.Literal,
		keys:     d.Keys,
		messages: d.Messages,
		defval:   d.Default,
		resolve:  d.Resolve,
	}
	if d.Fields != nil {
		c.fields = make(map[string]*Codec, len(d.Fields))
		for k, f := range d.Fields {
			c.fields[k] = f
		}
		c.order = sortedKeys(c.fields)
	}
	if c.encode == nil {
		c.encode = func(v any) any { return v }
	}
	return c
}

// Kind returns the structural variant tag.
func (c *Codec) Kind() Kind { return c.kind }

// Name returns the stable, human-readable type identifier used in
// diagnostics and metadata lookups.
func (c *Codec) Name() string { return c.name }

// Fields returns the declared field map of a record-shaped codec, or nil.
// The returned map must not be mutated.
func (c *Codec) Fields() map[string]*Codec { return c.fields }

// FieldOrder returns the declared field keys in sorted order.
func (c *Codec) FieldOrder() []string { return c.order }

// Members returns the member codecs of a tuple, union or intersection.
func (c *Codec) Members() []*Codec { return c.members }

// Elem returns the element codec of an array or dictionary.
func (c *Codec) Elem() *Codec { return c.elem }

// Inner returns the wrapped codec of a branded, readonly or with-message
// codec.
func (c *Codec) Inner() *Codec { return c.inner }

// LiteralValue returns the expected value of a literal codec.
func (c *Codec) LiteralValue() any { return c.literal }

// Keys returns the accepted keys of a keyof codec in sorted order.
func (c *Codec) Keys() []string { return c.keys }

// Messages returns the custom message binding, or nil. The binding is
// consulted only during error formatting, never during validation.
func (c *Codec) Messages() *Messages { return c.messages }

// DefaultValue returns the substitute value of a default-wrapper codec.
func (c *Codec) DefaultValue() any { return c.defval }

// Decode validates v against the codec and returns the decoded value, or
// the collected failures. Failures are always collected, never thrown
// mid-traversal, so Decode can be embedded as a sub-check.
func (c *Codec) Decode(v any) (any, Failures) {
	return c.validate(v, NewContext(c))
}

// ValidateAt validates v at an already-descended position. It is the hook
// combinators use to delegate while keeping the context truthful.
func (c *Codec) ValidateAt(v any, ctx Context) (any, Failures) {
	return c.validate(v, ctx)
}

// Is reports whether v is accepted by the codec.
func (c *Codec) Is(v any) bool {
	_, fs := c.Decode(v)
	return len(fs) == 0
}

// Encode converts a decoded value back to its serializable representation.
func (c *Codec) Encode(v any) any { return c.encode(v) }

// Target resolves a recursive codec to its underlying definition. The
// thunk runs once. Concurrent first uses wait for the resolving goroutine
// to finish; only the resolving goroutine re-entering its own thunk is a
// programmer error and panics.
func (c *Codec) Target() *Codec {
	if c.kind != KindRecursive {
		return c
	}
	for {
		c.resolveMu.Lock()
		if c.resolved != nil {
			r := c.resolved
			c.resolveMu.Unlock()
			return r
		}
		if !c.resolving {
			break // this caller resolves; lock still held
		}
		if c.resolvingGo == curGoroutineID() {
			c.resolveMu.Unlock()
			panic("iocodec: recursive codec " + c.name + " resolved during its own construction")
		}
		done := c.resolveDone
		c.resolveMu.Unlock()
		<-done
	}
	c.resolving = true
	c.resolvingGo = curGoroutineID()
	done := make(chan struct{})
	c.resolveDone = done
	c.resolveMu.Unlock()

	var r *Codec
	defer func() {
		// also runs when the thunk panics, so waiters are released and
		// retry instead of blocking forever
		c.resolveMu.Lock()
		c.resolving = false
		c.resolveDone = nil
		c.resolved = r
		close(done)
		c.resolveMu.Unlock()
	}()
	r = c.resolve()
	if r == nil {
		panic("iocodec: recursive codec " + c.name + " resolved to nil")
	}
	return r
}

// curGoroutineID parses the current goroutine's id from the stack header,
// the same trick x/net/http2 uses for re-entrancy tracking.
func curGoroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	s := strings.TrimPrefix(string(buf[:n]), "goroutine ")
	if i := strings.IndexByte(s, ' '); i > 0 {
		if id, err := strconv.ParseUint(s[:i], 10, 64); err == nil {
			return id
		}
	}
	return 0
}

// Messages carries custom diagnostic text attached via WithMessage. It is
// part of the codec's own representation rather than a hidden side channel,
// so message bindings survive composition without relying on object
// identity.
type Messages struct {
	// Invalid replaces the message when a present value fails validation.
	Invalid string
	// InvalidFunc, when set, takes precedence over Invalid and receives the
	// offending value.
	InvalidFunc func(v any) string
	// Required replaces the message when the value is null or undefined.
	Required string
	// Code overrides the machine-readable error code.
	Code string
	// Suggestion overrides the remediation hint.
	Suggestion string
}

func sortedKeys(m map[string]*Codec) []string {
	ks := make([]string, 0, len(m))
	for k := range m {
		ks = append(ks, k)
	}
	sortStrings(ks)
	return ks
}
