package iocodec

// Entry is one step of a validation context: the key under which validation
// descended (attribute name or stringified array index) and the codec
// expected at that position. The root entry carries an empty key.
type Entry struct {
	Key  string
	Type *Codec
}

// Context is the ordered path from the root of the input to the value
// currently being validated. Contexts are passed by value and every descent
// allocates a fresh backing array, so sibling branches can never observe
// each other's entries and validation stays safe under concurrent or
// reentrant use.
type Context []Entry

// NewContext returns a root context for the given codec.
func NewContext(t *Codec) Context {
	return Context{{Key: "", Type: t}}
}

// Child returns a new context extended with a keyed entry.
func (c Context) Child(key string, t *Codec) Context {
	out := make(Context, len(c), len(c)+1)
	copy(out, c)
	return append(out, Entry{Key: key, Type: t})
}

// Retag returns a copy of the context whose deepest entry expects t
// instead. Union members are validated under a retagged context so their
// failures name the member type, not the union.
func (c Context) Retag(t *Codec) Context {
	out := make(Context, len(c))
	copy(out, c)
	if len(out) > 0 {
		out[len(out)-1] = Entry{Key: out[len(out)-1].Key, Type: t}
	}
	return out
}

// Deepest returns the last entry of the context.
func (c Context) Deepest() Entry {
	if len(c) == 0 {
		return Entry{}
	}
	return c[len(c)-1]
}

// FieldPath renders the context into a dot/bracket field path, excluding
// the root entry. Keys that are non-negative integer strings render as
// [index] appended to the preceding segment: items[1].name. An empty path
// renders as "root".
func (c Context) FieldPath() string {
	buf := make([]byte, 0, 32)
	for i, e := range c {
		if i == 0 {
			continue // root entry carries no key
		}
		if isIndexKey(e.Key) {
			buf = append(buf, '[')
			buf = append(buf, e.Key...)
			buf = append(buf, ']')
			continue
		}
		if len(buf) > 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, e.Key...)
	}
	if len(buf) == 0 {
		return "root"
	}
	return string(buf)
}

func isIndexKey(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
