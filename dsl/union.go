package dsl

import (
	"strings"

	iocodec "github.com/reoring/iocodec"
)

// Union builds a codec that succeeds when any member accepts the value.
// When every member fails, the surfaced failures come from a single branch:
// members whose only role is absence or null (the undefined/null
// primitives) are skipped for reporting, and among the remaining branches
// the one with the fewest failures wins, first-declared on ties. This makes
// Optional(T) and Nullable(T) report as "optional T" rather than a generic
// two-way union.
func Union(members ...*iocodec.Codec) *iocodec.Codec {
	names := make([]string, len(members))
	for i, m := range members {
		names[i] = m.Name()
	}
	return iocodec.New(iocodec.Def{
		Kind:    iocodec.KindUnion,
		Name:    strings.Join(names, " | "),
		Members: members,
		Validate: func(v any, ctx iocodec.Context) (any, iocodec.Failures) {
			branches := make([]iocodec.Failures, len(members))
			for i, m := range members {
				dec, ffs := m.ValidateAt(v, ctx.Retag(m))
				if len(ffs) == 0 {
					return dec, nil
				}
				branches[i] = ffs
			}
			return nil, pickBranch(members, branches)
		},
		Encode: func(v any) any {
			for _, m := range members {
				if m.Is(v) {
					return m.Encode(v)
				}
			}
			return v
		},
	})
}

// pickBranch applies the union error tie-break.
func pickBranch(members []*iocodec.Codec, branches []iocodec.Failures) iocodec.Failures {
	best := -1
	for i, m := range members {
		if isAbsenceCodec(m) {
			continue
		}
		if best < 0 || len(branches[i]) < len(branches[best]) {
			best = i
		}
	}
	if best < 0 {
		best = 0
	}
	return branches[best]
}

func isAbsenceCodec(c *iocodec.Codec) bool {
	if c.Kind() != iocodec.KindPrimitive {
		return false
	}
	return c.Name() == "undefined" || c.Name() == "null"
}

// Intersection builds a codec that succeeds only when every member accepts
// the value. Decoded objects are structurally merged in member order (later
// members win per key); for non-object members the last decoded value is
// returned. All members' failures are collected when any member rejects.
func Intersection(members ...*iocodec.Codec) *iocodec.Codec {
	names := make([]string, len(members))
	for i, m := range members {
		names[i] = m.Name()
	}
	return iocodec.New(iocodec.Def{
		Kind:    iocodec.KindIntersection,
		Name:    strings.Join(names, " & "),
		Members: members,
		Validate: func(v any, ctx iocodec.Context) (any, iocodec.Failures) {
			decs := make([]any, 0, len(members))
			var fs iocodec.Failures
			for _, m := range members {
				dec, ffs := m.ValidateAt(v, ctx.Retag(m))
				if len(ffs) > 0 {
					fs = iocodec.Append(fs, ffs...)
					continue
				}
				decs = append(decs, dec)
			}
			if len(fs) > 0 {
				return nil, fs
			}
			merged := map[string]any{}
			for _, dec := range decs {
				m, isMap := dec.(map[string]any)
				if !isMap {
					return decs[len(decs)-1], nil
				}
				for k, val := range m {
					merged[k] = val
				}
			}
			return merged, nil
		},
		Encode: func(v any) any {
			out := v
			for _, m := range members {
				out = m.Encode(out)
			}
			return out
		},
	})
}
