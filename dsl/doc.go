// Package dsl provides the schema constructors and combinators of the
// iocodec algebra: primitives, records, arrays, tuples, unions,
// intersections, literals, dictionaries, recursive references, and the
// higher-order combinators (Optional, Nullable, Default, CrossValidate,
// Transform, WithMessage) plus DTO derivation helpers.
//
// Every constructor returns an immutable *iocodec.Codec; composition never
// mutates its inputs.
package dsl
