// Package iocodec is a runtime validation and transformation engine for
// structured data. A Codec describes a value shape; decoding validates an
// untyped JSON-like input against it and either produces the typed value or
// a complete list of field-addressed failures. The raw failure protocol
// lives here together with the formatting layer that turns failures into
// deduplicated ValidationError diagnostics and the Decode facade consumed
// by transport bindings.
//
// Schema constructors and combinators live in the dsl subpackage, branded
// validators in brands, JSON Schema export in jsonschema, and input
// adapters in source.
package iocodec
