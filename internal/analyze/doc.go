// Package analyze loads Go packages and extracts enums declared with
// //enumstr: directives.
//
// It uses golang.org/x/tools/go/packages with AST and go/types. A type is an
// enum when its doc comment carries //enumstr:enum and its underlying type
// is a string or an integer. Its variants are the constants of that type, in
// source order, each optionally annotated with variant directives.
//
// Type directives:
//   - enumstr:enum
//   - enumstr:rename_all=<rule> or enumstr:rename_all(serialize=<rule>,deserialize=<rule>)
//   - enumstr:trim_prefix=<prefix> (defaults to the type name)
//
// Variant directives:
//   - enumstr:rename=<name> or enumstr:rename(serialize=<name>,deserialize=<name>)
//   - enumstr:alias=<name> (repeatable)
//   - enumstr:skip, enumstr:skip_serializing, enumstr:skip_deserializing
//   - enumstr:other or enumstr:other=<payload type>
//
// The result is expressed as definition.Enum values, so everything after
// extraction is shared with YAML definition files.
package analyze
