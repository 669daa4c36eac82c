// Package gen provides deterministic Go code generation for string enums.
//
// Generation approach uses text/template + go/format for readable,
// dependency-free Go code. Every enum gets its own file with:
//   - the type and constants, for enums defined only in YAML
//   - String, with the display name of every variant
//   - MarshalText and UnmarshalText, so the enum works with encoding/json,
//     yaml and any other text codec
//   - Parse<Enum>, accepting canonical names, aliases and the fallback
//   - <Enum>Values, listing the reachable variants
//
// A fallback with a payload is generated only for string-backed enums, where
// the unmatched input is kept as the value itself.
package gen
