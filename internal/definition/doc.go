// Package definition loads, validates and writes YAML enum definition files.
//
// A definition file describes one or more string enums: their variants, the
// container-level rename_all rule and every per-variant override. It is the
// declarative counterpart of the //enumstr: source directives handled by the
// analyze package, and both produce the same Enum values.
//
// Definitions are converted into builder inputs with Enum.Descriptors and
// into validated models with Enum.Build. Validate reports every problem of a
// file at once as diagnostics, with suggestions for misspelled rule names.
package definition
