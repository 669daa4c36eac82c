// Package codec turns a model.Model into the two string operations of a
// string enum: Encode (variant to name) and Decode (name to variant).
//
// Decode is a two-stage dispatch. The input is first looked up, exactly and
// case-sensitively, among the canonical names and aliases of deserializable
// variants. Only when nothing matches is the fallback consulted: a typed
// fallback parses the input through the payload registry, a unit fallback
// absorbs it, and without a fallback decoding fails.
//
// A Codec holds no mutable state after New and may be shared between
// goroutines.
package codec
