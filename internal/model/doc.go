// Package model validates the variant descriptors of one enum and resolves
// them into a CodecModel, the read-only artifact the codec is built from.
//
// Build runs, in order:
//  1. extraction of a fallback variant from the tail of the list;
//  2. rejection of any other fallback (ErrMultipleFallbackVariants,
//     ErrFallbackNotLast);
//  3. rejection of an enum without ordinary variants (ErrEmptyEnum);
//  4. per-direction name resolution and skip handling;
//  5. uniqueness of every deserialize name and alias across variants
//     (ErrDuplicateDeserializeName);
//  6. the payload arity of the fallback (ErrFallbackArity).
//
// Any failure aborts the build; there is no partial model.
package model
