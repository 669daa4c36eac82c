package codec

import (
	"errors"
	"fmt"
)

// Encode and decode errors.
var (
	ErrNotSerializable      = errors.New("variant cannot be serialized")
	ErrNoMatchingVariant    = errors.New("no variant matches")
	ErrFallbackPayloadParse = errors.New("fallback payload cannot be parsed")
	ErrUnknownVariant       = errors.New("unknown variant")
	ErrMissingPayload       = errors.New("fallback variant requires a payload")
)

// NotSerializableError is returned when encoding a variant excluded from
// serialization. It signals a caller bug rather than bad input.
type NotSerializableError struct {
	Variant string
}

func (e *NotSerializableError) Error() string {
	return fmt.Sprintf("the enum variant %s cannot be serialized", e.Variant)
}

func (e *NotSerializableError) Is(target error) bool {
	return target == ErrNotSerializable
}

// NoMatchingVariantError is returned when no name, alias or fallback accepts
// the input.
type NoMatchingVariantError struct {
	Input string
	// Expected lists the accepted names in declaration order.
	Expected []string
}

func (e *NoMatchingVariantError) Error() string {
	return fmt.Sprintf("unknown variant %q, expected one of %q", e.Input, e.Expected)
}

func (e *NoMatchingVariantError) Is(target error) bool {
	return target == ErrNoMatchingVariant
}

// PayloadParseError wraps the error of the fallback payload type's parser.
type PayloadParseError struct {
	Input string
	Type  string
	Err   error
}

func (e *PayloadParseError) Error() string {
	return fmt.Sprintf("parse %q as %s: %v", e.Input, e.Type, e.Err)
}

func (e *PayloadParseError) Unwrap() []error {
	return []error{ErrFallbackPayloadParse, e.Err}
}
