package model

import (
	"errors"
	"fmt"
)

// Build errors.
var (
	ErrEmptyEnum                = errors.New("there must be at least one variant besides the fallback")
	ErrMultipleFallbackVariants = errors.New("only one variant can be the fallback")
	ErrFallbackNotLast          = errors.New("the fallback variant must be the last variant")
	ErrFallbackArity            = errors.New("the fallback variant must carry at most one payload type")
	ErrDuplicateDeserializeName = errors.New("deserialize name is claimed by more than one variant")
	ErrNonUnitVariant           = errors.New("only the fallback variant may carry a payload")
	ErrEmptyIdent               = errors.New("variant identifier is empty")
)

// VariantError ties a build error to the offending variant.
type VariantError struct {
	Variant string
	Err     error
}

func (e *VariantError) Error() string {
	return fmt.Sprintf("variant %s: %v", e.Variant, e.Err)
}

func (e *VariantError) Unwrap() error {
	return e.Err
}

// DuplicateNameError reports a deserialize name claimed by two variants.
type DuplicateNameError struct {
	Name   string
	First  string
	Second string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("deserialize name %q is claimed by both %s and %s", e.Name, e.First, e.Second)
}

// Is makes DuplicateNameError match ErrDuplicateDeserializeName.
func (e *DuplicateNameError) Is(target error) bool {
	return target == ErrDuplicateDeserializeName
}
