package attr

import (
	"errors"

	"enumstr-generator/internal/rename"
)

// ErrAtLeastOneOfSerAndDe is returned when an independent override names
// neither a serialize nor a deserialize value.
var ErrAtLeastOneOfSerAndDe = errors.New("at least one of serialize and deserialize must be set")

// UnknownRenameRuleError is returned when a rename_all literal is not a
// canonical rule key. Its message is the rule engine's user-facing message.
type UnknownRenameRuleError struct {
	Direction Direction
	Err       *rename.ParseError
}

func (e *UnknownRenameRuleError) Error() string {
	return e.Err.Error()
}

func (e *UnknownRenameRuleError) Unwrap() error {
	return e.Err
}
