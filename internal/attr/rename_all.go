package attr

import (
	"errors"

	"enumstr-generator/internal/rename"
)

// RenameAll is a container-wide default rule. It has the same shapes as
// Rename, with rules in place of literal names.
type RenameAll struct {
	kind Kind
	ser  rename.Rule
	de   rename.Rule
}

// NewRenameAll returns a RenameAll that uses rule for both directions.
func NewRenameAll(rule rename.Rule) RenameAll {
	return RenameAll{kind: KindNormal, ser: rule, de: rule}
}

// SerializeOnlyAll returns a RenameAll that only affects the serialize direction.
func SerializeOnlyAll(rule rename.Rule) RenameAll {
	return RenameAll{kind: KindSerializeOnly, ser: rule}
}

// DeserializeOnlyAll returns a RenameAll that only affects the deserialize direction.
func DeserializeOnlyAll(rule rename.Rule) RenameAll {
	return RenameAll{kind: KindDeserializeOnly, de: rule}
}

// BothAll returns a RenameAll with a distinct rule for each direction.
func BothAll(serialize, deserialize rename.Rule) RenameAll {
	return RenameAll{kind: KindBoth, ser: serialize, de: deserialize}
}

// RenameAllFrom resolves every literal of r through the rule engine.
// A literal that is not a canonical key yields *UnknownRenameRuleError.
func RenameAllFrom(r Rename) (RenameAll, error) {
	parse := func(dir Direction, s string) (rename.Rule, error) {
		rule, err := rename.ParseRule(s)
		if err != nil {
			var perr *rename.ParseError
			if errors.As(err, &perr) {
				return 0, &UnknownRenameRuleError{Direction: dir, Err: perr}
			}

			return 0, err
		}

		return rule, nil
	}

	switch r.kind {
	case KindNormal:
		rule, err := parse(Serialize, r.ser)
		if err != nil {
			return RenameAll{}, err
		}

		return NewRenameAll(rule), nil

	case KindSerializeOnly:
		rule, err := parse(Serialize, r.ser)
		if err != nil {
			return RenameAll{}, err
		}

		return SerializeOnlyAll(rule), nil

	case KindDeserializeOnly:
		rule, err := parse(Deserialize, r.de)
		if err != nil {
			return RenameAll{}, err
		}

		return DeserializeOnlyAll(rule), nil

	case KindBoth:
		ser, err := parse(Serialize, r.ser)
		if err != nil {
			return RenameAll{}, err
		}

		de, err := parse(Deserialize, r.de)
		if err != nil {
			return RenameAll{}, err
		}

		return BothAll(ser, de), nil

	default:
		return RenameAll{}, ErrAtLeastOneOfSerAndDe
	}
}

// ParseRenameAll parses a single rule literal applied to both directions.
func ParseRenameAll(s string) (RenameAll, error) {
	return RenameAllFrom(NewRename(s))
}

// Kind returns the shape of the rename_all.
func (r RenameAll) Kind() Kind {
	return r.kind
}

// IsZero reports whether r was never constructed.
func (r RenameAll) IsZero() bool {
	return r.kind == 0
}

// SerRule returns the serialize rule, if any.
func (r RenameAll) SerRule() (rename.Rule, bool) {
	switch r.kind {
	case KindNormal, KindSerializeOnly, KindBoth:
		return r.ser, true
	default:
		return 0, false
	}
}

// DeRule returns the deserialize rule, if any.
func (r RenameAll) DeRule() (rename.Rule, bool) {
	switch r.kind {
	case KindNormal, KindDeserializeOnly, KindBoth:
		return r.de, true
	default:
		return 0, false
	}
}

// Rule returns the rule for the given direction.
func (r RenameAll) Rule(dir Direction) (rename.Rule, bool) {
	if dir == Serialize {
		return r.SerRule()
	}

	return r.DeRule()
}

// AsRename returns the literal form of r, with rules replaced by their keys.
func (r RenameAll) AsRename() Rename {
	switch r.kind {
	case KindNormal:
		return NewRename(r.ser.Key())
	case KindSerializeOnly:
		return SerializeOnly(r.ser.Key())
	case KindDeserializeOnly:
		return DeserializeOnly(r.de.Key())
	case KindBoth:
		return Rename{kind: KindBoth, ser: r.ser.Key(), de: r.de.Key()}
	default:
		return Rename{}
	}
}

func (r RenameAll) String() string {
	return formatOverride("rename_all", r.kind, r.ser.Key(), r.de.Key())
}
