package attr

import "fmt"

// Kind tells which shape a Rename or RenameAll holds.
type Kind int

const (
	_ Kind = iota

	// KindNormal applies one value to both directions.
	KindNormal
	// KindSerializeOnly applies to the serialize direction only.
	KindSerializeOnly
	// KindDeserializeOnly applies to the deserialize direction only.
	KindDeserializeOnly
	// KindBoth carries a distinct value for each direction.
	KindBoth
)

func (k Kind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindSerializeOnly:
		return "serialize"
	case KindDeserializeOnly:
		return "deserialize"
	case KindBoth:
		return "both"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Rename overrides the name of a single variant (or container).
// The zero value is not a valid Rename; use the constructors.
type Rename struct {
	kind Kind
	ser  string
	de   string
}

// NewRename returns a Rename that uses name for both directions.
func NewRename(name string) Rename {
	return Rename{kind: KindNormal, ser: name, de: name}
}

// SerializeOnly returns a Rename that only affects the serialize direction.
func SerializeOnly(name string) Rename {
	return Rename{kind: KindSerializeOnly, ser: name}
}

// DeserializeOnly returns a Rename that only affects the deserialize direction.
func DeserializeOnly(name string) Rename {
	return Rename{kind: KindDeserializeOnly, de: name}
}

// NewIndependent builds a Rename from the independent form, where each
// direction is given separately and an empty string means "not given".
func NewIndependent(serialize, deserialize string) (Rename, error) {
	switch {
	case serialize == "" && deserialize == "":
		return Rename{}, ErrAtLeastOneOfSerAndDe
	case deserialize == "":
		return SerializeOnly(serialize), nil
	case serialize == "":
		return DeserializeOnly(deserialize), nil
	default:
		return Rename{kind: KindBoth, ser: serialize, de: deserialize}, nil
	}
}

// Kind returns the shape of the rename.
func (r Rename) Kind() Kind {
	return r.kind
}

// IsZero reports whether r was never constructed.
func (r Rename) IsZero() bool {
	return r.kind == 0
}

// SerName returns the serialize name, if this rename supplies one.
func (r Rename) SerName() (string, bool) {
	switch r.kind {
	case KindNormal, KindSerializeOnly, KindBoth:
		return r.ser, true
	default:
		return "", false
	}
}

// DeName returns the deserialize name, if this rename supplies one.
func (r Rename) DeName() (string, bool) {
	switch r.kind {
	case KindNormal, KindDeserializeOnly, KindBoth:
		return r.de, true
	default:
		return "", false
	}
}

// Name returns the name for the given direction.
func (r Rename) Name(dir Direction) (string, bool) {
	if dir == Serialize {
		return r.SerName()
	}

	return r.DeName()
}

func (r Rename) String() string {
	return formatOverride("rename", r.kind, r.ser, r.de)
}

func formatOverride(attr string, kind Kind, ser, de string) string {
	switch kind {
	case KindNormal:
		return fmt.Sprintf("%s = %q", attr, ser)
	case KindSerializeOnly:
		return fmt.Sprintf("%s(serialize = %q)", attr, ser)
	case KindDeserializeOnly:
		return fmt.Sprintf("%s(deserialize = %q)", attr, de)
	case KindBoth:
		return fmt.Sprintf("%s(serialize = %q, deserialize = %q)", attr, ser, de)
	default:
		return "<none>"
	}
}

// Alias is an extra name accepted when deserializing a variant.
type Alias string
