package attr

//go:generate go tool stringer -type=Direction -linecomment -output=direction_string.go

// Direction selects the serialize or deserialize side of an override.
type Direction int

const (
	Serialize   Direction = iota // serialize
	Deserialize                  // deserialize
)

// Directions lists both directions, serialize first.
var Directions = []Direction{Serialize, Deserialize}
