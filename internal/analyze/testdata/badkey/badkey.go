package badkey

//enumstr:enum
type Color int

const (
	ColorRed Color = iota
	//enumstr:renam=green
	ColorGreen
)
