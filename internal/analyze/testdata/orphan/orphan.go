package orphan

//enumstr:rename_all=snake_case
type Mode int

const (
	ModeA Mode = iota
)
