package badtype

//enumstr:enum
type Ratio float64

const (
	RatioHalf Ratio = 0.5
)
