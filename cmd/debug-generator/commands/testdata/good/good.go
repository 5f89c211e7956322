package good

// Point is a plain struct.
//
//debuggen:derive
type Point struct {
	X, Y int
}

// Flags renders its mask in binary.
//
//debuggen:derive
type Flags struct {
	Name string `json:"name"`
	Mask uint8  `json:"mask" debug:"%08b"`
}

// Skipped has no directive.
type Skipped struct {
	A int
}

// Origin is defined over Point and keeps its fields.
//
//debuggen:derive
type Origin Point
