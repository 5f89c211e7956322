package bad

type Shape interface {
	Area() float64
}

type Record struct {
	ID   int
	Note string `other:"x"`
}

type Loose struct {
	N int `debug:5`
}

type Typo struct {
	Mask uint8 `debg:"%08b"`
}
