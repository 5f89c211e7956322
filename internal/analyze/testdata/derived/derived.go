package derived

import "go/token"

type Box[T any] struct {
	Val   T `debug:"<%v>"`
	count int
}

type Base struct {
	ID int `debug:"#%d"`
}

type Copy Base

type IntBox Box[int]

type Where token.Position

type Level token.Token

type Pos = token.Position
