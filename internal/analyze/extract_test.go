package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const source = `package sample

import "io"

// Point has two coordinates.
//
//debuggen:derive
type Point struct {
	X, Y int
	_    struct{}
}

type Wrapper struct {
	io.Reader
	*Point
	List[int]
	Note string ` + "`debug:\"%q\"`" + `
}

type List[T any] struct {
	Items []T
}

type (
	// Celsius is a temperature.
	//debuggen:derive
	Celsius float64

	Weekday int
	Handler func()
	Names   []string
	Ptr     *Point
	Lookup  map[string]int
	Ch      chan int
	Arr     [4]byte
	Other   Point
	Remote  io.Reader
	Inst    List[int]
	Alias   = Point
	Shape   interface{ Area() float64 }
)

const (
	Sunday Weekday = iota
	Monday
)

const Freezing Celsius = 0
`

func parseSample(t *testing.T) *PackageInfo {
	t.Helper()

	pkg, err := ParseSource("sample.go", source)
	require.NoError(t, err)

	return pkg
}

func TestParseSource_Kinds(t *testing.T) {
	pkg := parseSample(t)

	expected := map[string]TypeKind{
		"Point":   TypeKindStruct,
		"Wrapper": TypeKindStruct,
		"List":    TypeKindStruct,
		"Celsius": TypeKindEnum,
		"Weekday": TypeKindEnum,
		"Handler": TypeKindFunc,
		"Names":   TypeKindSlice,
		"Ptr":     TypeKindPointer,
		"Lookup":  TypeKindMap,
		"Ch":      TypeKindChan,
		"Arr":     TypeKindArray,
		"Other":   TypeKindStruct,
		"Remote":  TypeKindAlias,
		"Inst":    TypeKindAlias,
		"Alias":   TypeKindAlias,
		"Shape":   TypeKindInterface,
	}

	for name, kind := range expected {
		decl := pkg.Lookup(name)
		require.NotNil(t, decl, name)
		assert.Equal(t, kind, decl.Kind, name)
	}
}

func TestParseSource_Fields(t *testing.T) {
	pkg := parseSample(t)

	point := pkg.Lookup("Point")
	require.Len(t, point.Fields, 2)
	assert.Equal(t, "X", point.Fields[0].Name)
	assert.Equal(t, "Y", point.Fields[1].Name)

	wrapper := pkg.Lookup("Wrapper")
	require.Len(t, wrapper.Fields, 4)
	assert.Equal(t, "Reader", wrapper.Fields[0].Name)
	assert.True(t, wrapper.Fields[0].Embedded)
	assert.Equal(t, "Point", wrapper.Fields[1].Name)
	assert.Equal(t, "List", wrapper.Fields[2].Name)
	assert.Equal(t, "Note", wrapper.Fields[3].Name)
	assert.Equal(t, `debug:"%q"`, wrapper.Fields[3].Tag)
	assert.Equal(t, 17, wrapper.Fields[3].TagPos.Line)
	assert.Equal(t, 15, wrapper.Fields[3].TagPos.Column)
	assert.Equal(t, "`debug:\"%q\"`", wrapper.Fields[3].TagLit)
}

func TestParseSource_DefinedOverLocalStruct(t *testing.T) {
	pkg := parseSample(t)

	other := pkg.Lookup("Other")
	require.Len(t, other.Fields, 2)
	assert.Equal(t, "X", other.Fields[0].Name)
	assert.Equal(t, "Y", other.Fields[1].Name)
	assert.Equal(t, 9, other.Fields[0].Pos.Line)
}

func TestParseSource_DefinitionCycle(t *testing.T) {
	pkg, err := ParseSource("cycle.go", "package cycle\ntype A B\ntype B A\ntype C C\n")
	require.NoError(t, err)

	for _, name := range []string{"A", "B", "C"} {
		assert.Equal(t, TypeKindAlias, pkg.Lookup(name).Kind, name)
	}
}

func TestParseSource_TypeParams(t *testing.T) {
	list := parseSample(t).Lookup("List")

	assert.Equal(t, []string{"T"}, list.TypeParams)
}

func TestParseSource_Directive(t *testing.T) {
	pkg := parseSample(t)

	assert.True(t, pkg.Lookup("Point").Derive)
	assert.True(t, pkg.Lookup("Celsius").Derive)
	assert.False(t, pkg.Lookup("Weekday").Derive)

	decls, err := pkg.Select(nil)
	require.NoError(t, err)
	require.Len(t, decls, 2)
	assert.Equal(t, "Point", decls[0].Name)
	assert.Equal(t, "Celsius", decls[1].Name)
}

func TestPackageInfo_Select(t *testing.T) {
	pkg := parseSample(t)

	decls, err := pkg.Select([]string{"Wrapper", "Point"})
	require.NoError(t, err)
	require.Len(t, decls, 2)
	assert.Equal(t, "Wrapper", decls[0].Name)
	assert.Equal(t, "Point", decls[1].Name)

	_, err = pkg.Select([]string{"Nope"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "type Nope not found in package sample")
}

func TestParseSource_SyntaxError(t *testing.T) {
	_, err := ParseSource("broken.go", "package broken\ntype X struct {")
	require.Error(t, err)
}
