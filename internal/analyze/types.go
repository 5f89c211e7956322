package analyze

import (
	"go/token"

	"github.com/cockroachdb/errors"

	"debug-generator/internal/common"
	"debug-generator/internal/match"
)

// DeriveDirective marks a type for generation when no explicit type list is
// given.
const DeriveDirective = "//debuggen:derive"

// TypeKind represents the shape of a declared type.
type TypeKind int

const (
	TypeKindUnknown   TypeKind = iota
	TypeKindStruct             // struct type
	TypeKindInterface          // interface type
	TypeKindEnum               // named basic type with constants of that type
	TypeKindBasic              // named basic type without constants
	TypeKindPointer            // pointer to another type
	TypeKindSlice              // slice of another type
	TypeKindArray              // array of another type
	TypeKindMap                // map type
	TypeKindFunc               // function type
	TypeKindChan               // channel type
	TypeKindAlias              // alias or definition over another named type
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindStruct:
		return "struct"
	case TypeKindInterface:
		return "interface"
	case TypeKindEnum:
		return "enum"
	case TypeKindBasic:
		return "basic"
	case TypeKindPointer:
		return "pointer"
	case TypeKindSlice:
		return "slice"
	case TypeKindArray:
		return "array"
	case TypeKindMap:
		return "map"
	case TypeKindFunc:
		return "func"
	case TypeKindChan:
		return "chan"
	case TypeKindAlias:
		return "alias"
	default:
		return common.UnknownStr
	}
}

// TypeDecl describes one top-level type declaration.
type TypeDecl struct {
	Name       string         // Declared type name
	TypeParams []string       // Type parameter names, in order
	Kind       TypeKind       // Shape of the type
	Fields     []FieldInfo    // For structs, the fields in declaration order
	Pos        token.Position // Position of the type name
	Derive     bool           // Doc comment carries DeriveDirective
}

// FieldInfo describes a struct field.
type FieldInfo struct {
	Name     string         // Go field name; the type name for embedded fields
	Embedded bool           // Whether the field is embedded (anonymous)
	Tag      string         // Struct tag content, without the surrounding quotes
	TagPos   token.Position // Position of the first character of Tag
	TagLit   string         // Tag literal as written, quotes included
	Pos      token.Position // Position of the field name
}

// PackageInfo holds the type declarations of one package.
type PackageInfo struct {
	Path  string      // Import path; empty for single parsed files
	Name  string      // Package name
	Dir   string      // Directory containing the package sources
	Files []string    // Absolute paths of the parsed files
	Types []*TypeDecl // Type declarations in source order
}

// Lookup returns the declaration with the given name, or nil.
func (p *PackageInfo) Lookup(name string) *TypeDecl {
	for _, t := range p.Types {
		if t.Name == name {
			return t
		}
	}

	return nil
}

// Select returns the named declarations in the requested order. With no
// names, it returns every declaration carrying DeriveDirective.
func (p *PackageInfo) Select(names []string) ([]*TypeDecl, error) {
	if common.IsEmpty(names) {
		var out []*TypeDecl
		for _, t := range p.Types {
			if t.Derive {
				out = append(out, t)
			}
		}

		return out, nil
	}

	out := make([]*TypeDecl, 0, len(names))
	for _, name := range names {
		t := p.Lookup(name)
		if t == nil {
			err := errors.Newf("type %s not found in package %s", name, p.displayName())
			if near, ok := match.Closest(name, p.typeNames(), match.DefaultMinScore); ok {
				err = errors.WithHintf(err, "did you mean %s?", near)
			}

			return nil, err
		}

		out = append(out, t)
	}

	return out, nil
}

func (p *PackageInfo) typeNames() []string {
	names := make([]string, 0, len(p.Types))
	for _, t := range p.Types {
		names = append(names, t.Name)
	}

	return names
}

func (p *PackageInfo) displayName() string {
	if p.Path != "" {
		return p.Path
	}

	return p.Name
}
