package analyze

import (
	"go/ast"
	"go/token"
	"go/types"
	"strconv"
	"strings"
)

// basicTypes are the predeclared types an enum can be defined over.
var basicTypes = map[string]bool{
	"bool": true, "string": true, "byte": true, "rune": true,
	"int": true, "int8": true, "int16": true, "int32": true, "int64": true,
	"uint": true, "uint8": true, "uint16": true, "uint32": true, "uint64": true, "uintptr": true,
	"float32": true, "float64": true, "complex64": true, "complex128": true,
}

// extractor turns parsed files of one package into TypeDecls.
type extractor struct {
	fset  *token.FileSet
	decls []*TypeDecl
	specs map[*TypeDecl]*ast.TypeSpec
	named map[string]*ast.TypeSpec
	// consts counts typed constants per type name.
	consts map[string]int
	// tags holds the tag literal of every struct field, keyed by the
	// position of the field name.
	tags map[token.Pos]*ast.BasicLit
}

func newExtractor(fset *token.FileSet) *extractor {
	return &extractor{
		fset:   fset,
		specs:  make(map[*TypeDecl]*ast.TypeSpec),
		named:  make(map[string]*ast.TypeSpec),
		consts: make(map[string]int),
		tags:   make(map[token.Pos]*ast.BasicLit),
	}
}

// addFile collects type declarations and typed constants from one file.
func (e *extractor) addFile(file *ast.File) {
	for _, d := range file.Decls {
		gd, ok := d.(*ast.GenDecl)
		if !ok {
			continue
		}

		switch gd.Tok {
		case token.TYPE:
			for _, spec := range gd.Specs {
				ts := spec.(*ast.TypeSpec)
				doc := ts.Doc
				if doc == nil && len(gd.Specs) == 1 {
					doc = gd.Doc
				}

				e.addType(ts, doc)
				e.addTags(ts.Type)
			}

		case token.CONST:
			e.addConsts(gd)
		}
	}
}

func (e *extractor) addType(ts *ast.TypeSpec, doc *ast.CommentGroup) {
	decl := &TypeDecl{
		Name:   ts.Name.Name,
		Pos:    e.fset.Position(ts.Name.Pos()),
		Derive: hasDirective(doc),
	}

	if ts.TypeParams != nil {
		for _, f := range ts.TypeParams.List {
			for _, n := range f.Names {
				decl.TypeParams = append(decl.TypeParams, n.Name)
			}
		}
	}

	e.decls = append(e.decls, decl)
	e.specs[decl] = ts
	e.named[decl.Name] = ts
}

// addTags records the tag literals of all struct fields under expr,
// including nested struct types.
func (e *extractor) addTags(expr ast.Expr) {
	ast.Inspect(expr, func(n ast.Node) bool {
		st, ok := n.(*ast.StructType)
		if !ok {
			return true
		}

		for _, f := range st.Fields.List {
			if f.Tag == nil {
				continue
			}

			for _, id := range fieldIdents(f) {
				e.tags[id.Pos()] = f.Tag
			}
		}

		return true
	})
}

// addConsts counts constants per declared type, following the implicit
// repetition rule of const blocks.
func (e *extractor) addConsts(gd *ast.GenDecl) {
	var last string
	for _, spec := range gd.Specs {
		vs := spec.(*ast.ValueSpec)
		switch {
		case vs.Type != nil:
			last = ""
			if id, ok := vs.Type.(*ast.Ident); ok {
				last = id.Name
			}
		case len(vs.Values) > 0:
			last = ""
		}

		if last != "" {
			e.consts[last] += len(vs.Names)
		}
	}
}

// finish classifies every collected declaration. It must run after all files
// were added so that constants from other files are known.
func (e *extractor) finish() []*TypeDecl {
	for _, decl := range e.decls {
		ts := e.specs[decl]
		if ts.Assign.IsValid() {
			decl.Kind = TypeKindAlias
			continue
		}

		decl.Kind = e.kindOf(decl.Name, ts.Type)
		if st := e.structOf(ts.Type, map[string]bool{decl.Name: true}); st != nil {
			decl.Kind = TypeKindStruct
			decl.Fields = e.fields(st)
		}
	}

	return e.decls
}

// structOf returns the struct type expr denotes, following defined types of
// the same package such as "type B A".
func (e *extractor) structOf(expr ast.Expr, seen map[string]bool) *ast.StructType {
	switch t := expr.(type) {
	case *ast.StructType:
		return t
	case *ast.ParenExpr:
		return e.structOf(t.X, seen)
	case *ast.Ident:
		ts := e.named[t.Name]
		if ts == nil || ts.TypeParams != nil || seen[t.Name] {
			return nil
		}

		seen[t.Name] = true

		return e.structOf(ts.Type, seen)
	default:
		return nil
	}
}

// resolveTyped classifies the declarations the syntax alone could not
// resolve, such as "type B pkg.A" or "type B List[int]", through the type
// checker. Fields of structs from other packages are limited to exported
// ones, the only ones a method in this package can read.
func (e *extractor) resolveTyped(pkg *types.Package) {
	if pkg == nil {
		return
	}

	for _, decl := range e.decls {
		if decl.Kind != TypeKindAlias || e.specs[decl].Assign.IsValid() {
			continue
		}

		tn, ok := pkg.Scope().Lookup(decl.Name).(*types.TypeName)
		if !ok {
			continue
		}

		st, ok := tn.Type().Underlying().(*types.Struct)
		if !ok {
			continue
		}

		decl.Kind = TypeKindStruct
		decl.Fields = e.typedFields(pkg, st)
	}
}

func (e *extractor) typedFields(pkg *types.Package, st *types.Struct) []FieldInfo {
	out := make([]FieldInfo, 0, st.NumFields())
	for i := range st.NumFields() {
		v := st.Field(i)
		if v.Name() == "_" || (v.Pkg() != pkg && !v.Exported()) {
			continue
		}

		fi := FieldInfo{
			Name:     v.Name(),
			Embedded: v.Embedded(),
			Tag:      st.Tag(i),
			Pos:      e.fset.Position(v.Pos()),
		}

		if lit := e.tags[v.Pos()]; lit != nil {
			_, fi.TagPos, fi.TagLit = e.tagContent(lit)
		} else if fi.Tag != "" {
			fi.TagPos = fi.Pos
		}

		out = append(out, fi)
	}

	return out
}

func (e *extractor) kindOf(name string, expr ast.Expr) TypeKind {
	switch t := expr.(type) {
	case *ast.StructType:
		return TypeKindStruct
	case *ast.InterfaceType:
		return TypeKindInterface
	case *ast.StarExpr:
		return TypeKindPointer
	case *ast.ArrayType:
		if t.Len == nil {
			return TypeKindSlice
		}
		return TypeKindArray
	case *ast.MapType:
		return TypeKindMap
	case *ast.FuncType:
		return TypeKindFunc
	case *ast.ChanType:
		return TypeKindChan
	case *ast.ParenExpr:
		return e.kindOf(name, t.X)
	case *ast.Ident:
		if !basicTypes[t.Name] {
			return TypeKindAlias
		}
		if e.consts[name] > 0 {
			return TypeKindEnum
		}
		return TypeKindBasic
	case *ast.SelectorExpr, *ast.IndexExpr, *ast.IndexListExpr:
		return TypeKindAlias
	default:
		return TypeKindUnknown
	}
}

func (e *extractor) fields(st *ast.StructType) []FieldInfo {
	var out []FieldInfo
	for _, f := range st.Fields.List {
		var tag, lit string
		var tagPos token.Position
		if f.Tag != nil {
			tag, tagPos, lit = e.tagContent(f.Tag)
		}

		if len(f.Names) == 0 {
			out = append(out, FieldInfo{
				Name:     embeddedName(f.Type),
				Embedded: true,
				Tag:      tag,
				TagPos:   tagPos,
				TagLit:   lit,
				Pos:      e.fset.Position(f.Type.Pos()),
			})

			continue
		}

		for _, n := range f.Names {
			if n.Name == "_" {
				continue
			}

			out = append(out, FieldInfo{
				Name:   n.Name,
				Tag:    tag,
				TagPos: tagPos,
				TagLit: lit,
				Pos:    e.fset.Position(n.Pos()),
			})
		}
	}

	return out
}

// tagContent unquotes a struct tag literal. It returns the tag, the position
// of its first content character and the literal as written.
func (e *extractor) tagContent(lit *ast.BasicLit) (string, token.Position, string) {
	pos := e.fset.Position(lit.Pos())
	pos.Offset++
	pos.Column++

	s, err := strconv.Unquote(lit.Value)
	if err != nil {
		s = strings.Trim(lit.Value, "`\"")
	}

	return s, pos, lit.Value
}

// fieldIdents returns the identifiers that name a field: its names, or the
// type name of an embedded field.
func fieldIdents(f *ast.Field) []*ast.Ident {
	if len(f.Names) > 0 {
		return f.Names
	}

	if id := embeddedIdent(f.Type); id != nil {
		return []*ast.Ident{id}
	}

	return nil
}

// embeddedName returns the implicit field name of an embedded field.
func embeddedName(expr ast.Expr) string {
	if id := embeddedIdent(expr); id != nil {
		return id.Name
	}

	return ""
}

func embeddedIdent(expr ast.Expr) *ast.Ident {
	switch t := expr.(type) {
	case *ast.Ident:
		return t
	case *ast.StarExpr:
		return embeddedIdent(t.X)
	case *ast.SelectorExpr:
		return t.Sel
	case *ast.IndexExpr:
		return embeddedIdent(t.X)
	case *ast.IndexListExpr:
		return embeddedIdent(t.X)
	case *ast.ParenExpr:
		return embeddedIdent(t.X)
	default:
		return nil
	}
}

func hasDirective(doc *ast.CommentGroup) bool {
	if doc == nil {
		return false
	}

	for _, c := range doc.List {
		if strings.TrimSpace(c.Text) == DeriveDirective {
			return true
		}
	}

	return false
}
