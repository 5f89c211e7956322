package plan

import (
	"debug-generator/internal/analyze"
	"debug-generator/internal/attr"
	"debug-generator/internal/diagnostic"
)

// ShapeMessage is reported for types that are not structs with named fields.
const ShapeMessage = "must define a struct with named fields, not an alternative (variant/enum) type"

// Options configure planning.
type Options struct {
	Attr attr.Options
}

// Build validates decl and derives its RenderPlan. The plan is nil whenever
// the returned diagnostics contain an error.
func Build(decl *analyze.TypeDecl, opts Options) (*RenderPlan, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	fields, ok := validateShape(decl, &diags)
	if !ok {
		return nil, diags
	}

	p := &RenderPlan{
		TypeName:   decl.Name,
		TypeParams: decl.TypeParams,
		Fields:     make([]FieldPlan, 0, len(fields)),
	}

	for _, f := range fields {
		format, custom, fd := attr.Extract(decl.Name, f, opts.Attr)
		diags.Merge(fd)

		if fd.HasErrors() {
			return nil, diags
		}

		fp := FieldPlan{Name: f.Name, Mode: ModeDefault}
		if custom {
			fp.Mode = ModeCustomFormat
			fp.Format = format
		}

		p.Fields = append(p.Fields, fp)
	}

	return p, diags
}

// BuildAll plans every declaration. All types are checked so every error is
// reported, but no plans are returned if any of them failed.
func BuildAll(decls []*analyze.TypeDecl, opts Options) ([]*RenderPlan, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	plans := make([]*RenderPlan, 0, len(decls))
	for _, decl := range decls {
		p, d := Build(decl, opts)
		diags.Merge(d)

		if p != nil {
			plans = append(plans, p)
		}
	}

	if diags.HasErrors() {
		return nil, diags
	}

	return plans, diags
}

// validateShape accepts struct declarations only.
func validateShape(decl *analyze.TypeDecl, diags *diagnostic.Diagnostics) ([]analyze.FieldInfo, bool) {
	if decl.Kind != analyze.TypeKindStruct {
		diags.AddError(diagnostic.CodeUnsupportedShape, ShapeMessage, decl.Pos, decl.Name, "")
		return nil, false
	}

	return decl.Fields, true
}
