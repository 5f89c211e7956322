package gen

import "text/template"

// importSpec is a single import line of a generated file.
type importSpec struct {
	Alias string
	Path  string
}

// fileData holds all data needed for the file template.
type fileData struct {
	PackageName string
	Filename    string
	Import      importSpec
	Runtime     string
	Methods     []methodData
}

// methodData holds the data of one GoString method.
type methodData struct {
	Recv     string
	RecvType string
	Name     string // quoted type name
	Runtime  string
	Fields   []fieldData
}

// fieldData is one Field call of the builder chain.
type fieldData struct {
	Name string // quoted field name
	Expr string
}

const methodText = `{{define "method"}}
// GoString implements fmt.GoStringer.
func ({{.Recv}} {{.RecvType}}) GoString() string {
	return {{.Runtime}}.New({{.Name}}).
{{range .Fields}}		Field({{.Name}}, {{.Expr}}).
{{end}}		Finish()
}
{{end}}`

var methodTemplate = template.Must(template.New("single").Parse(methodText + `{{template "method" .}}`))

var fileTemplate = template.Must(template.New("file").Parse(methodText + `// Code generated by debug-generator. DO NOT EDIT.

package {{.PackageName}}

import {{if .Import.Alias}}{{.Import.Alias}} {{end}}"{{.Import.Path}}"
{{range .Methods}}{{template "method" .}}{{end}}`))
