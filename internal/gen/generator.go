package gen

import (
	"bytes"
	"go/format"
	"slices"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"debug-generator/internal/common"
	"debug-generator/internal/plan"
)

// DefaultRuntimeImport is the import path of the runtime package used by
// generated code.
const DefaultRuntimeImport = "debug-generator/debugstruct"

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// RuntimeImport is the import path of the debugstruct package.
	RuntimeImport string
	// RuntimeAlias renames the runtime import; empty uses the package name.
	RuntimeAlias string
	// OutputDir receives an .unformatted.go sidecar when formatting fails.
	// Empty disables the sidecar.
	OutputDir string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		RuntimeImport: DefaultRuntimeImport,
	}
}

// Generator generates GoString methods from RenderPlans. It holds no state
// between calls.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	if config.RuntimeImport == "" {
		config.RuntimeImport = DefaultRuntimeImport
	}

	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "order_debug.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// DefaultFilename names the output after the first planned type, the way
// stringer does.
func DefaultFilename(plans []*plan.RenderPlan) string {
	first, ok := common.First(plans)
	if !ok {
		return "debug_gen.go"
	}

	return strings.ToLower(first.TypeName) + "_debug.go"
}

// Synthesize emits the GoString method of a single plan.
func (g *Generator) Synthesize(p *plan.RenderPlan) ([]byte, error) {
	var buf bytes.Buffer
	if err := methodTemplate.Execute(&buf, g.buildMethodData(p)); err != nil {
		return nil, errors.Wrapf(err, "executing template for %s", p.TypeName)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return buf.Bytes(), errors.Wrapf(err, "formatting code for %s", p.TypeName)
	}

	return formatted, nil
}

// GenerateFile emits a complete source file for package pkgName holding one
// GoString method per plan, in plan order. An empty filename selects
// DefaultFilename.
func (g *Generator) GenerateFile(pkgName, filename string, plans []*plan.RenderPlan) (*GeneratedFile, error) {
	if filename == "" {
		filename = DefaultFilename(plans)
	}

	data := &fileData{
		PackageName: pkgName,
		Filename:    filename,
		Import:      g.importSpec(),
		Runtime:     g.runtimeName(),
	}

	for _, p := range plans {
		data.Methods = append(data.Methods, g.buildMethodData(p))
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, errors.Wrap(err, "executing template")
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		if g.config.OutputDir != "" {
			_ = writeUnformatted(g.config.OutputDir, filename, buf.Bytes())
		}

		return &GeneratedFile{
			Filename: filename,
			Content:  buf.Bytes(),
		}, errors.Wrap(err, "formatting code")
	}

	return &GeneratedFile{
		Filename: filename,
		Content:  formatted,
	}, nil
}

func (g *Generator) importSpec() importSpec {
	return importSpec{Alias: g.config.RuntimeAlias, Path: g.config.RuntimeImport}
}

func (g *Generator) runtimeName() string {
	if g.config.RuntimeAlias != "" {
		return g.config.RuntimeAlias
	}

	return common.PkgAlias(g.config.RuntimeImport)
}

// buildMethodData turns a plan into template data.
func (g *Generator) buildMethodData(p *plan.RenderPlan) methodData {
	rt := g.runtimeName()
	recv := receiverName(p.TypeParams, rt)

	m := methodData{
		Recv:     recv,
		RecvType: p.Receiver(),
		Name:     strconv.Quote(p.TypeName),
		Runtime:  rt,
	}

	for _, f := range p.Fields {
		expr := recv + "." + f.Name
		if f.Mode == plan.ModeCustomFormat {
			expr = rt + ".Sprintf(" + strconv.Quote(f.Format) + ", " + expr + ")"
		}

		m.Fields = append(m.Fields, fieldData{
			Name: strconv.Quote(f.Name),
			Expr: expr,
		})
	}

	return m
}

// receiverName picks a receiver identifier that shadows neither a type
// parameter nor the runtime package name.
func receiverName(typeParams []string, runtime string) string {
	for _, name := range []string{"v", "x", "self", "recv"} {
		if name != runtime && !slices.Contains(typeParams, name) {
			return name
		}
	}

	return "debugRecv"
}
