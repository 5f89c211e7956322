package plan

import (
	"debug-generator/internal/common"
)

// RenderMode describes how one field value is rendered.
type RenderMode int

const (
	// ModeDefault renders the value with %#v.
	ModeDefault RenderMode = iota
	// ModeCustomFormat renders the value through the field's format string.
	ModeCustomFormat
)

// String returns a human-readable mode name.
func (m RenderMode) String() string {
	switch m {
	case ModeDefault:
		return "default"
	case ModeCustomFormat:
		return "custom-format"
	default:
		return common.UnknownStr
	}
}

// MarshalYAML encodes the mode by name.
func (m RenderMode) MarshalYAML() (any, error) {
	return m.String(), nil
}

// RenderPlan is the ordered rendering recipe for one struct type.
type RenderPlan struct {
	// TypeName is the declared type name, also used as the rendered name.
	TypeName string `yaml:"type"`
	// TypeParams are carried over textually into the method receiver.
	TypeParams []string `yaml:"type_params,omitempty"`
	// Fields are in declaration order.
	Fields []FieldPlan `yaml:"fields"`
}

// FieldPlan is the rendering rule of one field.
type FieldPlan struct {
	Name   string     `yaml:"name"`
	Mode   RenderMode `yaml:"mode"`
	Format string     `yaml:"format,omitempty"`
}

// Receiver returns the receiver type expression, including type parameters.
func (p *RenderPlan) Receiver() string {
	if len(p.TypeParams) == 0 {
		return p.TypeName
	}

	s := p.TypeName + "["
	for i, tp := range p.TypeParams {
		if i > 0 {
			s += ", "
		}
		s += tp
	}

	return s + "]"
}
