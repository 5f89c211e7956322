package debugstruct

import (
	"fmt"
	"reflect"
	"strings"
)

// Builder accumulates the rendering of one struct value.
type Builder struct {
	buf      strings.Builder
	fields   int
	finished bool
	out      string
}

// New starts the rendering of a struct named name.
func New(name string) *Builder {
	b := &Builder{}
	b.buf.WriteString(name)
	b.buf.WriteByte('{')

	return b
}

// Field appends a "name: value" entry. value is rendered with %#v.
// Calls after Finish are ignored.
func (b *Builder) Field(name string, value any) *Builder {
	if b.finished {
		return b
	}

	if b.fields > 0 {
		b.buf.WriteString(", ")
	}

	b.buf.WriteString(name)
	b.buf.WriteString(": ")
	fmt.Fprintf(&b.buf, "%#v", value)
	b.fields++

	return b
}

// Finish closes the struct and returns the rendering. It is safe to call
// more than once.
func (b *Builder) Finish() string {
	if !b.finished {
		b.buf.WriteByte('}')
		b.out = b.buf.String()
		b.finished = true
	}

	return b.out
}

// Formatted is a value rendered through a custom format string. Formatting is
// deferred until the value is printed.
type Formatted struct {
	format string
	args   []any
}

// Sprintf wraps args and format into a value that a Builder inserts verbatim.
//
// When format has more verbs than there are args and the single arg is an
// array, slice or struct, its elements or fields become the args, so
// Sprintf("%d-%d", [2]int{1, 2}) renders as 1-2.
func Sprintf(format string, args ...any) Formatted {
	if len(args) == 1 {
		if n := countVerbs(format); n > 1 {
			if parts, ok := spread(args[0]); ok {
				args = parts
			}
		}
	}

	return Formatted{format: format, args: args}
}

// String returns the formatted text.
func (f Formatted) String() string {
	return fmt.Sprintf(f.format, f.args...)
}

// GoString returns the formatted text, unquoted.
func (f Formatted) GoString() string {
	return f.String()
}

// spread returns the elements of an array or slice, or the fields of a
// struct. Unexported fields are passed as reflect.Values, which fmt prints
// by their underlying value.
func spread(arg any) ([]any, bool) {
	rv := reflect.ValueOf(arg)

	var parts []any

	switch rv.Kind() {
	case reflect.Array, reflect.Slice:
		for i := range rv.Len() {
			parts = append(parts, operand(rv.Index(i)))
		}
	case reflect.Struct:
		for i := range rv.NumField() {
			parts = append(parts, operand(rv.Field(i)))
		}
	default:
		return nil, false
	}

	return parts, true
}

func operand(v reflect.Value) any {
	if v.CanInterface() {
		return v.Interface()
	}

	return v
}

// countVerbs returns the number of operands format consumes, counting *
// widths and precisions. It returns -1 for formats with explicit argument
// indexes, whose operand count is not positional.
func countVerbs(format string) int {
	n := 0

	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			continue
		}

		// Skip flags, width and precision up to the verb.
		for i++; i < len(format) && strings.IndexByte("+-# 0123456789.*[", format[i]) >= 0; i++ {
			switch format[i] {
			case '[':
				return -1
			case '*':
				n++
			}
		}

		if i < len(format) && format[i] != '%' {
			n++
		}
	}

	return n
}
