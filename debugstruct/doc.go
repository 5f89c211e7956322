// Package debugstruct renders struct values for fmt's %#v verb.
//
// It is the runtime half of debug-generator: generated GoString methods build
// their output with a Builder, one Field call per struct field in declaration
// order.
//
//	func (v Foo) GoString() string {
//		return debugstruct.New("Foo").
//			Field("a", v.a).
//			Field("b", debugstruct.Sprintf("%s!", v.b)).
//			Finish()
//	}
//
// For Foo{a: 1, b: "hi"} this yields
//
//	Foo{a: 1, b: hi!}
//
// Plain field values are rendered with %#v, so nested types with a generated
// GoString compose. Values wrapped by Sprintf are inserted verbatim.
package debugstruct
