// Package gen provides deterministic Go code generation for GoString methods.
//
// Generation approach uses text/template + go/format for readable code. Each
// RenderPlan becomes one method:
//
//	func (v Foo) GoString() string {
//		return debugstruct.New("Foo").
//			Field("a", v.a).
//			Field("b", debugstruct.Sprintf("%s!", v.b)).
//			Finish()
//	}
//
// Codegen patterns:
//   - Default field: the value is passed as is and rendered with %#v
//   - Custom format field: the value is wrapped with debugstruct.Sprintf
//   - Generic types: type parameters are repeated on the receiver
package gen
