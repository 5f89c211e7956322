// Package analyze loads Go packages and extracts the type declarations the
// debug generator works on.
//
// It uses golang.org/x/tools/go/packages for whole packages and go/parser for
// single files, and reduces every top-level type declaration to a TypeDecl:
//   - TypeDecl: type name, type parameters, kind, fields, and position
//   - TypeKind: struct, interface, enum, basic, and the remaining shapes
//   - FieldInfo: field name, raw struct tag, and the tag's position
package analyze
