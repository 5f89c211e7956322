// Package diagnostic provides positioned errors and warnings for the debug
// generator.
//
// A Diagnostic carries a message and the source position it refers to. The
// CLI renders them the way the Go toolchain renders compile errors:
//
//	store/types.go:14:2: expected `debug:"..."`
//
// Key capabilities:
//   - Unsupported shape errors (the type is not a struct with named fields)
//   - Malformed annotation errors (a foreign struct tag key on a field)
//   - Ignored annotation warnings (a debug tag whose value is not a string)
package diagnostic
