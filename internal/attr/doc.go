// Package attr extracts the format override of a struct field from its tag.
//
// The recognized key is "debug"; its value is a fmt format string:
//
//	Mask uint8 `debug:"%08b"`
//
// Any other key:"value" entry on the same tag is rejected unless the key is
// explicitly allowed. Bare tokens without a value are ignored.
package attr
