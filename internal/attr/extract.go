package attr

import (
	"fmt"
	"go/token"
	"slices"
	"strconv"
	"unicode/utf8"

	"debug-generator/internal/analyze"
	"debug-generator/internal/diagnostic"
	"debug-generator/internal/match"
)

// Key is the recognized struct tag key.
const Key = "debug"

// MalformedMessage is reported for tag entries using any other key.
const MalformedMessage = "expected `" + Key + `:"..."` + "`"

// Options tune the extraction.
type Options struct {
	// AllowTags lists foreign tag keys that are tolerated next to the
	// recognized key. Empty means every foreign key:value entry is rejected.
	AllowTags []string
}

// Extract returns the format string of a field's debug tag.
//
// The first well-formed debug entry wins. A debug entry whose value is not a
// quoted string is skipped with a warning. Any other key:value entry that is
// not allowed fails with a malformed-annotation error and ends the scan.
// Bare tokens are ignored.
func Extract(typeName string, field analyze.FieldInfo, opts Options) (string, bool, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	for _, e := range Parse(field.Tag) {
		if !e.HasValue {
			continue
		}

		pos := entryPos(field, e.Offset)

		if e.Key == Key {
			if e.Quoted {
				return e.Value, true, diags
			}

			diags.AddWarning(diagnostic.CodeIgnoredAnnotation,
				fmt.Sprintf("%s: value is not a string literal, using default rendering", e.Raw),
				pos, typeName, field.Name)

			continue
		}

		if slices.Contains(opts.AllowTags, e.Key) {
			continue
		}

		diags.AddError(diagnostic.CodeMalformedAnnotation, MalformedMessage, pos, typeName, field.Name)

		if _, ok := match.Closest(e.Key, []string{Key}, match.DefaultMinScore); ok {
			diags.Errors[len(diags.Errors)-1].Hint = "did you mean `" + Key + "`?"
		}

		return "", false, diags
	}

	return "", false, diags
}

// entryPos returns the position of the tag entry at offset. The offset
// counts bytes of the unquoted tag; for an interpreted literal it is mapped
// back through the escapes as written.
func entryPos(field analyze.FieldInfo, offset int) token.Position {
	pos := field.TagPos
	if pos.Line == 0 {
		return pos
	}

	offset = literalOffset(field.TagLit, offset)
	pos.Offset += offset
	pos.Column += offset

	return pos
}

// literalOffset maps a byte offset of the unquoted content of lit to the
// offset of the same byte in lit's body. Raw literals and unknown literals
// map one to one.
func literalOffset(lit string, offset int) int {
	if len(lit) < 2 || lit[0] != '"' {
		return offset
	}

	body := lit[1 : len(lit)-1]
	rest := body

	for n := 0; n < offset && rest != ""; {
		r, multibyte, tail, err := strconv.UnquoteChar(rest, '"')
		if err != nil {
			break
		}

		if multibyte {
			n += utf8.RuneLen(r)
		} else {
			n++
		}

		rest = tail
	}

	return len(body) - len(rest)
}
