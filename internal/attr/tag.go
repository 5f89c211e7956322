package attr

import (
	"strconv"
)

// Entry is one element of a struct tag.
type Entry struct {
	Key      string
	Value    string // Unquoted value; only meaningful when Quoted
	Raw      string // The entry text as written
	Quoted   bool   // Value was a well-formed quoted string
	HasValue bool   // Entry had the key:value form
	Offset   int    // Byte offset of the entry within the tag
}

// Parse splits a struct tag into its entries, in order. It accepts tags that
// reflect.StructTag would reject, so that malformed entries can be reported
// or skipped individually.
func Parse(tag string) []Entry {
	var out []Entry

	i := 0
	for i < len(tag) {
		for i < len(tag) && isSpace(tag[i]) {
			i++
		}
		if i >= len(tag) {
			break
		}

		start := i
		for i < len(tag) && tag[i] != ':' && !isSpace(tag[i]) && tag[i] != '"' {
			i++
		}

		e := Entry{Key: tag[start:i], Offset: start}

		if i >= len(tag) || tag[i] != ':' {
			// Bare marker; swallow anything up to the next space.
			for i < len(tag) && !isSpace(tag[i]) {
				i++
			}
			e.Raw = tag[start:i]
			out = append(out, e)

			continue
		}

		i++ // ':'
		e.HasValue = true

		if i < len(tag) && tag[i] == '"' {
			end := scanQuoted(tag, i)
			if v, err := strconv.Unquote(tag[i:end]); err == nil {
				// Like reflect.StructTag, the next entry may follow the
				// closing quote directly.
				e.Value, e.Quoted = v, true
				e.Raw = tag[start:end]
				out = append(out, e)
				i = end

				continue
			}
			i = end
		}

		for i < len(tag) && !isSpace(tag[i]) {
			i++
		}

		e.Raw = tag[start:i]
		out = append(out, e)
	}

	return out
}

// scanQuoted returns the index just past the closing quote of the string
// starting at tag[i], or len(tag) if it is unterminated.
func scanQuoted(tag string, i int) int {
	j := i + 1
	for j < len(tag) && tag[j] != '"' {
		if tag[j] == '\\' {
			j++
		}
		j++
	}

	if j < len(tag) {
		return j + 1
	}

	return len(tag)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
