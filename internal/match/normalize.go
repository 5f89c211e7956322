package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent folds an identifier for fuzzy comparison: CamelCase and
// separators (_, -, space) are dropped and the result is lower case, so
// "OrderItem", "order_item" and "orderItem" all become "orderitem".
func NormalizeIdent(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, tok := range splitWords(s) {
		b.WriteString(strings.ToLower(tok))
	}

	return b.String()
}

// splitWords splits an identifier at separators and CamelCase boundaries.
//
//	"OrderID"         -> ["Order", "ID"]
//	"XMLParser"       -> ["XML", "Parser"]
//	"getHTTPResponse" -> ["get", "HTTP", "Response"]
//	"unit_price"      -> ["unit", "price"]
func splitWords(s string) []string {
	var (
		words []string
		cur   strings.Builder
	)

	flush := func() {
		if cur.Len() > 0 {
			words = append(words, cur.String())
			cur.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()

			continue
		}

		if i > 0 && wordStarts(runes, i) {
			flush()
		}

		cur.WriteRune(r)
	}

	flush()

	return words
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// wordStarts reports whether runes[i] begins a new CamelCase word.
func wordStarts(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	if !unicode.IsUpper(prev) {
		return true
	}

	// Last capital of an acronym followed by a lower case word: "XMLParser".
	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
