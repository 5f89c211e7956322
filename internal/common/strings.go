package common

import (
	"strings"
)

// UnknownStr is the String() result for enum values outside their range.
const UnknownStr = "unknown"

// SplitList splits a comma separated list, trimming blanks and dropping
// empty elements.
func SplitList(values ...string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}

	return out
}
