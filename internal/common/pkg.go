package common

import (
	"path"
	"regexp"
	"strings"
)

var (
	majorSuffix   = regexp.MustCompile(`^v[0-9]+$`)
	gopkgInSuffix = regexp.MustCompile(`\.v[0-9]+$`)
)

// PkgAlias guesses the package name of an import path: its last element,
// skipping a /vN major version element and a gopkg.in style .vN suffix.
// It returns "" for an empty path.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	base := path.Base(pkgPath)
	if dir := path.Dir(pkgPath); majorSuffix.MatchString(base) && dir != "." {
		base = path.Base(dir)
	}

	return strings.TrimSuffix(base, gopkgInSuffix.FindString(base))
}
