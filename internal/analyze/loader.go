package analyze

import (
	"go/parser"
	"go/token"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedImports

// Loader loads Go packages and extracts their type declarations.
type Loader struct {
	// Dir is the working directory patterns are resolved against.
	Dir string
	// BuildFlags are passed to the underlying build system.
	BuildFlags []string
}

// NewLoader creates a new Loader rooted at dir. Build tags, if any, select
// the files that are loaded.
func NewLoader(dir string, buildTags ...string) *Loader {
	l := &Loader{Dir: dir}
	if len(buildTags) > 0 {
		l.BuildFlags = []string{"-tags=" + strings.Join(buildTags, ",")}
	}

	return l
}

// LoadPackages loads the packages matching the given patterns.
// Patterns are standard Go package patterns (e.g., ".", "./store", "debug-generator/store").
//
// Only syntax errors are fatal. Type errors are tolerated because a stale
// generated file must not prevent regenerating it.
func (l *Loader) LoadPackages(patterns ...string) ([]*PackageInfo, error) {
	if len(patterns) == 0 {
		patterns = []string{"."}
	}

	cfg := &packages.Config{
		Mode:       LoadMode,
		Dir:        l.Dir,
		BuildFlags: l.BuildFlags,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load packages")
	}

	if len(pkgs) == 0 {
		return nil, errors.Newf("no packages matched %v", patterns)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			if e.Kind == packages.TypeError {
				continue
			}
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, errors.Newf("package errors: %v", errs)
	}

	out := make([]*PackageInfo, 0, len(pkgs))
	for _, pkg := range pkgs {
		out = append(out, processPackage(pkg))
	}

	return out, nil
}

// processPackage extracts type declarations from a loaded package.
func processPackage(pkg *packages.Package) *PackageInfo {
	info := &PackageInfo{
		Path:  pkg.PkgPath,
		Name:  pkg.Name,
		Files: pkg.CompiledGoFiles,
	}

	if len(pkg.GoFiles) > 0 {
		info.Dir = filepath.Dir(pkg.GoFiles[0])
	}

	ex := newExtractor(pkg.Fset)
	for _, file := range pkg.Syntax {
		ex.addFile(file)
	}

	info.Types = ex.finish()
	ex.resolveTyped(pkg.Types)

	return info
}

// ParseSource parses a single Go source file. src may be nil, in which case
// the file is read from filename.
func ParseSource(filename string, src any) (*PackageInfo, error) {
	fset := token.NewFileSet()

	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", filename)
	}

	ex := newExtractor(fset)
	ex.addFile(file)

	return &PackageInfo{
		Name:  file.Name.Name,
		Dir:   filepath.Dir(filename),
		Files: []string{filename},
		Types: ex.finish(),
	}, nil
}
