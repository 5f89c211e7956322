package gen

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes all generated files to the output directory.
// It creates the directory if it doesn't exist.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	err := os.MkdirAll(outputDir, dirPerm)
	if err != nil {
		return errors.Wrap(err, "creating output directory")
	}

	for _, file := range files {
		outputPath := filepath.Join(outputDir, file.Filename)

		err := os.WriteFile(outputPath, file.Content, filePerm)
		if err != nil {
			return errors.Wrapf(err, "writing file %s", file.Filename)
		}
	}

	return nil
}

// IsUpToDate reports whether the file on disk matches the generated content.
// A missing file is out of date.
func IsUpToDate(file GeneratedFile, outputDir string) (bool, error) {
	existing, err := os.ReadFile(filepath.Join(outputDir, file.Filename))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "reading file %s", file.Filename)
	}

	return string(existing) == string(file.Content), nil
}

// writeUnformatted saves code that failed to format as <name>.unformatted.go
// in outDir, so the broken output can be inspected. Errors are returned but
// callers treat the sidecar as best-effort.
func writeUnformatted(outDir, filename string, content []byte) error {
	if outDir == "" || filename == "" {
		return nil
	}

	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return errors.Wrap(err, "creating sidecar directory")
	}

	name := strings.TrimSuffix(filename, ".go") + ".unformatted.go"

	return errors.Wrap(os.WriteFile(filepath.Join(outDir, name), content, filePerm), "writing sidecar")
}
