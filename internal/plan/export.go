package plan

import (
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// PlanFile is the YAML document written by the plan command.
type PlanFile struct {
	Version string        `yaml:"version"`
	Package string        `yaml:"package"`
	Plans   []*RenderPlan `yaml:"plans"`
}

// ExportYAML renders plans of one package as YAML.
func ExportYAML(pkgName string, plans []*RenderPlan) ([]byte, error) {
	pf := PlanFile{
		Version: "1",
		Package: pkgName,
		Plans:   plans,
	}

	data, err := yaml.Marshal(&pf)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal plans")
	}

	return data, nil
}
