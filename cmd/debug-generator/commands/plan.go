package commands

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"debug-generator/internal/plan"
)

func newPlanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan [packages]",
		Short: "Print the render plan of the selected types as YAML",
		Long: `Print, for every selected type, the fields in output order and how each
one is rendered (default or custom-format). Nothing is written to disk.`,
		RunE: runPlan,
	}
}

func runPlan(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd, args)
	if err != nil {
		return err
	}
	defer s.close()

	results, err := s.planAll()
	if err != nil {
		return err
	}

	for _, r := range results {
		data, err := plan.ExportYAML(r.pkg.Name, r.plans)
		if err != nil {
			return err
		}

		if _, err := cmd.OutOrStdout().Write(data); err != nil {
			return errors.Wrap(err, "failed to write plan")
		}
	}

	return nil
}
