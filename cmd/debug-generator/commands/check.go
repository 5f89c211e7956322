package commands

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"debug-generator/internal/gen"
	"debug-generator/internal/logging"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [packages]",
		Short: "Check if generated files are up to date",
		Long: `Generate in memory and compare with the files on disk.

Exit codes:
  0 - Files are up to date
  1 - Files are missing or out of date, or generation failed`,
		RunE: runCheck,
	}

	cmd.Flags().StringP("output", "o", "", "Output file name (default: <type>_debug.go)")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd, args)
	if err != nil {
		return err
	}
	defer s.close()

	results, err := s.planAll()
	if err != nil {
		return err
	}

	var stale []string
	for _, r := range results {
		file, dir, err := s.generate(r)
		if err != nil {
			return err
		}

		ok, err := gen.IsUpToDate(*file, dir)
		if err != nil {
			return err
		}

		if !ok {
			stale = append(stale, r.pkg.Name+": "+file.Filename)
			s.log.Warn("generated file is out of date",
				zap.String(logging.FieldPackage, r.pkg.Path),
				zap.String(logging.FieldFile, file.Filename))
		}
	}

	if len(stale) > 0 {
		for _, f := range stale {
			fmt.Fprintf(cmd.ErrOrStderr(), "out of date: %s\n", f)
		}

		return errors.WithHint(
			errors.Newf("%d generated file(s) out of date", len(stale)),
			"run go generate to update them")
	}

	fmt.Fprintln(cmd.OutOrStdout(), "generated files are up to date")

	return nil
}
