package commands

import (
	"github.com/spf13/cobra"
)

const rootLong = `Generate GoString (fmt's %#v) methods for Go struct types.

Every selected type must be a struct with named fields. Each field is rendered
as "name: value"; a field tagged debug:"<format>" is rendered through that fmt
format string instead of %#v.

Types are selected with --type, or, without it, by the
//debuggen:derive directive in their doc comment.

Configuration is read from .debug-generator.yaml (searched upwards from the
working directory), DEBUGGEN_* environment variables, and flags.

Examples:
  debug-generator -t Order                 # ./order_debug.go
  debug-generator -t Order,Item -o dbg.go  # both types into ./dbg.go
  debug-generator --allow-tag json ./store # tolerate json tags
  debug-generator plan -t Order            # print the render plan as YAML
  debug-generator check ./...              # verify generated files`

// NewRootCmd builds the debug-generator command tree. The root command
// generates GoString methods for the selected types.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "debug-generator [packages]",
		Short:         "Generate GoString methods for struct types",
		Long:          rootLong,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runGenerate,
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "Config file (default: .debug-generator.yaml found upwards)")
	pf.StringSliceP("type", "t", nil, "Comma separated list of type names")
	pf.StringSlice("allow-tag", nil, "Foreign struct tag keys to tolerate next to debug tags")
	pf.String("runtime-import", "", "Import path of the debugstruct runtime package")
	pf.String("runtime-alias", "", "Import alias for the runtime package")
	pf.StringSlice("tags", nil, "Build tags used when loading packages")
	pf.CountP("verbose", "v", "Increase log verbosity (-v, -vv)")

	root.Flags().StringP("output", "o", "", "Output file name (default: <type>_debug.go)")

	root.AddCommand(newPlanCmd())
	root.AddCommand(newCheckCmd())

	return root
}

func runGenerate(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd, args)
	if err != nil {
		return err
	}
	defer s.close()

	results, err := s.planAll()
	if err != nil {
		return err
	}

	return s.writeAll(results)
}
