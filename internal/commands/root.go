// Package commands implements the paramspec command line.
package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCommand creates the paramspec command with every subcommand attached.
func NewRootCommand(version string) *cobra.Command {
	global := &GlobalOptions{}

	rootCmd := &cobra.Command{
		Use:   "paramspec",
		Short: "Generate API parameter declarations from validation contracts",
		Long: `Reads validation contracts, infers each key's type and whether it is required,
and renders the result as Grape-style params documentation or a Rails
strong-parameters permit list.

Configuration is read from the --config file and PARAMSPEC_* environment variables.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&global.ConfigFile, "config", "", "Config file (YAML)")

	rootCmd.AddCommand(
		NewGenerateCommand(global),
		NewInspectCommand(global),
		NewServeCommand(global),
		NewDoctorCommand(global),
		NewVersionCommand(version),
	)

	return rootCmd
}
