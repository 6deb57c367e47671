package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gaborage/paramspec"
)

// InspectOptions holds options for the inspect command
type InspectOptions struct {
	Contract         ContractSelector
	DescriptionsRoot string
	ShowRules        bool
}

// NewInspectCommand creates the inspect command
func NewInspectCommand(global *GlobalOptions) *cobra.Command {
	opts := &InspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show the inferred schema of a contract",
		Long: `Prints one row per contract key with the inferred type, whether the key is
required and its description. With --rules the printed rule of each key is shown
as well, which explains how the type was inferred.`,
		Example: `  paramspec inspect --contract contracts/user.yaml --rules
  paramspec inspect --name Api::V1::OrderCreateContract`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(global, opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVarP(&opts.Contract.File, "contract", "c", "", "Contract file (YAML)")
	cmd.Flags().StringVarP(&opts.Contract.Name, "name", "n", "", "Contract name to look up in the contracts directory")
	cmd.Flags().StringVar(&opts.Contract.Dir, "contracts-dir", "", "Contracts directory (default from config)")
	cmd.Flags().StringVar(&opts.DescriptionsRoot, "descriptions-root", "", "Root searched for annotated contract sources")
	cmd.Flags().BoolVarP(&opts.ShowRules, "rules", "r", false, "Show each key's rule")

	return cmd
}

func runInspect(global *GlobalOptions, opts *InspectOptions, stdout, stderr io.Writer) error {
	if err := opts.Contract.validate(); err != nil {
		return err
	}

	cfg, err := loadConfig(global, opts.DescriptionsRoot)
	if err != nil {
		return err
	}

	c, err := opts.Contract.load(cfg)
	if err != nil {
		return err
	}

	s := paramspec.NewFromConfig(cfg, newLogger(stderr, cfg)).Schema(c)

	rules := make(map[string]string)
	if opts.ShowRules {
		for _, nr := range c.Rules() {
			rules[nr.Name] = nr.Rule.String()
		}
	}

	fmt.Fprintf(stdout, "Contract: %s\n\n", s.Name())

	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	header := "FIELD\tTYPE\tREQUIRED\tDESCRIPTION"
	if opts.ShowRules {
		header += "\tRULE"
	}
	fmt.Fprintln(tw, header)

	for _, f := range s.Fields() {
		desc := f.Description
		if desc == "" {
			desc = "-"
		}
		line := fmt.Sprintf("%s\t%s\t%t\t%s", f.Name, f.Type, f.Required, desc)
		if opts.ShowRules {
			line += "\t" + rules[f.Name]
		}
		fmt.Fprintln(tw, line)
	}

	return tw.Flush()
}
