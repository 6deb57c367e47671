package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gaborage/paramspec"
	"github.com/gaborage/paramspec/adapter"
)

// GenerateOptions holds options for the generate command
type GenerateOptions struct {
	Contract         ContractSelector
	Adapter          string
	ParamType        string
	Format           string
	OutputFile       string
	DescriptionsRoot string
}

// NewGenerateCommand creates the generate command
func NewGenerateCommand(global *GlobalOptions) *cobra.Command {
	opts := &GenerateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render a contract as framework parameter declarations",
		Long: `Builds the schema of a validation contract and renders it with an adapter:
Grape-style params documentation (grape) or a strong-parameters permit list (rails).

Field descriptions are read from "# @field = text" annotations in the contract
source when a descriptions root is configured.`,
		Example: `  # Grape params for a contract file
  paramspec generate --contract contracts/api/v1/user_create_contract.yaml

  # Rails permit list by contract name, as YAML
  paramspec generate --name Api::V1::UserCreateContract --adapter rails --format yaml

  # Query-string documentation written to a file
  paramspec generate -c user.yaml --param-type query -o docs/user_params.json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(global, opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVarP(&opts.Contract.File, "contract", "c", "", "Contract file (YAML)")
	cmd.Flags().StringVarP(&opts.Contract.Name, "name", "n", "", "Contract name to look up in the contracts directory")
	cmd.Flags().StringVar(&opts.Contract.Dir, "contracts-dir", "", "Contracts directory (default from config)")
	cmd.Flags().StringVarP(&opts.Adapter, "adapter", "a", "", "Adapter (grape|rails, default from config)")
	cmd.Flags().StringVar(&opts.ParamType, "param-type", "", "Grape documentation param_type (default from config)")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "json", "Output format (json|yaml)")
	cmd.Flags().StringVarP(&opts.OutputFile, "output", "o", "", "Output file path (default stdout)")
	cmd.Flags().StringVar(&opts.DescriptionsRoot, "descriptions-root", "", "Root searched for annotated contract sources")

	return cmd
}

func runGenerate(global *GlobalOptions, opts *GenerateOptions, stdout, stderr io.Writer) error {
	if err := validateGenerateOptions(opts); err != nil {
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

	resolver := paramspec.NewFromConfig(cfg, newLogger(stderr, cfg))

	var callOpts []paramspec.Option
	if opts.Adapter != "" {
		callOpts = append(callOpts, paramspec.WithAdapter(adapter.Name(opts.Adapter)))
	}
	if opts.ParamType != "" {
		callOpts = append(callOpts, paramspec.WithParamType(opts.ParamType))
	}

	out, err := resolver.From(c, callOpts...)
	if err != nil {
		return err
	}

	data, err := encodeOutput(out, opts.Format)
	if err != nil {
		return err
	}

	if opts.OutputFile == "" || opts.OutputFile == "-" {
		_, err = stdout.Write(data)
		return err
	}

	if err := os.MkdirAll(filepath.Dir(opts.OutputFile), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(opts.OutputFile, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	fmt.Fprintf(stderr, "✓ %s params for %s written to %s\n", out.Adapter(), c.Name(), opts.OutputFile)
	return nil
}

func encodeOutput(out adapter.Output, format string) ([]byte, error) {
	switch format {
	case "yaml", "yml":
		return yaml.Marshal(out)
	default:
		b, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	}
}

func validateGenerateOptions(opts *GenerateOptions) error {
	if err := opts.Contract.validate(); err != nil {
		return err
	}

	switch opts.Format {
	case "yaml", "yml", "json":
	default:
		return fmt.Errorf("unsupported format: %s (supported: yaml, json)", opts.Format)
	}

	if opts.OutputFile != "" && opts.OutputFile != "-" && filepath.Ext(opts.OutputFile) == "" {
		switch opts.Format {
		case "json":
			opts.OutputFile += ".json"
		default:
			opts.OutputFile += ".yaml"
		}
	}

	return nil
}
