package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"

	"github.com/gaborage/paramspec/annotation"
	"github.com/gaborage/paramspec/contract"
)

// DoctorOptions holds options for the doctor command
type DoctorOptions struct {
	ContractsDir string
	Verbose      bool
}

// NewDoctorCommand creates the doctor command
func NewDoctorCommand(global *GlobalOptions) *cobra.Command {
	opts := &DoctorOptions{}

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check configuration and contracts",
		Long: `Performs health checks on the configuration and contract files.

Checks include:
- Configuration loads and validates
- app.version is a semantic version
- Every contract file in the contracts directory parses
- The descriptions root exists and which contracts have annotated sources`,
		Example: `  paramspec doctor
  paramspec doctor --config paramspec.yaml --verbose`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDoctor(global, opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&opts.ContractsDir, "contracts-dir", "", "Contracts directory (default from config)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Verbose output")

	return cmd
}

func runDoctor(global *GlobalOptions, opts *DoctorOptions, out io.Writer) error {
	fmt.Fprintln(out, "🏥 Running paramspec health check...")
	fmt.Fprintln(out)

	cfg, err := loadConfig(global, "")
	if err != nil {
		fmt.Fprintf(out, "❌ Configuration: %v\n", err)
		return fmt.Errorf("health check failed")
	}
	fmt.Fprintf(out, "✅ Configuration valid (default adapter: %s)\n", cfg.Params.Adapter)

	var hasErrors bool

	if isSemver(cfg.App.Version) {
		fmt.Fprintf(out, "✅ Version %s\n", cfg.App.Version)
	} else {
		fmt.Fprintf(out, "⚠️  app.version %q is not a semantic version\n", cfg.App.Version)
	}

	dir := opts.ContractsDir
	if dir == "" {
		dir = cfg.Contracts.Dir
	}
	fmt.Fprintf(out, "📁 Contracts: %s\n", dir)
	registry, err := contract.LoadDir(dir)
	if err != nil {
		fmt.Fprintf(out, "❌ Contracts: %v\n", err)
		hasErrors = true
	} else {
		fmt.Fprintf(out, "✅ %d contract(s) loaded\n", registry.Len())
	}

	if root := cfg.Descriptions.Root; root == "" {
		fmt.Fprintln(out, "⚠️  descriptions.root not set - desc falls back to humanized field names")
	} else if info, err := os.Stat(root); err != nil || !info.IsDir() {
		fmt.Fprintf(out, "❌ descriptions.root %s is not a directory\n", root)
		hasErrors = true
	} else {
		fmt.Fprintf(out, "✅ descriptions.root %s\n", root)
		if registry != nil && opts.Verbose {
			src := annotation.NewFileSource(root, cfg.Descriptions.Patterns, nil)
			for _, name := range registry.SortedNames() {
				if path, ok := src.Find(name); ok {
					fmt.Fprintf(out, "   %s -> %s\n", name, path)
				} else {
					fmt.Fprintf(out, "   %s -> (no annotated source)\n", name)
				}
			}
		}
	}

	fmt.Fprintln(out)
	if hasErrors {
		fmt.Fprintln(out, "❌ Health check failed - please fix the issues above")
		return fmt.Errorf("health check failed")
	}

	fmt.Fprintln(out, "✅ All checks passed")
	return nil
}

func isSemver(version string) bool {
	return semver.IsValid(version)
}
