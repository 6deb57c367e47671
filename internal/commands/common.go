package commands

import (
	"fmt"
	"io"

	"github.com/gaborage/paramspec/config"
	"github.com/gaborage/paramspec/contract"
	"github.com/gaborage/paramspec/logger"
)

// GlobalOptions holds flags shared by every command.
type GlobalOptions struct {
	ConfigFile string
}

// ContractSelector picks one contract either from a file or by name from the
// configured contracts directory.
type ContractSelector struct {
	File string
	Name string
	Dir  string
}

func (s ContractSelector) validate() error {
	switch {
	case s.File == "" && s.Name == "":
		return fmt.Errorf("either --contract or --name is required")
	case s.File != "" && s.Name != "":
		return fmt.Errorf("--contract and --name are mutually exclusive")
	}
	return nil
}

func (s ContractSelector) load(cfg *config.Config) (contract.Contract, error) {
	if s.File != "" {
		return contract.LoadFile(s.File)
	}

	dir := s.Dir
	if dir == "" {
		dir = cfg.Contracts.Dir
	}
	registry, err := contract.LoadDir(dir)
	if err != nil {
		return nil, err
	}
	return registry.Lookup(s.Name)
}

// loadConfig loads the config file and applies the descriptions root flag.
func loadConfig(opts *GlobalOptions, descriptionsRoot string) (*config.Config, error) {
	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		return nil, err
	}
	if descriptionsRoot != "" {
		cfg.Descriptions.Root = descriptionsRoot
	}
	return cfg, nil
}

// newLogger logs to w so command output on stdout stays clean.
func newLogger(w io.Writer, cfg *config.Config) logger.Logger {
	return logger.NewWithWriter(w, cfg.Log.Level, cfg.Log.Pretty)
}
