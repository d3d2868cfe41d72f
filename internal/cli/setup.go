package cli

import (
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"carnival/internal/catalog"
	"carnival/internal/config"
)

// sourceFlags are shared by commands that read config and catalog.
type sourceFlags struct {
	configPath  *string
	catalogPath *string
}

func addSourceFlags(fs *flag.FlagSet) sourceFlags {
	return sourceFlags{
		configPath:  fs.String("config", "", "Path to .carnival.yml (default: search upward from the working directory)"),
		catalogPath: fs.String("catalog", "", "Path to a YAML or JSON catalog (overrides config)"),
	}
}

// gameSetup is the loaded configuration and catalog for a command.
type gameSetup struct {
	configPath string
	config     config.Config
	catalog    catalog.Catalog
}

// loadSetup resolves and loads config and catalog.
func loadSetup(flags sourceFlags) (gameSetup, error) {
	configPath, err := resolveConfigPath(*flags.configPath)
	if err != nil {
		return gameSetup{}, err
	}
	cfg := config.Default()
	if configPath != "" {
		cfg, err = config.Load(configPath)
		if err != nil {
			return gameSetup{}, err
		}
	}
	if override := strings.TrimSpace(*flags.catalogPath); override != "" {
		abs, err := filepath.Abs(override)
		if err != nil {
			return gameSetup{}, fmt.Errorf("resolve catalog path: %w", err)
		}
		cfg.Catalog = abs
	}
	cat, err := cfg.LoadCatalog()
	if err != nil {
		return gameSetup{}, err
	}
	return gameSetup{configPath: configPath, config: cfg, catalog: cat}, nil
}

// resolveConfigPath normalizes a config path or finds it from CWD.
func resolveConfigPath(configPath string) (string, error) {
	if strings.TrimSpace(configPath) == "" {
		return config.FindConfigPath("")
	}
	abs, err := filepath.Abs(configPath)
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return abs, nil
}

// parseFlags parses args and rejects positional arguments.
func parseFlags(cmd *Command, fs *flag.FlagSet, args []string, stdout, stderr io.Writer) (int, bool) {
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			printCommandUsage(cmd, stdout)
			return ExitOK, false
		}
		fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
		printCommandUsage(cmd, stderr)
		return ExitUsage, false
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		printCommandUsage(cmd, stderr)
		return ExitUsage, false
	}
	return ExitOK, true
}
