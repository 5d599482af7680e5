package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/calc"
)

// config holds settings from the config file, overridden by flags.
type config struct {
	MaxDepth int    `yaml:"max_depth"`
	Echo     bool   `yaml:"echo"`
	Prompt   string `yaml:"prompt"`
	In       string `yaml:"in"`
}

func defaultConfig() config {
	return config{
		MaxDepth: calc.DefaultMaxDepth,
		Prompt:   "> ",
	}
}

// readConfig decodes YAML from r into cfg. Keys absent from r leave cfg
// unchanged, and an empty document is not an error.
func readConfig(r io.Reader, cfg *config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// loadConfig builds the configuration for cmd: defaults, then the config file
// named by --config or CALC_CONFIG, then any flags set explicitly.
func loadConfig(cmd *cobra.Command) (config, error) {
	cfg := defaultConfig()
	path := os.Getenv("CALC_CONFIG")
	if v, _ := cmd.Flags().GetString("config"); v != "" {
		path = v
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return cfg, err
		}
		defer f.Close()
		if err := readConfig(f, &cfg); err != nil {
			return cfg, fmt.Errorf("config %s: %w", path, err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("max-depth") {
		cfg.MaxDepth, _ = flags.GetInt("max-depth")
	}
	if flags.Changed("echo") {
		cfg.Echo, _ = flags.GetBool("echo")
	}
	if flags.Changed("in") {
		cfg.In, _ = flags.GetString("in")
	}
	return cfg, nil
}
