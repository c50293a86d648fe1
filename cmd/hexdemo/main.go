// hexdemo measures distances between cells on a hexagonal grid.
//
// Usage:
//
//	hexdemo          - Print the distance for each configured pair
//	hexdemo greet    - Print the greeting
//
// Global flags:
//
//	--config <path>  - YAML file with pairs and greeting (env HEXDEMO_CONFIG)
//	--verbose        - Debug logging on stderr
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gravitas-games/hexgrid/internal/config"
)

var (
	flagConfig  string
	flagVerbose bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "hexdemo",
		Short:         "Hex grid distance demo",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runDistance,
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", os.Getenv("HEXDEMO_CONFIG"), "Path to YAML config (default: built-in pair)")
	root.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	root.AddCommand(newGreetCmd())
	return root
}

func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: "hexdemo",
		Level:  log.WarnLevel,
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadConfig returns the built-in defaults unless a path was given.
func loadConfig(logger *log.Logger) (*config.Config, error) {
	if flagConfig == "" {
		logger.Debug("using built-in configuration")
		return config.Default(), nil
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	logger.Debug("configuration loaded", "path", flagConfig, "pairs", len(cfg.Pairs))
	return cfg, nil
}

func runDistance(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd.ErrOrStderr())

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}
	pairs, err := cfg.Resolve()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, p := range pairs {
		d, err := p.From.DistanceChecked(p.To)
		if err != nil {
			logger.Debug("distance failed", "from", p.From, "to", p.To)
			return err
		}
		logger.Debug("measured", "from", p.From, "to", p.To, "distance", d)
		fmt.Fprintf(out, "distance: %d\n", d)
	}
	return nil
}
