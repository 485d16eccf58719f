// Package main is the entry point for the arena command
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/automoto/doomerang-arena/assets"
	"github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/logger"
	"github.com/automoto/doomerang-arena/shared/leveldata"
)

var (
	logLevel   string
	logJSON    bool
	configPath string
	levelPath  string
	seed       int64
)

var rootCmd = &cobra.Command{
	Use:   "arena",
	Short: "Top-down arena combat simulation",
	Long: `Arena runs the combat and navigation simulation on a TMX arena,
either headless or in a debug window.`,
	PersistentPreRunE: setup,
	SilenceUsage:      true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "log as JSON")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML file overriding tuning values")
	rootCmd.PersistentFlags().StringVar(&levelPath, "level", "", "TMX arena file (default: built-in demo arena)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (default from config)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(watchCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	if err := logger.Configure(logLevel, logJSON); err != nil {
		return err
	}
	if configPath == "" {
		return nil
	}
	f, err := os.Open(configPath)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	if err := config.LoadOverrides(f); err != nil {
		return fmt.Errorf("load config %s: %w", configPath, err)
	}
	logger.For("cli").WithField("path", configPath).Info("config overrides applied")
	return nil
}

// loadLevel reads the --level file, or the embedded demo arena without one.
func loadLevel() (*leveldata.Arena, error) {
	if levelPath == "" {
		return assets.LoadLevel(assets.DefaultLevel)
	}
	return leveldata.LoadArena(os.DirFS(filepath.Dir(levelPath)), filepath.Base(levelPath))
}

func simSeed() int64 {
	if seed != 0 {
		return seed
	}
	return config.Sim.Seed
}
