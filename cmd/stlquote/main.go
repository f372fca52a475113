package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/philipparndt/stlquote/internal/app"
	"github.com/philipparndt/stlquote/internal/config"
	"github.com/philipparndt/stlquote/version"
	"github.com/spf13/cobra"
)

var (
	configFile string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "stlquote",
	Short: "Instant 3D print quotes for STL and OBJ files",
	Long: `stlquote measures a 3D model (binary STL, ASCII STL or OBJ) and turns its
volume into a print quote using the configured material, rates and base fee.`,
	Version:       version.GetFullVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Pricing config file (.yaml, .yml or .toml)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
}

// loadConfig returns the configuration selected by --config, or the defaults
func loadConfig() (config.Config, error) {
	if configFile == "" {
		return config.Default(), nil
	}
	return config.Load(configFile)
}

// newSession builds a quoting session from the active configuration
func newSession() (*app.Session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	calc, err := cfg.Calculator()
	if err != nil {
		return nil, err
	}
	return app.NewSession(cfg.MeshParser(), calc), nil
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
