package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Larry-Yatch/FTP-v3-unified-sub001/internal/registry"
	"github.com/Larry-Yatch/FTP-v3-unified-sub001/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "ftpv3",
	Short: "Cross-assessment insight engine for the Financial Transformation Program",
	Long: "ftpv3 derives second-order insights from a person's completed FTP assessments: " +
		"an archetype, prioritized risk warnings, the awareness gap, belief locks, and " +
		"belief-behavior gaps.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides FTPV3_DB env var)")
	rootCmd.PersistentFlags().String("registry", "", "Path to a catalogue YAML file (defaults to the built-in catalogue)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(snapshotsCmd)
	rootCmd.AddCommand(registryCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then FTPV3_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// loadRegistry returns the catalogue from --registry when given, otherwise
// the built-in one.
func loadRegistry(cmd *cobra.Command) (*registry.Registry, error) {
	if p, _ := cmd.Flags().GetString("registry"); p != "" {
		return registry.LoadFile(p)
	}
	return registry.Default()
}

// buildLogger returns a stderr logger; --verbose enables debug output.
func buildLogger(cmd *cobra.Command) (*zap.Logger, error) {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}
