package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kosmi-edu/kosmi/internal/config"
	"github.com/kosmi-edu/kosmi/internal/logger"
	"github.com/kosmi-edu/kosmi/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "kosmi",
	Short: "Lessons for curious kids",
	Long:  "Kosmi: lesson server and terminal lesson player for children in groep 3-8.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		files, _ := cmd.Flags().GetStringSlice("env-file")
		return config.LoadDotEnv(files...)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "SQLite path or postgres:// DSN (overrides KOSMI_DATABASE_URL)")
	rootCmd.PersistentFlags().StringSlice("env-file", nil, "Load variables from these .env files (default ./.env)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(pointsCmd)
	rootCmd.AddCommand(childrenCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database location using --db (highest
// priority), then KOSMI_DATABASE_URL, then store.DefaultDBPath.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if p := config.ServerFromEnv().DatabaseURL; p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore resolves the database and opens it. The caller closes it.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// cliLogger builds the logger for one-shot commands from KOSMI_LOG_*.
func cliLogger() (*logger.Logger, error) {
	cfg := config.ServerFromEnv().Log
	return logger.New(logger.Options{Mode: cfg.Mode, Level: cfg.Level, HashSalt: cfg.HashSalt})
}
