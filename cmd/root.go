package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/Abraxas-365/careersync/migrations"
	"github.com/Abraxas-365/careersync/pkg/config"
	"github.com/Abraxas-365/careersync/pkg/logx"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

var envFile string

var rootCmd = &cobra.Command{
	Use:   "careersync",
	Short: "CareerSync API: job tracking, resumes, ATS checks and cover letters",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCmd.RunE(cmd, args)
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return serve(cfg)
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
		defer cancel()

		db, err := sqlx.ConnectContext(ctx, "postgres", cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("connect database: %w", err)
		}
		defer db.Close()

		return migrations.Apply(ctx, db)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the build version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "dotenv file to load before reading the environment (default .env)")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads configuration and sets up the global logger from it
func loadConfig() (*config.Config, error) {
	var files []string
	if envFile != "" {
		files = append(files, envFile)
	}

	cfg, err := config.Load(files...)
	if err != nil {
		return nil, err
	}

	if err := logx.Configure(cfg.LogFormat); err != nil {
		return nil, fmt.Errorf("configure logger: %w", err)
	}
	logx.SetLevel(logx.ParseLevel(cfg.LogLevel))

	for _, w := range cfg.Warnings() {
		logx.Warn(w)
	}
	return cfg, nil
}

func main() {
	defer logx.Sync()

	if err := rootCmd.Execute(); err != nil {
		logx.Sync()
		os.Exit(1)
	}
}
