// Package main is the entry point for the codehost CLI.
//
//	@title			codehost API
//	@version		1.0
//	@description	Users, repositories, commits, issues and stars of a small code host.
//	@BasePath		/
package main

import (
	"fmt"
	"os"

	"github.com/just-nibble/codehost/pkg/config"
	"github.com/spf13/cobra"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var envFile string

	cmd := &cobra.Command{
		Use:           "codehost",
		Short:         "codehost API server",
		Long:          `codehost serves a REST API over users, repositories, commits, issues and stars.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Path to .env file (default: .env in current directory)")

	cmd.AddCommand(serveCmd(&envFile))
	cmd.AddCommand(migrateCmd(&envFile))
	cmd.AddCommand(seedCmd(&envFile))
	cmd.AddCommand(versionCmd())

	return cmd
}

func loadConfig(envFile string) (config.Config, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
