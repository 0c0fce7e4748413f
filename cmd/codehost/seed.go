package main

import (
	"github.com/spf13/cobra"
)

func seedCmd(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Migrate, then fill an empty database with demo data",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*envFile)
			if err != nil {
				return err
			}
			a, err := newApp(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer a.close()
			if err := a.migrate(); err != nil {
				return err
			}
			return a.seed(cmd.Context())
		},
	}
}
