package main

import (
	"github.com/spf13/cobra"

	"github.com/MR-CodersHub/Travel-Agency-Webapp/config"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/database/seeders"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/store"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Provision the initial admin and demo accounts",
	Long: "Runs every registered seeder against the configured store. " +
		"Seeding is idempotent: existing records are left alone.",
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := config.Load(); err != nil {
			return err
		}
		st, err := store.Connect()
		if err != nil {
			return err
		}
		return seeders.RunAll(st)
	},
}
