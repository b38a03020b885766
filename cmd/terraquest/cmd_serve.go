package main

import (
	"github.com/spf13/cobra"

	"github.com/MR-CodersHub/Travel-Agency-Webapp/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(_ *cobra.Command, _ []string) error {
		return server.Start()
	},
}
