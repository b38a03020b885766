// Command terraquest is the project CLI: serve the API, seed the store,
// snapshot data and inspect routes.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "terraquest",
	Short: "TerraQuest travel-booking backend",
	Long:  "TerraQuest is the API backend for the TerraQuest travel-booking app.",
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(routeListCmd)
}
