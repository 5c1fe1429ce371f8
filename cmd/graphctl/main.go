// graphctl is the operator CLI for the social graph backend. It works
// against the local data directory, not a running server.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "graphctl",
	Short: "Manage the social graph backend",
	Long: `graphctl runs the social graph API server and performs
maintenance tasks against its data directory: importing and exporting
whole graphs and printing graph statistics.`,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(statsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
