// Package main is the entry point for the save data server and tools
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-savedata/cmd/savedata/client"
)

var rootCmd = &cobra.Command{
	Use:   "savedata",
	Short: "Accessory roster save data service",
	Long: `savedata stores units' accessory rosters as versioned save blocks, serves them over gRPC,
and inspects or migrates block files offline.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
