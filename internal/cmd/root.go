package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/safespace-vault/safespace/internal/server"
)

func init() {
	rootCmd.AddCommand(healthCheckCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(hashCmd)
}

var rootCmd = &cobra.Command{
	Use:   "safespace",
	Short: "safespace is a personal file vault with a decoy login",
	Run: func(cmd *cobra.Command, args []string) {
		server.RunServer()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err.Error())
		os.Exit(1)
	}
}
