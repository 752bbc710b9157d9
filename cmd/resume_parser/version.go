package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags "-X main.Version=...".
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the resume_parser version",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("resume_parser %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
