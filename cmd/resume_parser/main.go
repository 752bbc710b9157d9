// Package main provides the entry point for the resume parser CLI and server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_parser",
	Short: "Deterministic resume structuring engine",
	Long:  "Resume Parser turns raw resume text or hosted resume pages into structured profiles (experience, projects, education, skills, certifications) via CLI or REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
