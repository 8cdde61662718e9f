package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"estate-db/internal/commands"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "estate-db",
		Short: "Real Estate Database Tool",
	}

	rootCmd.AddCommand(
		commands.CreateCmd(),
		commands.InsertCmd(),
		commands.QueryCmd(),
		commands.ReportCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
