package main

import (
	"os"

	"github.com/layerlint/layerlint/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "layerlint",
	Short: "A layered-architecture dependency checker",
	Long: `layerlint analyzes a module's import graph and enforces layering
rules: an ordered list of layers that must not be violated by imports
running the wrong way, and reports the routes through which each
violation occurs.

Features:
  • Layer-violation detection across containers
  • Strongly-connected-component cycle detection
  • JSON/YAML/CSV/DOT/HTML report output`,
	Version: version.Short(),
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output (no command reads this flag)")

	rootCmd.AddCommand(NewCheckCmd())
	rootCmd.AddCommand(NewVersionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(2)
	}
}
