package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	serverURL  string
	apiKey     string
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "cpexport",
	Short: "CLI client for the cpexport daemon",
	Long: `cpexport - export ClassicPress/WordPress content as JSON

Drives a running cpexportd daemon: exports posts, pages, media, taxonomies,
menus, comments, users and custom types, and manages the export batch size.

Run 'cpexportd' to start the server daemon.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("cpexport %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", envOr("CPEXPORT_SERVER", "http://localhost:8585"), "Server URL")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", os.Getenv("CPEXPORT_API_KEY"), "API key (default $CPEXPORT_API_KEY)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("cpexport {{.Version}}\n")
}
