package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Daemon and site status",
	RunE:  runStatusCmd,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatusCmd(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL, apiKey)
	status, err := client.Status()
	if err != nil {
		return fmt.Errorf("status check failed: %w", err)
	}

	if jsonOutput {
		printJSON(status)
		return nil
	}

	printStatus(serverURL, status)
	return nil
}

func printStatus(server string, s *StatusResponse) {
	fmt.Printf("Server:     %s (%s)\n", server, s.Status)
	fmt.Printf("Version:    %s\n", s.Version)
	if s.Site == nil {
		return
	}

	switch {
	case s.Site.Reachable && s.Site.Name != "":
		fmt.Printf("Site:       %s (%s)\n", s.Site.URL, s.Site.Name)
	case s.Site.Reachable:
		fmt.Printf("Site:       %s\n", s.Site.URL)
	default:
		fmt.Printf("Site:       %s (unreachable: %s)\n", s.Site.URL, s.Site.Error)
	}
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
