package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Export settings",
}

var perPageCmd = &cobra.Command{
	Use:   "per-page [N]",
	Short: "Show or set the export batch size",
	Long: `Show or set how many records each REST query fetches during an export.

Allowed sizes are 10, 20, 50 and 100. Other stored values fall back to 50.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPerPageCmd,
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(perPageCmd)
}

func runPerPageCmd(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL, apiKey)

	if len(args) == 1 {
		if err := client.SetPerPage(args[0]); err != nil {
			return fmt.Errorf("set per-page: %w", err)
		}
	}

	s, err := client.Settings()
	if err != nil {
		return fmt.Errorf("get settings: %w", err)
	}

	if jsonOutput {
		printJSON(s)
		return nil
	}

	allowed := make([]string, len(s.AllowedPerPage))
	for i, n := range s.AllowedPerPage {
		allowed[i] = fmt.Sprint(n)
	}
	fmt.Printf("Per page:   %d", s.PerPage)
	if s.EffectivePerPage != s.PerPage {
		fmt.Printf(" (using %d)", s.EffectivePerPage)
	}
	fmt.Printf("\nAllowed:    %s\n", strings.Join(allowed, ", "))
	return nil
}
