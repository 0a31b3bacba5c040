package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List exportable content types",
	RunE:  runTypesCmd,
}

func init() {
	rootCmd.AddCommand(typesCmd)
	typesCmd.Flags().Bool("refresh", false, "Rediscover custom types from the site first")
}

func runTypesCmd(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL, apiKey)
	refresh, _ := cmd.Flags().GetBool("refresh")

	var (
		resp *TypesResponse
		err  error
	)
	if refresh {
		resp, err = client.RefreshTypes()
	} else {
		resp, err = client.Types()
	}
	if err != nil {
		return fmt.Errorf("list types: %w", err)
	}

	if jsonOutput {
		printJSON(resp)
		return nil
	}

	printTypes(resp)
	return nil
}

func printTypes(resp *TypesResponse) {
	fmt.Printf("Content Types (%d):\n\n", len(resp.Types))
	fmt.Printf("  %-20s %-10s %-10s %s\n", "TYPE", "VARIANT", "FILTERING", "LABEL")
	fmt.Println("  " + strings.Repeat("-", 60))
	for _, t := range resp.Types {
		filtering := "local"
		if t.Pushdown {
			filtering = "api"
		}
		label := t.Label
		if t.Custom {
			label += " (custom)"
		}
		fmt.Printf("  %-20s %-10s %-10s %s\n", t.Type, t.Variant, filtering, label)
	}

	if resp.Discovered != nil {
		fmt.Printf("\nDiscovered %d custom type(s)\n", *resp.Discovered)
	}
}
