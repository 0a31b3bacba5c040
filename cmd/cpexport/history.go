package main

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent exports",
	RunE:  runHistoryCmd,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().String("type", "", "Filter by content type")
	historyCmd.Flags().String("status", "", "Filter by status (completed, failed)")
	historyCmd.Flags().IntP("limit", "n", 20, "Maximum entries")
}

func runHistoryCmd(cmd *cobra.Command, args []string) error {
	typ, _ := cmd.Flags().GetString("type")
	status, _ := cmd.Flags().GetString("status")
	limit, _ := cmd.Flags().GetInt("limit")

	client := NewClient(serverURL, apiKey)
	resp, err := client.History(typ, status, limit)
	if err != nil {
		return fmt.Errorf("list exports: %w", err)
	}

	if jsonOutput {
		printJSON(resp)
		return nil
	}

	printHistory(resp)
	return nil
}

func printHistory(resp *ListExportsResponse) {
	if len(resp.Items) == 0 {
		fmt.Println("No exports yet")
		return
	}

	fmt.Printf("Exports (%d):\n\n", resp.Total)
	fmt.Printf("  %-16s %-12s %-10s %8s %7s %-9s %s\n", "WHEN", "TYPE", "STATUS", "RECORDS", "QUERIES", "SIZE", "FILE")
	fmt.Println("  " + strings.Repeat("-", 90))
	for _, e := range resp.Items {
		file := e.Filename
		if e.Error != "" {
			file = e.Error
		}
		fmt.Printf("  %-16s %-12s %-10s %8d %7d %-9s %s\n",
			humanize.Time(e.CreatedAt), e.Type, e.Status, e.Records, e.Queries,
			humanize.Bytes(uint64(max(e.Bytes, 0))), file)
	}
}
