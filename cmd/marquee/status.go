package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status <movie|tv> <id>",
	Short: "Resolve release status and display year for a title",
	Long: `Resolve a title's release status (now / upcoming / rerun / none) and its
display year.

Pass the raw release date (movie) or first-air date (TV) with --date when you
have it; without it the daemon classifies from the screening snapshot alone.

Examples:
  marquee status movie 603 --date 1999-03-31
  marquee status tv 1396`,
	Args: cobra.ExactArgs(2),
	RunE: runStatusCmd,
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().String("date", "", "Raw release or first-air date (YYYY-MM-DD)")
}

func runStatusCmd(cmd *cobra.Command, args []string) error {
	kind := args[0]
	id, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid title ID: %s", args[1])
	}
	date, _ := cmd.Flags().GetString("date")

	client := NewClient(serverURL)
	result, err := client.TitleStatus(kind, id, date)
	if err != nil {
		return fmt.Errorf("status check failed: %w", err)
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(result)
	}

	fmt.Printf("%s %d: %s (%s)\n", result.Kind, result.ID, result.Status, result.Year)
	return nil
}
