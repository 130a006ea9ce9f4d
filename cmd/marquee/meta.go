package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var metaCmd = &cobra.Command{
	Use:   "meta <movie|tv> <id>",
	Short: "Show provider badges and age rating for a title",
	Args:  cobra.ExactArgs(2),
	RunE:  runMetaCmd,
}

func init() {
	rootCmd.AddCommand(metaCmd)
}

func runMetaCmd(cmd *cobra.Command, args []string) error {
	kind := args[0]
	id, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid title ID: %s", args[1])
	}

	client := NewClient(serverURL)
	meta, err := client.TitleMeta(kind, id)
	if err != nil {
		return fmt.Errorf("meta fetch failed: %w", err)
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(meta)
	}

	rating := meta.AgeRating
	if rating == "" {
		rating = "unrated"
	}
	fmt.Printf("age rating: %s\n", rating)
	for _, p := range meta.Providers {
		fmt.Printf("  %s\n", p.Name)
	}
	return nil
}
