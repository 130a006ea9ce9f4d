package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var screeningCmd = &cobra.Command{
	Use:   "screening",
	Short: "Show the region's now-playing and upcoming windows",
	Args:  cobra.NoArgs,
	RunE:  runScreeningCmd,
}

func init() {
	rootCmd.AddCommand(screeningCmd)
}

func runScreeningCmd(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)
	snap, err := client.Screening()
	if err != nil {
		return fmt.Errorf("screening fetch failed: %w", err)
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(snap)
	}

	fmt.Printf("Region %s (fetched %s)\n", snap.Region, snap.FetchedAt)
	fmt.Printf("  now playing: %d titles\n", len(snap.NowPlaying))
	fmt.Printf("  upcoming:    %d titles\n", len(snap.Upcoming))
	return nil
}
