package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status [tmdb-id]...",
	Short: "Library status for watchlist items",
	Long: `Show library status for titles.

Without arguments, checks every watchlist item of the given type.
With TMDB IDs, checks just those.

Statuses: not_found (not in the library), added (grabbed, waiting for
a download), available (downloaded), unknown (could not be resolved).

Examples:
  scoutarr status
  scoutarr status --type show
  scoutarr status 550 603`,
	RunE: runStatusCmd,
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().String("type", "movie", "Media type (movie or show)")
}

func runStatusCmd(cmd *cobra.Command, args []string) error {
	mediaType, _ := cmd.Flags().GetString("type")
	client := NewClient(serverURL)

	ids, err := parseIDs(args)
	if err != nil {
		return err
	}
	titles := make(map[int64]string)

	if len(ids) == 0 {
		items, err := client.Watchlist()
		if err != nil {
			return fmt.Errorf("watchlist fetch failed: %w", err)
		}
		for _, item := range items {
			if item.MediaType != mediaType {
				continue
			}
			ids = append(ids, item.TMDBID)
			titles[item.TMDBID] = item.Title
		}
		if len(ids) == 0 {
			fmt.Printf("No %s items on the watchlist\n", mediaType)
			return nil
		}
	}

	statuses, err := client.WatchlistStatus(ids, mediaType)
	if err != nil {
		return fmt.Errorf("status check failed: %w", err)
	}

	if jsonOutput {
		printJSON(statuses)
		return nil
	}

	fmt.Printf("  %8s │ %-12s │ %s\n", "TMDB", "STATUS", "TITLE")
	fmt.Println("───────────┼──────────────┼─────────────────────────────")
	for _, id := range ids {
		status, ok := statuses[id]
		if !ok {
			status = "unknown"
		}
		fmt.Printf("  %8d │ %-12s │ %s\n", id, status, titles[id])
	}
	return nil
}
