package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var watchlistCmd = &cobra.Command{
	Use:   "watchlist",
	Short: "Manage the watchlist",
}

var watchlistListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all watchlist items",
	RunE:  runWatchlistList,
}

var watchlistAddCmd = &cobra.Command{
	Use:   "add <tmdb-id> <title>...",
	Short: "Add a title to the watchlist",
	Long: `Add a title to the watchlist.

Examples:
  scoutarr watchlist add 550 "Fight Club"
  scoutarr watchlist add --type show 1396 "Breaking Bad"`,
	Args: cobra.MinimumNArgs(2),
	RunE: runWatchlistAdd,
}

var watchlistRmCmd = &cobra.Command{
	Use:   "rm <tmdb-id>",
	Short: "Remove a title from the watchlist",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatchlistRm,
}

var watchlistProcessCmd = &cobra.Command{
	Use:   "process <tmdb-id>...",
	Short: "Send watchlist items to Radarr or Sonarr",
	Long: `Send watchlist items to the automation service for their type.

Items are processed one at a time; a failure on one item does not stop
the rest. Items already in the library are reported as failures so you
can remove them from the watchlist.

Examples:
  scoutarr watchlist process 550
  scoutarr watchlist process --type show 1396 4607`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWatchlistProcess,
}

func init() {
	rootCmd.AddCommand(watchlistCmd)
	watchlistCmd.AddCommand(watchlistListCmd)
	watchlistCmd.AddCommand(watchlistAddCmd)
	watchlistCmd.AddCommand(watchlistRmCmd)
	watchlistCmd.AddCommand(watchlistProcessCmd)

	watchlistAddCmd.Flags().String("type", "movie", "Media type (movie or show)")
	watchlistRmCmd.Flags().String("type", "movie", "Media type (movie or show)")
	watchlistProcessCmd.Flags().String("type", "movie", "Media type (movie or show)")
}

func parseIDs(args []string) ([]int64, error) {
	ids := make([]int64, 0, len(args))
	for _, arg := range args {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid TMDB ID: %s", arg)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func runWatchlistList(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)
	items, err := client.Watchlist()
	if err != nil {
		return fmt.Errorf("watchlist fetch failed: %w", err)
	}

	if jsonOutput {
		printJSON(items)
		return nil
	}

	if len(items) == 0 {
		fmt.Println("Watchlist is empty")
		return nil
	}

	fmt.Printf("Watchlist (%d):\n\n", len(items))
	fmt.Printf("  %8s │ %-5s │ %-42s │ %s\n", "TMDB", "TYPE", "TITLE", "STATUS")
	fmt.Println("───────────┼───────┼────────────────────────────────────────────┼──────────")

	for _, item := range items {
		fmt.Printf("  %8d │ %-5s │ %-42s │ %s\n",
			item.TMDBID, item.MediaType, truncateTitle(item.Title, 42), item.Status)
	}
	return nil
}

func runWatchlistAdd(cmd *cobra.Command, args []string) error {
	mediaType, _ := cmd.Flags().GetString("type")
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid TMDB ID: %s", args[0])
	}
	title := strings.Join(args[1:], " ")

	client := NewClient(serverURL)
	item, err := client.WatchlistAdd(id, mediaType, title)
	if err != nil {
		return fmt.Errorf("add failed: %w", err)
	}

	if jsonOutput {
		printJSON(item)
		return nil
	}
	fmt.Printf("Added %q (%s, tmdb %d)\n", item.Title, item.MediaType, item.TMDBID)
	return nil
}

func runWatchlistRm(cmd *cobra.Command, args []string) error {
	mediaType, _ := cmd.Flags().GetString("type")
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid TMDB ID: %s", args[0])
	}

	client := NewClient(serverURL)
	if err := client.WatchlistRemove(id, mediaType); err != nil {
		return fmt.Errorf("remove failed: %w", err)
	}

	if !jsonOutput {
		fmt.Printf("Removed tmdb %d\n", id)
	}
	return nil
}

func runWatchlistProcess(cmd *cobra.Command, args []string) error {
	mediaType, _ := cmd.Flags().GetString("type")
	ids, err := parseIDs(args)
	if err != nil {
		return err
	}

	client := NewClient(serverURL)
	result, err := client.WatchlistProcess(ids, mediaType)
	if err != nil {
		return fmt.Errorf("process failed: %w", err)
	}

	if jsonOutput {
		printJSON(result)
		return nil
	}

	fmt.Printf("Processed %d of %d\n", len(result.Processed), len(ids))
	for _, f := range result.Failed {
		fmt.Printf("  tmdb %d failed: %s\n", f.TMDBID, f.Error)
	}
	return nil
}
