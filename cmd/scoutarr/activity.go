package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Download queues and recent additions from both services",
	RunE:  runActivityCmd,
}

var queueCmd = &cobra.Command{
	Use:   "queue",
	Short: "Show active downloads",
	RunE:  runQueueCmd,
}

var trendingCmd = &cobra.Command{
	Use:   "trending",
	Short: "Trending titles this week",
	RunE:  runTrendingCmd,
}

func init() {
	rootCmd.AddCommand(activityCmd)
	rootCmd.AddCommand(queueCmd)
	rootCmd.AddCommand(trendingCmd)
	trendingCmd.Flags().String("type", "movie", "Media type (movie or show)")
}

func runActivityCmd(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)
	activity, err := client.Activity()
	if err != nil {
		return fmt.Errorf("activity fetch failed: %w", err)
	}

	if jsonOutput {
		printJSON(activity)
		return nil
	}

	fmt.Println("Downloading")
	printQueueRecords("movies", activity.MovieQueue)
	printQueueRecords("shows", activity.ShowQueue)

	fmt.Println("\nRecently added")
	printRecent("movies", activity.RecentMovies)
	printRecent("shows", activity.RecentShows)
	return nil
}

func runQueueCmd(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)
	queue, err := client.Queue()
	if err != nil {
		return fmt.Errorf("queue fetch failed: %w", err)
	}

	if jsonOutput {
		printJSON(queue)
		return nil
	}

	printQueueRecords("movies", queue.Movies)
	printQueueRecords("shows", queue.Shows)
	return nil
}

func runTrendingCmd(cmd *cobra.Command, args []string) error {
	mediaType, _ := cmd.Flags().GetString("type")
	client := NewClient(serverURL)
	results, err := client.Trending(mediaType)
	if err != nil {
		return fmt.Errorf("trending fetch failed: %w", err)
	}

	if jsonOutput {
		printJSON(results)
		return nil
	}

	if len(results.Results) == 0 {
		fmt.Println("No results")
		return nil
	}
	printMediaTable(results.Results)
	return nil
}

func printQueueRecords(label string, q *QueueResponse) {
	if q == nil || len(q.Records) == 0 {
		fmt.Printf("  %s: none\n", label)
		return
	}
	for _, rec := range q.Records {
		remaining := ""
		if rec.TimeLeft != "" {
			remaining = " (" + rec.TimeLeft + " left)"
		}
		percent := 0.0
		if rec.Size > 0 {
			percent = (rec.Size - rec.SizeLeft) / rec.Size * 100
		}
		fmt.Printf("  %s: %-42s %5.1f%% %s%s\n", label, rec.Title, percent, rec.Status, remaining)
	}
}

func printRecent(label string, titles []RecentTitleResponse) {
	if len(titles) == 0 {
		fmt.Printf("  %s: none\n", label)
		return
	}
	for _, t := range titles {
		if t.Year > 0 {
			fmt.Printf("  %s: %s (%d)\n", label, t.Title, t.Year)
			continue
		}
		fmt.Printf("  %s: %s\n", label, t.Title)
	}
}
