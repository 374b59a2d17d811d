package main

import (
	"fmt"
	"sort"
	"strings"

	edlib "github.com/hbollon/go-edlib"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>...",
	Short: "Search the catalog for movies and shows",
	Long: `Search the catalog for movies and shows.

Results are re-ranked by title similarity to the query, so the closest
match comes first even when the server orders by popularity.

Examples:
  scoutarr search "The Matrix"
  scoutarr search breaking bad`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearchCmd,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().Int("page", 1, "Result page")
}

func runSearchCmd(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	page, _ := cmd.Flags().GetInt("page")

	client := NewClient(serverURL)
	results, err := client.Search(query, page)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	rankResults(query, results.Results)

	if jsonOutput {
		printJSON(results)
		return nil
	}

	if len(results.Results) == 0 {
		fmt.Println("No results found")
		return nil
	}

	printMediaTable(results.Results)
	if results.TotalPages > 1 {
		fmt.Printf("\nPage %d of %d (%d total results)\n", results.Page, results.TotalPages, results.TotalResults)
	}
	return nil
}

// rankResults sorts results by Jaro-Winkler similarity between the
// query and each title, descending. Jaro-Winkler favors shared
// prefixes, which suits media titles. Ties keep the server's
// popularity order.
func rankResults(query string, results []MediaResponse) {
	normalized := strings.ToLower(query)
	key := func(r MediaResponse) string {
		return fmt.Sprintf("%s:%d", r.MediaType, r.TMDBID)
	}
	scores := make(map[string]float64, len(results))
	for _, r := range results {
		scores[key(r)] = float64(edlib.JaroWinklerSimilarity(normalized, strings.ToLower(r.Title)))
	}
	sort.SliceStable(results, func(i, j int) bool {
		return scores[key(results[i])] > scores[key(results[j])]
	})
}

func printMediaTable(results []MediaResponse) {
	fmt.Printf("  # │ %-42s │ %-5s │ %-10s │ %4s\n", "TITLE", "TYPE", "RELEASED", "VOTE")
	fmt.Println("────┼────────────────────────────────────────────┼───────┼────────────┼──────")

	for i, r := range results {
		fmt.Printf(" %2d │ %-42s │ %-5s │ %-10s │ %4.1f\n",
			i+1, truncateTitle(r.Title, 42), r.MediaType, r.ReleaseDate, r.VoteAverage)
	}
}
