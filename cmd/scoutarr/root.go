package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	serverURL  string
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "scoutarr",
	Short: "CLI client for the scoutarr media discovery server",
	Long: `scoutarr - CLI client for the scoutarr media discovery server

Search the TMDB catalog, manage your watchlist, and push titles to
Radarr and Sonarr.

Run 'scoutarrd' to start the server daemon.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// truncateTitle shortens s to max display characters, counting runes
// so a multi-byte title is never cut mid-character.
func truncateTitle(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8585", "Server URL")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("scoutarr {{.Version}}\n")
}
