package main

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(activityCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(postLeaderboardCmd)
	rootCmd.AddCommand(recomputeCmd)
	rootCmd.AddCommand(matchesCmd)
	rootCmd.AddCommand(matchupsCmd)
	rootCmd.AddCommand(combinationsCmd)
	rootCmd.AddCommand(suggestTeamsCmd)

	matchesCmd.AddCommand(matchGetCmd)
	matchesCmd.AddCommand(matchRecordCmd)
	matchesCmd.AddCommand(matchDeleteCmd)

	matchupsCmd.Flags().Int("team-a", 2, "Players on team A")
	matchupsCmd.Flags().Int("team-b", 3, "Players on team B")
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Show lifetime activity counters",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/activity")
	},
}

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List the roster with statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/players")
	},
}

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show the ranked leaderboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/leaderboard")
	},
}

var postLeaderboardCmd = &cobra.Command{
	Use:   "post-leaderboard",
	Short: "Post the leaderboard to Slack now",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest("POST", "/post-leaderboard", nil)
	},
}

var recomputeCmd = &cobra.Command{
	Use:   "recompute",
	Short: "Rebuild every player's statistics from the match history",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest("POST", "/recompute", nil)
	},
}

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "List recorded matches",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/matches")
	},
}

var matchGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a single match",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/matches/" + url.PathEscape(args[0]))
	},
}

var matchRecordCmd = &cobra.Command{
	Use:   "record <file.json>",
	Short: "Record a match from a JSON submission file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := readBody(args[0])
		if err != nil {
			return err
		}
		return performRequest("POST", "/matches", body)
	},
}

var matchDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a match and recompute statistics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest("DELETE", "/matches/"+url.PathEscape(args[0]), nil)
	},
}

var matchupsCmd = &cobra.Command{
	Use:   "matchups",
	Short: "List every way to split the roster into two teams",
	RunE: func(cmd *cobra.Command, args []string) error {
		sizeA, _ := cmd.Flags().GetInt("team-a")
		sizeB, _ := cmd.Flags().GetInt("team-b")
		q := url.Values{}
		q.Set("team_a", strconv.Itoa(sizeA))
		q.Set("team_b", strconv.Itoa(sizeB))
		return performGetRequest("/matchups?" + q.Encode())
	},
}

var combinationsCmd = &cobra.Command{
	Use:   "team-combinations",
	Short: "Show how each 2 vs 3 matchup has fared",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/team-combinations")
	},
}

var suggestTeamsCmd = &cobra.Command{
	Use:   "suggest-teams [player...]",
	Short: "Ask for balanced teams, from the named players or the whole roster",
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := jsonBody(map[string][]string{"players": args})
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		return performRequest("POST", "/suggest-teams", body)
	},
}
