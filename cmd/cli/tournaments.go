package main

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(tournamentsCmd)
	tournamentsCmd.AddCommand(tournamentLatestCmd)
	tournamentsCmd.AddCommand(tournamentCompletedCmd)
	tournamentsCmd.AddCommand(tournamentGetCmd)
	tournamentsCmd.AddCommand(tournamentStandingsCmd)
	tournamentsCmd.AddCommand(tournamentCreateCmd)
	tournamentsCmd.AddCommand(tournamentWinnerCmd)
	tournamentsCmd.AddCommand(tournamentFinalizeCmd)
}

var tournamentsCmd = &cobra.Command{
	Use:   "tournaments",
	Short: "Create and run tournaments",
}

var tournamentLatestCmd = &cobra.Command{
	Use:   "latest",
	Short: "Show the tournament currently running",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/tournaments/latest")
	},
}

var tournamentCompletedCmd = &cobra.Command{
	Use:   "completed",
	Short: "List finished tournaments",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/tournaments/completed")
	},
}

var tournamentGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a tournament",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/tournaments/" + url.PathEscape(args[0]))
	},
}

var tournamentStandingsCmd = &cobra.Command{
	Use:   "standings <id>",
	Short: "Show a tournament's standings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/tournaments/" + url.PathEscape(args[0]) + "/standings")
	},
}

var tournamentCreateCmd = &cobra.Command{
	Use:   "create <file.json>",
	Short: "Draft a tournament from a JSON input file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := readBody(args[0])
		if err != nil {
			return err
		}
		return performRequest("POST", "/tournaments", body)
	},
}

var tournamentWinnerCmd = &cobra.Command{
	Use:   "winner <id> <item-id> <player>",
	Short: "Record the winner of a scheduled game",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := jsonBody(map[string]string{"winner": args[2]})
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		endpoint := fmt.Sprintf("/tournaments/%s/items/%s/winner", url.PathEscape(args[0]), url.PathEscape(args[1]))
		return performRequest("POST", endpoint, body)
	},
}

var tournamentFinalizeCmd = &cobra.Command{
	Use:   "finalize <id>",
	Short: "Mark a tournament as completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest("POST", "/tournaments/"+url.PathEscape(args[0])+"/finalize", nil)
	},
}
