package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/puckpal/internal/metrics"
	"github.com/mauv0809/puckpal/internal/notifier"
	"github.com/mauv0809/puckpal/internal/stats"
	"github.com/mauv0809/puckpal/internal/tournament"
	"github.com/slack-go/slack"
)

const postTimeout = 10 * time.Second

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       slack.New(token),
		channelID: channelID,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific client.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(ctx context.Context, message slack.Message, dryRun bool) (string, string, error) {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-channel", "dry-run-ts", nil
	}
	if s.api == nil || s.channelID == "" {
		log.Warn("Slack client or channel ID is not configured. Skipping notification.")
		return "", "", fmt.Errorf("slack client or channel ID is not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, postTimeout)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)
	if err != nil {
		s.metrics.IncSlackNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", s.channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncSlackNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

func (s *Notifier) SendMatchResult(ctx context.Context, match stats.Match, players []stats.Player, dryRun bool) error {
	_, _, err := s.sendMessage(ctx, s.formatMatchResult(match, players), dryRun)
	return err
}

func (s *Notifier) SendLeaderboard(ctx context.Context, players []stats.Player, dryRun bool) error {
	_, _, err := s.sendMessage(ctx, s.formatLeaderboard(players), dryRun)
	return err
}

func (s *Notifier) SendTournamentCompleted(ctx context.Context, t *tournament.Tournament, standings []tournament.PlayerScore, dryRun bool) error {
	_, _, err := s.sendMessage(ctx, s.formatStandings(t, standings, true), dryRun)
	return err
}

// FormatLeaderboardResponse formats a leaderboard message for a slash command response.
func (s *Notifier) FormatLeaderboardResponse(players []stats.Player) (any, error) {
	return s.formatLeaderboard(players), nil
}

// FormatPlayerStatsResponse formats a player stats message for a slash command response.
func (s *Notifier) FormatPlayerStatsResponse(player *stats.Player, query string) (any, error) {
	return s.formatPlayerStats(player, query), nil
}

// FormatPlayerNotFoundResponse formats a player not found message for a slash command response.
func (s *Notifier) FormatPlayerNotFoundResponse(query string) (any, error) {
	return s.formatPlayerNotFound(query), nil
}

// FormatStandingsResponse formats tournament standings for a slash command response.
func (s *Notifier) FormatStandingsResponse(t *tournament.Tournament, standings []tournament.PlayerScore) (any, error) {
	return s.formatStandings(t, standings, false), nil
}

// formatMatchResult creates the Slack message for a recorded match using Block Kit.
func (s *Notifier) formatMatchResult(match stats.Match, players []stats.Player) slack.Message {
	names := make(map[string]string, len(players))
	for _, p := range players {
		names[p.ID] = p.Name
	}
	teamName := func(ids []string) string {
		parts := make([]string, 0, len(ids))
		for _, id := range ids {
			if name, ok := names[id]; ok {
				parts = append(parts, name)
			} else {
				parts = append(parts, id)
			}
		}
		return strings.Join(parts, " & ")
	}

	blocks := make([]slack.Block, 0)
	blocks = append(blocks, slack.NewHeaderBlock(slack.NewTextBlockObject("plain_text", "🏒 Match finished! 🏒", true, false)))

	teamA := teamName(match.TeamA.PlayerIDs)
	teamB := teamName(match.TeamB.PlayerIDs)
	scoreText := fmt.Sprintf("%s  %d - %d  %s", teamA, match.TeamA.Score, match.TeamB.Score, teamB)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", scoreText, true, false), nil, nil))

	winners := teamName(match.WinningTeamIDs)
	if winners != "" {
		resultText := fmt.Sprintf("Result: %s won! 🏆", winners)
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", resultText, true, false), nil, nil))
	}

	var scorers []string
	for _, ps := range match.PlayerStats {
		if ps.Goals == 0 && ps.Checks == 0 && ps.AutoGoals == 0 {
			continue
		}
		line := fmt.Sprintf("• %s: %d goals, %d checks", teamName([]string{ps.PlayerID}), ps.Goals, ps.Checks)
		if ps.AutoGoals > 0 {
			line += fmt.Sprintf(", %d own goals", ps.AutoGoals)
		}
		scorers = append(scorers, line)
	}
	if len(scorers) > 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", strings.Join(scorers, "\n"), true, false), nil, nil))
	}

	blocks = append(blocks, slack.NewContextBlock("", slack.NewTextBlockObject("plain_text", match.Date.Format("Monday 02 Jan 2006"), false, false)))
	return slack.NewBlockMessage(blocks...)
}

func medal(rank int) string {
	switch rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	}
	return ""
}

// formatLeaderboard creates a Slack message to display the player leaderboard.
func (s *Notifier) formatLeaderboard(players []stats.Player) slack.Message {
	blocks := make([]slack.Block, 0)
	blocks = append(blocks, slack.NewHeaderBlock(slack.NewTextBlockObject("plain_text", "🏆 Player Leaderboard 🏆", true, false)))

	if len(players) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "No stats available yet. Go play some matches!", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	for i, p := range players {
		rank := i + 1
		playerText := fmt.Sprintf("%d. %s %s\n> Points: %d | W/L: %d/%d (%.2f) | Goals: %d | Checks: %d",
			rank,
			medal(rank),
			p.Name,
			p.TotalPoints,
			p.Wins,
			p.Losses,
			p.WinLossRatio,
			p.TotalGoals,
			p.TotalChecks,
		)
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", playerText, true, false), nil, nil))
	}

	return slack.NewBlockMessage(blocks...)
}

// formatPlayerStats creates a Slack message to display a single player's stats.
func (s *Notifier) formatPlayerStats(p *stats.Player, query string) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := fmt.Sprintf("🏆 Stats for %s 🏆", p.Name)
	blocks = append(blocks, slack.NewHeaderBlock(slack.NewTextBlockObject("plain_text", headerText, true, false)))

	playerText := fmt.Sprintf("> *Points*: %d\n> *Wins/Losses*: %d/%d (%.2f)\n> *Goals*: %d\n> *Own goals*: %d\n> *Checks*: %d\n> *Goal difference*: %+d",
		p.TotalPoints,
		p.Wins,
		p.Losses,
		p.WinLossRatio,
		p.TotalGoals,
		p.TotalAutoGoals,
		p.TotalChecks,
		p.TeamGoalDifference,
	)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", playerText, false, false), nil, nil))

	if !strings.EqualFold(strings.TrimSpace(query), p.Name) {
		blocks = append(blocks, slack.NewContextBlock("", slack.NewTextBlockObject("plain_text", fmt.Sprintf("Best match for %q", query), false, false)))
	}

	return slack.NewBlockMessage(blocks...)
}

// formatPlayerNotFound creates a Slack message for when a player's stats are not found.
func (s *Notifier) formatPlayerNotFound(query string) slack.Message {
	text := fmt.Sprintf("Sorry, I couldn't find a player matching *%s*. Try a different name.", query)
	return slack.NewBlockMessage(
		slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", text, false, false), nil, nil),
	)
}

// formatStandings creates a Slack message with the tournament table.
func (s *Notifier) formatStandings(t *tournament.Tournament, standings []tournament.PlayerScore, final bool) slack.Message {
	blocks := make([]slack.Block, 0)

	header := fmt.Sprintf("🏒 %s standings", t.Name)
	if final {
		header = fmt.Sprintf("🏆 %s is over! 🏆", t.Name)
	}
	blocks = append(blocks, slack.NewHeaderBlock(slack.NewTextBlockObject("plain_text", header, true, false)))

	if len(standings) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "No players registered.", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	lines := make([]string, 0, len(standings))
	for i, score := range standings {
		rank := i + 1
		lines = append(lines, fmt.Sprintf("%d. %s %s: %d pts (%d W / %d L)", rank, medal(rank), score.Name, score.Points, score.Wins, score.Losses))
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", strings.Join(lines, "\n"), true, false), nil, nil))

	done := 0
	for _, item := range t.Schedule {
		if item.Status == tournament.ItemCompleted {
			done++
		}
	}
	progress := fmt.Sprintf("%d of %d games played", done, len(t.Schedule))
	blocks = append(blocks, slack.NewContextBlock("", slack.NewTextBlockObject("plain_text", progress, false, false)))

	return slack.NewBlockMessage(blocks...)
}
