package drafter

import (
	"strings"
	"text/template"
)

var tournamentPrompt = template.Must(template.New("tournament").Parse(`You are an expert sports tournament organizer. Design a {{.Type}} for the following players:
{{range .PlayerNames}}- {{.}}
{{end}}
The scoring system is: {{.ScoringSystem}}

Answer with a single JSON object with these fields:
- "tournamentName" (required): a creative, specific name for this tournament. Avoid generic titles.
- "description": a concise overview of the format and how many games to expect.
- "schedule": an array of games. Every game has "id" (a placeholder such as "temp-id-1"), "round" (a number, when applicable), "match" (for example "Alice vs Bob" or "Winner M1 vs Winner M2"), "participants", "status" set to "pending", and optionally "notes".
  For a round-robin-league every player plays every other player once.
  For a single-elimination-bracket list the first-round games and explain byes when the number of players is not a power of two.
  Whenever both players of a game are known, "participants" MUST hold exactly those two names. Leave it empty when they depend on earlier results.
- "standingsExplanation": how standings are tracked.
- "advancementRules": how players advance or how the overall winner is decided.
- "tieBreakingRules" (optional): how ties are broken.
Keep every text field concise.
`))

var teamsPrompt = template.Must(template.New("teams").Parse(`You form balanced teams for the game clusterPuck99.
Split the following players into two teams, Team A and Team B, so the game is fair and competitive.

Players:
{{range .}}- Name: {{.Name}}, Total Goals: {{.TotalGoals}}, Win/Loss Ratio: {{.WinLossRatio}}, Games Played: {{.GamesPlayed}}
{{end}}
Consider total goals, win/loss ratio and games played. Every player must be on exactly one team.
Answer with a single JSON object: "teamA" (array of player names), "teamB" (array of player names) and "reasoning" (a concise explanation).
`))

func render(t *template.Template, data any) (string, error) {
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}
