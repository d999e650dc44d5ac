package drafter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/puckpal/internal/tournament"
	"google.golang.org/genai"
)

const DefaultModel = "gemini-2.0-flash"

// Option configures a Client.
type Option func(*genai.ClientConfig)

// WithBaseURL points the client at another Gemini API endpoint.
func WithBaseURL(url string) Option {
	return func(cfg *genai.ClientConfig) {
		cfg.HTTPOptions.BaseURL = url
	}
}

// NewClient creates a Drafter backed by the Gemini API.
func NewClient(ctx context.Context, apiKey, model string, opts ...Option) (*Client, error) {
	if model == "" {
		model = DefaultModel
	}
	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	genaiClient, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &Client{models: genaiClient.Models, model: model}, nil
}

// Ensure Client implements the Drafter interface.
var _ Drafter = (*Client)(nil)

// DraftTournament asks the model for a tournament structure. The returned
// draft is raw: ids and statuses are normalised by tournament.FromDraft.
func (c *Client) DraftTournament(ctx context.Context, input tournament.DraftInput) (*tournament.Draft, error) {
	prompt, err := render(tournamentPrompt, input)
	if err != nil {
		return nil, fmt.Errorf("failed to render tournament prompt: %w", err)
	}
	var draft tournament.Draft
	if err := c.generate(ctx, prompt, &draft); err != nil {
		return nil, fmt.Errorf("failed to draft tournament: %w", err)
	}
	log.Info("Drafted tournament", "name", draft.TournamentName, "games", len(draft.Schedule))
	return &draft, nil
}

// SuggestTeams asks the model to split players into two balanced teams.
func (c *Client) SuggestTeams(ctx context.Context, players []PlayerSummary) (*TeamSuggestion, error) {
	prompt, err := render(teamsPrompt, players)
	if err != nil {
		return nil, fmt.Errorf("failed to render teams prompt: %w", err)
	}
	var suggestion TeamSuggestion
	if err := c.generate(ctx, prompt, &suggestion); err != nil {
		return nil, fmt.Errorf("failed to suggest teams: %w", err)
	}
	log.Info("Suggested teams", "teamA", suggestion.TeamA, "teamB", suggestion.TeamB)
	return &suggestion, nil
}

// generate sends prompt and decodes the model's JSON answer into out.
func (c *Client) generate(ctx context.Context, prompt string, out any) error {
	log.Debug("Requesting generation", "model", c.model)
	resp, err := c.models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		Temperature:      genai.Ptr[float32](temperature),
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("failed to generate content: %w", ctxErr)
		}
		log.Error("Model API call failed", "error", err, "model", c.model)
		return fmt.Errorf("failed to generate content: %w", err)
	}

	text := stripCodeFence(responseText(resp))
	if text == "" {
		return ErrEmptyResponse
	}
	if err := json.Unmarshal([]byte(text), out); err != nil {
		log.Debug("Undecodable model output", "text", text)
		return fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	return nil
}

// responseText joins the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			b.WriteString(part.Text)
		}
	}
	return b.String()
}

// stripCodeFence removes a ```json ... ``` wrapper some models add even when
// asked for plain JSON.
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimPrefix(text, "json")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
