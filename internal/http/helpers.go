package http

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/puckpal/internal/league"
	"github.com/mauv0809/puckpal/internal/pubsub"
	"github.com/mauv0809/puckpal/internal/stats"
	"github.com/slack-go/slack"
)

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to encode response", "error", err)
	}
}

// writeError maps league error kinds onto HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, league.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, league.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, league.ErrTimeout):
		status = http.StatusGatewayTimeout
	case errors.Is(err, league.ErrUnavailable):
		status = http.StatusServiceUnavailable
	case errors.Is(err, league.ErrBadDraft):
		status = http.StatusBadGateway
	}

	resp := errorResponse{Error: err.Error()}
	var verr *stats.ValidationError
	if errors.As(err, &verr) {
		resp.Issues = verr.Issues
	}
	if status == http.StatusInternalServerError {
		log.Error("Request failed", "error", err)
		resp.Error = "internal error"
	} else {
		log.Warn("Request rejected", "status", status, "error", err)
	}
	writeJSON(w, status, resp)
}

// decodeJSON reads a JSON body into v, rejecting unknown fields.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: invalid JSON body: %v", league.ErrValidation, err)
	}
	return nil
}

// decodePush unwraps a Pub/Sub push delivery into v.
func (s *Server) decodePush(r *http.Request, v any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("failed to read request body: %w", err)
	}
	log.Debug("Received push message", "body", string(body))

	var msg pushMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return fmt.Errorf("%w: invalid push envelope: %v", league.ErrValidation, err)
	}
	raw, err := base64.StdEncoding.DecodeString(msg.Message.Data)
	if err != nil {
		return fmt.Errorf("%w: invalid base64 data: %v", league.ErrValidation, err)
	}
	decode := pubsub.Decode
	if s.pubsub != nil {
		decode = s.pubsub.ProcessMessage
	}
	if err := decode(raw, v); err != nil {
		return fmt.Errorf("%w: undecodable payload: %v", league.ErrValidation, err)
	}
	return nil
}

// respondWithSlackMsg is a helper to format and write a Slack message as an HTTP response.
func respondWithSlackMsg(w http.ResponseWriter, msg any) {
	slackMsg, ok := msg.(slack.Message)
	if !ok {
		log.Error("Failed to cast message to slack.Message")
		http.Error(w, "Invalid message format for Slack", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, slackMsg)
}
