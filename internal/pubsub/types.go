package pubsub

import (
	"sync"

	"cloud.google.com/go/pubsub"
)

type client struct {
	client *pubsub.Client

	mu     sync.Mutex
	topics map[EventType]*pubsub.Topic
}

// EventType represents the type of event/message sent via pubsub.
// It doubles as the topic name.
type EventType string

const (
	EventMatchRecorded       EventType = "match-recorded"
	EventMatchDeleted        EventType = "match-deleted"
	EventTournamentCompleted EventType = "tournament-completed"
)

// MatchEvent is published after a match was added or removed and the
// player statistics were recomputed.
type MatchEvent struct {
	MatchID string `msgpack:"match_id"`
}

// TournamentEvent is published when a tournament is finalized.
type TournamentEvent struct {
	TournamentID string `msgpack:"tournament_id"`
}
