package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mauv0809/puckpal/internal/stats"
	"gopkg.in/yaml.v3"
)

// Roster is the seed file layout:
//
//	players:
//	  - id: alice
//	    name: Alice
//	  - name: Bob
type Roster struct {
	Players []RosterEntry `yaml:"players"`
}

// RosterEntry is one player. A missing id is generated on insert.
type RosterEntry struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

var errEmptyRoster = errors.New("roster has no players")

// LoadRoster reads and checks a roster file. Names must be non-empty and
// unique ignoring case.
func LoadRoster(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster file: %w", err)
	}
	var roster Roster
	if err := yaml.Unmarshal(data, &roster); err != nil {
		return nil, fmt.Errorf("failed to parse roster file: %w", err)
	}
	if len(roster.Players) == 0 {
		return nil, errEmptyRoster
	}

	seen := make(map[string]bool, len(roster.Players))
	for i, p := range roster.Players {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			return nil, fmt.Errorf("roster entry %d has no name", i+1)
		}
		key := strings.ToLower(name)
		if seen[key] {
			return nil, fmt.Errorf("player %q is listed twice", name)
		}
		seen[key] = true
		roster.Players[i].Name = name
		roster.Players[i].ID = strings.TrimSpace(p.ID)
	}
	return &roster, nil
}

func (r *Roster) toPlayers() []stats.Player {
	players := make([]stats.Player, len(r.Players))
	for i, p := range r.Players {
		players[i] = stats.Player{ID: p.ID, Name: p.Name}
	}
	return players
}
