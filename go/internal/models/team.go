package models

import (
	"fmt"
	"strings"
)

// Team represents a registered club in the championship. Roster and match
// history are kept as ordered id lists; the championship registry owns the
// entities behind them.
type Team struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Neighborhood string   `json:"neighborhood"`
	Coach        string   `json:"coach"`
	PlayerIDs    []string `json:"player_ids"`
	MatchIDs     []string `json:"match_ids"`
}

// NewTeam creates a team, validating that every identifying field is present.
func NewTeam(id, name, neighborhood, coach string) (*Team, error) {
	if isBlank(id) {
		return nil, fmt.Errorf("team id cannot be empty")
	}
	if isBlank(name) {
		return nil, fmt.Errorf("team name cannot be empty")
	}
	if isBlank(neighborhood) {
		return nil, fmt.Errorf("team neighborhood cannot be empty")
	}
	if isBlank(coach) {
		return nil, fmt.Errorf("team coach cannot be empty")
	}
	return &Team{
		ID:           id,
		Name:         name,
		Neighborhood: neighborhood,
		Coach:        coach,
	}, nil
}

// HasPlayer reports whether the player id is on this team's roster.
func (t *Team) HasPlayer(playerID string) bool {
	for _, id := range t.PlayerIDs {
		if id == playerID {
			return true
		}
	}
	return false
}

// Equal compares teams by id only.
func (t *Team) Equal(other *Team) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.ID == other.ID
}

func (t *Team) String() string {
	return t.Name
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
