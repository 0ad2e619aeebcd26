package models

import "fmt"

// CardKind is the kind of a disciplinary card. The wire values are the
// Spanish labels the original championship app established; callers migrating
// from it depend on them.
type CardKind string

const (
	CardKindYellow CardKind = "Amarilla"
	CardKindRed    CardKind = "Roja"
)

// Valid reports whether the kind is one of the two allowed values.
func (k CardKind) Valid() bool {
	return k == CardKindYellow || k == CardKindRed
}

// Goal is a single scoring event inside a match.
type Goal struct {
	PlayerID string `json:"player_id"`
	Minute   int    `json:"minute"`
}

// Card is a disciplinary card shown to a player during a match.
type Card struct {
	PlayerID string   `json:"player_id"`
	Kind     CardKind `json:"kind"`
	Minute   int      `json:"minute"`
	Reason   string   `json:"reason"`
}

// Foul is an infraction between two players of opposing teams. Card is the
// optionally associated disciplinary card.
type Foul struct {
	CommittedByID string    `json:"committed_by_id"`
	AffectedID    string    `json:"affected_id"`
	Minute        int       `json:"minute"`
	Zone          string    `json:"zone"`
	Card          *CardKind `json:"card,omitempty"`
}

// Match is a fixture between two teams. HomeGoals/AwayGoals are running
// counters kept in lockstep with the Goals log by the match engine.
type Match struct {
	ID         string `json:"id"`
	HomeTeamID string `json:"home_team_id"`
	AwayTeamID string `json:"away_team_id"`
	Venue      string `json:"venue"`
	Referee    string `json:"referee"`
	HomeGoals  int    `json:"home_goals"`
	AwayGoals  int    `json:"away_goals"`
	Goals      []Goal `json:"goals"`
	Cards      []Card `json:"cards"`
	Fouls      []Foul `json:"fouls"`
}

// NewMatch creates a match with zero counters and empty event logs,
// validating identifying fields and that the two teams differ.
func NewMatch(id, homeTeamID, awayTeamID, venue, referee string) (*Match, error) {
	if isBlank(id) {
		return nil, fmt.Errorf("match id cannot be empty")
	}
	if isBlank(homeTeamID) || isBlank(awayTeamID) {
		return nil, fmt.Errorf("match team ids cannot be empty")
	}
	if homeTeamID == awayTeamID {
		return nil, fmt.Errorf("home and away team must differ")
	}
	if isBlank(venue) {
		return nil, fmt.Errorf("match venue cannot be empty")
	}
	if isBlank(referee) {
		return nil, fmt.Errorf("match referee cannot be empty")
	}
	return &Match{
		ID:         id,
		HomeTeamID: homeTeamID,
		AwayTeamID: awayTeamID,
		Venue:      venue,
		Referee:    referee,
	}, nil
}

// Equal compares matches by id only.
func (m *Match) Equal(other *Match) bool {
	if m == nil || other == nil {
		return m == other
	}
	return m.ID == other.ID
}
