package models

// StandingsRow is one row of the championship standings table.
type StandingsRow struct {
	TeamName     string `json:"team_name"`
	Points       int    `json:"points"`
	Wins         int    `json:"wins"`
	Draws        int    `json:"draws"`
	Losses       int    `json:"losses"`
	GoalsFor     int    `json:"goals_for"`
	GoalsAgainst int    `json:"goals_against"`
	Cards        int    `json:"cards"`
	Fouls        int    `json:"fouls"`
}

// PlayerStats aggregates a player's activity across every match of the
// championship.
type PlayerStats struct {
	PlayerID       string `json:"player_id"`
	Goals          int    `json:"goals"`
	Cards          int    `json:"cards"`
	FoulsCommitted int    `json:"fouls_committed"`
	MatchesPlayed  int    `json:"matches_played"`
}
