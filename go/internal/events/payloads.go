package events

// TeamRegisteredPayload announces a newly registered team.
type TeamRegisteredPayload struct {
	TeamID string `json:"team_id"`
	Name   string `json:"name"`
}

// PlayerRegisteredPayload announces a player added to a team roster.
type PlayerRegisteredPayload struct {
	PlayerID string `json:"player_id"`
	TeamID   string `json:"team_id"`
	FullName string `json:"full_name"`
}

// MatchCreatedPayload announces a newly created fixture.
type MatchCreatedPayload struct {
	MatchID    string `json:"match_id"`
	HomeTeamID string `json:"home_team_id"`
	AwayTeamID string `json:"away_team_id"`
	Venue      string `json:"venue"`
}

// GoalScoredPayload carries a registered goal plus the updated counters.
type GoalScoredPayload struct {
	MatchID   string `json:"match_id"`
	PlayerID  string `json:"player_id"`
	Minute    int    `json:"minute"`
	HomeGoals int    `json:"home_goals"`
	AwayGoals int    `json:"away_goals"`
}

// CardIssuedPayload carries a registered disciplinary card.
type CardIssuedPayload struct {
	MatchID  string `json:"match_id"`
	PlayerID string `json:"player_id"`
	Kind     string `json:"kind"`
	Minute   int    `json:"minute"`
	Reason   string `json:"reason"`
}

// FoulCommittedPayload carries a registered foul.
type FoulCommittedPayload struct {
	MatchID       string `json:"match_id"`
	CommittedByID string `json:"committed_by_id"`
	AffectedID    string `json:"affected_id"`
	Minute        int    `json:"minute"`
	Zone          string `json:"zone"`
	Card          string `json:"card,omitempty"`
}
