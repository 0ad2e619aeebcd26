package championship

// RegisterTeamRequest carries the fields of a team registration.
type RegisterTeamRequest struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Neighborhood string `json:"neighborhood"`
	Coach        string `json:"coach"`
}

// RegisterPlayerRequest carries the fields of a player registration.
type RegisterPlayerRequest struct {
	ID           string `json:"id"`
	FullName     string `json:"full_name"`
	Position     string `json:"position"`
	JerseyNumber int    `json:"jersey_number"`
	TeamID       string `json:"team_id"`
}

// CreateMatchRequest carries the fields of a match creation.
type CreateMatchRequest struct {
	ID         string `json:"id"`
	HomeTeamID string `json:"home_team_id"`
	AwayTeamID string `json:"away_team_id"`
	Venue      string `json:"venue"`
	Referee    string `json:"referee"`
}

// RegisterGoalRequest identifies a goal by match, player and minute.
type RegisterGoalRequest struct {
	MatchID  string `json:"match_id"`
	PlayerID string `json:"player_id"`
	Minute   int    `json:"minute"`
}

// RegisterCardRequest identifies a disciplinary card registration.
type RegisterCardRequest struct {
	MatchID  string `json:"match_id"`
	PlayerID string `json:"player_id"`
	Kind     string `json:"kind"`
	Minute   int    `json:"minute"`
	Reason   string `json:"reason"`
}

// RegisterFoulRequest identifies a foul registration. Card is the optional
// associated card kind; empty means none.
type RegisterFoulRequest struct {
	MatchID       string `json:"match_id"`
	CommittedByID string `json:"committed_by_id"`
	AffectedID    string `json:"affected_id"`
	Minute        int    `json:"minute"`
	Zone          string `json:"zone"`
	Card          string `json:"card,omitempty"`
}
