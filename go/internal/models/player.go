package models

// Player represents an athlete rostered on exactly one team. Identity is the
// id; TeamID is the back-reference to the owning team and is never empty once
// the player is registered.
type Player struct {
	ID           string `json:"id"`
	FullName     string `json:"full_name"`
	Position     string `json:"position"`
	JerseyNumber int    `json:"jersey_number"`
	TeamID       string `json:"team_id"`
}

// Equal compares players by id only.
func (p *Player) Equal(other *Player) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.ID == other.ID
}
