package matches

import (
	"fmt"

	"github.com/mcdev12/campeonato/go/internal/models"
)

// TeamResolver defines what the match engine needs from the team registry.
type TeamResolver interface {
	TeamByID(id string) *models.Team
}

// Engine applies in-match event registration rules and answers match-scoped
// queries. It holds no state of its own; matches are owned by the registry
// and passed in.
type Engine struct {
	teams TeamResolver
}

// NewEngine creates a match engine backed by the given team resolver.
func NewEngine(teams TeamResolver) *Engine {
	return &Engine{teams: teams}
}

// TeamOfPlayer returns the participating team whose roster contains the
// player id, or nil if the player is rostered on neither side. Every roster
// membership check in the engine goes through here.
func (e *Engine) TeamOfPlayer(m *models.Match, playerID string) *models.Team {
	if m == nil || playerID == "" {
		return nil
	}
	if home := e.teams.TeamByID(m.HomeTeamID); home != nil && home.HasPlayer(playerID) {
		return home
	}
	if away := e.teams.TeamByID(m.AwayTeamID); away != nil && away.HasPlayer(playerID) {
		return away
	}
	return nil
}

// RegisterGoal appends a goal for the player and increments the scoring
// side's counter. It fails without mutating the match if the player is nil,
// the minute is not positive, or the player is rostered on neither side.
//
// The side is decided by the player's owning team. If that team matches
// neither side (inconsistent state that id-resolution upstream prevents), the
// goal stays in the log with no counter change.
func (e *Engine) RegisterGoal(m *models.Match, player *models.Player, minute int) bool {
	if m == nil || player == nil || minute <= 0 {
		return false
	}
	if e.TeamOfPlayer(m, player.ID) == nil {
		return false
	}

	m.Goals = append(m.Goals, models.Goal{PlayerID: player.ID, Minute: minute})

	switch player.TeamID {
	case m.HomeTeamID:
		m.HomeGoals++
	case m.AwayTeamID:
		m.AwayGoals++
	}
	return true
}

// RegisterCard appends a disciplinary card for the player. It fails if the
// player is nil or not rostered in the match, the kind is not a valid card
// kind, the minute is not positive, or the reason is empty.
func (e *Engine) RegisterCard(m *models.Match, player *models.Player, kind models.CardKind, minute int, reason string) bool {
	if m == nil || player == nil || !kind.Valid() || minute <= 0 || reason == "" {
		return false
	}
	if e.TeamOfPlayer(m, player.ID) == nil {
		return false
	}

	m.Cards = append(m.Cards, models.Card{
		PlayerID: player.ID,
		Kind:     kind,
		Minute:   minute,
		Reason:   reason,
	})
	return true
}

// RegisterFoul appends a foul committed by one player against another. Both
// players must be rostered in the match, must be distinct, and must belong to
// different teams. The associated card is optional; when present it must be a
// valid kind.
func (e *Engine) RegisterFoul(m *models.Match, committedBy, affected *models.Player, minute int, zone string, card *models.CardKind) bool {
	if m == nil || committedBy == nil || affected == nil || minute <= 0 || zone == "" {
		return false
	}
	if committedBy.ID == affected.ID {
		return false
	}
	if card != nil && !card.Valid() {
		return false
	}

	committerTeam := e.TeamOfPlayer(m, committedBy.ID)
	affectedTeam := e.TeamOfPlayer(m, affected.ID)
	if committerTeam == nil || affectedTeam == nil {
		return false
	}
	if committerTeam.Equal(affectedTeam) {
		return false
	}

	m.Fouls = append(m.Fouls, models.Foul{
		CommittedByID: committedBy.ID,
		AffectedID:    affected.ID,
		Minute:        minute,
		Zone:          zone,
		Card:          card,
	})
	return true
}

// TeamFouls counts the fouls committed by the given team's players in the
// match, or -1 if the team is not one of the two sides.
func (e *Engine) TeamFouls(m *models.Match, teamID string) int {
	team := e.participant(m, teamID)
	if team == nil {
		return -1
	}
	count := 0
	for _, f := range m.Fouls {
		if team.HasPlayer(f.CommittedByID) {
			count++
		}
	}
	return count
}

// TeamCards counts the cards shown to the given team's players in the match,
// or -1 if the team is not one of the two sides.
func (e *Engine) TeamCards(m *models.Match, teamID string) int {
	team := e.participant(m, teamID)
	if team == nil {
		return -1
	}
	count := 0
	for _, c := range m.Cards {
		if team.HasPlayer(c.PlayerID) {
			count++
		}
	}
	return count
}

// TeamGoals returns the stored goal counter for the given side, or -1 if the
// team is not one of the two sides. The counter is authoritative; it is kept
// consistent with the goal log by RegisterGoal.
func (e *Engine) TeamGoals(m *models.Match, teamID string) int {
	if m == nil {
		return -1
	}
	switch teamID {
	case m.HomeTeamID:
		return m.HomeGoals
	case m.AwayTeamID:
		return m.AwayGoals
	default:
		return -1
	}
}

// Winner returns the team with the higher goal counter, or nil on a draw.
func (e *Engine) Winner(m *models.Match) *models.Team {
	if m == nil || m.HomeGoals == m.AwayGoals {
		return nil
	}
	if m.HomeGoals > m.AwayGoals {
		return e.teams.TeamByID(m.HomeTeamID)
	}
	return e.teams.TeamByID(m.AwayTeamID)
}

// Summary renders the match as "<home> vs <away> (h-v)".
func (e *Engine) Summary(m *models.Match) string {
	if m == nil {
		return ""
	}
	home, away := m.HomeTeamID, m.AwayTeamID
	if t := e.teams.TeamByID(m.HomeTeamID); t != nil {
		home = t.Name
	}
	if t := e.teams.TeamByID(m.AwayTeamID); t != nil {
		away = t.Name
	}
	return fmt.Sprintf("%s vs %s (%d-%d)", home, away, m.HomeGoals, m.AwayGoals)
}

// participant returns the side of the match identified by teamID, or nil if
// the team plays in neither side.
func (e *Engine) participant(m *models.Match, teamID string) *models.Team {
	if m == nil || teamID == "" {
		return nil
	}
	switch teamID {
	case m.HomeTeamID:
		return e.teams.TeamByID(m.HomeTeamID)
	case m.AwayTeamID:
		return e.teams.TeamByID(m.AwayTeamID)
	default:
		return nil
	}
}
