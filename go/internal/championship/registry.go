package championship

import (
	"strings"

	"github.com/mcdev12/campeonato/go/internal/models"
)

// registry is the in-memory arena holding every championship entity, indexed
// by id. Relations between entities are id references resolved through these
// indices, so the cyclic team/player/match graph never materializes as
// object cycles. It performs no locking; App serializes access.
type registry struct {
	teams      map[string]*models.Team
	teamOrder  []string
	teamByName map[string]string // lowercased name -> team id
	players    map[string]*models.Player
	matches    map[string]*models.Match
	matchOrder []string
}

func newRegistry() *registry {
	return &registry{
		teams:      make(map[string]*models.Team),
		teamByName: make(map[string]string),
		players:    make(map[string]*models.Player),
		matches:    make(map[string]*models.Match),
	}
}

// TeamByID returns the team with the given id, or nil.
func (r *registry) TeamByID(id string) *models.Team {
	if id == "" {
		return nil
	}
	return r.teams[id]
}

// TeamByName returns the team with the given name, matched
// case-insensitively, or nil.
func (r *registry) TeamByName(name string) *models.Team {
	if name == "" {
		return nil
	}
	id, ok := r.teamByName[strings.ToLower(name)]
	if !ok {
		return nil
	}
	return r.teams[id]
}

// PlayerByID returns the player with the given id, or nil.
func (r *registry) PlayerByID(id string) *models.Player {
	if id == "" {
		return nil
	}
	return r.players[id]
}

// MatchByID returns the match with the given id, or nil.
func (r *registry) MatchByID(id string) *models.Match {
	if id == "" {
		return nil
	}
	return r.matches[id]
}

// TeamsInOrder returns every team in registration order.
func (r *registry) TeamsInOrder() []*models.Team {
	teams := make([]*models.Team, 0, len(r.teamOrder))
	for _, id := range r.teamOrder {
		teams = append(teams, r.teams[id])
	}
	return teams
}

// MatchesInOrder returns every match in creation order.
func (r *registry) MatchesInOrder() []*models.Match {
	matches := make([]*models.Match, 0, len(r.matchOrder))
	for _, id := range r.matchOrder {
		matches = append(matches, r.matches[id])
	}
	return matches
}

func (r *registry) addTeam(t *models.Team) {
	r.teams[t.ID] = t
	r.teamOrder = append(r.teamOrder, t.ID)
	r.teamByName[strings.ToLower(t.Name)] = t.ID
}

func (r *registry) addPlayer(p *models.Player) {
	r.players[p.ID] = p
}

func (r *registry) addMatch(m *models.Match) {
	r.matches[m.ID] = m
	r.matchOrder = append(r.matchOrder, m.ID)
}
