package championship

import (
	"context"
	"sync"

	"github.com/mcdev12/campeonato/go/internal/events"
	"github.com/mcdev12/campeonato/go/internal/matches"
	"github.com/mcdev12/campeonato/go/internal/models"
	"github.com/mcdev12/campeonato/go/internal/snapshot"
	"github.com/mcdev12/campeonato/go/internal/standings"
	"github.com/rs/zerolog/log"
)

// Sentinel results of MatchWinnerName. Callers migrating from the original
// championship app depend on the exact strings.
const (
	WinnerDraw          = "Empate"
	WinnerMatchNotFound = "Partido no encontrado"
	WinnerInvalidParam  = "Parámetro inválido"
)

// App owns the championship registry and is its entire operation surface:
// registrations, event recording, lookups, statistics and standings. A single
// coarse lock guards the whole registry; statistics walk the full match list
// and need a consistent snapshot, so there is nothing to gain from
// finer-grained locking at these data volumes.
//
// Mutating operations report success as a bare boolean and never mutate on
// failure; lookups return nil or the documented sentinel for unknown or blank
// ids.
type App struct {
	mu        sync.RWMutex
	reg       *registry
	engine    *matches.Engine
	stats     *standings.App
	publisher events.Publisher
}

// NewApp creates an empty championship. publisher may be nil to disable event
// publishing.
func NewApp(publisher events.Publisher) *App {
	reg := newRegistry()
	engine := matches.NewEngine(reg)
	return &App{
		reg:       reg,
		engine:    engine,
		stats:     standings.NewApp(reg, engine),
		publisher: publisher,
	}
}

// RegisterTeam registers a new team. It fails on blank fields, on a duplicate
// id, and on a duplicate name (compared case-insensitively).
func (a *App) RegisterTeam(req RegisterTeamRequest) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.reg.TeamByID(req.ID) != nil || a.reg.TeamByName(req.Name) != nil {
		return false
	}
	team, err := models.NewTeam(req.ID, req.Name, req.Neighborhood, req.Coach)
	if err != nil {
		return false
	}
	a.reg.addTeam(team)

	a.publish(events.EventTypeTeamRegistered, "", events.TeamRegisteredPayload{
		TeamID: team.ID,
		Name:   team.Name,
	})
	return true
}

// RegisterPlayer adds a player to a team's roster. It fails on blank
// id/name/position, a player id already used anywhere in the championship, or
// an unknown team.
func (a *App) RegisterPlayer(req RegisterPlayerRequest) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if req.ID == "" || req.FullName == "" || req.Position == "" {
		return false
	}
	if a.reg.PlayerByID(req.ID) != nil {
		return false
	}
	team := a.reg.TeamByID(req.TeamID)
	if team == nil {
		return false
	}

	player := &models.Player{
		ID:           req.ID,
		FullName:     req.FullName,
		Position:     req.Position,
		JerseyNumber: req.JerseyNumber,
		TeamID:       team.ID,
	}
	a.reg.addPlayer(player)
	team.PlayerIDs = append(team.PlayerIDs, player.ID)

	a.publish(events.EventTypePlayerRegistered, "", events.PlayerRegisteredPayload{
		PlayerID: player.ID,
		TeamID:   team.ID,
		FullName: player.FullName,
	})
	return true
}

// CreateMatch creates a fixture between two registered teams. It fails on a
// duplicate match id, unresolved team ids, home equal to away, or blank
// venue/referee. The match joins the global list and both teams' match lists.
func (a *App) CreateMatch(req CreateMatchRequest) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.reg.MatchByID(req.ID) != nil {
		return false
	}
	home := a.reg.TeamByID(req.HomeTeamID)
	away := a.reg.TeamByID(req.AwayTeamID)
	if home == nil || away == nil {
		return false
	}
	m, err := models.NewMatch(req.ID, home.ID, away.ID, req.Venue, req.Referee)
	if err != nil {
		return false
	}

	a.reg.addMatch(m)
	home.MatchIDs = append(home.MatchIDs, m.ID)
	away.MatchIDs = append(away.MatchIDs, m.ID)

	a.publish(events.EventTypeMatchCreated, m.ID, events.MatchCreatedPayload{
		MatchID:    m.ID,
		HomeTeamID: home.ID,
		AwayTeamID: away.ID,
		Venue:      m.Venue,
	})
	return true
}

// RegisterGoal resolves the match and player ids and delegates to the match
// engine. Resolution failure reports the same bare false as a rule failure.
func (a *App) RegisterGoal(req RegisterGoalRequest) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	m := a.reg.MatchByID(req.MatchID)
	if m == nil {
		return false
	}
	player := a.rosteredPlayer(m, req.PlayerID)
	if player == nil {
		return false
	}
	if !a.engine.RegisterGoal(m, player, req.Minute) {
		return false
	}

	a.publish(events.EventTypeGoalScored, m.ID, events.GoalScoredPayload{
		MatchID:   m.ID,
		PlayerID:  player.ID,
		Minute:    req.Minute,
		HomeGoals: m.HomeGoals,
		AwayGoals: m.AwayGoals,
	})
	return true
}

// RegisterCard resolves ids and delegates to the match engine.
func (a *App) RegisterCard(req RegisterCardRequest) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	m := a.reg.MatchByID(req.MatchID)
	if m == nil {
		return false
	}
	player := a.rosteredPlayer(m, req.PlayerID)
	if player == nil {
		return false
	}
	if !a.engine.RegisterCard(m, player, models.CardKind(req.Kind), req.Minute, req.Reason) {
		return false
	}

	a.publish(events.EventTypeCardIssued, m.ID, events.CardIssuedPayload{
		MatchID:  m.ID,
		PlayerID: player.ID,
		Kind:     req.Kind,
		Minute:   req.Minute,
		Reason:   req.Reason,
	})
	return true
}

// RegisterFoul resolves ids and delegates to the match engine. An empty Card
// means no associated card.
func (a *App) RegisterFoul(req RegisterFoulRequest) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	m := a.reg.MatchByID(req.MatchID)
	if m == nil {
		return false
	}
	committedBy := a.rosteredPlayer(m, req.CommittedByID)
	affected := a.rosteredPlayer(m, req.AffectedID)
	if committedBy == nil || affected == nil {
		return false
	}

	var card *models.CardKind
	if req.Card != "" {
		kind := models.CardKind(req.Card)
		card = &kind
	}
	if !a.engine.RegisterFoul(m, committedBy, affected, req.Minute, req.Zone, card) {
		return false
	}

	payload := events.FoulCommittedPayload{
		MatchID:       m.ID,
		CommittedByID: committedBy.ID,
		AffectedID:    affected.ID,
		Minute:        req.Minute,
		Zone:          req.Zone,
		Card:          req.Card,
	}
	a.publish(events.EventTypeFoulCommitted, m.ID, payload)
	return true
}

// FindTeamByID returns a copy of the team, or nil for a blank or unknown id.
// Queries hand out copies, never live registry pointers: callers read and
// marshal their results outside the registry lock.
func (a *App) FindTeamByID(id string) *models.Team {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return cloneTeam(a.reg.TeamByID(id))
}

// FindTeamByName returns a copy of the team matched case-insensitively by
// name, or nil.
func (a *App) FindTeamByName(name string) *models.Team {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return cloneTeam(a.reg.TeamByName(name))
}

// FindMatchByID returns a copy of the match, or nil for a blank or unknown id.
func (a *App) FindMatchByID(id string) *models.Match {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return cloneMatch(a.reg.MatchByID(id))
}

// Teams returns a copy of every team in registration order.
func (a *App) Teams() []*models.Team {
	a.mu.RLock()
	defer a.mu.RUnlock()

	live := a.reg.TeamsInOrder()
	teams := make([]*models.Team, 0, len(live))
	for _, team := range live {
		teams = append(teams, cloneTeam(team))
	}
	return teams
}

// Matches returns a copy of every match in creation order.
func (a *App) Matches() []*models.Match {
	a.mu.RLock()
	defer a.mu.RUnlock()

	live := a.reg.MatchesInOrder()
	matchList := make([]*models.Match, 0, len(live))
	for _, m := range live {
		matchList = append(matchList, cloneMatch(m))
	}
	return matchList
}

// TeamPoints returns the team's championship points (3 per win, 1 per draw),
// or -1 for a blank or unknown team id.
func (a *App) TeamPoints(teamID string) int {
	a.mu.RLock()
	defer a.mu.RUnlock()

	rec, ok := a.stats.TeamRecord(teamID)
	if !ok {
		return -1
	}
	return rec.Points()
}

// TeamFouls returns the total fouls the team committed across its matches, or
// -1 for a blank or unknown team id.
func (a *App) TeamFouls(teamID string) int {
	a.mu.RLock()
	defer a.mu.RUnlock()

	rec, ok := a.stats.TeamRecord(teamID)
	if !ok {
		return -1
	}
	return rec.Fouls
}

// MatchWinnerName names the winning team of the match, WinnerDraw on a level
// score, WinnerMatchNotFound for an unknown id and WinnerInvalidParam for a
// blank id.
func (a *App) MatchWinnerName(matchID string) string {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if matchID == "" {
		return WinnerInvalidParam
	}
	m := a.reg.MatchByID(matchID)
	if m == nil {
		return WinnerMatchNotFound
	}
	winner := a.engine.Winner(m)
	if winner == nil {
		return WinnerDraw
	}
	return winner.Name
}

// MatchSummary renders the match as "<home> vs <away> (h-v)", or "" for an
// unknown id.
func (a *App) MatchSummary(matchID string) string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.engine.Summary(a.reg.MatchByID(matchID))
}

// StandingsTable returns the sorted standings of every registered team.
func (a *App) StandingsTable() []models.StandingsRow {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.stats.Table()
}

// PlayerStats aggregates a player's goals, cards, fouls committed and matches
// played across the championship. Each count is 0 both for an unknown id and
// for a known player without activity.
func (a *App) PlayerStats(playerID string) models.PlayerStats {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.stats.PlayerStats(playerID)
}

// rosteredPlayer resolves a player id against the match's two rosters,
// returning nil when the player is rostered on neither side. Runs under the
// caller's lock.
func (a *App) rosteredPlayer(m *models.Match, playerID string) *models.Player {
	if a.engine.TeamOfPlayer(m, playerID) == nil {
		return nil
	}
	return a.reg.PlayerByID(playerID)
}

// publish emits an event to the configured publisher. Publishing is best
// effort; a delivery failure never changes the outcome of the operation that
// triggered it.
func (a *App) publish(eventType events.EventType, matchID string, payload interface{}) {
	if a.publisher == nil {
		return
	}
	event, err := events.New(eventType, matchID, payload)
	if err != nil {
		log.Warn().Err(err).Str("event_type", string(eventType)).Msg("failed to build event")
		return
	}
	if err := a.publisher.Publish(context.Background(), event); err != nil {
		log.Warn().Err(err).Str("event_type", string(eventType)).Msg("failed to publish event")
	}
}

// cloneTeam copies a team including its id lists, so the copy shares no
// memory with the registry's entity.
func cloneTeam(t *models.Team) *models.Team {
	if t == nil {
		return nil
	}
	c := *t
	c.PlayerIDs = append([]string(nil), t.PlayerIDs...)
	c.MatchIDs = append([]string(nil), t.MatchIDs...)
	return &c
}

// cloneMatch copies a match including its event logs.
func cloneMatch(m *models.Match) *models.Match {
	if m == nil {
		return nil
	}
	c := *m
	c.Goals = append([]models.Goal(nil), m.Goals...)
	c.Cards = append([]models.Card(nil), m.Cards...)
	c.Fouls = append([]models.Foul(nil), m.Fouls...)
	return &c
}

// Snapshot copies the whole registry into a serializable document.
func (a *App) Snapshot() *snapshot.Document {
	a.mu.RLock()
	defer a.mu.RUnlock()

	doc := &snapshot.Document{}
	for _, team := range a.reg.TeamsInOrder() {
		doc.Teams = append(doc.Teams, *cloneTeam(team))

		for _, playerID := range team.PlayerIDs {
			if p := a.reg.PlayerByID(playerID); p != nil {
				doc.Players = append(doc.Players, *p)
			}
		}
	}
	for _, match := range a.reg.MatchesInOrder() {
		doc.Matches = append(doc.Matches, *cloneMatch(match))
	}
	return doc
}

// Restore replaces the registry contents with the document's. Entities with
// unresolvable references are dropped rather than reconstructed: a team with
// a blank or duplicate id, a player whose team is missing, a match whose
// teams are missing, and event log entries naming players rostered on neither
// side of their match.
func (a *App) Restore(doc *snapshot.Document) {
	a.mu.Lock()
	defer a.mu.Unlock()

	reg := newRegistry()
	for i := range doc.Teams {
		team := doc.Teams[i]
		if team.ID == "" || reg.TeamByID(team.ID) != nil {
			continue
		}
		t := team
		t.PlayerIDs = nil
		t.MatchIDs = nil
		reg.addTeam(&t)
	}
	for i := range doc.Players {
		player := doc.Players[i]
		team := reg.TeamByID(player.TeamID)
		if player.ID == "" || team == nil || reg.PlayerByID(player.ID) != nil {
			continue
		}
		p := player
		reg.addPlayer(&p)
		team.PlayerIDs = append(team.PlayerIDs, p.ID)
	}

	engine := matches.NewEngine(reg)
	for i := range doc.Matches {
		match := doc.Matches[i]
		home := reg.TeamByID(match.HomeTeamID)
		away := reg.TeamByID(match.AwayTeamID)
		if match.ID == "" || home == nil || away == nil || reg.MatchByID(match.ID) != nil {
			continue
		}

		m := match
		m.Goals, m.Cards, m.Fouls = nil, nil, nil
		reg.addMatch(&m)
		home.MatchIDs = append(home.MatchIDs, m.ID)
		away.MatchIDs = append(away.MatchIDs, m.ID)

		for _, g := range match.Goals {
			if engine.TeamOfPlayer(&m, g.PlayerID) != nil {
				m.Goals = append(m.Goals, g)
			}
		}
		for _, c := range match.Cards {
			if engine.TeamOfPlayer(&m, c.PlayerID) != nil {
				m.Cards = append(m.Cards, c)
			}
		}
		for _, f := range match.Fouls {
			if engine.TeamOfPlayer(&m, f.CommittedByID) != nil && engine.TeamOfPlayer(&m, f.AffectedID) != nil {
				m.Fouls = append(m.Fouls, f)
			}
		}
	}

	a.reg = reg
	a.engine = engine
	a.stats = standings.NewApp(reg, engine)
}
