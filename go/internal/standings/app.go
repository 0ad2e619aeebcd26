package standings

import (
	"sort"

	"github.com/mcdev12/campeonato/go/internal/matches"
	"github.com/mcdev12/campeonato/go/internal/models"
)

// Registry defines what the statistics engine needs from the championship
// registry. All methods are lookups; the engine never mutates.
type Registry interface {
	TeamByID(id string) *models.Team
	MatchByID(id string) *models.Match
	TeamsInOrder() []*models.Team
	MatchesInOrder() []*models.Match
}

// TeamRecord is a team's aggregate across every match it appears in.
type TeamRecord struct {
	Wins         int
	Draws        int
	Losses       int
	GoalsFor     int
	GoalsAgainst int
	Cards        int
	Fouls        int
}

// Points applies the championship scoring rule: 3 per win, 1 per draw.
func (r TeamRecord) Points() int {
	return 3*r.Wins + r.Draws
}

// App computes team and player statistics by walking the registry's matches.
// It is expected to run under the registry's lock so every walk observes a
// consistent snapshot.
type App struct {
	reg    Registry
	engine *matches.Engine
}

// NewApp creates a statistics engine over the given registry.
func NewApp(reg Registry, engine *matches.Engine) *App {
	return &App{reg: reg, engine: engine}
}

// TeamRecord aggregates the team's matches. The second return is false when
// the team id is blank or unknown.
func (a *App) TeamRecord(teamID string) (TeamRecord, bool) {
	team := a.reg.TeamByID(teamID)
	if team == nil {
		return TeamRecord{}, false
	}

	var rec TeamRecord
	for _, matchID := range team.MatchIDs {
		m := a.reg.MatchByID(matchID)
		if m == nil {
			continue
		}

		mine, theirs := m.HomeGoals, m.AwayGoals
		if teamID == m.AwayTeamID {
			mine, theirs = m.AwayGoals, m.HomeGoals
		}

		switch {
		case mine > theirs:
			rec.Wins++
		case mine == theirs:
			rec.Draws++
		default:
			rec.Losses++
		}
		rec.GoalsFor += mine
		rec.GoalsAgainst += theirs

		if cards := a.engine.TeamCards(m, teamID); cards > 0 {
			rec.Cards += cards
		}
		if fouls := a.engine.TeamFouls(m, teamID); fouls > 0 {
			rec.Fouls += fouls
		}
	}
	return rec, true
}

// Table returns the standings of every registered team, sorted by points
// descending, then goals for descending, then goals against ascending. Teams
// equal on all three keys keep their registration order.
func (a *App) Table() []models.StandingsRow {
	teams := a.reg.TeamsInOrder()
	rows := make([]models.StandingsRow, 0, len(teams))
	for _, team := range teams {
		rec, ok := a.TeamRecord(team.ID)
		if !ok {
			continue
		}
		rows = append(rows, models.StandingsRow{
			TeamName:     team.Name,
			Points:       rec.Points(),
			Wins:         rec.Wins,
			Draws:        rec.Draws,
			Losses:       rec.Losses,
			GoalsFor:     rec.GoalsFor,
			GoalsAgainst: rec.GoalsAgainst,
			Cards:        rec.Cards,
			Fouls:        rec.Fouls,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Points != rows[j].Points {
			return rows[i].Points > rows[j].Points
		}
		if rows[i].GoalsFor != rows[j].GoalsFor {
			return rows[i].GoalsFor > rows[j].GoalsFor
		}
		return rows[i].GoalsAgainst < rows[j].GoalsAgainst
	})
	return rows
}

// PlayerGoals counts the player's goals across every match. Returns 0 both
// for a blank or unknown player id and for a known scoreless player; callers
// needing the distinction must resolve the player first.
func (a *App) PlayerGoals(playerID string) int {
	if playerID == "" {
		return 0
	}
	count := 0
	for _, m := range a.reg.MatchesInOrder() {
		for _, g := range m.Goals {
			if g.PlayerID == playerID {
				count++
			}
		}
	}
	return count
}

// PlayerCards counts the cards of any kind shown to the player across every
// match. Same 0-for-unknown ambiguity as PlayerGoals.
func (a *App) PlayerCards(playerID string) int {
	if playerID == "" {
		return 0
	}
	count := 0
	for _, m := range a.reg.MatchesInOrder() {
		for _, c := range m.Cards {
			if c.PlayerID == playerID {
				count++
			}
		}
	}
	return count
}

// PlayerFouls counts the fouls the player committed across every match.
// Fouls suffered are not counted. Same 0-for-unknown ambiguity as
// PlayerGoals.
func (a *App) PlayerFouls(playerID string) int {
	if playerID == "" {
		return 0
	}
	count := 0
	for _, m := range a.reg.MatchesInOrder() {
		for _, f := range m.Fouls {
			if f.CommittedByID == playerID {
				count++
			}
		}
	}
	return count
}

// PlayerMatchesPlayed counts the matches where the player's team played,
// regardless of whether the player recorded any event in them.
func (a *App) PlayerMatchesPlayed(playerID string) int {
	if playerID == "" {
		return 0
	}
	count := 0
	for _, m := range a.reg.MatchesInOrder() {
		home := a.reg.TeamByID(m.HomeTeamID)
		away := a.reg.TeamByID(m.AwayTeamID)
		if (home != nil && home.HasPlayer(playerID)) || (away != nil && away.HasPlayer(playerID)) {
			count++
		}
	}
	return count
}

// PlayerStats bundles every player aggregate in one walk-friendly struct.
func (a *App) PlayerStats(playerID string) models.PlayerStats {
	return models.PlayerStats{
		PlayerID:       playerID,
		Goals:          a.PlayerGoals(playerID),
		Cards:          a.PlayerCards(playerID),
		FoulsCommitted: a.PlayerFouls(playerID),
		MatchesPlayed:  a.PlayerMatchesPlayed(playerID),
	}
}
