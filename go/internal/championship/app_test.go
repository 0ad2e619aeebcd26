package championship

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/mcdev12/campeonato/go/internal/models"
	"github.com/mcdev12/campeonato/go/internal/snapshot"
)

func mustRegisterTeam(t *testing.T, app *App, id, name string) {
	t.Helper()
	ok := app.RegisterTeam(RegisterTeamRequest{ID: id, Name: name, Neighborhood: "Barrio " + name, Coach: "DT " + name})
	if !ok {
		t.Fatalf("RegisterTeam(%s) failed", id)
	}
}

func mustRegisterPlayer(t *testing.T, app *App, id, name, teamID string) {
	t.Helper()
	ok := app.RegisterPlayer(RegisterPlayerRequest{ID: id, FullName: name, Position: "Delantero", JerseyNumber: 9, TeamID: teamID})
	if !ok {
		t.Fatalf("RegisterPlayer(%s) failed", id)
	}
}

func mustCreateMatch(t *testing.T, app *App, id, home, away string) {
	t.Helper()
	ok := app.CreateMatch(CreateMatchRequest{ID: id, HomeTeamID: home, AwayTeamID: away, Venue: "Cancha Central", Referee: "Arbitro"})
	if !ok {
		t.Fatalf("CreateMatch(%s) failed", id)
	}
}

// newFixture builds a championship with two teams of two players and one
// match between them.
func newFixture(t *testing.T) *App {
	t.Helper()
	app := NewApp(nil)
	mustRegisterTeam(t, app, "E001", "Equipo Alpha")
	mustRegisterTeam(t, app, "E002", "Equipo Beta")
	mustRegisterPlayer(t, app, "J001", "Carlos Perez", "E001")
	mustRegisterPlayer(t, app, "J002", "Luis Gomez", "E001")
	mustRegisterPlayer(t, app, "J003", "Pedro Diaz", "E002")
	mustRegisterPlayer(t, app, "J004", "Juan Soto", "E002")
	mustCreateMatch(t, app, "P001", "E001", "E002")
	return app
}

func TestRegisterTeam(t *testing.T) {
	app := NewApp(nil)
	mustRegisterTeam(t, app, "E001", "Equipo Alpha")

	tests := []struct {
		name string
		req  RegisterTeamRequest
		want bool
	}{
		{"duplicate id", RegisterTeamRequest{ID: "E001", Name: "Otro", Neighborhood: "B", Coach: "C"}, false},
		{"duplicate name", RegisterTeamRequest{ID: "E002", Name: "Equipo Alpha", Neighborhood: "B", Coach: "C"}, false},
		{"duplicate name different case", RegisterTeamRequest{ID: "E002", Name: "EQUIPO alpha", Neighborhood: "B", Coach: "C"}, false},
		{"blank id", RegisterTeamRequest{ID: "  ", Name: "Equipo Gamma", Neighborhood: "B", Coach: "C"}, false},
		{"blank name", RegisterTeamRequest{ID: "E003", Name: "", Neighborhood: "B", Coach: "C"}, false},
		{"blank coach", RegisterTeamRequest{ID: "E003", Name: "Equipo Gamma", Neighborhood: "B", Coach: ""}, false},
		{"valid", RegisterTeamRequest{ID: "E002", Name: "Equipo Beta", Neighborhood: "B", Coach: "C"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := app.RegisterTeam(tt.req); got != tt.want {
				t.Errorf("RegisterTeam() = %v, want %v", got, tt.want)
			}
		})
	}

	if got := len(app.Teams()); got != 2 {
		t.Errorf("championship has %d teams, want 2", got)
	}
}

func TestRegisterPlayer(t *testing.T) {
	app := NewApp(nil)
	mustRegisterTeam(t, app, "E001", "Equipo Alpha")
	mustRegisterTeam(t, app, "E002", "Equipo Beta")
	mustRegisterPlayer(t, app, "J001", "Carlos Perez", "E001")

	tests := []struct {
		name string
		req  RegisterPlayerRequest
		want bool
	}{
		{"duplicate id same team", RegisterPlayerRequest{ID: "J001", FullName: "Otro", Position: "Defensa", TeamID: "E001"}, false},
		{"duplicate id other team", RegisterPlayerRequest{ID: "J001", FullName: "Otro", Position: "Defensa", TeamID: "E002"}, false},
		{"unknown team", RegisterPlayerRequest{ID: "J002", FullName: "Luis Gomez", Position: "Defensa", TeamID: "E999"}, false},
		{"blank id", RegisterPlayerRequest{ID: "", FullName: "Luis Gomez", Position: "Defensa", TeamID: "E001"}, false},
		{"blank name", RegisterPlayerRequest{ID: "J002", FullName: "", Position: "Defensa", TeamID: "E001"}, false},
		{"blank position", RegisterPlayerRequest{ID: "J002", FullName: "Luis Gomez", Position: "", TeamID: "E001"}, false},
		{"valid", RegisterPlayerRequest{ID: "J002", FullName: "Luis Gomez", Position: "Defensa", TeamID: "E001"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := app.RegisterPlayer(tt.req); got != tt.want {
				t.Errorf("RegisterPlayer() = %v, want %v", got, tt.want)
			}
		})
	}

	team := app.FindTeamByID("E001")
	if len(team.PlayerIDs) != 2 {
		t.Errorf("roster has %d players, want 2", len(team.PlayerIDs))
	}
}

func TestCreateMatch(t *testing.T) {
	app := NewApp(nil)
	mustRegisterTeam(t, app, "E001", "Equipo Alpha")
	mustRegisterTeam(t, app, "E002", "Equipo Beta")
	mustCreateMatch(t, app, "P001", "E001", "E002")

	tests := []struct {
		name string
		req  CreateMatchRequest
		want bool
	}{
		{"duplicate id", CreateMatchRequest{ID: "P001", HomeTeamID: "E001", AwayTeamID: "E002", Venue: "V", Referee: "R"}, false},
		{"unknown home", CreateMatchRequest{ID: "P002", HomeTeamID: "E999", AwayTeamID: "E002", Venue: "V", Referee: "R"}, false},
		{"unknown away", CreateMatchRequest{ID: "P002", HomeTeamID: "E001", AwayTeamID: "E999", Venue: "V", Referee: "R"}, false},
		{"same team both sides", CreateMatchRequest{ID: "P002", HomeTeamID: "E001", AwayTeamID: "E001", Venue: "V", Referee: "R"}, false},
		{"blank venue", CreateMatchRequest{ID: "P002", HomeTeamID: "E001", AwayTeamID: "E002", Venue: "", Referee: "R"}, false},
		{"valid rematch", CreateMatchRequest{ID: "P002", HomeTeamID: "E002", AwayTeamID: "E001", Venue: "V", Referee: "R"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := app.CreateMatch(tt.req); got != tt.want {
				t.Errorf("CreateMatch() = %v, want %v", got, tt.want)
			}
		})
	}

	for _, teamID := range []string{"E001", "E002"} {
		team := app.FindTeamByID(teamID)
		if len(team.MatchIDs) != 2 {
			t.Errorf("team %s has %d matches, want 2", teamID, len(team.MatchIDs))
		}
	}
}

func TestRegisterGoalByID(t *testing.T) {
	app := newFixture(t)

	tests := []struct {
		name string
		req  RegisterGoalRequest
		want bool
	}{
		{"home scorer", RegisterGoalRequest{MatchID: "P001", PlayerID: "J001", Minute: 15}, true},
		{"away scorer", RegisterGoalRequest{MatchID: "P001", PlayerID: "J003", Minute: 40}, true},
		{"unknown match", RegisterGoalRequest{MatchID: "P999", PlayerID: "J001", Minute: 15}, false},
		{"unknown player", RegisterGoalRequest{MatchID: "P001", PlayerID: "J999", Minute: 15}, false},
		{"blank player", RegisterGoalRequest{MatchID: "P001", PlayerID: "", Minute: 15}, false},
		{"bad minute", RegisterGoalRequest{MatchID: "P001", PlayerID: "J001", Minute: 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := app.RegisterGoal(tt.req); got != tt.want {
				t.Errorf("RegisterGoal() = %v, want %v", got, tt.want)
			}
		})
	}

	m := app.FindMatchByID("P001")
	if m.HomeGoals != 1 || m.AwayGoals != 1 {
		t.Errorf("counters = %d-%d, want 1-1", m.HomeGoals, m.AwayGoals)
	}
}

func TestRegisterCardByID(t *testing.T) {
	app := newFixture(t)

	tests := []struct {
		name string
		req  RegisterCardRequest
		want bool
	}{
		{"yellow", RegisterCardRequest{MatchID: "P001", PlayerID: "J002", Kind: "Amarilla", Minute: 30, Reason: "Falta fuerte"}, true},
		{"red", RegisterCardRequest{MatchID: "P001", PlayerID: "J004", Kind: "Roja", Minute: 78, Reason: "Doble amarilla"}, true},
		{"invalid kind", RegisterCardRequest{MatchID: "P001", PlayerID: "J002", Kind: "Azul", Minute: 30, Reason: "Falta"}, false},
		{"empty reason", RegisterCardRequest{MatchID: "P001", PlayerID: "J002", Kind: "Amarilla", Minute: 30, Reason: ""}, false},
		{"unknown match", RegisterCardRequest{MatchID: "P999", PlayerID: "J002", Kind: "Amarilla", Minute: 30, Reason: "Falta"}, false},
		{"unknown player", RegisterCardRequest{MatchID: "P001", PlayerID: "J999", Kind: "Amarilla", Minute: 30, Reason: "Falta"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := app.RegisterCard(tt.req); got != tt.want {
				t.Errorf("RegisterCard() = %v, want %v", got, tt.want)
			}
		})
	}

	if got := len(app.FindMatchByID("P001").Cards); got != 2 {
		t.Errorf("card log has %d entries, want 2", got)
	}
}

func TestRegisterFoulByID(t *testing.T) {
	app := newFixture(t)

	tests := []struct {
		name string
		req  RegisterFoulRequest
		want bool
	}{
		{"without card", RegisterFoulRequest{MatchID: "P001", CommittedByID: "J002", AffectedID: "J003", Minute: 12, Zone: "Medio campo"}, true},
		{"with card", RegisterFoulRequest{MatchID: "P001", CommittedByID: "J004", AffectedID: "J001", Minute: 80, Zone: "Area penal", Card: "Amarilla"}, true},
		{"same team", RegisterFoulRequest{MatchID: "P001", CommittedByID: "J001", AffectedID: "J002", Minute: 12, Zone: "Medio campo"}, false},
		{"same player", RegisterFoulRequest{MatchID: "P001", CommittedByID: "J002", AffectedID: "J002", Minute: 12, Zone: "Medio campo"}, false},
		{"invalid card", RegisterFoulRequest{MatchID: "P001", CommittedByID: "J002", AffectedID: "J003", Minute: 12, Zone: "Medio campo", Card: "Verde"}, false},
		{"empty zone", RegisterFoulRequest{MatchID: "P001", CommittedByID: "J002", AffectedID: "J003", Minute: 12, Zone: ""}, false},
		{"unknown match", RegisterFoulRequest{MatchID: "P999", CommittedByID: "J002", AffectedID: "J003", Minute: 12, Zone: "Medio campo"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := app.RegisterFoul(tt.req); got != tt.want {
				t.Errorf("RegisterFoul() = %v, want %v", got, tt.want)
			}
		})
	}

	if got := len(app.FindMatchByID("P001").Fouls); got != 2 {
		t.Errorf("foul log has %d entries, want 2", got)
	}
}

func TestFindTeamByName(t *testing.T) {
	app := newFixture(t)

	if team := app.FindTeamByName("equipo ALPHA"); team == nil || team.ID != "E001" {
		t.Errorf("FindTeamByName(case-insensitive) = %v, want E001", team)
	}
	if team := app.FindTeamByName("Equipo Gamma"); team != nil {
		t.Errorf("FindTeamByName(unknown) = %v, want nil", team)
	}
	if team := app.FindTeamByName(""); team != nil {
		t.Errorf("FindTeamByName(\"\") = %v, want nil", team)
	}
}

func TestTeamPoints(t *testing.T) {
	app := newFixture(t)
	mustRegisterTeam(t, app, "E003", "Equipo Gamma")
	mustRegisterPlayer(t, app, "J005", "Mario Ruiz", "E003")
	mustCreateMatch(t, app, "P002", "E001", "E003")

	// Alpha beats Beta 2-0, then draws 1-1 with Gamma: 3 + 1 points.
	app.RegisterGoal(RegisterGoalRequest{MatchID: "P001", PlayerID: "J001", Minute: 10})
	app.RegisterGoal(RegisterGoalRequest{MatchID: "P001", PlayerID: "J002", Minute: 70})
	app.RegisterGoal(RegisterGoalRequest{MatchID: "P002", PlayerID: "J001", Minute: 5})
	app.RegisterGoal(RegisterGoalRequest{MatchID: "P002", PlayerID: "J005", Minute: 90})

	if got := app.TeamPoints("E001"); got != 4 {
		t.Errorf("TeamPoints(E001) = %d, want 4", got)
	}
	if got := app.TeamPoints("E002"); got != 0 {
		t.Errorf("TeamPoints(E002) = %d, want 0", got)
	}
	if got := app.TeamPoints("E003"); got != 1 {
		t.Errorf("TeamPoints(E003) = %d, want 1", got)
	}
	if got := app.TeamPoints("E999"); got != -1 {
		t.Errorf("TeamPoints(unknown) = %d, want -1", got)
	}
	if got := app.TeamPoints(""); got != -1 {
		t.Errorf("TeamPoints(\"\") = %d, want -1", got)
	}
}

func TestTeamFoulsAcrossMatches(t *testing.T) {
	app := newFixture(t)
	mustCreateMatch(t, app, "P002", "E002", "E001")

	app.RegisterFoul(RegisterFoulRequest{MatchID: "P001", CommittedByID: "J002", AffectedID: "J003", Minute: 12, Zone: "Medio campo"})
	app.RegisterFoul(RegisterFoulRequest{MatchID: "P001", CommittedByID: "J004", AffectedID: "J001", Minute: 44, Zone: "Banda"})
	app.RegisterFoul(RegisterFoulRequest{MatchID: "P002", CommittedByID: "J002", AffectedID: "J004", Minute: 30, Zone: "Area penal"})

	if got := app.TeamFouls("E001"); got != 2 {
		t.Errorf("TeamFouls(E001) = %d, want 2", got)
	}
	if got := app.TeamFouls("E002"); got != 1 {
		t.Errorf("TeamFouls(E002) = %d, want 1", got)
	}
	if got := app.TeamFouls("E999"); got != -1 {
		t.Errorf("TeamFouls(unknown) = %d, want -1", got)
	}
	if got := app.TeamFouls(""); got != -1 {
		t.Errorf("TeamFouls(\"\") = %d, want -1", got)
	}
}

func TestMatchWinnerName(t *testing.T) {
	app := newFixture(t)

	if got := app.MatchWinnerName(""); got != WinnerInvalidParam {
		t.Errorf("MatchWinnerName(\"\") = %q, want %q", got, WinnerInvalidParam)
	}
	if got := app.MatchWinnerName("P999"); got != WinnerMatchNotFound {
		t.Errorf("MatchWinnerName(unknown) = %q, want %q", got, WinnerMatchNotFound)
	}
	if got := app.MatchWinnerName("P001"); got != WinnerDraw {
		t.Errorf("MatchWinnerName(0-0) = %q, want %q", got, WinnerDraw)
	}

	app.RegisterGoal(RegisterGoalRequest{MatchID: "P001", PlayerID: "J003", Minute: 50})
	if got := app.MatchWinnerName("P001"); got != "Equipo Beta" {
		t.Errorf("MatchWinnerName() = %q, want Equipo Beta", got)
	}

	app.RegisterGoal(RegisterGoalRequest{MatchID: "P001", PlayerID: "J001", Minute: 88})
	if got := app.MatchWinnerName("P001"); got != WinnerDraw {
		t.Errorf("MatchWinnerName(1-1) = %q, want %q", got, WinnerDraw)
	}
}

func TestMatchSummary(t *testing.T) {
	app := newFixture(t)
	app.RegisterGoal(RegisterGoalRequest{MatchID: "P001", PlayerID: "J001", Minute: 20})

	want := "Equipo Alpha vs Equipo Beta (1-0)"
	if got := app.MatchSummary("P001"); got != want {
		t.Errorf("MatchSummary() = %q, want %q", got, want)
	}
	if got := app.MatchSummary("P999"); got != "" {
		t.Errorf("MatchSummary(unknown) = %q, want empty", got)
	}
}

func TestQueriesDoNotMutate(t *testing.T) {
	app := newFixture(t)
	app.RegisterGoal(RegisterGoalRequest{MatchID: "P001", PlayerID: "J001", Minute: 20})

	first := app.TeamPoints("E001")
	for i := 0; i < 3; i++ {
		if got := app.TeamPoints("E001"); got != first {
			t.Fatalf("TeamPoints changed between calls: %d then %d", first, got)
		}
		app.StandingsTable()
		app.PlayerStats("J001")
		app.MatchWinnerName("P001")
	}
}

func TestQueryResultsAreDetachedCopies(t *testing.T) {
	app := newFixture(t)

	team := app.FindTeamByID("E001")
	rosterBefore := len(team.PlayerIDs)
	mustRegisterPlayer(t, app, "J010", "Diego Lema", "E001")
	if len(team.PlayerIDs) != rosterBefore {
		t.Errorf("earlier query result grew to %d players, want %d", len(team.PlayerIDs), rosterBefore)
	}

	m := app.FindMatchByID("P001")
	app.RegisterGoal(RegisterGoalRequest{MatchID: "P001", PlayerID: "J001", Minute: 20})
	if m.HomeGoals != 0 || len(m.Goals) != 0 {
		t.Errorf("earlier query result saw the goal: %d-%d, %d logged", m.HomeGoals, m.AwayGoals, len(m.Goals))
	}

	// Mutating a query result must not leak back into the registry.
	team.Name = "Hackeado"
	team.PlayerIDs = append(team.PlayerIDs, "J999")
	if got := app.FindTeamByID("E001"); got.Name != "Equipo Alpha" || len(got.PlayerIDs) != rosterBefore+1 {
		t.Errorf("registry team mutated through a query result: %+v", got)
	}
}

func TestConcurrentQueriesAndMutations(t *testing.T) {
	app := newFixture(t)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			app.RegisterPlayer(RegisterPlayerRequest{
				ID:       fmt.Sprintf("X%03d", i),
				FullName: "Suplente",
				Position: "Medio",
				TeamID:   "E001",
			})
			app.RegisterGoal(RegisterGoalRequest{MatchID: "P001", PlayerID: "J001", Minute: 10})
		}
	}()

	for loop := true; loop; {
		select {
		case <-done:
			loop = false
		default:
			if _, err := json.Marshal(app.FindTeamByID("E001")); err != nil {
				t.Fatalf("marshal team: %v", err)
			}
			if _, err := json.Marshal(app.FindMatchByID("P001")); err != nil {
				t.Fatalf("marshal match: %v", err)
			}
			json.Marshal(app.Teams())
			json.Marshal(app.Matches())
			app.StandingsTable()
		}
	}
}

func TestPlayerStats(t *testing.T) {
	app := newFixture(t)
	mustCreateMatch(t, app, "P002", "E002", "E001")

	app.RegisterGoal(RegisterGoalRequest{MatchID: "P001", PlayerID: "J001", Minute: 10})
	app.RegisterGoal(RegisterGoalRequest{MatchID: "P002", PlayerID: "J001", Minute: 55})
	app.RegisterCard(RegisterCardRequest{MatchID: "P002", PlayerID: "J001", Kind: "Amarilla", Minute: 60, Reason: "Protesta"})
	app.RegisterFoul(RegisterFoulRequest{MatchID: "P001", CommittedByID: "J001", AffectedID: "J004", Minute: 33, Zone: "Medio campo"})
	app.RegisterFoul(RegisterFoulRequest{MatchID: "P001", CommittedByID: "J004", AffectedID: "J001", Minute: 35, Zone: "Medio campo"})

	stats := app.PlayerStats("J001")
	if stats.Goals != 2 {
		t.Errorf("Goals = %d, want 2", stats.Goals)
	}
	if stats.Cards != 1 {
		t.Errorf("Cards = %d, want 1", stats.Cards)
	}
	if stats.FoulsCommitted != 1 {
		t.Errorf("FoulsCommitted = %d, want 1 (fouls suffered are not counted)", stats.FoulsCommitted)
	}
	if stats.MatchesPlayed != 2 {
		t.Errorf("MatchesPlayed = %d, want 2", stats.MatchesPlayed)
	}

	// Unknown and blank ids are indistinguishable from inactive players.
	for _, id := range []string{"J999", ""} {
		s := app.PlayerStats(id)
		if s.Goals != 0 || s.Cards != 0 || s.FoulsCommitted != 0 || s.MatchesPlayed != 0 {
			t.Errorf("PlayerStats(%q) = %+v, want all zero", id, s)
		}
	}

	// J002 played both matches without recording any event.
	s := app.PlayerStats("J002")
	if s.Goals != 0 || s.MatchesPlayed != 2 {
		t.Errorf("PlayerStats(J002) = %+v, want 0 goals and 2 matches", s)
	}
}

func TestStandingsTableOrdering(t *testing.T) {
	app := NewApp(nil)
	mustRegisterTeam(t, app, "E001", "Equipo Alpha")
	mustRegisterTeam(t, app, "E002", "Equipo Beta")
	mustRegisterTeam(t, app, "E003", "Equipo Gamma")
	mustRegisterTeam(t, app, "E004", "Equipo Delta")
	mustRegisterPlayer(t, app, "J001", "Carlos Perez", "E001")
	mustRegisterPlayer(t, app, "J003", "Pedro Diaz", "E002")
	mustRegisterPlayer(t, app, "J005", "Mario Ruiz", "E003")

	mustCreateMatch(t, app, "P001", "E001", "E003")
	mustCreateMatch(t, app, "P002", "E002", "E003")
	mustCreateMatch(t, app, "P003", "E001", "E002")
	mustCreateMatch(t, app, "P004", "E003", "E004")

	// Alpha 4-0 Gamma, Beta 4-2 Gamma, Alpha 1-1 Beta, Gamma 0-0 Delta.
	// Alpha and Beta end level on 4 points and 5 goals for; Alpha's 1 goal
	// against beats Beta's 3. Gamma and Delta end level on 1 point; Gamma's
	// 2 goals for beat Delta's 0.
	for i := 0; i < 4; i++ {
		app.RegisterGoal(RegisterGoalRequest{MatchID: "P001", PlayerID: "J001", Minute: 10 + i})
		app.RegisterGoal(RegisterGoalRequest{MatchID: "P002", PlayerID: "J003", Minute: 10 + i})
	}
	app.RegisterGoal(RegisterGoalRequest{MatchID: "P002", PlayerID: "J005", Minute: 70})
	app.RegisterGoal(RegisterGoalRequest{MatchID: "P002", PlayerID: "J005", Minute: 80})
	app.RegisterGoal(RegisterGoalRequest{MatchID: "P003", PlayerID: "J001", Minute: 15})
	app.RegisterGoal(RegisterGoalRequest{MatchID: "P003", PlayerID: "J003", Minute: 85})

	table := app.StandingsTable()
	if len(table) != 4 {
		t.Fatalf("table has %d rows, want 4", len(table))
	}
	wantOrder := []string{"Equipo Alpha", "Equipo Beta", "Equipo Gamma", "Equipo Delta"}
	for i, want := range wantOrder {
		if table[i].TeamName != want {
			t.Errorf("table[%d] = %s, want %s", i, table[i].TeamName, want)
		}
	}
	wantPoints := []int{4, 4, 1, 1}
	for i, want := range wantPoints {
		if table[i].Points != want {
			t.Errorf("table[%d].Points = %d, want %d", i, table[i].Points, want)
		}
	}

	// Row consistency: points follow the scoring rule and every match is
	// accounted for.
	wantPlayed := map[string]int{
		"Equipo Alpha": 2,
		"Equipo Beta":  2,
		"Equipo Gamma": 3,
		"Equipo Delta": 1,
	}
	for _, row := range table {
		if row.Points != 3*row.Wins+row.Draws {
			t.Errorf("%s: points %d != 3*%d+%d", row.TeamName, row.Points, row.Wins, row.Draws)
		}
		if played := row.Wins + row.Draws + row.Losses; played != wantPlayed[row.TeamName] {
			t.Errorf("%s: played %d matches, want %d", row.TeamName, played, wantPlayed[row.TeamName])
		}
	}
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	app := newFixture(t)
	app.RegisterGoal(RegisterGoalRequest{MatchID: "P001", PlayerID: "J001", Minute: 15})
	app.RegisterCard(RegisterCardRequest{MatchID: "P001", PlayerID: "J004", Kind: "Roja", Minute: 60, Reason: "Agresion"})
	app.RegisterFoul(RegisterFoulRequest{MatchID: "P001", CommittedByID: "J002", AffectedID: "J003", Minute: 30, Zone: "Medio campo", Card: "Amarilla"})

	doc := app.Snapshot()
	raw, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal snapshot: %v", err)
	}

	var roundTripped snapshot.Document
	if err := json.Unmarshal(raw, &roundTripped); err != nil {
		t.Fatalf("unmarshal snapshot: %v", err)
	}
	restored := NewApp(nil)
	restored.Restore(&roundTripped)

	team := restored.FindTeamByID("E001")
	if team == nil || team.Name != "Equipo Alpha" || len(team.PlayerIDs) != 2 {
		t.Fatalf("restored team E001 = %+v", team)
	}
	m := restored.FindMatchByID("P001")
	if m == nil {
		t.Fatalf("restored match P001 missing")
	}
	if m.HomeGoals != 1 || m.AwayGoals != 0 {
		t.Errorf("restored counters = %d-%d, want 1-0", m.HomeGoals, m.AwayGoals)
	}
	if len(m.Goals) != 1 || len(m.Cards) != 1 || len(m.Fouls) != 1 {
		t.Errorf("restored logs = %d goals, %d cards, %d fouls, want 1 each", len(m.Goals), len(m.Cards), len(m.Fouls))
	}
	if m.Fouls[0].Card == nil || *m.Fouls[0].Card != models.CardKindYellow {
		t.Errorf("restored foul lost its card")
	}
	if got := restored.MatchWinnerName("P001"); got != "Equipo Alpha" {
		t.Errorf("restored winner = %q, want Equipo Alpha", got)
	}
	if got := restored.TeamPoints("E001"); got != 3 {
		t.Errorf("restored TeamPoints(E001) = %d, want 3", got)
	}
}

func TestRestoreDropsDanglingReferences(t *testing.T) {
	app := newFixture(t)
	app.RegisterGoal(RegisterGoalRequest{MatchID: "P001", PlayerID: "J001", Minute: 15})

	doc := app.Snapshot()
	// Corrupt the document: orphan player, match against a missing team, and
	// a goal by an unrostered player.
	doc.Players = append(doc.Players, models.Player{ID: "J900", FullName: "Fantasma", Position: "Medio", TeamID: "E900"})
	doc.Matches = append(doc.Matches, models.Match{ID: "P900", HomeTeamID: "E001", AwayTeamID: "E900", Venue: "V", Referee: "R"})
	doc.Matches[0].Goals = append(doc.Matches[0].Goals, models.Goal{PlayerID: "J900", Minute: 50})

	restored := NewApp(nil)
	restored.Restore(doc)

	if restored.FindMatchByID("P900") != nil {
		t.Errorf("match with missing team should be dropped")
	}
	if restored.PlayerStats("J900").MatchesPlayed != 0 {
		t.Errorf("orphan player should be dropped")
	}
	m := restored.FindMatchByID("P001")
	if len(m.Goals) != 1 {
		t.Errorf("restored goal log has %d entries, want 1 (unrostered scorer dropped)", len(m.Goals))
	}
}
