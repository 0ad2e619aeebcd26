package gateway

import (
	"encoding/json"
	"net/http"

	"github.com/mcdev12/campeonato/go/internal/championship"
	"github.com/mcdev12/campeonato/go/internal/models"
	"github.com/rs/zerolog/log"
)

// Championship defines what the gateway needs from the championship app.
type Championship interface {
	RegisterTeam(req championship.RegisterTeamRequest) bool
	RegisterPlayer(req championship.RegisterPlayerRequest) bool
	CreateMatch(req championship.CreateMatchRequest) bool
	RegisterGoal(req championship.RegisterGoalRequest) bool
	RegisterCard(req championship.RegisterCardRequest) bool
	RegisterFoul(req championship.RegisterFoulRequest) bool
	Teams() []*models.Team
	Matches() []*models.Match
	FindTeamByID(id string) *models.Team
	FindTeamByName(name string) *models.Team
	FindMatchByID(id string) *models.Match
	TeamPoints(teamID string) int
	TeamFouls(teamID string) int
	MatchWinnerName(matchID string) string
	MatchSummary(matchID string) string
	StandingsTable() []models.StandingsRow
	PlayerStats(playerID string) models.PlayerStats
}

// Handlers exposes the championship over HTTP/JSON. Mutations answer
// {"ok":bool} with 200 on every well-formed request, mirroring the boolean
// contract the registry gives the front-end; only malformed requests get a
// 4xx. Query sentinels (-1, 0, fixed strings) pass through untranslated.
type Handlers struct {
	champ Championship
}

// NewHandlers creates the HTTP handler set over the championship app.
func NewHandlers(champ Championship) *Handlers {
	return &Handlers{champ: champ}
}

// RegisterRoutes registers every API route on the mux.
func (h *Handlers) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/teams", h.handleRegisterTeam)
	mux.HandleFunc("GET /api/teams", h.handleListTeams)
	mux.HandleFunc("GET /api/teams/{id}", h.handleGetTeam)
	mux.HandleFunc("GET /api/teams/{id}/points", h.handleTeamPoints)
	mux.HandleFunc("GET /api/teams/{id}/fouls", h.handleTeamFouls)

	mux.HandleFunc("POST /api/players", h.handleRegisterPlayer)
	mux.HandleFunc("GET /api/players/{id}/stats", h.handlePlayerStats)

	mux.HandleFunc("POST /api/matches", h.handleCreateMatch)
	mux.HandleFunc("GET /api/matches", h.handleListMatches)
	mux.HandleFunc("GET /api/matches/{id}", h.handleGetMatch)
	mux.HandleFunc("GET /api/matches/{id}/winner", h.handleMatchWinner)
	mux.HandleFunc("POST /api/matches/{id}/goals", h.handleRegisterGoal)
	mux.HandleFunc("POST /api/matches/{id}/cards", h.handleRegisterCard)
	mux.HandleFunc("POST /api/matches/{id}/fouls", h.handleRegisterFoul)

	mux.HandleFunc("GET /api/standings", h.handleStandings)
}

func (h *Handlers) handleRegisterTeam(w http.ResponseWriter, r *http.Request) {
	var req championship.RegisterTeamRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	writeOK(w, h.champ.RegisterTeam(req))
}

func (h *Handlers) handleListTeams(w http.ResponseWriter, r *http.Request) {
	// Name lookup piggybacks on the list route: GET /api/teams?name=...
	if name := r.URL.Query().Get("name"); name != "" {
		team := h.champ.FindTeamByName(name)
		if team == nil {
			http.Error(w, "team not found", http.StatusNotFound)
			return
		}
		writeJSON(w, team)
		return
	}
	writeJSON(w, h.champ.Teams())
}

func (h *Handlers) handleGetTeam(w http.ResponseWriter, r *http.Request) {
	team := h.champ.FindTeamByID(r.PathValue("id"))
	if team == nil {
		http.Error(w, "team not found", http.StatusNotFound)
		return
	}
	writeJSON(w, team)
}

func (h *Handlers) handleTeamPoints(w http.ResponseWriter, r *http.Request) {
	teamID := r.PathValue("id")
	writeJSON(w, map[string]interface{}{
		"team_id": teamID,
		"points":  h.champ.TeamPoints(teamID),
	})
}

func (h *Handlers) handleTeamFouls(w http.ResponseWriter, r *http.Request) {
	teamID := r.PathValue("id")
	writeJSON(w, map[string]interface{}{
		"team_id": teamID,
		"fouls":   h.champ.TeamFouls(teamID),
	})
}

func (h *Handlers) handleRegisterPlayer(w http.ResponseWriter, r *http.Request) {
	var req championship.RegisterPlayerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	writeOK(w, h.champ.RegisterPlayer(req))
}

func (h *Handlers) handlePlayerStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.champ.PlayerStats(r.PathValue("id")))
}

func (h *Handlers) handleCreateMatch(w http.ResponseWriter, r *http.Request) {
	var req championship.CreateMatchRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	writeOK(w, h.champ.CreateMatch(req))
}

func (h *Handlers) handleListMatches(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.champ.Matches())
}

func (h *Handlers) handleGetMatch(w http.ResponseWriter, r *http.Request) {
	matchID := r.PathValue("id")
	match := h.champ.FindMatchByID(matchID)
	if match == nil {
		http.Error(w, "match not found", http.StatusNotFound)
		return
	}
	writeJSON(w, map[string]interface{}{
		"match":   match,
		"summary": h.champ.MatchSummary(matchID),
	})
}

func (h *Handlers) handleMatchWinner(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{
		"winner": h.champ.MatchWinnerName(r.PathValue("id")),
	})
}

func (h *Handlers) handleRegisterGoal(w http.ResponseWriter, r *http.Request) {
	var req championship.RegisterGoalRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.MatchID = r.PathValue("id")
	writeOK(w, h.champ.RegisterGoal(req))
}

func (h *Handlers) handleRegisterCard(w http.ResponseWriter, r *http.Request) {
	var req championship.RegisterCardRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.MatchID = r.PathValue("id")
	writeOK(w, h.champ.RegisterCard(req))
}

func (h *Handlers) handleRegisterFoul(w http.ResponseWriter, r *http.Request) {
	var req championship.RegisterFoulRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.MatchID = r.PathValue("id")
	writeOK(w, h.champ.RegisterFoul(req))
}

func (h *Handlers) handleStandings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.champ.StandingsTable())
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("failed to write JSON response")
	}
}

func writeOK(w http.ResponseWriter, ok bool) {
	writeJSON(w, map[string]bool{"ok": ok})
}
