package gateway

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// WebSocketHandler handles WebSocket upgrade requests for event
// subscriptions.
type WebSocketHandler struct {
	connectionManager *ConnectionManager
}

// NewWebSocketHandler creates a new WebSocket handler.
func NewWebSocketHandler(cm *ConnectionManager) *WebSocketHandler {
	return &WebSocketHandler{connectionManager: cm}
}

// HandleEventsConnection subscribes the client to championship events. An
// optional match_id query parameter narrows the stream to one match;
// without it the client receives every event.
func (h *WebSocketHandler) HandleEventsConnection(w http.ResponseWriter, r *http.Request) {
	matchID := r.URL.Query().Get("match_id")

	if err := h.connectionManager.UpgradeConnection(w, r, matchID); err != nil {
		log.Error().
			Err(err).
			Str("match_id", matchID).
			Msg("failed to upgrade WebSocket connection")
		http.Error(w, "failed to upgrade connection", http.StatusInternalServerError)
		return
	}
}

// HandleConnectionStats returns statistics about active connections.
func (h *WebSocketHandler) HandleConnectionStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(h.connectionManager.ConnectionStats()); err != nil {
		log.Warn().Err(err).Msg("failed to write connection stats")
	}
}

// RegisterRoutes registers WebSocket routes with an HTTP mux.
func (h *WebSocketHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/ws/events", h.HandleEventsConnection)
	mux.HandleFunc("/ws/stats", h.HandleConnectionStats)
}
