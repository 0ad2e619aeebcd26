package gateway

import (
	"context"
	"net/http"

	"github.com/mcdev12/campeonato/go/internal/events"
	"github.com/rs/zerolog/log"
)

// Service bundles the HTTP handlers and the WebSocket hub into the
// championship's transport surface. It implements the events Publisher
// interface so the registry can broadcast straight to connected clients.
type Service struct {
	handlers          *Handlers
	connectionManager *ConnectionManager
	wsHandler         *WebSocketHandler
}

// NewService creates the gateway over the championship app. The connection
// manager is passed in because it usually already participates in the
// championship's publisher fan-out.
func NewService(champ Championship, cm *ConnectionManager) *Service {
	if cm == nil {
		cm = NewConnectionManager(DefaultConnectionConfig())
	}
	return &Service{
		handlers:          NewHandlers(champ),
		connectionManager: cm,
		wsHandler:         NewWebSocketHandler(cm),
	}
}

// Start runs the broadcast loop until ctx is cancelled.
func (s *Service) Start(ctx context.Context) {
	s.connectionManager.Start(ctx)
}

// Publish forwards an event to the WebSocket hub.
func (s *Service) Publish(ctx context.Context, event events.Event) error {
	return s.connectionManager.Publish(ctx, event)
}

// RegisterRoutes registers the API and WebSocket routes.
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	s.handlers.RegisterRoutes(mux)
	s.wsHandler.RegisterRoutes(mux)
	log.Info().Msg("gateway routes registered")
}
