package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/campeonato/go/internal/archive"
	"github.com/mcdev12/campeonato/go/internal/championship"
	"github.com/mcdev12/campeonato/go/internal/events"
	"github.com/mcdev12/campeonato/go/internal/gateway"
	"github.com/mcdev12/campeonato/go/internal/snapshot"
	"github.com/rs/zerolog/log"
)

// Services holds every wired component of the running service.
type Services struct {
	Championship *championship.App
	Gateway      *gateway.Service
	Store        *snapshot.Store
	Autosaver    *snapshot.Autosaver
	Archive      *archive.Repository
	natsPub      *events.NATSPublisher
	pool         *pgxpool.Pool
}

// setupServices wires the registry, persistence, archive, publishers and
// gateway together and restores the championship from the last snapshot.
func setupServices(ctx context.Context, config *Config) (*Services, error) {
	services := &Services{}

	// WebSocket hub joins the publisher fan-out so registered events reach
	// connected clients directly.
	connectionManager := gateway.NewConnectionManager(gateway.DefaultConnectionConfig())
	publishers := []events.Publisher{connectionManager}

	if config.NATSURL != "" {
		natsConfig := events.DefaultNATSConfig()
		natsConfig.URL = config.NATSURL
		natsConfig.SubjectPrefix = config.NATSSubjectPrefix
		natsPub, err := events.NewNATSPublisher(natsConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to set up NATS publisher: %w", err)
		}
		services.natsPub = natsPub
		publishers = append(publishers, natsPub)
		log.Info().Str("url", config.NATSURL).Msg("NATS event publishing enabled")
	}

	services.Championship = championship.NewApp(events.NewFanout(publishers...))
	services.Gateway = gateway.NewService(services.Championship, connectionManager)

	services.Store = snapshot.NewStore(config.SnapshotPath)
	doc := services.Store.Load()

	if config.DatabaseURL != "" {
		pool, err := connectDatabase(ctx, config.DatabaseURL, config.DatabaseMaxConns)
		if err != nil {
			return nil, fmt.Errorf("failed to connect archive database: %w", err)
		}
		services.pool = pool
		services.Archive = archive.NewRepository(pool)
		if err := services.Archive.Migrate(ctx); err != nil {
			return nil, fmt.Errorf("failed to migrate archive: %w", err)
		}
		log.Info().Msg("snapshot archive enabled")

		// The file snapshot is authoritative; fall back to the archive only
		// when the file yields nothing.
		if len(doc.Teams) == 0 && len(doc.Matches) == 0 {
			archived, err := services.Archive.LatestSnapshot(ctx)
			if err != nil {
				log.Warn().Err(err).Msg("could not read archived snapshot")
			} else if archived != nil {
				doc = archived
				log.Info().Msg("restored championship from archive")
			}
		}
	}

	services.Championship.Restore(doc)
	services.Autosaver = snapshot.NewAutosaver(
		services.Store,
		services.Championship,
		clockwork.NewRealClock(),
		config.AutosaveInterval,
	)

	return services, nil
}

// archiveSnapshot mirrors the current championship into the archive when the
// archive is enabled. Failures are logged; archiving is best effort.
func (s *Services) archiveSnapshot(ctx context.Context, label string) {
	if s.Archive == nil {
		return
	}
	if err := s.Archive.SaveSnapshot(ctx, label, s.Championship.Snapshot()); err != nil {
		log.Warn().Err(err).Str("label", label).Msg("failed to archive snapshot")
	}
}

// Close releases external connections.
func (s *Services) Close() {
	if s.natsPub != nil {
		s.natsPub.Close()
	}
	if s.pool != nil {
		s.pool.Close()
	}
}
