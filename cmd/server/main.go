package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/skywings/booking-system/internal/api"
	"github.com/skywings/booking-system/internal/core/ports"
	"github.com/skywings/booking-system/internal/core/seed"
	"github.com/skywings/booking-system/internal/core/service"
	"github.com/skywings/booking-system/internal/infrastructure/config"
	mongodb "github.com/skywings/booking-system/internal/infrastructure/db/mongo"
	redisdb "github.com/skywings/booking-system/internal/infrastructure/db/redis"
	"github.com/skywings/booking-system/internal/infrastructure/queue"
	"github.com/skywings/booking-system/pkg/logger"

	goredis "github.com/redis/go-redis/v9"
	gomongo "go.mongodb.org/mongo-driver/mongo"
)

const shutdownTimeout = 10 * time.Second

// @title           SkyWings Booking API
// @version         1.0
// @description     Booking-management state layer: flight inventory, booking ledger, user directory and derived dashboard views.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	jwtSecret := cfg.JWTSecret
	if jwtSecret == "" {
		jwtSecret = "dev-secret-change-me"
		log.Warn().Msg("JWT_SECRET not set, using insecure development default")
	}

	// Infrastructure is best-effort: a missing Redis or MongoDB must not
	// prevent startup. The services degrade to seeded in-memory state and
	// the readiness probe reports the gap.
	var (
		store ports.SnapshotStore
		rdb   *goredis.Client
	)
	if client, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB}); err != nil {
		log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis unavailable, running without durable snapshots")
	} else {
		rdb = client
		store = redisdb.NewSnapshotStore(client)
	}

	var (
		remote ports.RemoteDirectory
		creds  ports.CredentialRepository
		db     *gomongo.Database
	)
	if _, database, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database}); err != nil {
		log.Warn().Err(err).Msg("mongodb unavailable, user directory degraded to local state")
	} else {
		db = database
		remote = mongodb.NewUserDirectory(database)
		creds = mongodb.NewCredentialRepository(database)
		if err := mongodb.EnsureIndexes(ctx, database); err != nil {
			log.Warn().Err(err).Msg("failed to ensure mongodb indexes")
		}
	}

	// --- Core services ---
	roleMap := service.NewRoleMap(ctx, store, log)
	for _, u := range seed.Users() {
		if _, ok := roleMap.RoleFor(u.Email); !ok {
			roleMap.SetRole(ctx, u.Email, u.Role)
		}
	}

	var syncQueue ports.SyncQueue
	if remote != nil {
		dispatcher := queue.NewDispatcher(cfg.Sync.Workers, remote, log)
		dispatcher.Start(ctx)
		syncQueue = dispatcher
	}

	flights := service.NewFlightDirectory(ctx, store, seed.Flights(), log)
	bookings := service.NewBookingLedger(ctx, store, seed.Bookings(), log)
	users := service.NewUserRoster(seed.Users(), remote, syncQueue, roleMap, log)
	auth := service.NewAuthService(creds, roleMap, store, jwtSecret, 24*time.Hour, log)

	if source := users.Reload(ctx); source == ports.SourceRemote {
		log.Info().Msg("user directory loaded from remote")
	}
	if n := bookings.ReconcileCompleted(ctx); n > 0 {
		log.Info().Int("completed", n).Msg("reconciled expired confirmed bookings")
	}

	e := api.NewRouter(api.Dependencies{
		Flights:   flights,
		Bookings:  bookings,
		Users:     users,
		Auth:      auth,
		Mongo:     db,
		Redis:     rdb,
		JWTSecret: jwtSecret,
		Logger:    log,
	})

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
