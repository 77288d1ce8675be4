package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"github.com/drs-net/billing-backend/internal/config"
	"github.com/drs-net/billing-backend/internal/db"
	"github.com/drs-net/billing-backend/internal/http/api"
	"github.com/drs-net/billing-backend/internal/report"
)

// Migrate opens the database and runs migrations.
func Migrate(cfg config.Config) error {
	conn, errOpen := db.Open(cfg.Database.DSN)
	if errOpen != nil {
		return errOpen
	}
	return db.Migrate(conn)
}

// RunServer boots the billing API server.
//
// The database handle is opened once here and shared by every component for
// the process lifetime; there is no explicit teardown beyond server shutdown.
func RunServer(ctx context.Context, cfg config.Config) error {
	conn, errOpen := db.Open(cfg.Database.DSN)
	if errOpen != nil {
		return errOpen
	}
	if errMigrate := db.Migrate(conn); errMigrate != nil {
		return errMigrate
	}

	var summarizer report.Summarizer = report.NewAggregator(conn)
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		if errPing := rdb.Ping(ctx).Err(); errPing != nil {
			log.WithError(errPing).Warn("redis unreachable, summary cache disabled")
		} else {
			ttl := time.Duration(cfg.Redis.SummaryCacheTTLSeconds) * time.Second
			summarizer = report.NewSnapshotCache(summarizer, rdb, ttl)
			log.WithField("addr", cfg.Redis.Addr).Info("summary cache enabled")
		}
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	api.RegisterRoutes(engine, conn, summarizer)

	server := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.WithField("addr", cfg.Server.Addr).Info("billing backend listening")
		serveErr <- server.ListenAndServe()
	}()

	select {
	case errServe := <-serveErr:
		if errServe != nil && !errors.Is(errServe, http.ErrServerClosed) {
			return errServe
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if errShutdown := server.Shutdown(shutdownCtx); errShutdown != nil {
		return errShutdown
	}
	log.Info("billing backend stopped")
	return nil
}
