package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"

	"github.com/onligro/salon-scheduler/internal/audit"
	"github.com/onligro/salon-scheduler/internal/config"
	dbpkg "github.com/onligro/salon-scheduler/internal/db"
	"github.com/onligro/salon-scheduler/internal/notify"
	"github.com/onligro/salon-scheduler/internal/reminder"
	"github.com/onligro/salon-scheduler/internal/routes"
)

func main() {

	log := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.TimeFieldFormat = time.RFC3339

	cfg := config.Load()
	db := dbpkg.NewDB(cfg, log)

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	notifier := notify.NewDispatcher(rdb, log)
	auditDispatcher := audit.NewDispatcher(audit.New(db), log)

	reminders := reminder.NewService(db, notifier, log)
	if err := reminders.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start reminder scheduler")
	}
	defer reminders.Stop()

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, notifier, auditDispatcher)

	log.Info().Str("addr", cfg.Addr()).Msg("server starting")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
