package main

import (
	"context"
	"database/sql"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	server "vista_hostel/internal/adapters/http_server"
	"vista_hostel/internal/adapters/observability"
	redisad "vista_hostel/internal/adapters/redis"
	"vista_hostel/internal/app"
	"vista_hostel/internal/domain"
	"vista_hostel/internal/shared"
	"vista_hostel/internal/storage/memory"
	mysqlrepo "vista_hostel/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// catalog backend
	var repo domain.RoomRepository
	switch cfg.CatalogBackend {
	case "mysql":
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("sql.Open failed")
		}
		if err := db.Ping(); err != nil {
			log.Fatal().Err(err).Msg("db.Ping failed")
		}
		log.Info().Msg("database connection ok")
		repo = mysqlrepo.New(db)
	default:
		repo = memory.New()
	}

	// deps
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	q := app.NewQueryService(repo, cache, cfg.CacheTTL)

	sessions := redisad.NewSessionStore(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	sess := app.NewSessionService(sessions, cfg.AuthDelay, cfg.AuthRate)
	sess.Init(context.Background())

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	info := memory.Info()
	info.WhatsApp = cfg.WhatsAppNumber
	srv.MountHandlers(&server.Handlers{
		Q:    q,
		Sess: sess,
		Mess: memory.Mess(),
		Info: info,
	})

	log.Info().Str("addr", cfg.HTTPAddr).Str("catalog", cfg.CatalogBackend).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
