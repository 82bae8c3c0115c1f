// Seeder upserts the static room catalog into MySQL for deployments that run
// the API with CATALOG_BACKEND=mysql. Safe to re-run: upserts are idempotent.
package main

import (
	"context"
	"database/sql"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"vista_hostel/internal/adapters/observability"
	"vista_hostel/internal/shared"
	"vista_hostel/internal/storage/memory"
	mysqlrepo "vista_hostel/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	rooms := memory.Rooms()
	log.Info().Int("rooms", len(rooms)).Int("workers", cfg.SeedWorkers).Msg("seeder starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("schema setup failed")
	}

	sem := semaphore.NewWeighted(int64(cfg.SeedWorkers))
	var wg sync.WaitGroup

	for i, room := range rooms {
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(pos int, id string) {
			defer wg.Done()
			defer sem.Release(1)

			if err := repo.UpsertRoom(ctx, rooms[pos], pos); err != nil {
				log.Warn().Str("id", id).Err(err).Msg("seed failed")
				return
			}
			log.Info().Str("id", id).Msg("seed ok")
		}(i, room.ID)
	}

	wg.Wait()
	log.Info().Msg("seeding completed")
}
