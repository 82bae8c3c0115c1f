//go:build integration || !unit

package mysql_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"vista_hostel/internal/storage/memory"
	mysqlrepo "vista_hostel/internal/storage/mysql"
)

func startMySQL(t *testing.T) *sql.DB {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}
	runOpts := &dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=root",
			"MYSQL_DATABASE=vista",
		},
	}
	resource, err := pool.RunWithOptions(runOpts, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	hostPort := resource.GetPort("3306/tcp")
	dsn := fmt.Sprintf("root:root@tcp(127.0.0.1:%s)/vista?parseTime=true&charset=utf8mb4,utf8&loc=UTC", hostPort)

	var db *sql.DB
	if err := pool.Retry(func() error {
		var e error
		db, e = sql.Open("mysql", dsn)
		if e != nil {
			return e
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestRepo_MySQL_UpsertAndQuery(t *testing.T) {
	db := startMySQL(t)
	repo := mysqlrepo.New(db)
	ctx := context.Background()

	if err := repo.EnsureSchema(ctx); err != nil {
		t.Fatalf("EnsureSchema: %v", err)
	}

	seed := memory.Rooms()
	for i, room := range seed {
		if err := repo.UpsertRoom(ctx, room, i); err != nil {
			t.Fatalf("UpsertRoom %s: %v", room.ID, err)
		}
	}

	got, err := repo.GetRoom(ctx, "luxury-suite")
	if err != nil {
		t.Fatalf("GetRoom: %v", err)
	}
	if got.Name != "Luxury Suite" || got.Price != 85 || len(got.Amenities) != 7 {
		t.Fatalf("unexpected room: %+v", got)
	}

	rooms, err := repo.ListRooms(ctx)
	if err != nil {
		t.Fatalf("ListRooms: %v", err)
	}
	if len(rooms) != len(seed) {
		t.Fatalf("expected %d rooms, got %d", len(seed), len(rooms))
	}
	for i := range seed {
		if rooms[i].ID != seed[i].ID {
			t.Fatalf("display order lost at %d: got %s want %s", i, rooms[i].ID, seed[i].ID)
		}
	}

	// idempotence: a second pass must leave identical rows
	for i, room := range seed {
		if err := repo.UpsertRoom(ctx, room, i); err != nil {
			t.Fatalf("re-upsert %s: %v", room.ID, err)
		}
	}
	again, err := repo.ListRooms(ctx)
	if err != nil {
		t.Fatalf("ListRooms after re-upsert: %v", err)
	}
	if len(again) != len(seed) {
		t.Fatalf("re-upsert changed row count: %d", len(again))
	}
	if again[0].Name != rooms[0].Name || again[0].Price != rooms[0].Price {
		t.Fatalf("re-upsert changed data: %+v", again[0])
	}
}
