package player

import (
	"errors"
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRepo(t *testing.T) PlayerRepository {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&Player{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewPlayerRepository(db)
}

func TestPlayerRepository_CRUD(t *testing.T) {
	repo := newTestRepo(t)

	p := &Player{Name: "Alex", Nickname: "Speedy"}
	if err := repo.CreatePlayer(p); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetPlayerByID(p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	assertEq(t, got.Name, "Alex")
	assertEq(t, got.Active, true)

	got.Active = false
	if err := repo.UpdatePlayer(got); err != nil {
		t.Fatalf("update: %v", err)
	}

	if err := repo.DeletePlayer(p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.GetPlayerByID(p.ID); !errors.Is(err, ErrPlayerNotFound) {
		t.Fatalf("expected ErrPlayerNotFound, got %v", err)
	}
}

func TestGetAllPlayers_ActiveFilter(t *testing.T) {
	repo := newTestRepo(t)

	for _, p := range []*Player{
		{Name: "Ben", Active: true},
		{Name: "Ana", Active: true},
		{Name: "Cal"},
	} {
		if err := repo.CreatePlayer(p); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	// The column default makes every insert active; deactivate Cal after.
	all, err := repo.GetAllPlayers(false)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	cal := all[len(all)-1]
	cal.Active = false
	if err := repo.UpdatePlayer(&cal); err != nil {
		t.Fatalf("update: %v", err)
	}

	active, err := repo.GetAllPlayers(true)
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	assertEq(t, len(active), 2)
	assertEq(t, active[0].Name, "Ana")
	assertEq(t, active[1].Name, "Ben")
}

// --- small helpers ---
func assertEq[T comparable](t *testing.T, got, want T) {
	t.Helper()
	if got != want {
		t.Fatalf("got %v want %v", got, want)
	}
}
