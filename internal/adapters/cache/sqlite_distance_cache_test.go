package cache

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/MRH-66/SmartRoute-VRP/internal/adapters/repositories"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	db.SetMaxOpenConns(1)

	if err := repositories.InitSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return db
}

func TestSqliteDistanceCacheRoundTrip(t *testing.T) {
	c := NewSqliteDistanceCache(openTestDB(t))
	ctx := context.Background()

	origin := "24.860000,67.000000"
	put := map[string]float64{
		"24.880000,67.050000": 6.2,
		"24.900000,67.020000": 4.8,
	}
	if err := c.PutMany(ctx, origin, put); err != nil {
		t.Fatalf("PutMany: %v", err)
	}

	got, err := c.GetMany(ctx, origin, []string{"24.880000,67.050000", "24.900000,67.020000", "0.000000,0.000000"})
	if err != nil {
		t.Fatalf("GetMany: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("hits = %d, want 2", len(got))
	}
	if got["24.880000,67.050000"] != 6.2 {
		t.Errorf("first hit = %v, want 6.2", got["24.880000,67.050000"])
	}
	if _, ok := got["0.000000,0.000000"]; ok {
		t.Errorf("unexpected hit for unknown destination")
	}
}

func TestSqliteDistanceCacheUpsert(t *testing.T) {
	c := NewSqliteDistanceCache(openTestDB(t))
	ctx := context.Background()

	origin := "1.000000,1.000000"
	dest := "2.000000,2.000000"

	if err := c.PutMany(ctx, origin, map[string]float64{dest: 5}); err != nil {
		t.Fatalf("PutMany: %v", err)
	}
	if err := c.PutMany(ctx, origin, map[string]float64{dest: 9}); err != nil {
		t.Fatalf("PutMany overwrite: %v", err)
	}

	got, err := c.GetMany(ctx, origin, []string{dest})
	if err != nil {
		t.Fatalf("GetMany: %v", err)
	}
	if got[dest] != 9 {
		t.Errorf("value after overwrite = %v, want 9", got[dest])
	}
}

func TestSqliteDistanceCacheEmptyInputs(t *testing.T) {
	c := NewSqliteDistanceCache(openTestDB(t))
	ctx := context.Background()

	if _, err := c.GetMany(ctx, "", []string{"x"}); err == nil {
		t.Errorf("empty origin accepted")
	}

	got, err := c.GetMany(ctx, "1.000000,1.000000", nil)
	if err != nil {
		t.Fatalf("GetMany with no destinations: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("hits = %d, want 0", len(got))
	}

	if err := c.PutMany(ctx, "1.000000,1.000000", nil); err != nil {
		t.Errorf("PutMany with no results: %v", err)
	}
}
