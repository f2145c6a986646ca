package db

import (
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	"battlefleet/internal/scoreboard"
)

func getTestDB(t *testing.T) *DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database tests")
	}
	database, err := Connect(dsn)
	if err != nil {
		t.Fatalf("Connect() error: %v", err)
	}
	if err := database.Migrate(); err != nil {
		t.Fatalf("Migrate() error: %v", err)
	}
	t.Cleanup(func() {
		// Clean up test data
		database.conn.Exec("DELETE FROM round_standings")
		database.conn.Exec("DELETE FROM matches")
		database.Close()
	})
	return database
}

func TestConnect(t *testing.T) {
	database := getTestDB(t)
	if err := database.Ping(); err != nil {
		t.Errorf("Ping() error: %v", err)
	}
}

func TestMigrate(t *testing.T) {
	database := getTestDB(t)

	// Verify tables exist by querying them
	tables := []string{"matches", "round_standings"}
	for _, table := range tables {
		var exists bool
		err := database.conn.QueryRow(`
			SELECT EXISTS (SELECT FROM information_schema.tables WHERE table_name = $1)
		`, table).Scan(&exists)
		if err != nil {
			t.Errorf("checking table %s: %v", table, err)
		}
		if !exists {
			t.Errorf("table %s does not exist", table)
		}
	}
}

func TestRecordMatch(t *testing.T) {
	database := getTestDB(t)

	err := database.RecordMatch(MatchRecord{
		ID:         uuid.New().String(),
		PlayerA:    "alice",
		PlayerB:    "bob",
		Winner:     "A",
		PointsA:    6,
		PointsB:    2,
		FinishedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("RecordMatch() error: %v", err)
	}

	count, err := database.PlayerMatchCount("alice")
	if err != nil {
		t.Fatalf("PlayerMatchCount() error: %v", err)
	}
	if count != 1 {
		t.Errorf("PlayerMatchCount(alice) = %d, want 1", count)
	}

	count, err = database.PlayerMatchCount("nobody")
	if err != nil {
		t.Fatalf("PlayerMatchCount() error: %v", err)
	}
	if count != 0 {
		t.Errorf("PlayerMatchCount(nobody) = %d, want 0", count)
	}
}

func TestRecordRoundStandings(t *testing.T) {
	database := getTestDB(t)

	stats := []scoreboard.PlayerStatistics{
		{Name: "alice", PointsFor: 6, PointsAgainst: 2, Wins: 1, Rating: 100},
		{Name: "bob", PointsFor: 2, PointsAgainst: 6, Loses: 1, Rating: 0},
	}
	if err := database.RecordRoundStandings(1, stats); err != nil {
		t.Fatalf("RecordRoundStandings() error: %v", err)
	}

	var count int
	if err := database.conn.QueryRow("SELECT COUNT(*) FROM round_standings WHERE round_num = 1").Scan(&count); err != nil {
		t.Fatalf("counting standings: %v", err)
	}
	if count != 2 {
		t.Errorf("round_standings rows = %d, want 2", count)
	}
}
