package database

import (
	"testing"
)

func TestSeedIdempotent(t *testing.T) {
	db, err := Connect(testDSN())
	if err != nil {
		t.Skipf("skipping: DB not available: %v", err)
	}
	defer db.Close()

	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	// Seed should be callable safely — it creates data only when tables are
	// empty. We call it twice to verify idempotency. We don't clear the
	// database first because other test packages may be running
	// concurrently against the same database.
	if err := Seed(db); err != nil {
		t.Fatalf("first Seed: %v", err)
	}
	if err := Seed(db); err != nil {
		t.Fatalf("second Seed: %v", err)
	}

	// Verify the demo user exists.
	var userCount int
	if err := db.QueryRow("SELECT COUNT(*) FROM users WHERE email = 'demo@foliocraft.local'").Scan(&userCount); err != nil {
		t.Fatalf("count demo users: %v", err)
	}
	if userCount < 1 {
		t.Errorf("expected at least 1 demo user, got %d", userCount)
	}

	// Verify themes exist.
	var themeCount int
	if err := db.QueryRow("SELECT COUNT(*) FROM themes").Scan(&themeCount); err != nil {
		t.Fatalf("count themes: %v", err)
	}
	if themeCount < 2 {
		t.Errorf("expected at least 2 themes, got %d", themeCount)
	}

	// Verify the demo portfolio and its sections exist.
	var sectionCount int
	err = db.QueryRow(`
		SELECT COUNT(*) FROM portfolio_sections s
		JOIN portfolios p ON p.id = s.portfolio_id
		WHERE p.slug = 'demo'
	`).Scan(&sectionCount)
	if err != nil {
		t.Fatalf("count demo sections: %v", err)
	}
	if sectionCount < 3 {
		t.Errorf("expected at least 3 demo sections, got %d", sectionCount)
	}
}
