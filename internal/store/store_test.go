// store_test.go provides a shared test database helper for all store
// integration tests. Tests are skipped if PostgreSQL is not available.
package store

import (
	"database/sql"
	"os"
	"testing"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"foliocraft/internal/database"
	"foliocraft/internal/models"
	"foliocraft/internal/sectiontypes"
)

// testDSN returns the PostgreSQL connection string for testing.
// Uses environment variables with defaults matching docker-compose.yml.
func testDSN() string {
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "foliocraft")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "foliocraft")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test database and runs migrations.
// If the database is unavailable, the test is skipped. A cleanup
// function is registered to close the connection when the test finishes.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := testDSN()
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	// Downgrade goose global state.
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testRegistry is the shared section type catalog for store tests.
var testRegistry = sectiontypes.New()

// createTestUser inserts a throwaway user and registers cleanup. Deleting
// the user cascades to their portfolios and sections.
func createTestUser(t *testing.T, db *sql.DB) uuid.UUID {
	t.Helper()
	var id uuid.UUID
	email := "test-" + uuid.NewString()[:8] + "@foliocraft.local"
	err := db.QueryRow(`
		INSERT INTO users (email, password_hash, display_name)
		VALUES ($1, 'x', 'Test User')
		RETURNING id
	`, email).Scan(&id)
	if err != nil {
		t.Fatalf("create test user: %v", err)
	}
	t.Cleanup(func() { db.Exec(`DELETE FROM users WHERE id = $1`, id) })
	return id
}

// createTestPortfolio inserts a portfolio for the given owner.
func createTestPortfolio(t *testing.T, db *sql.DB, userID uuid.UUID) *models.Portfolio {
	t.Helper()
	ps := NewPortfolioStore(db)
	p, err := ps.Create(userID, "Test Portfolio "+uuid.NewString()[:8])
	if err != nil {
		t.Fatalf("create test portfolio: %v", err)
	}
	return p
}

// addTestSection appends a section of the named type to the portfolio.
func addTestSection(t *testing.T, s *SectionStore, ownerID uuid.UUID, portfolioID uuid.UUID, typeName string, content models.JSONMap) *SectionWithType {
	t.Helper()
	st := testRegistry.FindByName(typeName)
	if st == nil {
		t.Fatalf("unknown section type %q", typeName)
	}
	sec, err := s.Add(ownerID, AddSectionInput{
		PortfolioID:   portfolioID,
		SectionTypeID: st.ID,
		Content:       content,
	})
	if err != nil {
		t.Fatalf("add %s section: %v", typeName, err)
	}
	return sec
}

// assertOrders verifies the portfolio's sections have exactly the given ids
// in the given order, with contiguous sort_order values 0..N-1.
func assertOrders(t *testing.T, s *SectionStore, portfolioID uuid.UUID, wantIDs []uuid.UUID) {
	t.Helper()
	sections, err := s.List(portfolioID)
	if err != nil {
		t.Fatalf("list sections: %v", err)
	}
	if len(sections) != len(wantIDs) {
		t.Fatalf("section count: got %d, want %d", len(sections), len(wantIDs))
	}
	for i, sec := range sections {
		if sec.SortOrder != i {
			t.Errorf("position %d: sort_order = %d, want %d (orders must be contiguous)", i, sec.SortOrder, i)
		}
		if sec.ID != wantIDs[i] {
			t.Errorf("position %d: id = %s, want %s", i, sec.ID, wantIDs[i])
		}
	}
}
