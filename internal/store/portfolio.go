// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"foliocraft/internal/models"
	"foliocraft/internal/slug"
)

// PortfolioStore handles portfolio rows. Portfolios are the ownership
// boundary for sections: every section mutation resolves the owning
// portfolio's user id through this table.
type PortfolioStore struct {
	db *sql.DB
}

// NewPortfolioStore creates a new PortfolioStore.
func NewPortfolioStore(db *sql.DB) *PortfolioStore {
	return &PortfolioStore{db: db}
}

// portfolioColumns lists the columns selected in portfolio queries.
const portfolioColumns = `id, user_id, title, slug, theme_id, is_published, created_at, updated_at`

// scanPortfolio scans a portfolio row from the result set.
func scanPortfolio(scanner interface{ Scan(...any) error }) (*models.Portfolio, error) {
	var p models.Portfolio
	err := scanner.Scan(&p.ID, &p.UserID, &p.Title, &p.Slug, &p.ThemeID, &p.IsPublished, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a new portfolio for the given owner. The slug is derived
// from the title; on collision a short random suffix is appended.
func (s *PortfolioStore) Create(userID uuid.UUID, title string) (*models.Portfolio, error) {
	candidate := slug.Generate(title)
	if candidate == "" {
		candidate = "portfolio"
	}

	var exists bool
	if err := s.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM portfolios WHERE slug = $1)`, candidate).Scan(&exists); err != nil {
		return nil, fmt.Errorf("check portfolio slug: %w", err)
	}
	if exists {
		candidate = candidate + "-" + uuid.NewString()[:8]
	}

	row := s.db.QueryRow(`
		INSERT INTO portfolios (user_id, title, slug)
		VALUES ($1, $2, $3)
		RETURNING `+portfolioColumns,
		userID, title, candidate,
	)
	p, err := scanPortfolio(row)
	if err != nil {
		return nil, fmt.Errorf("create portfolio: %w", err)
	}
	return p, nil
}

// FindByID retrieves a portfolio by its UUID. Returns nil if not found.
func (s *PortfolioStore) FindByID(id uuid.UUID) (*models.Portfolio, error) {
	row := s.db.QueryRow(`SELECT `+portfolioColumns+` FROM portfolios WHERE id = $1`, id)
	p, err := scanPortfolio(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find portfolio by id: %w", err)
	}
	return p, nil
}

// FindBySlug retrieves a portfolio by its public slug. Returns nil if not
// found. Publication status is the caller's concern: the owner previews
// unpublished portfolios through the same lookup.
func (s *PortfolioStore) FindBySlug(slugParam string) (*models.Portfolio, error) {
	row := s.db.QueryRow(`SELECT `+portfolioColumns+` FROM portfolios WHERE slug = $1`, slugParam)
	p, err := scanPortfolio(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find portfolio by slug: %w", err)
	}
	return p, nil
}

// ListByUser returns all portfolios owned by the given user, newest first.
func (s *PortfolioStore) ListByUser(userID uuid.UUID) ([]models.Portfolio, error) {
	rows, err := s.db.Query(`
		SELECT `+portfolioColumns+`
		FROM portfolios
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list portfolios: %w", err)
	}
	defer rows.Close()

	var items []models.Portfolio
	for rows.Next() {
		p, err := scanPortfolio(rows)
		if err != nil {
			return nil, fmt.Errorf("scan portfolio: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

// SetTheme assigns a theme to a portfolio (nil clears the assignment and
// falls back to the default token set). Usage counters on the old and new
// theme are adjusted in the same transaction.
func (s *PortfolioStore) SetTheme(ownerID, portfolioID uuid.UUID, themeID *uuid.UUID) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var userID uuid.UUID
	var current *uuid.UUID
	err = tx.QueryRow(`SELECT user_id, theme_id FROM portfolios WHERE id = $1 FOR UPDATE`, portfolioID).
		Scan(&userID, &current)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("load portfolio: %w", err)
	}
	if userID != ownerID {
		return ErrForbidden
	}

	if themeID != nil {
		var exists bool
		if err := tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM themes WHERE id = $1)`, *themeID).Scan(&exists); err != nil {
			return fmt.Errorf("check theme: %w", err)
		}
		if !exists {
			return ErrNotFound
		}
	}

	if _, err := tx.Exec(`UPDATE portfolios SET theme_id = $1, updated_at = NOW() WHERE id = $2`, themeID, portfolioID); err != nil {
		return fmt.Errorf("assign theme: %w", err)
	}

	if current != nil {
		if _, err := tx.Exec(`UPDATE themes SET usage_count = GREATEST(usage_count - 1, 0) WHERE id = $1`, *current); err != nil {
			return fmt.Errorf("decrement theme usage: %w", err)
		}
	}
	if themeID != nil {
		if _, err := tx.Exec(`UPDATE themes SET usage_count = usage_count + 1 WHERE id = $1`, *themeID); err != nil {
			return fmt.Errorf("increment theme usage: %w", err)
		}
	}

	return tx.Commit()
}

// Publish toggles the public visibility of a portfolio.
func (s *PortfolioStore) Publish(ownerID, portfolioID uuid.UUID, published bool) error {
	result, err := s.db.Exec(`
		UPDATE portfolios SET is_published = $1, updated_at = NOW()
		WHERE id = $2 AND user_id = $3
	`, published, portfolioID, ownerID)
	if err != nil {
		return fmt.Errorf("publish portfolio: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		// Distinguish a missing portfolio from an ownership mismatch.
		p, err := s.FindByID(portfolioID)
		if err != nil {
			return err
		}
		if p == nil {
			return ErrNotFound
		}
		return ErrForbidden
	}
	return nil
}
