// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"foliocraft/internal/models"
	"foliocraft/internal/sectiontypes"
)

// SectionStore owns the ordered section collection of each portfolio.
// Invariant: for a portfolio with N sections, sort_order values are exactly
// 0..N-1 after every successful mutation. Structural mutations (add, delete,
// reorder, duplicate) lock the owning portfolio row inside their
// transaction, so two concurrent structural writes cannot interleave and
// break contiguity.
type SectionStore struct {
	db       *sql.DB
	registry *sectiontypes.Registry
}

// NewSectionStore creates a new SectionStore. The registry resolves section
// type metadata attached to query results.
func NewSectionStore(db *sql.DB, registry *sectiontypes.Registry) *SectionStore {
	return &SectionStore{db: db, registry: registry}
}

// SectionWithType pairs a section row with its catalog type metadata.
// Type is nil when the stored type id has been retired from the catalog.
type SectionWithType struct {
	models.PortfolioSection
	Type *models.SectionType `json:"section_type,omitempty"`
}

// AddSectionInput carries the fields of a new section. SortOrder is
// optional; when nil the section is appended at the end.
type AddSectionInput struct {
	PortfolioID   uuid.UUID
	SectionTypeID uuid.UUID
	Content       models.JSONMap
	Layout        *string
	Styles        models.StyleMap
	Animations    *models.Animations
	SortOrder     *int
}

// UpdateSectionInput carries a partial section update. Nil fields leave the
// stored value untouched; this is a merge, not a replace.
type UpdateSectionInput struct {
	ID         uuid.UUID
	Content    models.JSONMap
	Layout     *string
	Styles     models.StyleMap
	Animations *models.Animations
	IsVisible  *bool
}

// sectionColumns lists the columns selected in section queries.
const sectionColumns = `id, portfolio_id, section_type_id, sort_order, is_visible, content, styles, layout, animations, created_at, updated_at`

// scanSection scans a section row from the result set.
func scanSection(scanner interface{ Scan(...any) error }) (*models.PortfolioSection, error) {
	var sec models.PortfolioSection
	var anims models.Animations
	err := scanner.Scan(
		&sec.ID, &sec.PortfolioID, &sec.SectionTypeID, &sec.SortOrder, &sec.IsVisible,
		&sec.Content, &sec.Styles, &sec.Layout, &anims, &sec.CreatedAt, &sec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if anims != (models.Animations{}) {
		sec.Animations = &anims
	}
	return &sec, nil
}

// withType attaches catalog metadata to a section row.
func (s *SectionStore) withType(sec *models.PortfolioSection) *SectionWithType {
	return &SectionWithType{
		PortfolioSection: *sec,
		Type:             s.registry.FindByID(sec.SectionTypeID),
	}
}

// List returns the sections of a portfolio ordered ascending by sort_order,
// each with its resolved type metadata.
func (s *SectionStore) List(portfolioID uuid.UUID) ([]SectionWithType, error) {
	rows, err := s.db.Query(`
		SELECT `+sectionColumns+`
		FROM portfolio_sections
		WHERE portfolio_id = $1
		ORDER BY sort_order ASC
	`, portfolioID)
	if err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}
	defer rows.Close()

	var items []SectionWithType
	for rows.Next() {
		sec, err := scanSection(rows)
		if err != nil {
			return nil, fmt.Errorf("scan section: %w", err)
		}
		items = append(items, *s.withType(sec))
	}
	return items, rows.Err()
}

// lockPortfolio loads and row-locks a portfolio inside tx, then verifies
// ownership. Returns ErrNotFound or ErrForbidden accordingly.
func lockPortfolio(tx *sql.Tx, portfolioID, ownerID uuid.UUID) error {
	var userID uuid.UUID
	err := tx.QueryRow(`SELECT user_id FROM portfolios WHERE id = $1 FOR UPDATE`, portfolioID).Scan(&userID)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("lock portfolio: %w", err)
	}
	if userID != ownerID {
		return ErrForbidden
	}
	return nil
}

// sectionCount returns the number of sections of a portfolio inside tx.
func sectionCount(tx *sql.Tx, portfolioID uuid.UUID) (int, error) {
	var count int
	if err := tx.QueryRow(`SELECT COUNT(*) FROM portfolio_sections WHERE portfolio_id = $1`, portfolioID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count sections: %w", err)
	}
	return count, nil
}

// Add creates a new section in the portfolio. The order defaults to the
// current section count, appending it at the end. An explicit order is
// clamped to [0, count] and existing sections from that position shift up
// one, keeping sort_order contiguous.
func (s *SectionStore) Add(ownerID uuid.UUID, in AddSectionInput) (*SectionWithType, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := lockPortfolio(tx, in.PortfolioID, ownerID); err != nil {
		return nil, err
	}

	count, err := sectionCount(tx, in.PortfolioID)
	if err != nil {
		return nil, err
	}
	order := count
	if in.SortOrder != nil {
		order = *in.SortOrder
		if order < 0 {
			order = 0
		}
		if order > count {
			order = count
		}
	}
	if order < count {
		// Make room at the insert position.
		if _, err := tx.Exec(`
			UPDATE portfolio_sections
			SET sort_order = sort_order + 1, updated_at = NOW()
			WHERE portfolio_id = $1 AND sort_order >= $2
		`, in.PortfolioID, order); err != nil {
			return nil, fmt.Errorf("shift section order: %w", err)
		}
	}

	content := in.Content
	if content == nil {
		// Fall back to the type's default content so new sections are not blank.
		if st := s.registry.FindByID(in.SectionTypeID); st != nil {
			content = st.DefaultContent
		} else {
			content = models.JSONMap{}
		}
	}

	row := tx.QueryRow(`
		INSERT INTO portfolio_sections (portfolio_id, section_type_id, sort_order, content, styles, layout, animations)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+sectionColumns,
		in.PortfolioID, in.SectionTypeID, order, content, in.Styles, in.Layout, in.Animations,
	)
	sec, err := scanSection(row)
	if err != nil {
		return nil, fmt.Errorf("create section: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return s.withType(sec), nil
}

// loadSectionForUpdate loads and row-locks a section joined with its owning
// portfolio inside tx, verifying ownership. The portfolio row is locked too,
// serializing against concurrent structural mutations.
func loadSectionForUpdate(tx *sql.Tx, sectionID, ownerID uuid.UUID) (*models.PortfolioSection, error) {
	var sec models.PortfolioSection
	var anims models.Animations
	var userID uuid.UUID
	err := tx.QueryRow(`
		SELECT s.id, s.portfolio_id, s.section_type_id, s.sort_order, s.is_visible,
		       s.content, s.styles, s.layout, s.animations, s.created_at, s.updated_at,
		       p.user_id
		FROM portfolio_sections s
		JOIN portfolios p ON p.id = s.portfolio_id
		WHERE s.id = $1
		FOR UPDATE
	`, sectionID).Scan(
		&sec.ID, &sec.PortfolioID, &sec.SectionTypeID, &sec.SortOrder, &sec.IsVisible,
		&sec.Content, &sec.Styles, &sec.Layout, &anims, &sec.CreatedAt, &sec.UpdatedAt,
		&userID,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load section: %w", err)
	}
	if userID != ownerID {
		return nil, ErrForbidden
	}
	if anims != (models.Animations{}) {
		sec.Animations = &anims
	}
	return &sec, nil
}

// Update applies a partial update to a section. Only the non-nil fields of
// the input change; everything else keeps its stored value.
func (s *SectionStore) Update(ownerID uuid.UUID, in UpdateSectionInput) (*SectionWithType, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	sec, err := loadSectionForUpdate(tx, in.ID, ownerID)
	if err != nil {
		return nil, err
	}

	if in.Content != nil {
		sec.Content = in.Content
	}
	if in.Styles != nil {
		sec.Styles = in.Styles
	}
	if in.Layout != nil {
		sec.Layout = in.Layout
	}
	if in.Animations != nil {
		sec.Animations = in.Animations
	}
	if in.IsVisible != nil {
		sec.IsVisible = *in.IsVisible
	}

	row := tx.QueryRow(`
		UPDATE portfolio_sections
		SET content = $1, styles = $2, layout = $3, animations = $4, is_visible = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING `+sectionColumns,
		sec.Content, sec.Styles, sec.Layout, sec.Animations, sec.IsVisible, sec.ID,
	)
	updated, err := scanSection(row)
	if err != nil {
		return nil, fmt.Errorf("update section: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return s.withType(updated), nil
}

// Delete removes a section and recompacts the remaining orders: every
// section of the portfolio with a higher sort_order is decremented by one,
// in the same transaction, restoring the contiguous 0..N-1 sequence.
func (s *SectionStore) Delete(ownerID, sectionID uuid.UUID) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	sec, err := loadSectionForUpdate(tx, sectionID, ownerID)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(`DELETE FROM portfolio_sections WHERE id = $1`, sectionID); err != nil {
		return fmt.Errorf("delete section: %w", err)
	}

	if _, err := tx.Exec(`
		UPDATE portfolio_sections
		SET sort_order = sort_order - 1, updated_at = NOW()
		WHERE portfolio_id = $1 AND sort_order > $2
	`, sec.PortfolioID, sec.SortOrder); err != nil {
		return fmt.Errorf("recompact section order: %w", err)
	}

	return tx.Commit()
}

// Reorder rewrites the order of a portfolio's sections: each id in the
// sequence gets sort_order equal to its index. All assignments happen in one
// transaction, so a failure leaves the previous order fully intact. The
// caller must supply a permutation of the portfolio's section ids; the store
// does not verify completeness.
func (s *SectionStore) Reorder(ownerID, portfolioID uuid.UUID, orderedIDs []uuid.UUID) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := lockPortfolio(tx, portfolioID, ownerID); err != nil {
		return err
	}

	for index, id := range orderedIDs {
		result, err := tx.Exec(`
			UPDATE portfolio_sections
			SET sort_order = $1, updated_at = NOW()
			WHERE id = $2 AND portfolio_id = $3
		`, index, id, portfolioID)
		if err != nil {
			return fmt.Errorf("reorder section %s: %w", id, err)
		}
		rows, _ := result.RowsAffected()
		if rows == 0 {
			// An id outside the portfolio aborts the whole reorder.
			return ErrNotFound
		}
	}

	return tx.Commit()
}

// Duplicate creates a copy of a section with the same content, styles,
// layout, animations, and visibility, appended at the end of the portfolio.
func (s *SectionStore) Duplicate(ownerID, sectionID uuid.UUID) (*SectionWithType, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	src, err := loadSectionForUpdate(tx, sectionID, ownerID)
	if err != nil {
		return nil, err
	}

	count, err := sectionCount(tx, src.PortfolioID)
	if err != nil {
		return nil, err
	}

	row := tx.QueryRow(`
		INSERT INTO portfolio_sections (portfolio_id, section_type_id, sort_order, is_visible, content, styles, layout, animations)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+sectionColumns,
		src.PortfolioID, src.SectionTypeID, count, src.IsVisible, src.Content, src.Styles, src.Layout, src.Animations,
	)
	dup, err := scanSection(row)
	if err != nil {
		return nil, fmt.Errorf("duplicate section: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return s.withType(dup), nil
}
