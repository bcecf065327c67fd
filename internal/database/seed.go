package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"foliocraft/internal/models"
	"foliocraft/internal/sectiontypes"
)

// Seed populates the database with initial development data: a demo user,
// two starter themes, and a small published portfolio so the public page
// renders something out of the box. Idempotent — skipped when users exist.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("seed check users: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	var userID uuid.UUID
	err = db.QueryRow(`
		INSERT INTO users (email, password_hash, display_name)
		VALUES ($1, $2, $3)
		RETURNING id
	`, "demo@foliocraft.local", string(hash), "Demo User").Scan(&userID)
	if err != nil {
		return fmt.Errorf("seed insert user: %w", err)
	}

	themeID, err := seedThemes(db)
	if err != nil {
		return err
	}

	if err := seedPortfolio(db, userID, themeID); err != nil {
		return err
	}

	slog.Info("database seeded with demo data",
		"email", "demo@foliocraft.local",
		"password", "demo",
	)
	return nil
}

// seedThemes inserts the two starter themes and returns the default theme id.
func seedThemes(db *sql.DB) (uuid.UUID, error) {
	light := models.Theme{
		Name: "Minimal Light",
		Colors: models.ThemeColors{
			Primary:    "#2563eb",
			Secondary:  "#475569",
			Accent:     "#f59e0b",
			Background: "#ffffff",
			Text:       "#0f172a",
		},
		Fonts: models.ThemeFonts{
			Heading: "'Inter', sans-serif",
			Body:    "'Inter', sans-serif",
		},
		Category:  models.ThemeCategoryLight,
		IsDefault: true,
	}

	dark := models.Theme{
		Name: "Midnight",
		Colors: models.ThemeColors{
			Primary:            "#818cf8",
			Secondary:          "#94a3b8",
			Accent:             "#fbbf24",
			Background:         "#0f172a",
			BackgroundAlt:      "#1e293b",
			BackgroundElevated: "#334155",
			Text:               "#f1f5f9",
			TextSecondary:      "#cbd5e1",
			TextMuted:          "#94a3b8",
			TextInverse:        "#0f172a",
			Border:             "#334155",
			Divider:            "#1e293b",
		},
		Fonts: models.ThemeFonts{
			Heading: "'Space Grotesk', sans-serif",
			Body:    "'Inter', sans-serif",
		},
		Category: models.ThemeCategoryDark,
	}

	var defaultID uuid.UUID
	for _, th := range []models.Theme{light, dark} {
		var id uuid.UUID
		err := db.QueryRow(`
			INSERT INTO themes (name, colors, fonts, animations, category, is_default)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`, th.Name, th.Colors, th.Fonts, th.Animations, th.Category, th.IsDefault).Scan(&id)
		if err != nil {
			return uuid.Nil, fmt.Errorf("seed insert theme %s: %w", th.Name, err)
		}
		if th.IsDefault {
			defaultID = id
		}
	}
	return defaultID, nil
}

// seedPortfolio creates one published portfolio with a hero, about, and
// contact section using each type's default content.
func seedPortfolio(db *sql.DB, userID, themeID uuid.UUID) error {
	var portfolioID uuid.UUID
	err := db.QueryRow(`
		INSERT INTO portfolios (user_id, title, slug, theme_id, is_published)
		VALUES ($1, $2, $3, $4, TRUE)
		RETURNING id
	`, userID, "Demo Portfolio", "demo", themeID).Scan(&portfolioID)
	if err != nil {
		return fmt.Errorf("seed insert portfolio: %w", err)
	}

	// Theme is assigned at insert, keep the counter honest.
	if _, err := db.Exec(`UPDATE themes SET usage_count = usage_count + 1 WHERE id = $1`, themeID); err != nil {
		return fmt.Errorf("seed theme usage: %w", err)
	}

	registry := sectiontypes.New()
	for i, name := range []string{"hero", "about", "contact"} {
		st := registry.FindByName(name)
		if st == nil {
			return fmt.Errorf("seed: unknown section type %q", name)
		}
		_, err := db.Exec(`
			INSERT INTO portfolio_sections (portfolio_id, section_type_id, sort_order, content)
			VALUES ($1, $2, $3, $4)
		`, portfolioID, st.ID, i, st.DefaultContent)
		if err != nil {
			return fmt.Errorf("seed insert %s section: %w", name, err)
		}
	}
	return nil
}
