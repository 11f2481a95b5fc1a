package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Thijsn04/QuestLog/internal/hero"
)

// settingsKey is the fixed primary key of the singleton row. Upserting at a
// well-known key enforces the single-row invariant at the schema level.
const settingsKey = 1

// GetSettings fetches the singleton hero settings record.
func (s *Store) GetSettings(ctx context.Context) (hero.Settings, bool, error) {
	if err := ctx.Err(); err != nil {
		return hero.Settings{}, false, err
	}
	if s == nil || s.sqlDB == nil {
		return hero.Settings{}, false, fmt.Errorf("storage is not configured")
	}

	row := s.sqlDB.QueryRowContext(ctx, `
SELECT hero_name, theme_name, xp, level, daily_quote, last_quote_date
FROM settings
WHERE id = ?
`, settingsKey)

	var (
		settings      hero.Settings
		lastQuoteDate sql.NullInt64
	)
	if err := row.Scan(
		&settings.HeroName,
		&settings.ThemeName,
		&settings.XP,
		&settings.Level,
		&settings.DailyQuote,
		&lastQuoteDate,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return hero.Settings{}, false, nil
		}
		return hero.Settings{}, false, fmt.Errorf("get settings: %w", err)
	}
	settings.LastQuoteDate = fromNullableMillis(lastQuoteDate)
	return settings, true, nil
}

// PutSettings upserts the singleton at its fixed key.
func (s *Store) PutSettings(ctx context.Context, settings hero.Settings) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO settings (id, hero_name, theme_name, xp, level, daily_quote, last_quote_date)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	hero_name = excluded.hero_name,
	theme_name = excluded.theme_name,
	xp = excluded.xp,
	level = excluded.level,
	daily_quote = excluded.daily_quote,
	last_quote_date = excluded.last_quote_date
`,
		settingsKey,
		settings.HeroName,
		settings.ThemeName,
		settings.XP,
		settings.Level,
		settings.DailyQuote,
		nullableMillis(settings.LastQuoteDate),
	)
	if err != nil {
		return fmt.Errorf("put settings: %w", err)
	}
	return nil
}

// DeleteSettings removes the singleton during a full reset.
func (s *Store) DeleteSettings(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	if _, err := s.sqlDB.ExecContext(ctx, "DELETE FROM settings WHERE id = ?", settingsKey); err != nil {
		return fmt.Errorf("delete settings: %w", err)
	}
	return nil
}
