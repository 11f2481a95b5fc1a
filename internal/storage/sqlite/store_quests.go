package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Thijsn04/QuestLog/internal/quest"
)

const questColumns = "id, title, description, category, parent_id, completed, deadline, created_at, image_url, position"

// CreateQuest persists a quest, assigning position = current sibling count
// inside one transaction so concurrent creates cannot race the count.
func (s *Store) CreateQuest(ctx context.Context, q quest.Quest) (quest.Quest, error) {
	if err := ctx.Err(); err != nil {
		return quest.Quest{}, err
	}
	if s == nil || s.sqlDB == nil {
		return quest.Quest{}, fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(q.ID) == "" {
		return quest.Quest{}, fmt.Errorf("quest id is required")
	}
	if strings.TrimSpace(q.Title) == "" {
		return quest.Quest{}, fmt.Errorf("quest title is required")
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return quest.Quest{}, fmt.Errorf("begin create quest: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var siblingCount int
	row := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM quests WHERE parent_id = ?", q.ParentID)
	if err := row.Scan(&siblingCount); err != nil {
		return quest.Quest{}, fmt.Errorf("count siblings: %w", err)
	}
	q.Position = siblingCount

	_, err = tx.ExecContext(ctx, `
INSERT INTO quests (`+questColumns+`)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`,
		q.ID,
		q.Title,
		q.Description,
		q.Category,
		q.ParentID,
		q.Completed,
		nullableMillis(q.Deadline),
		toMillis(q.CreatedAt),
		q.ImageURL,
		q.Position,
	)
	if err != nil {
		return quest.Quest{}, fmt.Errorf("insert quest: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return quest.Quest{}, fmt.Errorf("commit create quest: %w", err)
	}
	return q, nil
}

// GetQuest fetches a quest by id. A miss reports found=false without error.
func (s *Store) GetQuest(ctx context.Context, id string) (quest.Quest, bool, error) {
	if err := ctx.Err(); err != nil {
		return quest.Quest{}, false, err
	}
	if s == nil || s.sqlDB == nil {
		return quest.Quest{}, false, fmt.Errorf("storage is not configured")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return quest.Quest{}, false, nil
	}

	row := s.sqlDB.QueryRowContext(ctx, "SELECT "+questColumns+" FROM quests WHERE id = ?", id)
	q, err := scanQuest(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return quest.Quest{}, false, nil
		}
		return quest.Quest{}, false, fmt.Errorf("get quest: %w", err)
	}
	return q, true, nil
}

// MainQuest fetches the single root quest when one exists.
func (s *Store) MainQuest(ctx context.Context) (quest.Quest, bool, error) {
	if err := ctx.Err(); err != nil {
		return quest.Quest{}, false, err
	}
	if s == nil || s.sqlDB == nil {
		return quest.Quest{}, false, fmt.Errorf("storage is not configured")
	}

	row := s.sqlDB.QueryRowContext(ctx,
		"SELECT "+questColumns+" FROM quests WHERE category = ? AND parent_id = '' LIMIT 1",
		quest.CategoryMain,
	)
	q, err := scanQuest(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return quest.Quest{}, false, nil
		}
		return quest.Quest{}, false, fmt.Errorf("get main quest: %w", err)
	}
	return q, true, nil
}

// ChildQuests lists a parent's children ordered by position, creation time
// and id breaking ties. Position gaps left by deletions are tolerated.
func (s *Store) ChildQuests(ctx context.Context, parentID string) ([]quest.Quest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		"SELECT "+questColumns+" FROM quests WHERE parent_id = ? ORDER BY position, created_at, id",
		parentID,
	)
	if err != nil {
		return nil, fmt.Errorf("list child quests: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var quests []quest.Quest
	for rows.Next() {
		q, err := scanQuest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan child quest: %w", err)
		}
		quests = append(quests, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate child quests: %w", err)
	}
	return quests, nil
}

// ChildProgress counts a parent's children and how many are completed.
func (s *Store) ChildProgress(ctx context.Context, parentID string) (int, int, error) {
	if err := ctx.Err(); err != nil {
		return 0, 0, err
	}
	if s == nil || s.sqlDB == nil {
		return 0, 0, fmt.Errorf("storage is not configured")
	}

	var total, completed int
	row := s.sqlDB.QueryRowContext(ctx,
		"SELECT COUNT(*), COALESCE(SUM(completed), 0) FROM quests WHERE parent_id = ?",
		parentID,
	)
	if err := row.Scan(&total, &completed); err != nil {
		return 0, 0, fmt.Errorf("count child progress: %w", err)
	}
	return total, completed, nil
}

// UpdateQuest overwrites a quest's mutable fields.
func (s *Store) UpdateQuest(ctx context.Context, q quest.Quest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(q.ID) == "" {
		return fmt.Errorf("quest id is required")
	}

	_, err := s.sqlDB.ExecContext(ctx, `
UPDATE quests SET
	title = ?,
	description = ?,
	category = ?,
	completed = ?,
	deadline = ?,
	image_url = ?,
	position = ?
WHERE id = ?
`,
		q.Title,
		q.Description,
		q.Category,
		q.Completed,
		nullableMillis(q.Deadline),
		q.ImageURL,
		q.Position,
		q.ID,
	)
	if err != nil {
		return fmt.Errorf("update quest: %w", err)
	}
	return nil
}

// UpdateQuestPosition moves a quest to a new sibling position.
func (s *Store) UpdateQuestPosition(ctx context.Context, id string, position int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("quest id is required")
	}

	_, err := s.sqlDB.ExecContext(ctx, "UPDATE quests SET position = ? WHERE id = ?", position, id)
	if err != nil {
		return fmt.Errorf("update quest position: %w", err)
	}
	return nil
}

// DeleteQuest removes a quest and cascades to its children so no dangling
// parent references survive.
func (s *Store) DeleteQuest(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete quest: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM quests WHERE parent_id = ?", id); err != nil {
		return fmt.Errorf("delete child quests: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM quests WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete quest: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete quest: %w", err)
	}
	return nil
}

// ListQuests returns every quest ordered for a stable export.
func (s *Store) ListQuests(ctx context.Context) ([]quest.Quest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		"SELECT "+questColumns+" FROM quests ORDER BY parent_id, position, created_at, id",
	)
	if err != nil {
		return nil, fmt.Errorf("list quests: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var quests []quest.Quest
	for rows.Next() {
		q, err := scanQuest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan quest: %w", err)
		}
		quests = append(quests, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate quests: %w", err)
	}
	return quests, nil
}

// DeleteAllQuests wipes the quest table during a full reset.
func (s *Store) DeleteAllQuests(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	if _, err := s.sqlDB.ExecContext(ctx, "DELETE FROM quests"); err != nil {
		return fmt.Errorf("delete all quests: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuest(row rowScanner) (quest.Quest, error) {
	var (
		q         quest.Quest
		deadline  sql.NullInt64
		createdAt int64
	)
	if err := row.Scan(
		&q.ID,
		&q.Title,
		&q.Description,
		&q.Category,
		&q.ParentID,
		&q.Completed,
		&deadline,
		&createdAt,
		&q.ImageURL,
		&q.Position,
	); err != nil {
		return quest.Quest{}, err
	}
	q.Deadline = fromNullableMillis(deadline)
	q.CreatedAt = fromMillis(createdAt)
	return q, nil
}
