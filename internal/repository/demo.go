package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jaiganesh5555/arcade/internal/model"
)

var ErrDemoNotFound = errors.New("demo not found")

// DemoRepository handles demo persistence operations. Every query is scoped
// by owner, so a demo belonging to another user is indistinguishable from a
// missing one.
type DemoRepository struct {
	db *sql.DB
}

// NewDemoRepository creates a new DemoRepository.
func NewDemoRepository(db *sql.DB) *DemoRepository {
	return &DemoRepository{db: db}
}

const demoColumns = `id, user_id, title, description, demo_type, content, thumbnail, source_url, is_public, views, created_at, updated_at`

// Create inserts a new demo with a zero view counter and sets the generated ID.
func (r *DemoRepository) Create(ctx context.Context, demo *model.Demo) error {
	query := `INSERT INTO demos (user_id, title, description, demo_type, content, thumbnail, source_url, is_public, views)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, 0)`

	result, err := r.db.ExecContext(ctx, query,
		demo.UserID, demo.Title, demo.Description, demo.Type,
		demo.Content, demo.Thumbnail, demo.URL, demo.IsPublic,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	demo.ID = id
	demo.Views = 0
	return nil
}

// GetByID retrieves a demo by ID, scoped to its owner.
func (r *DemoRepository) GetByID(ctx context.Context, userID, demoID int64) (*model.Demo, error) {
	query := `SELECT ` + demoColumns + ` FROM demos WHERE id = ? AND user_id = ?`

	demo := &model.Demo{}
	err := r.db.QueryRowContext(ctx, query, demoID, userID).Scan(
		&demo.ID, &demo.UserID, &demo.Title, &demo.Description, &demo.Type,
		&demo.Content, &demo.Thumbnail, &demo.URL, &demo.IsPublic, &demo.Views,
		&demo.CreatedAt, &demo.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDemoNotFound
		}
		return nil, err
	}

	return demo, nil
}

// ListByUser retrieves all demos owned by a user, newest first.
func (r *DemoRepository) ListByUser(ctx context.Context, userID int64) ([]model.Demo, error) {
	query := `SELECT ` + demoColumns + ` FROM demos WHERE user_id = ? ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var demos []model.Demo
	for rows.Next() {
		var d model.Demo
		if err := rows.Scan(
			&d.ID, &d.UserID, &d.Title, &d.Description, &d.Type,
			&d.Content, &d.Thumbnail, &d.URL, &d.IsPublic, &d.Views,
			&d.CreatedAt, &d.UpdatedAt,
		); err != nil {
			return nil, err
		}
		demos = append(demos, d)
	}

	return demos, rows.Err()
}

// Update overwrites all mutable fields of a demo, scoped to its owner.
// Ownership must already be verified; zero affected rows is not treated as
// an error because MySQL reports 0 when the new values equal the old ones.
func (r *DemoRepository) Update(ctx context.Context, demo *model.Demo) error {
	query := `UPDATE demos SET title = ?, description = ?, demo_type = ?, content = ?,
		thumbnail = ?, source_url = ?, is_public = ?
		WHERE id = ? AND user_id = ?`

	_, err := r.db.ExecContext(ctx, query,
		demo.Title, demo.Description, demo.Type, demo.Content,
		demo.Thumbnail, demo.URL, demo.IsPublic,
		demo.ID, demo.UserID,
	)
	return err
}

// Delete removes a demo owned by the user.
func (r *DemoRepository) Delete(ctx context.Context, userID, demoID int64) error {
	query := `DELETE FROM demos WHERE id = ? AND user_id = ?`

	result, err := r.db.ExecContext(ctx, query, demoID, userID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrDemoNotFound
	}

	return nil
}

// IncrementViews bumps the view counter of a demo owned by the user by one.
func (r *DemoRepository) IncrementViews(ctx context.Context, userID, demoID int64) error {
	query := `UPDATE demos SET views = views + 1 WHERE id = ? AND user_id = ?`

	result, err := r.db.ExecContext(ctx, query, demoID, userID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrDemoNotFound
	}

	return nil
}
