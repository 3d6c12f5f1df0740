package models

import (
	"context"
	"fmt"
	"time"
)

type CommentsRepo interface {
	CreateComment(ctx context.Context, comment *Comment) (*Comment, error)
	ListComments(ctx context.Context, eventID int64) ([]CommentView, error)
	DeleteComment(ctx context.Context, id int64) error
	CreateCohost(ctx context.Context, cohost *Cohost) (*Cohost, error)
	ListCohosts(ctx context.Context, eventID int64) ([]Cohost, error)
}

// timestampLayout matches the store's DATETIME text form so that ORDER BY
// on the column stays chronological.
const timestampLayout = "2006-01-02 15:04:05"

func (r *SQLiteRepo) CreateComment(ctx context.Context, comment *Comment) (*Comment, error) {
	if comment.Timestamp == "" {
		comment.Timestamp = time.Now().UTC().Format(timestampLayout)
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO comments (event_id, user_id, comment, timestamp) VALUES (?, ?, ?, ?)`,
		comment.EventID, comment.UserID, comment.Text, comment.Timestamp,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert comment: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read comment id: %w", err)
	}
	comment.ID = id
	return comment, nil
}

// ListComments returns the event's comments joined with the author's
// username, most recent first.
func (r *SQLiteRepo) ListComments(ctx context.Context, eventID int64) ([]CommentView, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT c.id, c.comment, c.timestamp, u.username
		FROM comments c
		JOIN users u ON c.user_id = u.id
		WHERE c.event_id = ?
		ORDER BY c.timestamp DESC, c.id DESC
	`, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	var views []CommentView
	for rows.Next() {
		var v CommentView
		if err := rows.Scan(&v.ID, &v.Text, &v.Timestamp, &v.Username); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		views = append(views, v)
	}
	return views, rows.Err()
}

func (r *SQLiteRepo) DeleteComment(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SQLiteRepo) CreateCohost(ctx context.Context, cohost *Cohost) (*Cohost, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO cohosts (event_id, name, email) VALUES (?, ?, ?)`,
		cohost.EventID, cohost.Name, cohost.Email,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert cohost: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read cohost id: %w", err)
	}
	cohost.ID = id
	return cohost, nil
}

func (r *SQLiteRepo) ListCohosts(ctx context.Context, eventID int64) ([]Cohost, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, event_id, name, email FROM cohosts WHERE event_id = ? ORDER BY id ASC`, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cohosts: %w", err)
	}
	defer rows.Close()

	var cohosts []Cohost
	for rows.Next() {
		var c Cohost
		if err := rows.Scan(&c.ID, &c.EventID, &c.Name, &c.Email); err != nil {
			return nil, fmt.Errorf("failed to scan cohost: %w", err)
		}
		cohosts = append(cohosts, c)
	}
	return cohosts, rows.Err()
}
