package models

import (
	"context"
	"errors"
	"fmt"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

type ParticipantsRepo interface {
	CreateRegistration(ctx context.Context, participant *Participant) (*Participant, error)
	CancelRegistration(ctx context.Context, id int64) error
	ListRegistrationsByEmail(ctx context.Context, email, today string) ([]RegistrationView, error)
}

// CreateRegistration inserts the registration and maps a unique index
// violation on (event_id, email) to ErrAlreadyRegistered. Deriving the
// outcome from the constraint rather than a prior read keeps concurrent
// duplicate submissions from both inserting.
func (r *SQLiteRepo) CreateRegistration(ctx context.Context, participant *Participant) (*Participant, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO participants (name, email, event_id) VALUES (?, ?, ?)`,
		participant.Name, participant.Email, participant.EventID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrAlreadyRegistered
		}
		return nil, fmt.Errorf("failed to insert registration: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read registration id: %w", err)
	}
	participant.ID = id
	return participant, nil
}

func (r *SQLiteRepo) CancelRegistration(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM participants WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to cancel registration: %w", err)
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

// ListRegistrationsByEmail joins registrations with their events, ordered
// by event date ascending, deriving each status against today.
func (r *SQLiteRepo) ListRegistrationsByEmail(ctx context.Context, email, today string) ([]RegistrationView, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.id, e.id, e.name, e.date, e.venue, COALESCE(e.photo, '')
		FROM participants p
		JOIN events e ON p.event_id = e.id
		WHERE p.email = ?
		ORDER BY e.date ASC, p.id ASC
	`, email)
	if err != nil {
		return nil, fmt.Errorf("failed to list registrations: %w", err)
	}
	defer rows.Close()

	var views []RegistrationView
	for rows.Next() {
		var v RegistrationView
		if err := rows.Scan(&v.RegistrationID, &v.EventID, &v.EventName, &v.Date, &v.Venue, &v.Photo); err != nil {
			return nil, fmt.Errorf("failed to scan registration: %w", err)
		}
		v.Status = StatusOn(v.Date, today)
		views = append(views, v)
	}
	return views, rows.Err()
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	switch sqliteErr.Code() {
	case sqlite3lib.SQLITE_CONSTRAINT_UNIQUE, sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY:
		return true
	}
	return false
}
