package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type EventsRepo interface {
	CreateEvent(ctx context.Context, event *Event) (*Event, error)
	GetEvent(ctx context.Context, id int64) (*Event, error)
	ListEvents(ctx context.Context) ([]Event, error)
	ListEventsByCreator(ctx context.Context, createdBy string) ([]Event, error)
	UpdateEvent(ctx context.Context, event *Event) (*Event, error)
	DeleteEvent(ctx context.Context, id int64) error
	UpcomingEvents(ctx context.Context, today string, limit int) ([]Event, error)
}

const eventColumns = "id, name, date, venue, description, photo, created_by"

func scanEvent(row interface{ Scan(...any) error }) (*Event, error) {
	var e Event
	var description, photo sql.NullString
	if err := row.Scan(&e.ID, &e.Name, &e.Date, &e.Venue, &description, &photo, &e.CreatedBy); err != nil {
		return nil, err
	}
	e.Description = description.String
	e.Photo = photo.String
	return &e, nil
}

func (r *SQLiteRepo) CreateEvent(ctx context.Context, event *Event) (*Event, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO events (name, date, venue, description, photo, created_by) VALUES (?, ?, ?, ?, ?, ?)`,
		event.Name, event.Date, event.Venue, event.Description, event.Photo, event.CreatedBy,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert event: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read event id: %w", err)
	}
	event.ID = id
	return event, nil
}

func (r *SQLiteRepo) GetEvent(ctx context.Context, id int64) (*Event, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+eventColumns+` FROM events WHERE id = ?`, id)
	event, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return event, nil
}

// ListEvents returns every event ordered by date ascending, regardless of
// insertion order.
func (r *SQLiteRepo) ListEvents(ctx context.Context) ([]Event, error) {
	return r.queryEvents(ctx,
		`SELECT `+eventColumns+` FROM events ORDER BY date ASC, id ASC`)
}

// ListEventsByCreator returns the events published by one identity, for the
// user dashboard.
func (r *SQLiteRepo) ListEventsByCreator(ctx context.Context, createdBy string) ([]Event, error) {
	return r.queryEvents(ctx,
		`SELECT `+eventColumns+` FROM events WHERE created_by = ? ORDER BY date ASC, id ASC`, createdBy)
}

// UpcomingEvents returns up to limit events on or after today, the context
// fed to the chat assistant.
func (r *SQLiteRepo) UpcomingEvents(ctx context.Context, today string, limit int) ([]Event, error) {
	return r.queryEvents(ctx,
		`SELECT `+eventColumns+` FROM events WHERE date >= ? ORDER BY date ASC, id ASC LIMIT ?`, today, limit)
}

func (r *SQLiteRepo) queryEvents(ctx context.Context, query string, args ...any) ([]Event, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, *event)
	}
	return events, rows.Err()
}

func (r *SQLiteRepo) UpdateEvent(ctx context.Context, event *Event) (*Event, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE events SET name = ?, date = ?, venue = ?, description = ?, photo = ? WHERE id = ?`,
		event.Name, event.Date, event.Venue, event.Description, event.Photo, event.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrNotFound
	}
	return r.GetEvent(ctx, event.ID)
}

// DeleteEvent removes the event together with its participants, comments
// and cohosts in one transaction, so no dependent rows are left dangling.
func (r *SQLiteRepo) DeleteEvent(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"participants", "comments", "cohosts"} {
		if _, err := tx.ExecContext(ctx,
			fmt.Sprintf("DELETE FROM %s WHERE event_id = ?", table), id); err != nil {
			return fmt.Errorf("failed to delete dependent %s: %w", table, err)
		}
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return tx.Commit()
}
