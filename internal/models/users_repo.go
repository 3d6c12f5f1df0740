package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type UsersRepo interface {
	CreateUser(ctx context.Context, user *User) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	ListUsers(ctx context.Context) ([]User, error)
	GetOrganizerByUsername(ctx context.Context, username string) (*Organizer, error)
	CreateOrganizer(ctx context.Context, organizer *Organizer) (*Organizer, error)
}

// ErrEmailTaken is returned when signup reuses a registered email.
var ErrEmailTaken = errors.New("email already registered")

func (r *SQLiteRepo) CreateUser(ctx context.Context, user *User) (*User, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (username, email, password) VALUES (?, ?, ?)`,
		user.Username, user.Email, user.Password,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read user id: %w", err)
	}
	user.ID = id
	return user, nil
}

func (r *SQLiteRepo) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.db.QueryRowContext(ctx,
		`SELECT id, username, email, password FROM users WHERE email = ?`, email).
		Scan(&u.ID, &u.Username, &u.Email, &u.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &u, nil
}

// ListUsers returns every registered user ordered by username, for the
// organizer's user overview.
func (r *SQLiteRepo) ListUsers(ctx context.Context) ([]User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, username, email FROM users ORDER BY username ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *SQLiteRepo) GetOrganizerByUsername(ctx context.Context, username string) (*Organizer, error) {
	var o Organizer
	err := r.db.QueryRowContext(ctx,
		`SELECT id, username, password FROM organizers WHERE username = ?`, username).
		Scan(&o.ID, &o.Username, &o.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get organizer: %w", err)
	}
	return &o, nil
}

func (r *SQLiteRepo) CreateOrganizer(ctx context.Context, organizer *Organizer) (*Organizer, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO organizers (username, password) VALUES (?, ?)`,
		organizer.Username, organizer.Password,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("organizer %q already exists", organizer.Username)
		}
		return nil, fmt.Errorf("failed to insert organizer: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read organizer id: %w", err)
	}
	organizer.ID = id
	return organizer, nil
}
