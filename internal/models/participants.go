package models

// Participant is a single registration of an email for an event. The store
// enforces at most one live registration per (event_id, email) pair with a
// unique index, so duplicate submissions surface as ErrAlreadyRegistered
// instead of a second row.
type Participant struct {
	ID      int64  `db:"id" json:"id"`
	Name    string `db:"name" json:"name" validate:"required"`
	Email   string `db:"email" json:"email" validate:"required,email"`
	EventID int64  `db:"event_id" json:"event_id" validate:"required"`
}

// RegistrationView is a registration joined with its event for the
// my-registrations listing, carrying the status derived at read time.
type RegistrationView struct {
	RegistrationID int64       `json:"registration_id"`
	EventID        int64       `json:"event_id"`
	EventName      string      `json:"event_name"`
	Date           string      `json:"date"`
	Venue          string      `json:"venue"`
	Photo          string      `json:"photo"`
	Status         EventStatus `json:"status"`
}
