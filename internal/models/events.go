package models

import (
	"strings"
	"time"
)

// ISODate is the fixed-width calendar date layout used throughout the
// store. Dates are compared lexicographically, which is only correct
// because every stored value has this exact shape.
const ISODate = "2006-01-02"

// EventStatus is derived from an event's date on every read. It is never
// persisted, so listings cannot go stale.
type EventStatus string

const (
	StatusUpcoming  EventStatus = "upcoming"
	StatusOngoing   EventStatus = "ongoing"
	StatusCompleted EventStatus = "completed"
)

type Event struct {
	ID          int64  `db:"id" json:"id"`
	Name        string `db:"name" json:"name" validate:"required"`
	Date        string `db:"date" json:"date" validate:"required"`
	Venue       string `db:"venue" json:"venue" validate:"required"`
	Description string `db:"description" json:"description"`
	Photo       string `db:"photo" json:"photo"`
	CreatedBy   string `db:"created_by" json:"created_by"`
}

// EventWithStatus pairs an event with its status derived at read time.
type EventWithStatus struct {
	Event
	Status EventStatus `json:"status"`
}

// Today returns the current UTC calendar date in ISO form.
func Today() string {
	return time.Now().UTC().Format(ISODate)
}

// StatusOn derives the lifecycle status of date relative to today. Both
// arguments must be fixed-width ISO dates.
func StatusOn(date, today string) EventStatus {
	switch {
	case date > today:
		return StatusUpcoming
	case date == today:
		return StatusOngoing
	default:
		return StatusCompleted
	}
}

// ValidEventDate reports whether s is an exact-length ISO calendar date.
// A parseable but differently shaped string (for example "2026-1-2") would
// break lexicographic comparison, so the length is checked as well.
func ValidEventDate(s string) bool {
	if len(s) != len(ISODate) {
		return false
	}
	_, err := time.Parse(ISODate, s)
	return err == nil
}

// EventFilter narrows a listing by free-text query and/or derived status.
type EventFilter struct {
	Query  string
	Status EventStatus
}

// Matches reports whether the event passes the filter. The query matches
// case-insensitively against name or venue substrings.
func (f EventFilter) Matches(e EventWithStatus) bool {
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(e.Name), q) &&
			!strings.Contains(strings.ToLower(e.Venue), q) {
			return false
		}
	}
	if f.Status != "" && e.Status != f.Status {
		return false
	}
	return true
}
