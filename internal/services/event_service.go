package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/gatherhub/server/internal/models"
)

// EventService owns event records and the status derivation used by every
// listing. All mutating operations take the acting identity explicitly.
type EventService struct {
	events models.EventsRepo
}

func NewEventService(events models.EventsRepo) *EventService {
	return &EventService{
		events: events,
	}
}

type EventInput struct {
	Name        string `json:"name"`
	Date        string `json:"date"`
	Venue       string `json:"venue"`
	Description string `json:"description"`
	Photo       string `json:"photo"`
}

func (in *EventInput) sanitize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Date = strings.TrimSpace(in.Date)
	in.Venue = strings.TrimSpace(in.Venue)
	in.Description = strings.TrimSpace(in.Description)
}

func (in EventInput) validate() error {
	if in.Name == "" {
		return models.NewValidationError("name", "name is required")
	}
	if in.Date == "" {
		return models.NewValidationError("date", "date is required")
	}
	if !models.ValidEventDate(in.Date) {
		return models.NewValidationError("date", "date must be a calendar date in YYYY-MM-DD form")
	}
	if in.Venue == "" {
		return models.NewValidationError("venue", "venue is required")
	}
	return nil
}

// Create publishes a new event. Organizers and registered users may
// create; attribution is the organizer marker or the user's email.
// Duplicate name/date/venue combinations are permitted, recurring events
// get re-listed.
func (es *EventService) Create(ctx context.Context, actor models.Actor, input EventInput) (*models.Event, error) {
	createdBy, ok := actor.CreatedByValue()
	if !ok {
		return nil, models.ErrUnauthorized
	}

	input.sanitize()
	if err := input.validate(); err != nil {
		return nil, err
	}

	event := &models.Event{
		Name:        input.Name,
		Date:        input.Date,
		Venue:       input.Venue,
		Description: input.Description,
		Photo:       input.Photo,
		CreatedBy:   createdBy,
	}
	created, err := es.events.CreateEvent(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return created, nil
}

// Update is organizer-only. An empty Photo keeps the existing filename
// reference; anything else replaces it.
func (es *EventService) Update(ctx context.Context, actor models.Actor, id int64, input EventInput) (*models.Event, error) {
	if !actor.IsOrganizer() {
		return nil, models.ErrUnauthorized
	}

	input.sanitize()
	if err := input.validate(); err != nil {
		return nil, err
	}

	existing, err := es.events.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	photo := existing.Photo
	if input.Photo != "" {
		photo = input.Photo
	}

	existing.Name = input.Name
	existing.Date = input.Date
	existing.Venue = input.Venue
	existing.Description = input.Description
	existing.Photo = photo

	return es.events.UpdateEvent(ctx, existing)
}

// Delete is organizer-only and removes dependent registrations, comments
// and cohosts along with the event.
func (es *EventService) Delete(ctx context.Context, actor models.Actor, id int64) error {
	if !actor.IsOrganizer() {
		return models.ErrUnauthorized
	}
	return es.events.DeleteEvent(ctx, id)
}

// List returns events ordered by date ascending with the status derived
// against today's UTC date, narrowed by the filter.
func (es *EventService) List(ctx context.Context, filter models.EventFilter) ([]models.EventWithStatus, error) {
	events, err := es.events.ListEvents(ctx)
	if err != nil {
		return nil, err
	}

	today := models.Today()
	result := make([]models.EventWithStatus, 0, len(events))
	for _, e := range events {
		ev := models.EventWithStatus{Event: e, Status: models.StatusOn(e.Date, today)}
		if filter.Matches(ev) {
			result = append(result, ev)
		}
	}
	return result, nil
}

func (es *EventService) Get(ctx context.Context, id int64) (*models.EventWithStatus, error) {
	event, err := es.events.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.EventWithStatus{Event: *event, Status: models.StatusOn(event.Date, models.Today())}, nil
}

// MyEvents lists the events a registered user has published.
func (es *EventService) MyEvents(ctx context.Context, actor models.Actor) ([]models.EventWithStatus, error) {
	if !actor.IsUser() {
		return nil, models.ErrUnauthorized
	}
	events, err := es.events.ListEventsByCreator(ctx, actor.Email)
	if err != nil {
		return nil, err
	}

	today := models.Today()
	result := make([]models.EventWithStatus, 0, len(events))
	for _, e := range events {
		result = append(result, models.EventWithStatus{Event: e, Status: models.StatusOn(e.Date, today)})
	}
	return result, nil
}

// Upcoming feeds the chat assistant the next events on or after today.
func (es *EventService) Upcoming(ctx context.Context, limit int) ([]models.Event, error) {
	return es.events.UpcomingEvents(ctx, models.Today(), limit)
}
