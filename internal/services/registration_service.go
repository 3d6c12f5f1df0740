package services

import (
	"context"
	"strings"

	"github.com/gatherhub/server/internal/models"
)

// RegistrationService owns participant registrations. Registering is open
// to every actor kind; the dedup invariant is enforced by the store's
// unique index, so concurrent duplicates cannot both land.
type RegistrationService struct {
	participants models.ParticipantsRepo
	events       models.EventsRepo
}

func NewRegistrationService(participants models.ParticipantsRepo, events models.EventsRepo) *RegistrationService {
	return &RegistrationService{
		participants: participants,
		events:       events,
	}
}

// Register records attendance for an event. The event must exist before
// the insert is attempted; a second registration of the same (event,
// email) pair returns models.ErrAlreadyRegistered, which callers treat as
// a redirect to the existing registration list rather than a failure.
func (rs *RegistrationService) Register(ctx context.Context, eventID int64, name, email string) (*models.Participant, error) {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)
	if name == "" {
		return nil, models.NewValidationError("name", "name is required")
	}
	if email == "" {
		return nil, models.NewValidationError("email", "email is required")
	}
	if eventID == 0 {
		return nil, models.NewValidationError("event_id", "event is required")
	}
	if err := models.Validate.Var(email, "email"); err != nil {
		return nil, models.NewValidationError("email", "email is not valid")
	}

	if _, err := rs.events.GetEvent(ctx, eventID); err != nil {
		return nil, err
	}

	return rs.participants.CreateRegistration(ctx, &models.Participant{
		Name:    name,
		Email:   email,
		EventID: eventID,
	})
}

// Cancel removes a registration by id. Ownership is deliberately not
// checked: any caller holding the id may cancel.
func (rs *RegistrationService) Cancel(ctx context.Context, id int64) error {
	return rs.participants.CancelRegistration(ctx, id)
}

// ListByEmail returns the email's registrations joined with their events,
// ordered by event date ascending with derived statuses.
func (rs *RegistrationService) ListByEmail(ctx context.Context, email string) ([]models.RegistrationView, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return nil, models.NewValidationError("email", "email is required")
	}
	return rs.participants.ListRegistrationsByEmail(ctx, email, models.Today())
}

// NormalizeEmail lowercases and trims an email so the dedup invariant is
// case-insensitive, matching how login emails are stored.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
