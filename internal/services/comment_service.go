package services

import (
	"context"
	"strings"

	"github.com/gatherhub/server/internal/models"
)

// CommentService owns comments and cohosts. Comments are tied to a
// registered user; cohosts are free-form and open to any caller.
type CommentService struct {
	comments models.CommentsRepo
	events   models.EventsRepo
}

func NewCommentService(comments models.CommentsRepo, events models.EventsRepo) *CommentService {
	return &CommentService{
		comments: comments,
		events:   events,
	}
}

// Add posts a comment as the acting registered user. Guests, registrants
// and the organizer cannot comment.
func (cs *CommentService) Add(ctx context.Context, actor models.Actor, eventID int64, text string) (*models.Comment, error) {
	switch actor.Kind {
	case models.ActorUser:
	case models.ActorOrganizer, models.ActorRegistrant, models.ActorGuest:
		return nil, models.ErrUnauthorized
	default:
		return nil, models.ErrUnauthorized
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, models.NewValidationError("text", "comment text is required")
	}

	if _, err := cs.events.GetEvent(ctx, eventID); err != nil {
		return nil, err
	}

	return cs.comments.CreateComment(ctx, &models.Comment{
		EventID: eventID,
		UserID:  actor.UserID,
		Text:    text,
	})
}

func (cs *CommentService) List(ctx context.Context, eventID int64) ([]models.CommentView, error) {
	return cs.comments.ListComments(ctx, eventID)
}

// Delete moderates a comment away. Organizer-only.
func (cs *CommentService) Delete(ctx context.Context, actor models.Actor, id int64) error {
	if !actor.IsOrganizer() {
		return models.ErrUnauthorized
	}
	return cs.comments.DeleteComment(ctx, id)
}

// AddCohost attaches a cohost to an event. No identity is required and
// the email is not checked against existing users; the event itself is
// not looked up either, matching the deliberately low-friction design.
func (cs *CommentService) AddCohost(ctx context.Context, eventID int64, name, email string) (*models.Cohost, error) {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)
	if eventID == 0 {
		return nil, models.NewValidationError("event_id", "event is required")
	}
	if name == "" {
		return nil, models.NewValidationError("name", "name is required")
	}
	if email == "" {
		return nil, models.NewValidationError("email", "email is required")
	}

	return cs.comments.CreateCohost(ctx, &models.Cohost{
		EventID: eventID,
		Name:    name,
		Email:   email,
	})
}

func (cs *CommentService) ListCohosts(ctx context.Context, eventID int64) ([]models.Cohost, error) {
	return cs.comments.ListCohosts(ctx, eventID)
}
