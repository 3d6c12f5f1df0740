package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gatherhub/server/internal/models"
	"github.com/gatherhub/server/internal/services"
)

func TestCreateEventAttribution(t *testing.T) {
	repo := newTestRepo(t)
	es := services.NewEventService(repo)
	ctx := context.Background()

	input := services.EventInput{Name: "Launch", Date: "2099-01-01", Venue: "Hall A"}

	byOrg, err := es.Create(ctx, organizer, input)
	if err != nil {
		t.Fatalf("organizer create: %v", err)
	}
	if byOrg.CreatedBy != models.OrganizerMarker {
		t.Errorf("organizer created_by = %q, want %q", byOrg.CreatedBy, models.OrganizerMarker)
	}

	byUser, err := es.Create(ctx, userActor(1, "ama", "a@x.com"), input)
	if err != nil {
		t.Fatalf("user create: %v", err)
	}
	if byUser.CreatedBy != "a@x.com" {
		t.Errorf("user created_by = %q, want a@x.com", byUser.CreatedBy)
	}

	// Duplicate name/date/venue combinations are allowed.
	if _, err := es.Create(ctx, organizer, input); err != nil {
		t.Errorf("duplicate event create: %v", err)
	}

	for _, actor := range []models.Actor{guest, registrantActor("a@x.com")} {
		if _, err := es.Create(ctx, actor, input); !errors.Is(err, models.ErrUnauthorized) {
			t.Errorf("%s create error = %v, want ErrUnauthorized", actor.Kind, err)
		}
	}
}

func TestCreateEventValidation(t *testing.T) {
	repo := newTestRepo(t)
	es := services.NewEventService(repo)
	ctx := context.Background()

	cases := []struct {
		name  string
		input services.EventInput
	}{
		{"missing name", services.EventInput{Date: "2099-01-01", Venue: "Hall A"}},
		{"missing date", services.EventInput{Name: "Launch", Venue: "Hall A"}},
		{"missing venue", services.EventInput{Name: "Launch", Date: "2099-01-01"}},
		{"short date", services.EventInput{Name: "Launch", Date: "2099-1-1", Venue: "Hall A"}},
		{"blank name", services.EventInput{Name: "   ", Date: "2099-01-01", Venue: "Hall A"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := es.Create(ctx, organizer, tc.input)
			if !models.IsValidationError(err) {
				t.Errorf("error = %v, want a ValidationError", err)
			}
		})
	}
}

func TestUpdateEventOrganizerOnlyAndPhotoRetention(t *testing.T) {
	repo := newTestRepo(t)
	es := services.NewEventService(repo)
	ctx := context.Background()

	created, err := es.Create(ctx, organizer, services.EventInput{
		Name: "Launch", Date: "2099-01-01", Venue: "Hall A", Photo: "original.png",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := es.Update(ctx, userActor(1, "ama", "a@x.com"), created.ID, services.EventInput{
		Name: "Hijacked", Date: "2099-01-01", Venue: "Hall A",
	}); !errors.Is(err, models.ErrUnauthorized) {
		t.Fatalf("user update error = %v, want ErrUnauthorized", err)
	}

	// No new photo supplied: the existing reference is retained.
	updated, err := es.Update(ctx, organizer, created.ID, services.EventInput{
		Name: "Launch v2", Date: "2099-02-01", Venue: "Hall B",
	})
	if err != nil {
		t.Fatalf("organizer update: %v", err)
	}
	if updated.Photo != "original.png" {
		t.Errorf("photo = %q, want original.png retained", updated.Photo)
	}
	if updated.Name != "Launch v2" || updated.Date != "2099-02-01" {
		t.Errorf("fields not updated: %+v", updated)
	}

	replaced, err := es.Update(ctx, organizer, created.ID, services.EventInput{
		Name: "Launch v2", Date: "2099-02-01", Venue: "Hall B", Photo: "new.png",
	})
	if err != nil {
		t.Fatalf("organizer update with photo: %v", err)
	}
	if replaced.Photo != "new.png" {
		t.Errorf("photo = %q, want new.png", replaced.Photo)
	}

	if _, err := es.Update(ctx, organizer, 999, services.EventInput{
		Name: "Nope", Date: "2099-01-01", Venue: "Hall A",
	}); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("update missing event error = %v, want ErrNotFound", err)
	}
}

func TestDeleteEventOrganizerOnly(t *testing.T) {
	repo := newTestRepo(t)
	es := services.NewEventService(repo)
	ctx := context.Background()

	created, err := es.Create(ctx, organizer, services.EventInput{
		Name: "Launch", Date: "2099-01-01", Venue: "Hall A",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := es.Delete(ctx, userActor(1, "ama", "a@x.com"), created.ID); !errors.Is(err, models.ErrUnauthorized) {
		t.Fatalf("user delete error = %v, want ErrUnauthorized", err)
	}
	if err := es.Delete(ctx, organizer, created.ID); err != nil {
		t.Fatalf("organizer delete: %v", err)
	}
	if _, err := es.Get(ctx, created.ID); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("get after delete error = %v, want ErrNotFound", err)
	}
}

func TestListEventsFilter(t *testing.T) {
	repo := newTestRepo(t)
	es := services.NewEventService(repo)
	ctx := context.Background()

	for _, e := range []services.EventInput{
		{Name: "Go Meetup", Date: "2099-01-01", Venue: "Hall A"},
		{Name: "Jazz Night", Date: "2000-01-01", Venue: "The Go Lounge"},
		{Name: "Book Club", Date: "2099-02-01", Venue: "Library"},
	} {
		if _, err := es.Create(ctx, organizer, e); err != nil {
			t.Fatalf("create %q: %v", e.Name, err)
		}
	}

	all, err := es.List(ctx, models.EventFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d events, want 3", len(all))
	}

	// The query matches name or venue, case-insensitively.
	matched, err := es.List(ctx, models.EventFilter{Query: "go"})
	if err != nil {
		t.Fatalf("list with query: %v", err)
	}
	if len(matched) != 2 {
		t.Errorf("query 'go' matched %d events, want 2", len(matched))
	}

	completed, err := es.List(ctx, models.EventFilter{Status: models.StatusCompleted})
	if err != nil {
		t.Fatalf("list with status: %v", err)
	}
	if len(completed) != 1 || completed[0].Name != "Jazz Night" {
		t.Errorf("completed filter = %+v, want just Jazz Night", completed)
	}
}

func TestMyEvents(t *testing.T) {
	repo := newTestRepo(t)
	es := services.NewEventService(repo)
	ctx := context.Background()
	ama := userActor(1, "ama", "a@x.com")

	if _, err := es.Create(ctx, ama, services.EventInput{Name: "Mine", Date: "2099-01-01", Venue: "Hall A"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := es.Create(ctx, organizer, services.EventInput{Name: "Theirs", Date: "2099-01-01", Venue: "Hall A"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	mine, err := es.MyEvents(ctx, ama)
	if err != nil {
		t.Fatalf("MyEvents: %v", err)
	}
	if len(mine) != 1 || mine[0].Name != "Mine" {
		t.Errorf("MyEvents = %+v, want just Mine", mine)
	}

	if _, err := es.MyEvents(ctx, guest); !errors.Is(err, models.ErrUnauthorized) {
		t.Errorf("guest MyEvents error = %v, want ErrUnauthorized", err)
	}
}
