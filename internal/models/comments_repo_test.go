package models_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gatherhub/server/internal/models"
)

func TestCommentsOrderedMostRecentFirst(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	event := mustCreateEvent(t, repo, "Launch", "2099-01-01", "Hall A")
	user := mustCreateUser(t, repo, "ama", "ama@example.com")

	for i, c := range []struct{ text, ts string }{
		{"first", "2026-01-01 10:00:00"},
		{"second", "2026-01-01 11:00:00"},
		{"third", "2026-01-01 12:00:00"},
	} {
		if _, err := repo.CreateComment(ctx, &models.Comment{
			EventID: event.ID, UserID: user.ID, Text: c.text, Timestamp: c.ts,
		}); err != nil {
			t.Fatalf("comment %d: %v", i, err)
		}
	}

	views, err := repo.ListComments(ctx, event.ID)
	if err != nil {
		t.Fatalf("ListComments: %v", err)
	}
	if len(views) != 3 {
		t.Fatalf("got %d comments, want 3", len(views))
	}
	for i, want := range []string{"third", "second", "first"} {
		if views[i].Text != want {
			t.Errorf("views[%d].Text = %q, want %q", i, views[i].Text, want)
		}
	}
	if views[0].Username != "ama" {
		t.Errorf("Username = %q, want ama", views[0].Username)
	}
}

func TestDeleteComment(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	event := mustCreateEvent(t, repo, "Launch", "2099-01-01", "Hall A")
	user := mustCreateUser(t, repo, "ama", "ama@example.com")

	comment, err := repo.CreateComment(ctx, &models.Comment{
		EventID: event.ID, UserID: user.ID, Text: "hello",
	})
	if err != nil {
		t.Fatalf("CreateComment: %v", err)
	}

	if err := repo.DeleteComment(ctx, comment.ID); err != nil {
		t.Fatalf("DeleteComment: %v", err)
	}
	if err := repo.DeleteComment(ctx, comment.ID); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("second delete error = %v, want ErrNotFound", err)
	}
}

func TestCohostsRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	event := mustCreateEvent(t, repo, "Launch", "2099-01-01", "Hall A")

	cohost, err := repo.CreateCohost(ctx, &models.Cohost{
		EventID: event.ID, Name: "Kojo", Email: "kojo@example.com",
	})
	if err != nil {
		t.Fatalf("CreateCohost: %v", err)
	}
	if cohost.ID == 0 {
		t.Fatal("cohost has no id")
	}

	cohosts, err := repo.ListCohosts(ctx, event.ID)
	if err != nil {
		t.Fatalf("ListCohosts: %v", err)
	}
	if len(cohosts) != 1 || cohosts[0].Name != "Kojo" {
		t.Fatalf("unexpected cohost listing: %+v", cohosts)
	}
}
