package models_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/gatherhub/server/internal/models"
	"github.com/gatherhub/server/internal/store"
)

func newTestRepo(t *testing.T) *models.SQLiteRepo {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return models.NewSQLiteRepo(st.DB())
}

func mustCreateEvent(t *testing.T, repo *models.SQLiteRepo, name, date, venue string) *models.Event {
	t.Helper()
	event, err := repo.CreateEvent(context.Background(), &models.Event{
		Name:      name,
		Date:      date,
		Venue:     venue,
		CreatedBy: models.OrganizerMarker,
	})
	if err != nil {
		t.Fatalf("failed to create event %q: %v", name, err)
	}
	return event
}

func mustCreateUser(t *testing.T, repo *models.SQLiteRepo, username, email string) *models.User {
	t.Helper()
	user, err := repo.CreateUser(context.Background(), &models.User{
		Username: username,
		Email:    email,
		Password: "hash",
	})
	if err != nil {
		t.Fatalf("failed to create user %q: %v", username, err)
	}
	return user
}
