package services_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/gatherhub/server/internal/models"
	"github.com/gatherhub/server/internal/store"
)

var (
	organizer = models.Actor{Kind: models.ActorOrganizer, Username: "admin"}
	guest     = models.Guest()
)

func userActor(id int64, username, email string) models.Actor {
	return models.Actor{Kind: models.ActorUser, UserID: id, Username: username, Email: email}
}

func registrantActor(email string) models.Actor {
	return models.Actor{Kind: models.ActorRegistrant, Email: email}
}

func newTestRepo(t *testing.T) *models.SQLiteRepo {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return models.NewSQLiteRepo(st.DB())
}

func mustCreateUserRow(t *testing.T, repo *models.SQLiteRepo, username, email string) *models.User {
	t.Helper()
	user, err := repo.CreateUser(context.Background(), &models.User{
		Username: username,
		Email:    email,
		Password: "hash",
	})
	if err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}
