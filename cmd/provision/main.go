// Command provision creates an organizer account out of band. Organizers
// have no self-signup endpoint; this is the only way to mint one.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/gatherhub/server/internal/models"
	"github.com/gatherhub/server/internal/services"
	"github.com/gatherhub/server/internal/store"
)

func main() {
	_ = godotenv.Load(".env.local")

	username := flag.String("username", "", "organizer username")
	password := flag.String("password", "", "organizer password")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if *username == "" || *password == "" {
		logger.Error("Both -username and -password are required")
		os.Exit(1)
	}

	// Only the store is needed here, so the session secret required by
	// the full config is not.
	dbPath := os.Getenv("DATABASE_PATH")
	if dbPath == "" {
		dbPath = "events.db"
	}

	st, err := store.Open(dbPath)
	if err != nil {
		logger.Error("Failed to open store", "error", err)
		os.Exit(1)
	}
	defer st.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	userService := services.NewUserService(models.NewSQLiteRepo(st.DB()))
	org, err := userService.ProvisionOrganizer(ctx, *username, *password)
	if err != nil {
		logger.Error("Failed to provision organizer", "error", err)
		os.Exit(1)
	}

	logger.Info("Organizer provisioned", "id", org.ID, "username", org.Username)
}
