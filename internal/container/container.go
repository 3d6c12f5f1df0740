package container

import (
	"log/slog"

	"github.com/gatherhub/server/internal/assistant"
	"github.com/gatherhub/server/internal/config"
	"github.com/gatherhub/server/internal/models"
	"github.com/gatherhub/server/internal/services"
	"github.com/gatherhub/server/internal/store"
)

// Container holds all application dependencies
type Container struct {
	Logger *slog.Logger
	Config *config.Config
	Store  *store.Store

	UserService         *services.UserService
	EventService        *services.EventService
	RegistrationService *services.RegistrationService
	CommentService      *services.CommentService
	AssistantService    *services.AssistantService
}

// NewContainer creates a new dependency injection container
func NewContainer(logger *slog.Logger, cfg *config.Config, st *store.Store) *Container {
	repo := models.NewSQLiteRepo(st.DB())
	assistantClient := assistant.New(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, logger)

	return &Container{
		Logger: logger,
		Config: cfg,
		Store:  st,

		UserService:         services.NewUserService(repo),
		EventService:        services.NewEventService(repo),
		RegistrationService: services.NewRegistrationService(repo, repo),
		CommentService:      services.NewCommentService(repo, repo),
		AssistantService:    services.NewAssistantService(assistantClient, repo),
	}
}
