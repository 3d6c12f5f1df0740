package services

import (
	"context"

	"github.com/gatherhub/server/internal/assistant"
	"github.com/gatherhub/server/internal/models"
)

// assistantEventLimit caps how many upcoming events are fed to the proxy
// as context.
const assistantEventLimit = 10

// AssistantService couples the chat-assistant proxy with the event store's
// upcoming-events feed.
type AssistantService struct {
	client *assistant.Client
	events models.EventsRepo
}

func NewAssistantService(client *assistant.Client, events models.EventsRepo) *AssistantService {
	return &AssistantService{
		client: client,
		events: events,
	}
}

// Reply answers a visitor message. Failures to load events degrade to an
// empty context, and the proxy itself never errors, so the reply string is
// always usable.
func (as *AssistantService) Reply(ctx context.Context, message string) string {
	events, err := as.events.UpcomingEvents(ctx, models.Today(), assistantEventLimit)
	if err != nil {
		events = nil
	}
	return as.client.Reply(ctx, message, events)
}
