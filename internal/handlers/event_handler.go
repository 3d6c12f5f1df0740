package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gatherhub/server/internal/config"
	"github.com/gatherhub/server/internal/helpers"
	"github.com/gatherhub/server/internal/models"
	"github.com/gatherhub/server/internal/services"
)

// eventForm is the multipart payload for creating and updating events. The
// photo travels as a separate file part.
type eventForm struct {
	Name        string `form:"name"`
	Date        string `form:"date"`
	Venue       string `form:"venue"`
	Description string `form:"description"`
}

// bindEventInput reads the form fields plus the optional photo upload,
// storing the file and returning the filename reference.
func bindEventInput(c *gin.Context, cfg *config.Config) (services.EventInput, error) {
	var form eventForm
	if err := c.ShouldBind(&form); err != nil {
		return services.EventInput{}, models.NewValidationError("", "invalid request payload")
	}

	input := services.EventInput{
		Name:        form.Name,
		Date:        form.Date,
		Venue:       form.Venue,
		Description: form.Description,
	}

	file, err := c.FormFile("photo")
	if err != nil {
		// No file part is fine, the photo is optional.
		return input, nil
	}
	stored, err := helpers.SaveUpload(c, file, cfg.UploadDir)
	if err != nil {
		return services.EventInput{}, err
	}
	input.Photo = stored
	return input, nil
}

// CreateEvent publishes a new event as the acting organizer or user.
func CreateEvent(es *services.EventService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		input, err := bindEventInput(c, cfg)
		if err != nil {
			respondError(c, err)
			return
		}

		event, err := es.Create(c.Request.Context(), actorFrom(c), input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(event, "Event added successfully"))
	}
}

// UpdateEvent replaces an event's fields; organizer only. The existing
// photo is retained unless a new one is uploaded.
func UpdateEvent(es *services.EventService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		input, err := bindEventInput(c, cfg)
		if err != nil {
			respondError(c, err)
			return
		}

		event, err := es.Update(c.Request.Context(), actorFrom(c), id, input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(event, "Event updated successfully"))
	}
}

// DeleteEvent removes an event and its dependents; organizer only.
func DeleteEvent(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		if err := es.Delete(c.Request.Context(), actorFrom(c), id); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Event deleted successfully"))
	}
}

// ListEvents returns events date-ascending, optionally narrowed by the
// q and status query parameters.
func ListEvents(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := models.EventFilter{Query: c.Query("q")}
		switch status := models.EventStatus(c.Query("status")); status {
		case models.StatusUpcoming, models.StatusOngoing, models.StatusCompleted:
			filter.Status = status
		}

		events, err := es.List(c.Request.Context(), filter)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(events, ""))
	}
}

// GetEvent returns one event with its derived status plus its comments
// and cohosts, the full detail view.
func GetEvent(es *services.EventService, cs *services.CommentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}

		event, err := es.Get(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		comments, err := cs.List(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		cohosts, err := cs.ListCohosts(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{
			"event":    event,
			"comments": comments,
			"cohosts":  cohosts,
		}, ""))
	}
}

// MyEvents lists the events the acting registered user has published.
func MyEvents(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		events, err := es.MyEvents(c.Request.Context(), actorFrom(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(events, ""))
	}
}
