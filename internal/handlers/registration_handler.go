package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gatherhub/server/internal/config"
	"github.com/gatherhub/server/internal/helpers"
	"github.com/gatherhub/server/internal/models"
	"github.com/gatherhub/server/internal/services"
)

// Register records attendance for an event. Registering twice with the
// same email is not a failure: the response flags already_registered and
// the caller is expected to show the existing registration list. A
// successful flow leaves a registrant session marker so anonymous
// registrants can view their registrations afterwards.
func Register(rs *services.RegistrationService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			EventID int64  `json:"event_id"`
			Name    string `json:"name"`
			Email   string `json:"email"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid request payload"))
			return
		}

		participant, err := rs.Register(c.Request.Context(), req.EventID, req.Name, req.Email)
		if err != nil && !errors.Is(err, models.ErrAlreadyRegistered) {
			respondError(c, err)
			return
		}

		email := services.NormalizeEmail(req.Email)
		marker := models.Actor{Kind: models.ActorRegistrant, Email: email}
		if cookieErr := setSessionCookie(c, cfg, helpers.RegistrantCookie, marker); cookieErr != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse("failed to establish session"))
			return
		}

		if errors.Is(err, models.ErrAlreadyRegistered) {
			c.JSON(http.StatusOK, gin.H{
				"success":            true,
				"already_registered": true,
				"message":            "You already registered for this event",
			})
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(participant, "Registered successfully"))
	}
}

// MyRegistrations lists registrations for the email tracked by the
// registrant marker, falling back to the logged-in user's email.
func MyRegistrations(rs *services.RegistrationService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := registrationEmail(c, cfg)
		if email == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("please register or log in first"))
			return
		}

		views, err := rs.ListByEmail(c.Request.Context(), email)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(views, ""))
	}
}

// CancelRegistration cancels by registration id. Ownership is not
// verified; any caller holding the id may cancel.
func CancelRegistration(rs *services.RegistrationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		if err := rs.Cancel(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Registration cancelled"))
	}
}

// registrationEmail resolves which email the caller views registrations
// under: the registration marker wins over the login email, because a
// logged-in user may have registered with a different address.
func registrationEmail(c *gin.Context, cfg *config.Config) string {
	if token, err := c.Cookie(helpers.RegistrantCookie); err == nil && token != "" {
		if claims, err := helpers.ValidateSession(cfg.SessionSecret, token); err == nil {
			if marker := claims.Actor(); marker.Kind == models.ActorRegistrant {
				return marker.Email
			}
		}
	}
	return actorFrom(c).RegistrationEmail()
}
