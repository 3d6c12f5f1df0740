package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gatherhub/server/internal/config"
	"github.com/gatherhub/server/internal/helpers"
	"github.com/gatherhub/server/internal/models"
	"github.com/gatherhub/server/internal/services"
)

func setSessionCookie(c *gin.Context, cfg *config.Config, name string, actor models.Actor) error {
	token, err := helpers.SignSession(cfg.SessionSecret, actor)
	if err != nil {
		return err
	}
	c.SetCookie(
		name,
		token,
		int(helpers.SessionTTL.Seconds()),
		"/",
		"", // let Gin pick current domain
		cfg.IsProduction(),
		true,
	)
	return nil
}

func clearCookie(c *gin.Context, cfg *config.Config, name string) {
	c.SetCookie(name, "", -1, "/", "", cfg.IsProduction(), true)
}

// Signup creates a registered user account.
func Signup(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Username string `json:"username" binding:"required"`
			Email    string `json:"email" binding:"required"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		user, err := u.Signup(c.Request.Context(), req.Username, req.Email, req.Password)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(user, "Account created successfully, please login"))
	}
}

// Login authenticates a registered user and establishes the session.
func Login(u *services.UserService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email    string `json:"email" binding:"required,email"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid request payload"))
			return
		}

		user, err := u.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("invalid email or password"))
			return
		}

		actor := models.Actor{
			Kind:     models.ActorUser,
			UserID:   user.ID,
			Username: user.Username,
			Email:    user.Email,
		}
		if err := setSessionCookie(c, cfg, helpers.SessionCookie, actor); err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse("failed to establish session"))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(user, "Welcome back, "+user.Username))
	}
}

// OrganizerLogin authenticates the privileged organizer identity.
func OrganizerLogin(u *services.UserService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Username string `json:"username" binding:"required"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid request payload"))
			return
		}

		org, err := u.OrganizerLogin(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("invalid credentials"))
			return
		}

		actor := models.Actor{Kind: models.ActorOrganizer, Username: org.Username}
		if err := setSessionCookie(c, cfg, helpers.SessionCookie, actor); err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse("failed to establish session"))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{"username": org.Username}, "Admin login successful"))
	}
}

// Logout clears the login session and the registrant marker.
func Logout(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		clearCookie(c, cfg, helpers.SessionCookie)
		clearCookie(c, cfg, helpers.RegistrantCookie)
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Logged out successfully"))
	}
}

// Profile reports the identity resolved for this request.
func Profile() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, models.SuccessResponse(actorFrom(c), ""))
	}
}

// ListUsers is the organizer's registered-user overview.
func ListUsers(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := u.ListUsers(c.Request.Context(), actorFrom(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(users, ""))
	}
}
