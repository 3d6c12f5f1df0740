package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gatherhub/server/internal/models"
	"github.com/gatherhub/server/internal/services"
)

// AddComment posts a comment on an event as the acting registered user.
func AddComment(cs *services.CommentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID, ok := parseID(c, "id")
		if !ok {
			return
		}
		var req struct {
			Text string `json:"text"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid request payload"))
			return
		}

		comment, err := cs.Add(c.Request.Context(), actorFrom(c), eventID, req.Text)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(comment, "Comment added successfully"))
	}
}

// ListComments returns an event's comments, most recent first.
func ListComments(cs *services.CommentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID, ok := parseID(c, "id")
		if !ok {
			return
		}
		comments, err := cs.List(c.Request.Context(), eventID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(comments, ""))
	}
}

// DeleteComment moderates a comment away; organizer only.
func DeleteComment(cs *services.CommentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		if err := cs.Delete(c.Request.Context(), actorFrom(c), id); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Comment deleted successfully"))
	}
}

// AddCohost attaches a cohost to an event; open to any caller.
func AddCohost(cs *services.CommentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID, ok := parseID(c, "id")
		if !ok {
			return
		}
		var req struct {
			Name  string `json:"name"`
			Email string `json:"email"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid request payload"))
			return
		}

		cohost, err := cs.AddCohost(c.Request.Context(), eventID, req.Name, req.Email)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(cohost, "Co-host added successfully"))
	}
}
