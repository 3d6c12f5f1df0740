package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/gatherhub/server/internal/container"
	"github.com/gatherhub/server/internal/handlers"
	"github.com/gatherhub/server/internal/middleware"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(c *container.Container) *gin.Engine {
	if c.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(c.Logger))
	r.Use(gin.Recovery())

	// Identity is resolved once per request; capability checks live in
	// the services, keyed off the resolved actor.
	r.Use(middleware.ResolveActor(c.Config.SessionSecret, c.Logger))

	r.Static("/static/uploads", c.Config.UploadDir)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(200, gin.H{
				"status":  "OK",
				"service": "gatherhub-api",
			})
		})

		// Self-service accounts and sessions.
		v1.POST("/signup", handlers.Signup(c.UserService))
		v1.POST("/login", handlers.Login(c.UserService, c.Config))
		v1.POST("/logout", handlers.Logout(c.Config))
		v1.GET("/profile", handlers.Profile())

		// Organizer session; provisioning happens out of band.
		v1.POST("/admin/login", handlers.OrganizerLogin(c.UserService, c.Config))
		v1.GET("/admin/users", handlers.ListUsers(c.UserService))

		events := v1.Group("/events")
		{
			events.GET("", handlers.ListEvents(c.EventService))
			events.GET("/:id", handlers.GetEvent(c.EventService, c.CommentService))
			events.POST("", handlers.CreateEvent(c.EventService, c.Config))
			events.PUT("/:id", handlers.UpdateEvent(c.EventService, c.Config))
			events.DELETE("/:id", handlers.DeleteEvent(c.EventService))

			events.GET("/:id/comments", handlers.ListComments(c.CommentService))
			events.POST("/:id/comments", handlers.AddComment(c.CommentService))
			events.POST("/:id/cohosts", handlers.AddCohost(c.CommentService))
		}

		v1.GET("/my-events", handlers.MyEvents(c.EventService))

		v1.DELETE("/comments/:id", handlers.DeleteComment(c.CommentService))

		v1.POST("/register", handlers.Register(c.RegistrationService, c.Config))
		v1.GET("/my-registrations", handlers.MyRegistrations(c.RegistrationService, c.Config))
		v1.DELETE("/registrations/:id", handlers.CancelRegistration(c.RegistrationService))

		v1.POST("/chat", handlers.Chat(c.AssistantService))
	}

	return r
}
