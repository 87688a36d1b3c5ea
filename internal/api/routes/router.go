package routes

import (
	"github.com/devmatch/devmatch-go/internal/api/handlers"
	"github.com/devmatch/devmatch-go/internal/api/middleware"
	"github.com/devmatch/devmatch-go/internal/application"
	"github.com/devmatch/devmatch-go/internal/config/db"
	"github.com/devmatch/devmatch-go/internal/relay"
	"github.com/devmatch/devmatch-go/internal/repository"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, hub *relay.Hub, events relay.Publisher) {
	// init
	repos_instance := repository.NewRepositories(db.DB)
	services_instance := application.New(repos_instance, events)
	handlers_instance := handlers.New(services_instance, hub, r)

	// setup
	r.POST("/register", handlers_instance.User.Register)
	r.POST("/login", handlers_instance.User.Login)
	r.POST("/logout", handlers_instance.User.Logout)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/me", handlers_instance.User.Me)
		auth.DELETE("/me", handlers_instance.User.DeleteMe)

		auth.GET("/ws/notifications", handlers_instance.WS.Notifications)
		auth.GET("/ws/requests/:id/chat", handlers_instance.WS.Chat)
		auth.GET("/ws/requests/:id/matches", handlers_instance.WS.Matches)

		profiles := auth.Group("/profiles")
		{
			profiles.GET("/me", handlers_instance.Profile.GetMine)
			profiles.PUT("/me", handlers_instance.Profile.UpsertMine)
			profiles.POST("/me/avatar", handlers_instance.Profile.UploadAvatar)
			profiles.GET("/:id", handlers_instance.Profile.GetPublic)
		}

		requests := auth.Group("/requests")
		{
			requests.POST("", handlers_instance.Request.Create)
			requests.GET("", handlers_instance.Request.ListMine)
			requests.GET("/open", handlers_instance.Request.ListOpen)
			requests.GET("/:id", handlers_instance.Request.GetByID)
			requests.PUT("/:id", handlers_instance.Request.Update)
			requests.PUT("/:id/cancel", handlers_instance.Request.Cancel)
			requests.DELETE("/:id", handlers_instance.Request.Delete)

			requests.POST("/:id/applications", handlers_instance.Match.Submit)
			requests.GET("/:id/applications", handlers_instance.Match.ListForRequest)
			requests.GET("/:id/applications/status", handlers_instance.Match.CheckStatus)

			requests.POST("/:id/messages", handlers_instance.Chat.Send)
			requests.GET("/:id/messages", handlers_instance.Chat.List)
			requests.PUT("/:id/messages/read", handlers_instance.Chat.MarkThreadRead)
		}

		applications := auth.Group("/applications")
		{
			applications.PUT("/:id/approve", handlers_instance.Match.Approve)
			applications.PUT("/:id/reject", handlers_instance.Match.Reject)
		}

		notifications := auth.Group("/notifications")
		{
			notifications.GET("", handlers_instance.Notification.List)
			notifications.GET("/unread-count", handlers_instance.Notification.UnreadCount)
			notifications.PUT("/:id/read", handlers_instance.Notification.MarkRead)
			notifications.PUT("/read-all", handlers_instance.Notification.MarkAllRead)
		}
	}
}
