package handlers

import (
	"github.com/devmatch/devmatch-go/internal/application"
	"github.com/devmatch/devmatch-go/internal/relay"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	User         *UserHandler
	Profile      *ProfileHandler
	Request      *RequestHandler
	Match        *MatchHandler
	Notification *NotificationHandler
	Chat         *ChatHandler
	WS           *WSHandler
	Router       *gin.Engine
}

func New(svc *application.Services, hub *relay.Hub, router *gin.Engine) *Handlers {
	h := &Handlers{
		User:         NewUserHandler(svc.User),
		Profile:      NewProfileHandler(svc.Profile),
		Request:      NewRequestHandler(svc.Request),
		Match:        NewMatchHandler(svc.Match),
		Notification: NewNotificationHandler(svc.Notification),
		Chat:         NewChatHandler(svc.Chat),
		WS:           NewWSHandler(hub, svc.Request, svc.Chat),
		Router:       router,
	}
	return h
}
