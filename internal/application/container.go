package application

import (
	"github.com/devmatch/devmatch-go/internal/relay"
	"github.com/devmatch/devmatch-go/internal/repository"
)

type Services struct {
	User         *UserService
	Profile      *ProfileService
	Request      *RequestService
	Match        *MatchService
	Notification *NotificationService
	Chat         *ChatService
}

func New(repos *repository.Repos, events relay.Publisher) *Services {
	notifier := NewNotificationService(repos, events)
	return &Services{
		User:         NewUserService(repos),
		Profile:      NewProfileService(repos),
		Request:      NewRequestService(repos),
		Match:        NewMatchService(repos, events, notifier),
		Notification: notifier,
		Chat:         NewChatService(repos, events, notifier),
	}
}
