package application

import (
	"encoding/json"
	"fmt"

	"github.com/devmatch/devmatch-go/internal/domain/notification"
	"github.com/devmatch/devmatch-go/internal/relay"
	"github.com/devmatch/devmatch-go/internal/repository"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type NotificationService struct {
	Repos  *repository.Repos
	Events relay.Publisher
}

func NewNotificationService(repos *repository.Repos, events relay.Publisher) *NotificationService {
	return &NotificationService{
		Repos:  repos,
		Events: events,
	}
}

// Push inserts a notification row and publishes it on the owner's topic.
// actionData carries the denormalized fields needed to act on the
// notification without a re-fetch.
func (s *NotificationService) Push(userID uint, entityType notification.EntityType, notifType notification.Type, relatedID, title, message string, actionData map[string]interface{}) (*notification.Notification, error) {
	var payload datatypes.JSON
	if actionData != nil {
		raw, err := json.Marshal(actionData)
		if err != nil {
			return nil, fmt.Errorf("failed to encode action data: %w", err)
		}
		payload = datatypes.JSON(raw)
	}

	n := &notification.Notification{
		ID:               uuid.NewString(),
		UserID:           userID,
		EntityType:       entityType,
		NotificationType: notifType,
		RelatedEntityID:  relatedID,
		Title:            title,
		Message:          message,
		ActionData:       payload,
	}

	if err := s.Repos.Notification.Create(n); err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	s.Events.Publish(relay.NotificationTopic(userID), relay.Event{
		Kind:    relay.EventInsert,
		Payload: n,
	})

	return n, nil
}

func (s *NotificationService) ListForUser(userID uint) ([]notification.Notification, error) {
	return s.Repos.Notification.ListByUserID(userID)
}

func (s *NotificationService) MarkRead(id string, userID uint) error {
	affected, err := s.Repos.Notification.MarkRead(id, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (s *NotificationService) MarkAllRead(userID uint) error {
	return s.Repos.Notification.MarkAllRead(userID)
}

func (s *NotificationService) UnreadCount(userID uint) (int64, error) {
	return s.Repos.Notification.CountUnread(userID)
}
