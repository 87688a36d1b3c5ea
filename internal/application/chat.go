package application

import (
	"errors"
	"fmt"
	"log"

	"github.com/devmatch/devmatch-go/internal/domain/chat"
	"github.com/devmatch/devmatch-go/internal/domain/notification"
	"github.com/devmatch/devmatch-go/internal/domain/request"
	"github.com/devmatch/devmatch-go/internal/relay"
	"github.com/devmatch/devmatch-go/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatService struct {
	Repos    *repository.Repos
	Events   relay.Publisher
	Notifier *NotificationService
}

func NewChatService(repos *repository.Repos, events relay.Publisher, notifier *NotificationService) *ChatService {
	return &ChatService{
		Repos:    repos,
		Events:   events,
		Notifier: notifier,
	}
}

// isParticipant reports whether userID may read or write the request's chat
// thread: the owning client, the selected developer, or any applicant.
func (s *ChatService) isParticipant(req *request.HelpRequest, userID uint) (bool, error) {
	if req.ClientID == userID {
		return true, nil
	}
	if req.SelectedDeveloperID != nil && *req.SelectedDeveloperID == userID {
		return true, nil
	}
	_, err := s.Repos.Match.GetByRequestAndDeveloper(req.ID, userID)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, err
}

// Send appends a message to the request's thread and notifies the receiver.
func (s *ChatService) Send(requestID string, senderID uint, input chat.SendMessageDTO) (*chat.ChatMessage, error) {
	req, err := s.Repos.Request.GetByID(requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}

	for _, uid := range []uint{senderID, input.ReceiverID} {
		ok, err := s.isParticipant(&req, uid)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrNotParticipant
		}
	}

	msg := &chat.ChatMessage{
		ID:            uuid.NewString(),
		HelpRequestID: requestID,
		SenderID:      senderID,
		ReceiverID:    input.ReceiverID,
		Message:       input.Message,
	}
	if err := s.Repos.Chat.Create(msg); err != nil {
		return nil, err
	}

	if _, err := s.Notifier.Push(
		input.ReceiverID,
		notification.EntityMessage,
		notification.TypeNewMessage,
		msg.ID,
		"New message",
		fmt.Sprintf("New message on %q", req.Title),
		map[string]interface{}{
			"message_id": msg.ID,
			"request_id": requestID,
			"sender_id":  senderID,
		},
	); err != nil {
		log.Printf("failed to notify user %d of new message: %v", input.ReceiverID, err)
	}

	s.Events.Publish(relay.ChatTopic(requestID), relay.Event{
		Kind:    relay.EventInsert,
		Payload: msg,
	})

	return msg, nil
}

// ListForRequest returns the thread oldest-first for a participant.
func (s *ChatService) ListForRequest(requestID string, userID uint) ([]chat.ChatMessage, error) {
	req, err := s.Repos.Request.GetByID(requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	ok, err := s.isParticipant(&req, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotParticipant
	}
	return s.Repos.Chat.ListByRequestID(requestID)
}

// MarkThreadRead flips is_read on every message addressed to the reader.
func (s *ChatService) MarkThreadRead(requestID string, readerID uint) error {
	return s.Repos.Chat.MarkThreadRead(requestID, readerID)
}
