package application

import (
	"testing"

	"github.com/devmatch/devmatch-go/internal/domain/notification"
	"github.com/devmatch/devmatch-go/internal/relay"
	"github.com/devmatch/devmatch-go/internal/repository"
	"github.com/devmatch/devmatch-go/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

// --------------------- Setup ---------------------
func setupNotificationServiceMocks(t *testing.T) (*NotificationService, *mock.MockNotificationRepo, *relay.Hub) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockNotification := mock.NewMockNotificationRepo(ctrl)
	repos := &repository.Repos{
		Notification: mockNotification,
	}
	hub := relay.NewHub()
	svc := NewNotificationService(repos, hub)
	return svc, mockNotification, hub
}

// --------------------- Push ---------------------
func TestPush_CreatesAndPublishes(t *testing.T) {
	svc, mockNotification, hub := setupNotificationServiceMocks(t)

	mockNotification.EXPECT().Create(gomock.Any()).DoAndReturn(func(n *notification.Notification) error {
		assert.NotEmpty(t, n.ID)
		assert.Equal(t, uint(7), n.UserID)
		assert.False(t, n.IsRead)
		return nil
	})

	events, cancel := hub.Subscribe(relay.NotificationTopic(7))
	defer cancel()

	n, err := svc.Push(7, notification.EntityApplication, notification.TypeNewApplication,
		"match-1", "New application", "Dana Dev applied", map[string]interface{}{"application_id": "match-1"})
	assert.NoError(t, err)
	assert.Equal(t, "New application", n.Title)

	e := <-events
	assert.Equal(t, relay.EventInsert, e.Kind)
}

func TestPush_NilActionData(t *testing.T) {
	svc, mockNotification, _ := setupNotificationServiceMocks(t)

	mockNotification.EXPECT().Create(gomock.Any()).DoAndReturn(func(n *notification.Notification) error {
		assert.Nil(t, n.ActionData)
		return nil
	})

	_, err := svc.Push(7, notification.EntityMessage, notification.TypeNewMessage, "msg-1", "New message", "hi", nil)
	assert.NoError(t, err)
}

// --------------------- MarkRead ---------------------
func TestMarkRead_OwnerOnly(t *testing.T) {
	svc, mockNotification, _ := setupNotificationServiceMocks(t)

	// matching (id, user) pair flips exactly one row
	mockNotification.EXPECT().MarkRead("notif-1", uint(7)).Return(int64(1), nil)
	assert.NoError(t, svc.MarkRead("notif-1", 7))

	// someone else's notification touches nothing
	mockNotification.EXPECT().MarkRead("notif-1", uint(99)).Return(int64(0), nil)
	assert.Equal(t, ErrNotificationNotFound, svc.MarkRead("notif-1", 99))
}

func TestUnreadCount(t *testing.T) {
	svc, mockNotification, _ := setupNotificationServiceMocks(t)

	mockNotification.EXPECT().CountUnread(uint(7)).Return(int64(4), nil)

	count, err := svc.UnreadCount(7)
	assert.NoError(t, err)
	assert.Equal(t, int64(4), count)
}
