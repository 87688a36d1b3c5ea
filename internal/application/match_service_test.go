package application

import (
	"encoding/json"
	"testing"

	"github.com/devmatch/devmatch-go/internal/domain/match"
	"github.com/devmatch/devmatch-go/internal/domain/notification"
	"github.com/devmatch/devmatch-go/internal/domain/profile"
	"github.com/devmatch/devmatch-go/internal/domain/request"
	"github.com/devmatch/devmatch-go/internal/relay"
	"github.com/devmatch/devmatch-go/internal/repository"
	"github.com/devmatch/devmatch-go/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type matchServiceMocks struct {
	request      *mock.MockRequestRepo
	match        *mock.MockMatchRepo
	profile      *mock.MockProfileRepo
	notification *mock.MockNotificationRepo
	hub          *relay.Hub
}

// --------------------- Setup ---------------------
func setupMatchServiceMocks(t *testing.T) (*MatchService, *matchServiceMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	m := &matchServiceMocks{
		request:      mock.NewMockRequestRepo(ctrl),
		match:        mock.NewMockMatchRepo(ctrl),
		profile:      mock.NewMockProfileRepo(ctrl),
		notification: mock.NewMockNotificationRepo(ctrl),
		hub:          relay.NewHub(),
	}
	repos := &repository.Repos{
		Request:      m.request,
		Match:        m.match,
		Profile:      m.profile,
		Notification: m.notification,
	}
	notifier := NewNotificationService(repos, m.hub)
	svc := NewMatchService(repos, m.hub, notifier)
	return svc, m
}

func openRequest() request.HelpRequest {
	return request.HelpRequest{
		ID:            "req-1",
		ClientID:      7,
		Title:         "Fix goroutine leak",
		TechnicalArea: []string{"go"},
		BudgetRange:   request.BudgetUndecided,
		Status:        request.StatusPending,
	}
}

// --------------------- Submit ---------------------
func TestSubmit_NewApplication(t *testing.T) {
	svc, m := setupMatchServiceMocks(t)

	m.request.EXPECT().GetByID("req-1").Return(openRequest(), nil)
	m.profile.EXPECT().GetByUserID(uint(42)).Return(profile.DeveloperProfile{
		UserID:      42,
		DisplayName: "Dana Dev",
		Skills:      []string{"go"},
	}, nil)
	m.match.EXPECT().GetByRequestAndDeveloper("req-1", uint(42)).Return(match.Match{}, gorm.ErrRecordNotFound)
	m.match.EXPECT().Create(gomock.Any()).DoAndReturn(func(created *match.Match) error {
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, match.StatusPending, created.Status)
		assert.Equal(t, "please pick me", created.ProposedMessage)
		return nil
	})
	m.notification.EXPECT().Create(gomock.Any()).DoAndReturn(func(n *notification.Notification) error {
		assert.Equal(t, uint(7), n.UserID)
		assert.Equal(t, notification.TypeNewApplication, n.NotificationType)

		var action map[string]interface{}
		assert.NoError(t, json.Unmarshal(n.ActionData, &action))
		assert.NotEmpty(t, action["application_id"])
		assert.Equal(t, "req-1", action["request_id"])
		assert.Equal(t, "Dana Dev", action["developer_name"])
		return nil
	})

	events, cancel := m.hub.Subscribe(relay.MatchTopic("req-1"))
	defer cancel()

	out, err := svc.Submit("req-1", 42, match.SubmitMatchDTO{Message: "please pick me", ProposedRate: 50})
	assert.NoError(t, err)
	assert.Equal(t, match.StatusPending, out.Status)

	e := <-events
	assert.Equal(t, relay.EventInsert, e.Kind)
}

func TestSubmit_ResubmissionUpdatesInPlace(t *testing.T) {
	svc, m := setupMatchServiceMocks(t)

	m.request.EXPECT().GetByID("req-1").Return(openRequest(), nil)
	m.profile.EXPECT().GetByUserID(uint(42)).Return(profile.DeveloperProfile{}, gorm.ErrRecordNotFound)
	existing := match.Match{ID: "match-1", RequestID: "req-1", DeveloperID: 42, Status: match.StatusPending, ProposedMessage: "old"}
	m.match.EXPECT().GetByRequestAndDeveloper("req-1", uint(42)).Return(existing, nil)
	m.match.EXPECT().Save(gomock.Any()).DoAndReturn(func(saved *match.Match) error {
		assert.Equal(t, "match-1", saved.ID)
		assert.Equal(t, "updated pitch", saved.ProposedMessage)
		assert.Equal(t, 60.0, saved.ProposedRate)
		return nil
	})
	// no notification on resubmission

	out, err := svc.Submit("req-1", 42, match.SubmitMatchDTO{Message: "updated pitch", ProposedRate: 60})
	assert.NoError(t, err)
	assert.Equal(t, "match-1", out.ID)
}

func TestSubmit_RateTooHigh(t *testing.T) {
	svc, _ := setupMatchServiceMocks(t)

	_, err := svc.Submit("req-1", 42, match.SubmitMatchDTO{Message: "hi", ProposedRate: 1000000})
	assert.Equal(t, ErrRateTooHigh, err)
}

func TestSubmit_RequestClosed(t *testing.T) {
	svc, m := setupMatchServiceMocks(t)

	req := openRequest()
	req.Status = request.StatusApproved
	m.request.EXPECT().GetByID("req-1").Return(req, nil)

	_, err := svc.Submit("req-1", 42, match.SubmitMatchDTO{Message: "too late"})
	assert.Equal(t, ErrRequestClosed, err)
}

func TestSubmit_ConcurrentDuplicateIsConflict(t *testing.T) {
	svc, m := setupMatchServiceMocks(t)

	m.request.EXPECT().GetByID("req-1").Return(openRequest(), nil)
	m.profile.EXPECT().GetByUserID(uint(42)).Return(profile.DeveloperProfile{}, gorm.ErrRecordNotFound)
	// both racers saw no existing row; this one loses the insert to the
	// unique index and must surface a conflict, not a raw driver error
	m.match.EXPECT().GetByRequestAndDeveloper("req-1", uint(42)).Return(match.Match{}, gorm.ErrRecordNotFound)
	m.match.EXPECT().Create(gomock.Any()).Return(gorm.ErrDuplicatedKey)

	_, err := svc.Submit("req-1", 42, match.SubmitMatchDTO{Message: "racer"})
	assert.Equal(t, ErrConflict, err)
}

func TestSubmit_RequestNotFound(t *testing.T) {
	svc, m := setupMatchServiceMocks(t)

	m.request.EXPECT().GetByID("missing").Return(request.HelpRequest{}, gorm.ErrRecordNotFound)

	_, err := svc.Submit("missing", 42, match.SubmitMatchDTO{Message: "hi"})
	assert.Equal(t, ErrRequestNotFound, err)
}

// --------------------- Approve ---------------------
func TestApprove_CascadesPendingSiblings(t *testing.T) {
	svc, m := setupMatchServiceMocks(t)

	winner := match.Match{ID: "match-1", RequestID: "req-1", DeveloperID: 42, Status: match.StatusPending}
	siblings := []match.Match{
		{ID: "match-2", RequestID: "req-1", DeveloperID: 43, Status: match.StatusPending},
		{ID: "match-3", RequestID: "req-1", DeveloperID: 44, Status: match.StatusPending},
	}

	m.match.EXPECT().GetByID("match-1").Return(winner, nil)
	m.request.EXPECT().GetByID("req-1").Return(openRequest(), nil)
	m.match.EXPECT().ListPendingForRequest("req-1", "match-1").Return(siblings, nil)
	m.match.EXPECT().Save(gomock.Any()).DoAndReturn(func(saved *match.Match) error {
		assert.Equal(t, match.StatusApproved, saved.Status)
		return nil
	})
	m.request.EXPECT().Save(gomock.Any()).DoAndReturn(func(saved *request.HelpRequest) error {
		assert.Equal(t, request.StatusApproved, saved.Status)
		if assert.NotNil(t, saved.SelectedDeveloperID) {
			assert.Equal(t, uint(42), *saved.SelectedDeveloperID)
		}
		return nil
	})
	m.match.EXPECT().RejectPending("req-1", "match-1").Return(int64(2), nil)

	var notified []*notification.Notification
	m.notification.EXPECT().Create(gomock.Any()).DoAndReturn(func(n *notification.Notification) error {
		notified = append(notified, n)
		return nil
	}).Times(3)

	out, err := svc.Approve("match-1", 7)
	assert.NoError(t, err)
	assert.Equal(t, match.StatusApproved, out.Status)

	byUser := make(map[uint]notification.Type)
	for _, n := range notified {
		byUser[n.UserID] = n.NotificationType
	}
	assert.Equal(t, notification.TypeApplicationApproved, byUser[42])
	assert.Equal(t, notification.TypeApplicationRejected, byUser[43])
	assert.Equal(t, notification.TypeApplicationRejected, byUser[44])
}

func TestApprove_NotOwner(t *testing.T) {
	svc, m := setupMatchServiceMocks(t)

	m.match.EXPECT().GetByID("match-1").Return(match.Match{ID: "match-1", RequestID: "req-1", Status: match.StatusPending}, nil)
	m.request.EXPECT().GetByID("req-1").Return(openRequest(), nil)

	_, err := svc.Approve("match-1", 99)
	assert.Equal(t, ErrNotOwner, err)
}

func TestApprove_NotPending(t *testing.T) {
	svc, m := setupMatchServiceMocks(t)

	m.match.EXPECT().GetByID("match-1").Return(match.Match{ID: "match-1", RequestID: "req-1", Status: match.StatusRejected}, nil)
	m.request.EXPECT().GetByID("req-1").Return(openRequest(), nil)

	_, err := svc.Approve("match-1", 7)
	assert.Equal(t, ErrMatchNotPending, err)
}

func TestApprove_MatchNotFound(t *testing.T) {
	svc, m := setupMatchServiceMocks(t)

	m.match.EXPECT().GetByID("missing").Return(match.Match{}, gorm.ErrRecordNotFound)

	_, err := svc.Approve("missing", 7)
	assert.Equal(t, ErrMatchNotFound, err)
}

// --------------------- Reject ---------------------
func TestReject_SingleApplication(t *testing.T) {
	svc, m := setupMatchServiceMocks(t)

	m.match.EXPECT().GetByID("match-1").Return(match.Match{ID: "match-1", RequestID: "req-1", DeveloperID: 42, Status: match.StatusPending}, nil)
	m.request.EXPECT().GetByID("req-1").Return(openRequest(), nil)
	m.match.EXPECT().Save(gomock.Any()).DoAndReturn(func(saved *match.Match) error {
		assert.Equal(t, match.StatusRejected, saved.Status)
		return nil
	})
	m.notification.EXPECT().Create(gomock.Any()).DoAndReturn(func(n *notification.Notification) error {
		assert.Equal(t, uint(42), n.UserID)
		assert.Equal(t, notification.TypeApplicationRejected, n.NotificationType)
		return nil
	})

	out, err := svc.Reject("match-1", 7)
	assert.NoError(t, err)
	assert.Equal(t, match.StatusRejected, out.Status)
}

func TestReject_NotOwner(t *testing.T) {
	svc, m := setupMatchServiceMocks(t)

	m.match.EXPECT().GetByID("match-1").Return(match.Match{ID: "match-1", RequestID: "req-1", Status: match.StatusPending}, nil)
	m.request.EXPECT().GetByID("req-1").Return(openRequest(), nil)

	_, err := svc.Reject("match-1", 99)
	assert.Equal(t, ErrNotOwner, err)
}

// --------------------- CheckStatus ---------------------
func TestCheckStatus(t *testing.T) {
	svc, m := setupMatchServiceMocks(t)

	m.match.EXPECT().GetByRequestAndDeveloper("req-1", uint(42)).Return(match.Match{Status: match.StatusApproved}, nil)

	status, err := svc.CheckStatus("req-1", 42)
	assert.NoError(t, err)
	assert.Equal(t, match.StatusApproved, status)
}

func TestCheckStatus_NoApplication(t *testing.T) {
	svc, m := setupMatchServiceMocks(t)

	m.match.EXPECT().GetByRequestAndDeveloper("req-1", uint(42)).Return(match.Match{}, gorm.ErrRecordNotFound)

	_, err := svc.CheckStatus("req-1", 42)
	assert.Equal(t, ErrMatchNotFound, err)
}

// --------------------- ListForRequest ---------------------
func TestListForRequest_PlaceholderForMissingProfile(t *testing.T) {
	svc, m := setupMatchServiceMocks(t)

	matches := []match.Match{
		{ID: "match-1", RequestID: "req-1", DeveloperID: 42},
		{ID: "match-2", RequestID: "req-1", DeveloperID: 43},
	}
	m.match.EXPECT().ListByRequestID("req-1").Return(matches, nil)
	m.profile.EXPECT().ListByUserIDs([]uint{42, 43}).Return([]profile.DeveloperProfile{
		{UserID: 42, DisplayName: "Dana Dev", Skills: []string{"go"}},
	}, nil)

	out, err := svc.ListForRequest("req-1")
	assert.NoError(t, err)
	assert.Len(t, out, 2)
	assert.Equal(t, "Dana Dev", out[0].Developer.Name)
	assert.Equal(t, profile.PlaceholderName, out[1].Developer.Name)
	assert.NotNil(t, out[1].Developer.Skills)
}
