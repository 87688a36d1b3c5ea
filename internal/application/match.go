package application

import (
	"errors"
	"fmt"
	"log"

	"github.com/devmatch/devmatch-go/internal/domain/match"
	"github.com/devmatch/devmatch-go/internal/domain/notification"
	"github.com/devmatch/devmatch-go/internal/domain/profile"
	"github.com/devmatch/devmatch-go/internal/domain/request"
	"github.com/devmatch/devmatch-go/internal/relay"
	"github.com/devmatch/devmatch-go/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MatchService struct {
	Repos    *repository.Repos
	Events   relay.Publisher
	Notifier *NotificationService
}

func NewMatchService(repos *repository.Repos, events relay.Publisher, notifier *NotificationService) *MatchService {
	return &MatchService{
		Repos:    repos,
		Events:   events,
		Notifier: notifier,
	}
}

// Submit creates the developer's application, or updates the existing row for
// the same (request, developer) pair: resubmission is idempotent, never a
// duplicate.
func (s *MatchService) Submit(requestID string, developerID uint, input match.SubmitMatchDTO) (*match.Match, error) {
	if input.ProposedRate > match.MaxProposedRate {
		return nil, ErrRateTooHigh
	}

	req, err := s.Repos.Request.GetByID(requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	if !req.Status.OpenForApplications() {
		return nil, ErrRequestClosed
	}

	devProfile, profErr := s.Repos.Profile.GetByUserID(developerID)
	score := scoreMatch(&req, &devProfile)

	existing, err := s.Repos.Match.GetByRequestAndDeveloper(requestID, developerID)
	if err == nil {
		existing.ProposedMessage = input.Message
		existing.ProposedRate = input.ProposedRate
		existing.ProposedDuration = input.ProposedDuration
		existing.MatchScore = score
		if err := s.Repos.Match.Save(&existing); err != nil {
			return nil, err
		}
		s.Events.Publish(relay.MatchTopic(requestID), relay.Event{
			Kind:    relay.EventUpdate,
			Payload: existing,
		})
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	m := &match.Match{
		ID:               uuid.NewString(),
		RequestID:        requestID,
		DeveloperID:      developerID,
		Status:           match.StatusPending,
		ProposedMessage:  input.Message,
		ProposedRate:     input.ProposedRate,
		ProposedDuration: input.ProposedDuration,
		MatchScore:       score,
	}
	if err := s.Repos.Match.Create(m); err != nil {
		// a concurrent submission for the same pair won the race; the unique
		// index on (request_id, developer_id) rejects the second insert
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrConflict
		}
		return nil, err
	}

	developerName := profile.PlaceholderName
	if profErr == nil && devProfile.DisplayName != "" {
		developerName = devProfile.DisplayName
	}
	if _, err := s.Notifier.Push(
		req.ClientID,
		notification.EntityApplication,
		notification.TypeNewApplication,
		m.ID,
		"New application",
		fmt.Sprintf("%s applied to %q", developerName, req.Title),
		map[string]interface{}{
			"application_id": m.ID,
			"request_id":     requestID,
			"developer_name": developerName,
		},
	); err != nil {
		// the application itself is committed; the client can still find it
		// by refreshing the request
		log.Printf("failed to notify client %d of new application: %v", req.ClientID, err)
	}

	s.Events.Publish(relay.MatchTopic(requestID), relay.Event{
		Kind:    relay.EventInsert,
		Payload: m,
	})

	return m, nil
}

// ListForRequest returns the request's applications denormalized with each
// developer's public profile. A missing profile never fails the list; the
// placeholder is substituted instead.
func (s *MatchService) ListForRequest(requestID string) ([]match.WithDeveloper, error) {
	matches, err := s.Repos.Match.ListByRequestID(requestID)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.DeveloperID)
	}
	profiles, err := s.Repos.Profile.ListByUserIDs(ids)
	if err != nil {
		return nil, err
	}
	byUser := make(map[uint]profile.Public, len(profiles))
	for _, p := range profiles {
		byUser[p.UserID] = p.ToPublic()
	}

	result := make([]match.WithDeveloper, 0, len(matches))
	for _, m := range matches {
		dev, ok := byUser[m.DeveloperID]
		if !ok {
			dev = profile.Placeholder(m.DeveloperID)
		}
		result = append(result, match.WithDeveloper{Match: m, Developer: dev})
	}
	return result, nil
}

// Approve marks the application approved, selects its developer on the parent
// request, and cascade-rejects every sibling still pending, all in one
// transaction. Siblings that were already terminal are untouched.
func (s *MatchService) Approve(matchID string, actingClientID uint) (*match.Match, error) {
	m, err := s.Repos.Match.GetByID(matchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}

	req, err := s.Repos.Request.GetByID(m.RequestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	if req.ClientID != actingClientID {
		return nil, ErrNotOwner
	}
	if m.Status != match.StatusPending {
		return nil, ErrMatchNotPending
	}

	// captured before the cascade so the losers can be notified afterwards
	siblings, err := s.Repos.Match.ListPendingForRequest(m.RequestID, m.ID)
	if err != nil {
		return nil, err
	}

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		m.Status = match.StatusApproved
		if err := tx.Match.Save(&m); err != nil {
			return fmt.Errorf("failed to approve application: %w", err)
		}

		req.Status = request.StatusApproved
		req.SelectedDeveloperID = &m.DeveloperID
		if err := tx.Request.Save(&req); err != nil {
			return fmt.Errorf("failed to update request status: %w", err)
		}

		if _, err := tx.Match.RejectPending(m.RequestID, m.ID); err != nil {
			return fmt.Errorf("failed to cascade-reject siblings: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyDecision(&m, &req, notification.TypeApplicationApproved, "Application approved",
		fmt.Sprintf("Your application for %q was approved", req.Title))
	for i := range siblings {
		sib := siblings[i]
		sib.Status = match.StatusRejected
		s.notifyDecision(&sib, &req, notification.TypeApplicationRejected, "Application rejected",
			fmt.Sprintf("Your application for %q was not selected", req.Title))
	}

	s.Events.Publish(relay.MatchTopic(m.RequestID), relay.Event{
		Kind:    relay.EventUpdate,
		Payload: m,
	})

	return &m, nil
}

// Reject declines a single application. The parent request and sibling
// applications are untouched.
func (s *MatchService) Reject(matchID string, actingClientID uint) (*match.Match, error) {
	m, err := s.Repos.Match.GetByID(matchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}

	req, err := s.Repos.Request.GetByID(m.RequestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	if req.ClientID != actingClientID {
		return nil, ErrNotOwner
	}
	if m.Status != match.StatusPending {
		return nil, ErrMatchNotPending
	}

	m.Status = match.StatusRejected
	if err := s.Repos.Match.Save(&m); err != nil {
		return nil, err
	}

	s.notifyDecision(&m, &req, notification.TypeApplicationRejected, "Application rejected",
		fmt.Sprintf("Your application for %q was rejected", req.Title))

	s.Events.Publish(relay.MatchTopic(m.RequestID), relay.Event{
		Kind:    relay.EventUpdate,
		Payload: m,
	})

	return &m, nil
}

// CheckStatus returns the developer's current application status on a
// request, or ErrMatchNotFound when none exists.
func (s *MatchService) CheckStatus(requestID string, developerID uint) (match.Status, error) {
	m, err := s.Repos.Match.GetByRequestAndDeveloper(requestID, developerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrMatchNotFound
		}
		return "", err
	}
	return m.Status, nil
}

// notifyDecision reports a status change to the applying developer. Failures
// are logged only: the status change already committed and the developer's
// feed re-fetch will catch up.
func (s *MatchService) notifyDecision(m *match.Match, req *request.HelpRequest, notifType notification.Type, title, message string) {
	if _, err := s.Notifier.Push(
		m.DeveloperID,
		notification.EntityApplicationStatus,
		notifType,
		m.ID,
		title,
		message,
		map[string]interface{}{
			"application_id": m.ID,
			"request_id":     req.ID,
			"status":         string(m.Status),
		},
	); err != nil {
		log.Printf("failed to notify developer %d of %s: %v", m.DeveloperID, notifType, err)
	}
}
