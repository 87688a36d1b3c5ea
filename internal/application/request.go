package application

import (
	"errors"

	"github.com/devmatch/devmatch-go/internal/domain/request"
	"github.com/devmatch/devmatch-go/internal/repository"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type RequestService struct {
	Repos *repository.Repos
}

func NewRequestService(repos *repository.Repos) *RequestService {
	return &RequestService{
		Repos: repos,
	}
}

// CreateRequest validates the required fields up front and creates the
// request in the pending state.
func (s *RequestService) CreateRequest(clientID uint, input request.CreateRequestDTO) (*request.HelpRequest, error) {
	var missing []string
	if input.Title == "" {
		missing = append(missing, "title")
	}
	if input.Description == "" {
		missing = append(missing, "description")
	}
	if len(input.TechnicalArea) == 0 {
		missing = append(missing, "technical_area")
	}
	if len(input.CommunicationPreference) == 0 {
		missing = append(missing, "communication_preference")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Missing: missing}
	}

	req := &request.HelpRequest{
		ID:                      uuid.NewString(),
		ClientID:                clientID,
		Title:                   input.Title,
		Description:             input.Description,
		TechnicalArea:           datatypes.NewJSONSlice(input.TechnicalArea),
		CommunicationPreference: datatypes.NewJSONSlice(input.CommunicationPreference),
		EstimatedDuration:       input.EstimatedDuration,
		CodeSnippet:             input.CodeSnippet,
		Urgency:                 request.UrgencyMedium,
		BudgetRange:             request.BudgetUndecided,
		Status:                  request.StatusPending,
	}
	if input.Urgency != "" {
		req.Urgency = request.Urgency(input.Urgency)
	}
	if input.BudgetRange != "" {
		req.BudgetRange = request.BudgetRange(input.BudgetRange)
	}

	if err := s.Repos.Request.Create(req); err != nil {
		return nil, err
	}
	return req, nil
}

// ListForClient returns the client's requests newest-first with nested
// application counts.
func (s *RequestService) ListForClient(clientID uint) ([]request.WithCount, error) {
	return s.Repos.Request.ListByClientID(clientID)
}

func (s *RequestService) GetByID(id string) (request.HelpRequest, error) {
	req, err := s.Repos.Request.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return request.HelpRequest{}, ErrRequestNotFound
		}
		return request.HelpRequest{}, err
	}
	return req, nil
}

// UpdateRequest applies partial edits. Only the owning client may edit, and
// id, client_id and status are never editable through this path.
func (s *RequestService) UpdateRequest(id string, clientID uint, input request.UpdateRequestDTO) (*request.HelpRequest, error) {
	req, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if req.ClientID != clientID {
		return nil, ErrNotOwner
	}
	if req.Status.Terminal() {
		return nil, ErrRequestTerminal
	}

	if input.Title != nil {
		req.Title = *input.Title
	}
	if input.Description != nil {
		req.Description = *input.Description
	}
	if input.TechnicalArea != nil {
		req.TechnicalArea = datatypes.NewJSONSlice(input.TechnicalArea)
	}
	if input.Urgency != nil {
		req.Urgency = request.Urgency(*input.Urgency)
	}
	if input.CommunicationPreference != nil {
		req.CommunicationPreference = datatypes.NewJSONSlice(input.CommunicationPreference)
	}
	if input.EstimatedDuration != nil {
		req.EstimatedDuration = *input.EstimatedDuration
	}
	if input.BudgetRange != nil {
		req.BudgetRange = request.BudgetRange(*input.BudgetRange)
	}
	if input.CodeSnippet != nil {
		req.CodeSnippet = *input.CodeSnippet
	}

	if err := s.Repos.Request.Save(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// CancelRequest marks the request cancelled_by_client and records the reason.
// Requests already terminal stay untouched.
func (s *RequestService) CancelRequest(id string, clientID uint, reason string) (*request.HelpRequest, error) {
	req, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if req.ClientID != clientID {
		return nil, ErrNotOwner
	}
	if req.Status.Terminal() {
		return nil, ErrRequestTerminal
	}

	req.Status = request.StatusCancelledByClient
	req.CancellationReason = &reason

	if err := s.Repos.Request.Save(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// ListOpen returns requests still open for applications, newest-first.
func (s *RequestService) ListOpen() ([]request.HelpRequest, error) {
	return s.Repos.Request.ListOpen()
}

// DeleteRequest is the administrative cleanup path; normal flow cancels
// instead of deleting.
func (s *RequestService) DeleteRequest(id string) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.Repos.Request.Delete(id)
}
