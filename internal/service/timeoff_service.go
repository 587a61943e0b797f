package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/shift-scheduler/internal/domain"
	"github.com/spec-kit/shift-scheduler/internal/events"
	"github.com/spec-kit/shift-scheduler/internal/repository"
	apperrors "github.com/spec-kit/shift-scheduler/pkg/util"
)

// TimeOffSubmitInput describes a staff time-off request payload.
type TimeOffSubmitInput struct {
	StartDate string
	EndDate   string
	Reason    string
}

// TimeOffService coordinates the time-off request workflow.
type TimeOffService struct {
	requests   repository.TimeOffRepository
	dispatcher events.Dispatcher
}

// NewTimeOffService constructs the service.
func NewTimeOffService(requests repository.TimeOffRepository, dispatcher events.Dispatcher) *TimeOffService {
	return &TimeOffService{requests: requests, dispatcher: dispatcher}
}

// Submit inserts a pending request carrying the actor's org and id.
func (s *TimeOffService) Submit(ctx context.Context, actor *domain.Profile, input TimeOffSubmitInput) (*domain.TimeOffRequest, error) {
	if actor == nil {
		return nil, errors.New("actor required")
	}
	if input.StartDate == "" || input.EndDate == "" {
		return nil, errors.New("start and end dates required")
	}

	request := &domain.TimeOffRequest{
		OrgID:     actor.OrgID,
		UserID:    actor.ID,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Reason:    strings.TrimSpace(input.Reason),
		Status:    domain.TimeOffStatusPending,
	}
	if err := s.requests.Create(ctx, request); err != nil {
		return nil, err
	}
	s.publishEvent(ctx, events.Event{
		Type:    events.EventTimeOffRequested,
		OrgID:   request.OrgID,
		ActorID: actor.ID,
		Payload: events.TimeOffRequestedPayload{
			RequestID: request.ID,
			StartDate: request.StartDate,
			EndDate:   request.EndDate,
		},
	})
	return request, nil
}

// ListForOrg returns every request in the organization, newest first.
func (s *TimeOffService) ListForOrg(ctx context.Context, orgID string) ([]domain.TimeOffRequest, error) {
	return s.requests.ListByOrg(ctx, orgID)
}

// Decide sets a request's status to approved or denied, scoped to the
// actor's organization.
func (s *TimeOffService) Decide(ctx context.Context, actor *domain.Profile, requestID string, status domain.TimeOffStatus) error {
	if actor == nil {
		return apperrors.NewUnauthorized("actor required")
	}
	if status != domain.TimeOffStatusApproved && status != domain.TimeOffStatusDenied {
		return apperrors.NewValidationError("status must be approved or denied", nil)
	}

	if err := s.requests.UpdateStatus(ctx, actor.OrgID, requestID, status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("time-off request", map[string]any{"request_id": requestID})
		}
		return apperrors.MapError(err)
	}
	s.publishEvent(ctx, events.Event{
		Type:    events.EventTimeOffDecided,
		OrgID:   actor.OrgID,
		ActorID: actor.ID,
		Payload: events.TimeOffDecidedPayload{
			RequestID: requestID,
			Status:    status,
		},
	})
	return nil
}

func (s *TimeOffService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now()
	_ = s.dispatcher.Publish(ctx, event)
}
