package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/shift-scheduler/internal/domain"
	"github.com/spec-kit/shift-scheduler/internal/events"
	"github.com/spec-kit/shift-scheduler/internal/repository"
)

// ShiftCreateInput describes the admin shift creation payload. A nil
// UserID creates an open shift.
type ShiftCreateInput struct {
	Title   string
	StartTS time.Time
	EndTS   time.Time
	UserID  *string
}

// ScheduleService coordinates shift creation and the calendar feed.
type ScheduleService struct {
	schedules  repository.ScheduleRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewScheduleService constructs the service.
func NewScheduleService(schedules repository.ScheduleRepository, dispatcher events.Dispatcher, logger *zap.Logger) *ScheduleService {
	return &ScheduleService{schedules: schedules, dispatcher: dispatcher, logger: logger}
}

// CreateShift inserts a shift for the actor's organization.
func (s *ScheduleService) CreateShift(ctx context.Context, actor *domain.Profile, input ShiftCreateInput) (*domain.Schedule, error) {
	if actor == nil {
		return nil, errors.New("actor required")
	}
	if input.StartTS.IsZero() || input.EndTS.IsZero() {
		return nil, errors.New("start and end required")
	}

	schedule := &domain.Schedule{
		OrgID:     actor.OrgID,
		StartTS:   input.StartTS,
		EndTS:     input.EndTS,
		UserID:    input.UserID,
		CreatedBy: actor.ID,
	}
	if title := strings.TrimSpace(input.Title); title != "" {
		schedule.Title = &title
	}

	if err := s.schedules.Create(ctx, schedule); err != nil {
		return nil, err
	}
	s.publishEvent(ctx, events.Event{
		Type:    events.EventShiftCreated,
		OrgID:   schedule.OrgID,
		ActorID: actor.ID,
		Payload: events.ShiftCreatedPayload{
			ScheduleID: schedule.ID,
			Title:      schedule.Title,
			StartTS:    schedule.StartTS,
			EndTS:      schedule.EndTS,
			UserID:     schedule.UserID,
		},
	})
	return schedule, nil
}

// CalendarWindow returns the shifts visible in the given window for the
// organization. A query failure is logged and yields an empty list so the
// calendar always renders; it never propagates an error.
func (s *ScheduleService) CalendarWindow(ctx context.Context, orgID string, start, end time.Time) []domain.Schedule {
	schedules, err := s.schedules.ListWindow(ctx, orgID, start, end)
	if err != nil {
		s.logger.Error("calendar window query failed",
			zap.String("org_id", orgID),
			zap.Error(err),
		)
		return []domain.Schedule{}
	}
	if schedules == nil {
		return []domain.Schedule{}
	}
	return schedules
}

func (s *ScheduleService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now()
	_ = s.dispatcher.Publish(ctx, event)
}
