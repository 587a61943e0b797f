package events

import (
	"time"

	"github.com/spec-kit/shift-scheduler/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventShiftCreated     EventType = "shift_created"
	EventTimeOffRequested EventType = "time_off_requested"
	EventTimeOffDecided   EventType = "time_off_decided"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	OrgID     string      `json:"org_id"`
	ActorID   string      `json:"actor_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// ShiftCreatedPayload payload.
type ShiftCreatedPayload struct {
	ScheduleID string    `json:"schedule_id"`
	Title      *string   `json:"title,omitempty"`
	StartTS    time.Time `json:"start_ts"`
	EndTS      time.Time `json:"end_ts"`
	UserID     *string   `json:"user_id,omitempty"`
}

// TimeOffRequestedPayload payload.
type TimeOffRequestedPayload struct {
	RequestID string `json:"request_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// TimeOffDecidedPayload payload.
type TimeOffDecidedPayload struct {
	RequestID string               `json:"request_id"`
	Status    domain.TimeOffStatus `json:"status"`
}
