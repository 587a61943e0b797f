package domain

import "time"

// TimeOffStatus enumerates the approval workflow states.
type TimeOffStatus string

const (
	TimeOffStatusPending  TimeOffStatus = "pending"
	TimeOffStatusApproved TimeOffStatus = "approved"
	TimeOffStatusDenied   TimeOffStatus = "denied"
)

// TimeOffRequest is a staff-submitted request for approved absence.
// Status starts pending and is mutated only by an admin decision.
type TimeOffRequest struct {
	ID        string
	OrgID     string
	UserID    string
	StartDate string
	EndDate   string
	Reason    string
	Status    TimeOffStatus
	CreatedAt time.Time
}
