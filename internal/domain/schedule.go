package domain

import "time"

// Schedule is a single shift: a time-bounded work assignment belonging to
// exactly one organization. UserID is nil for an open (unassigned) shift.
type Schedule struct {
	ID        string
	OrgID     string
	Title     *string
	StartTS   time.Time
	EndTS     time.Time
	UserID    *string
	CreatedBy string
	CreatedAt time.Time
}

// DisplayTitle returns the calendar label for the shift: the stored title
// when present, otherwise "Assigned" or "Open" depending on whether a
// user is attached.
func (s *Schedule) DisplayTitle() string {
	if s.Title != nil && *s.Title != "" {
		return *s.Title
	}
	if s.UserID != nil {
		return "Assigned"
	}
	return "Open"
}
