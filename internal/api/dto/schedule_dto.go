package dto

import "time"

// CreateShiftRequest payload for admin shift creation. An empty user_id
// creates an open shift.
type CreateShiftRequest struct {
	Title   string  `json:"title"`
	StartTS string  `json:"start_ts"`
	EndTS   string  `json:"end_ts"`
	UserID  *string `json:"user_id"`
}

// ShiftResponse full shift record.
type ShiftResponse struct {
	ID        string    `json:"id"`
	OrgID     string    `json:"org_id"`
	Title     *string   `json:"title"`
	StartTS   time.Time `json:"start_ts"`
	EndTS     time.Time `json:"end_ts"`
	UserID    *string   `json:"user_id"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// CalendarEvent is the display tuple the calendar widget consumes.
type CalendarEvent struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}
