package dto

import "time"

// SubmitTimeOffRequest payload for a staff time-off submission.
type SubmitTimeOffRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

// TimeOffResponse full time-off record. Pending carries the approve/deny
// affordance flag for admin rendering.
type TimeOffResponse struct {
	ID        string    `json:"id"`
	OrgID     string    `json:"org_id"`
	UserID    string    `json:"user_id"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	Reason    string    `json:"reason"`
	Status    string    `json:"status"`
	Pending   bool      `json:"pending"`
	CreatedAt time.Time `json:"created_at"`
}
