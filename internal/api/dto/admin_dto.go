package dto

// MemberResponse is an org member row in the admin dashboard.
type MemberResponse struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// AssignmentOption populates the shift-assignment selector. The first
// option is always the open-shift sentinel with an empty value.
type AssignmentOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// AdminOverviewResponse is the full admin dashboard refresh payload.
type AdminOverviewResponse struct {
	TimeOffRequests   []TimeOffResponse  `json:"time_off_requests"`
	Members           []MemberResponse   `json:"members"`
	AssignmentOptions []AssignmentOption `json:"assignment_options"`
}
