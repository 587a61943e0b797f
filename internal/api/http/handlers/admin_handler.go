package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/shift-scheduler/internal/api/dto"
	"github.com/spec-kit/shift-scheduler/internal/auth"
	"github.com/spec-kit/shift-scheduler/internal/domain"
	"github.com/spec-kit/shift-scheduler/internal/service"
)

// AdminHandler serves the admin dashboard: overview refresh, shift
// creation, and time-off decisions.
type AdminHandler struct {
	timeOff   *service.TimeOffService
	profiles  *service.ProfileService
	schedules *service.ScheduleService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(timeOffService *service.TimeOffService, profileService *service.ProfileService, scheduleService *service.ScheduleService) *AdminHandler {
	return &AdminHandler{timeOff: timeOffService, profiles: profileService, schedules: scheduleService}
}

// Overview handles GET /admin/overview. Mutating endpoints return no
// incremental state; the dashboard re-fetches this payload after every
// action (pull-to-refresh, not event-sourced).
func (h *AdminHandler) Overview(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.Profile == nil {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}
	orgID := principal.Profile.OrgID

	requests, err := h.timeOff.ListForOrg(c.Context(), orgID)
	if err != nil {
		return err
	}
	members, err := h.profiles.ListOrgMembers(c.Context(), orgID)
	if err != nil {
		return err
	}

	overview := dto.AdminOverviewResponse{
		TimeOffRequests:   make([]dto.TimeOffResponse, 0, len(requests)),
		Members:           make([]dto.MemberResponse, 0, len(members)),
		AssignmentOptions: assignmentOptions(members),
	}
	for i := range requests {
		overview.TimeOffRequests = append(overview.TimeOffRequests, timeOffResponse(&requests[i]))
	}
	for _, member := range members {
		overview.Members = append(overview.Members, dto.MemberResponse{
			ID:       member.ID,
			FullName: member.FullName,
			Email:    member.Email,
			Role:     string(member.Role),
		})
	}
	return c.JSON(fiber.Map{"data": overview})
}

// CreateShift handles POST /admin/schedules.
func (h *AdminHandler) CreateShift(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.Profile == nil {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	var req dto.CreateShiftRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.StartTS == "" || req.EndTS == "" {
		return fiber.NewError(http.StatusBadRequest, "start_ts and end_ts required")
	}
	start, err := parseTimestamp(req.StartTS)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid start_ts")
	}
	end, err := parseTimestamp(req.EndTS)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid end_ts")
	}

	userID := req.UserID
	if userID != nil && *userID == "" {
		// empty selector value is the open-shift sentinel
		userID = nil
	}

	shift, err := h.schedules.CreateShift(c.Context(), principal.Profile, service.ShiftCreateInput{
		Title:   req.Title,
		StartTS: start,
		EndTS:   end,
		UserID:  userID,
	})
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": shiftResponse(shift)})
}

// ApproveTimeOff handles POST /admin/time-off/:id/approve.
func (h *AdminHandler) ApproveTimeOff(c *fiber.Ctx) error {
	return h.decide(c, domain.TimeOffStatusApproved)
}

// DenyTimeOff handles POST /admin/time-off/:id/deny.
func (h *AdminHandler) DenyTimeOff(c *fiber.Ctx) error {
	return h.decide(c, domain.TimeOffStatusDenied)
}

func (h *AdminHandler) decide(c *fiber.Ctx, status domain.TimeOffStatus) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.Profile == nil {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}
	if err := h.timeOff.Decide(c.Context(), principal.Profile, c.Params("id"), status); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"id": c.Params("id"), "status": string(status)}})
}

func assignmentOptions(members []domain.Profile) []dto.AssignmentOption {
	options := make([]dto.AssignmentOption, 0, len(members)+1)
	options = append(options, dto.AssignmentOption{Value: "", Label: "Open shift"})
	for _, member := range members {
		options = append(options, dto.AssignmentOption{Value: member.ID, Label: member.FullName})
	}
	return options
}
