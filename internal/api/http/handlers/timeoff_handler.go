package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/shift-scheduler/internal/api/dto"
	"github.com/spec-kit/shift-scheduler/internal/auth"
	"github.com/spec-kit/shift-scheduler/internal/domain"
	"github.com/spec-kit/shift-scheduler/internal/service"
)

// TimeOffHandler exposes the staff time-off submission endpoint.
type TimeOffHandler struct {
	timeOff *service.TimeOffService
}

// NewTimeOffHandler constructs handler.
func NewTimeOffHandler(timeOffService *service.TimeOffService) *TimeOffHandler {
	return &TimeOffHandler{timeOff: timeOffService}
}

// Submit handles POST /time-off. The store-reported error text is
// surfaced directly in the response; this is an internal tool.
func (h *TimeOffHandler) Submit(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.Profile == nil {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	var req dto.SubmitTimeOffRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.StartDate == "" || req.EndDate == "" {
		return fiber.NewError(http.StatusBadRequest, "start_date and end_date required")
	}

	request, err := h.timeOff.Submit(c.Context(), principal.Profile, service.TimeOffSubmitInput{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Reason:    req.Reason,
	})
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": timeOffResponse(request)})
}

func timeOffResponse(request *domain.TimeOffRequest) dto.TimeOffResponse {
	return dto.TimeOffResponse{
		ID:        request.ID,
		OrgID:     request.OrgID,
		UserID:    request.UserID,
		StartDate: request.StartDate,
		EndDate:   request.EndDate,
		Reason:    request.Reason,
		Status:    string(request.Status),
		Pending:   request.Status == domain.TimeOffStatusPending,
		CreatedAt: request.CreatedAt,
	}
}
