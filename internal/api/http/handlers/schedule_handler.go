package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/shift-scheduler/internal/api/dto"
	"github.com/spec-kit/shift-scheduler/internal/auth"
	"github.com/spec-kit/shift-scheduler/internal/domain"
	"github.com/spec-kit/shift-scheduler/internal/service"
)

// ScheduleHandler serves the calendar feed.
type ScheduleHandler struct {
	schedules *service.ScheduleService
}

// NewScheduleHandler constructs handler.
func NewScheduleHandler(scheduleService *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{schedules: scheduleService}
}

// Calendar handles GET /schedules?start=&end=. The response is the list
// of display tuples for the visible window; a failed query yields an
// empty list, never an error, so the widget always resolves.
func (h *ScheduleHandler) Calendar(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.Profile == nil {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	start, err := parseTimestamp(c.Query("start"))
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid start")
	}
	end, err := parseTimestamp(c.Query("end"))
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid end")
	}

	shifts := h.schedules.CalendarWindow(c.Context(), principal.Profile.OrgID, start, end)
	events := make([]dto.CalendarEvent, 0, len(shifts))
	for i := range shifts {
		events = append(events, calendarEvent(&shifts[i]))
	}
	return c.JSON(fiber.Map{"data": events})
}

func calendarEvent(shift *domain.Schedule) dto.CalendarEvent {
	return dto.CalendarEvent{
		ID:    shift.ID,
		Title: shift.DisplayTitle(),
		Start: shift.StartTS,
		End:   shift.EndTS,
	}
}

// parseTimestamp accepts RFC3339 timestamps and bare dates.
func parseTimestamp(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

func shiftResponse(shift *domain.Schedule) dto.ShiftResponse {
	return dto.ShiftResponse{
		ID:        shift.ID,
		OrgID:     shift.OrgID,
		Title:     shift.Title,
		StartTS:   shift.StartTS,
		EndTS:     shift.EndTS,
		UserID:    shift.UserID,
		CreatedBy: shift.CreatedBy,
		CreatedAt: shift.CreatedAt,
	}
}
