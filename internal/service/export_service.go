package service

import (
	"context"
	"strings"
	"time"

	"github.com/spec-kit/shift-scheduler/internal/domain"
	"github.com/spec-kit/shift-scheduler/internal/repository"
)

// ExportService produces the payroll CSV for a date-bounded,
// organization-scoped set of shift records.
type ExportService struct {
	schedules repository.ScheduleRepository
}

// NewExportService constructs the service.
func NewExportService(schedules repository.ScheduleRepository) *ExportService {
	return &ExportService{schedules: schedules}
}

// FetchShifts queries shift records with org_id equal to the given value,
// start_ts on or after start, and end_ts on or before end.
func (s *ExportService) FetchShifts(ctx context.Context, orgID string, start, end time.Time) ([]domain.Schedule, error) {
	return s.schedules.ListWindow(ctx, orgID, start, end)
}

// BuildCSV renders the payroll CSV. Every field, header included, is
// wrapped in double quotes with internal quotes doubled. Missing title or
// assignee render as empty strings.
func (s *ExportService) BuildCSV(shifts []domain.Schedule) string {
	rows := make([][]string, 0, len(shifts)+1)
	rows = append(rows, []string{"id", "title", "start_ts", "end_ts", "user_id"})
	for _, shift := range shifts {
		title := ""
		if shift.Title != nil {
			title = *shift.Title
		}
		userID := ""
		if shift.UserID != nil {
			userID = *shift.UserID
		}
		rows = append(rows, []string{
			shift.ID,
			title,
			shift.StartTS.Format(time.RFC3339),
			shift.EndTS.Format(time.RFC3339),
			userID,
		})
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			cells = append(cells, quoteCSV(cell))
		}
		lines = append(lines, strings.Join(cells, ","))
	}
	return strings.Join(lines, "\n")
}

func quoteCSV(value string) string {
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}
