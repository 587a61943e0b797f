package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/shift-scheduler/internal/api/dto"
	"github.com/spec-kit/shift-scheduler/internal/api/http/handlers"
	"github.com/spec-kit/shift-scheduler/internal/auth"
	"github.com/spec-kit/shift-scheduler/internal/config"
	"github.com/spec-kit/shift-scheduler/internal/domain"
	"github.com/spec-kit/shift-scheduler/internal/events"
	"github.com/spec-kit/shift-scheduler/internal/observability"
	"github.com/spec-kit/shift-scheduler/internal/persistence"
	"github.com/spec-kit/shift-scheduler/internal/service"
)

type memProfileRepo struct {
	profiles map[string]*domain.Profile
	seq      int
}

func newMemProfileRepo() *memProfileRepo {
	return &memProfileRepo{profiles: map[string]*domain.Profile{}}
}

func (r *memProfileRepo) Create(_ context.Context, profile *domain.Profile) error {
	r.seq++
	profile.ID = fmt.Sprintf("profile-%d", r.seq)
	profile.CreatedAt = time.Now()
	copied := *profile
	r.profiles[profile.ID] = &copied
	return nil
}

func (r *memProfileRepo) GetByID(_ context.Context, id string) (*domain.Profile, error) {
	profile, ok := r.profiles[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *profile
	return &copied, nil
}

func (r *memProfileRepo) GetByEmail(_ context.Context, email string) (*domain.Profile, error) {
	for _, profile := range r.profiles {
		if profile.Email == email {
			copied := *profile
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *memProfileRepo) ListByOrg(_ context.Context, orgID string) ([]domain.Profile, error) {
	members := make([]domain.Profile, 0)
	for _, profile := range r.profiles {
		if profile.OrgID == orgID {
			members = append(members, *profile)
		}
	}
	sort.Slice(members, func(i, j int) bool { return members[i].FullName < members[j].FullName })
	return members, nil
}

type memTimeOffRepo struct {
	requests map[string]*domain.TimeOffRequest
	seq      int
}

func newMemTimeOffRepo() *memTimeOffRepo {
	return &memTimeOffRepo{requests: map[string]*domain.TimeOffRequest{}}
}

func (r *memTimeOffRepo) Create(_ context.Context, request *domain.TimeOffRequest) error {
	r.seq++
	request.ID = fmt.Sprintf("req-%d", r.seq)
	request.CreatedAt = time.Now()
	copied := *request
	r.requests[request.ID] = &copied
	return nil
}

func (r *memTimeOffRepo) ListByOrg(_ context.Context, orgID string) ([]domain.TimeOffRequest, error) {
	out := make([]domain.TimeOffRequest, 0)
	for _, request := range r.requests {
		if request.OrgID == orgID {
			out = append(out, *request)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memTimeOffRepo) UpdateStatus(_ context.Context, orgID, id string, status domain.TimeOffStatus) error {
	request, ok := r.requests[id]
	if !ok || request.OrgID != orgID {
		return pgx.ErrNoRows
	}
	request.Status = status
	return nil
}

type memScheduleRepo struct {
	shifts []domain.Schedule
	seq    int
}

func (r *memScheduleRepo) Create(_ context.Context, shift *domain.Schedule) error {
	r.seq++
	shift.ID = fmt.Sprintf("shift-%d", r.seq)
	r.shifts = append(r.shifts, *shift)
	return nil
}

func (r *memScheduleRepo) ListWindow(_ context.Context, orgID string, start, end time.Time) ([]domain.Schedule, error) {
	out := make([]domain.Schedule, 0)
	for _, shift := range r.shifts {
		if shift.OrgID == orgID && !shift.StartTS.Before(start) && !shift.EndTS.After(end) {
			out = append(out, shift)
		}
	}
	return out, nil
}

type apiFixture struct {
	app      *fiber.App
	profiles *memProfileRepo
	timeOff  *memTimeOffRepo
	tokens   *auth.TokenManager
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	logger := zap.NewNop()
	cfg := config.Config{Auth: config.AuthConfig{
		JWTSecret:             "test-secret",
		AccessTokenTTLMinutes: 60,
		BcryptCost:            bcrypt.MinCost,
	}}

	profileRepo := newMemProfileRepo()
	timeOffRepo := newMemTimeOffRepo()
	scheduleRepo := &memScheduleRepo{}

	dispatcher := events.NewInMemoryDispatcher()
	revoked := auth.NewRevocationList(nil, logger)

	authService := service.NewAuthService(cfg, profileRepo, revoked)
	profileService := service.NewProfileService(profileRepo)
	scheduleService := service.NewScheduleService(scheduleRepo, dispatcher, logger)
	timeOffService := service.NewTimeOffService(timeOffRepo, dispatcher)
	exportService := service.NewExportService(scheduleRepo)

	app := fiber.New()
	RegisterMiddlewares(app, logger, observability.NewMetrics(), 5*time.Second)
	RegisterRoutes(app, RouteConfig{
		Health:         handlers.NewHealthHandler("shift-scheduler", "test", &persistence.Postgres{}, &persistence.Redis{}),
		Auth:           handlers.NewAuthHandler(authService, profileService),
		Schedules:      handlers.NewScheduleHandler(scheduleService),
		TimeOff:        handlers.NewTimeOffHandler(timeOffService),
		Admin:          handlers.NewAdminHandler(timeOffService, profileService, scheduleService),
		Export:         handlers.NewExportHandler(config.ExportConfig{AdminSecret: "secret"}, exportService, true, logger),
		AuthMiddleware: auth.NewAuthMiddleware(authService.TokenManager(), revoked, profileRepo),
	})

	return &apiFixture{app: app, profiles: profileRepo, timeOff: timeOffRepo, tokens: authService.TokenManager()}
}

func (f *apiFixture) seedProfile(t *testing.T, role domain.Role, fullName, email string) *domain.Profile {
	t.Helper()
	profile := &domain.Profile{
		OrgID:        "org-1",
		Role:         role,
		FullName:     fullName,
		Email:        email,
		PasswordHash: "unused",
	}
	require.NoError(t, f.profiles.Create(context.Background(), profile))
	return profile
}

func (f *apiFixture) bearer(t *testing.T, userID string) string {
	t.Helper()
	token, _, err := f.tokens.GenerateToken(userID)
	require.NoError(t, err)
	return "Bearer " + token
}

func (f *apiFixture) do(t *testing.T, method, target, token string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeOverview(t *testing.T, resp *http.Response) dto.AdminOverviewResponse {
	t.Helper()
	var envelope struct {
		Data dto.AdminOverviewResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return envelope.Data
}

func TestAdminRoutesRequireSession(t *testing.T) {
	f := newAPIFixture(t)

	resp := f.do(t, http.MethodGet, "/admin/overview", "", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminRoutesForbiddenForStaff(t *testing.T) {
	f := newAPIFixture(t)
	staff := f.seedProfile(t, domain.RoleStaff, "Sam Staff", "sam@example.com")

	resp := f.do(t, http.MethodGet, "/admin/overview", f.bearer(t, staff.ID), nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestApproveFlowClearsPendingFlag(t *testing.T) {
	f := newAPIFixture(t)
	admin := f.seedProfile(t, domain.RoleAdmin, "Avery Admin", "avery@example.com")
	staff := f.seedProfile(t, domain.RoleStaff, "Sam Staff", "sam@example.com")
	token := f.bearer(t, admin.ID)

	resp := f.do(t, http.MethodPost, "/time-off", f.bearer(t, staff.ID), dto.SubmitTimeOffRequest{
		StartDate: "2024-03-01",
		EndDate:   "2024-03-05",
		Reason:    "family trip",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	overview := decodeOverview(t, f.do(t, http.MethodGet, "/admin/overview", token, nil))
	require.Len(t, overview.TimeOffRequests, 1)
	request := overview.TimeOffRequests[0]
	require.True(t, request.Pending)
	require.Equal(t, "pending", request.Status)
	require.Equal(t, staff.ID, request.UserID)

	// selector always leads with the open-shift sentinel
	require.NotEmpty(t, overview.AssignmentOptions)
	require.Equal(t, dto.AssignmentOption{Value: "", Label: "Open shift"}, overview.AssignmentOptions[0])

	resp = f.do(t, http.MethodPost, "/admin/time-off/"+request.ID+"/approve", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// mutation returns no dashboard state; the reloaded overview carries it
	overview = decodeOverview(t, f.do(t, http.MethodGet, "/admin/overview", token, nil))
	require.Len(t, overview.TimeOffRequests, 1)
	require.False(t, overview.TimeOffRequests[0].Pending)
	require.Equal(t, "approved", overview.TimeOffRequests[0].Status)
}

func TestDenyFlowClearsPendingFlag(t *testing.T) {
	f := newAPIFixture(t)
	admin := f.seedProfile(t, domain.RoleAdmin, "Avery Admin", "avery@example.com")
	staff := f.seedProfile(t, domain.RoleStaff, "Sam Staff", "sam@example.com")
	token := f.bearer(t, admin.ID)

	resp := f.do(t, http.MethodPost, "/time-off", f.bearer(t, staff.ID), dto.SubmitTimeOffRequest{
		StartDate: "2024-04-01",
		EndDate:   "2024-04-02",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	overview := decodeOverview(t, f.do(t, http.MethodGet, "/admin/overview", token, nil))
	require.Len(t, overview.TimeOffRequests, 1)

	resp = f.do(t, http.MethodPost, "/admin/time-off/"+overview.TimeOffRequests[0].ID+"/deny", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	overview = decodeOverview(t, f.do(t, http.MethodGet, "/admin/overview", token, nil))
	require.Equal(t, "denied", overview.TimeOffRequests[0].Status)
	require.False(t, overview.TimeOffRequests[0].Pending)
}

func TestApproveUnknownRequestReturnsNotFound(t *testing.T) {
	f := newAPIFixture(t)
	admin := f.seedProfile(t, domain.RoleAdmin, "Avery Admin", "avery@example.com")

	resp := f.do(t, http.MethodPost, "/admin/time-off/missing/approve", f.bearer(t, admin.ID), nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCalendarFeedScopedToCallerOrg(t *testing.T) {
	f := newAPIFixture(t)
	admin := f.seedProfile(t, domain.RoleAdmin, "Avery Admin", "avery@example.com")
	token := f.bearer(t, admin.ID)

	resp := f.do(t, http.MethodPost, "/admin/schedules", token, dto.CreateShiftRequest{
		Title:   "Morning",
		StartTS: "2024-05-01T09:00:00Z",
		EndTS:   "2024-05-01T17:00:00Z",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = f.do(t, http.MethodGet, "/schedules?start=2024-05-01&end=2024-05-02", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope struct {
		Data []dto.CalendarEvent `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.Len(t, envelope.Data, 1)
	require.Equal(t, "Morning", envelope.Data[0].Title)
}
