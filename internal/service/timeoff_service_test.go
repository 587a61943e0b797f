package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/shift-scheduler/internal/domain"
	apperrors "github.com/spec-kit/shift-scheduler/pkg/util"
)

type fakeTimeOffRepo struct {
	requests []*domain.TimeOffRequest
}

func (f *fakeTimeOffRepo) Create(_ context.Context, request *domain.TimeOffRequest) error {
	request.ID = "req-1"
	f.requests = append(f.requests, request)
	return nil
}

func (f *fakeTimeOffRepo) ListByOrg(_ context.Context, orgID string) ([]domain.TimeOffRequest, error) {
	var result []domain.TimeOffRequest
	for _, request := range f.requests {
		if request.OrgID == orgID {
			result = append(result, *request)
		}
	}
	return result, nil
}

func (f *fakeTimeOffRepo) UpdateStatus(_ context.Context, orgID, id string, status domain.TimeOffStatus) error {
	for _, request := range f.requests {
		if request.ID == id && request.OrgID == orgID {
			request.Status = status
			return nil
		}
	}
	return pgx.ErrNoRows
}

func TestSubmitCreatesPendingRequestForActorOrg(t *testing.T) {
	repo := &fakeTimeOffRepo{}
	svc := NewTimeOffService(repo, nil)
	actor := &domain.Profile{ID: "u1", OrgID: "org-1", Role: domain.RoleStaff}

	request, err := svc.Submit(context.Background(), actor, TimeOffSubmitInput{
		StartDate: "2024-06-01",
		EndDate:   "2024-06-05",
		Reason:    "vacation",
	})
	require.NoError(t, err)
	require.Equal(t, domain.TimeOffStatusPending, request.Status)
	require.Equal(t, "org-1", request.OrgID)
	require.Equal(t, "u1", request.UserID)
}

func TestSubmitRequiresDates(t *testing.T) {
	svc := NewTimeOffService(&fakeTimeOffRepo{}, nil)
	actor := &domain.Profile{ID: "u1", OrgID: "org-1"}

	_, err := svc.Submit(context.Background(), actor, TimeOffSubmitInput{Reason: "no dates"})
	require.Error(t, err)
}

func TestDecideApprovesRequest(t *testing.T) {
	repo := &fakeTimeOffRepo{}
	svc := NewTimeOffService(repo, nil)
	staff := &domain.Profile{ID: "u1", OrgID: "org-1", Role: domain.RoleStaff}
	admin := &domain.Profile{ID: "a1", OrgID: "org-1", Role: domain.RoleAdmin}

	request, err := svc.Submit(context.Background(), staff, TimeOffSubmitInput{
		StartDate: "2024-06-01",
		EndDate:   "2024-06-05",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Decide(context.Background(), admin, request.ID, domain.TimeOffStatusApproved))

	listed, err := svc.ListForOrg(context.Background(), "org-1")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, domain.TimeOffStatusApproved, listed[0].Status)
}

func TestDecideRejectsInvalidStatus(t *testing.T) {
	svc := NewTimeOffService(&fakeTimeOffRepo{}, nil)
	admin := &domain.Profile{ID: "a1", OrgID: "org-1", Role: domain.RoleAdmin}

	err := svc.Decide(context.Background(), admin, "req-1", domain.TimeOffStatusPending)
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	require.Equal(t, "VALIDATION_FAILED", domainErr.Code)
}

func TestDecideCannotCrossOrganizations(t *testing.T) {
	repo := &fakeTimeOffRepo{}
	svc := NewTimeOffService(repo, nil)
	staff := &domain.Profile{ID: "u1", OrgID: "org-1", Role: domain.RoleStaff}
	outsider := &domain.Profile{ID: "a2", OrgID: "org-2", Role: domain.RoleAdmin}

	request, err := svc.Submit(context.Background(), staff, TimeOffSubmitInput{
		StartDate: "2024-06-01",
		EndDate:   "2024-06-05",
	})
	require.NoError(t, err)

	err = svc.Decide(context.Background(), outsider, request.ID, domain.TimeOffStatusDenied)
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	require.Equal(t, "NOT_FOUND", domainErr.Code)

	listed, err := svc.ListForOrg(context.Background(), "org-1")
	require.NoError(t, err)
	require.Equal(t, domain.TimeOffStatusPending, listed[0].Status)
}
