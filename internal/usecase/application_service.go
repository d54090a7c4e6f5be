package usecase

import (
	"context"
	"errors"

	"grampanchayat/internal/domain/portal"
)

type ApplicationService struct {
	Applications ApplicationRepository
	Schemes      SchemeRepository
}

type ApplicationSubmitInput struct {
	SchemeID string
	Details  string
}

type ApplicationReviewInput struct {
	Status  string
	Remarks string
}

func NewApplicationService(applications ApplicationRepository, schemes SchemeRepository) *ApplicationService {
	return &ApplicationService{Applications: applications, Schemes: schemes}
}

// Submit files a new application against an active scheme. The caller has
// already passed the verification gate.
func (s *ApplicationService) Submit(ctx context.Context, applicantID string, in ApplicationSubmitInput) (portal.Application, error) {
	scheme, err := s.Schemes.FindByID(ctx, in.SchemeID)
	if err != nil {
		if errors.Is(err, portal.ErrNotFound) {
			return portal.Application{}, portal.NewError(portal.KindBadRequest, "Scheme does not exist", portal.ErrInvalidArgument)
		}
		return portal.Application{}, err
	}
	if !scheme.Active {
		return portal.Application{}, portal.NewError(portal.KindBadRequest, "Scheme is no longer accepting applications", portal.ErrInvalidArgument)
	}
	return s.Applications.Create(ctx, portal.Application{
		SchemeID:    scheme.ID,
		ApplicantID: applicantID,
		Details:     in.Details,
		Status:      portal.ApplicationPending,
	})
}

// ListFor scopes the listing by the caller: citizens see their own
// applications, elevated roles see everything the filter matches.
func (s *ApplicationService) ListFor(ctx context.Context, principal portal.Principal, filter ApplicationListFilter) ([]portal.Application, int64, error) {
	if !principal.Role.Elevated() {
		filter.ApplicantID = principal.ID
	}
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	return s.Applications.List(ctx, filter)
}

// Review moves an application along pending → under_review → approved or
// rejected. Decisions are terminal.
func (s *ApplicationService) Review(ctx context.Context, reviewerID, applicationID string, in ApplicationReviewInput) (portal.Application, error) {
	application, err := s.Applications.FindByID(ctx, applicationID)
	if err != nil {
		return portal.Application{}, err
	}
	next := portal.ApplicationStatus(in.Status)
	if !validApplicationTransition(application.Status, next) {
		return portal.Application{}, portal.NewError(portal.KindBadRequest, "Invalid status transition", portal.ErrInvalidArgument)
	}
	application.Status = next
	application.Remarks = in.Remarks
	application.ReviewedBy = reviewerID
	return s.Applications.Update(ctx, application)
}

// Withdraw deletes the caller's own application while it is still pending.
// Ownership was already established by the guard.
func (s *ApplicationService) Withdraw(ctx context.Context, application portal.Application) error {
	if application.Status != portal.ApplicationPending {
		return portal.NewError(portal.KindBadRequest, "Only pending applications can be withdrawn", portal.ErrInvalidArgument)
	}
	return s.Applications.Delete(ctx, application.ID)
}

func validApplicationTransition(from, to portal.ApplicationStatus) bool {
	switch from {
	case portal.ApplicationPending:
		return to == portal.ApplicationUnderReview || to == portal.ApplicationApproved || to == portal.ApplicationRejected
	case portal.ApplicationUnderReview:
		return to == portal.ApplicationApproved || to == portal.ApplicationRejected
	default:
		return false
	}
}
