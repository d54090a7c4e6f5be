package usecase

import (
	"context"
	"strings"

	"grampanchayat/internal/domain/portal"
)

type GrievanceService struct {
	Grievances GrievanceRepository
	Users      UserRepository
}

type GrievanceSubmitInput struct {
	Subject     string
	Description string
	Category    string
}

type GrievanceResolveInput struct {
	Status   string
	Response string
}

func NewGrievanceService(grievances GrievanceRepository, users UserRepository) *GrievanceService {
	return &GrievanceService{Grievances: grievances, Users: users}
}

func (s *GrievanceService) Submit(ctx context.Context, submitterID string, in GrievanceSubmitInput) (portal.Grievance, error) {
	return s.Grievances.Create(ctx, portal.Grievance{
		SubmitterID: submitterID,
		Subject:     strings.TrimSpace(in.Subject),
		Description: in.Description,
		Category:    strings.TrimSpace(in.Category),
		Status:      portal.GrievanceOpen,
	})
}

func (s *GrievanceService) ListFor(ctx context.Context, principal portal.Principal, filter GrievanceListFilter) ([]portal.Grievance, int64, error) {
	if !principal.Role.Elevated() {
		filter.SubmitterID = principal.ID
	}
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	return s.Grievances.List(ctx, filter)
}

// Resolve updates status and the official response. open → in_progress →
// resolved → closed, with closure allowed from any non-closed state.
func (s *GrievanceService) Resolve(ctx context.Context, grievanceID string, in GrievanceResolveInput) (portal.Grievance, error) {
	grievance, err := s.Grievances.FindByID(ctx, grievanceID)
	if err != nil {
		return portal.Grievance{}, err
	}
	next := portal.GrievanceStatus(in.Status)
	if !validGrievanceTransition(grievance.Status, next) {
		return portal.Grievance{}, portal.NewError(portal.KindBadRequest, "Invalid status transition", portal.ErrInvalidArgument)
	}
	grievance.Status = next
	if in.Response != "" {
		grievance.Response = in.Response
	}
	return s.Grievances.Update(ctx, grievance)
}

// Assign hands a grievance to a staff member. The assignee is cross-checked
// against the principal store and must be an active elevated account.
func (s *GrievanceService) Assign(ctx context.Context, grievanceID, assigneeID string) (portal.Grievance, error) {
	grievance, err := s.Grievances.FindByID(ctx, grievanceID)
	if err != nil {
		return portal.Grievance{}, err
	}
	assignee, err := s.Users.FindByID(ctx, assigneeID)
	if err != nil {
		return portal.Grievance{}, portal.NewError(portal.KindBadRequest, "Assignee does not exist", portal.ErrInvalidArgument)
	}
	if !assignee.Active || !assignee.Role.Elevated() {
		return portal.Grievance{}, portal.NewError(portal.KindBadRequest, "Assignee must be an active staff member", portal.ErrInvalidArgument)
	}
	grievance.AssigneeID = assignee.ID
	if grievance.Status == portal.GrievanceOpen {
		grievance.Status = portal.GrievanceInProgress
	}
	return s.Grievances.Update(ctx, grievance)
}

func validGrievanceTransition(from, to portal.GrievanceStatus) bool {
	if from == to {
		return false
	}
	switch from {
	case portal.GrievanceOpen:
		return to == portal.GrievanceInProgress || to == portal.GrievanceResolved || to == portal.GrievanceClosed
	case portal.GrievanceInProgress:
		return to == portal.GrievanceResolved || to == portal.GrievanceClosed
	case portal.GrievanceResolved:
		return to == portal.GrievanceClosed
	default:
		return false
	}
}
