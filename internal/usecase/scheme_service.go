package usecase

import (
	"context"
	"strings"

	"grampanchayat/internal/domain/portal"
)

type SchemeService struct {
	Schemes SchemeRepository
}

type SchemeInput struct {
	Title       string
	Description string
	Category    string
	Eligibility string
	Benefits    string
	Documents   string
}

func NewSchemeService(schemes SchemeRepository) *SchemeService {
	return &SchemeService{Schemes: schemes}
}

func (s *SchemeService) Create(ctx context.Context, creatorID string, in SchemeInput) (portal.Scheme, error) {
	return s.Schemes.Create(ctx, portal.Scheme{
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Category:    strings.TrimSpace(in.Category),
		Eligibility: in.Eligibility,
		Benefits:    in.Benefits,
		Documents:   in.Documents,
		Active:      true,
		CreatedBy:   creatorID,
	})
}

func (s *SchemeService) Get(ctx context.Context, id string) (portal.Scheme, error) {
	return s.Schemes.FindByID(ctx, id)
}

// List serves the public catalogue; callers without an elevated role only
// see active schemes.
func (s *SchemeService) List(ctx context.Context, filter SchemeListFilter) ([]portal.Scheme, int64, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	return s.Schemes.List(ctx, filter)
}

func (s *SchemeService) Update(ctx context.Context, id string, in SchemeInput) (portal.Scheme, error) {
	scheme, err := s.Schemes.FindByID(ctx, id)
	if err != nil {
		return portal.Scheme{}, err
	}
	scheme.Title = strings.TrimSpace(in.Title)
	scheme.Description = in.Description
	scheme.Category = strings.TrimSpace(in.Category)
	scheme.Eligibility = in.Eligibility
	scheme.Benefits = in.Benefits
	scheme.Documents = in.Documents
	return s.Schemes.Update(ctx, scheme)
}

// Deactivate is the delete operation: the scheme drops out of the public
// catalogue but existing applications keep a valid reference.
func (s *SchemeService) Deactivate(ctx context.Context, id string) error {
	scheme, err := s.Schemes.FindByID(ctx, id)
	if err != nil {
		return err
	}
	scheme.Active = false
	_, err = s.Schemes.Update(ctx, scheme)
	return err
}
