package usecase

import (
	"context"
	"strings"

	"grampanchayat/internal/domain/portal"
)

type AnnouncementService struct {
	Announcements AnnouncementRepository
}

type AnnouncementInput struct {
	Title    string
	Body     string
	Category string
}

func NewAnnouncementService(announcements AnnouncementRepository) *AnnouncementService {
	return &AnnouncementService{Announcements: announcements}
}

func (s *AnnouncementService) Create(ctx context.Context, creatorID string, in AnnouncementInput) (portal.Announcement, error) {
	return s.Announcements.Create(ctx, portal.Announcement{
		Title:     strings.TrimSpace(in.Title),
		Body:      in.Body,
		Category:  strings.TrimSpace(in.Category),
		CreatedBy: creatorID,
	})
}

// Get returns one announcement. Reads by citizens and anonymous visitors
// count toward the view tally; staff and admin reads do not.
func (s *AnnouncementService) Get(ctx context.Context, id string, viewerElevated bool) (portal.Announcement, error) {
	announcement, err := s.Announcements.FindByID(ctx, id)
	if err != nil {
		return portal.Announcement{}, err
	}
	if !viewerElevated {
		if err := s.Announcements.IncrementViews(ctx, id); err != nil {
			return portal.Announcement{}, err
		}
		announcement.Views++
	}
	return announcement, nil
}

func (s *AnnouncementService) List(ctx context.Context, filter AnnouncementListFilter) ([]portal.Announcement, int64, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	return s.Announcements.List(ctx, filter)
}

func (s *AnnouncementService) Update(ctx context.Context, id string, in AnnouncementInput) (portal.Announcement, error) {
	announcement, err := s.Announcements.FindByID(ctx, id)
	if err != nil {
		return portal.Announcement{}, err
	}
	announcement.Title = strings.TrimSpace(in.Title)
	announcement.Body = in.Body
	announcement.Category = strings.TrimSpace(in.Category)
	return s.Announcements.Update(ctx, announcement)
}

func (s *AnnouncementService) Delete(ctx context.Context, id string) error {
	if _, err := s.Announcements.FindByID(ctx, id); err != nil {
		return err
	}
	return s.Announcements.Delete(ctx, id)
}
