package usecase

import (
	"context"

	"grampanchayat/internal/domain/portal"
)

type UserRepository interface {
	Create(ctx context.Context, user portal.User) (portal.User, error)
	FindByID(ctx context.Context, id string) (portal.User, error)
	FindByEmail(ctx context.Context, email string) (portal.User, error)
	List(ctx context.Context, filter UserListFilter) ([]portal.User, int64, error)
	Update(ctx context.Context, user portal.User) (portal.User, error)
}

type SchemeRepository interface {
	Create(ctx context.Context, scheme portal.Scheme) (portal.Scheme, error)
	FindByID(ctx context.Context, id string) (portal.Scheme, error)
	List(ctx context.Context, filter SchemeListFilter) ([]portal.Scheme, int64, error)
	Update(ctx context.Context, scheme portal.Scheme) (portal.Scheme, error)
}

type AnnouncementRepository interface {
	Create(ctx context.Context, announcement portal.Announcement) (portal.Announcement, error)
	FindByID(ctx context.Context, id string) (portal.Announcement, error)
	List(ctx context.Context, filter AnnouncementListFilter) ([]portal.Announcement, int64, error)
	Update(ctx context.Context, announcement portal.Announcement) (portal.Announcement, error)
	Delete(ctx context.Context, id string) error
	IncrementViews(ctx context.Context, id string) error
}

type ApplicationRepository interface {
	Create(ctx context.Context, application portal.Application) (portal.Application, error)
	FindByID(ctx context.Context, id string) (portal.Application, error)
	List(ctx context.Context, filter ApplicationListFilter) ([]portal.Application, int64, error)
	Update(ctx context.Context, application portal.Application) (portal.Application, error)
	Delete(ctx context.Context, id string) error
}

type GrievanceRepository interface {
	Create(ctx context.Context, grievance portal.Grievance) (portal.Grievance, error)
	FindByID(ctx context.Context, id string) (portal.Grievance, error)
	List(ctx context.Context, filter GrievanceListFilter) ([]portal.Grievance, int64, error)
	Update(ctx context.Context, grievance portal.Grievance) (portal.Grievance, error)
}

type UserListFilter struct {
	Role   string
	Limit  int
	Offset int
}

type SchemeListFilter struct {
	Query      string
	Category   string
	ActiveOnly bool
	Limit      int
	Offset     int
}

type AnnouncementListFilter struct {
	Category string
	Limit    int
	Offset   int
}

type ApplicationListFilter struct {
	ApplicantID string
	SchemeID    string
	Status      string
	Limit       int
	Offset      int
}

type GrievanceListFilter struct {
	SubmitterID string
	AssigneeID  string
	Status      string
	Category    string
	Limit       int
	Offset      int
}
