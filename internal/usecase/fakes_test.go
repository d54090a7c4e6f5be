package usecase

import (
	"context"
	"fmt"
	"time"

	"grampanchayat/internal/domain/portal"
	"grampanchayat/internal/ratelimit"
)

type fakeUserRepo struct {
	users map[string]portal.User
	seq   int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]portal.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user portal.User) (portal.User, error) {
	r.seq++
	user.ID = fmt.Sprintf("user-%d", r.seq)
	r.users[user.ID] = user
	return user, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (portal.User, error) {
	user, ok := r.users[id]
	if !ok {
		return portal.User{}, portal.ErrNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (portal.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return portal.User{}, portal.ErrNotFound
}

func (r *fakeUserRepo) List(_ context.Context, filter UserListFilter) ([]portal.User, int64, error) {
	var out []portal.User
	for _, user := range r.users {
		if filter.Role != "" && string(user.Role) != filter.Role {
			continue
		}
		out = append(out, user)
	}
	return out, int64(len(out)), nil
}

func (r *fakeUserRepo) Update(_ context.Context, user portal.User) (portal.User, error) {
	if _, ok := r.users[user.ID]; !ok {
		return portal.User{}, portal.ErrNotFound
	}
	r.users[user.ID] = user
	return user, nil
}

func (r *fakeUserRepo) add(user portal.User) portal.User {
	r.seq++
	if user.ID == "" {
		user.ID = fmt.Sprintf("user-%d", r.seq)
	}
	r.users[user.ID] = user
	return user
}

type fakeSchemeRepo struct {
	schemes map[string]portal.Scheme
	seq     int
}

func newFakeSchemeRepo() *fakeSchemeRepo {
	return &fakeSchemeRepo{schemes: map[string]portal.Scheme{}}
}

func (r *fakeSchemeRepo) Create(_ context.Context, scheme portal.Scheme) (portal.Scheme, error) {
	r.seq++
	scheme.ID = fmt.Sprintf("scheme-%d", r.seq)
	r.schemes[scheme.ID] = scheme
	return scheme, nil
}

func (r *fakeSchemeRepo) FindByID(_ context.Context, id string) (portal.Scheme, error) {
	scheme, ok := r.schemes[id]
	if !ok {
		return portal.Scheme{}, portal.ErrNotFound
	}
	return scheme, nil
}

func (r *fakeSchemeRepo) List(_ context.Context, filter SchemeListFilter) ([]portal.Scheme, int64, error) {
	var out []portal.Scheme
	for _, scheme := range r.schemes {
		if filter.ActiveOnly && !scheme.Active {
			continue
		}
		if filter.Category != "" && scheme.Category != filter.Category {
			continue
		}
		out = append(out, scheme)
	}
	return out, int64(len(out)), nil
}

func (r *fakeSchemeRepo) Update(_ context.Context, scheme portal.Scheme) (portal.Scheme, error) {
	if _, ok := r.schemes[scheme.ID]; !ok {
		return portal.Scheme{}, portal.ErrNotFound
	}
	r.schemes[scheme.ID] = scheme
	return scheme, nil
}

type fakeApplicationRepo struct {
	applications map[string]portal.Application
	seq          int
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{applications: map[string]portal.Application{}}
}

func (r *fakeApplicationRepo) Create(_ context.Context, application portal.Application) (portal.Application, error) {
	r.seq++
	application.ID = fmt.Sprintf("application-%d", r.seq)
	r.applications[application.ID] = application
	return application, nil
}

func (r *fakeApplicationRepo) FindByID(_ context.Context, id string) (portal.Application, error) {
	application, ok := r.applications[id]
	if !ok {
		return portal.Application{}, portal.ErrNotFound
	}
	return application, nil
}

func (r *fakeApplicationRepo) List(_ context.Context, filter ApplicationListFilter) ([]portal.Application, int64, error) {
	var out []portal.Application
	for _, application := range r.applications {
		if filter.ApplicantID != "" && application.ApplicantID != filter.ApplicantID {
			continue
		}
		if filter.Status != "" && string(application.Status) != filter.Status {
			continue
		}
		out = append(out, application)
	}
	return out, int64(len(out)), nil
}

func (r *fakeApplicationRepo) Update(_ context.Context, application portal.Application) (portal.Application, error) {
	if _, ok := r.applications[application.ID]; !ok {
		return portal.Application{}, portal.ErrNotFound
	}
	r.applications[application.ID] = application
	return application, nil
}

func (r *fakeApplicationRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.applications[id]; !ok {
		return portal.ErrNotFound
	}
	delete(r.applications, id)
	return nil
}

type fakeGrievanceRepo struct {
	grievances map[string]portal.Grievance
	seq        int
}

func newFakeGrievanceRepo() *fakeGrievanceRepo {
	return &fakeGrievanceRepo{grievances: map[string]portal.Grievance{}}
}

func (r *fakeGrievanceRepo) Create(_ context.Context, grievance portal.Grievance) (portal.Grievance, error) {
	r.seq++
	grievance.ID = fmt.Sprintf("grievance-%d", r.seq)
	r.grievances[grievance.ID] = grievance
	return grievance, nil
}

func (r *fakeGrievanceRepo) FindByID(_ context.Context, id string) (portal.Grievance, error) {
	grievance, ok := r.grievances[id]
	if !ok {
		return portal.Grievance{}, portal.ErrNotFound
	}
	return grievance, nil
}

func (r *fakeGrievanceRepo) List(_ context.Context, filter GrievanceListFilter) ([]portal.Grievance, int64, error) {
	var out []portal.Grievance
	for _, grievance := range r.grievances {
		if filter.SubmitterID != "" && grievance.SubmitterID != filter.SubmitterID {
			continue
		}
		if filter.AssigneeID != "" && grievance.AssigneeID != filter.AssigneeID {
			continue
		}
		if filter.Status != "" && string(grievance.Status) != filter.Status {
			continue
		}
		out = append(out, grievance)
	}
	return out, int64(len(out)), nil
}

func (r *fakeGrievanceRepo) Update(_ context.Context, grievance portal.Grievance) (portal.Grievance, error) {
	if _, ok := r.grievances[grievance.ID]; !ok {
		return portal.Grievance{}, portal.ErrNotFound
	}
	r.grievances[grievance.ID] = grievance
	return grievance, nil
}

type fakeAnnouncementRepo struct {
	announcements map[string]portal.Announcement
	seq           int
}

func newFakeAnnouncementRepo() *fakeAnnouncementRepo {
	return &fakeAnnouncementRepo{announcements: map[string]portal.Announcement{}}
}

func (r *fakeAnnouncementRepo) Create(_ context.Context, announcement portal.Announcement) (portal.Announcement, error) {
	r.seq++
	announcement.ID = fmt.Sprintf("announcement-%d", r.seq)
	r.announcements[announcement.ID] = announcement
	return announcement, nil
}

func (r *fakeAnnouncementRepo) FindByID(_ context.Context, id string) (portal.Announcement, error) {
	announcement, ok := r.announcements[id]
	if !ok {
		return portal.Announcement{}, portal.ErrNotFound
	}
	return announcement, nil
}

func (r *fakeAnnouncementRepo) List(_ context.Context, filter AnnouncementListFilter) ([]portal.Announcement, int64, error) {
	var out []portal.Announcement
	for _, announcement := range r.announcements {
		if filter.Category != "" && announcement.Category != filter.Category {
			continue
		}
		out = append(out, announcement)
	}
	return out, int64(len(out)), nil
}

func (r *fakeAnnouncementRepo) Update(_ context.Context, announcement portal.Announcement) (portal.Announcement, error) {
	if _, ok := r.announcements[announcement.ID]; !ok {
		return portal.Announcement{}, portal.ErrNotFound
	}
	r.announcements[announcement.ID] = announcement
	return announcement, nil
}

func (r *fakeAnnouncementRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.announcements[id]; !ok {
		return portal.ErrNotFound
	}
	delete(r.announcements, id)
	return nil
}

func (r *fakeAnnouncementRepo) IncrementViews(_ context.Context, id string) error {
	announcement, ok := r.announcements[id]
	if !ok {
		return portal.ErrNotFound
	}
	announcement.Views++
	r.announcements[id] = announcement
	return nil
}

// fakeLimiter denies once the configured number of calls is spent.
type fakeLimiter struct {
	calls int
	limit int
}

func (l *fakeLimiter) Allow(_ context.Context, _ string, limit int, _ time.Duration) (ratelimit.Decision, error) {
	if l.limit == 0 {
		l.limit = limit
	}
	l.calls++
	if l.calls > l.limit {
		return ratelimit.Decision{Allowed: false, Limit: l.limit}, nil
	}
	return ratelimit.Decision{Allowed: true, Limit: l.limit, Remaining: l.limit - l.calls}, nil
}
