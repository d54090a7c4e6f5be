package usecase

import (
	"context"
	"errors"
	"testing"

	"grampanchayat/internal/domain/portal"
)

// Citizen and anonymous reads count toward the view tally; elevated reads
// do not inflate it.
func TestAnnouncementViewCounting(t *testing.T) {
	announcements := newFakeAnnouncementRepo()
	svc := NewAnnouncementService(announcements)
	created, err := svc.Create(context.Background(), "admin-1", AnnouncementInput{Title: "Water cut", Body: "Tuesday 9-12"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.Get(context.Background(), created.ID, false)
	if err != nil {
		t.Fatalf("citizen get: %v", err)
	}
	if got.Views != 1 {
		t.Fatalf("citizen read must count: views=%d", got.Views)
	}

	got, err = svc.Get(context.Background(), created.ID, true)
	if err != nil {
		t.Fatalf("staff get: %v", err)
	}
	if got.Views != 1 {
		t.Fatalf("elevated read must not count: views=%d", got.Views)
	}

	if got, _ = svc.Get(context.Background(), created.ID, false); got.Views != 2 {
		t.Fatalf("second citizen read: views=%d", got.Views)
	}
}

func TestAnnouncementGetMissing(t *testing.T) {
	svc := NewAnnouncementService(newFakeAnnouncementRepo())
	if _, err := svc.Get(context.Background(), "announcement-1", false); !errors.Is(err, portal.ErrNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestAnnouncementUpdate(t *testing.T) {
	announcements := newFakeAnnouncementRepo()
	svc := NewAnnouncementService(announcements)
	created, _ := svc.Create(context.Background(), "admin-1", AnnouncementInput{Title: "Draft", Body: "x"})

	updated, err := svc.Update(context.Background(), created.ID, AnnouncementInput{Title: "  Gram sabha meeting  ", Body: "Friday 10am", Category: "events"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "Gram sabha meeting" || updated.Category != "events" {
		t.Fatalf("update not applied: %+v", updated)
	}
}

func TestAnnouncementDelete(t *testing.T) {
	announcements := newFakeAnnouncementRepo()
	svc := NewAnnouncementService(announcements)
	created, _ := svc.Create(context.Background(), "admin-1", AnnouncementInput{Title: "Old notice", Body: "x"})

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); !errors.Is(err, portal.ErrNotFound) {
		t.Fatalf("second delete: expected not-found, got %v", err)
	}
}
