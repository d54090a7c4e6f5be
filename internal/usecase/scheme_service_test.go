package usecase

import (
	"context"
	"errors"
	"testing"

	"grampanchayat/internal/domain/portal"
)

func TestSchemeCreateStartsActive(t *testing.T) {
	svc := NewSchemeService(newFakeSchemeRepo())
	scheme, err := svc.Create(context.Background(), "admin-1", SchemeInput{Title: "  Old Age Pension  ", Category: "welfare"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !scheme.Active {
		t.Fatalf("new scheme must be active")
	}
	if scheme.Title != "Old Age Pension" || scheme.CreatedBy != "admin-1" {
		t.Fatalf("unexpected scheme %+v", scheme)
	}
}

// Deactivation is a soft delete: lookups by id still resolve so existing
// applications keep a valid reference.
func TestSchemeDeactivateKeepsRecord(t *testing.T) {
	schemes := newFakeSchemeRepo()
	svc := NewSchemeService(schemes)
	scheme, _ := svc.Create(context.Background(), "admin-1", SchemeInput{Title: "Housing Assistance"})

	if err := svc.Deactivate(context.Background(), scheme.ID); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	got, err := svc.Get(context.Background(), scheme.ID)
	if err != nil {
		t.Fatalf("get after deactivate: %v", err)
	}
	if got.Active {
		t.Fatalf("scheme still active")
	}

	_, total, err := svc.List(context.Background(), SchemeListFilter{ActiveOnly: true})
	if err != nil || total != 0 {
		t.Fatalf("deactivated scheme still in public catalogue: total=%d err=%v", total, err)
	}
}

func TestSchemeDeactivateMissing(t *testing.T) {
	svc := NewSchemeService(newFakeSchemeRepo())
	if err := svc.Deactivate(context.Background(), "scheme-1"); !errors.Is(err, portal.ErrNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestSchemeUpdate(t *testing.T) {
	svc := NewSchemeService(newFakeSchemeRepo())
	scheme, _ := svc.Create(context.Background(), "admin-1", SchemeInput{Title: "Draft"})

	updated, err := svc.Update(context.Background(), scheme.ID, SchemeInput{Title: "Scholarship", Eligibility: "students of the panchayat"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "Scholarship" || updated.Eligibility != "students of the panchayat" {
		t.Fatalf("update not applied: %+v", updated)
	}
	if !updated.Active {
		t.Fatalf("update must not change the active flag")
	}
}
