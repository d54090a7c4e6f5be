package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"grampanchayat/internal/domain/portal"
)

// FetchFunc loads one ownership-checked resource by id.
type FetchFunc func(ctx context.Context, id string) (portal.OwnedResource, error)

// OwnershipGuard adjudicates resource-scoped access. Resource kinds are a
// capability map injected at construction; adding a kind never touches the
// guard itself.
type OwnershipGuard struct {
	fetchers map[portal.ResourceKind]FetchFunc
}

func NewOwnershipGuard(fetchers map[portal.ResourceKind]FetchFunc) *OwnershipGuard {
	if fetchers == nil {
		fetchers = make(map[portal.ResourceKind]FetchFunc)
	}
	return &OwnershipGuard{fetchers: fetchers}
}

// Check fetches the resource and decides access. Elevated roles always pass
// and still receive the resource so handlers need not fetch twice. For
// citizen callers a resource owned by someone else answers exactly like an
// absent one; the returned error kinds stay distinct for logging.
func (g *OwnershipGuard) Check(ctx context.Context, principal portal.Principal, kind portal.ResourceKind, id string) (portal.OwnedResource, *portal.Error) {
	if principal.ID == "" {
		return nil, portal.NewError(portal.KindUnauthenticated, "Authentication required", portal.ErrUnauthenticated)
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, portal.NewError(portal.KindBadRequest, "Invalid resource identifier", portal.ErrInvalidArgument)
	}
	fetch, ok := g.fetchers[kind]
	if !ok {
		return nil, portal.NewError(portal.KindInternalErr, "Something went wrong", fmt.Errorf("no fetcher registered for resource kind %q", kind))
	}
	resource, err := fetch(ctx, id)
	if err != nil {
		if errors.Is(err, portal.ErrNotFound) {
			return nil, portal.NewError(portal.KindNotFoundErr, "Resource not found", portal.ErrNotFound)
		}
		return nil, portal.NewError(portal.KindInternalErr, "Something went wrong", err)
	}
	if principal.Role.Elevated() {
		return resource, nil
	}
	if resource.OwnerID() != principal.ID {
		return nil, portal.NewError(portal.KindForbiddenOwnership, "Resource not found", portal.ErrForbidden)
	}
	return resource, nil
}
