package auth

import (
	"fmt"

	"grampanchayat/internal/domain/portal"
)

// Authorizer enforces the static route permission table. It runs strictly
// after credential verification; an empty principal is reported as missing
// authentication, never as a failed role comparison.
type Authorizer struct{}

func NewAuthorizer() *Authorizer {
	return &Authorizer{}
}

func (a *Authorizer) Require(principal portal.Principal, permission string) *portal.Error {
	if principal.ID == "" {
		return portal.NewError(portal.KindUnauthenticated, "Authentication required", portal.ErrUnauthenticated)
	}
	for _, role := range portal.AllowedRoles(permission) {
		if principal.Role == role {
			return nil
		}
	}
	return portal.NewError(
		portal.KindForbiddenRole,
		"You do not have permission to perform this action",
		fmt.Errorf("role %q not permitted for %s: %w", principal.Role, permission, portal.ErrForbidden),
	)
}

// RequireVerified gates sensitive submissions on the account's verified flag.
func RequireVerified(principal portal.Principal) *portal.Error {
	if principal.ID == "" {
		return portal.NewError(portal.KindInternalErr, "Something went wrong", portal.ErrInternal)
	}
	if !principal.Verified {
		return portal.NewError(portal.KindForbiddenUnverified, "Account verification required", portal.ErrForbidden)
	}
	return nil
}
