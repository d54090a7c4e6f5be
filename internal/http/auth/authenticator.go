package auth

import (
	"context"
	"errors"
	"strings"

	"grampanchayat/internal/domain/portal"
)

// Internal rejection reasons, kept distinct for logging even when the wire
// response is identical.
var (
	ErrTokenMissing       = errors.New("bearer token missing")
	ErrTokenInvalid       = errors.New("bearer token invalid")
	ErrAccountNotFound    = errors.New("token subject not found")
	ErrAccountDeactivated = errors.New("account deactivated")
)

// PrincipalStore resolves account records for the credential verifier.
type PrincipalStore interface {
	FindByID(ctx context.Context, id string) (portal.User, error)
}

// Authenticator resolves an Authorization header to a live Principal. Every
// request hits the store; resolved principals are never cached.
type Authenticator struct {
	Tokens *TokenIssuer
	Users  PrincipalStore
}

func NewAuthenticator(tokens *TokenIssuer, users PrincipalStore) *Authenticator {
	return &Authenticator{Tokens: tokens, Users: users}
}

// Authenticate is the mandatory mode: any failure is a terminal 401 with a
// message matching the failure class. A decodable token whose subject no
// longer exists is reported exactly like an invalid token.
func (a *Authenticator) Authenticate(ctx context.Context, authorization string) (portal.Principal, *portal.Error) {
	token := extractBearer(authorization)
	if token == "" {
		return portal.Principal{}, portal.NewError(portal.KindUnauthenticated, "Authentication token required", ErrTokenMissing)
	}
	subject, err := a.Tokens.Subject(token)
	if err != nil {
		return portal.Principal{}, portal.NewError(portal.KindUnauthenticated, "Invalid or expired token", ErrTokenInvalid)
	}
	user, err := a.Users.FindByID(ctx, subject)
	if err != nil {
		if errors.Is(err, portal.ErrNotFound) {
			return portal.Principal{}, portal.NewError(portal.KindUnauthenticated, "Invalid or expired token", ErrAccountNotFound)
		}
		return portal.Principal{}, portal.NewError(portal.KindInternalErr, "Something went wrong", err)
	}
	if !user.Active {
		return portal.Principal{}, portal.NewError(portal.KindUnauthenticated, "Account is deactivated", ErrAccountDeactivated)
	}
	return portal.Principal{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Role:     user.Role,
		Active:   user.Active,
		Verified: user.Verified,
	}, nil
}

// AuthenticateOptional is the best-effort mode for public routes that
// personalize behavior for logged-in callers. Every failure collapses to an
// anonymous context.
func (a *Authenticator) AuthenticateOptional(ctx context.Context, authorization string) (portal.Principal, bool) {
	principal, perr := a.Authenticate(ctx, authorization)
	if perr != nil {
		return portal.Principal{}, false
	}
	return principal, true
}

func extractBearer(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
