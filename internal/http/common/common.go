// Package common carries the response envelope, the error-kind to status
// mapping, and the per-request context accessors shared by every handler
// package.
package common

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"grampanchayat/internal/domain/portal"
	"grampanchayat/internal/validate"
)

const (
	principalKey = "principal"
	resourceKey  = "resource"
)

var development bool

// SetDevelopment enables internal error detail in responses. Called once at
// startup, before the server accepts traffic.
func SetDevelopment(enabled bool) {
	development = enabled
}

// Response is the envelope every route honors, success or failure.
type Response struct {
	Success bool                 `json:"success"`
	Message string               `json:"message"`
	Data    any                  `json:"data,omitempty"`
	Errors  []validate.Violation `json:"errors,omitempty"`
}

func OK(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Response{Success: true, Message: message, Data: data})
}

func Fail(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, Response{Success: false, Message: message})
}

func FailValidation(c *gin.Context, violations []validate.Violation) {
	log.Debug().
		Str("kind", string(portal.KindValidationFailed)).
		Str("path", c.FullPath()).
		Int("violations", len(violations)).
		Msg("request rejected")
	c.AbortWithStatusJSON(http.StatusBadRequest, Response{
		Success: false,
		Message: "Validation failed",
		Errors:  violations,
	})
}

// WritePortalError terminates the request with the status mapped from the
// error's internal kind. Ownership failures answer 404 like an absent
// resource; the log line keeps the real kind.
func WritePortalError(c *gin.Context, perr *portal.Error) {
	status := statusFor(perr.Kind)
	event := log.Debug()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.
		Str("kind", string(perr.Kind)).
		Str("path", c.FullPath()).
		AnErr("cause", perr.Unwrap()).
		Msg("request rejected")
	message := perr.Message
	if perr.Kind == portal.KindInternalErr && !development {
		message = "Something went wrong"
	}
	Fail(c, status, message)
}

// WriteError resolves plain errors from the usecase layer. Typed errors keep
// their kind; sentinel errors get the default kind for their class; anything
// else is internal.
func WriteError(c *gin.Context, err error) {
	if perr, ok := portal.AsPortalError(err); ok {
		WritePortalError(c, perr)
		return
	}
	switch {
	case errors.Is(err, portal.ErrUnauthenticated):
		WritePortalError(c, portal.NewError(portal.KindUnauthenticated, "Authentication required", err))
	case errors.Is(err, portal.ErrForbidden):
		WritePortalError(c, portal.NewError(portal.KindForbiddenRole, "You do not have permission to perform this action", err))
	case errors.Is(err, portal.ErrNotFound):
		WritePortalError(c, portal.NewError(portal.KindNotFoundErr, "Resource not found", err))
	case errors.Is(err, portal.ErrConflict):
		WritePortalError(c, portal.NewError(portal.KindBadRequest, "Request conflicts with existing data", err))
	case errors.Is(err, portal.ErrInvalidArgument):
		WritePortalError(c, portal.NewError(portal.KindBadRequest, "Invalid request", err))
	default:
		message := "Something went wrong"
		if development && err != nil {
			message = err.Error()
		}
		WritePortalError(c, portal.NewError(portal.KindInternalErr, message, err))
	}
}

func statusFor(kind portal.ErrorKind) int {
	switch kind {
	case portal.KindUnauthenticated:
		return http.StatusUnauthorized
	case portal.KindForbiddenRole, portal.KindForbiddenUnverified:
		return http.StatusForbidden
	case portal.KindForbiddenOwnership, portal.KindNotFoundErr:
		return http.StatusNotFound
	case portal.KindBadRequest, portal.KindValidationFailed:
		return http.StatusBadRequest
	case portal.KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// PrincipalFromContext returns the authenticated principal. Missing means a
// route skipped the credential gate, which is a wiring bug, not a caller
// error.
func PrincipalFromContext(c *gin.Context) (portal.Principal, bool) {
	value, ok := c.Get(principalKey)
	if !ok {
		Fail(c, http.StatusInternalServerError, "Something went wrong")
		return portal.Principal{}, false
	}
	principal, ok := value.(portal.Principal)
	if !ok {
		Fail(c, http.StatusInternalServerError, "Something went wrong")
		return portal.Principal{}, false
	}
	return principal, true
}

// MaybePrincipal is the optional-auth accessor; absence is a normal state.
func MaybePrincipal(c *gin.Context) (portal.Principal, bool) {
	value, ok := c.Get(principalKey)
	if !ok {
		return portal.Principal{}, false
	}
	principal, ok := value.(portal.Principal)
	return principal, ok
}

// ResourceFromContext returns the resource the ownership guard already
// fetched for this request.
func ResourceFromContext(c *gin.Context) (portal.OwnedResource, bool) {
	value, ok := c.Get(resourceKey)
	if !ok {
		Fail(c, http.StatusInternalServerError, "Something went wrong")
		return nil, false
	}
	resource, ok := value.(portal.OwnedResource)
	if !ok {
		Fail(c, http.StatusInternalServerError, "Something went wrong")
		return nil, false
	}
	return resource, true
}

func ParseUUIDParam(c *gin.Context, name string) (string, bool) {
	value := strings.TrimSpace(c.Param(name))
	if value == "" {
		Fail(c, http.StatusBadRequest, name+" is required")
		return "", false
	}
	if _, err := uuid.Parse(value); err != nil {
		Fail(c, http.StatusBadRequest, "Invalid resource identifier")
		return "", false
	}
	return value, true
}
