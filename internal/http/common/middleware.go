package common

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"grampanchayat/internal/domain/portal"
	"grampanchayat/internal/http/auth"
)

// Chain builds route middleware with the gate order fixed: credential
// verification, then role check, then ownership, then the verification flag.
// A gate that needs a principal cannot be attached without the gates before
// it, so a null-principal dereference is unreachable by construction.
type Chain struct {
	Authn *auth.Authenticator
	Authz *auth.Authorizer
	Guard *auth.OwnershipGuard
}

func NewChain(authn *auth.Authenticator, authz *auth.Authorizer, guard *auth.OwnershipGuard) *Chain {
	return &Chain{Authn: authn, Authz: authz, Guard: guard}
}

// Authenticated requires a valid credential and a permitted role.
func (ch *Chain) Authenticated(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := ch.authenticate(c)
		if !ok {
			return
		}
		if perr := ch.Authz.Require(principal, permission); perr != nil {
			WritePortalError(c, perr)
			return
		}
		c.Set(principalKey, principal)
		c.Next()
	}
}

// Optional resolves a principal when one is presented and stays silent
// otherwise. Used by public routes that personalize for logged-in callers.
func (ch *Chain) Optional() gin.HandlerFunc {
	return func(c *gin.Context) {
		if principal, ok := ch.Authn.AuthenticateOptional(c.Request.Context(), c.GetHeader("Authorization")); ok {
			c.Set(principalKey, principal)
		}
		c.Next()
	}
}

// Owned adds the ownership gate for the resource identified by the named
// path parameter. The fetched resource is attached to the context.
func (ch *Chain) Owned(permission string, kind portal.ResourceKind, param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := ch.authenticate(c)
		if !ok {
			return
		}
		if perr := ch.Authz.Require(principal, permission); perr != nil {
			WritePortalError(c, perr)
			return
		}
		resource, perr := ch.Guard.Check(c.Request.Context(), principal, kind, c.Param(param))
		if perr != nil {
			WritePortalError(c, perr)
			return
		}
		c.Set(principalKey, principal)
		c.Set(resourceKey, resource)
		c.Next()
	}
}

// Verified adds the account-verification gate for sensitive submissions.
func (ch *Chain) Verified(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := ch.authenticate(c)
		if !ok {
			return
		}
		if perr := ch.Authz.Require(principal, permission); perr != nil {
			WritePortalError(c, perr)
			return
		}
		if perr := auth.RequireVerified(principal); perr != nil {
			WritePortalError(c, perr)
			return
		}
		c.Set(principalKey, principal)
		c.Next()
	}
}

func (ch *Chain) authenticate(c *gin.Context) (portal.Principal, bool) {
	if ch.Authn == nil || ch.Authz == nil {
		Fail(c, http.StatusInternalServerError, "Something went wrong")
		return portal.Principal{}, false
	}
	principal, perr := ch.Authn.Authenticate(c.Request.Context(), c.GetHeader("Authorization"))
	if perr != nil {
		WritePortalError(c, perr)
		return portal.Principal{}, false
	}
	return principal, true
}

// RequestLogger emits one line per request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		event := log.Info()
		if c.Writer.Status() >= http.StatusInternalServerError {
			event = log.Error()
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}

// ParseLevel maps the configured log level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || parsed == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return parsed
}
