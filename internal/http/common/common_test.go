package common

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"grampanchayat/internal/domain/portal"
)

func serve(t *testing.T, handler gin.HandlerFunc) (*httptest.ResponseRecorder, Response) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/probe", handler)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/probe", nil))

	var body Response
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode envelope: %v (%s)", err, rec.Body.String())
	}
	return rec, body
}

func TestStatusFor(t *testing.T) {
	cases := map[portal.ErrorKind]int{
		portal.KindUnauthenticated:     http.StatusUnauthorized,
		portal.KindForbiddenRole:       http.StatusForbidden,
		portal.KindForbiddenUnverified: http.StatusForbidden,
		portal.KindForbiddenOwnership:  http.StatusNotFound,
		portal.KindNotFoundErr:         http.StatusNotFound,
		portal.KindBadRequest:          http.StatusBadRequest,
		portal.KindValidationFailed:    http.StatusBadRequest,
		portal.KindRateLimited:         http.StatusTooManyRequests,
		portal.KindInternalErr:         http.StatusInternalServerError,
	}
	for kind, want := range cases {
		if got := statusFor(kind); got != want {
			t.Fatalf("statusFor(%s) = %d, want %d", kind, got, want)
		}
	}
}

func TestWriteErrorSentinelMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{portal.ErrUnauthenticated, http.StatusUnauthorized},
		{portal.ErrForbidden, http.StatusForbidden},
		{portal.ErrNotFound, http.StatusNotFound},
		{portal.ErrConflict, http.StatusBadRequest},
		{portal.ErrInvalidArgument, http.StatusBadRequest},
		{errors.New("disk full"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		rec, body := serve(t, func(c *gin.Context) { WriteError(c, tc.err) })
		if rec.Code != tc.status {
			t.Fatalf("WriteError(%v): got %d, want %d", tc.err, rec.Code, tc.status)
		}
		if body.Success {
			t.Fatalf("WriteError(%v): success must be false", tc.err)
		}
	}
}

func TestWriteErrorKeepsTypedKind(t *testing.T) {
	err := portal.NewError(portal.KindRateLimited, "Too many login attempts, try again later", nil)
	rec, body := serve(t, func(c *gin.Context) { WriteError(c, err) })
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("got %d, want 429", rec.Code)
	}
	if body.Message != "Too many login attempts, try again later" {
		t.Fatalf("unexpected message %q", body.Message)
	}
}

// Internal causes never leak to callers outside development mode.
func TestWriteErrorHidesInternalDetail(t *testing.T) {
	SetDevelopment(false)
	rec, body := serve(t, func(c *gin.Context) {
		WriteError(c, errors.New("pq: relation users does not exist"))
	})
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("got %d, want 500", rec.Code)
	}
	if body.Message != "Something went wrong" {
		t.Fatalf("internal detail leaked: %q", body.Message)
	}
}

func TestEnvelopeShape(t *testing.T) {
	rec, _ := serve(t, func(c *gin.Context) {
		OK(c, http.StatusCreated, "Created", gin.H{"id": "x"})
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("got %d, want 201", rec.Code)
	}
	var raw map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if raw["success"] != true || raw["message"] != "Created" {
		t.Fatalf("unexpected envelope %v", raw)
	}
	if _, present := raw["errors"]; present {
		t.Fatalf("errors key must be omitted on success")
	}
}

func TestParseUUIDParam(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/items/:id", func(c *gin.Context) {
		id, ok := ParseUUIDParam(c, "id")
		if !ok {
			return
		}
		OK(c, http.StatusOK, "ok", gin.H{"id": id})
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/"+resourceID, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("valid id: got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/nope", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("malformed id: got %d, want 400", rec.Code)
	}
}

func TestPrincipalFromContextMissingIsInternal(t *testing.T) {
	rec, _ := serve(t, func(c *gin.Context) {
		if _, ok := PrincipalFromContext(c); ok {
			t.Fatalf("expected absence")
		}
	})
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("got %d, want 500", rec.Code)
	}
}
