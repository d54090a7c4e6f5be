package common

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

type notePayload struct {
	Title string `json:"title" validate:"required,min=3"`
	Body  string `json:"body" validate:"required"`
	Count int    `json:"count" validate:"omitempty,min=1"`
}

func bindProbe(t *testing.T, body string) (*httptest.ResponseRecorder, Response, notePayload) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	var bound notePayload
	router.POST("/notes", func(c *gin.Context) {
		var payload notePayload
		if !BindValidated(c, &payload) {
			return
		}
		bound = payload
		OK(c, http.StatusOK, "ok", nil)
	})

	req := httptest.NewRequest(http.MethodPost, "/notes", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var envelope Response
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode envelope: %v (%s)", err, rec.Body.String())
	}
	return rec, envelope, bound
}

func TestBindValidatedHappyPath(t *testing.T) {
	rec, _, bound := bindProbe(t, `{"title":"Water supply","body":"pipeline burst","count":2}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("got %d, want 200", rec.Code)
	}
	if bound.Title != "Water supply" || bound.Count != 2 {
		t.Fatalf("unexpected binding %+v", bound)
	}
}

// Script markup is stripped before the handler ever sees the value.
func TestBindValidatedSanitizes(t *testing.T) {
	rec, _, bound := bindProbe(t, `{"title":"Road<script>alert(1)</script> repair","body":"ok"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("got %d, want 200", rec.Code)
	}
	if bound.Title != "Road repair" {
		t.Fatalf("sanitization missed: %q", bound.Title)
	}
}

// Sanitization runs before validation, so a value that is only long enough
// because of script markup fails the length rule.
func TestBindValidatedSanitizesBeforeValidation(t *testing.T) {
	rec, envelope, _ := bindProbe(t, `{"title":"ab<script>x</script>","body":"ok"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got %d, want 400", rec.Code)
	}
	if envelope.Message != "Validation failed" {
		t.Fatalf("unexpected message %q", envelope.Message)
	}
}

func TestBindValidatedMalformedJSON(t *testing.T) {
	rec, envelope, _ := bindProbe(t, `{"title": `)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got %d, want 400", rec.Code)
	}
	if envelope.Message != "Invalid request body" {
		t.Fatalf("unexpected message %q", envelope.Message)
	}
}

func TestBindValidatedTypeMismatch(t *testing.T) {
	rec, envelope, _ := bindProbe(t, `{"title":"Water supply","body":"ok","count":"three"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got %d, want 400", rec.Code)
	}
	if envelope.Message != "Invalid request body" {
		t.Fatalf("unexpected message %q", envelope.Message)
	}
}

func TestBindValidatedReportsViolationList(t *testing.T) {
	rec, envelope, _ := bindProbe(t, `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got %d, want 400", rec.Code)
	}
	if len(envelope.Errors) != 2 {
		t.Fatalf("expected 2 violations, got %v", envelope.Errors)
	}
}
