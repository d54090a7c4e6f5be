package common

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"grampanchayat/internal/validate"
)

// BindValidated decodes the request body, runs the sanitization pass over
// every string field, then evaluates the rule set declared on dst. Returns
// false after writing the terminal response on any failure. Handlers only
// ever see payloads that passed both stages.
func BindValidated(c *gin.Context, dst any) bool {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		Fail(c, http.StatusBadRequest, "Invalid request body")
		return false
	}
	cleaned := validate.Sanitize(raw)
	buf, err := json.Marshal(cleaned)
	if err != nil {
		Fail(c, http.StatusInternalServerError, "Something went wrong")
		return false
	}
	if err := json.Unmarshal(buf, dst); err != nil {
		// Shape mismatch (e.g. string where a number belongs) is a caller
		// error, not a rule violation.
		Fail(c, http.StatusBadRequest, "Invalid request body")
		return false
	}
	if violations := validate.Struct(dst); len(violations) > 0 {
		FailValidation(c, violations)
		return false
	}
	return true
}
