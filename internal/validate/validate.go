// Package validate implements the declarative input validation and
// sanitization pass that runs before any handler trusts a payload. Rule sets
// are struct tags on request DTOs; evaluation reports every violation, not
// just the first.
package validate

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Violation names one offending field with a human-readable reason.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var engine = newEngine()

func newEngine() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Violations are keyed by wire field names, not Go identifiers.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// Struct evaluates the rule set declared on payload and returns the complete
// violation list, empty when the payload is valid.
func Struct(payload any) []Violation {
	err := engine.Struct(payload)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []Violation{{Field: "payload", Message: "payload could not be validated"}}
	}
	out := make([]Violation, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, Violation{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "e164":
		return fmt.Sprintf("%s must be a valid phone number", fe.Field())
	case "uuid4":
		return fmt.Sprintf("%s must be a valid identifier", fe.Field())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "eqfield":
		return fmt.Sprintf("%s does not match %s", fe.Field(), wireName(fe.Param()))
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// eqfield params reference the Go field name of the sibling; report the wire
// name so UI bindings line up.
func wireName(goName string) string {
	if goName == "" {
		return goName
	}
	return strings.ToLower(goName[:1]) + goName[1:]
}
