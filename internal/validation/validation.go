// Package validation wraps go-playground/validator behind a small API that
// returns human-readable messages instead of raw validator errors.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/triunfo/balanzas/internal/models"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Struct validates v against its `validate` struct tags.
func Struct(v any) error {
	if err := validate.Struct(v); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, fieldError(fe))
			}
			return fmt.Errorf("%s", strings.Join(msgs, "; "))
		}
		return err
	}
	return nil
}

// Role checks that r is one of the two known roles.
func Role(r models.Role) error {
	if err := validate.Var(string(r), "required,oneof=user administrator"); err != nil {
		return fmt.Errorf("role must be %q or %q, got %q", models.RoleUser, models.RoleAdministrator, r)
	}
	return nil
}

// Username checks the minimal contract for a user key: non-empty after
// trimming. Anything stricter would reject account names already present
// in migrated users.json files.
func Username(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("username cannot be empty")
	}
	return nil
}

// ProductName checks the minimal contract for a product key.
func ProductName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("product name cannot be empty")
	}
	return nil
}

// fieldError renders a single validation failure as a readable message.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", field, fe.Param())
	case "hexadecimal":
		return field + " must be a hex string"
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
