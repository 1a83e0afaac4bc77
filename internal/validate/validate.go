// internal/validate/validate.go
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"commentbox/internal/util"
)

// Type enumerates the supported field types. Only strings exist today; a new
// type is a new sanitizer/validator branch, not new control flow.
type Type int

const (
	TypeString Type = iota
)

// Check is a single custom validation: the validator receives the sanitized
// value and its message is recorded when the validator returns false.
type Check struct {
	Validator func(value string) bool
	Message   string
}

// Field is the declarative validation rule for one body field. Rules are held
// in a slice, not a map, so error ordering follows declaration order.
type Field struct {
	Name string
	Type Type

	// Sanitization flags, applied in order: trim, lowercase, collapse.
	Trim           bool
	Lowercase      bool
	CollapseSpaces bool
	// Normalize is shorthand for Trim + Lowercase + CollapseSpaces and
	// composes identically to setting all three.
	Normalize bool

	// Len declares built-in length bounds as [min] or [min, max].
	Len []int

	Checks []Check
}

var spaceRuns = regexp.MustCompile(`\s+`)

// Body runs the validation pipeline over the raw body. Per field, in order:
// type check, sanitization, custom checks, built-in length check. On success
// the body map is mutated in place with sanitized values; fields without a
// rule pass through untouched. On any failure it returns a 400 *util.Error
// with message "Invalid input" and the full ordered list of field errors.
func Body(body map[string]any, fields []Field) error {
	var errs []string

	for _, field := range fields {
		fieldErrs, newValue := applyField(field, body[field.Name])
		body[field.Name] = newValue
		errs = append(errs, fieldErrs...)
	}

	if len(errs) > 0 {
		return util.NewValidationError(errs)
	}
	return nil
}

func applyField(field Field, value any) ([]string, any) {
	var errs []string

	// Type check + sanitization.
	var str string
	switch field.Type {
	case TypeString:
		s, ok := value.(string)
		if !ok {
			return []string{"must be a string"}, value
		}
		str = sanitizeString(field, s)
	}

	// Custom validation runs against the sanitized value, sequentially, so
	// check order in the rule is the order messages appear.
	for _, check := range field.Checks {
		if !check.Validator(str) {
			errs = append(errs, check.Message)
		}
	}

	// Built-in validation.
	switch field.Type {
	case TypeString:
		errs = append(errs, validateStringLength(field, str)...)
	}

	return errs, str
}

func sanitizeString(field Field, value string) string {
	if field.Normalize || field.Trim {
		value = strings.TrimSpace(value)
	}
	if field.Normalize || field.Lowercase {
		value = strings.ToLower(value)
	}
	if field.Normalize || field.CollapseSpaces {
		value = spaceRuns.ReplaceAllString(value, " ")
	}
	return value
}

func validateStringLength(field Field, value string) []string {
	if len(field.Len) == 0 {
		return nil
	}

	min := field.Len[0]
	max := -1 // unbounded
	if len(field.Len) > 1 {
		max = field.Len[1]
	}

	length := len([]rune(value))
	if length < min || (max >= 0 && length > max) {
		msg := fmt.Sprintf("%s must be at least %d", field.Name, min)
		if max >= 0 {
			msg += fmt.Sprintf(" and %d", max)
		}
		msg += " characters long"
		return []string{msg}
	}
	return nil
}
