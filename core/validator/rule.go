package validator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Rule is a deferred check together with the error reported when it fails.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// ValidationError describes a single failed rule.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors collects all failed rules of a validation run.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	msgs := make([]string, 0, len(e))
	for _, ve := range e {
		msgs = append(msgs, ve.Error())
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Add appends a validation error.
func (e *ValidationErrors) Add(err ValidationError) {
	*e = append(*e, err)
}

// IsEmpty reports whether no errors were collected.
func (e ValidationErrors) IsEmpty() bool {
	return len(e) == 0
}

// Has reports whether the given field failed at least one rule.
func (e ValidationErrors) Has(field string) bool {
	for _, ve := range e {
		if ve.Field == field {
			return true
		}
	}
	return false
}

// Fields returns the names of failed fields in the order they were reported, without duplicates.
func (e ValidationErrors) Fields() []string {
	seen := make(map[string]struct{}, len(e))
	fields := make([]string, 0, len(e))
	for _, ve := range e {
		if _, ok := seen[ve.Field]; ok {
			continue
		}
		seen[ve.Field] = struct{}{}
		fields = append(fields, ve.Field)
	}
	return fields
}

// emailRegex mirrors the pattern used by the email integrations.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// IsEmail reports whether s is a syntactically valid email address.
func IsEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// NotEmpty checks that a string has at least one character. Whitespace counts.
func NotEmpty(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return value != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidEmail checks that a string is a valid email address.
// Empty values pass so that "required" stays a separate concern.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return value == "" || IsEmail(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// MinLenString checks the rune length of a string is at least min.
func MinLenString(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at least %d characters long", min),
			TranslationKey: "validation.min_length",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

// MaxLenString checks the rune length of a string is at most max.
func MaxLenString(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %d characters long", max),
			TranslationKey: "validation.max_length",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

// Apply runs the rules and returns the collected errors, or nil when all pass.
func Apply(rules ...Rule) error {
	var errs ValidationErrors
	for _, r := range rules {
		if r.Check != nil && !r.Check() {
			errs.Add(r.Error)
		}
	}
	if errs.IsEmpty() {
		return nil
	}
	return errs
}
