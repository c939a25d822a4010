package validator

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
)

// ValidatorFunc is a function that validates a value and returns a Rule
type ValidatorFunc func(field string, value reflect.Value, params []string) Rule

var (
	registryMu sync.RWMutex
	registry   = map[string]ValidatorFunc{
		"required": requiredValidator,
		"min":      minValidator,
		"max":      maxValidator,
		"email":    emailValidator,
	}
)

// RegisterValidator adds a custom validator function to the registry
func RegisterValidator(name string, fn ValidatorFunc) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = fn
}

// ValidateStruct validates a struct based on its field tags
func ValidateStruct(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer {
		return fmt.Errorf("validator: must pass a pointer to struct")
	}

	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("validator: must pass a pointer to struct")
	}

	var errors ValidationErrors
	validateStructRecursive(rv, "", &errors)

	if errors.IsEmpty() {
		return nil
	}
	return errors
}

func validateStructRecursive(rv reflect.Value, prefix string, errors *ValidationErrors) {
	rt := rv.Type()

	for i := 0; i < rv.NumField(); i++ {
		field := rv.Field(i)
		structField := rt.Field(i)
		if !structField.IsExported() {
			continue
		}

		tag := structField.Tag.Get("validate")
		if tag == "-" {
			continue
		}

		fieldPath := structField.Name
		if prefix != "" && !structField.Anonymous {
			fieldPath = prefix + "." + structField.Name
		}

		// Embedded structs keep their parent's prefix so that promoted
		// fields are reported by their own name.
		if field.Kind() == reflect.Struct && tag == "" {
			nested := fieldPath
			if structField.Anonymous {
				nested = prefix
			}
			validateStructRecursive(field, nested, errors)
			continue
		}

		if field.Kind() == reflect.Pointer {
			if field.IsNil() {
				if tag != "" {
					validateField(fieldPath, field, tag, errors)
				}
				continue
			}
			elem := field.Elem()
			if elem.Kind() == reflect.Struct && tag == "" {
				validateStructRecursive(elem, fieldPath, errors)
			} else if tag != "" {
				validateField(fieldPath, elem, tag, errors)
			}
			continue
		}

		if tag == "" {
			continue
		}

		validateField(fieldPath, field, tag, errors)
	}
}

func validateField(fieldPath string, field reflect.Value, tag string, errors *ValidationErrors) {
	// Parse validation rules separated by semicolon
	rules := strings.Split(tag, ";")

	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, ruleStr := range rules {
		ruleStr = strings.TrimSpace(ruleStr)
		if ruleStr == "" {
			continue
		}

		parts := strings.SplitN(ruleStr, ":", 2)
		ruleName := strings.TrimSpace(parts[0])

		var params []string
		if len(parts) > 1 {
			paramStr := strings.TrimSpace(parts[1])
			if paramStr != "" {
				params = strings.Split(paramStr, ",")
				for i := range params {
					params[i] = strings.TrimSpace(params[i])
				}
			}
		}

		if validatorFn, ok := registry[ruleName]; ok {
			rule := validatorFn(fieldPath, field, params)
			if !rule.Check() {
				errors.Add(rule.Error)
			}
		}
	}
}

// Built-in validators

func requiredValidator(field string, value reflect.Value, params []string) Rule {
	return Rule{
		Check: func() bool {
			switch value.Kind() {
			case reflect.String:
				return strings.TrimSpace(value.String()) != ""
			case reflect.Slice, reflect.Map, reflect.Array:
				return value.Len() > 0
			case reflect.Pointer, reflect.Interface:
				return !value.IsNil()
			default:
				// For numbers, consider zero values as empty
				return !value.IsZero()
			}
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

func minValidator(field string, value reflect.Value, params []string) Rule {
	if len(params) < 1 {
		return Rule{Check: func() bool { return true }}
	}

	switch value.Kind() {
	case reflect.String:
		min, _ := strconv.Atoi(params[0])
		return MinLenString(field, value.String(), min)
	case reflect.Slice, reflect.Array:
		min, _ := strconv.Atoi(params[0])
		return Rule{
			Check: func() bool {
				return value.Len() >= min
			},
			Error: ValidationError{
				Field:          field,
				Message:        fmt.Sprintf("must have at least %d items", min),
				TranslationKey: "validation.min_items",
				TranslationValues: map[string]any{
					"field": field,
					"min":   min,
				},
			},
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		min, _ := strconv.ParseInt(params[0], 10, 64)
		return Rule{
			Check: func() bool {
				return value.Int() >= min
			},
			Error: ValidationError{
				Field:          field,
				Message:        fmt.Sprintf("must be at least %d", min),
				TranslationKey: "validation.min",
				TranslationValues: map[string]any{
					"field": field,
					"min":   min,
				},
			},
		}
	default:
		return Rule{Check: func() bool { return true }}
	}
}

func maxValidator(field string, value reflect.Value, params []string) Rule {
	if len(params) < 1 {
		return Rule{Check: func() bool { return true }}
	}

	switch value.Kind() {
	case reflect.String:
		max, _ := strconv.Atoi(params[0])
		return MaxLenString(field, value.String(), max)
	case reflect.Slice, reflect.Array:
		max, _ := strconv.Atoi(params[0])
		return Rule{
			Check: func() bool {
				return value.Len() <= max
			},
			Error: ValidationError{
				Field:          field,
				Message:        fmt.Sprintf("must have at most %d items", max),
				TranslationKey: "validation.max_items",
				TranslationValues: map[string]any{
					"field": field,
					"max":   max,
				},
			},
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		max, _ := strconv.ParseInt(params[0], 10, 64)
		return Rule{
			Check: func() bool {
				return value.Int() <= max
			},
			Error: ValidationError{
				Field:          field,
				Message:        fmt.Sprintf("must be at most %d", max),
				TranslationKey: "validation.max",
				TranslationValues: map[string]any{
					"field": field,
					"max":   max,
				},
			},
		}
	default:
		return Rule{Check: func() bool { return true }}
	}
}

func emailValidator(field string, value reflect.Value, params []string) Rule {
	if value.Kind() != reflect.String {
		return Rule{Check: func() bool { return true }}
	}
	return ValidEmail(field, value.String())
}
