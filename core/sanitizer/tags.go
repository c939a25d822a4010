package sanitizer

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
)

// registry maps tag names to sanitizers. It is read-only after init.
var registry = map[string]func(string) string{
	"trim":   Trim,
	"header": PreventHeaderInjection,
	"email":  TrimToLower,
}

// SanitizeStruct applies sanitization to struct fields based on their tags
func SanitizeStruct(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer {
		return errors.New("sanitizer: must pass a pointer to struct")
	}

	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return errors.New("sanitizer: must pass a pointer to struct")
	}

	return sanitizeStructRecursive(rv)
}

func sanitizeStructRecursive(rv reflect.Value) error {
	rt := rv.Type()

	for i := 0; i < rv.NumField(); i++ {
		field := rv.Field(i)
		if !field.CanSet() {
			continue
		}

		tag := rt.Field(i).Tag.Get("sanitize")
		if tag == "-" {
			continue
		}

		switch field.Kind() {
		case reflect.String:
			if tag == "" {
				continue
			}
			field.SetString(applySanitizers(field.String(), tag))

		case reflect.Pointer:
			if field.IsNil() {
				continue
			}
			elem := field.Elem()
			switch elem.Kind() {
			case reflect.String:
				if tag != "" {
					elem.SetString(applySanitizers(elem.String(), tag))
				}
			case reflect.Struct:
				if err := sanitizeStructRecursive(elem); err != nil {
					return err
				}
			}

		case reflect.Struct:
			if err := sanitizeStructRecursive(field); err != nil {
				return err
			}

		case reflect.Slice:
			if tag != "" && field.Type().Elem().Kind() == reflect.String {
				for j := 0; j < field.Len(); j++ {
					elem := field.Index(j)
					elem.SetString(applySanitizers(elem.String(), tag))
				}
			}
		}
	}

	return nil
}

func applySanitizers(value string, tag string) string {
	result := value

	for _, name := range strings.Split(tag, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		// max:N truncates to N runes
		if rest, ok := strings.CutPrefix(name, "max:"); ok {
			if maxLen, err := strconv.Atoi(rest); err == nil && maxLen > 0 {
				result = MaxLength(result, maxLen)
			}
			continue
		}

		if fn, ok := registry[name]; ok {
			result = fn(result)
		}
	}

	return result
}
