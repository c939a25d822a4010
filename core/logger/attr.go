package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Attribute helpers return an empty Attr for nil or empty input, so calls like
// log.Info("msg", logger.Error(err)) need no nil checks. slog drops empty attrs.

// Group creates a group of attributes under a single key.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// Index keys preserve the original position of each error.
func Errors(errs ...error) slog.Attr {
	count := 0
	for _, err := range errs {
		if err != nil {
			count++
		}
	}
	if count == 0 {
		return slog.Attr{}
	}

	as := make([]slog.Attr, 0, count)
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Duration creates an attribute for a duration.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Elapsed logs the duration since start.
func Elapsed(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}

// AttemptID identifies one send attempt across its log lines.
func AttemptID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("attempt_id", id)
}

// Recipient creates an attribute for an email recipient.
func Recipient(addr string) slog.Attr {
	if addr == "" {
		return slog.Attr{}
	}
	return slog.String("recipient", addr)
}

// Component creates an attribute for component names.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event creates an attribute for event names.
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Action creates an attribute for action names.
func Action(action string) slog.Attr {
	return slog.String("action", action)
}

// Result creates an attribute for operation results (success/failure/pending).
func Result(result string) slog.Attr {
	return slog.String("result", result)
}

// Count creates a generic counter attribute.
func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}

// Key creates a generic key-value attribute.
func Key(key string, value any) slog.Attr {
	if value == nil {
		return slog.Attr{}
	}
	return slog.Any(key, value)
}
