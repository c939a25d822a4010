package logger

import (
	"io"
	"log/slog"
	"os"
)

type config struct {
	level  slog.Leveler
	json   bool
	output io.Writer
	attrs  []slog.Attr
}

// Option configures the logger built by New.
type Option func(*config)

// WithLevel sets the minimum level.
func WithLevel(level slog.Leveler) Option {
	return func(c *config) {
		if level != nil {
			c.level = level
		}
	}
}

// WithJSONFormatter switches the output to JSON.
func WithJSONFormatter() Option {
	return func(c *config) { c.json = true }
}

// WithTextFormatter switches the output to logfmt-style text.
func WithTextFormatter() Option {
	return func(c *config) { c.json = false }
}

// WithOutput sets the destination writer.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithAttr adds attributes attached to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *config) { c.attrs = append(c.attrs, attrs...) }
}

// WithDevelopment configures text output at debug level, tagged with the service name.
func WithDevelopment(service string) Option {
	return func(c *config) {
		c.level = slog.LevelDebug
		c.json = false
		c.attrs = append(c.attrs, slog.String("service", service), slog.String("env", "development"))
	}
}

// WithProduction configures JSON output at info level, tagged with the service name.
func WithProduction(service string) Option {
	return func(c *config) {
		c.level = slog.LevelInfo
		c.json = true
		c.attrs = append(c.attrs, slog.String("service", service), slog.String("env", "production"))
	}
}

// New builds a *slog.Logger. Defaults: text output, info level, stdout.
func New(opts ...Option) *slog.Logger {
	c := &config{
		level:  slog.LevelInfo,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(c)
	}

	ho := &slog.HandlerOptions{Level: c.level}
	var h slog.Handler
	if c.json {
		h = slog.NewJSONHandler(c.output, ho)
	} else {
		h = slog.NewTextHandler(c.output, ho)
	}
	if len(c.attrs) > 0 {
		h = h.WithAttrs(c.attrs)
	}
	return slog.New(h)
}

// Nop returns a logger that discards everything.
func Nop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(127)}))
}
