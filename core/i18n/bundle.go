package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var builtin embed.FS

// ErrInvalidMessages is returned when a message file cannot be parsed.
var ErrInvalidMessages = errors.New("i18n: invalid message file")

// Bundle holds the messages of every loaded language. It is immutable after New.
type Bundle struct {
	bundle *goi18n.Bundle
}

type bundleConfig struct {
	defaultLang language.Tag
	files       []string
	raw         []rawMessages
}

type rawMessages struct {
	name string
	data []byte
}

// Option configures a Bundle.
type Option func(*bundleConfig)

// WithDefaultLanguage sets the language used when no requested language matches.
func WithDefaultLanguage(tag language.Tag) Option {
	return func(c *bundleConfig) { c.defaultLang = tag }
}

// WithMessageFile loads an extra TOML file named like "active.de.toml".
func WithMessageFile(path string) Option {
	return func(c *bundleConfig) { c.files = append(c.files, path) }
}

// WithMessages loads TOML messages from memory. name must carry the language,
// e.g. "custom.fr.toml".
func WithMessages(name string, data []byte) Option {
	return func(c *bundleConfig) { c.raw = append(c.raw, rawMessages{name: name, data: data}) }
}

// New creates a Bundle with the built-in locales plus anything passed in opts.
// Later sources override earlier ones for the same message id.
func New(opts ...Option) (*Bundle, error) {
	cfg := &bundleConfig{defaultLang: language.English}
	for _, opt := range opts {
		opt(cfg)
	}

	b := goi18n.NewBundle(cfg.defaultLang)
	b.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := fs.Glob(builtin, "locales/*.toml")
	if err != nil {
		return nil, err
	}
	for _, name := range entries {
		data, err := builtin.ReadFile(name)
		if err != nil {
			return nil, err
		}
		if _, err := b.ParseMessageFileBytes(data, path.Base(name)); err != nil {
			return nil, errors.Join(ErrInvalidMessages, fmt.Errorf("%s: %w", name, err))
		}
	}

	for _, name := range cfg.files {
		if _, err := b.LoadMessageFile(name); err != nil {
			return nil, errors.Join(ErrInvalidMessages, fmt.Errorf("%s: %w", name, err))
		}
	}
	for _, r := range cfg.raw {
		if _, err := b.ParseMessageFileBytes(r.data, r.name); err != nil {
			return nil, errors.Join(ErrInvalidMessages, fmt.Errorf("%s: %w", r.name, err))
		}
	}

	return &Bundle{bundle: b}, nil
}

// MustNew is like New but panics on error.
func MustNew(opts ...Option) *Bundle {
	b, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return b
}

// Languages lists the languages that have at least one message.
func (b *Bundle) Languages() []string {
	tags := b.bundle.LanguageTags()
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, t.String())
	}
	return out
}
