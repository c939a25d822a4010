package feedback

import (
	"log/slog"
	"sync"

	"github.com/dmitrymomot/feedback/core/i18n"
	"github.com/dmitrymomot/feedback/core/logger"
	"github.com/dmitrymomot/feedback/pkg/netcheck"
)

var defaultTranslator = sync.OnceValue(i18n.Default)

type options struct {
	network    NetworkChecker
	log        *slog.Logger
	translator *i18n.Translator
}

// Option customizes a dialog created by Show.
type Option func(*options)

// WithNetworkChecker replaces the default TCP reachability probe.
// Dialog.Submit calls the checker synchronously, so it should return quickly.
func WithNetworkChecker(nc NetworkChecker) Option {
	return func(o *options) {
		if nc != nil {
			o.network = nc
		}
	}
}

// WithLogger sets the logger used for submission events. Defaults to a no-op logger.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithTranslator localizes titles, button labels and notifications.
func WithTranslator(tr *i18n.Translator) Option {
	return func(o *options) {
		if tr != nil {
			o.translator = tr
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.network == nil {
		o.network = netcheck.New()
	}
	if o.log == nil {
		o.log = logger.Nop()
	}
	if o.translator == nil {
		o.translator = defaultTranslator()
	}
	return o
}
