package feedback

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrymomot/feedback/core/body"
	"github.com/dmitrymomot/feedback/core/email"
	"github.com/dmitrymomot/feedback/core/form"
	"github.com/dmitrymomot/feedback/core/i18n"
	"github.com/dmitrymomot/feedback/core/logger"
)

// Config assembles a feedback dialog. Setters mutate the receiver and return it.
// A Config is not safe for concurrent mutation; Show takes a snapshot, so a
// Config may be reused for several dialogs.
type Config struct {
	title    string
	appName  string
	positive string
	negative string
	fields   *form.Model
	mode     body.OutputMode
	email    email.Config
}

// New starts a configuration that sends with the given email settings.
func New(cfg email.Config) *Config {
	return &Config{
		fields: form.NewModel(),
		mode:   body.HTMLMode,
		email:  cfg,
	}
}

// SetAppName names the application in the default title.
func (c *Config) SetAppName(name string) *Config {
	c.appName = name
	return c
}

// AddField appends a custom labeled field. Labels may repeat.
func (c *Config) AddField(label string) *Config {
	c.fields.AddField(label)
	return c
}

// SetPositiveButtonText overrides the "Send" label.
func (c *Config) SetPositiveButtonText(text string) *Config {
	c.positive = text
	return c
}

// SetNegativeButtonText overrides the "Cancel" label.
func (c *Config) SetNegativeButtonText(text string) *Config {
	c.negative = text
	return c
}

// SetDialogTitle sets an explicit title. It wins over the app name.
func (c *Config) SetDialogTitle(title string) *Config {
	c.title = title
	return c
}

// SetTextEmail sends plain text when true and an HTML table otherwise.
func (c *Config) SetTextEmail(plain bool) *Config {
	if plain {
		c.mode = body.PlainTextMode
	} else {
		c.mode = body.HTMLMode
	}
	return c
}

// SetOutputMode picks the body format directly, including body.SafeHTMLMode.
func (c *Config) SetOutputMode(mode body.OutputMode) *Config {
	c.mode = mode
	return c
}

// Title returns the effective dialog title in English.
func (c *Config) Title() string {
	return c.titleFor(defaultTranslator())
}

// Fields returns the custom field labels in order.
func (c *Config) Fields() []string {
	return c.fields.Labels()
}

// OutputMode returns the configured body format.
func (c *Config) OutputMode() body.OutputMode {
	return c.mode
}

// EmailConfig returns the email settings the dialog will send with.
func (c *Config) EmailConfig() email.Config {
	return c.email
}

func (c *Config) titleFor(tr *i18n.Translator) string {
	switch {
	case c.title != "":
		return c.title
	case c.appName != "":
		return tr.T(i18n.MsgTitleWithApp, i18n.M{"AppName": c.appName})
	default:
		return tr.T(i18n.MsgDefaultTitle)
	}
}

// settings is the frozen copy a Dialog works from.
type settings struct {
	render RenderData
	fields *form.Model
	mode   body.OutputMode
	email  email.Config
}

func (c *Config) freeze(tr *i18n.Translator, emailCfg email.Config) settings {
	positive := c.positive
	if positive == "" {
		positive = tr.T(i18n.MsgSend)
	}
	negative := c.negative
	if negative == "" {
		negative = tr.T(i18n.MsgCancel)
	}
	labels := c.fields.Labels()
	return settings{
		render: RenderData{
			Title:              c.titleFor(tr),
			PositiveLabel:      positive,
			NegativeLabel:      negative,
			PrimaryPlaceholder: tr.T(i18n.MsgPlaceholder),
			Fields:             labels,
		},
		fields: form.NewModel(labels...),
		mode:   c.mode,
		email:  emailCfg,
	}
}

// Show validates the email settings, renders the dialog through host and
// returns the controller for it. Nothing is rendered when the email settings
// are incomplete or malformed. ctx bounds the dialog's network checks and sends.
func (c *Config) Show(ctx context.Context, host Host, sender email.EmailSender, opts ...Option) (*Dialog, error) {
	emailCfg, err := c.email.Normalize()
	if err != nil {
		return nil, errors.Join(ErrInvalidEmailConfig, err)
	}
	if err := emailCfg.Validate(); err != nil {
		return nil, errors.Join(ErrInvalidEmailConfig, err)
	}
	if host == nil {
		return nil, ErrNoHost
	}
	if sender == nil {
		return nil, ErrNoSender
	}
	if ctx == nil {
		ctx = context.Background()
	}

	o := buildOptions(opts)
	s := c.freeze(o.translator, emailCfg)

	bindings, err := host.Render(s.render)
	if err != nil {
		return nil, fmt.Errorf("feedback: render dialog: %w", err)
	}
	fields, ok := s.fields.Bind(bindings.Fields)
	if !ok {
		return nil, fmt.Errorf("%w: want %d, got %d", ErrBindingMismatch, s.fields.Len(), len(bindings.Fields))
	}

	d := &Dialog{
		ctx:      ctx,
		host:     host,
		sender:   sender,
		settings: s,
		form:     form.New(bindings.Primary, fields...),
		network:  o.network,
		log:      o.log.With(logger.Component("feedback_dialog")),
		tr:       o.translator,
		status:   Status{State: Idle},
	}
	d.log.Debug("feedback dialog shown",
		logger.Count("fields", s.fields.Len()),
		logger.Key("output_mode", s.mode.String()),
	)
	return d, nil
}
