package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/feedback"
	"github.com/dmitrymomot/feedback/core/body"
	"github.com/dmitrymomot/feedback/core/config"
	"github.com/dmitrymomot/feedback/core/email"
	"github.com/dmitrymomot/feedback/core/i18n"
	"github.com/dmitrymomot/feedback/core/logger"
	"github.com/dmitrymomot/feedback/core/validator"
	"github.com/dmitrymomot/feedback/integration/email/postmark"
	"github.com/dmitrymomot/feedback/integration/email/smtp"
	"github.com/dmitrymomot/feedback/integration/terminal"
	"github.com/dmitrymomot/feedback/pkg/netcheck"
)

// settings is everything the demo reads from the environment.
type settings struct {
	SMTP     smtp.Config
	Postmark postmark.Config
	Language string `env:"FEEDBACK_LANG" envDefault:"en"`
}

var errInvalidAccount = errors.New("account must be a valid email address")

// newApp builds the root command. A nil prompter means interactive survey prompts.
func newApp(prompter terminal.Prompter) *cli.Command {
	if prompter == nil {
		prompter = terminal.SurveyPrompter{}
	}
	return &cli.Command{
		Name:  "feedback",
		Usage: "collect feedback in the terminal and send it by email",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "account", Aliases: []string{"a"}, Usage: "email account the feedback is sent from (FEEDBACK_FROM_EMAIL)"},
			&cli.StringFlag{Name: "password", Aliases: []string{"p"}, Usage: "password of the account (FEEDBACK_PASSWORD)"},
			&cli.StringFlag{Name: "recipient", Aliases: []string{"r"}, Usage: "where feedback is delivered; defaults to the account"},
			&cli.StringFlag{Name: "subject", Usage: "email subject (FEEDBACK_SUBJECT)"},
			&cli.StringFlag{Name: "app-name", Usage: "application name shown in the title"},
			&cli.StringFlag{Name: "title", Aliases: []string{"t"}, Usage: "dialog title; wins over --app-name"},
			&cli.BoolFlag{Name: "plain-text", Usage: "send a plain-text body instead of an HTML table"},
			&cli.StringFlag{Name: "output", Value: "html", Usage: "body format: html, text or safe-html"},
			&cli.BoolFlag{Name: "with-name", Usage: "add a Name field"},
			&cli.BoolFlag{Name: "with-email", Usage: "add an Email field"},
			&cli.StringSliceFlag{Name: "field", Aliases: []string{"f"}, Usage: "add a custom field (repeatable)"},
			&cli.StringFlag{Name: "transport", Value: "smtp", Usage: "smtp or postmark"},
			&cli.StringFlag{Name: "dev-dir", Usage: "write messages to this directory instead of sending them"},
			&cli.StringFlag{Name: "lang", Usage: "language of the dialog (FEEDBACK_LANG)"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "debug logging to stderr"},
			&cli.BoolFlag{Name: "json-logs", Usage: "log as JSON"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return run(ctx, cmd, prompter)
		},
	}
}

func run(ctx context.Context, cmd *cli.Command, prompter terminal.Prompter) error {
	var s settings
	if err := config.Load(&s); err != nil {
		return err
	}

	log := newLogger(cmd)

	lang := s.Language
	if v := cmd.String("lang"); v != "" {
		lang = v
	}
	bundle, err := i18n.New()
	if err != nil {
		return err
	}
	tr := i18n.NewTranslator(bundle, lang, "en")

	account, err := resolveAccount(ctx, cmd, prompter, s.SMTP.Config)
	if err != nil {
		return err
	}

	sender, network, err := newSender(cmd, s, account)
	if err != nil {
		return err
	}

	mode, err := body.ParseOutputMode(cmd.String("output"))
	if err != nil {
		return err
	}
	if cmd.Bool("plain-text") {
		mode = body.PlainTextMode
	}

	cfg := feedback.New(account).
		SetAppName(cmd.String("app-name")).
		SetDialogTitle(cmd.String("title")).
		SetOutputMode(mode)
	if cmd.Bool("with-name") {
		cfg.AddField("Name")
	}
	if cmd.Bool("with-email") {
		cfg.AddField("Email")
	}
	for _, label := range cmd.StringSlice("field") {
		cfg.AddField(label)
	}

	host := terminal.New(terminal.WithPrompter(prompter), terminal.WithOutput(cmd.Writer))
	dlg, err := cfg.Show(ctx, host, sender,
		feedback.WithLogger(log),
		feedback.WithTranslator(tr),
		feedback.WithNetworkChecker(network),
	)
	if err != nil {
		return err
	}
	return host.Run(ctx, dlg)
}

func newLogger(cmd *cli.Command) *slog.Logger {
	if !cmd.Bool("verbose") {
		return logger.Nop()
	}
	opts := []logger.Option{
		logger.WithDevelopment("feedback"),
		logger.WithOutput(os.Stderr),
	}
	if cmd.Bool("json-logs") {
		opts = append(opts, logger.WithJSONFormatter())
	}
	return logger.New(opts...)
}

// resolveAccount merges flags over the environment and prompts for whatever is
// still missing. The recipient defaults to the account itself.
func resolveAccount(ctx context.Context, cmd *cli.Command, prompter terminal.Prompter, env email.Config) (email.Config, error) {
	account := env
	if v := cmd.String("account"); v != "" {
		account.FromEmail = v
	}
	if v := cmd.String("password"); v != "" {
		account.Password = v
	}
	if v := cmd.String("recipient"); v != "" {
		account.RecipientEmail = v
	}
	if v := cmd.String("subject"); v != "" {
		account.Subject = v
	}
	if account.Subject == "" {
		account.Subject = "Feedback"
	}

	checkEmail := func(s string) error {
		if !validator.IsEmail(strings.TrimSpace(s)) {
			return errInvalidAccount
		}
		return nil
	}

	if account.FromEmail == "" {
		v, err := prompter.Input(ctx, terminal.InputConfig{Message: "Email account", Validator: checkEmail})
		if err != nil {
			return account, err
		}
		account.FromEmail = strings.TrimSpace(v)
	}
	if err := checkEmail(account.FromEmail); err != nil {
		return account, fmt.Errorf("%w: %q", errInvalidAccount, account.FromEmail)
	}
	if account.Password == "" {
		v, err := prompter.Password(ctx, terminal.InputConfig{Message: "Password"})
		if err != nil {
			return account, err
		}
		account.Password = v
	}
	if account.RecipientEmail == "" {
		account.RecipientEmail = account.FromEmail
	}
	return account, nil
}

func newSender(cmd *cli.Command, s settings, account email.Config) (email.EmailSender, feedback.NetworkChecker, error) {
	if dir := cmd.String("dev-dir"); dir != "" {
		always := feedback.NetworkFunc(func(context.Context) bool { return true })
		return email.NewDevSender(dir), always, nil
	}

	switch cmd.String("transport") {
	case "postmark":
		pc := s.Postmark
		pc.Config = account
		sender, err := postmark.New(pc)
		if err != nil {
			return nil, nil, err
		}
		return sender, netcheck.New(netcheck.WithAddresses("api.postmarkapp.com:443")), nil
	case "", "smtp":
		sc := s.SMTP
		sc.Config = account
		sender, err := smtp.New(sc)
		if err != nil {
			return nil, nil, err
		}
		addr := net.JoinHostPort(sc.Host, strconv.Itoa(sc.Port))
		return sender, netcheck.New(netcheck.WithAddresses(addr)), nil
	default:
		return nil, nil, fmt.Errorf("unknown transport %q", cmd.String("transport"))
	}
}
