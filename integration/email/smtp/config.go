package smtp

import (
	"time"

	"github.com/dmitrymomot/feedback/core/email"
)

// TLS modes.
const (
	ModeTLS      = "tls"
	ModeSTARTTLS = "starttls"
	ModePlain    = "plain"
)

// Config holds SMTP server settings. The embedded email.Config is the
// account the dialog sends from; its address and password authenticate
// unless Username or Password override them.
type Config struct {
	email.Config

	Host     string        `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	Port     int           `env:"SMTP_PORT" envDefault:"465"`
	Username string        `env:"SMTP_USERNAME"`
	Password string        `env:"SMTP_PASSWORD"`
	TLSMode  string        `env:"SMTP_TLS_MODE" envDefault:"tls"` // tls, starttls, or plain
	Timeout  time.Duration `env:"SMTP_TIMEOUT" envDefault:"30s"`
}

// Gmail returns settings for sending through a Gmail account over implicit TLS.
func Gmail(account email.Config) Config {
	return Config{
		Config:  account,
		Host:    "smtp.gmail.com",
		Port:    465,
		TLSMode: ModeTLS,
		Timeout: 30 * time.Second,
	}
}

func (c Config) username() string {
	if c.Username != "" {
		return c.Username
	}
	return c.FromEmail
}

func (c Config) password() string {
	if c.Password != "" {
		return c.Password
	}
	return c.Config.Password
}
