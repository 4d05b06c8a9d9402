package utils

import (
	"fmt"
	"os"
	"strconv"
	"sync"

	"gopkg.in/gomail.v2"

	"github.com/jaytaylor/html2text"
)

type smtpConfig struct {
	Host string
	Port int
	User string
	Pass string
}

var (
	mailOnce sync.Once
	mailCfg  smtpConfig
)

// smtpPort parses the configured port, falling back to the submission
// port when unset or malformed.
func smtpPort(raw string) int {
	port, err := strconv.Atoi(raw)
	if err != nil || port <= 0 {
		return 587
	}
	return port
}

// loadSMTPConfig reads the relay settings from the environment once. The
// .env file is loaded during db.Init, before any mail is sent.
func loadSMTPConfig() smtpConfig {
	mailOnce.Do(func() {
		mailCfg = smtpConfig{
			Host: os.Getenv("SMTP_HOST"),
			Port: smtpPort(os.Getenv("SMTP_PORT")),
			User: os.Getenv("EMAIL_USER"),
			Pass: os.Getenv("EMAIL_PASS"),
		}
	})
	return mailCfg
}

// SendEmail delivers an HTML message through the configured SMTP relay,
// with a plain-text alternative for clients that strip markup.
func SendEmail(to, subject, body string) error {
	cfg := loadSMTPConfig()
	if cfg.Host == "" {
		return fmt.Errorf("SMTP_HOST is not configured")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", cfg.User)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	if plain, err := html2text.FromString(body); err == nil {
		m.SetBody("text/plain", plain)
		m.AddAlternative("text/html", body)
	} else {
		m.SetBody("text/html", body)
	}

	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Pass)
	return d.DialAndSend(m)
}
