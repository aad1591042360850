package infra

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"net/smtp"
	"time"

	"amaru/internal/config"

	"github.com/jordan-wright/email"
)

// Adjunto is an in-memory file attached to an outgoing email.
type Adjunto struct {
	Nombre      string
	ContentType string
	Contenido   []byte
}

// Mailer sends HTML emails over a small pool of SMTP connections. Every send
// is bounded by the configured timeout.
type Mailer struct {
	from    string
	pool    *email.Pool
	timeout time.Duration
}

func NewMailer(cfg *config.Config) (*Mailer, error) {
	var auth smtp.Auth
	if cfg.SMTPUser != "" {
		auth = smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPHost)
	}
	addr := fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort)

	pool, err := email.NewPool(addr, 2, auth, &tls.Config{ServerName: cfg.SMTPHost})
	if err != nil {
		return nil, fmt.Errorf("mailer: pool: %w", err)
	}

	timeout := time.Duration(cfg.SMTPTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Mailer{from: cfg.SMTPFrom, pool: pool, timeout: timeout}, nil
}

// Send delivers an HTML message to a single recipient.
func (m *Mailer) Send(to, subject, html string, adjuntos ...Adjunto) error {
	e := email.NewEmail()
	e.From = m.from
	e.To = []string{to}
	e.Subject = subject
	e.HTML = []byte(html)

	for _, a := range adjuntos {
		if _, err := e.Attach(bytes.NewReader(a.Contenido), a.Nombre, a.ContentType); err != nil {
			return fmt.Errorf("mailer: attach %s: %w", a.Nombre, err)
		}
	}

	if err := m.pool.Send(e, m.timeout); err != nil {
		return fmt.Errorf("mailer: send to %s: %w", to, err)
	}
	return nil
}

// Close releases pooled SMTP connections.
func (m *Mailer) Close() {
	m.pool.Close()
}
