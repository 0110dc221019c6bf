package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/arvyax/wellness-sessions/internal/logger"
)

// SMTPMailer delivers password-reset links over SMTP.
type SMTPMailer struct {
	addr      string // host:port
	from      string
	auth      smtp.Auth
	clientURL string
}

// NewSMTPMailer creates a mailer. username and password may be empty for
// unauthenticated relays.
func NewSMTPMailer(host string, port int, from, username, password, clientURL string) *SMTPMailer {
	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}
	return &SMTPMailer{
		addr:      fmt.Sprintf("%s:%d", host, port),
		from:      from,
		auth:      auth,
		clientURL: strings.TrimRight(clientURL, "/"),
	}
}

// Send delivers the reset link for the given token to the user's email.
func (m *SMTPMailer) Send(ctx context.Context, email, username, token string) error {
	msg := m.buildMessage(email, username, token)
	return smtp.SendMail(m.addr, m.auth, m.from, []string{email}, msg)
}

func (m *SMTPMailer) buildMessage(email, username, token string) []byte {
	resetURL := fmt.Sprintf("%s/reset-password/%s", m.clientURL, token)

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", m.from)
	fmt.Fprintf(&b, "To: %s\r\n", email)
	b.WriteString("Subject: Password Reset Request - Wellness Sessions\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	fmt.Fprintf(&b, `<p>Hello %s,</p>
<p>You requested a password reset for your Wellness Sessions account.</p>
<p><a href="%s">Reset Password</a></p>
<p><strong>This link will expire in 1 hour.</strong></p>
<p>If you didn't request this password reset, please ignore this email.</p>
<p>If the link doesn't work, copy and paste it into your browser:</p>
<p>%s</p>
`, username, resetURL, resetURL)

	return []byte(b.String())
}

// NoopMailer is used when SMTP is not configured. It drops messages on the
// floor; the token itself is never written to the log.
type NoopMailer struct{}

// Send logs that delivery is disabled and discards the message.
func (NoopMailer) Send(ctx context.Context, email, username, token string) error {
	logger.Log.Infow("mailer disabled, reset email not sent", "email", email)
	return nil
}
