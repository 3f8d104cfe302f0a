// Package mail delivers transactional email over SMTP.
package mail

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"html/template"
	"net"
	"time"

	gomail "github.com/wneessen/go-mail"
)

// ErrNotConfigured is returned when the SMTP transport lacks host or credentials.
var ErrNotConfigured = errors.New("smtp not configured")

// DefaultTimeout bounds an SMTP session when the config sets none.
const DefaultTimeout = 15 * time.Second

const (
	implicitTLSPort = 465
	senderName      = "WANDERLUST"
)

// Message is a single HTML email.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Mailer sends email.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPConfig holds the transport settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Timeout  time.Duration
}

// SMTPMailer sends mail through an authenticated SMTP server.
type SMTPMailer struct {
	cfg SMTPConfig
}

// NewSMTPMailer creates an SMTPMailer. Configuration is checked on each send so the
// service can start without mail settings.
func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) configured() bool {
	return m.cfg.Host != "" && m.cfg.Port > 0 && m.cfg.Username != "" && m.cfg.Password != "" && m.cfg.From != ""
}

// Send delivers msg. Port 465 uses implicit TLS, other ports use STARTTLS when offered.
// The session ends at the ctx deadline or after the configured timeout, whichever is first.
func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	if !m.configured() {
		return ErrNotConfigured
	}

	email, err := buildMessage(m.cfg.From, msg)
	if err != nil {
		return err
	}

	client, err := m.newClient()
	if err != nil {
		return fmt.Errorf("failed to create smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, email); err != nil {
		return fmt.Errorf("failed to send mail via %s: %w", m.addr(), err)
	}
	return nil
}

func (m *SMTPMailer) addr() string {
	return net.JoinHostPort(m.cfg.Host, fmt.Sprint(m.cfg.Port))
}

func (m *SMTPMailer) newClient() (*gomail.Client, error) {
	opts := []gomail.Option{
		gomail.WithPort(m.cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(m.cfg.Username),
		gomail.WithPassword(m.cfg.Password),
		gomail.WithTimeout(m.cfg.Timeout),
		gomail.WithDialContextFunc(m.dial),
	}
	if m.cfg.Port == implicitTLSPort {
		opts = append(opts, gomail.WithSSL())
	} else {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSOpportunistic))
	}
	return gomail.NewClient(m.cfg.Host, opts...)
}

// dial opens the connection with a deadline covering the whole SMTP session.
func (m *SMTPMailer) dial(ctx context.Context, network, address string) (net.Conn, error) {
	dialer := net.Dialer{Timeout: m.cfg.Timeout}
	conn, err := dialer.DialContext(ctx, network, address)
	if err != nil {
		return nil, err
	}

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(m.cfg.Timeout)
	}
	if err := conn.SetDeadline(deadline); err != nil {
		_ = conn.Close()
		return nil, err
	}

	if m.cfg.Port != implicitTLSPort {
		return conn, nil
	}
	return tls.Client(conn, &tls.Config{ServerName: m.cfg.Host, MinVersion: tls.VersionTLS12}), nil
}

func buildMessage(from string, msg Message) (*gomail.Msg, error) {
	email := gomail.NewMsg()
	if err := email.FromFormat(senderName, from); err != nil {
		return nil, fmt.Errorf("invalid sender %q: %w", from, err)
	}
	if err := email.To(msg.To); err != nil {
		return nil, fmt.Errorf("invalid recipient %q: %w", msg.To, err)
	}
	email.Subject(msg.Subject)
	email.SetBodyString(gomail.TypeTextHTML, msg.HTML)
	return email, nil
}

var resetTemplate = template.Must(template.New("reset").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <p style="font-size: 28px; font-weight: bold;"><span style="color: #3b82f6;">WANDER</span>LUST</p>
  <h2 style="color: #0284c7;">Reset Your Password</h2>
  <p>You requested a password reset. Click the button below to reset your password:</p>
  <div style="margin: 30px 0;">
    <a href="{{.URL}}" style="background-color: #0284c7; color: white; padding: 10px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">Reset Password</a>
  </div>
  <p>This link will expire in {{.Expiry}}.</p>
  <p style="color: #666;">If you didn't request this, please ignore this email and your password will remain unchanged.</p>
</div>`))

// ResetPasswordMessage builds the password reset email carrying resetURL.
func ResetPasswordMessage(to, resetURL string) (Message, error) {
	var buf bytes.Buffer
	data := struct {
		URL    string
		Expiry string
	}{URL: resetURL, Expiry: "1 hour"}

	if err := resetTemplate.Execute(&buf, data); err != nil {
		return Message{}, fmt.Errorf("failed to render reset email: %w", err)
	}

	return Message{To: to, Subject: "Password Reset Request", HTML: buf.String()}, nil
}
