// Package mailer delivers contact form submissions by SMTP.
package mailer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/mail"
	"net/smtp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// MaxMessageLength caps the body of a contact message, in characters.
const MaxMessageLength = 5000

// ErrNotConfigured is returned when no SMTP host or recipient is set.
var ErrNotConfigured = errors.New("contact mail is not configured")

// Message is one contact form submission.
type Message struct {
	Name  string
	Email string
	Body  string
}

// ValidationError lists the form fields that failed validation.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		names = append(names, k)
	}
	return "invalid contact message: " + strings.Join(names, ", ")
}

// Validate trims the message in place and checks every field.
func (m *Message) Validate() error {
	m.Name = strings.TrimSpace(m.Name)
	m.Email = strings.TrimSpace(m.Email)
	m.Body = strings.TrimSpace(m.Body)

	fields := map[string]string{}
	if m.Name == "" {
		fields["name"] = "Please enter your name."
	} else if strings.ContainsAny(m.Name, "\r\n") {
		fields["name"] = "Name must be a single line."
	}
	if addr, err := mail.ParseAddress(m.Email); err != nil || addr.Address != m.Email {
		fields["email"] = "Please enter a valid email address."
	}
	if m.Body == "" {
		fields["message"] = "Please enter a message."
	} else if utf8.RuneCountInString(m.Body) > MaxMessageLength {
		fields["message"] = fmt.Sprintf("Messages are limited to %d characters.", MaxMessageLength)
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Mailer sends contact messages.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPConfig holds the relay and addresses used by SMTPMailer.
type SMTPConfig struct {
	Host string
	Port int
	User string
	Pass string
	From string // defaults to User
	To   string
}

// SMTPMailer sends plain-text mail through an SMTP relay.
type SMTPMailer struct {
	cfg      SMTPConfig
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPMailer returns a mailer for cfg.
func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	if cfg.From == "" {
		cfg.From = cfg.User
	}
	return &SMTPMailer{cfg: cfg, sendMail: smtp.SendMail}
}

// Configured reports whether Send can work at all.
func (m *SMTPMailer) Configured() bool {
	return m.cfg.Host != "" && m.cfg.To != "" && m.cfg.From != ""
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	if !m.Configured() {
		return ErrNotConfigured
	}
	if err := msg.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	var auth smtp.Auth
	if m.cfg.User != "" {
		auth = smtp.PlainAuth("", m.cfg.User, m.cfg.Pass, m.cfg.Host)
	}

	addr := net.JoinHostPort(m.cfg.Host, strconv.Itoa(m.cfg.Port))
	if err := m.sendMail(addr, auth, m.cfg.From, []string{m.cfg.To}, m.compose(msg)); err != nil {
		return fmt.Errorf("send contact mail: %w", err)
	}
	slog.Info("Contact message sent", "from", msg.Email)
	return nil
}

func (m *SMTPMailer) compose(msg Message) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "To: %s\r\n", m.cfg.To)
	fmt.Fprintf(&b, "From: %s\r\n", m.cfg.From)
	fmt.Fprintf(&b, "Reply-To: %s\r\n", (&mail.Address{Name: msg.Name, Address: msg.Email}).String())
	fmt.Fprintf(&b, "Subject: Portfolio Contact: %s\r\n", msg.Name)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString("New contact form submission from your portfolio:\r\n\r\n")
	fmt.Fprintf(&b, "Name: %s\r\nEmail: %s\r\nMessage:\r\n", msg.Name, msg.Email)
	b.WriteString(strings.ReplaceAll(strings.ReplaceAll(msg.Body, "\r\n", "\n"), "\n", "\r\n"))
	b.WriteString("\r\n")
	return []byte(b.String())
}
