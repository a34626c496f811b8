package mailer

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/smtp"
	"time"

	"github.com/google/uuid"
)

// SMTPMailer delivers mail through a plain SMTP relay.
type SMTPMailer struct {
	Addr string // host:port
	From string
	Auth smtp.Auth
}

func NewSMTPMailer(addr, from string, auth smtp.Auth) *SMTPMailer {
	return &SMTPMailer{Addr: addr, From: from, Auth: auth}
}

func (m *SMTPMailer) SendVerification(ctx context.Context, to, code string) error {
	body, err := render(verificationTmpl, map[string]string{"Code": code})
	if err != nil {
		return &DeliveryError{Kind: "verification", Err: err}
	}
	if err := m.send(to, "Verify your email", body); err != nil {
		return &DeliveryError{Kind: "verification", Err: err}
	}
	return nil
}

func (m *SMTPMailer) SendWelcome(ctx context.Context, to, name string) error {
	body, err := render(welcomeTmpl, map[string]string{"Name": name})
	if err != nil {
		return &DeliveryError{Kind: "welcome", Err: err}
	}
	if err := m.send(to, "Welcome to Teacher Assistant Application System", body); err != nil {
		return &DeliveryError{Kind: "welcome", Err: err}
	}
	return nil
}

func (m *SMTPMailer) SendPasswordReset(ctx context.Context, to, resetURL string) error {
	body, err := render(resetTmpl, map[string]string{"URL": resetURL})
	if err != nil {
		return &DeliveryError{Kind: "password reset", Err: err}
	}
	if err := m.send(to, "Reset Your Password", body); err != nil {
		return &DeliveryError{Kind: "password reset", Err: err}
	}
	return nil
}

func (m *SMTPMailer) SendResetConfirmation(ctx context.Context, to string) error {
	if err := m.send(to, "Reset Your Password", resetConfirmationBody); err != nil {
		return &DeliveryError{Kind: "reset confirmation", Err: err}
	}
	return nil
}

func (m *SMTPMailer) send(to, subject, htmlBody string) error {
	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %s\r\n", m.From)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	fmt.Fprintf(&msg, "Message-ID: <%s@tajobs>\r\n", uuid.NewString())
	fmt.Fprintf(&msg, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)
	return smtp.SendMail(m.Addr, m.Auth, m.From, []string{to}, msg.Bytes())
}

func render(t *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
