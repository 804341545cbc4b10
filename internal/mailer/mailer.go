package mailer

import (
	"bytes"
	"context"
	"deepdetect/internal/config"
	"fmt"
	"html/template"

	"github.com/wneessen/go-mail"
)

const senderName = "DeepDetect"

var resetTemplate = template.Must(template.New("reset").Parse(
	`<p>Click <a href="{{.Link}}">here</a> to reset your password. Link expires in 1 hour.</p>`))

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Sender . Sender
type Sender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// Mailer delivers transactional emails over SMTP.
type Mailer struct {
	from   string
	sender Sender
}

func NewMailer(sender Sender, from string) *Mailer {
	return &Mailer{
		from:   from,
		sender: sender,
	}
}

// NewSMTPClient returns a STARTTLS client authenticating with PLAIN auth.
func NewSMTPClient(cfg config.Mail) (*mail.Client, error) {
	client, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
		mail.WithTLSPortPolicy(mail.TLSMandatory),
		mail.WithTimeout(cfg.Timeout),
	)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}
	return client, nil
}

func (m *Mailer) SendPasswordReset(ctx context.Context, to, link string) error {
	var body bytes.Buffer
	if err := resetTemplate.Execute(&body, struct{ Link string }{link}); err != nil {
		return fmt.Errorf("render reset email: %w", err)
	}

	msg := mail.NewMsg()
	if err := msg.FromFormat(senderName, m.from); err != nil {
		return fmt.Errorf("set sender: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("set recipient: %w", err)
	}
	msg.Subject("Password Reset")
	msg.SetBodyString(mail.TypeTextHTML, body.String())

	if err := m.sender.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send reset email: %w", err)
	}
	return nil
}
