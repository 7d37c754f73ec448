// Package mailsender renders the passcode email and hands it to the mail
// provider.
package mailsender

import (
	"context"
	"fmt"
	"strings"
	"text/template"

	"github.com/fastkeycloak/otpstep/internal/pkg/mail"
)

const defaultBodyTemplate = `Hello,

Your one-time code for {{.realm_name}} is:

    {{.code}}

It expires in {{.ttl_minutes}} minutes. If you did not request this code,
you can safely ignore this message.
`

// MailSender sends the passcode email over a mail.Mail provider.
type MailSender struct {
	mailer mail.Mail
	tmpl   *template.Template
}

// New creates a sender using the built-in body template. bodyTemplate may
// override it; an empty string keeps the default.
func New(mailer mail.Mail, bodyTemplate string) (*MailSender, error) {
	if bodyTemplate == "" {
		bodyTemplate = defaultBodyTemplate
	}

	tmpl, err := template.New("otp-email").Parse(bodyTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse passcode email template: %w", err)
	}

	return &MailSender{mailer: mailer, tmpl: tmpl}, nil
}

func (m *MailSender) Send(ctx context.Context, to, subject string, attrs map[string]string) error {
	var body strings.Builder
	if err := m.tmpl.Execute(&body, attrs); err != nil {
		return fmt.Errorf("render passcode email: %w", err)
	}

	return m.mailer.Send(ctx, mail.Message{
		To:       []string{to},
		Subject:  subject,
		TextBody: body.String(),
	})
}
