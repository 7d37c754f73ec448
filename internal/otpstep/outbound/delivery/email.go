package delivery

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/fastkeycloak/otpstep/internal/otpstep/entity"
)

// EmailSender renders and sends the passcode email. The implementation owns
// the template; this provider only supplies the attributes.
type EmailSender interface {
	Send(ctx context.Context, to, subject string, attrs map[string]string) error
}

// Email delivers passcodes to the user's email address.
type Email struct {
	sender EmailSender
}

// NewEmail creates the email provider on top of the given sender.
func NewEmail(sender EmailSender) *Email {
	return &Email{sender: sender}
}

func (e *Email) Channel() entity.Channel {
	return entity.ChannelEmail
}

// IsConfigured always reports true: email delivery rides on the host
// platform's mail setup and needs no channel-specific credentials.
func (e *Email) IsConfigured(Config) bool {
	return true
}

func (e *Email) Send(ctx context.Context, code string, user entity.UserContact, cfg Config) error {
	if !user.HasEmail() {
		return ErrNoDestination
	}

	attrs := map[string]string{
		"code":        code,
		"ttl_minutes": strconv.Itoa(int(cfg.TTL / time.Minute)),
		"realm_name":  cfg.RealmName,
	}

	if err := e.sender.Send(ctx, user.Email, cfg.EmailSubject, attrs); err != nil {
		return fmt.Errorf("send passcode email: %w", err)
	}

	return nil
}
