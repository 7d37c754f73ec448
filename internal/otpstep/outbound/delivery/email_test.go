package delivery

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fastkeycloak/otpstep/internal/otpstep/entity"
)

type fakeEmailSender struct {
	to      string
	subject string
	attrs   map[string]string
	err     error
	calls   int
}

func (f *fakeEmailSender) Send(_ context.Context, to, subject string, attrs map[string]string) error {
	f.calls++
	f.to = to
	f.subject = subject
	f.attrs = attrs
	return f.err
}

func TestEmailSend(t *testing.T) {
	sender := &fakeEmailSender{}
	provider := NewEmail(sender)
	user := entity.UserContact{Username: "jdoe", Email: "jdoe@example.com"}
	cfg := Config{RealmName: "acme", TTL: 300 * time.Second, EmailSubject: "Your Authentication Code"}

	err := provider.Send(context.Background(), "123456", user, cfg)

	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if sender.to != "jdoe@example.com" || sender.subject != "Your Authentication Code" {
		t.Fatalf("sent to %q with subject %q", sender.to, sender.subject)
	}
	if sender.attrs["code"] != "123456" || sender.attrs["ttl_minutes"] != "5" || sender.attrs["realm_name"] != "acme" {
		t.Fatalf("attrs = %v", sender.attrs)
	}
}

func TestEmailSendNoDestination(t *testing.T) {
	sender := &fakeEmailSender{}
	provider := NewEmail(sender)

	err := provider.Send(context.Background(), "123456", entity.UserContact{Username: "jdoe"}, Config{})

	if !errors.Is(err, ErrNoDestination) {
		t.Fatalf("Send() error = %v, want ErrNoDestination", err)
	}
	if sender.calls != 0 {
		t.Fatalf("sender called %d times, want 0", sender.calls)
	}
}

func TestEmailSendWrapsSenderError(t *testing.T) {
	boom := errors.New("smtp down")
	provider := NewEmail(&fakeEmailSender{err: boom})
	user := entity.UserContact{Email: "jdoe@example.com"}

	err := provider.Send(context.Background(), "123456", user, Config{TTL: time.Minute})

	if !errors.Is(err, boom) {
		t.Fatalf("Send() error = %v, want wrapped smtp error", err)
	}
}

func TestEmailIsAlwaysConfigured(t *testing.T) {
	if !NewEmail(&fakeEmailSender{}).IsConfigured(Config{}) {
		t.Fatal("IsConfigured() = false, want true")
	}
}
