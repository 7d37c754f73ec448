package mailsender

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fastkeycloak/otpstep/internal/pkg/mail"
)

type fakeMailer struct {
	msg   mail.Message
	err   error
	calls int
}

func (f *fakeMailer) Send(_ context.Context, msg mail.Message) error {
	f.calls++
	f.msg = msg
	return f.err
}

func (f *fakeMailer) Close() error { return nil }

func TestSendRendersDefaultTemplate(t *testing.T) {
	mailer := &fakeMailer{}
	sender, err := New(mailer, "")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	attrs := map[string]string{"code": "123456", "ttl_minutes": "5", "realm_name": "acme"}
	if err := sender.Send(context.Background(), "jdoe@example.com", "Your Authentication Code", attrs); err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	if got := mailer.msg.To; len(got) != 1 || got[0] != "jdoe@example.com" {
		t.Fatalf("To = %v", got)
	}
	if mailer.msg.Subject != "Your Authentication Code" {
		t.Fatalf("Subject = %q", mailer.msg.Subject)
	}
	for _, want := range []string{"123456", "5 minutes", "acme"} {
		if !strings.Contains(mailer.msg.TextBody, want) {
			t.Fatalf("body missing %q: %q", want, mailer.msg.TextBody)
		}
	}
}

func TestSendCustomTemplate(t *testing.T) {
	mailer := &fakeMailer{}
	sender, err := New(mailer, "code={{.code}}")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := sender.Send(context.Background(), "jdoe@example.com", "s", map[string]string{"code": "999999"}); err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if mailer.msg.TextBody != "code=999999" {
		t.Fatalf("body = %q", mailer.msg.TextBody)
	}
}

func TestNewRejectsBadTemplate(t *testing.T) {
	if _, err := New(&fakeMailer{}, "{{.code"); err == nil {
		t.Fatal("New() error = nil, want template parse error")
	}
}

func TestSendPropagatesMailerError(t *testing.T) {
	boom := errors.New("smtp down")
	sender, err := New(&fakeMailer{err: boom}, "")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	err = sender.Send(context.Background(), "jdoe@example.com", "s", map[string]string{})

	if !errors.Is(err, boom) {
		t.Fatalf("Send() error = %v, want mailer error", err)
	}
}
