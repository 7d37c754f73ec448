package delivery

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fastkeycloak/otpstep/internal/otpstep/entity"
)

func smsConfig() Config {
	return Config{
		TwilioAccountSID: "AC123",
		TwilioAuthToken:  "secret",
		TwilioFromNumber: "+15550001111",
		CountryCode:      "+49",
		SMSTemplate:      "Your verification code is: %s",
	}
}

func TestTwilioSend(t *testing.T) {
	var gotPath, gotAuthSID, gotAuthToken, gotContentType string
	var gotForm map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuthSID, gotAuthToken, _ = r.BasicAuth()
		gotContentType = r.Header.Get("Content-Type")
		if err := r.ParseForm(); err != nil {
			t.Errorf("ParseForm() error = %v", err)
		}
		gotForm = map[string]string{
			"To":   r.PostFormValue("To"),
			"From": r.PostFormValue("From"),
			"Body": r.PostFormValue("Body"),
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	provider := NewTwilio(5*time.Second, srv.URL)
	user := entity.UserContact{Username: "jdoe", PhoneNumber: "0176-1234567"}

	err := provider.Send(context.Background(), "123456", user, smsConfig())

	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if gotPath != "/2010-04-01/Accounts/AC123/Messages.json" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotAuthSID != "AC123" || gotAuthToken != "secret" {
		t.Fatalf("basic auth = %q:%q", gotAuthSID, gotAuthToken)
	}
	if gotContentType != "application/x-www-form-urlencoded" {
		t.Fatalf("content type = %q", gotContentType)
	}
	if gotForm["To"] != "+491761234567" {
		t.Fatalf("To = %q, want normalized +491761234567", gotForm["To"])
	}
	if gotForm["From"] != "+15550001111" {
		t.Fatalf("From = %q", gotForm["From"])
	}
	if gotForm["Body"] != "Your verification code is: 123456" {
		t.Fatalf("Body = %q", gotForm["Body"])
	}
}

func TestTwilioSendNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"authenticate"}`))
	}))
	defer srv.Close()

	provider := NewTwilio(5*time.Second, srv.URL)
	user := entity.UserContact{PhoneNumber: "+491761234567"}

	err := provider.Send(context.Background(), "123456", user, smsConfig())

	if err == nil {
		t.Fatal("Send() error = nil, want carrier error")
	}
	if !strings.Contains(err.Error(), "401") || !strings.Contains(err.Error(), "authenticate") {
		t.Fatalf("Send() error = %v, want status and body in message", err)
	}
}

func TestTwilioSendTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // refuse connections

	provider := NewTwilio(time.Second, srv.URL)
	user := entity.UserContact{PhoneNumber: "+491761234567"}

	err := provider.Send(context.Background(), "123456", user, smsConfig())

	if err == nil {
		t.Fatal("Send() error = nil, want transport error")
	}
}

func TestTwilioSendNoDestination(t *testing.T) {
	provider := NewTwilio(time.Second, "http://unused.invalid")

	err := provider.Send(context.Background(), "123456", entity.UserContact{Username: "jdoe"}, smsConfig())

	if !errors.Is(err, ErrNoDestination) {
		t.Fatalf("Send() error = %v, want ErrNoDestination", err)
	}
}

func TestTwilioIsConfigured(t *testing.T) {
	provider := NewTwilio(time.Second, "")

	tests := []struct {
		name string
		mod  func(*Config)
		want bool
	}{
		{name: "AllPresent", mod: func(*Config) {}, want: true},
		{name: "MissingSID", mod: func(c *Config) { c.TwilioAccountSID = "" }, want: false},
		{name: "MissingToken", mod: func(c *Config) { c.TwilioAuthToken = "" }, want: false},
		{name: "MissingFrom", mod: func(c *Config) { c.TwilioFromNumber = "" }, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := smsConfig()
			tt.mod(&cfg)
			if got := provider.IsConfigured(cfg); got != tt.want {
				t.Fatalf("IsConfigured() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRegistryGet(t *testing.T) {
	email := NewEmail(&fakeEmailSender{})
	sms := NewTwilio(time.Second, "")
	reg := NewRegistry(email, sms)

	if p, ok := reg.Get(entity.ChannelEmail); !ok || p != Provider(email) {
		t.Fatalf("Get(email) = (%v, %v)", p, ok)
	}
	if p, ok := reg.Get(entity.ChannelSMS); !ok || p != Provider(sms) {
		t.Fatalf("Get(sms) = (%v, %v)", p, ok)
	}
	if _, ok := reg.Get(entity.Channel(99)); ok {
		t.Fatal("Get(unknown) ok = true, want false")
	}
}
