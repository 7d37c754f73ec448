package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/fastkeycloak/otpstep/internal/otpstep/entity"
	"github.com/fastkeycloak/otpstep/internal/otpstep/outbound/delivery"
	"github.com/fastkeycloak/otpstep/internal/otpstep/outbound/session"
	"github.com/fastkeycloak/otpstep/internal/pkg/clock"
	"github.com/fastkeycloak/otpstep/internal/pkg/config"
	"github.com/fastkeycloak/otpstep/internal/pkg/instrument"
	"github.com/fastkeycloak/otpstep/internal/pkg/validator"
)

type stubCodegen struct {
	code string
	err  error
}

func (s stubCodegen) Generate(uint, bool) (string, error) { return s.code, s.err }

type fakeProvider struct {
	ch         entity.Channel
	configured bool
	sendErr    error
	calls      int
	lastCode   string
	lastUser   entity.UserContact
	lastCfg    delivery.Config
}

func (f *fakeProvider) Channel() entity.Channel { return f.ch }

func (f *fakeProvider) IsConfigured(delivery.Config) bool { return f.configured }

func (f *fakeProvider) Send(_ context.Context, code string, user entity.UserContact, cfg delivery.Config) error {
	f.calls++
	f.lastCode = code
	f.lastUser = user
	f.lastCfg = cfg
	return f.sendErr
}

type testEnv struct {
	uc    *Usecase
	store *session.MemoryStore
	clk   *clock.Fixed
	email *fakeProvider
	sms   *fakeProvider
}

func newTestEnv(t *testing.T, yaml string) *testEnv {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte(yaml))
	if err != nil {
		t.Fatalf("config.NewViperFromBytes() error = %v", err)
	}
	t.Cleanup(func() { _ = cfg.Close() })

	v, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("validator.NewV10Validator() error = %v", err)
	}

	env := &testEnv{
		store: session.NewMemoryStore(),
		clk:   &clock.Fixed{At: time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)},
		email: &fakeProvider{ch: entity.ChannelEmail, configured: true},
		sms:   &fakeProvider{ch: entity.ChannelSMS, configured: true},
	}
	env.uc = New(Dependency{
		Sessions:   env.store,
		Providers:  delivery.NewRegistry(env.email, env.sms),
		Codegen:    stubCodegen{code: "123456"},
		Validator:  v,
		Config:     cfg,
		Clock:      env.clk,
		Instrument: instrument.NewNoop(),
	})
	return env
}

func userEmailOnly() entity.UserContact {
	return entity.UserContact{Username: "jdoe", Email: "jdoe@example.com"}
}

func userPhoneOnly() entity.UserContact {
	return entity.UserContact{Username: "jdoe", PhoneNumber: "+15551234567"}
}

func userBoth() entity.UserContact {
	return entity.UserContact{Username: "jdoe", Email: "jdoe@example.com", PhoneNumber: "+15551234567"}
}
