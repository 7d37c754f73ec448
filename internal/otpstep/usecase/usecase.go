package usecase

import (
	"context"
	"time"

	"github.com/fastkeycloak/otpstep/internal/otpstep/entity"
	"github.com/fastkeycloak/otpstep/internal/otpstep/outbound/delivery"
	"github.com/fastkeycloak/otpstep/internal/pkg/clock"
	"github.com/fastkeycloak/otpstep/internal/pkg/config"
	"github.com/fastkeycloak/otpstep/internal/pkg/instrument"
	"github.com/fastkeycloak/otpstep/internal/pkg/otpcode"
	"github.com/fastkeycloak/otpstep/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type sessionStore interface {
	SetNotes(ctx context.Context, attemptID string, notes map[string]string, ttl time.Duration) error
	GetNotes(ctx context.Context, attemptID string) (map[string]string, error)
	Clear(ctx context.Context, attemptID string) error
}

type providerRegistry interface {
	Get(ch entity.Channel) (delivery.Provider, bool)
}

type Usecase struct {
	sessions  sessionStore
	providers providerRegistry
	codegen   otpcode.Generator
	validator validator.Validator
	cfg       config.Config
	clock     clock.Clocker
	ins       instrument.Instrumentation
}

type Dependency struct {
	Sessions   sessionStore
	Providers  providerRegistry
	Codegen    otpcode.Generator
	Validator  validator.Validator
	Config     config.Config
	Clock      clock.Clocker
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		sessions:  dep.Sessions,
		providers: dep.Providers,
		codegen:   dep.Codegen,
		validator: dep.Validator,
		cfg:       dep.Config,
		clock:     dep.Clock,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("otpstep.usecase").Start(ctx, name)
}
