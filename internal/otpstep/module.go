// Package otpstep is the multi-channel one-time passcode step: channel
// resolution, code issuance and delivery, and verification for one
// authentication attempt.
package otpstep

import (
	"github.com/redis/go-redis/v9"

	"github.com/fastkeycloak/otpstep/internal/otpstep/inbound"
	"github.com/fastkeycloak/otpstep/internal/otpstep/outbound/delivery"
	"github.com/fastkeycloak/otpstep/internal/otpstep/outbound/mailsender"
	"github.com/fastkeycloak/otpstep/internal/otpstep/outbound/session"
	"github.com/fastkeycloak/otpstep/internal/otpstep/usecase"
	"github.com/fastkeycloak/otpstep/internal/pkg/clock"
	"github.com/fastkeycloak/otpstep/internal/pkg/config"
	"github.com/fastkeycloak/otpstep/internal/pkg/instrument"
	"github.com/fastkeycloak/otpstep/internal/pkg/mail"
	"github.com/fastkeycloak/otpstep/internal/pkg/otpcode"
	"github.com/fastkeycloak/otpstep/internal/pkg/router"
	"github.com/fastkeycloak/otpstep/internal/pkg/validator"
)

type Dependency struct {
	CacheConn  *redis.Client              `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Mail       mail.Mail                  `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	sender, err := mailsender.New(dep.Mail, dep.Config.GetString("otp.email.body_template"))
	if err != nil {
		return err
	}

	providers := delivery.NewRegistry(
		delivery.NewEmail(sender),
		delivery.NewTwilio(dep.Config.GetSecond("otp.sms.timeout"), dep.Config.GetString("otp.sms.base_url")),
	)

	uc := usecase.New(usecase.Dependency{
		Sessions:   session.NewRedisStore(dep.CacheConn),
		Providers:  providers,
		Codegen:    otpcode.NewRandom(),
		Validator:  dep.Validator,
		Config:     dep.Config,
		Clock:      dep.Clock,
		Instrument: dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
