package inbound

import (
	"context"

	"github.com/fastkeycloak/otpstep/internal/otpstep/entity"
	"github.com/fastkeycloak/otpstep/internal/otpstep/usecase"
	"github.com/fastkeycloak/otpstep/internal/pkg/router"
)

type uc interface {
	Begin(ctx context.Context, in usecase.BeginInput) (*entity.Outcome, error)
	Verify(ctx context.Context, in usecase.VerifyInput) (*entity.Outcome, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/api/v1/otp/begin", end.Begin)
	r.POST("/api/v1/otp/verify", end.Verify)
}
