package inbound

import (
	"github.com/fastkeycloak/otpstep/internal/otpstep/usecase"
	"github.com/fastkeycloak/otpstep/internal/pkg/router"
)

// HTTPEndpoint exposes the passcode step to the host authentication flow.
type HTTPEndpoint struct {
	uc uc
}

// Begin starts the passcode step for an attempt: resolves the channel,
// issues and delivers a code, and returns the challenge to present.
func (h *HTTPEndpoint) Begin(r *router.Request) (any, error) {
	var req BeginRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	out, err := h.uc.Begin(r.Context(), usecase.BeginInput{
		AttemptID: req.AttemptID,
		User:      req.User.toEntity(),
	})
	if err != nil {
		return nil, err
	}

	return newOutcomeResponse(out), nil
}

// Verify handles a form submission: a channel selection or a passcode.
func (h *HTTPEndpoint) Verify(r *router.Request) (any, error) {
	var req VerifyRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	out, err := h.uc.Verify(r.Context(), usecase.VerifyInput{
		AttemptID: req.AttemptID,
		User:      req.User.toEntity(),
		Channel:   req.Channel,
		Code:      req.Code,
	})
	if err != nil {
		return nil, err
	}

	return newOutcomeResponse(out), nil
}
