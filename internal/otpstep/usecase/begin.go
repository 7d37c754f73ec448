package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/fastkeycloak/otpstep/internal/otpstep/entity"
	"github.com/fastkeycloak/otpstep/internal/otpstep/outbound/delivery"
	"github.com/fastkeycloak/otpstep/internal/otpstep/outbound/session"
	"github.com/fastkeycloak/otpstep/internal/pkg/goerror"
)

type BeginInput struct {
	AttemptID string `validate:"required"`
	User      entity.UserContact
}

// Begin starts (or restarts) the passcode step for one authentication
// attempt: it resolves the delivery channel, issues a fresh code, delivers
// it, and returns the challenge the host flow should present.
//
// Flow-level failures (no channel, delivery down) are reported inside the
// Outcome so the host can classify them; the error return is reserved for
// invalid requests and infrastructure faults.
func (s *Usecase) Begin(ctx context.Context, in BeginInput) (*entity.Outcome, error) {
	ctx, span := s.startSpan(ctx, "Begin")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	set := loadSettings(s.cfg)

	notes, err := s.sessions.GetNotes(ctx, in.AttemptID)
	if err != nil && !errors.Is(err, session.ErrAttemptNotFound) {
		slog.ErrorContext(ctx, "reading attempt state failed", "attempt_id", in.AttemptID, "error", err)
		return nil, goerror.NewServer(err)
	}

	res, ch := s.resolveChannel(ctx, in.User, set, s.storedChannel(ctx, notes))
	switch res {
	case resolutionNeedsChoice:
		slog.InfoContext(ctx, "pausing attempt for channel selection",
			"attempt_id", in.AttemptID, "username", in.User.Username)
		out := entity.ChallengeChannelSelection(s.availableChannels(in.User, set))
		return &out, nil

	case resolutionNone:
		slog.WarnContext(ctx, "no delivery channel available for user",
			"attempt_id", in.AttemptID, "username", in.User.Username)
		out := entity.Failed(entity.FailureMisconfigured)
		return &out, nil
	}

	return s.issueAndDeliver(ctx, in.AttemptID, ch, in.User, set)
}

// storedChannel reads the channel persisted earlier in the attempt, if any.
func (s *Usecase) storedChannel(ctx context.Context, notes map[string]string) *entity.Channel {
	raw, ok := notes[entity.NoteChannel]
	if !ok || raw == "" {
		return nil
	}

	ch, known := entity.ChannelFromString(raw)
	if !known {
		slog.WarnContext(ctx, "stored channel tag is unrecognized, falling back to email", "channel", raw)
	}
	return &ch
}

// issueAndDeliver is the shared issuance phase: Begin lands here after
// resolution, and Verify lands here when resuming from channel selection.
func (s *Usecase) issueAndDeliver(ctx context.Context, attemptID string, ch entity.Channel, user entity.UserContact, set Settings) (*entity.Outcome, error) {
	code, err := s.codegen.Generate(set.Length, set.AllowNumbers)
	if err != nil {
		slog.ErrorContext(ctx, "passcode generation failed", "attempt_id", attemptID, "error", err)
		out := entity.Failed(entity.FailureInternal)
		return &out, nil
	}

	issued := entity.IssuedCode{
		Code:             code,
		ExpiresAtMillis:  s.clock.Now().Add(set.TTL).UnixMilli(),
		RemainingRetries: set.MaxRetries,
	}
	notes := issued.Encode()
	notes[entity.NoteChannel] = ch.String()

	if err := s.sessions.SetNotes(ctx, attemptID, notes, set.AttemptTTL); err != nil {
		slog.ErrorContext(ctx, "storing attempt state failed", "attempt_id", attemptID, "error", err)
		return nil, goerror.NewServer(err)
	}

	if set.Simulation {
		// The production log handler masks the "code" key; simulation mode
		// deliberately uses a distinct key so operators can read it.
		slog.InfoContext(ctx, "simulation mode, skipping delivery",
			"attempt_id", attemptID, "channel", ch.String(), "simulated_code", code)
	} else {
		provider, ok := s.providers.Get(ch)
		if !ok {
			slog.ErrorContext(ctx, "no provider registered for channel", "channel", ch.String())
			out := entity.Failed(entity.FailureMisconfigured)
			return &out, nil
		}

		if err := provider.Send(ctx, code, user, set.deliveryConfig()); err != nil {
			if errors.Is(err, delivery.ErrNoDestination) {
				slog.WarnContext(ctx, "user has no destination for channel",
					"attempt_id", attemptID, "channel", ch.String(), "username", user.Username)
				out := entity.Failed(entity.FailureMisconfigured)
				return &out, nil
			}

			slog.ErrorContext(ctx, "passcode delivery failed",
				"attempt_id", attemptID, "channel", ch.String(), "error", err)
			out := entity.Failed(entity.FailureDelivery)
			return &out, nil
		}

		slog.InfoContext(ctx, "passcode delivered", "attempt_id", attemptID, "channel", ch.String())
	}

	out := entity.ChallengeOTP(ch, user.MaskedDestination(ch), set.MaxRetries, entity.FailureNone)
	return &out, nil
}
