package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/fastkeycloak/otpstep/internal/otpstep/entity"
	"github.com/fastkeycloak/otpstep/internal/otpstep/outbound/session"
	"github.com/fastkeycloak/otpstep/internal/pkg/goerror"
)

type VerifyInput struct {
	AttemptID string `validate:"required"`
	User      entity.UserContact

	// Channel is the user's selection when resuming from the
	// channel-selection form; empty on code submissions.
	Channel string `validate:"omitempty,channel"`

	// Code is the submitted passcode; empty on channel selections.
	Code string
}

// Verify handles a form submission for the attempt: either a channel
// selection that resumes issuance, or a passcode to check against the
// stored one.
func (s *Usecase) Verify(ctx context.Context, in VerifyInput) (*entity.Outcome, error) {
	ctx, span := s.startSpan(ctx, "Verify")
	defer span.End()

	in.Code = strings.TrimSpace(in.Code)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	set := loadSettings(s.cfg)

	notes, err := s.sessions.GetNotes(ctx, in.AttemptID)
	if err != nil && !errors.Is(err, session.ErrAttemptNotFound) {
		slog.ErrorContext(ctx, "reading attempt state failed", "attempt_id", in.AttemptID, "error", err)
		return nil, goerror.NewServer(err)
	}

	// A channel selection before any channel was persisted resumes the
	// suspended issuance; it is a continuation of Begin, not a new attempt.
	if in.Channel != "" && notes[entity.NoteChannel] == "" {
		// The channel validation rule has already constrained the value.
		ch, _ := entity.ChannelFromString(in.Channel)
		return s.issueAndDeliver(ctx, in.AttemptID, ch, in.User, set)
	}

	issued, err := entity.DecodeIssuedCode(notes)
	if err != nil {
		slog.ErrorContext(ctx, "attempt state is missing or corrupted",
			"attempt_id", in.AttemptID, "error", err)
		out := entity.Failed(entity.FailureInternal)
		return &out, nil
	}

	ch, _ := entity.ChannelFromString(notes[entity.NoteChannel])

	if subtle.ConstantTimeCompare([]byte(in.Code), []byte(issued.Code)) == 1 {
		if issued.Expired(s.clock.Now()) {
			slog.WarnContext(ctx, "correct passcode submitted after expiry", "attempt_id", in.AttemptID)
			s.clearAttempt(ctx, in.AttemptID)
			out := entity.Failed(entity.FailureExpiredCode)
			return &out, nil
		}

		slog.InfoContext(ctx, "passcode verified", "attempt_id", in.AttemptID, "channel", ch.String())
		s.clearAttempt(ctx, in.AttemptID)
		out := entity.Success()
		return &out, nil
	}

	if issued.RemainingRetries == 0 {
		slog.WarnContext(ctx, "retry budget exhausted", "attempt_id", in.AttemptID)
		s.clearAttempt(ctx, in.AttemptID)
		out := entity.Failed(entity.FailureNoRetriesLeft)
		return &out, nil
	}

	remaining := issued.RemainingRetries - 1
	retryNote := map[string]string{entity.NoteRemainingRetries: strconv.FormatUint(uint64(remaining), 10)}
	if err := s.sessions.SetNotes(ctx, in.AttemptID, retryNote, set.AttemptTTL); err != nil {
		slog.ErrorContext(ctx, "storing attempt state failed", "attempt_id", in.AttemptID, "error", err)
		return nil, goerror.NewServer(err)
	}

	slog.InfoContext(ctx, "wrong passcode submitted",
		"attempt_id", in.AttemptID, "remaining_retries", remaining)
	out := entity.ChallengeOTP(ch, in.User.MaskedDestination(ch), remaining, entity.FailureInvalidCode)
	return &out, nil
}

// clearAttempt drops the attempt notes on any terminal outcome. A failed
// cleanup is logged but never changes the outcome: the code can no longer
// be used and the store's TTL reclaims the entry.
func (s *Usecase) clearAttempt(ctx context.Context, attemptID string) {
	if err := s.sessions.Clear(ctx, attemptID); err != nil {
		slog.WarnContext(ctx, "clearing attempt state failed", "attempt_id", attemptID, "error", err)
	}
}
