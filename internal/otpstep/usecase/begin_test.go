package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fastkeycloak/otpstep/internal/otpstep/entity"
)

func TestBeginEmailOnlySkipsChoice(t *testing.T) {
	env := newTestEnv(t, "")

	out, err := env.uc.Begin(context.Background(), BeginInput{AttemptID: "a1", User: userEmailOnly()})

	if err != nil {
		t.Fatalf("Begin() error = %v", err)
	}
	if out.Kind != entity.OutcomeChallenge || out.Form != entity.FormOTP {
		t.Fatalf("outcome = %+v, want otp-form challenge", out)
	}
	if out.Channel != entity.ChannelEmail {
		t.Fatalf("channel = %v, want email", out.Channel)
	}
	if out.RemainingRetries != 3 {
		t.Fatalf("remaining = %d, want default 3", out.RemainingRetries)
	}
	if env.email.calls != 1 || env.email.lastCode != "123456" {
		t.Fatalf("email provider calls = %d, code = %q", env.email.calls, env.email.lastCode)
	}

	notes, err := env.store.GetNotes(context.Background(), "a1")
	if err != nil {
		t.Fatalf("GetNotes() error = %v", err)
	}
	if notes[entity.NoteChannel] != "email" || notes[entity.NoteCode] != "123456" {
		t.Fatalf("notes = %v", notes)
	}
}

func TestBeginBothChannelsPromptsSelection(t *testing.T) {
	env := newTestEnv(t, "")

	out, err := env.uc.Begin(context.Background(), BeginInput{AttemptID: "a1", User: userBoth()})

	if err != nil {
		t.Fatalf("Begin() error = %v", err)
	}
	if out.Kind != entity.OutcomeChallenge || out.Form != entity.FormChannelSelection {
		t.Fatalf("outcome = %+v, want channel-selection challenge", out)
	}
	if len(out.Channels) != 2 || out.Channels[0] != entity.ChannelEmail || out.Channels[1] != entity.ChannelSMS {
		t.Fatalf("channels = %v", out.Channels)
	}
	if env.email.calls+env.sms.calls != 0 {
		t.Fatal("no delivery should happen before the user picks")
	}
	if _, err := env.store.GetNotes(context.Background(), "a1"); err == nil {
		t.Fatal("no attempt state should be stored before the user picks")
	}
}

func TestBeginUserChoiceDisabledPrefersEmail(t *testing.T) {
	env := newTestEnv(t, "otp:\n  allow_user_choice: false\n")

	out, err := env.uc.Begin(context.Background(), BeginInput{AttemptID: "a1", User: userBoth()})

	if err != nil {
		t.Fatalf("Begin() error = %v", err)
	}
	if out.Form != entity.FormOTP || out.Channel != entity.ChannelEmail {
		t.Fatalf("outcome = %+v, want email otp-form", out)
	}
	if env.email.calls != 1 || env.sms.calls != 0 {
		t.Fatalf("provider calls email=%d sms=%d", env.email.calls, env.sms.calls)
	}
}

func TestBeginPhoneOnlyResolvesSMS(t *testing.T) {
	env := newTestEnv(t, "")

	out, err := env.uc.Begin(context.Background(), BeginInput{AttemptID: "a1", User: userPhoneOnly()})

	if err != nil {
		t.Fatalf("Begin() error = %v", err)
	}
	if out.Form != entity.FormOTP || out.Channel != entity.ChannelSMS {
		t.Fatalf("outcome = %+v, want sms otp-form", out)
	}
	if env.sms.calls != 1 {
		t.Fatalf("sms provider calls = %d", env.sms.calls)
	}
}

func TestBeginSMSUnconfiguredLeavesNoChannel(t *testing.T) {
	env := newTestEnv(t, "")
	env.sms.configured = false

	out, err := env.uc.Begin(context.Background(), BeginInput{AttemptID: "a1", User: userPhoneOnly()})

	if err != nil {
		t.Fatalf("Begin() error = %v", err)
	}
	if out.Kind != entity.OutcomeFailed || out.Reason != entity.FailureMisconfigured {
		t.Fatalf("outcome = %+v, want misconfigured failure", out)
	}
}

func TestBeginForcedChannel(t *testing.T) {
	env := newTestEnv(t, "otp:\n  forced_channel: sms\n")

	out, err := env.uc.Begin(context.Background(), BeginInput{AttemptID: "a1", User: userBoth()})

	if err != nil {
		t.Fatalf("Begin() error = %v", err)
	}
	if out.Form != entity.FormOTP || out.Channel != entity.ChannelSMS {
		t.Fatalf("outcome = %+v, want forced sms", out)
	}
	if env.sms.calls != 1 || env.email.calls != 0 {
		t.Fatalf("provider calls email=%d sms=%d", env.email.calls, env.sms.calls)
	}
}

func TestBeginNoContactFails(t *testing.T) {
	env := newTestEnv(t, "")

	out, err := env.uc.Begin(context.Background(), BeginInput{AttemptID: "a1", User: entity.UserContact{Username: "jdoe"}})

	if err != nil {
		t.Fatalf("Begin() error = %v", err)
	}
	if out.Kind != entity.OutcomeFailed || out.Reason != entity.FailureMisconfigured {
		t.Fatalf("outcome = %+v, want misconfigured failure", out)
	}
}

func TestBeginSimulationSkipsDelivery(t *testing.T) {
	env := newTestEnv(t, "otp:\n  simulation: true\n")

	out, err := env.uc.Begin(context.Background(), BeginInput{AttemptID: "a1", User: userEmailOnly()})

	if err != nil {
		t.Fatalf("Begin() error = %v", err)
	}
	if out.Form != entity.FormOTP {
		t.Fatalf("outcome = %+v, want otp-form challenge", out)
	}
	if env.email.calls != 0 {
		t.Fatalf("email provider calls = %d, want 0 in simulation", env.email.calls)
	}
}

func TestBeginDeliveryFailure(t *testing.T) {
	env := newTestEnv(t, "")
	env.email.sendErr = errors.New("smtp down")

	out, err := env.uc.Begin(context.Background(), BeginInput{AttemptID: "a1", User: userEmailOnly()})

	if err != nil {
		t.Fatalf("Begin() error = %v", err)
	}
	if out.Kind != entity.OutcomeFailed || out.Reason != entity.FailureDelivery {
		t.Fatalf("outcome = %+v, want delivery failure", out)
	}
}

func TestBeginGenerationFailure(t *testing.T) {
	env := newTestEnv(t, "")
	env.uc.codegen = stubCodegen{err: errors.New("entropy unavailable")}

	out, err := env.uc.Begin(context.Background(), BeginInput{AttemptID: "a1", User: userEmailOnly()})

	if err != nil {
		t.Fatalf("Begin() error = %v", err)
	}
	if out.Kind != entity.OutcomeFailed || out.Reason != entity.FailureInternal {
		t.Fatalf("outcome = %+v, want internal failure", out)
	}
	if env.email.calls != 0 {
		t.Fatal("nothing should be delivered when generation fails")
	}
}

func TestBeginReusesStoredChannel(t *testing.T) {
	env := newTestEnv(t, "")
	ctx := context.Background()
	if err := env.store.SetNotes(ctx, "a1", map[string]string{entity.NoteChannel: "sms"}, time.Hour); err != nil {
		t.Fatalf("SetNotes() error = %v", err)
	}

	out, err := env.uc.Begin(ctx, BeginInput{AttemptID: "a1", User: userBoth()})

	if err != nil {
		t.Fatalf("Begin() error = %v", err)
	}
	if out.Form != entity.FormOTP || out.Channel != entity.ChannelSMS {
		t.Fatalf("outcome = %+v, want stored sms channel reused", out)
	}
}

func TestBeginRequiresAttemptID(t *testing.T) {
	env := newTestEnv(t, "")

	if _, err := env.uc.Begin(context.Background(), BeginInput{User: userEmailOnly()}); err == nil {
		t.Fatal("Begin() error = nil, want validation error")
	}
}
