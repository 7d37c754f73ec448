package entity

// Form identifiers for the challenges the step can present to the user.
const (
	FormChannelSelection = "channel-selection"
	FormOTP              = "otp-form"
)

// OutcomeKind classifies how an operation on the OTP step concluded.
type OutcomeKind int16

const (
	// OutcomeChallenge means the flow pauses and the user must answer the
	// form named in Outcome.Form.
	OutcomeChallenge OutcomeKind = iota + 1
	// OutcomeSuccess means the step completed and the flow may proceed.
	OutcomeSuccess
	// OutcomeFailed means the step ended the attempt; the flow must not
	// proceed and must not re-prompt.
	OutcomeFailed
)

// FailureReason explains an OutcomeFailed or the error banner shown on a
// re-presented challenge form.
type FailureReason int16

const (
	FailureNone FailureReason = iota
	// FailureInvalidCode is shown when the submitted code does not match
	// and retries remain.
	FailureInvalidCode
	// FailureExpiredCode ends the attempt when the correct code arrives
	// after its TTL elapsed; the user must restart the flow.
	FailureExpiredCode
	// FailureNoRetriesLeft ends the attempt after the retry budget is spent.
	FailureNoRetriesLeft
	// FailureMisconfigured covers unusable step configuration, such as a
	// user with no reachable contact address.
	FailureMisconfigured
	// FailureDelivery covers provider send errors.
	FailureDelivery
	// FailureInternal covers unexpected errors such as entropy exhaustion.
	FailureInternal
)

func (r FailureReason) String() string {
	switch r {
	case FailureInvalidCode:
		return "invalid_code"
	case FailureExpiredCode:
		return "expired_code"
	case FailureNoRetriesLeft:
		return "no_retries_left"
	case FailureMisconfigured:
		return "misconfigured"
	case FailureDelivery:
		return "delivery_failed"
	case FailureInternal:
		return "internal_error"
	default:
		return "none"
	}
}

// Outcome is the result of a Begin or Verify operation, mirroring the
// challenge/success/failure tri-state of the surrounding flow engine.
type Outcome struct {
	Kind   OutcomeKind
	Form   string
	Reason FailureReason

	// Channels lists the selectable channels when Form is
	// FormChannelSelection.
	Channels []Channel
	// Channel is the channel the code was sent over when Form is FormOTP.
	Channel Channel
	// Destination is the masked address the code was sent to, for display.
	Destination string
	// RemainingRetries is the retry budget left when Form is FormOTP.
	RemainingRetries uint
}

// ChallengeChannelSelection builds the outcome prompting the user to pick a
// delivery channel.
func ChallengeChannelSelection(channels []Channel) Outcome {
	return Outcome{Kind: OutcomeChallenge, Form: FormChannelSelection, Channels: channels}
}

// ChallengeOTP builds the outcome prompting the user for the code sent over
// the given channel.
func ChallengeOTP(ch Channel, destination string, remaining uint, reason FailureReason) Outcome {
	return Outcome{
		Kind:             OutcomeChallenge,
		Form:             FormOTP,
		Reason:           reason,
		Channel:          ch,
		Destination:      destination,
		RemainingRetries: remaining,
	}
}

// Success builds the outcome that lets the flow proceed past the step.
func Success() Outcome {
	return Outcome{Kind: OutcomeSuccess}
}

// Failed builds the terminal failure outcome.
func Failed(reason FailureReason) Outcome {
	return Outcome{Kind: OutcomeFailed, Reason: reason}
}
