package entity

// Channel identifies the delivery medium for a one-time passcode.
type Channel int16

const (
	// ChannelEmail delivers the passcode to the user's email address.
	ChannelEmail Channel = 1

	// ChannelSMS delivers the passcode to the user's phone via the carrier API.
	ChannelSMS Channel = 2
)

// String returns the wire identifier for the channel.
func (c Channel) String() string {
	switch c {
	case ChannelSMS:
		return "sms"
	default:
		return "email"
	}
}

// DisplayName returns the human-readable channel name used on forms.
func (c Channel) DisplayName() string {
	switch c {
	case ChannelSMS:
		return "SMS"
	default:
		return "Email"
	}
}

// ChannelFromString maps a wire identifier to a Channel.
//
// Unknown values map to ChannelEmail with ok=false so callers can log the
// fallback. This preserves the long-standing behavior of treating an
// unrecognized channel tag as email rather than an error.
func ChannelFromString(s string) (ch Channel, ok bool) {
	switch s {
	case "email":
		return ChannelEmail, true
	case "sms":
		return ChannelSMS, true
	default:
		return ChannelEmail, false
	}
}
