package entity

import "strings"

// UserContact is the read-only view of the authenticating identity that the
// OTP step needs: who the user is and where a passcode can be delivered.
type UserContact struct {
	Username    string
	Email       string
	PhoneNumber string
}

// HasEmail reports whether the user has a non-blank email address.
func (u UserContact) HasEmail() bool {
	return strings.TrimSpace(u.Email) != ""
}

// HasPhone reports whether the user has a non-blank phone number.
func (u UserContact) HasPhone() bool {
	return strings.TrimSpace(u.PhoneNumber) != ""
}

// MaskedDestination returns the address a code is sent to over the given
// channel, partially masked for display on challenge forms.
func (u UserContact) MaskedDestination(ch Channel) string {
	if ch == ChannelSMS {
		return maskPhone(strings.TrimSpace(u.PhoneNumber))
	}
	return maskEmail(strings.TrimSpace(u.Email))
}

func maskEmail(addr string) string {
	at := strings.IndexByte(addr, '@')
	if at <= 1 {
		return addr
	}
	return addr[:1] + strings.Repeat("*", at-1) + addr[at:]
}

func maskPhone(num string) string {
	if len(num) <= 3 {
		return num
	}
	return strings.Repeat("*", len(num)-3) + num[len(num)-3:]
}
