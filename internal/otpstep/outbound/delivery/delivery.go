// Package delivery sends one-time passcodes to users over the supported
// channels. Each channel is a Provider; the Registry picks one by channel
// tag.
package delivery

import (
	"context"
	"errors"
	"time"

	"github.com/fastkeycloak/otpstep/internal/otpstep/entity"
)

// ErrNoDestination indicates the user lacks the contact address the
// provider needs (no email, no phone number).
var ErrNoDestination = errors.New("delivery: user has no destination for channel")

// Config carries the delivery-related step configuration down to providers.
type Config struct {
	RealmName    string
	TTL          time.Duration
	EmailSubject string

	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromNumber string
	CountryCode      string
	SMSTemplate      string
}

// Provider delivers a passcode over one channel.
type Provider interface {
	// Channel identifies which channel this provider serves.
	Channel() entity.Channel

	// IsConfigured reports whether the provider has the configuration it
	// needs to send at all, independent of any particular user.
	IsConfigured(cfg Config) bool

	// Send delivers the code to the user. Failures are terminal for the
	// attempt; providers never retry on their own.
	Send(ctx context.Context, code string, user entity.UserContact, cfg Config) error
}

// Registry holds the known providers keyed by channel.
type Registry struct {
	providers map[entity.Channel]Provider
}

// NewRegistry builds a registry from the given providers. A later provider
// for the same channel replaces an earlier one.
func NewRegistry(ps ...Provider) *Registry {
	m := make(map[entity.Channel]Provider, len(ps))
	for _, p := range ps {
		m[p.Channel()] = p
	}
	return &Registry{providers: m}
}

// Get returns the provider for the channel, or ok=false when none is
// registered.
func (r *Registry) Get(ch entity.Channel) (Provider, bool) {
	p, ok := r.providers[ch]
	return p, ok
}
