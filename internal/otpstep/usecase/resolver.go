package usecase

import (
	"context"
	"log/slog"

	"github.com/fastkeycloak/otpstep/internal/otpstep/entity"
)

type resolution int16

const (
	// resolutionAlready short-circuits on a previously persisted channel.
	resolutionAlready resolution = iota + 1
	// resolutionNeedsChoice pauses the attempt for the user to pick.
	resolutionNeedsChoice
	// resolutionResolved picked a channel deterministically.
	resolutionResolved
	// resolutionNone means no channel is usable for this user.
	resolutionNone
)

// resolveChannel decides the delivery channel for the attempt.
//
// A prior selection always wins. A forced channel is honored next, without
// checking availability: a misconfigured forced channel should fail loudly
// at delivery rather than be silently rerouted. Otherwise the user is asked
// when policy allows and both channels work, with email preferred over SMS
// when only one may be picked automatically.
func (s *Usecase) resolveChannel(ctx context.Context, user entity.UserContact, set Settings, prior *entity.Channel) (resolution, entity.Channel) {
	if prior != nil {
		return resolutionAlready, *prior
	}

	if set.ForcedChannel != "" {
		ch, ok := entity.ChannelFromString(set.ForcedChannel)
		if !ok {
			slog.WarnContext(ctx, "forced channel is unrecognized, falling back to email",
				"forced_channel", set.ForcedChannel)
		}
		return resolutionResolved, ch
	}

	emailOK := user.HasEmail()
	smsOK := user.HasPhone() && s.smsConfigured(set)

	switch {
	case emailOK && smsOK && set.AllowUserChoice:
		return resolutionNeedsChoice, entity.ChannelEmail
	case emailOK:
		return resolutionResolved, entity.ChannelEmail
	case smsOK:
		return resolutionResolved, entity.ChannelSMS
	default:
		return resolutionNone, entity.ChannelEmail
	}
}

// availableChannels lists the channels offered on the selection form.
func (s *Usecase) availableChannels(user entity.UserContact, set Settings) []entity.Channel {
	var chs []entity.Channel
	if user.HasEmail() {
		chs = append(chs, entity.ChannelEmail)
	}
	if user.HasPhone() && s.smsConfigured(set) {
		chs = append(chs, entity.ChannelSMS)
	}
	return chs
}

func (s *Usecase) smsConfigured(set Settings) bool {
	p, ok := s.providers.Get(entity.ChannelSMS)
	return ok && p.IsConfigured(set.deliveryConfig())
}
