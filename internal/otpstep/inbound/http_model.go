package inbound

import "github.com/fastkeycloak/otpstep/internal/otpstep/entity"

// UserPayload is the contact view of the authenticating user, supplied by
// the host flow engine on every call.
type UserPayload struct {
	Username    string `json:"username"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

func (u UserPayload) toEntity() entity.UserContact {
	return entity.UserContact{
		Username:    u.Username,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
	}
}

type BeginRequest struct {
	AttemptID string      `json:"attempt_id"`
	User      UserPayload `json:"user"`
}

type VerifyRequest struct {
	AttemptID string      `json:"attempt_id"`
	User      UserPayload `json:"user"`
	Channel   string      `json:"channel,omitempty"`
	Code      string      `json:"code,omitempty"`
}

type ChannelOption struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// OutcomeResponse reports how the step concluded: a form to present, a
// success, or a terminal failure with its reason.
type OutcomeResponse struct {
	Status           string          `json:"status"`
	Form             string          `json:"form,omitempty"`
	Reason           string          `json:"reason,omitempty"`
	Channels         []ChannelOption `json:"channels,omitempty"`
	Channel          string          `json:"channel,omitempty"`
	Destination      string          `json:"destination,omitempty"`
	RemainingRetries *uint           `json:"remaining_retries,omitempty"`
}

func newOutcomeResponse(out *entity.Outcome) OutcomeResponse {
	resp := OutcomeResponse{}

	switch out.Kind {
	case entity.OutcomeSuccess:
		resp.Status = "success"
		return resp
	case entity.OutcomeFailed:
		resp.Status = "failed"
		resp.Reason = out.Reason.String()
		return resp
	}

	resp.Status = "challenge"
	resp.Form = out.Form
	if out.Reason != entity.FailureNone {
		resp.Reason = out.Reason.String()
	}

	if out.Form == entity.FormChannelSelection {
		for _, ch := range out.Channels {
			resp.Channels = append(resp.Channels, ChannelOption{ID: ch.String(), DisplayName: ch.DisplayName()})
		}
		return resp
	}

	resp.Channel = out.Channel.String()
	resp.Destination = out.Destination
	remaining := out.RemainingRetries
	resp.RemainingRetries = &remaining
	return resp
}
