package delivery

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fastkeycloak/otpstep/internal/otpstep/entity"
	"github.com/fastkeycloak/otpstep/internal/pkg/phone"
)

// DefaultTwilioBaseURL is the production carrier API endpoint.
const DefaultTwilioBaseURL = "https://api.twilio.com"

// Twilio delivers passcodes as text messages through the Twilio REST API.
type Twilio struct {
	client  *http.Client
	baseURL string
}

// NewTwilio creates the SMS provider. An empty baseURL selects the
// production API; a non-positive timeout falls back to ten seconds so a
// stalled carrier call can never block an attempt indefinitely.
func NewTwilio(timeout time.Duration, baseURL string) *Twilio {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if baseURL == "" {
		baseURL = DefaultTwilioBaseURL
	}

	return &Twilio{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

func (t *Twilio) Channel() entity.Channel {
	return entity.ChannelSMS
}

// IsConfigured requires the full carrier credential set.
func (t *Twilio) IsConfigured(cfg Config) bool {
	return cfg.TwilioAccountSID != "" && cfg.TwilioAuthToken != "" && cfg.TwilioFromNumber != ""
}

func (t *Twilio) Send(ctx context.Context, code string, user entity.UserContact, cfg Config) error {
	if !user.HasPhone() {
		return ErrNoDestination
	}

	to := phone.Normalize(user.PhoneNumber, cfg.CountryCode)

	form := url.Values{}
	form.Set("To", to)
	form.Set("From", cfg.TwilioFromNumber)
	form.Set("Body", fmt.Sprintf(cfg.SMSTemplate, code))

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", t.baseURL, cfg.TwilioAccountSID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build carrier request: %w", err)
	}
	req.SetBasicAuth(cfg.TwilioAccountSID, cfg.TwilioAuthToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("carrier request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return fmt.Errorf("carrier responded %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return nil
}
