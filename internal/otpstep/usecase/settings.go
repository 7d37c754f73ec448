package usecase

import (
	"time"

	"github.com/fastkeycloak/otpstep/internal/otpstep/outbound/delivery"
	"github.com/fastkeycloak/otpstep/internal/pkg/config"
)

// Admin-facing configuration keys. Values are read on every operation so a
// hot-reloaded config takes effect without restart.
const (
	keySimulation      = "otp.simulation"
	keyAllowUserChoice = "otp.allow_user_choice"
	keyForcedChannel   = "otp.forced_channel"
	keyLength          = "otp.length"
	keyTTL             = "otp.ttl"
	keyMaxRetries      = "otp.max_retries"
	keyAllowNumbers    = "otp.allow_numbers"
	keyAttemptTTL      = "otp.attempt_ttl"
	keyRealmName       = "otp.realm_name"
	keyEmailSubject    = "otp.email.subject"
	keyTwilioSID       = "otp.sms.twilio_account_sid"
	keyTwilioToken     = "otp.sms.twilio_auth_token"
	keyTwilioFrom      = "otp.sms.twilio_from_number"
	keyCountryCode     = "otp.sms.country_code"
	keySMSTemplate     = "otp.sms.template"
)

// Settings is the resolved step configuration for one operation.
type Settings struct {
	Simulation      bool
	AllowUserChoice bool
	ForcedChannel   string
	Length          uint
	TTL             time.Duration
	MaxRetries      uint
	AllowNumbers    bool

	// AttemptTTL bounds how long the attempt notes outlive the code, so an
	// expired-code submission can still be classified as expired rather
	// than as a vanished attempt.
	AttemptTTL time.Duration

	RealmName        string
	EmailSubject     string
	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromNumber string
	CountryCode      string
	SMSTemplate      string
}

func loadSettings(cfg config.Config) Settings {
	set := Settings{
		Simulation:      cfg.GetBool(keySimulation),
		AllowUserChoice: true,
		ForcedChannel:   cfg.GetString(keyForcedChannel),
		Length:          6,
		TTL:             300 * time.Second,
		MaxRetries:      3,
		AllowNumbers:    true,
		AttemptTTL:      30 * time.Minute,

		RealmName:        cfg.GetString(keyRealmName),
		EmailSubject:     "Your Authentication Code",
		TwilioAccountSID: cfg.GetString(keyTwilioSID),
		TwilioAuthToken:  cfg.GetString(keyTwilioToken),
		TwilioFromNumber: cfg.GetString(keyTwilioFrom),
		CountryCode:      "+1",
		SMSTemplate:      "Your verification code is: %s",
	}

	if cfg.IsSet(keyAllowUserChoice) {
		set.AllowUserChoice = cfg.GetBool(keyAllowUserChoice)
	}
	if cfg.IsSet(keyLength) {
		set.Length = cfg.GetUint(keyLength)
	}
	if cfg.IsSet(keyTTL) {
		set.TTL = cfg.GetSecond(keyTTL)
	}
	if cfg.IsSet(keyMaxRetries) {
		set.MaxRetries = cfg.GetUint(keyMaxRetries)
	}
	if cfg.IsSet(keyAllowNumbers) {
		set.AllowNumbers = cfg.GetBool(keyAllowNumbers)
	}
	if cfg.IsSet(keyAttemptTTL) {
		set.AttemptTTL = cfg.GetSecond(keyAttemptTTL)
	}
	if cfg.IsSet(keyEmailSubject) {
		set.EmailSubject = cfg.GetString(keyEmailSubject)
	}
	if cfg.IsSet(keyCountryCode) {
		set.CountryCode = cfg.GetString(keyCountryCode)
	}
	if cfg.IsSet(keySMSTemplate) {
		set.SMSTemplate = cfg.GetString(keySMSTemplate)
	}

	if set.AttemptTTL < set.TTL {
		set.AttemptTTL = set.TTL
	}

	return set
}

func (s Settings) deliveryConfig() delivery.Config {
	return delivery.Config{
		RealmName:        s.RealmName,
		TTL:              s.TTL,
		EmailSubject:     s.EmailSubject,
		TwilioAccountSID: s.TwilioAccountSID,
		TwilioAuthToken:  s.TwilioAuthToken,
		TwilioFromNumber: s.TwilioFromNumber,
		CountryCode:      s.CountryCode,
		SMSTemplate:      s.SMSTemplate,
	}
}
