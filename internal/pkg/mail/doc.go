// Package mail defines the contracts for sending email messages.
//
// The OTP step only needs a "deliver this text to this destination"
// capability; handlers and use cases work with the Mail interface and Message
// payload while the concrete delivery mechanism (SMTP here, or whatever the
// host platform provides) stays replaceable.
package mail
