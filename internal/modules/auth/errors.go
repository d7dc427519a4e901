package auth

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials       = errors.New("invalid credentials")
	ErrEmailAlreadyExists       = errors.New("email already exists")
	ErrRegistrationNumberExists = errors.New("registration number already exists")
	ErrInvalidRole              = errors.New("invalid role")

	// ErrVerificationPending refuses NGO logins before an admin decision.
	ErrVerificationPending = errors.New("ngo registration is pending approval")
)

// VerificationRejectedError carries the admin's stored rejection reason
// verbatim, so the login response can echo it.
type VerificationRejectedError struct {
	Reason string
}

func (e *VerificationRejectedError) Error() string {
	if e.Reason == "" {
		return "ngo registration was rejected"
	}
	return fmt.Sprintf("ngo registration was rejected: %s", e.Reason)
}
