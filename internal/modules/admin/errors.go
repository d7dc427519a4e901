package admin

import "errors"

var (
	// ErrAlreadyDecided protects a decided registration from being
	// approved or rejected a second time.
	ErrAlreadyDecided = errors.New("registration has already been decided")

	ErrReasonRequired = errors.New("rejection reason is required")
)
