package campaign

import "errors"

var (
	ErrInvalidAmount    = errors.New("donation amount must be greater than zero")
	ErrCampaignClosed   = errors.New("campaign is closed for donations")
	ErrNotOwner         = errors.New("campaign belongs to another NGO")
	ErrImpactRequired   = errors.New("impact description is required")
	ErrAlreadyPublished = errors.New("impact report is already published")
)
