package project

import "errors"

var (
	ErrNotOwner          = errors.New("project belongs to another NGO")
	ErrNotEngaged        = errors.New("engagement belongs to another volunteer")
	ErrInvalidHours      = errors.New("hours must be greater than zero")
	ErrProjectNotActive  = errors.New("project is not accepting volunteers")
	ErrInvalidProgress   = errors.New("progress must be between 0 and 100")
	ErrInvalidStatus     = errors.New("unknown engagement status")
	ErrSkillNameRequired = errors.New("skill name is required")
)
