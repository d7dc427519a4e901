package event

import "errors"

var (
	ErrEventFull        = errors.New("event has reached its participant limit")
	ErrEventNotUpcoming = errors.New("event is not open for registration")
	ErrNotOwner         = errors.New("event belongs to another NGO")
)
