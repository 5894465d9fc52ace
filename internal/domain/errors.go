package domain

import "errors"

var (
	ErrEmptyLink       = errors.New("please enter a valid video link")
	ErrNothingSelected = errors.New("no services selected")
	ErrNoComments      = errors.New("comments selected but none entered, enter comments or uncheck the box")
	ErrUnknownService  = errors.New("unknown service")
	ErrUnknownPanel    = errors.New("unknown panel")
	ErrMissingKey      = errors.New("missing credentials for panel")
)
