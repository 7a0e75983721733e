package entities

import "errors"

var (
	ErrInvalidEmail        = errors.New("invalid email")
	ErrInvalidName         = errors.New("invalid name")
	ErrInvalidRole         = errors.New("invalid role")
	ErrInvalidMeetingTitle = errors.New("meeting title is required")
	ErrEmptyActionItem     = errors.New("action item title is required")

	ErrUserNotFound    = errors.New("user not found")
	ErrMeetingNotFound = errors.New("meeting not found")
)
