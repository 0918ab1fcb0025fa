package util

import "errors"

var (
	ErrInvalidTeacherEmail = errors.New("teacher email must belong to the institutional domain")
	ErrMissingWeekID       = errors.New("week_id is required")
	ErrWeekNotFound        = errors.New("week not found")
	ErrWeekAlreadyPlanned  = errors.New("week sessions already planned")
	ErrWeekNotPlanned      = errors.New("week sessions not planned yet")
	ErrInvalidAIJSON       = errors.New("AI returned invalid JSON")
	ErrAIUpstream          = errors.New("AI service unavailable")
)
