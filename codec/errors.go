package codec

import "errors"

// Error conditions.
var (
	ErrIncomplete   = errors.New("incomplete input")
	ErrNoTerminator = errors.New("c-octet string is missing its null terminator")
	ErrTooLong      = errors.New("field exceeds its maximum length")
)
