package engine

import "errors"

var (
	// ErrInvalidShotForZone is returned when a shot is not legal from the
	// hitter's current court position, or a serve is submitted out of order.
	// No state is mutated; the caller may resubmit a legal shot.
	ErrInvalidShotForZone = errors.New("engine: shot not legal from current position")

	// ErrInvalidOperation is returned for any action on a decided match, or
	// an action issued on the wrong side's turn.
	ErrInvalidOperation = errors.New("engine: operation not valid in current match state")

	// ErrMalformedProfile is returned by NewMatch when a profile is missing
	// skill entries or carries out-of-range values. Checked before any point
	// is played.
	ErrMalformedProfile = errors.New("engine: malformed player profile")
)
