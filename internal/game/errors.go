package game

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPlayerCount = errors.New("invalid number of players")
	ErrSuspectUnassigned  = errors.New("suggested suspect is not assigned to any seat")
)

// IllegalActionError reports an intent that breaks a turn rule. The game state
// is unchanged when it is returned.
type IllegalActionError struct {
	Action string
	Reason string
}

func (e *IllegalActionError) Error() string {
	return fmt.Sprintf("illegal %s: %s", e.Action, e.Reason)
}

// IsIllegalAction reports whether err is a recoverable rule violation.
func IsIllegalAction(err error) bool {
	var illegal *IllegalActionError
	return errors.As(err, &illegal)
}
