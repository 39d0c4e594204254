package kernel

import "errors"

// ErrInvalidTransition is the conflict rule shared by the order and delivery
// state machines: the requested move is not in the transition table.
var ErrInvalidTransition = errors.New("invalid transition")
