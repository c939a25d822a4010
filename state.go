package feedback

import "errors"

// State is a step of the submission state machine.
type State int

const (
	Idle State = iota
	Validating
	Sending
	Succeeded
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Validating:
		return "validating"
	case Sending:
		return "sending"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Status is the current state plus, for Failed, the error that caused it.
type Status struct {
	State State
	Err   error
}

// Reason describes a Failed status: "no network", "required field" or "unknown error".
// It is empty for every other state.
func (s Status) Reason() string {
	if s.State != Failed {
		return ""
	}
	switch {
	case errors.Is(s.Err, ErrNoNetwork):
		return "no network"
	case errors.Is(s.Err, ErrRequiredFieldMissing):
		return "required field"
	default:
		return "unknown error"
	}
}

func (s Status) String() string {
	if r := s.Reason(); r != "" {
		return s.State.String() + "(" + r + ")"
	}
	return s.State.String()
}
