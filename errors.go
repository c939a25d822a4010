package feedback

import (
	"errors"
	"fmt"
)

// Submission and configuration errors.
var (
	ErrNoNetwork            = errors.New("feedback: no network")
	ErrRequiredFieldMissing = errors.New("feedback: required field missing")
	ErrInvalidEmailConfig   = errors.New("feedback: incomplete email configuration")
	ErrSendFailed           = errors.New("feedback: send failed")

	ErrSendInProgress  = errors.New("feedback: send already in progress")
	ErrDialogClosed    = errors.New("feedback: dialog is closed")
	ErrNoSender        = errors.New("feedback: email sender is not provided")
	ErrNoHost          = errors.New("feedback: host is not provided")
	ErrBindingMismatch = errors.New("feedback: host returned a value source count that does not match the fields")
)

// SendError carries the sender's failure. Users only ever see a generic
// message; Detail is kept for logs.
type SendError struct {
	Detail error
}

func (e *SendError) Error() string {
	if e.Detail == nil {
		return ErrSendFailed.Error()
	}
	return fmt.Sprintf("%s: %v", ErrSendFailed, e.Detail)
}

// Is makes errors.Is(err, ErrSendFailed) true.
func (e *SendError) Is(target error) bool {
	return target == ErrSendFailed
}

func (e *SendError) Unwrap() error {
	return e.Detail
}
