package game

import (
	"errors"
	"fmt"
)

var (
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrInsufficientEnergy = errors.New("insufficient energy")
	ErrInvalidTarget      = errors.New("invalid target")
	ErrCapacityReached    = errors.New("capacity reached")
)

type Notice string

const (
	NoticeSuccess Notice = "success"
	NoticeError   Notice = "error"
	NoticeInfo    Notice = "info"
)

// Result describes the outcome of one transition. A non-nil Err means the
// state was returned unchanged.
type Result struct {
	Notice  Notice
	Message string
	Err     error
}

func (r Result) OK() bool {
	return r.Err == nil
}

func succeeded(format string, args ...any) Result {
	return Result{Notice: NoticeSuccess, Message: fmt.Sprintf(format, args...)}
}

func informed(format string, args ...any) Result {
	return Result{Notice: NoticeInfo, Message: fmt.Sprintf(format, args...)}
}

func failed(err error, message string) Result {
	return Result{Notice: NoticeError, Message: message, Err: err}
}

func invalidTarget(format string, args ...any) Result {
	msg := fmt.Sprintf(format, args...)
	return Result{Notice: NoticeError, Message: msg, Err: fmt.Errorf("%w: %s", ErrInvalidTarget, msg)}
}

func lacksFunds(need, have int) Result {
	return Result{
		Notice:  NoticeError,
		Message: "Insufficient Capital.",
		Err:     fmt.Errorf("%w: need $%d, have $%d", ErrInsufficientFunds, need, have),
	}
}

func lacksEnergy(need, have int) Result {
	return Result{
		Notice:  NoticeError,
		Message: "Energy Depleted.",
		Err:     fmt.Errorf("%w: need %d, have %d", ErrInsufficientEnergy, need, have),
	}
}
