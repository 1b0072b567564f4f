package listing

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotReady is returned for index actions while the state is not Success.
	ErrNotReady = errors.New("listing: state is not ready")

	// ErrIndexOutOfRange is returned under IndexReject for an index outside
	// the selected country.
	ErrIndexOutOfRange = errors.New("listing: index out of range")

	// ErrUnknownAction is returned for an action type the holder does not handle.
	ErrUnknownAction = errors.New("listing: unknown action")

	// ErrClosed is returned by Dispatch once the holder has been closed.
	ErrClosed = errors.New("listing: holder closed")

	// ErrMalformed is returned when a wire envelope cannot be decoded.
	ErrMalformed = errors.New("listing: malformed envelope")
)

// FaultPolicy decides what a fault does to the state.
type FaultPolicy int

const (
	// FaultIgnore keeps the current state and only reports the fault.
	FaultIgnore FaultPolicy = iota
	// FaultError replaces the state with Error.
	FaultError
)

// String returns the config name of the policy
func (p FaultPolicy) String() string {
	switch p {
	case FaultIgnore:
		return "ignore"
	case FaultError:
		return "error"
	default:
		return fmt.Sprintf("FaultPolicy(%d)", int(p))
	}
}

// ParseFaultPolicy parses "ignore" or "error". Empty means ignore.
func ParseFaultPolicy(s string) (FaultPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ignore":
		return FaultIgnore, nil
	case "error":
		return FaultError, nil
	default:
		return FaultIgnore, fmt.Errorf("unknown fault policy %q (expected ignore or error)", s)
	}
}

// IndexPolicy decides whether index actions are bounds-checked.
type IndexPolicy int

const (
	// IndexUnchecked accepts any index, as the screen always has.
	IndexUnchecked IndexPolicy = iota
	// IndexReject faults on an index outside the selected country.
	IndexReject
)

// String returns the config name of the policy
func (p IndexPolicy) String() string {
	switch p {
	case IndexUnchecked:
		return "unchecked"
	case IndexReject:
		return "reject"
	default:
		return fmt.Sprintf("IndexPolicy(%d)", int(p))
	}
}

// ParseIndexPolicy parses "unchecked" or "reject". Empty means unchecked.
func ParseIndexPolicy(s string) (IndexPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "unchecked":
		return IndexUnchecked, nil
	case "reject":
		return IndexReject, nil
	default:
		return IndexUnchecked, fmt.Errorf("unknown index policy %q (expected unchecked or reject)", s)
	}
}
