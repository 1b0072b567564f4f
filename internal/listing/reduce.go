package listing

import (
	"fmt"

	"github.com/muurk/travelist/internal/catalog"
)

// Reduce computes the state that follows state once action is applied.
//
// A nil State with a nil error means the action does not apply and the
// state stays as it is. A non-nil error is a fault; the returned State is
// then nil and the caller decides what to do with the fault.
func Reduce(state State, action Action, policy IndexPolicy) (State, error) {
	switch s := state.(type) {
	case Success:
		return reduceSuccess(s, action, policy)

	case Loading, Error:
		switch action.(type) {
		case SelectCountry:
			return nil, nil
		case MoveToIndex, ItemSwiped:
			return nil, fmt.Errorf("%w: %s during %s", ErrNotReady, action, state)
		default:
			return nil, unknownAction(action)
		}

	default:
		return nil, fmt.Errorf("listing: unknown state %T", state)
	}
}

func reduceSuccess(s Success, action Action, policy IndexPolicy) (State, error) {
	switch a := action.(type) {
	case SelectCountry:
		country, err := catalog.Find(s.Countries, a.Country.Name)
		if err != nil {
			return nil, err
		}
		s.SelectedCountry = country
		s.SelectedItemIndex = 0
		return s, nil

	case MoveToIndex:
		if err := checkIndex(s.SelectedCountry, a.Index, policy); err != nil {
			return nil, err
		}
		s.SelectedItemIndex = a.Index
		return s, nil

	case ItemSwiped:
		if err := checkIndex(s.SelectedCountry, a.Index, policy); err != nil {
			return nil, err
		}
		s.SelectedItemIndex = a.Index
		return s, nil

	default:
		return nil, unknownAction(action)
	}
}

func checkIndex(c catalog.Country, index int, policy IndexPolicy) error {
	if policy != IndexReject {
		return nil
	}
	if index < 0 || index >= c.Len() {
		return fmt.Errorf("%w: %d not in [0, %d) for %s", ErrIndexOutOfRange, index, c.Len(), c.Name)
	}
	return nil
}

func unknownAction(action Action) error {
	return fmt.Errorf("%w: %T", ErrUnknownAction, action)
}
