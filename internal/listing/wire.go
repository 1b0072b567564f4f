package listing

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/muurk/travelist/internal/catalog"
)

// Envelope type names used on the wire
const (
	TypeLoading = "loading"
	TypeSuccess = "success"
	TypeError   = "error"

	TypeSelectCountry = "select_country"
	TypeMoveToIndex   = "move_to_index"
	TypeItemSwiped    = "item_swiped"
)

type stateEnvelope struct {
	Type              string            `json:"type"`
	Countries         []catalog.Country `json:"countries,omitempty"`
	SelectedCountry   string            `json:"selected_country,omitempty"`
	SelectedItemIndex *int              `json:"selected_item_index,omitempty"`
	Error             string            `json:"error,omitempty"`
}

type actionEnvelope struct {
	Type    string `json:"type"`
	Country string `json:"country,omitempty"`
	Place   string `json:"place,omitempty"`
	Index   *int   `json:"index,omitempty"`
}

// EncodeState renders st as a JSON state envelope.
func EncodeState(st State) ([]byte, error) {
	var env stateEnvelope

	switch s := st.(type) {
	case Loading:
		env.Type = TypeLoading
	case Success:
		index := s.SelectedItemIndex
		env.Type = TypeSuccess
		env.Countries = s.Countries
		env.SelectedCountry = s.SelectedCountry.Name
		env.SelectedItemIndex = &index
	case Error:
		env.Type = TypeError
		if s.Err != nil {
			env.Error = s.Err.Error()
		}
	default:
		return nil, fmt.Errorf("listing: cannot encode state %T", st)
	}

	return json.Marshal(env)
}

// DecodeState parses a JSON state envelope. The selected country of a
// success envelope must be one of its countries.
func DecodeState(data []byte) (State, error) {
	var env stateEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	switch env.Type {
	case TypeLoading:
		return Loading{}, nil

	case TypeSuccess:
		selected, err := catalog.Find(env.Countries, env.SelectedCountry)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		index := 0
		if env.SelectedItemIndex != nil {
			index = *env.SelectedItemIndex
		}
		return Success{
			Countries:         env.Countries,
			SelectedCountry:   selected,
			SelectedItemIndex: index,
		}, nil

	case TypeError:
		msg := env.Error
		if msg == "" {
			msg = "unspecified error"
		}
		return Error{Err: errors.New(msg)}, nil

	default:
		return nil, fmt.Errorf("%w: state type %q", ErrMalformed, env.Type)
	}
}

// EncodeAction renders a as a JSON action envelope. Only the place name of
// an ItemSwiped crosses the wire.
func EncodeAction(a Action) ([]byte, error) {
	var env actionEnvelope

	switch act := a.(type) {
	case SelectCountry:
		env.Type = TypeSelectCountry
		env.Country = act.Country.Name
	case MoveToIndex:
		index := act.Index
		env.Type = TypeMoveToIndex
		env.Index = &index
	case ItemSwiped:
		index := act.Index
		env.Type = TypeItemSwiped
		env.Place = act.Place.Name
		env.Index = &index
	default:
		return nil, unknownAction(a)
	}

	return json.Marshal(env)
}

// DecodeAction parses a JSON action envelope. Unknown types return an error
// wrapping ErrUnknownAction; missing fields return ErrMalformed.
func DecodeAction(data []byte) (Action, error) {
	var env actionEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	switch env.Type {
	case TypeSelectCountry:
		if env.Country == "" {
			return nil, fmt.Errorf("%w: %s without country", ErrMalformed, env.Type)
		}
		return SelectCountryNamed(env.Country), nil

	case TypeMoveToIndex:
		if env.Index == nil {
			return nil, fmt.Errorf("%w: %s without index", ErrMalformed, env.Type)
		}
		return MoveToIndex{Index: *env.Index}, nil

	case TypeItemSwiped:
		if env.Index == nil {
			return nil, fmt.Errorf("%w: %s without index", ErrMalformed, env.Type)
		}
		return ItemSwiped{
			Place: catalog.TouristPlace{Name: env.Place},
			Index: *env.Index,
		}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, env.Type)
	}
}
