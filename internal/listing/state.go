package listing

import (
	"fmt"

	"github.com/muurk/travelist/internal/catalog"
)

// State is the value observers render. Implementations are Loading,
// Success and Error.
type State interface {
	fmt.Stringer
	isState()
}

// Loading is the initial state, before the catalog has been read.
type Loading struct{}

// Success is the normal state of the screen.
type Success struct {
	Countries         []catalog.Country
	SelectedCountry   catalog.Country
	SelectedItemIndex int
}

// Error is a sink state. Err describes what produced it.
type Error struct {
	Err error
}

func (Loading) isState() {}
func (Success) isState() {}
func (Error) isState()   {}

// String implements fmt.Stringer
func (Loading) String() string {
	return "Loading"
}

// String implements fmt.Stringer
func (s Success) String() string {
	return fmt.Sprintf("Success(%s #%d)", s.SelectedCountry.Name, s.SelectedItemIndex)
}

// String implements fmt.Stringer
func (e Error) String() string {
	if e.Err == nil {
		return "Error"
	}
	return fmt.Sprintf("Error(%v)", e.Err)
}

// SelectedPlace returns the place under the selected index, or false when
// the index is outside the selected country.
func (s Success) SelectedPlace() (catalog.TouristPlace, bool) {
	return s.SelectedCountry.Place(s.SelectedItemIndex)
}

// InRange reports whether the selected index addresses a place.
func (s Success) InRange() bool {
	_, ok := s.SelectedPlace()
	return ok
}

// AsSuccess returns the Success payload of st, if any.
func AsSuccess(st State) (Success, bool) {
	s, ok := st.(Success)
	return s, ok
}
