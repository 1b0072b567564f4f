package listing

import (
	"fmt"

	"github.com/muurk/travelist/internal/catalog"
)

// Action is a user intent sent to a Holder. Implementations are
// SelectCountry, MoveToIndex and ItemSwiped; the set is closed.
type Action interface {
	fmt.Stringer
	isAction()
}

// SelectCountry picks a country. Only Country.Name is used for the lookup.
type SelectCountry struct {
	Country catalog.Country
}

// MoveToIndex jumps to a place index, e.g. from a pagination control.
type MoveToIndex struct {
	Index int
}

// ItemSwiped reports a carousel swipe to Place at Index. Place is not
// checked against Index.
type ItemSwiped struct {
	Place catalog.TouristPlace
	Index int
}

func (SelectCountry) isAction() {}
func (MoveToIndex) isAction()   {}
func (ItemSwiped) isAction()    {}

// String implements fmt.Stringer
func (a SelectCountry) String() string {
	return fmt.Sprintf("SelectCountry(%s)", a.Country.Name)
}

// String implements fmt.Stringer
func (a MoveToIndex) String() string {
	return fmt.Sprintf("MoveToIndex(%d)", a.Index)
}

// String implements fmt.Stringer
func (a ItemSwiped) String() string {
	return fmt.Sprintf("ItemSwiped(%s, %d)", a.Place.Name, a.Index)
}

// SelectCountryNamed is shorthand for SelectCountry{Country{Name: name}}.
func SelectCountryNamed(name string) SelectCountry {
	return SelectCountry{Country: catalog.Country{Name: name}}
}
