package listing

import (
	"errors"
	"reflect"
	"testing"

	"github.com/muurk/travelist/internal/catalog"
)

// bogusAction is an action type the reducer does not know.
type bogusAction struct{}

func (bogusAction) isAction()      {}
func (bogusAction) String() string { return "bogus" }

func successAt(country string, index int) Success {
	countries := catalog.Default()
	selected, _ := catalog.Find(countries, country)
	return Success{
		Countries:         countries,
		SelectedCountry:   selected,
		SelectedItemIndex: index,
	}
}

func TestReduce_SelectCountryResetsIndex(t *testing.T) {
	start := successAt("Japan", 3)

	got, err := Reduce(start, SelectCountryNamed("South Korea"), IndexUnchecked)
	if err != nil {
		t.Fatalf("Reduce() error = %v", err)
	}

	s, ok := AsSuccess(got)
	if !ok {
		t.Fatalf("Reduce() = %v, want Success", got)
	}
	if s.SelectedCountry.Name != "South Korea" {
		t.Errorf("SelectedCountry = %q, want South Korea", s.SelectedCountry.Name)
	}
	if s.SelectedItemIndex != 0 {
		t.Errorf("SelectedItemIndex = %d, want 0", s.SelectedItemIndex)
	}
	if s.SelectedCountry.Len() != 2 {
		t.Error("selected country should be the catalog entry, not the action payload")
	}
	if &s.Countries[0] != &start.Countries[0] {
		t.Error("countries list should be carried over unchanged")
	}
	if start.SelectedItemIndex != 3 || start.SelectedCountry.Name != "Japan" {
		t.Error("Reduce() mutated its input")
	}
}

func TestReduce_SelectCountryTwiceIsStable(t *testing.T) {
	first, err := Reduce(successAt("Japan", 2), SelectCountryNamed("South Korea"), IndexUnchecked)
	if err != nil {
		t.Fatalf("Reduce() error = %v", err)
	}
	second, err := Reduce(first, SelectCountryNamed("South Korea"), IndexUnchecked)
	if err != nil {
		t.Fatalf("Reduce() error = %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("second selection changed state: %v -> %v", first, second)
	}
}

func TestReduce_IndexActionsKeepCountry(t *testing.T) {
	place := catalog.Default()[0].TouristPlaces[1]

	tests := []struct {
		name   string
		action Action
		want   int
	}{
		{"move to index", MoveToIndex{Index: 2}, 2},
		{"swipe", ItemSwiped{Place: place, Index: 1}, 1},
		{"swipe with mismatched place", ItemSwiped{Place: catalog.TouristPlace{Name: "Korea 2"}, Index: 3}, 3},
		{"unchecked out of range", MoveToIndex{Index: 42}, 42},
		{"unchecked negative", MoveToIndex{Index: -1}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := successAt("Japan", 0)
			got, err := Reduce(start, tt.action, IndexUnchecked)
			if err != nil {
				t.Fatalf("Reduce() error = %v", err)
			}
			s := got.(Success)
			if s.SelectedItemIndex != tt.want {
				t.Errorf("SelectedItemIndex = %d, want %d", s.SelectedItemIndex, tt.want)
			}
			if s.SelectedCountry.Name != "Japan" {
				t.Errorf("SelectedCountry = %q, want Japan", s.SelectedCountry.Name)
			}
			if !reflect.DeepEqual(s.Countries, start.Countries) {
				t.Error("countries list changed")
			}
		})
	}
}

func TestReduce_IndexReject(t *testing.T) {
	start := successAt("South Korea", 0)

	for _, index := range []int{-1, 2, 10} {
		_, err := Reduce(start, MoveToIndex{Index: index}, IndexReject)
		if !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("MoveToIndex(%d) error = %v, want ErrIndexOutOfRange", index, err)
		}
		_, err = Reduce(start, ItemSwiped{Index: index}, IndexReject)
		if !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("ItemSwiped(%d) error = %v, want ErrIndexOutOfRange", index, err)
		}
	}

	got, err := Reduce(start, MoveToIndex{Index: 1}, IndexReject)
	if err != nil {
		t.Fatalf("in-range index rejected: %v", err)
	}
	if got.(Success).SelectedItemIndex != 1 {
		t.Error("in-range index not applied")
	}
}

func TestReduce_UnknownCountry(t *testing.T) {
	got, err := Reduce(successAt("Japan", 1), SelectCountryNamed("France"), IndexUnchecked)
	if !errors.Is(err, catalog.ErrCountryNotFound) {
		t.Fatalf("error = %v, want ErrCountryNotFound", err)
	}
	if got != nil {
		t.Errorf("state = %v, want nil on fault", got)
	}
}

func TestReduce_NotReadyStates(t *testing.T) {
	states := []State{Loading{}, Error{Err: errors.New("boom")}}

	for _, st := range states {
		t.Run(st.String(), func(t *testing.T) {
			got, err := Reduce(st, SelectCountryNamed("Japan"), IndexUnchecked)
			if got != nil || err != nil {
				t.Errorf("SelectCountry = (%v, %v), want silent no-op", got, err)
			}

			_, err = Reduce(st, MoveToIndex{Index: 1}, IndexUnchecked)
			if !errors.Is(err, ErrNotReady) {
				t.Errorf("MoveToIndex error = %v, want ErrNotReady", err)
			}

			_, err = Reduce(st, ItemSwiped{Index: 1}, IndexUnchecked)
			if !errors.Is(err, ErrNotReady) {
				t.Errorf("ItemSwiped error = %v, want ErrNotReady", err)
			}

			_, err = Reduce(st, bogusAction{}, IndexUnchecked)
			if !errors.Is(err, ErrUnknownAction) {
				t.Errorf("bogus error = %v, want ErrUnknownAction", err)
			}
		})
	}
}

func TestReduce_UnknownAction(t *testing.T) {
	_, err := Reduce(successAt("Japan", 0), bogusAction{}, IndexUnchecked)
	if !errors.Is(err, ErrUnknownAction) {
		t.Errorf("error = %v, want ErrUnknownAction", err)
	}
}

func TestSuccess_SelectedPlace(t *testing.T) {
	s := successAt("Japan", 2)
	p, ok := s.SelectedPlace()
	if !ok || p.Name != "Tokyo 2" {
		t.Errorf("SelectedPlace() = %v, %v", p, ok)
	}

	s.SelectedItemIndex = 9
	if s.InRange() {
		t.Error("index 9 should be out of range for Japan")
	}
}

func TestParsePolicies(t *testing.T) {
	if p, err := ParseFaultPolicy("ERROR"); err != nil || p != FaultError {
		t.Errorf("ParseFaultPolicy(ERROR) = %v, %v", p, err)
	}
	if p, err := ParseFaultPolicy(""); err != nil || p != FaultIgnore {
		t.Errorf("ParseFaultPolicy(\"\") = %v, %v", p, err)
	}
	if _, err := ParseFaultPolicy("panic"); err == nil {
		t.Error("ParseFaultPolicy(panic) should fail")
	}

	if p, err := ParseIndexPolicy("reject"); err != nil || p != IndexReject {
		t.Errorf("ParseIndexPolicy(reject) = %v, %v", p, err)
	}
	if p, err := ParseIndexPolicy(""); err != nil || p != IndexUnchecked {
		t.Errorf("ParseIndexPolicy(\"\") = %v, %v", p, err)
	}
	if _, err := ParseIndexPolicy("clamp"); err == nil {
		t.Error("ParseIndexPolicy(clamp) should fail")
	}

	if FaultError.String() != "error" || IndexReject.String() != "reject" {
		t.Error("policy String() should match config names")
	}
}
