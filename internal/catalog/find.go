package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// ErrCountryNotFound is returned when a lookup names no country in the catalog.
var ErrCountryNotFound = errors.New("country not found")

// maxSuggestionDistance bounds how different a suggestion may be from the
// requested name.
const maxSuggestionDistance = 3

// NotFoundError reports a failed lookup together with the closest name.
type NotFoundError struct {
	Name       string
	Suggestion string // empty when nothing is close
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("country %q not found (did you mean %q?)", e.Name, e.Suggestion)
	}
	return fmt.Sprintf("country %q not found", e.Name)
}

// Is makes errors.Is(err, ErrCountryNotFound) hold.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrCountryNotFound
}

// Find returns the first country whose name equals name.
func Find(countries []Country, name string) (Country, error) {
	for _, c := range countries {
		if c.Name == name {
			return c, nil
		}
	}
	return Country{}, &NotFoundError{Name: name, Suggestion: suggest(countries, name)}
}

// Index returns the position of the named country, or -1.
func Index(countries []Country, name string) int {
	for i, c := range countries {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// suggest returns the catalog name with the smallest case-insensitive edit
// distance to name, if it is within maxSuggestionDistance.
func suggest(countries []Country, name string) string {
	best := ""
	bestDist := maxSuggestionDistance + 1
	needle := strings.ToLower(name)
	for _, c := range countries {
		d := levenshtein.ComputeDistance(needle, strings.ToLower(c.Name))
		if d < bestDist {
			best, bestDist = c.Name, d
		}
	}
	return best
}
