package catalog

import "fmt"

// TouristPlace is a single place within a country.
type TouristPlace struct {
	Name             string   `yaml:"name" json:"name"`
	ShortDescription string   `yaml:"short_description" json:"short_description"`
	LongDescription  string   `yaml:"long_description" json:"long_description"`
	Images           []string `yaml:"images,omitempty" json:"images,omitempty"`
}

// Country is a named, ordered list of tourist places.
type Country struct {
	Name          string         `yaml:"name" json:"name"`
	TouristPlaces []TouristPlace `yaml:"tourist_places" json:"tourist_places"`
}

// Len returns the number of places in the country.
func (c Country) Len() int {
	return len(c.TouristPlaces)
}

// Place returns the place at index i, or false when i is out of range.
func (c Country) Place(i int) (TouristPlace, bool) {
	if i < 0 || i >= len(c.TouristPlaces) {
		return TouristPlace{}, false
	}
	return c.TouristPlaces[i], true
}

// String returns the country name
func (c Country) String() string {
	return c.Name
}

// String returns the place name
func (p TouristPlace) String() string {
	return p.Name
}

// Clone returns a deep copy of countries.
func Clone(countries []Country) []Country {
	if countries == nil {
		return nil
	}
	out := make([]Country, len(countries))
	for i, c := range countries {
		places := make([]TouristPlace, len(c.TouristPlaces))
		for j, p := range c.TouristPlaces {
			p.Images = append([]string(nil), p.Images...)
			places[j] = p
		}
		out[i] = Country{Name: c.Name, TouristPlaces: places}
	}
	return out
}

// Names returns the country names in catalog order.
func Names(countries []Country) []string {
	names := make([]string, len(countries))
	for i, c := range countries {
		names[i] = c.Name
	}
	return names
}

// Summary describes a catalog in one line, e.g. "2 countries, 6 places".
func Summary(countries []Country) string {
	places := 0
	for _, c := range countries {
		places += c.Len()
	}
	return fmt.Sprintf("%d countries, %d places", len(countries), places)
}
