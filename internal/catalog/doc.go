// Package catalog holds the countries and tourist places shown on the
// listing screen.
//
// The built-in data is a fixed, hand-authored list returned by Default.
// Screens read their catalog through a Source so that a YAML file can stand
// in for the built-in data:
//
//	src := catalog.Static{}
//	countries, err := src.Countries(ctx)
//
//	src := catalog.File{Path: "catalog.yaml"}
//	countries, err := src.Countries(ctx) // validated
//
// Lookups are by exact country name:
//
//	japan, err := catalog.Find(countries, "Japan")
//	if errors.Is(err, catalog.ErrCountryNotFound) { ... }
package catalog
