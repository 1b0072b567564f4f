package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Source provides the catalog a screen is built from.
type Source interface {
	Countries(ctx context.Context) ([]Country, error)
}

// Static serves the built-in catalog.
type Static struct{}

// Countries returns Default().
func (Static) Countries(ctx context.Context) ([]Country, error) {
	return Default(), nil
}

// Fixed serves a caller-provided catalog. Tests and embedders use it.
type Fixed []Country

// Countries returns a copy of the fixed list.
func (f Fixed) Countries(ctx context.Context) ([]Country, error) {
	return Clone(f), nil
}

// File loads a catalog from a YAML file on every call.
type File struct {
	Path string
}

// catalogDocument is the on-disk layout of a catalog file.
type catalogDocument struct {
	Version   int       `yaml:"version"`
	Countries []Country `yaml:"countries"`
}

// Validation errors for catalog files
var (
	ErrEmptyCatalog     = errors.New("catalog has no countries")
	ErrDuplicateCountry = errors.New("duplicate country name")
	ErrEmptyCountry     = errors.New("country has no tourist places")
	ErrDuplicatePlace   = errors.New("duplicate place name")
	ErrUnnamed          = errors.New("missing name")
)

// Countries reads, parses and validates the file.
func (f File) Countries(ctx context.Context) ([]Country, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	countries, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", f.Path, err)
	}
	return countries, nil
}

// Parse decodes and validates a YAML catalog document.
func Parse(data []byte) ([]Country, error) {
	var doc catalogDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	if doc.Version != 0 && doc.Version != 1 {
		return nil, fmt.Errorf("unsupported catalog version: %d (expected 1)", doc.Version)
	}

	if err := Validate(doc.Countries); err != nil {
		return nil, err
	}
	return doc.Countries, nil
}

// Marshal encodes countries as a version 1 catalog document.
func Marshal(countries []Country) ([]byte, error) {
	data, err := yaml.Marshal(catalogDocument{Version: 1, Countries: countries})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal catalog: %w", err)
	}
	return data, nil
}

// Validate checks the data model invariants: at least one country, unique
// non-empty country names, and non-empty place lists with unique names.
func Validate(countries []Country) error {
	if len(countries) == 0 {
		return ErrEmptyCatalog
	}

	seen := make(map[string]bool, len(countries))
	for i, c := range countries {
		if c.Name == "" {
			return fmt.Errorf("country %d: %w", i, ErrUnnamed)
		}
		if seen[c.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicateCountry, c.Name)
		}
		seen[c.Name] = true

		if len(c.TouristPlaces) == 0 {
			return fmt.Errorf("%w: %q", ErrEmptyCountry, c.Name)
		}

		places := make(map[string]bool, len(c.TouristPlaces))
		for j, p := range c.TouristPlaces {
			if p.Name == "" {
				return fmt.Errorf("country %q place %d: %w", c.Name, j, ErrUnnamed)
			}
			if places[p.Name] {
				return fmt.Errorf("%w: %q in %q", ErrDuplicatePlace, p.Name, c.Name)
			}
			places[p.Name] = true
		}
	}
	return nil
}
