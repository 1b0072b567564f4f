package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"

	"github.com/muurk/travelist/internal/catalog"
)

// countryItem wraps a Country for use with bubbles/list
type countryItem struct {
	country catalog.Country
}

// FilterValue implements list.Item
func (c countryItem) FilterValue() string {
	return c.country.Name
}

// Title returns the country name for list display
func (c countryItem) Title() string {
	return c.country.Name
}

// Description lists the first few places of the country
func (c countryItem) Description() string {
	names := make([]string, 0, 3)
	for i, p := range c.country.TouristPlaces {
		if i == 3 {
			names = append(names, "…")
			break
		}
		names = append(names, p.Name)
	}
	return fmt.Sprintf("%d places • %s", c.country.Len(), strings.Join(names, ", "))
}

func newCountryList() list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(HighlightColor).
		BorderForeground(HighlightColor)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		BorderForeground(HighlightColor)

	l := list.New([]list.Item{}, delegate, MinTerminalWidth-4, MinTerminalHeight-8)
	l.Title = "Countries"
	l.Styles.Title = TitleStyle
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()
	return l
}

// countryItems converts the catalog into list items in catalog order.
func countryItems(countries []catalog.Country) []list.Item {
	items := make([]list.Item, len(countries))
	for i, c := range countries {
		items[i] = countryItem{country: c}
	}
	return items
}
