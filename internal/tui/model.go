package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/muurk/travelist/internal/catalog"
	"github.com/muurk/travelist/internal/listing"
	"github.com/muurk/travelist/internal/logging"
)

// Screen is what the model drives: a local listing.Holder or a remote
// stream client.
type Screen interface {
	Dispatch(ctx context.Context, action listing.Action) error
	Subscribe() (<-chan listing.State, func())
}

// ErrStreamClosed is reported when the state stream ends before the user quits.
var ErrStreamClosed = errors.New("state stream closed")

// Messages for async operations
type stateMsg struct {
	state listing.State
}

type streamClosedMsg struct{}

type dispatchedMsg struct {
	action listing.Action
	err    error
}

// Model is the bubbletea model for the listing screen
type Model struct {
	ctx    context.Context
	screen Screen
	states <-chan listing.State
	cancel func()

	// Last state received from the screen
	State     listing.State
	Selecting bool
	Closed    bool
	LastErr   error

	// UI state
	Width     int
	Height    int
	Countries list.Model
	Spinner   spinner.Model
	Pager     paginator.Model
	Position  progress.Model
	Help      help.Model
	Keys      screenKeyMap
	Selector  selectorKeyMap
	QuitKeys  quitOnlyKeyMap
}

// NewModel subscribes to screen and returns a model rendering its states.
// Call Close when the program ends to release the subscription.
func NewModel(ctx context.Context, screen Screen) Model {
	states, cancel := screen.Subscribe()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	pager := paginator.New()
	pager.Type = paginator.Dots
	pager.PerPage = 1
	pager.ActiveDot = lipgloss.NewStyle().Foreground(HighlightColor).Render("•")
	pager.InactiveDot = lipgloss.NewStyle().Foreground(SubtleColor).Render("•")

	position := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	position.Width = 30

	keys := newScreenKeyMap()

	return Model{
		ctx:       ctx,
		screen:    screen,
		states:    states,
		cancel:    cancel,
		State:     listing.Loading{},
		Countries: newCountryList(),
		Spinner:   s,
		Pager:     pager,
		Position:  position,
		Help:      help.New(),
		Keys:      keys,
		Selector:  newSelectorKeyMap(),
		QuitKeys:  quitOnlyKeyMap{Quit: keys.Quit},
	}
}

// Close releases the state subscription.
func (m Model) Close() {
	if m.cancel != nil {
		m.cancel()
	}
}

// Init starts listening for states
func (m Model) Init() tea.Cmd {
	return tea.Batch(waitForState(m.states), m.Spinner.Tick)
}

// waitForState delivers the next state from the subscription as a message.
func waitForState(states <-chan listing.State) tea.Cmd {
	return func() tea.Msg {
		st, ok := <-states
		if !ok {
			return streamClosedMsg{}
		}
		return stateMsg{state: st}
	}
}

// dispatch sends action to the screen off the update loop.
func (m Model) dispatch(action listing.Action) tea.Cmd {
	ctx, screen := m.ctx, m.screen
	return func() tea.Msg {
		return dispatchedMsg{action: action, err: screen.Dispatch(ctx, action)}
	}
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Countries.SetSize(contentWidth(msg.Width), max(msg.Height-8, 4))
		m.Help.Width = contentWidth(msg.Width)
		return m, nil

	case stateMsg:
		m.applyState(msg.state)
		return m, waitForState(m.states)

	case streamClosedMsg:
		m.Closed = true
		return m, tea.Quit

	case dispatchedMsg:
		m.LastErr = msg.err
		log := logging.Named("tui")
		switch {
		case msg.err == nil:
		case listing.IsClosed(msg.err):
			// streamClosedMsg follows and ends the program
			log.Debug("Screen no longer accepts actions", zap.Stringer("action", msg.action))
		default:
			log.Warn("Dispatch failed", zap.Stringer("action", msg.action), zap.Error(msg.err))
		}
		return m, nil

	case spinner.TickMsg:
		if _, loading := m.State.(listing.Loading); !loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.Selecting {
			return m.updateSelector(msg)
		}
		return m.updateBrowsing(msg)
	}

	return m, nil
}

// applyState stores st and syncs the pager and the country list with it.
func (m *Model) applyState(st listing.State) {
	m.State = st

	s, ok := listing.AsSuccess(st)
	if !ok {
		m.Selecting = false
		return
	}

	m.Pager.SetTotalPages(s.SelectedCountry.Len())
	if s.InRange() {
		m.Pager.Page = s.SelectedItemIndex
	}

	if len(m.Countries.Items()) != len(s.Countries) {
		m.Countries.SetItems(countryItems(s.Countries))
	}
	if !m.Selecting {
		if i := catalog.Index(s.Countries, s.SelectedCountry.Name); i >= 0 {
			m.Countries.Select(i)
		}
	}
}

// updateBrowsing handles keyboard input while a place card is shown
func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.Keys.Quit) {
		return m, tea.Quit
	}

	s, ok := listing.AsSuccess(m.State)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.Keys.Help):
		m.Help.ShowAll = !m.Help.ShowAll

	case key.Matches(msg, m.Keys.Next):
		if action, ok := swipe(s, 1); ok {
			return m, m.dispatch(action)
		}

	case key.Matches(msg, m.Keys.Prev):
		if action, ok := swipe(s, -1); ok {
			return m, m.dispatch(action)
		}

	case key.Matches(msg, m.Keys.Jump) && len(msg.Runes) == 1:
		index := int(msg.Runes[0] - '1')
		return m, m.dispatch(listing.MoveToIndex{Index: index})

	case key.Matches(msg, m.Keys.Countries):
		m.Selecting = true
	}

	return m, nil
}

// updateSelector handles keyboard input while the country list is open
func (m Model) updateSelector(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While filtering, enter and esc belong to the filter input
	if m.Countries.FilterState() != list.Filtering {
		switch {
		case key.Matches(msg, m.Selector.Close):
			m.Selecting = false
			return m, nil

		case key.Matches(msg, m.Selector.Select):
			m.Selecting = false
			item, ok := m.Countries.SelectedItem().(countryItem)
			if !ok {
				return m, nil
			}
			m.Countries.ResetFilter()
			return m, m.dispatch(listing.SelectCountry{Country: item.country})
		}
	}

	var cmd tea.Cmd
	m.Countries, cmd = m.Countries.Update(msg)
	return m, cmd
}

// swipe returns the ItemSwiped action for moving delta places from the
// current index. Swiping stops at either end of the country.
func swipe(s listing.Success, delta int) (listing.Action, bool) {
	n := s.SelectedCountry.Len()
	if n == 0 {
		return nil, false
	}

	target := min(max(s.SelectedItemIndex+delta, 0), n-1)
	if target == s.SelectedItemIndex {
		return nil, false
	}

	place, _ := s.SelectedCountry.Place(target)
	return listing.ItemSwiped{Place: place, Index: target}, true
}

// View renders the screen
func (m Model) View() string {
	var content, helpText string

	switch st := m.State.(type) {
	case listing.Loading:
		content = m.renderLoading()
		helpText = m.Help.View(m.QuitKeys)
	case listing.Error:
		content = m.renderError(st)
		helpText = m.Help.View(m.QuitKeys)
	case listing.Success:
		if m.Selecting {
			content = m.Countries.View()
			helpText = m.Help.View(m.Selector)
		} else {
			content = m.renderSuccess(st)
			helpText = m.Help.View(m.Keys)
		}
	}

	return renderFrame(content, helpText, m.Width, m.Height)
}

func (m Model) renderLoading() string {
	width := contentWidth(m.Width)
	title := fmt.Sprintf("%s LOADING CATALOG", m.Spinner.View())
	body := lipgloss.JoinVertical(lipgloss.Center,
		"",
		TitleStyle.Render(title),
		"",
		SubtitleStyle.Render("Reading countries and tourist places..."),
		"",
	)
	return lipgloss.Place(width, 0, lipgloss.Center, lipgloss.Top, body)
}

func (m Model) renderError(st listing.Error) string {
	msg := "the screen stopped"
	if st.Err != nil {
		msg = st.Err.Error()
	}
	return "\n" + RenderError(msg) + "\n"
}

func (m Model) renderSuccess(s listing.Success) string {
	width := contentWidth(m.Width)

	var b strings.Builder
	b.WriteString(renderTabs(s))
	b.WriteString("\n\n")

	n := s.SelectedCountry.Len()
	place, ok := s.SelectedPlace()
	if !ok {
		b.WriteString(RenderWarning(fmt.Sprintf("No place at index %d in %s (%d places)", s.SelectedItemIndex, s.SelectedCountry.Name, n)))
		b.WriteString("\n")
	} else {
		b.WriteString(renderPlaceCard(place, width-2))
		b.WriteString("\n")
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center,
			"  ",
			m.Pager.View(),
			"  ",
			m.Position.ViewAs(float64(s.SelectedItemIndex+1)/float64(n)),
			"  ",
			SubtitleStyle.Render(fmt.Sprintf("%d of %d", s.SelectedItemIndex+1, n)),
		))
		b.WriteString("\n")
	}

	if m.LastErr != nil {
		b.WriteString("\n")
		b.WriteString(RenderWarning(m.LastErr.Error()))
		b.WriteString("\n")
	}

	return b.String()
}

func renderTabs(s listing.Success) string {
	tabs := make([]string, len(s.Countries))
	for i, c := range s.Countries {
		if c.Name == s.SelectedCountry.Name {
			tabs[i] = ActiveTabStyle.Render(c.Name)
		} else {
			tabs[i] = TabStyle.Render(c.Name)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func renderPlaceCard(p catalog.TouristPlace, width int) string {
	inner := width - 6 // border and padding
	text := TextStyle.Width(inner)

	lines := []string{
		TitleStyle.Render(p.Name),
		SubtitleStyle.Width(inner).Render(p.ShortDescription),
		"",
		text.Render(p.LongDescription),
	}
	if len(p.Images) > 0 {
		lines = append(lines, "")
		for _, img := range p.Images {
			lines = append(lines, SubtitleStyle.Render("• "+img))
		}
	}

	return CardStyle.Width(width - 2).Render(strings.Join(lines, "\n"))
}
