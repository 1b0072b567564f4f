package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run shows the screen full-screen until the user quits or ctx is done.
// It returns ErrStreamClosed when the screen stopped sending states first.
func Run(ctx context.Context, screen Screen, opts ...tea.ProgramOption) error {
	model := NewModel(ctx, screen)
	defer model.Close()

	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	final, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run screen: %w", err)
	}

	if m, ok := final.(Model); ok && m.Closed {
		return ErrStreamClosed
	}
	return nil
}
