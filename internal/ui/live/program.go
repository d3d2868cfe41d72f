package live

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// Run drives the model in the alternate screen until the host quits or ctx ends.
func Run(ctx context.Context, model Model, stdin io.Reader, stdout io.Writer) (Model, error) {
	if stdout == nil {
		stdout = os.Stdout
	}
	opts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithOutput(stdout),
		tea.WithAltScreen(),
	}
	if stdin != nil {
		opts = append(opts, tea.WithInput(stdin))
	}
	program := tea.NewProgram(model, opts...)
	model.journal.Event("ui.start", "subjects", len(model.shell.Catalog.Subjects))
	final, err := program.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return model, nil
		}
		return model, fmt.Errorf("run live ui: %w", err)
	}
	result, ok := final.(Model)
	if !ok {
		return model, nil
	}
	result.journal.Event("ui.stop", "completed", len(result.shell.Completed()))
	return result, nil
}
