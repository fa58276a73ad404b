package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dockgen-io/dockgen/internal/config"
	"github.com/dockgen-io/dockgen/internal/errors"
	"github.com/dockgen-io/dockgen/internal/system"
)

// programModel adapts wizardModel to the tea.Model interface and
// captures the result when the wizard finishes.
type programModel struct {
	wizard *wizardModel
	opts   *config.Options
	done   bool
}

func (p programModel) Init() tea.Cmd {
	return p.wizard.Init()
}

func (p programModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		p.wizard.width = size.Width
		p.wizard.height = size.Height
	}

	done, opts, cmd := p.wizard.Update(msg)
	if done {
		p.done = true
		p.opts = opts
		return p, tea.Quit
	}

	return p, cmd
}

func (p programModel) View() string {
	if p.done {
		return ""
	}
	return p.wizard.View()
}

// RunWizard runs the interactive scaffolding wizard and returns the
// collected options. A cancelled wizard returns ErrCancelled.
func RunWizard(fs system.FileSystem, defaults *config.UserDefaults) (*config.Options, error) {
	m := newWizardModel(fs, defaults)
	p := tea.NewProgram(programModel{wizard: &m}, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return nil, errors.Wrap(errors.ExitGeneralError, "wizard failed", err)
	}

	final := finalModel.(programModel)
	if final.opts == nil {
		return nil, errors.Cancelled()
	}

	return final.opts, nil
}
