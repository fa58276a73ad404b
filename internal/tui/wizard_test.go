package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dockgen-io/dockgen/internal/config"
	"github.com/dockgen-io/dockgen/internal/system"
)

func typeKeys(s string) tea.Msg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func enterKey() tea.Msg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

func newTestWizard() wizardModel {
	fs := system.NewMockFS()
	fs.AddDir("/project")
	fs.AddFile("/project/project.json", []byte(`{"dependencies":{"Microsoft.AspNet.Server.Kestrel":"1.0.0-rc1-final"}}`), 0644)
	return newWizardModel(fs, &config.UserDefaults{})
}

func TestWizardStepTransitions(t *testing.T) {
	w := newTestWizard()

	if w.step != stepPath {
		t.Fatalf("wizard should start at the path step, got %d", w.step)
	}

	// Empty path is rejected
	done, _, _ := w.Update(enterKey())
	if done || w.step != stepPath {
		t.Error("enter with an empty path should stay on the path step")
	}

	w.pathInput.SetValue("/project")
	done, _, _ = w.Update(enterKey())
	if done || w.step != stepType {
		t.Errorf("after entering a path the wizard should be at the type step, got %d", w.step)
	}

	// The detected dotnet project should be preselected
	if item, ok := w.typeList.SelectedItem().(catalogItem); !ok || item.name != "dotnet" {
		t.Errorf("detected project type should be preselected, got %v", w.typeList.SelectedItem())
	}

	done, _, _ = w.Update(enterKey())
	if done || w.step != stepImage {
		t.Errorf("after choosing a type the wizard should be at the image step, got %d", w.step)
	}

	done, _, _ = w.Update(enterKey())
	if done || w.step != stepName {
		t.Errorf("after choosing an image the wizard should be at the name step, got %d", w.step)
	}
	if w.nameInput.Value() != "project" {
		t.Errorf("service name should be suggested from the path, got %q", w.nameInput.Value())
	}

	done, _, _ = w.Update(enterKey())
	if done || w.step != stepPort {
		t.Errorf("after confirming the name the wizard should be at the port step, got %d", w.step)
	}
	if w.portInput.Value() != "80" {
		t.Errorf("port should default from the project type, got %q", w.portInput.Value())
	}

	done, _, _ = w.Update(enterKey())
	if done || w.step != stepConfirm {
		t.Errorf("after confirming the port the wizard should be at the confirm step, got %d", w.step)
	}

	done, opts, _ := w.Update(enterKey())
	if !done {
		t.Fatal("enter at the confirm step should finish the wizard")
	}
	if opts == nil {
		t.Fatal("finished wizard should return options")
	}
	if opts.ProjectType != "dotnet" || opts.ServiceName != "project" || opts.Port != 80 {
		t.Errorf("unexpected options: %+v", opts)
	}
	if opts.ProjectDir != "/project" {
		t.Errorf("ProjectDir = %q, want /project", opts.ProjectDir)
	}
	if !opts.IsWebProject {
		t.Error("Kestrel dependency should mark the project as web")
	}
}

func TestWizardInvalidName(t *testing.T) {
	w := newTestWizard()
	w.pathInput.SetValue("/project")
	w.Update(enterKey()) // path -> type
	w.Update(enterKey()) // type -> image
	w.Update(enterKey()) // image -> name

	w.nameInput.SetValue("Not Valid!")
	done, _, _ := w.Update(enterKey())
	if done || w.step != stepName {
		t.Error("an invalid service name should not advance the wizard")
	}
}

func TestWizardInvalidPort(t *testing.T) {
	w := newTestWizard()
	w.pathInput.SetValue("/project")
	w.Update(enterKey())
	w.Update(enterKey())
	w.Update(enterKey())
	w.Update(enterKey()) // name -> port

	w.portInput.SetValue("not-a-port")
	done, _, _ := w.Update(enterKey())
	if done || w.step != stepPort {
		t.Error("an invalid port should not advance the wizard")
	}

	w.portInput.SetValue("0")
	done, _, _ = w.Update(enterKey())
	if done || w.step != stepPort {
		t.Error("port 0 should not advance the wizard")
	}
}

func TestWizardBackNavigation(t *testing.T) {
	w := newTestWizard()
	w.pathInput.SetValue("/project")
	w.Update(enterKey()) // path -> type
	w.Update(enterKey()) // type -> image

	esc := tea.KeyMsg{Type: tea.KeyEsc}
	done, _, _ := w.Update(esc)
	if done || w.step != stepType {
		t.Errorf("esc should go back to the type step, got %d", w.step)
	}

	done, _, _ = w.Update(esc)
	if done || w.step != stepPath {
		t.Errorf("esc should go back to the path step, got %d", w.step)
	}

	// Esc at the first step cancels
	done, opts, _ := w.Update(esc)
	if !done || opts != nil {
		t.Error("esc at the path step should cancel the wizard")
	}
}

func TestWizardCtrlCCancels(t *testing.T) {
	w := newTestWizard()

	done, opts, _ := w.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !done || opts != nil {
		t.Error("ctrl+c should cancel the wizard at any step")
	}
}

func TestWizardConfirmRestart(t *testing.T) {
	w := newTestWizard()
	w.pathInput.SetValue("/project")
	w.Update(enterKey())
	w.Update(enterKey())
	w.Update(enterKey())
	w.Update(enterKey())
	w.Update(enterKey()) // port -> confirm

	done, _, _ := w.Update(typeKeys("n"))
	if done || w.step != stepPath {
		t.Errorf("n at the confirm step should restart the wizard, got step %d", w.step)
	}
	if w.pathInput.Value() != "" {
		t.Error("restart should clear the path input")
	}
}
