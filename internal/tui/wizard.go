package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dockgen-io/dockgen/internal/config"
	"github.com/dockgen-io/dockgen/internal/port"
	"github.com/dockgen-io/dockgen/internal/project"
	"github.com/dockgen-io/dockgen/internal/system"
)

// wizardStep identifies the current step.
type wizardStep int

const (
	stepPath wizardStep = iota
	stepType
	stepImage
	stepName
	stepPort
	stepConfirm
)

// wizardModel drives the multi-step scaffolding wizard.
type wizardModel struct {
	step     wizardStep
	fs       system.FileSystem
	defaults *config.UserDefaults

	// Step 1: project path
	pathInput textinput.Model

	// Step 2: project type
	typeList list.Model

	// Step 3: base image
	imageList list.Model

	// Step 4: service name
	nameInput textinput.Model

	// Step 5: port
	portInput textinput.Model

	// Collected values
	selectedPath  string
	selectedType  string
	selectedImage string
	selectedName  string
	selectedPort  int

	width  int
	height int
}

// catalogItem implements list.Item for type and image selection.
type catalogItem struct {
	name        string
	description string
}

func (c catalogItem) Title() string       { return c.name }
func (c catalogItem) Description() string { return c.description }
func (c catalogItem) FilterValue() string { return c.name }

var (
	wizardTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39")).
				MarginBottom(1)

	wizardStepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	wizardActiveStepStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39"))

	wizardLabelStyle = lipgloss.NewStyle().
				Bold(true).
				MarginBottom(1)

	wizardValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("39"))

	wizardDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)
)

func newWizardModel(fs system.FileSystem, defaults *config.UserDefaults) wizardModel {
	pi := textinput.New()
	pi.Placeholder = "/path/to/project"
	pi.Focus()
	pi.CharLimit = 256
	pi.Width = 60

	ni := textinput.New()
	ni.Placeholder = "service-name"
	ni.CharLimit = 63
	ni.Width = 40

	poi := textinput.New()
	poi.Placeholder = "80"
	poi.CharLimit = 5
	poi.Width = 10

	if defaults == nil {
		defaults = &config.UserDefaults{}
	}

	return wizardModel{
		step:      stepPath,
		fs:        fs,
		defaults:  defaults,
		pathInput: pi,
		nameInput: ni,
		portInput: poi,
	}
}

func (w *wizardModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update processes a message and returns (done, options, cmd).
// done=true with non-nil opts means wizard completed successfully.
// done=true with nil opts means wizard was cancelled.
func (w *wizardModel) Update(msg tea.Msg) (bool, *config.Options, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyCtrlC:
			return true, nil, nil
		case tea.KeyEsc:
			return w.handleBack()
		}
	}

	switch w.step {
	case stepPath:
		return w.updatePath(msg)
	case stepType:
		return w.updateType(msg)
	case stepImage:
		return w.updateImage(msg)
	case stepName:
		return w.updateName(msg)
	case stepPort:
		return w.updatePort(msg)
	case stepConfirm:
		return w.updateConfirm(msg)
	}

	return false, nil, nil
}

func (w *wizardModel) handleBack() (bool, *config.Options, tea.Cmd) {
	switch w.step {
	case stepPath:
		// Esc at first step cancels wizard
		return true, nil, nil
	case stepType:
		w.step = stepPath
		w.pathInput.Focus()
		return false, nil, textinput.Blink
	case stepImage:
		w.step = stepType
		return false, nil, nil
	case stepName:
		w.step = stepImage
		w.nameInput.Blur()
		return false, nil, nil
	case stepPort:
		w.step = stepName
		w.portInput.Blur()
		w.nameInput.Focus()
		return false, nil, textinput.Blink
	case stepConfirm:
		w.step = stepPort
		w.portInput.Focus()
		return false, nil, textinput.Blink
	}
	return false, nil, nil
}

func (w *wizardModel) updatePath(msg tea.Msg) (bool, *config.Options, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEnter {
		path := strings.TrimSpace(w.pathInput.Value())
		if path == "" {
			return false, nil, nil
		}
		w.selectedPath = path
		w.step = stepType
		w.pathInput.Blur()
		w.loadTypes()
		return false, nil, nil
	}

	var cmd tea.Cmd
	w.pathInput, cmd = w.pathInput.Update(msg)
	return false, nil, cmd
}

func (w *wizardModel) updateType(msg tea.Msg) (bool, *config.Options, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEnter {
		if item, ok := w.typeList.SelectedItem().(catalogItem); ok {
			w.selectedType = item.name
			w.step = stepImage
			w.loadImages()
			return false, nil, nil
		}
		return false, nil, nil
	}

	var cmd tea.Cmd
	w.typeList, cmd = w.typeList.Update(msg)
	return false, nil, cmd
}

func (w *wizardModel) updateImage(msg tea.Msg) (bool, *config.Options, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEnter {
		if item, ok := w.imageList.SelectedItem().(catalogItem); ok {
			w.selectedImage = item.name
			w.step = stepName
			w.nameInput.Focus()
			w.nameInput.SetValue(config.SuggestServiceName(w.selectedPath))
			return false, nil, textinput.Blink
		}
		return false, nil, nil
	}

	var cmd tea.Cmd
	w.imageList, cmd = w.imageList.Update(msg)
	return false, nil, cmd
}

func (w *wizardModel) updateName(msg tea.Msg) (bool, *config.Options, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEnter {
		name := strings.TrimSpace(w.nameInput.Value())
		if name == "" {
			return false, nil, nil
		}
		if err := config.ValidateServiceName(name); err != nil {
			return false, nil, nil
		}
		w.selectedName = name
		w.step = stepPort
		w.nameInput.Blur()
		w.portInput.Focus()
		w.portInput.SetValue(strconv.Itoa(port.Default(w.selectedType, w.defaults)))
		return false, nil, textinput.Blink
	}

	var cmd tea.Cmd
	w.nameInput, cmd = w.nameInput.Update(msg)
	return false, nil, cmd
}

func (w *wizardModel) updatePort(msg tea.Msg) (bool, *config.Options, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEnter {
		p, err := strconv.Atoi(strings.TrimSpace(w.portInput.Value()))
		if err != nil || port.Validate(p) != nil {
			return false, nil, nil
		}
		w.selectedPort = p
		w.step = stepConfirm
		w.portInput.Blur()
		return false, nil, nil
	}

	var cmd tea.Cmd
	w.portInput, cmd = w.portInput.Update(msg)
	return false, nil, cmd
}

func (w *wizardModel) updateConfirm(msg tea.Msg) (bool, *config.Options, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter", "y":
			return true, w.buildOptions(), nil
		case "n":
			// Restart wizard
			w.step = stepPath
			w.pathInput.SetValue("")
			w.pathInput.Focus()
			w.selectedPath = ""
			w.selectedType = ""
			w.selectedImage = ""
			w.selectedName = ""
			w.selectedPort = 0
			return false, nil, textinput.Blink
		}
	}
	return false, nil, nil
}

func (w *wizardModel) buildOptions() *config.Options {
	return &config.Options{
		ProjectType:  w.selectedType,
		ImageName:    w.selectedImage,
		ServiceName:  w.selectedName,
		Port:         w.selectedPort,
		ProjectDir:   w.selectedPath,
		IsWebProject: project.IsWeb(w.fs, w.selectedPath, w.selectedType),
	}
}

func (w *wizardModel) View() string {
	var b strings.Builder

	b.WriteString(wizardTitleStyle.Render("Add Docker Support"))
	b.WriteString("\n")
	b.WriteString(w.progressBar())
	b.WriteString("\n\n")

	switch w.step {
	case stepPath:
		b.WriteString(wizardLabelStyle.Render("Project directory:"))
		b.WriteString("\n")
		b.WriteString(w.pathInput.View())
		b.WriteString("\n\n")
		b.WriteString(wizardDimStyle.Render("Enter the path to the project to scaffold."))
	case stepType:
		b.WriteString(wizardLabelStyle.Render("Select project type:"))
		b.WriteString("\n")
		b.WriteString(w.typeList.View())
	case stepImage:
		b.WriteString(wizardLabelStyle.Render("Select base image:"))
		b.WriteString("\n")
		b.WriteString(w.imageList.View())
	case stepName:
		b.WriteString(wizardLabelStyle.Render("Service name:"))
		b.WriteString("\n")
		b.WriteString(w.nameInput.View())
		b.WriteString("\n\n")
		b.WriteString(wizardDimStyle.Render("Used for the image tag and compose service."))
	case stepPort:
		b.WriteString(wizardLabelStyle.Render("Exposed port:"))
		b.WriteString("\n")
		b.WriteString(w.portInput.View())
		b.WriteString("\n\n")
		b.WriteString(wizardDimStyle.Render("Port the container listens on."))
	case stepConfirm:
		b.WriteString(wizardLabelStyle.Render("Confirm:"))
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("  Path:    %s\n", wizardValueStyle.Render(w.selectedPath)))
		b.WriteString(fmt.Sprintf("  Type:    %s\n", wizardValueStyle.Render(w.selectedType)))
		b.WriteString(fmt.Sprintf("  Image:   %s\n", wizardValueStyle.Render(w.selectedImage)))
		b.WriteString(fmt.Sprintf("  Service: %s\n", wizardValueStyle.Render(w.selectedName)))
		b.WriteString(fmt.Sprintf("  Port:    %s\n", wizardValueStyle.Render(strconv.Itoa(w.selectedPort))))
		b.WriteString("\n")
		b.WriteString(wizardDimStyle.Render("Enter to scaffold, n to restart, Esc to go back."))
	}

	return b.String()
}

func (w *wizardModel) progressBar() string {
	steps := []struct {
		num  int
		name string
	}{
		{1, "Path"},
		{2, "Type"},
		{3, "Image"},
		{4, "Name"},
		{5, "Port"},
		{6, "Confirm"},
	}

	var parts []string
	for _, s := range steps {
		label := fmt.Sprintf("%d. %s", s.num, s.name)
		if s.num == int(w.step)+1 {
			parts = append(parts, wizardActiveStepStyle.Render(label))
		} else {
			parts = append(parts, wizardStepStyle.Render(label))
		}
	}

	return strings.Join(parts, wizardDimStyle.Render(" > "))
}

func (w *wizardModel) loadTypes() {
	var items []list.Item
	for _, t := range config.Types() {
		items = append(items, catalogItem{name: t.Name, description: t.Display})
	}
	w.typeList = newCatalogList(items, w.width, w.height)

	// Preselect the detected project type
	if detected, ok := project.Detect(w.fs, w.selectedPath); ok {
		for i, t := range config.Types() {
			if t.Name == detected {
				w.typeList.Select(i)
				break
			}
		}
	}
}

func (w *wizardModel) loadImages() {
	var items []list.Item
	if t, ok := config.TypeByName(w.selectedType); ok {
		for _, img := range t.Images {
			items = append(items, catalogItem{name: img.Name, description: img.Description})
		}
	}
	w.imageList = newCatalogList(items, w.width, w.height)
}

func newCatalogList(items []list.Item, width, height int) list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = selectedStyle
	delegate.Styles.SelectedDesc = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	l := list.New(items, delegate, 60, 10)
	l.Title = ""
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	if width > 0 {
		l.SetWidth(width - 4)
	}
	if height > 0 {
		l.SetHeight(height - 10)
	}

	return l
}
