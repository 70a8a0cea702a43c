package console

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	questionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Confirmer asks yes/no questions on the terminal. It prefers an
// interactive prompt and falls back to a plain line read when the
// terminal cannot host one.
type Confirmer struct{}

// NewConfirmer creates a terminal Confirmer.
func NewConfirmer() *Confirmer {
	return &Confirmer{}
}

// Confirm blocks until the user answers. Anything other than yes
// declines.
func (c *Confirmer) Confirm(question string) (bool, error) {
	program := tea.NewProgram(newConfirmModel(question))

	final, err := program.Run()
	if err != nil {
		return c.confirmPlain(question)
	}

	model, ok := final.(confirmModel)
	if !ok {
		return false, fmt.Errorf("unexpected prompt state")
	}
	return model.approved, nil
}

// confirmPlain reads one console line, for terminals that cannot run
// the interactive prompt.
func (c *Confirmer) confirmPlain(question string) (bool, error) {
	fmt.Printf("%s (y/N): ", question)
	var response string
	fmt.Scanln(&response)

	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes", nil
}

// confirmModel is a single-question yes/no prompt. Any key other
// than y declines, so an accidental keypress never approves a
// destructive step.
type confirmModel struct {
	question string
	approved bool
	answered bool
}

func newConfirmModel(question string) confirmModel {
	return confirmModel{question: question}
}

// Init implements the Bubble Tea init method
func (m confirmModel) Init() tea.Cmd {
	return nil
}

// Update implements the Bubble Tea update method
func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "y", "Y":
			m.approved = true
			m.answered = true
			return m, tea.Quit
		default:
			m.approved = false
			m.answered = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements the Bubble Tea view method
func (m confirmModel) View() string {
	if m.answered {
		answer := "n"
		if m.approved {
			answer = "y"
		}
		return fmt.Sprintf("%s %s\n", questionStyle.Render(m.question), answer)
	}
	return fmt.Sprintf("%s %s ", questionStyle.Render(m.question), hintStyle.Render("(y/N)"))
}
