package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/lucianotheforce/quotedesk/internal/cli/formatter"
	"github.com/lucianotheforce/quotedesk/internal/intelligence"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// bulkEditDoneMsg carries the result of an async AI bulk edit.
type bulkEditDoneMsg struct {
	outcome *intelligence.BulkEditOutcome
	err     error
}

// instructionView collects a natural-language instruction and dispatches
// it to the bulk edit service for the targeted items.
type instructionView struct {
	state   *SharedState
	input   textinput.Model
	targets []string

	processing bool
	result     string
}

func newInstructionView(state *SharedState, targets []string) *instructionView {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.CharLimit = 500
	ti.Placeholder = "e.g. aumente todos os valores em 10%"

	return &instructionView{
		state:   state,
		input:   ti,
		targets: targets,
	}
}

func (v *instructionView) ID() ViewID    { return ViewInstruction }
func (v *instructionView) Title() string { return "AI edit" }

func (v *instructionView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (v *instructionView) Init() tea.Cmd {
	return textinput.Blink
}

func (v *instructionView) dispatch(instruction string) tea.Cmd {
	app := v.state.App
	targets := v.targets
	return func() tea.Msg {
		outcome, err := app.BulkEdit.Edit(context.Background(), targets, instruction)
		return bulkEditDoneMsg{outcome: outcome, err: err}
	}
}

func (v *instructionView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case bulkEditDoneMsg:
		v.processing = false
		if msg.err != nil {
			v.result = formatter.StyleRed.Render("Error: " + msg.err.Error())
			return v, nil
		}
		saveErr := ""
		if msg.outcome.SaveErr != nil {
			saveErr = msg.outcome.SaveErr.Error()
		}
		v.result = formatter.FormatBulkEditOutcome(
			msg.outcome.TargetedItems, msg.outcome.ChangedItems, msg.outcome.NoChanges, saveErr)
		return v, func() tea.Msg { return refreshViewMsg{} }

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return v, popView()
		}
		if v.processing {
			// Ignore typing while the request is in flight.
			return v, nil
		}
		if msg.Type == tea.KeyEnter {
			if v.result != "" {
				return v, popView()
			}
			instruction := strings.TrimSpace(v.input.Value())
			if instruction == "" {
				return v, nil
			}
			v.processing = true
			return v, v.dispatch(instruction)
		}
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *instructionView) View() string {
	var out strings.Builder

	out.WriteString("\n" + formatter.Header("AI edit") + "\n")
	out.WriteString(formatter.Dim(fmt.Sprintf("Targeting %d item(s).", len(v.targets))) + "\n\n")

	switch {
	case v.processing:
		out.WriteString("  " + formatter.StyleYellow.Render("Processing…") + "\n")
	case v.result != "":
		out.WriteString("  " + v.result + "\n\n")
		out.WriteString("  " + formatter.Dim("enter/esc: back") + "\n")
	default:
		out.WriteString("  Instruction: " + v.input.View() + "\n")
	}

	return out.String()
}
