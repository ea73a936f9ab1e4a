package board

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"worktrack/client"
)

const (
	columnInProgress = iota
	columnDone
)

const (
	inputText = iota
	inputDate
	inputEndDate
)

type todosLoadedMsg []client.Todo

type loadFailedMsg struct{ err error }

type mutationDoneMsg struct{}

type mutationFailedMsg struct{ err error }

// Model is the two-column kanban over the todo API. All reads go through
// the Collection cache; every successful mutation invalidates it and the
// board refetches before rendering the new state. A failed mutation keeps
// the last good list on screen and shows the error instead.
type Model struct {
	api        *client.Client
	collection *client.Collection

	todos      []client.Todo
	inProgress []client.Todo
	done       []client.Todo

	focus  int
	cursor [2]int

	form    Form
	inputs  []textinput.Model
	focused int
	formErr string

	status string
	loaded bool
	width  int
	height int

	now func() time.Time
}

func New(api *client.Client) Model {
	inputs := make([]textinput.Model, 3)

	for i := range inputs {
		ti := textinput.New()
		ti.Prompt = "> "
		ti.CharLimit = 255
		inputs[i] = ti
	}

	inputs[inputText].Placeholder = "What needs doing..."
	inputs[inputDate].Placeholder = "YYYY-MM-DD"
	inputs[inputEndDate].Placeholder = "YYYY-MM-DD"

	return Model{
		api:        api,
		collection: client.NewCollection(api),
		inputs:     inputs,
		width:      80,
		height:     24,
		now:        time.Now,
	}
}

func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		todos, err := m.collection.Get(ctx)
		if err != nil {
			return loadFailedMsg{err: err}
		}

		return todosLoadedMsg(todos)
	}
}

func (m Model) mutateCmd(mutate func(ctx context.Context) error) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := mutate(ctx); err != nil {
			return mutationFailedMsg{err: err}
		}

		m.collection.Invalidate()

		return mutationDoneMsg{}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		return m, nil

	case todosLoadedMsg:
		m.todos = msg
		m.inProgress, m.done = Partition(m.todos)
		m.loaded = true
		m.status = ""
		m.clampCursors()

		return m, nil

	case loadFailedMsg:
		m.status = msg.err.Error()

		return m, nil

	case mutationDoneMsg:
		return m, m.loadCmd()

	case mutationFailedMsg:
		m.status = msg.err.Error()

		return m, nil

	case tea.KeyMsg:
		if m.form.Mode != FormClosed {
			return m.updateForm(msg)
		}

		return m.updateBoard(msg)
	}

	return m, nil
}

func (m Model) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "tab", "left", "right", "h", "l":
		m.focus = 1 - m.focus
		m.clampCursors()

		return m, nil

	case "up", "k":
		if m.cursor[m.focus] > 0 {
			m.cursor[m.focus]--
		}

		return m, nil

	case "down", "j":
		if m.cursor[m.focus] < len(m.column(m.focus))-1 {
			m.cursor[m.focus]++
		}

		return m, nil

	case " ", "enter":
		return m.moveCard()

	case "a":
		m.openCreate()

		return m, textinput.Blink

	case "e":
		return m.openEdit()

	case "d":
		return m.deleteCard()

	case "r":
		m.collection.Invalidate()

		return m, m.loadCmd()
	}

	return m, nil
}

// moveCard sends the selected card to the other column: a single-field
// patch flipping done.
func (m Model) moveCard() (tea.Model, tea.Cmd) {
	todo, ok := m.selected()
	if !ok {
		return m, nil
	}

	done := !todo.Done
	patch := client.TodoPatch{Done: &done}
	id := todo.ID

	return m, m.mutateCmd(func(ctx context.Context) error {
		_, err := m.api.Patch(ctx, id, patch)

		return err
	})
}

func (m Model) deleteCard() (tea.Model, tea.Cmd) {
	todo, ok := m.selected()
	if !ok {
		return m, nil
	}

	id := todo.ID

	return m, m.mutateCmd(func(ctx context.Context) error {
		return m.api.Delete(ctx, id)
	})
}

func (m *Model) openCreate() {
	m.form = NewCreateForm(m.now())
	m.formErr = ""
	m.setInputs(m.form)
}

func (m Model) openEdit() (tea.Model, tea.Cmd) {
	todo, ok := m.selected()
	if !ok {
		return m, nil
	}

	m.form = NewEditForm(todo)
	m.formErr = ""
	m.setInputs(m.form)

	return m, textinput.Blink
}

func (m *Model) setInputs(f Form) {
	m.inputs[inputText].SetValue(f.Text)
	m.inputs[inputDate].SetValue(f.Date)
	m.inputs[inputEndDate].SetValue(f.EndDate)

	m.focused = inputText
	m.inputs[inputText].Focus()
	m.inputs[inputText].CursorEnd()
	m.inputs[inputDate].Blur()
	m.inputs[inputEndDate].Blur()
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.form = Form{}
		m.formErr = ""

		return m, nil

	case "tab", "down":
		m.cycleFocus(1)

		return m, textinput.Blink

	case "shift+tab", "up":
		m.cycleFocus(-1)

		return m, textinput.Blink

	case "enter":
		return m.submitForm()
	}

	var cmd tea.Cmd

	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)

	return m, cmd
}

func (m *Model) cycleFocus(delta int) {
	m.inputs[m.focused].Blur()
	m.focused = (m.focused + delta + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focused].Focus()
	m.inputs[m.focused].CursorEnd()
}

// submitForm validates and dispatches: creates always POST, edits send
// nothing when nothing changed, a PATCH when one field changed, and a
// full PUT when more did.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	m.form.Text = strings.TrimSpace(m.inputs[inputText].Value())
	m.form.Date = strings.TrimSpace(m.inputs[inputDate].Value())
	m.form.EndDate = strings.TrimSpace(m.inputs[inputEndDate].Value())

	if err := m.form.Validate(m.now()); err != nil {
		m.formErr = err.Error()

		return m, nil
	}

	form := m.form
	m.form = Form{}
	m.formErr = ""

	if form.Mode == FormCreate {
		payload := form.CreateForm()

		return m, m.mutateCmd(func(ctx context.Context) error {
			_, err := m.api.Add(ctx, payload)

			return err
		})
	}

	switch form.Dispatch() {
	case DispatchNone:
		return m, nil

	case DispatchPatch:
		patch, _ := form.Diff()
		id := form.Original.ID

		return m, m.mutateCmd(func(ctx context.Context) error {
			_, err := m.api.Patch(ctx, id, patch)

			return err
		})

	default:
		full := form.Todo()

		return m, m.mutateCmd(func(ctx context.Context) error {
			_, err := m.api.Update(ctx, full.ID, full)

			return err
		})
	}
}

func (m Model) column(i int) []client.Todo {
	if i == columnDone {
		return m.done
	}

	return m.inProgress
}

func (m Model) selected() (client.Todo, bool) {
	col := m.column(m.focus)
	idx := m.cursor[m.focus]

	if idx < 0 || idx >= len(col) {
		return client.Todo{}, false
	}

	return col[idx], true
}

func (m *Model) clampCursors() {
	for i := range m.cursor {
		if limit := len(m.column(i)) - 1; m.cursor[i] > limit {
			m.cursor[i] = limit
		}

		if m.cursor[i] < 0 {
			m.cursor[i] = 0
		}
	}
}

func (m Model) View() string {
	if !m.loaded {
		if m.status != "" {
			return errorStyle.Render("✖ " + m.status + "\n\npress r to retry, q to quit")
		}

		return mutedStyle.Render("loading todos...")
	}

	colWidth := m.width/2 - 4
	if colWidth < 24 {
		colWidth = 24
	}

	left := m.renderColumn("In Progress", m.inProgress, columnInProgress, colWidth)
	right := m.renderColumn("Done", m.done, columnDone, colWidth)

	view := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	if m.form.Mode != FormClosed {
		view += "\n" + m.renderForm()
	}

	if m.status != "" {
		view += "\n" + errorStyle.Render("✖ "+m.status)
	}

	view += "\n" + helpStyle.Render("a add • e edit • d delete • space move • tab column • r reload • q quit")

	return view
}

func (m Model) renderColumn(name string, todos []client.Todo, index, width int) string {
	header := titleStyle.Render(name) + mutedStyle.Render(fmt.Sprintf(" (%d)", len(todos)))

	lines := []string{header, ""}

	if len(todos) == 0 {
		lines = append(lines, mutedStyle.Render("  nothing here"))
	}

	for i, todo := range todos {
		lines = append(lines, m.renderCard(todo, index == m.focus && i == m.cursor[index]))
	}

	style := columnStyle
	if index == m.focus {
		style = focusedColumnStyle
	}

	return style.Width(width).Render(strings.Join(lines, "\n"))
}

func (m Model) renderCard(todo client.Todo, selected bool) string {
	text := todo.Text
	if todo.Done {
		text = doneTextStyle.Render(text)
	}

	dates := mutedStyle.Render(todo.Date + " → " + todo.EndDate)

	prefix := "  "
	if selected {
		prefix = selectedStyle.Render("> ")
	}

	return prefix + text + "\n  " + dates
}

func (m Model) renderForm() string {
	title := "Add todo"
	if m.form.Mode == FormEdit {
		title = "Edit todo"
	}

	lines := []string{
		titleStyle.Render(title),
		"text     " + m.inputs[inputText].View(),
		"start    " + m.inputs[inputDate].View(),
		"end      " + m.inputs[inputEndDate].View(),
		helpStyle.Render("enter save • tab next field • esc cancel"),
	}

	if m.formErr != "" {
		lines = append(lines, errorStyle.Render("✖ "+m.formErr))
	}

	return formStyle.Render(strings.Join(lines, "\n"))
}
