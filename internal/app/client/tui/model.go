// Package tui - терминальный интерфейс над client.App на bubbletea.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/exp/slog"

	"usercrud/internal/app/client"
	"usercrud/internal/app/client/render"
	"usercrud/internal/app/client/view"
	"usercrud/internal/domain/user"
)

const helpText = "/ search • ←/→ page • a add • e edit • d delete • r reload • q quit"

// actionDoneMsg - сетевая операция App завершилась
type actionDoneMsg struct {
	err error
}

// Model - состояние экрана. Коллекцией и страницей владеет App,
// модель хранит только то, что нужно для отрисовки.
type Model struct {
	ctx       context.Context
	app       *client.App
	presenter *presenter
	log       *slog.Logger

	table     table.Model
	search    textinput.Model
	searching bool
	form      *form
	notice    *client.Notification
	page      render.Page
	busy      bool
	styles    styles
}

// New создает модель и контроллер поверх хранилища
func New(ctx context.Context, store client.Store, log *slog.Logger) Model {
	p := &presenter{}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "ID", Width: 5},
			{Title: "Name", Width: 18},
			{Title: "Address", Width: 18},
			{Title: "Email", Width: 24},
			{Title: "Phone", Width: 14},
			{Title: "Job", Width: 14},
			{Title: "Company", Width: 14},
			{Title: "Birthdate", Width: 10},
			{Title: "Age", Width: 4},
			{Title: "Retired", Width: 7},
		}),
		table.WithFocused(true),
		table.WithHeight(view.PageSize+1),
	)

	si := textinput.New()
	si.Placeholder = "Search by name or email..."
	si.CharLimit = 64
	si.Width = 40

	return Model{
		ctx:       ctx,
		app:       client.New(store, p, log),
		presenter: p,
		log:       log.With("component", "tui"),
		table:     t,
		search:    si,
		styles:    defaultStyles(),
	}
}

// App возвращает контроллер модели
func (m Model) App() *client.App {
	return m.app
}

// Run запускает программу на альтернативном экране до выхода или отмены ctx
func Run(ctx context.Context, store client.Store, log *slog.Logger) error {
	p := tea.NewProgram(New(ctx, store, log), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return m.run(m.app.Load)
}

// run выполняет сетевую операцию App вне цикла Update
func (m Model) run(fn func(ctx context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return actionDoneMsg{err: fn(ctx)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.table.SetWidth(msg.Width)
		return m, nil

	case actionDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.log.Debug("action failed", "error", msg.err)
		}
		m.sync()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.form != nil {
			return m.updateForm(msg)
		}
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateTable(msg)
	}

	return m, nil
}

func (m Model) updateTable(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = nil

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "/":
		m.searching = true
		return m, m.search.Focus()
	case "left", "p":
		m.app.PrevPage()
	case "right", "n":
		m.app.NextPage()
	case "a":
		m.app.AddClicked()
	case "e":
		if id, ok := m.selectedID(); ok {
			_ = m.app.EditClicked(id)
		}
	case "d":
		if id, ok := m.selectedID(); ok && !m.busy {
			m.busy = true
			return m, m.run(func(ctx context.Context) error {
				return m.app.DeleteClicked(ctx, id)
			})
		}
		return m, nil
	case "r":
		if !m.busy {
			m.busy = true
			return m, m.run(m.app.Load)
		}
		return m, nil
	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	m.sync()
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.page.Search {
		m.app.SearchChanged(m.search.Value())
		m.sync()
	}
	return m, cmd
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.form = nil
		return m, nil
	case "tab", "down":
		return m, m.form.move(1)
	case "shift+tab", "up":
		return m, m.form.move(-1)
	case "enter":
		if m.busy {
			return m, nil
		}
		m.busy = true
		p, id := m.form.person(), m.form.id
		return m, m.run(func(ctx context.Context) error {
			return m.app.FormSubmitted(ctx, p, id)
		})
	}

	return m, m.form.update(msg)
}

// sync применяет накопленные вызовы presenter и перерисовывает таблицу
func (m *Model) sync() {
	for _, msg := range m.presenter.drain() {
		switch msg := msg.(type) {
		case notificationMsg:
			n := msg.Notification
			m.notice = &n
		case openDialogMsg:
			m.form = newForm(msg.mode, msg.user)
		case closeDialogMsg:
			m.form = nil
		}
	}

	m.page = m.app.View()

	rows := make([]table.Row, 0, len(m.page.Rows))
	for _, r := range m.page.Rows {
		rows = append(rows, table.Row{
			r.ID.String(),
			r.Name,
			r.Address,
			r.Email,
			r.PhoneNumber,
			r.Job,
			r.Company,
			r.Birthdate,
			strconv.Itoa(r.Age),
			r.RetiredLabel(),
		})
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
}

func (m Model) selectedID() (user.ID, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.page.Rows) {
		return "", false
	}
	return m.page.Rows[i].ID, true
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.title.Render("Users"))
	b.WriteString("\n\n")

	if m.form != nil {
		b.WriteString(m.formView())
		b.WriteString("\n")
		b.WriteString(m.noticeView())
		b.WriteString(m.styles.help.Render("tab next field • enter save • esc cancel"))
		return b.String()
	}

	b.WriteString("Search: ")
	b.WriteString(m.search.View())
	b.WriteString("\n\n")
	b.WriteString(m.table.View())
	b.WriteString("\n")
	b.WriteString(m.styles.status.Render(m.page.Status))
	b.WriteString("\n")
	b.WriteString(m.noticeView())
	b.WriteString(m.styles.help.Render(helpText))

	return b.String()
}

func (m Model) noticeView() string {
	if m.notice == nil {
		return ""
	}

	style := m.styles.success
	if m.notice.Kind == client.NotificationError {
		style = m.styles.failure
	}
	return style.Render(fmt.Sprintf("%s %s", m.notice.Title, m.notice.Message)) + "\n"
}

func (m Model) formView() string {
	lines := make([]string, 0, fieldCount+2)
	lines = append(lines, m.styles.title.Render(m.form.title()), "")

	for i, in := range m.form.inputs {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			m.styles.label.Render(fieldLabels[i]),
			in.View(),
		))
	}

	return m.styles.dialog.Render(strings.Join(lines, "\n"))
}
