package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/cipher-keeper/internal/output"
	"github.com/MKhiriev/cipher-keeper/internal/service"
	"github.com/MKhiriev/cipher-keeper/models"
)

const statusTTL = 2 * time.Second

type screen int

const (
	screenList screen = iota
	screenDetail
)

type model struct {
	ctx    context.Context
	vault  service.VaultService
	filter models.CipherFilter
	copy   func(string) error
	out    io.Writer

	views   []*models.CipherView
	idx     int
	screen  screen
	reveal  bool
	confirm bool
	loading bool

	spinner spinner.Model
	detail  viewport.Model
	width   int
	height  int

	status string
	err    error
}

func newModel(ctx context.Context, vault service.VaultService, filter models.CipherFilter, copyFn func(string) error, out io.Writer) model {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return model{
		ctx:     ctx,
		vault:   vault,
		filter:  filter,
		copy:    copyFn,
		out:     out,
		loading: true,
		spinner: s,
		detail:  viewport.New(80, 20),
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.detail.Width = max(msg.Width-4, 20)
		m.detail.Height = max(msg.Height-8, 5)
		m.refreshDetail()
		return m, nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case listLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.views = msg.views
		m.idx = min(m.idx, len(m.views)-1)
		m.idx = max(m.idx, 0)
		return m, nil
	case deletedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.screen = screenList
		m.loading = true
		return m.withStatus("deleted "+msg.name), tea.Batch(m.spinner.Tick, m.cmdLoad(), clearStatusAfter(statusTTL))
	case copiedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		return m.withStatus("copied " + msg.field), clearStatusAfter(statusTTL)
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m, nil
}

func (m model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.confirm {
		switch {
		case key.Matches(msg, keys.yes):
			m.confirm = false
			view, ok := m.current()
			if !ok {
				return m, nil
			}
			return m, m.cmdDelete(view)
		case key.Matches(msg, keys.no):
			m.confirm = false
		}
		return m, nil
	}

	if key.Matches(msg, keys.quit) {
		return m, tea.Quit
	}

	if m.screen == screenDetail {
		return m.updateDetail(msg)
	}

	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.views)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.enter):
		if _, ok := m.current(); !ok {
			return m, nil
		}
		m.screen = screenDetail
		m.reveal = false
		m.refreshDetail()
		m.detail.GotoTop()
	case key.Matches(msg, keys.refresh):
		if m.loading {
			return m, nil
		}
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoad())
	case key.Matches(msg, keys.copy):
		return m.copyCurrent()
	case key.Matches(msg, keys.delete):
		if _, ok := m.current(); ok {
			m.confirm = true
		}
	}

	return m, nil
}

func (m model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.screen = screenList
		m.reveal = false
		return m, nil
	case key.Matches(msg, keys.reveal):
		m.reveal = !m.reveal
		m.refreshDetail()
		return m, nil
	case key.Matches(msg, keys.copy):
		return m.copyCurrent()
	case key.Matches(msg, keys.delete):
		m.confirm = true
		return m, nil
	}

	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

func (m model) copyCurrent() (tea.Model, tea.Cmd) {
	view, ok := m.current()
	if !ok {
		return m, nil
	}

	field := output.DefaultCopyField(view)
	value, err := output.FieldValue(view, field)
	if err != nil {
		m.err = err
		return m, nil
	}

	return m, m.cmdCopy(field, value)
}

func (m model) current() (*models.CipherView, bool) {
	if m.idx < 0 || m.idx >= len(m.views) {
		return nil, false
	}
	return m.views[m.idx], true
}

func (m *model) refreshDetail() {
	view, ok := m.current()
	if !ok {
		m.detail.SetContent("")
		return
	}
	m.detail.SetContent(output.NewPrinter(m.out, m.reveal).RenderView(view))
}

func (m model) withStatus(status string) model {
	m.status = status
	return m
}

func (m model) cmdLoad() tea.Cmd {
	return func() tea.Msg {
		views, err := m.vault.ListViews(m.ctx, m.filter)
		return listLoadedMsg{views: views, err: err}
	}
}

func (m model) cmdDelete(view *models.CipherView) tea.Cmd {
	return func() tea.Msg {
		if view.ID == nil {
			return deletedMsg{name: view.Name, err: errMissingID}
		}
		return deletedMsg{name: view.Name, err: m.vault.Delete(m.ctx, *view.ID)}
	}
}

func (m model) cmdCopy(field, value string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{field: field, err: m.copy(value)}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("cipher-keeper"))
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  %d record(s)", len(m.views))))
	if m.loading {
		b.WriteString("  " + m.spinner.View())
	}
	b.WriteString("\n\n")

	switch {
	case m.confirm:
		view, _ := m.current()
		name := ""
		if view != nil {
			name = view.Name
		}
		b.WriteString(overlayBoxStyle.Render(fmt.Sprintf("Delete %q?\n\ny yes    n no", name)))
		b.WriteString("\n")
	case m.screen == screenDetail:
		b.WriteString(m.detail.View())
		b.WriteString("\n")
	default:
		b.WriteString(m.listView())
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	if m.err != nil {
		b.WriteString("\n" + errorStyle.Render("error: "+m.err.Error()) + "\n")
	}

	b.WriteString("\n" + helpStyle.Render(m.help()))
	return appStyle.Render(b.String())
}

func (m model) listView() string {
	if m.loading && len(m.views) == 0 {
		return "loading...\n"
	}
	if len(m.views) == 0 {
		return mutedStyle.Render("no records") + "\n"
	}

	var b strings.Builder
	for i, view := range m.views {
		line := fmt.Sprintf("%s %s", typeIcon(view.Type), view.Name)
		if view.SubTitle != nil && *view.SubTitle != "" {
			line += "  " + mutedStyle.Render(*view.SubTitle)
		}
		if i == m.idx {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m model) help() string {
	switch {
	case m.confirm:
		return "y confirm  n cancel"
	case m.screen == screenDetail:
		return "space reveal  c copy  d delete  esc back  q quit"
	default:
		return "enter open  c copy  d delete  r reload  q quit"
	}
}

func typeIcon(t models.CipherType) string {
	switch t {
	case models.CipherTypeLogin:
		return "[L]"
	case models.CipherTypeSecureNote:
		return "[N]"
	case models.CipherTypeCard:
		return "[C]"
	case models.CipherTypeIdentity:
		return "[I]"
	default:
		return "[?]"
	}
}
