package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/cipher-keeper/models"
)

const (
	secretMask = "••••••••"
	noValue    = "-"
)

type styles struct {
	title  lipgloss.Style
	cell   lipgloss.Style
	header lipgloss.Style
	label  lipgloss.Style
	muted  lipgloss.Style
	box    lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:  r.NewStyle().Bold(true),
		cell:   r.NewStyle(),
		header: r.NewStyle().Bold(true).Underline(true),
		label:  r.NewStyle().Faint(true).Width(14),
		muted:  r.NewStyle().Faint(true),
		box:    r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}

// Printer renders decrypted views for a terminal. Colors are used only
// when w is a terminal that supports them.
type Printer struct {
	w      io.Writer
	styles styles
	reveal bool
}

// NewPrinter returns a Printer writing to w. Secret fields are masked
// unless reveal is set.
func NewPrinter(w io.Writer, reveal bool) *Printer {
	return &Printer{
		w:      w,
		styles: newStyles(lipgloss.NewRenderer(w)),
		reveal: reveal,
	}
}

// List writes one row per view: id, type, name and subtitle.
func (p *Printer) List(views []*models.CipherView) error {
	if len(views) == 0 {
		_, err := fmt.Fprintln(p.w, p.styles.muted.Render("no records"))
		return err
	}

	rows := make([][]string, 0, len(views)+1)
	rows = append(rows, []string{"ID", "TYPE", "NAME", "SUBTITLE"})
	for _, v := range views {
		rows = append(rows, []string{deref(v.ID), v.Type.String(), v.Name, deref(v.SubTitle)})
	}

	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	var b strings.Builder
	for r, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			style := p.styles.cell.Width(widths[i] + 2)
			if r == 0 {
				style = p.styles.header.Width(widths[i] + 2)
			}
			cells[i] = style.Render(cell)
		}
		b.WriteString(strings.TrimRight(lipgloss.JoinHorizontal(lipgloss.Top, cells...), " "))
		b.WriteString("\n")
	}

	_, err := io.WriteString(p.w, b.String())
	return err
}

// View writes every field of view inside a bordered box.
func (p *Printer) View(view *models.CipherView) error {
	_, err := fmt.Fprintln(p.w, p.styles.box.Render(p.RenderView(view)))
	return err
}

// RenderView returns the body of a detail view without the surrounding box.
func (p *Printer) RenderView(view *models.CipherView) string {
	var b strings.Builder

	b.WriteString(p.styles.title.Render(view.Name))
	b.WriteString("  ")
	b.WriteString(p.styles.muted.Render("[" + view.Type.String() + "]"))
	b.WriteString("\n")
	if view.SubTitle != nil && *view.SubTitle != "" {
		b.WriteString(p.styles.muted.Render(*view.SubTitle))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for _, f := range fieldsOf(view)[1:] {
		if f.value == "" && strings.HasPrefix(f.key, customFieldPrefix) {
			continue
		}
		b.WriteString(p.line(f.label, p.display(f)))
	}

	if view.Login != nil && view.Login.Domain != "" {
		b.WriteString(p.line("Domain", view.Login.Domain))
	}
	if view.Favorite {
		b.WriteString(p.line("Favorite", "yes"))
	}
	if view.OrganizationID != nil {
		b.WriteString(p.line("Organization", *view.OrganizationID))
	}
	if view.FolderID != nil {
		b.WriteString(p.line("Folder", *view.FolderID))
	}
	if len(view.CollectionIDs) > 0 {
		b.WriteString(p.line("Collections", strings.Join(view.CollectionIDs, ", ")))
	}

	if len(view.Attachments) > 0 {
		b.WriteString("\n")
		b.WriteString(p.styles.header.Render("Attachments"))
		b.WriteString("\n")
		for _, a := range view.Attachments {
			b.WriteString(fmt.Sprintf("  %s  %s\n", a.FileName, p.styles.muted.Render(a.SizeName)))
		}
	}

	b.WriteString("\n")
	b.WriteString(p.styles.muted.Render("id " + deref(view.ID)))

	return b.String()
}

// ImportResult writes the ids assigned by an import, one per line.
func (p *Printer) ImportResult(ids []string) error {
	if _, err := fmt.Fprintln(p.w, p.styles.title.Render(fmt.Sprintf("imported %d record(s)", len(ids)))); err != nil {
		return err
	}
	for _, id := range ids {
		if _, err := fmt.Fprintln(p.w, id); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) line(label, value string) string {
	return p.styles.label.Render(label) + value + "\n"
}

func (p *Printer) display(f field) string {
	switch {
	case f.value == "":
		return p.styles.muted.Render(noValue)
	case f.secret && !p.reveal:
		return secretMask
	default:
		return f.value
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
