package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"

	"github.com/MKhiriev/coffee-notes/internal/canvas"
	"github.com/MKhiriev/coffee-notes/internal/filter"
	"github.com/MKhiriev/coffee-notes/models"
)

const (
	// gridCardWidth and gridCardHeight are the outer size of a grid card.
	gridCardWidth  = 34
	gridCardHeight = 9
	gridGap        = 1

	// dotSpacing is the distance between background dots in canvas units.
	dotSpacing = 64
)

func (m boardModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	switch m.overlay {
	case overlayForm:
		return m.place(m.form.View())
	case overlayConfirmDelete:
		return m.place(m.confirmView())
	case overlayInfo:
		return m.place(m.infoView())
	case overlayDetail:
		return lipgloss.JoinVertical(lipgloss.Left,
			m.headerView(),
			m.detail.View(),
			m.statusView(),
			helpStyle.Render("l like • e edit • d delete • 1-9 copy item • ↑/↓ scroll • esc back"),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(),
		m.boardView(),
		m.statusView(),
		m.helpView(),
	)
}

func (m boardModel) place(content string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, overlayBoxStyle.Render(content))
}

// ── header and footer ──

func (m boardModel) headerView() string {
	mode := m.canvas.Mode().String()
	info := fmt.Sprintf(" %s", mode)
	if m.canvas.Mode() == canvas.ModeCanvas {
		info += fmt.Sprintf(" · %d%%", int(math.Round(m.canvas.Zoom()*100)))
	}
	info += fmt.Sprintf(" · %d/%d notes", len(m.visible), len(m.notes))
	if f := filterSummary(m.criteria); f != "" {
		info += " · " + f
	}

	line := titleStyle.Render("☕ Coffee Notes") + headerInfoStyle.Render(info)
	return truncate.String(line, uint(max(m.width, 0)))
}

func filterSummary(c filter.Criteria) string {
	var parts []string
	if c.Category != "" && c.Category != filter.All {
		parts = append(parts, "category: "+models.Category(c.Category).Label())
	}
	if c.Source != "" && c.Source != filter.All {
		parts = append(parts, fmt.Sprintf("source: %q", c.Source))
	}
	if c.Query != "" {
		parts = append(parts, fmt.Sprintf("search: %q", c.Query))
	}
	return strings.Join(parts, ", ")
}

func (m boardModel) statusView() string {
	switch {
	case m.overlay == overlaySearch || m.overlay == overlaySource:
		return m.input.View()
	case m.status != "" && m.statusErr:
		return errorStyle.Render(m.status)
	case m.status != "":
		return statusStyle.Render(m.status)
	case m.loading:
		return mutedStyle.Render("Loading notes...")
	default:
		return ""
	}
}

func (m boardModel) helpView() string {
	bindings := []string{"tab select", "enter open", "n new", "e edit", "d delete", "l like",
		"/ search", "c category", "s source", "x clear", "g layout"}
	if m.canvas.Mode() == canvas.ModeCanvas {
		bindings = append(bindings, "+/- zoom", "0 reset", "drag move")
	}
	bindings = append(bindings, "v version", "q quit")
	return helpStyle.Render(runewidth.Truncate(strings.Join(bindings, " • "), m.width, "…"))
}

// ── board ──

func (m boardModel) boardView() string {
	w, h := m.width, m.boardHeight()
	if len(m.visible) == 0 {
		msg := "No notes yet. Press n to add the first one."
		switch {
		case m.loading:
			msg = "Loading notes..."
		case len(m.notes) > 0:
			msg = "No notes match the filters. Press x to clear them."
		}
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, mutedStyle.Render(msg))
	}

	if m.canvas.Mode() == canvas.ModeGrid {
		return lipgloss.NewStyle().Width(w).Height(h).MaxHeight(h).Render(m.gridView(w, h))
	}
	return m.canvasView(w, h)
}

// canvasView paints the visible notes at their canvas positions. The
// dragged note is painted last.
func (m boardModel) canvasView(w, h int) string {
	buf := newCellBuffer(w, h)
	t := m.canvas.Transform()
	paintDots(buf, t)

	order := make([]int, 0, len(m.visible))
	dragged := -1
	for i := len(m.visible) - 1; i >= 0; i-- {
		if m.canvas.IsDragging(m.visible[i].ID) {
			dragged = i
			continue
		}
		order = append(order, i)
	}
	if dragged >= 0 {
		order = append(order, dragged)
	}

	for _, i := range order {
		n := m.visible[i]
		pos, ok := m.canvas.Position(n.ID)
		if !ok {
			continue
		}
		x, y, cw, ch := cardRect(pos, t)
		toggle := m.likes.Get(n.ID)
		lines := cardLines(n, toggle.State(), toggle.InFlight(), n.OwnedBy(m.sessionID), cw-4, ch-2)
		buf.box(x, y, cw, ch, i, lines)
	}

	return buf.render(func(owner int) lipgloss.Style {
		if owner == noOwner || owner >= len(m.visible) {
			return canvasBackgroundStyle
		}
		n := m.visible[owner]
		return cardStyle(n.Category, n.ID == m.selected)
	})
}

// paintDots draws the background dot grid so pan and zoom are visible on
// an empty area.
func paintDots(buf *cellBuffer, t canvas.Transform) {
	sx := dotSpacing * t.Scale / cellWidth
	sy := dotSpacing * t.Scale / cellHeight
	if sx < 2 || sy < 1 {
		return
	}
	ox := posMod(t.X/cellWidth, sx)
	oy := posMod(t.Y/cellHeight, sy)
	for y := oy; y < float64(buf.h); y += sy {
		for x := ox; x < float64(buf.w); x += sx {
			buf.put(int(x), int(y), '·', noOwner)
		}
	}
}

func posMod(a, b float64) float64 {
	r := math.Mod(a, b)
	if r < 0 {
		r += b
	}
	return r
}

// ── grid ──

func gridColumns(width int) int {
	return max(1, (width+gridGap)/(gridCardWidth+gridGap))
}

func gridVisibleRows(height int) int {
	return max(1, height/gridCardHeight)
}

// gridFirstRow is the first row shown so the selected note stays visible.
func (m boardModel) gridFirstRow() int {
	idx := max(m.visibleIndex(m.selected), 0)
	row := idx / gridColumns(m.width)
	return max(0, row-gridVisibleRows(m.boardHeight())+1)
}

// gridIndexAt returns the index of the visible note under a board cell, or
// -1.
func (m boardModel) gridIndexAt(col, row int) int {
	if col < 0 || row < 0 || row >= m.boardHeight() {
		return -1
	}
	cols := gridColumns(m.width)
	c := col / (gridCardWidth + gridGap)
	if c >= cols || col%(gridCardWidth+gridGap) >= gridCardWidth {
		return -1
	}
	r := m.gridFirstRow() + row/gridCardHeight
	idx := r*cols + c
	if idx >= len(m.visible) {
		return -1
	}
	return idx
}

func (m boardModel) gridView(w, h int) string {
	cols := gridColumns(w)
	first := m.gridFirstRow()
	rows := gridVisibleRows(h)

	var lines []string
	for r := first; r < first+rows; r++ {
		start := r * cols
		if start >= len(m.visible) {
			break
		}
		end := min(start+cols, len(m.visible))

		cards := make([]string, 0, (end-start)*2)
		for i := start; i < end; i++ {
			if i > start {
				cards = append(cards, strings.Repeat(" ", gridGap))
			}
			cards = append(cards, m.gridCard(m.visible[i]))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m boardModel) gridCard(n models.Note) string {
	innerW := gridCardWidth - 4
	innerH := gridCardHeight - 2

	toggle := m.likes.Get(n.ID)
	lines := cardLines(n, toggle.State(), toggle.InFlight(), n.OwnedBy(m.sessionID), innerW, innerH)
	for i, l := range lines {
		lines[i] = runewidth.Truncate(l, innerW, "")
	}

	style := gridCardStyle.
		Width(gridCardWidth - 2).
		Height(innerH).
		BorderForeground(categoryColor(n.Category)).
		Foreground(categoryColor(n.Category))
	if n.ID == m.selected {
		style = style.BorderStyle(lipgloss.ThickBorder()).Bold(true)
	}
	return style.Render(strings.Join(lines, "\n"))
}

// ── overlays ──

func (m boardModel) confirmView() string {
	n, _ := m.note(m.confirmID)
	var b strings.Builder
	b.WriteString(titleStyle.Render("Delete note?") + "\n\n")
	b.WriteString(n.Category.Label() + "\n")
	b.WriteString(mutedStyle.Render(runewidth.Truncate(previewOf(n), 48, "…")) + "\n\n")
	b.WriteString(helpStyle.Render("y delete • n cancel"))
	return b.String()
}

func (m boardModel) infoView() string {
	server := m.serverVersion
	if server == "" {
		server = "..."
	}
	session := m.sessionID
	if session == "" {
		session = "none"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("About") + "\n\n")
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Client version:"), m.buildInfo.BuildVersion())
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Build date:    "), m.buildInfo.BuildDate())
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Build commit:  "), m.buildInfo.BuildCommit())
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Server version:"), server)
	fmt.Fprintf(&b, "%s %s\n\n", labelStyle.Render("Session:       "), session)
	b.WriteString(helpStyle.Render("esc close"))
	return b.String()
}
