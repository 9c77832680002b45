package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// noOwner marks background cells.
const noOwner = -1

// wideTail fills the second column of a double-width rune.
const wideTail rune = 0

type cell struct {
	r     rune
	owner int
}

// cellBuffer is a fixed-size grid of terminal cells. Boxes painted later
// cover earlier ones; anything outside the grid is clipped.
type cellBuffer struct {
	w, h  int
	cells []cell
}

func newCellBuffer(w, h int) *cellBuffer {
	w, h = max(0, w), max(0, h)
	b := &cellBuffer{w: w, h: h, cells: make([]cell, w*h)}
	for i := range b.cells {
		b.cells[i] = cell{r: ' ', owner: noOwner}
	}
	return b
}

func (b *cellBuffer) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.w && y < b.h
}

func (b *cellBuffer) put(x, y int, r rune, owner int) {
	if !b.inside(x, y) {
		return
	}
	i := y*b.w + x
	// Overwriting half of a wide rune blanks the other half.
	if r != wideTail {
		if b.cells[i].r == wideTail && x > 0 {
			b.cells[i-1].r = ' '
		}
		if x+1 < b.w && b.cells[i+1].r == wideTail {
			b.cells[i+1].r = ' '
		}
	}
	b.cells[i] = cell{r: r, owner: owner}
}

// text writes s from (x, y) using at most maxW columns.
func (b *cellBuffer) text(x, y, maxW int, s string, owner int) {
	col := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if col+rw > maxW {
			return
		}
		if rw == 2 && !b.inside(x+col+1, y) {
			b.put(x+col, y, ' ', owner)
			return
		}
		b.put(x+col, y, r, owner)
		if rw == 2 {
			b.put(x+col+1, y, wideTail, owner)
		}
		col += rw
	}
}

// box paints a rounded box of w×h cells at (x, y), clears its interior and
// writes lines into it, one per interior row.
func (b *cellBuffer) box(x, y, w, h, owner int, lines []string) {
	if w < 2 || h < 2 {
		for dy := range max(h, 1) {
			for dx := range max(w, 1) {
				b.put(x+dx, y+dy, '▪', owner)
			}
		}
		return
	}

	for dy := 1; dy < h-1; dy++ {
		b.put(x, y+dy, '│', owner)
		for dx := 1; dx < w-1; dx++ {
			b.put(x+dx, y+dy, ' ', owner)
		}
		b.put(x+w-1, y+dy, '│', owner)
	}
	for dx := 1; dx < w-1; dx++ {
		b.put(x+dx, y, '─', owner)
		b.put(x+dx, y+h-1, '─', owner)
	}
	b.put(x, y, '╭', owner)
	b.put(x+w-1, y, '╮', owner)
	b.put(x, y+h-1, '╰', owner)
	b.put(x+w-1, y+h-1, '╯', owner)

	innerW := w - 4
	for i, line := range lines {
		if i >= h-2 || innerW <= 0 {
			break
		}
		b.text(x+2, y+1+i, innerW, line, owner)
	}
}

// render joins the grid into lines, styling each run of cells that share
// an owner with style(owner).
func (b *cellBuffer) render(style func(owner int) lipgloss.Style) string {
	var out strings.Builder
	var run strings.Builder

	for y := range b.h {
		if y > 0 {
			out.WriteByte('\n')
		}
		runOwner := noOwner
		run.Reset()
		flush := func() {
			if run.Len() > 0 {
				out.WriteString(style(runOwner).Render(run.String()))
				run.Reset()
			}
		}
		for x := range b.w {
			c := b.cells[y*b.w+x]
			if c.owner != runOwner {
				flush()
				runOwner = c.owner
			}
			if c.r != wideTail {
				run.WriteRune(c.r)
			}
		}
		flush()
	}

	return out.String()
}

// String renders the grid without styles.
func (b *cellBuffer) String() string {
	return b.render(func(int) lipgloss.Style { return lipgloss.NewStyle() })
}
