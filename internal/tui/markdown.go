package tui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"

	"github.com/MKhiriev/coffee-notes/internal/codec"
	"github.com/MKhiriev/coffee-notes/internal/likes"
	"github.com/MKhiriev/coffee-notes/models"
)

var (
	mdRendererMu sync.Mutex
	// Renderers are cached per wrap width. A fixed style is used because
	// auto-detection queries the terminal and may block.
	mdRenderers = map[int]*glamour.TermRenderer{}
)

// noteMarkdown renders a note as Markdown for the detail view. List items
// are numbered so they can be copied by number.
func noteMarkdown(n models.Note, state likes.State) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", n.Category.Label())

	body := codec.Decode(n.Content)
	switch v := body.(type) {
	case models.ListBody:
		fmt.Fprintf(&b, "## %s\n\n", v.Title)
		for i, item := range v.Items {
			fmt.Fprintf(&b, "%d. %s\n", i+1, item)
		}
		b.WriteString("\n")
	case models.TextBody:
		b.WriteString(v.Text + "\n\n")
	}

	if src := body.Attribution(); src != "" {
		fmt.Fprintf(&b, "> %s\n\n", src)
	}

	heart := "♡"
	if state.Liked {
		heart = "♥"
	}
	fmt.Fprintf(&b, "---\n\n%s %d · %s\n", heart, state.Count, n.CreatedAt.Local().Format("2 Jan 2006 15:04"))

	return b.String()
}

func renderMarkdown(md string, width int) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	width = max(width, 20)

	mdRendererMu.Lock()
	defer mdRendererMu.Unlock()

	r, ok := mdRenderers[width]
	if !ok {
		var err error
		r, err = glamour.NewTermRenderer(
			glamour.WithStandardStyle(styles.DarkStyle),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return md
		}
		mdRenderers[width] = r
	}

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}
