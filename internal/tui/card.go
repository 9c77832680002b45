package tui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"

	"github.com/MKhiriev/coffee-notes/internal/codec"
	"github.com/MKhiriev/coffee-notes/internal/likes"
	"github.com/MKhiriev/coffee-notes/models"
)

const ownerMark = "✎ yours"

type controlKind int

const (
	controlNone controlKind = iota
	controlLike
	controlEdit
	controlDelete
)

// controlZone is a clickable span of the controls line, in columns from
// the start of the line.
type controlZone struct {
	kind     controlKind
	from, to int
}

// likeLabel renders the like state of a note.
func likeLabel(state likes.State, inFlight bool) string {
	heart := "♡"
	if state.Liked {
		heart = "♥"
	}
	label := fmt.Sprintf("%s %d", heart, state.Count)
	if inFlight {
		label += "…"
	}
	return label
}

// controlsLine is the last line of a card. Edit and delete are shown only
// to the author.
func controlsLine(state likes.State, inFlight, owned bool) (string, []controlZone) {
	like := likeLabel(state, inFlight)
	zones := []controlZone{{kind: controlLike, from: 0, to: runewidth.StringWidth(like)}}
	if !owned {
		return like, zones
	}

	const gap = "   "
	line := like + gap
	for _, c := range []struct {
		kind  controlKind
		label string
	}{
		{controlEdit, "[e]dit"},
		{controlDelete, "[d]el"},
	} {
		from := runewidth.StringWidth(line)
		line += c.label
		zones = append(zones, controlZone{kind: c.kind, from: from, to: from + runewidth.StringWidth(c.label)})
		line += " "
	}

	return strings.TrimRight(line, " "), zones
}

func controlAt(zones []controlZone, col int) controlKind {
	for _, z := range zones {
		if col >= z.from && col < z.to {
			return z.kind
		}
	}
	return controlNone
}

// headerLine is the first line of a card.
func headerLine(n models.Note, owned bool) string {
	header := n.Category.Label()
	if owned {
		header += "  " + ownerMark
	}
	return header
}

// bodyLines renders the decoded note body wrapped to width.
func bodyLines(body models.Body, width int) []string {
	width = max(width, 1)

	var lines []string
	switch b := body.(type) {
	case models.ListBody:
		if b.Title != "" {
			lines = append(lines, wrap(b.Title, width)...)
		}
		for _, item := range b.Items {
			lines = append(lines, wrap("• "+item, width)...)
		}
	default:
		lines = append(lines, wrap(codec.Preview(body), width)...)
	}

	return lines
}

// cardLines lays out a note inside a card with width×height interior
// cells: header, body, source and controls.
func cardLines(n models.Note, state likes.State, inFlight, owned bool, width, height int) []string {
	if height <= 0 {
		return nil
	}

	header := headerLine(n, owned)
	if height == 1 {
		return []string{header}
	}

	body := codec.Decode(n.Content)
	controls, _ := controlsLine(state, inFlight, owned)

	var source []string
	if s := body.Attribution(); s != "" && height >= 4 {
		source = []string{"— " + s}
	}

	rows := height - 2 - len(source)
	text := bodyLines(body, width)
	if len(text) > rows {
		text = text[:max(rows, 0)]
		if rows > 0 {
			text[rows-1] = ellipsize(text[rows-1], width)
		}
	}

	lines := make([]string, 0, height)
	lines = append(lines, header)
	lines = append(lines, text...)
	for len(lines) < height-1-len(source) {
		lines = append(lines, "")
	}
	lines = append(lines, source...)
	lines = append(lines, controls)

	return lines
}

func previewOf(n models.Note) string {
	return codec.Preview(codec.Decode(n.Content))
}

func wrap(s string, width int) []string {
	var lines []string
	for _, para := range strings.Split(wordwrap.String(s, width), "\n") {
		for runewidth.StringWidth(para) > width {
			head := runewidth.Truncate(para, width, "")
			if head == "" {
				head = string([]rune(para)[:1])
			}
			lines = append(lines, head)
			para = strings.TrimPrefix(para, head)
		}
		lines = append(lines, para)
	}
	return lines
}

func ellipsize(s string, width int) string {
	if runewidth.StringWidth(s)+1 <= width {
		return s + "…"
	}
	return runewidth.Truncate(s, width, "…")
}
