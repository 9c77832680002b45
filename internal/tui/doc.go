// Package tui is the terminal board of the Coffee Notes client.
//
// The board shows notes either on a free canvas, where they can be panned,
// zoomed and dragged with the mouse, or in a responsive grid. Notes are
// created, edited, deleted and liked from the keyboard; the detail view
// renders a note as Markdown and copies list items to the clipboard.
package tui
