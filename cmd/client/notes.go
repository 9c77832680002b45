package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/coffee-notes/internal/codec"
	"github.com/MKhiriev/coffee-notes/internal/filter"
	"github.com/MKhiriev/coffee-notes/internal/likes"
	"github.com/MKhiriev/coffee-notes/internal/service"
	"github.com/MKhiriev/coffee-notes/models"
)

var (
	errNoteNotFound    = errors.New("note not found")
	errNotOwner        = errors.New("only the author of a note can change it")
	errUnknownCategory = errors.New("unknown category")
	errEmptyText       = errors.New("note text is required")
	errEmptyList       = errors.New("a list needs a title and at least one item")
	errBadCoordinate   = errors.New("coordinates must be integers")
)

const previewWidth = 48

func findNote(ctx context.Context, notes service.ClientNoteService, id string) (models.Note, error) {
	all, err := notes.List(ctx)
	if err != nil {
		return models.Note{}, err
	}
	for _, n := range all {
		if n.ID == id {
			return n, nil
		}
	}
	return models.Note{}, fmt.Errorf("%w: %s", errNoteNotFound, id)
}

func ownedNote(ctx context.Context, notes service.ClientNoteService, id, sessionID string) (models.Note, error) {
	n, err := findNote(ctx, notes, id)
	if err != nil {
		return models.Note{}, err
	}
	if !n.OwnedBy(sessionID) {
		return models.Note{}, errNotOwner
	}
	return n, nil
}

func parseCategory(s string) (models.Category, error) {
	c := models.Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsValid() {
		names := make([]string, 0, len(models.Categories))
		for _, c := range models.Categories {
			names = append(names, string(c))
		}
		return "", fmt.Errorf("%w %q, expected one of: %s", errUnknownCategory, s, strings.Join(names, ", "))
	}
	return c, nil
}

// bodyFlags are the flags describing a note body.
type bodyFlags struct {
	title  string
	items  []string
	source string
}

func (f *bodyFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "list title")
	cmd.Flags().StringArrayVar(&f.items, "item", nil, "list item, repeatable")
	cmd.Flags().StringVar(&f.source, "source", "", "where the thought came from")
}

func (f bodyFlags) body(category models.Category, words []string) (models.Body, error) {
	source := strings.TrimSpace(f.source)

	if !category.IsList() {
		text := strings.TrimSpace(strings.Join(words, " "))
		if text == "" {
			return nil, errEmptyText
		}
		return models.TextBody{Text: text, Source: source}, nil
	}

	var items []string
	for _, item := range f.items {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	title := strings.TrimSpace(f.title)
	if title == "" || len(items) == 0 {
		return nil, errEmptyList
	}
	return models.ListBody{Title: title, Items: items, Source: source}, nil
}

// ── list ──

func newListCmd(env *clientEnv) *cobra.Command {
	var (
		criteria = filter.Criteria{Category: filter.All, Source: filter.All}
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notes, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, sessionID := env.app.WithSession(cmd.Context())

			notes, err := env.services.NoteService.List(ctx)
			if err != nil {
				return err
			}
			notes = filter.Apply(notes, criteria)

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(notes)
			}

			fmt.Fprintln(out, notesTable(notes, sessionID))
			return nil
		},
	}

	cmd.Flags().StringVar(&criteria.Category, "category", filter.All, "only notes of this category")
	cmd.Flags().StringVar(&criteria.Source, "source", filter.All, "only notes whose source contains this text")
	cmd.Flags().StringVarP(&criteria.Query, "search", "q", "", "only notes containing this text")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print notes as JSON")

	return cmd
}

func notesTable(notes []models.Note, sessionID string) string {
	rows := make([][]string, 0, len(notes))
	for _, n := range notes {
		mine := ""
		if n.OwnedBy(sessionID) {
			mine = "✎"
		}
		preview := codec.Preview(codec.Decode(n.Content))
		preview = strings.Join(strings.Fields(preview), " ")
		rows = append(rows, []string{
			n.ID,
			n.Category.Label(),
			strconv.Itoa(n.Likes),
			mine,
			runewidth.Truncate(preview, previewWidth, "…"),
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "CATEGORY", "LIKES", "MINE", "NOTE").
		Rows(rows...).
		String()
}

// ── add / edit ──

func newAddCmd(env *clientEnv) *cobra.Command {
	var flags bodyFlags

	cmd := &cobra.Command{
		Use:   "add <category> [text...]",
		Short: "Add a note",
		Long: `Add a note to the board. Categories: rambling, good-advice, bad-advice
and list. A list takes --title and one --item per entry instead of text.`,
		Example: `  coffee-notes add good-advice "Write the test first" --source "a colleague"
  coffee-notes add list --title Books --item "The Go Programming Language" --item "SICP"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := parseCategory(args[0])
			if err != nil {
				return err
			}
			body, err := flags.body(category, args[1:])
			if err != nil {
				return err
			}

			ctx, _ := env.app.WithSession(cmd.Context())
			note, err := env.services.NoteService.Create(ctx, category, body)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Note added: %s\n", note.ID)
			return nil
		},
	}
	flags.register(cmd)

	return cmd
}

func newEditCmd(env *clientEnv) *cobra.Command {
	var flags bodyFlags

	cmd := &cobra.Command{
		Use:   "edit <id> [text...]",
		Short: "Replace the body of one of your notes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, sessionID := env.app.WithSession(cmd.Context())

			note, err := ownedNote(ctx, env.services.NoteService, args[0], sessionID)
			if err != nil {
				return err
			}
			body, err := flags.body(note.Category, args[1:])
			if err != nil {
				return err
			}

			if _, err = env.services.NoteService.Edit(ctx, note, body); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Note saved: %s\n", note.ID)
			return nil
		},
	}
	flags.register(cmd)

	return cmd
}

// ── move / like / delete ──

func newMoveCmd(env *clientEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "move <id> <x> <y>",
		Short: "Move a note on the canvas",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, errX := strconv.Atoi(args[1])
			y, errY := strconv.Atoi(args[2])
			if errX != nil || errY != nil {
				return errBadCoordinate
			}

			ctx, _ := env.app.WithSession(cmd.Context())
			if err := env.services.NoteService.UpdatePosition(ctx, args[0], x, y); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Note moved to (%d, %d)\n", x, y)
			return nil
		},
	}
}

func newLikeCmd(env *clientEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "like <id>",
		Short: "Like a note, or take the like back",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, _ := env.app.WithSession(cmd.Context())

			state, err := likes.NewToggle(args[0], likes.State{}, env.services.NoteService).Toggle(ctx)
			if err != nil {
				return err
			}

			verb := "Like removed"
			if state.Liked {
				verb = "Liked"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d like(s)\n", verb, state.Count)
			return nil
		},
	}
}

func newDeleteCmd(env *clientEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one of your notes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, sessionID := env.app.WithSession(cmd.Context())

			if _, err := ownedNote(ctx, env.services.NoteService, args[0], sessionID); err != nil {
				return err
			}
			if err := env.services.NoteService.Delete(ctx, args[0]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Note deleted: %s\n", args[0])
			return nil
		},
	}
}
