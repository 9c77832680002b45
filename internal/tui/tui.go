package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/coffee-notes/internal/logger"
	"github.com/MKhiriev/coffee-notes/internal/service"
	"github.com/MKhiriev/coffee-notes/models"
)

var errNoNoteService = errors.New("note service is not configured")

// TUI runs the board in the terminal.
type TUI struct {
	notes     service.ClientNoteService
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

// New returns a TUI backed by the client note service.
func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.NoteService == nil {
		return nil, errNoNoteService
	}

	return &TUI{
		notes:     services.NoteService,
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

// Run shows the board until the user quits or ctx is cancelled. The
// session in ctx, if any, owns created notes and likes.
func (t *TUI) Run(ctx context.Context, sessionID string) error {
	model := newBoardModel(ctx, t.notes, sessionID, t.buildInfo)

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		t.logger.Err(err).Str("func", "*TUI.Run").Msg("board stopped with error")
		return fmt.Errorf("run board: %w", err)
	}

	return nil
}
