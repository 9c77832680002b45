package client

import (
	"context"
	"errors"

	"github.com/MKhiriev/coffee-notes/internal/logger"
	"github.com/MKhiriev/coffee-notes/internal/service"
	"github.com/MKhiriev/coffee-notes/internal/utils"
)

var (
	errNoServices = errors.New("client services are not configured")
	errNoBoard    = errors.New("board is not configured")
)

// App is the client application.
type App struct {
	services *service.ClientServices
	board    Board
	logger   *logger.Logger
}

// NewApp returns an App that runs board with services.
func NewApp(services *service.ClientServices, board Board, logger *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errNoServices
	}
	if board == nil {
		return nil, errNoBoard
	}

	return &App{services: services, board: board, logger: logger}, nil
}

// WithSession resolves the session of this client and returns ctx carrying
// it and the logger. A session that cannot be resolved is logged and the
// client continues without one: it can read and create notes but cannot
// like, edit or delete them.
func (a *App) WithSession(ctx context.Context) (context.Context, string) {
	ctx = a.logger.WithContext(ctx)

	if a.services.Sessions == nil {
		return ctx, ""
	}

	sessionID, err := a.services.Sessions.GetOrCreate(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Str("func", "*App.WithSession").Msg("continuing without a session")
		return ctx, ""
	}
	if sessionID == "" {
		return ctx, ""
	}

	return utils.WithSessionID(ctx, sessionID), sessionID
}

// Run shows the board until the user quits.
func (a *App) Run(ctx context.Context) error {
	ctx, sessionID := a.WithSession(ctx)

	a.logger.Info().Bool("session", sessionID != "").Msg("starting board")
	return a.board.Run(ctx, sessionID)
}
