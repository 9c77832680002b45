// Package workers runs the background jobs of the note store server.
// It defines the Worker interface and a Workers aggregate that starts and
// stops several workers together.
package workers

import (
	"context"
	"database/sql"
)

// Worker is a background job with an explicit lifecycle.
//
// Start must not block: implementations spawn their own goroutine and stop
// when ctx is cancelled or Stop is called. Stop waits for that goroutine.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// StatsSource reports database connection pool statistics.
type StatsSource interface {
	Stats() sql.DBStats
}
