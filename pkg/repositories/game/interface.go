package game

import (
	"context"

	"github.com/fintechx/casino/pkg/entities"
)

// Repository defines storage operations for the append-only game log.
// Entries are immutable once saved; there is no update or delete. The only
// implementation is in-memory: the log lives and dies with the process.
type Repository interface {
	// SaveEntry appends a completed round to the log
	SaveEntry(ctx context.Context, entry *entities.LogEntry) error

	// GetUserEntries returns a user's log entries, most recent first
	GetUserEntries(ctx context.Context, user string, limit int) ([]*entities.LogEntry, error)

	// GetAllEntries returns every log entry, most recent first
	GetAllEntries(ctx context.Context) ([]*entities.LogEntry, error)
}
