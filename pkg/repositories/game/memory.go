package game

import (
	"context"
	"sync"

	"github.com/fintechx/casino/pkg/entities"
)

// MemoryRepository implements Repository interface with in-memory storage
type MemoryRepository struct {
	mu sync.RWMutex
	// All entries, most recent first
	entries []*entities.LogEntry
	// Map of user to that user's entries, most recent first
	userEntries map[string][]*entities.LogEntry
}

// NewMemoryRepository creates a new in-memory game log repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		userEntries: make(map[string][]*entities.LogEntry),
	}
}

// SaveEntry appends a completed round to the log
func (r *MemoryRepository) SaveEntry(ctx context.Context, entry *entities.LogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entryCopy := *entry
	r.entries = append([]*entities.LogEntry{&entryCopy}, r.entries...)
	r.userEntries[entry.User] = append([]*entities.LogEntry{&entryCopy}, r.userEntries[entry.User]...)

	return nil
}

// GetUserEntries returns a user's log entries, most recent first
func (r *MemoryRepository) GetUserEntries(ctx context.Context, user string, limit int) ([]*entities.LogEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return copyEntries(r.userEntries[user], limit), nil
}

// GetAllEntries returns every log entry, most recent first
func (r *MemoryRepository) GetAllEntries(ctx context.Context) ([]*entities.LogEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return copyEntries(r.entries, 0), nil
}

func copyEntries(entries []*entities.LogEntry, limit int) []*entities.LogEntry {
	if limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}

	result := make([]*entities.LogEntry, len(entries))
	for i, e := range entries {
		entryCopy := *e
		result[i] = &entryCopy
	}
	return result
}
