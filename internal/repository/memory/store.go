// Package memory implements the repository interfaces on top of plain maps.
// A single mutex covers both collections: every public method is one short
// critical section, which makes each operation atomic with respect to all
// others. Nothing blocks while the lock is held.
package memory

import (
	"sync"

	"task-tracker/internal/domain"
)

// Store holds users and tasks in process memory. State does not survive a
// restart. Ids come from per-collection sequences starting at 1 and are never
// reused, even after deletion.
type Store struct {
	mu sync.Mutex

	users       map[int64]*domain.User
	usersByName map[string]int64
	userSeq     int64

	tasks   map[int64]*domain.Task
	taskSeq int64
}

func NewStore() *Store {
	return &Store{
		users:       make(map[int64]*domain.User),
		usersByName: make(map[string]int64),
		tasks:       make(map[int64]*domain.Task),
	}
}
