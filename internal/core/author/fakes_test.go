package author_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/taibuivan/authordesk/internal/core/author"
	"github.com/taibuivan/authordesk/internal/platform/apperr"
	"github.com/taibuivan/authordesk/internal/platform/sec"
)

// fakeAccess is a fixed caller.
type fakeAccess struct {
	admin  bool
	userID string
}

func (f fakeAccess) CurrentUserHasRole(_ context.Context, role sec.UserRole) bool {
	if role == sec.RoleAdmin {
		return f.admin
	}
	return f.userID != ""
}

func (f fakeAccess) CurrentUserID(context.Context) (string, bool) {
	return f.userID, f.userID != ""
}

// memoryStore is an in-memory author.Store that counts calls per method.
// Like PostgresStore it only updates ids it already holds.
type memoryStore struct {
	mu       sync.RWMutex
	rows     map[int64]author.Author
	sequence int64
	access   author.AccessContext
	calls    map[string]int
	failWith error
}

func newMemoryStore(access author.AccessContext) *memoryStore {
	return &memoryStore{
		rows:   make(map[int64]author.Author),
		access: access,
		calls:  make(map[string]int),
	}
}

func (s *memoryStore) seed(a author.Author) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rows[*a.ID] = a
	if *a.ID > s.sequence {
		s.sequence = *a.ID
	}
}

func (s *memoryStore) count(method string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.calls[method]
}

func (s *memoryStore) Save(_ context.Context, a author.Author) (author.Author, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls["Save"]++
	if s.failWith != nil {
		return author.Author{}, s.failWith
	}

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	if a.ID == nil {
		s.sequence++
		id := s.sequence
		a.ID = &id
		a.CreatedAt = now
	} else {
		existing, ok := s.rows[*a.ID]
		if !ok {
			return author.Author{}, apperr.NotFound("Author")
		}
		a.CreatedAt = existing.CreatedAt
	}
	a.UpdatedAt = now

	s.rows[*a.ID] = a
	return a, nil
}

func (s *memoryStore) FindOne(_ context.Context, id int64) (author.Author, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls["FindOne"]++
	if s.failWith != nil {
		return author.Author{}, false, s.failWith
	}

	a, ok := s.rows[id]
	return a, ok, nil
}

func (s *memoryStore) FindAll(context.Context) ([]author.Author, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls["FindAll"]++
	return s.sorted(func(author.Author) bool { return true }), s.failWith
}

func (s *memoryStore) FindAllOwnedByCurrentUser(ctx context.Context) ([]author.Author, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls["FindAllOwnedByCurrentUser"]++
	userID, ok := s.access.CurrentUserID(ctx)
	return s.sorted(func(a author.Author) bool {
		return ok && a.UserID != nil && *a.UserID == userID
	}), s.failWith
}

func (s *memoryStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls["Delete"]++
	if s.failWith != nil {
		return s.failWith
	}

	delete(s.rows, id)
	return nil
}

func (s *memoryStore) sorted(keep func(author.Author) bool) []author.Author {
	ids := make([]int64, 0, len(s.rows))
	for id := range s.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	authors := []author.Author{}
	for _, id := range ids {
		if keep(s.rows[id]) {
			authors = append(authors, s.rows[id])
		}
	}
	return authors
}
