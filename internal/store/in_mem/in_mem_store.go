package in_mem

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/DjordjeVuckovic/sublist-eval/internal/store"
)

type Store struct {
	storageLock sync.RWMutex
	storage     map[uuid.UUID]store.Evaluation
	order       []uuid.UUID
}

func NewStore() *Store {
	return &Store{
		storage: make(map[uuid.UUID]store.Evaluation),
	}
}

func (s *Store) Save(ctx context.Context, ev *store.Evaluation) (uuid.UUID, error) {
	ev.Prepare()

	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	if _, ok := s.storage[ev.ID]; !ok {
		s.order = append(s.order, ev.ID)
	}
	s.storage[ev.ID] = *ev
	slog.Debug("Evaluation saved to in-memory store", "id", ev.ID)

	return ev.ID, nil
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (*store.Evaluation, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	ev, ok := s.storage[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &ev, nil
}

func (s *Store) List(ctx context.Context, page, size int) ([]store.Evaluation, int64, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	total := len(s.order)
	offset := store.Offset(page, size)

	items := make([]store.Evaluation, 0, size)
	for i := total - 1 - offset; i >= 0 && len(items) < size; i-- {
		items = append(items, s.storage[s.order[i]])
	}

	return items, int64(total), nil
}
