package modelstore

import (
	"fmt"
	"io/fs"
	"sync"

	"fleet-ai-service/internal/ml"
)

// In-memory ModelStore for tests.
type MemoryModelStore struct {
	mu    sync.Mutex
	model *ml.Model
	Saves int
	Err   error
}

func (s *MemoryModelStore) Load() (*ml.Model, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if s.model == nil {
		return nil, fmt.Errorf("load model: %w", fs.ErrNotExist)
	}
	return s.model, nil
}

func (s *MemoryModelStore) Save(model *ml.Model) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.model = model
	s.Saves++
	return nil
}
