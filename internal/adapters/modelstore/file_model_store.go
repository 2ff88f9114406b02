package modelstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"fleet-ai-service/internal/ml"
)

// File-backed implementation of the ModelStore port. The artifact is a
// single JSON document holding scaler and forest together; Save writes a
// sibling temp file and renames it into place so a crash mid-write never
// leaves a readable half-artifact.
type FileModelStore struct{ Path string }

func NewFileModelStore(path string) *FileModelStore {
	return &FileModelStore{Path: path}
}

func (s *FileModelStore) Load() (*ml.Model, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("load model: read %q: %w", s.Path, err)
	}

	var model ml.Model
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, fmt.Errorf("load model: decode %q: %w", s.Path, err)
	}
	if err := model.Validate(); err != nil {
		return nil, fmt.Errorf("load model: %q: %w", s.Path, err)
	}

	return &model, nil
}

func (s *FileModelStore) Save(model *ml.Model) error {
	if err := model.Validate(); err != nil {
		return fmt.Errorf("save model: %w", err)
	}

	data, err := json.Marshal(model)
	if err != nil {
		return fmt.Errorf("save model: encode: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return fmt.Errorf("save model: create directory: %w", err)
	}

	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("save model: write %q: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.Path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("save model: swap %q into place: %w", tmp, err)
	}

	return nil
}
