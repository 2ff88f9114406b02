package ports

import "fleet-ai-service/internal/ml"

// Port: durable storage for the trained model artifact.
type ModelStore interface {
	// Load the persisted artifact. Returns an error wrapping fs.ErrNotExist
	// when no artifact has been saved yet.
	Load() (*ml.Model, error)

	// Save replaces any prior artifact. Implementations must never leave a
	// half-written artifact readable: write new, then swap.
	Save(model *ml.Model) error
}
