package files

import (
	"context"
	"time"
)

// Store keeps uploaded documents.
type Store interface {
	// Save writes data under name and returns where it ended up.
	Save(ctx context.Context, name, contentType string, data []byte) (string, error)
	// Sweep removes documents stored before olderThan.
	Sweep(ctx context.Context, olderThan time.Time) (int, error)
}
