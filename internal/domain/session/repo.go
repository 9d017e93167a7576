package session

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("session not found")

// Store holds live conversation contexts. Sessions are ephemeral and
// expire after a period of inactivity.
type Store interface {
	Create(ctx context.Context) (*Context, error)
	Get(ctx context.Context, id uuid.UUID) (*Context, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int, error)
}
