package tsr

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("tsr not found")

// FindParams narrows a listing. Zero values mean no limit and no offset.
type FindParams struct {
	Limit  int
	Offset int
}

type Repository interface {
	GetAll(ctx context.Context, params FindParams) ([]TSR, error)
	GetByID(ctx context.Context, id uuid.UUID) (TSR, error)
	Create(ctx context.Context, entity TSR) (TSR, error)
	// Update writes only the submitted attributes and advances updated_at.
	Update(ctx context.Context, id uuid.UUID, values ProposedValues, updatedAt time.Time) error
	// TouchUpdatedAt bumps updated_at without changing any attribute.
	TouchUpdatedAt(ctx context.Context, id uuid.UUID, at time.Time) error
}
