package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"heritage-server/internal/repositories"
)

// Owned is implemented by resources that record the account that created them.
type Owned interface {
	OwnerID() uuid.UUID
}

// CheckOwnership loads the resource and allows the mutation only for its owner.
// A missing resource is reported before the owner is compared.
func CheckOwnership[T Owned](ctx context.Context, load func(context.Context, uuid.UUID) (T, error), id, actor uuid.UUID) (T, error) {
	var zero T

	resource, err := load(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return zero, ErrResourceNotFound
		}
		return zero, storeError(err)
	}

	if resource.OwnerID() != actor {
		return zero, ErrForbidden
	}

	return resource, nil
}
