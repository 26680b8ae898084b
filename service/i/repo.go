package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/google/uuid"
)

// UserRepo defines the interface for user persistence operations.
type UserRepo interface {
	// Save inserts or updates a user in the repository.
	// If the user already exists, it updates the record. Otherwise, it creates a new one.
	Save(ctx context.Context, user *dmn.User) error

	// ByID retrieves a user by their unique ID.
	// Returns dmn.ErrUserNotFound if no such user exists.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.User, error)

	// ByUsername retrieves a user by their username.
	// Returns dmn.ErrUserNotFound if no such user exists.
	ByUsername(ctx context.Context, username string) (*dmn.User, error)
}

// RunRepo stores summaries of finished searches.
type RunRepo interface {
	Save(ctx context.Context, run *dmn.Run) error

	// ByOwner returns the newest runs of owner first, at most limit of them.
	ByOwner(ctx context.Context, owner uuid.UUID, limit int) ([]*dmn.Run, error)
}
