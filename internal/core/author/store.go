package author

import (
	"context"

	"github.com/taibuivan/authordesk/internal/platform/sec"
)

// Store persists authors. Each call is atomic with respect to other calls on
// the same id.
type Store interface {
	// Save inserts an author without id (assigning one) or replaces the author
	// with the given id. Replacing an id the store never assigned is an
	// apperr NotFound.
	Save(ctx context.Context, author Author) (Author, error)
	// FindOne reports false when no author has the id.
	FindOne(ctx context.Context, id int64) (Author, bool, error)
	FindAll(ctx context.Context) ([]Author, error)
	FindAllOwnedByCurrentUser(ctx context.Context) ([]Author, error)
	// Delete removes the author; a missing id is not an error.
	Delete(ctx context.Context, id int64) error
}

// AccessContext resolves the caller of the current request.
type AccessContext interface {
	CurrentUserHasRole(ctx context.Context, role sec.UserRole) bool
	CurrentUserID(ctx context.Context) (string, bool)
}
