package author

import (
	"context"
	"errors"
	"log/slog"

	"github.com/taibuivan/authordesk/internal/platform/apperr"
	"github.com/taibuivan/authordesk/internal/platform/ctxutil"
	"github.com/taibuivan/authordesk/internal/platform/sec"
)

// CodeIDExists is the failure code of a create that already carries an id.
const CodeIDExists = "idexists"

// ErrIDExists rejects a create whose author already has an id.
var ErrIDExists = apperr.Precondition(CodeIDExists, "A new author cannot already have an ID")

// Service applies the author rules on top of a [Store]. It keeps no state of
// its own, so one instance serves all requests concurrently.
type Service struct {
	store  Store
	access AccessContext
}

func NewService(store Store, access AccessContext) *Service {
	return &Service{
		store:  store,
		access: access,
	}
}

// Create persists a new author. Authors that already carry an id are
// rejected with [ErrIDExists] before the store is called.
func (service *Service) Create(ctx context.Context, author Author) (Author, error) {
	logger := ctxutil.GetLogger(ctx)
	logger.DebugContext(ctx, "author_request", slog.String("operation", "create"), slog.String("name", author.Name))

	if author.HasID() {
		return Author{}, ErrIDExists
	}

	saved, err := service.store.Save(ctx, author)
	if err != nil {
		return Author{}, err
	}
	if !saved.HasID() {
		return Author{}, apperr.Internal(errors.New("author store returned no id"))
	}

	logger.InfoContext(ctx, "author_created", slog.Int64("author_id", *saved.ID))
	return saved, nil
}

// Update replaces an existing author. Without an id it is a Create.
// There is no optimistic-concurrency check: the last write wins.
func (service *Service) Update(ctx context.Context, author Author) (Author, error) {
	if !author.HasID() {
		return service.Create(ctx, author)
	}

	logger := ctxutil.GetLogger(ctx)
	logger.DebugContext(ctx, "author_request", slog.String("operation", "update"), slog.Int64("author_id", *author.ID))

	saved, err := service.store.Save(ctx, author)
	if err != nil {
		return Author{}, err
	}

	logger.InfoContext(ctx, "author_updated", slog.Int64("author_id", *author.ID))
	return saved, nil
}

// ListAll returns every author to admins and only the caller's own authors
// to everyone else, in store order.
func (service *Service) ListAll(ctx context.Context) ([]Author, error) {
	ctxutil.GetLogger(ctx).DebugContext(ctx, "author_request", slog.String("operation", "list"))

	var (
		authors []Author
		err     error
	)
	if service.access.CurrentUserHasRole(ctx, sec.RoleAdmin) {
		authors, err = service.store.FindAll(ctx)
	} else {
		authors, err = service.store.FindAllOwnedByCurrentUser(ctx)
	}
	if err != nil {
		return nil, err
	}

	if authors == nil {
		authors = []Author{}
	}
	return authors, nil
}

// GetOne looks an author up by id; found is false when it does not exist.
func (service *Service) GetOne(ctx context.Context, id int64) (author Author, found bool, err error) {
	ctxutil.GetLogger(ctx).DebugContext(ctx, "author_request", slog.String("operation", "get"), slog.Int64("author_id", id))
	return service.store.FindOne(ctx, id)
}

// Delete removes the author without checking that it exists, so deleting an
// unknown id succeeds too.
func (service *Service) Delete(ctx context.Context, id int64) error {
	logger := ctxutil.GetLogger(ctx)
	logger.DebugContext(ctx, "author_request", slog.String("operation", "delete"), slog.Int64("author_id", id))

	if err := service.store.Delete(ctx, id); err != nil {
		return err
	}

	logger.WarnContext(ctx, "author_deleted", slog.Int64("author_id", id))
	return nil
}
