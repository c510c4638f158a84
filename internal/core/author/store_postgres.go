package author

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/authordesk/internal/platform/apperr"
	"github.com/taibuivan/authordesk/internal/platform/database/schema"
	"github.com/taibuivan/authordesk/internal/platform/dberr"
	"github.com/taibuivan/authordesk/pkg/pointer"
)

// PostgresStore is the durable [Store] backed by core.author.
type PostgresStore struct {
	db     *pgxpool.Pool
	access AccessContext
}

// NewPostgresStore builds a store. access resolves the owner filter of
// FindAllOwnedByCurrentUser.
func NewPostgresStore(db *pgxpool.Pool, access AccessContext) *PostgresStore {
	return &PostgresStore{db: db, access: access}
}

func (store *PostgresStore) Save(ctx context.Context, a Author) (Author, error) {
	if a.NameAlt == nil {
		a.NameAlt = []string{}
	}

	if a.ID == nil {
		return store.insert(ctx, a)
	}
	return store.update(ctx, a)
}

func (store *PostgresStore) insert(ctx context.Context, a Author) (Author, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		schema.Author.Table, schema.Author.Name, schema.Author.NameAlt, schema.Author.Bio,
		schema.Author.ImageURL, schema.Author.UserID, schema.Author.CreatedAt, schema.Author.UpdatedAt,
		schema.Author.ID, schema.Author.CreatedAt, schema.Author.UpdatedAt,
	)

	var id int64
	err := store.db.QueryRow(ctx, query, a.Name, a.NameAlt, a.Bio, a.ImageURL, a.UserID).
		Scan(&id, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return Author{}, dberr.Wrap(err, "insert_author")
	}

	a.ID = pointer.To(id)
	return a, nil
}

// update replaces every payload column of an existing row. The id is never
// written.
func (store *PostgresStore) update(ctx context.Context, a Author) (Author, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = NOW()
		WHERE %s = $1
		RETURNING %s, %s
	`,
		schema.Author.Table, schema.Author.Name, schema.Author.NameAlt, schema.Author.Bio,
		schema.Author.ImageURL, schema.Author.UserID, schema.Author.UpdatedAt,
		schema.Author.ID,
		schema.Author.CreatedAt, schema.Author.UpdatedAt,
	)

	err := store.db.QueryRow(ctx, query, *a.ID, a.Name, a.NameAlt, a.Bio, a.ImageURL, a.UserID).
		Scan(&a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Author{}, apperr.NotFound("Author")
	}
	if err != nil {
		return Author{}, dberr.Wrap(err, "update_author")
	}

	return a, nil
}

func (store *PostgresStore) FindOne(ctx context.Context, id int64) (Author, bool, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		schema.Author.SelectList(), schema.Author.Table, schema.Author.ID,
	)

	a, err := scanAuthor(store.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Author{}, false, nil
	}
	if err != nil {
		return Author{}, false, dberr.Wrap(err, "get_author")
	}

	return a, true, nil
}

func (store *PostgresStore) FindAll(ctx context.Context) ([]Author, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC`,
		schema.Author.SelectList(), schema.Author.Table, schema.Author.ID,
	)
	return store.list(ctx, "list_authors", query)
}

// FindAllOwnedByCurrentUser returns no rows for anonymous callers.
func (store *PostgresStore) FindAllOwnedByCurrentUser(ctx context.Context) ([]Author, error) {
	userID, ok := store.access.CurrentUserID(ctx)
	if !ok {
		return []Author{}, nil
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s ASC`,
		schema.Author.SelectList(), schema.Author.Table, schema.Author.UserID, schema.Author.ID,
	)
	return store.list(ctx, "list_owned_authors", query, userID)
}

func (store *PostgresStore) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Author.Table, schema.Author.ID)

	_, err := store.db.Exec(ctx, query, id)
	return dberr.Wrap(err, "delete_author")
}

func (store *PostgresStore) list(ctx context.Context, action, query string, args ...any) ([]Author, error) {
	rows, err := store.db.Query(ctx, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}
	defer rows.Close()

	authors := []Author{}
	for rows.Next() {
		a, err := scanAuthor(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_author")
		}
		authors = append(authors, a)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, action)
	}
	return authors, nil
}

// scanAuthor reads one row in [schema.AuthorTable.Columns] order.
func scanAuthor(row pgx.Row) (Author, error) {
	var (
		a  Author
		id int64
	)

	err := row.Scan(&id, &a.Name, &a.NameAlt, &a.Bio, &a.ImageURL, &a.UserID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return Author{}, err
	}

	a.ID = pointer.To(id)
	return a, nil
}
