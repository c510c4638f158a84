package author

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/authordesk/internal/platform/apperr"
	"github.com/taibuivan/authordesk/internal/platform/constants"
	"github.com/taibuivan/authordesk/internal/platform/ctxutil"
)

// versionTTL bounds how long a per-author write counter outlives its last write.
const versionTTL = 24 * time.Hour

// errStaleRead aborts a cache fill when a write raced the read it came from.
var errStaleRead = errors.New("author changed during read")

// CachedStore wraps a [Store] with a Redis read-through cache for FindOne.
//
// Every write bumps a per-author version key and drops the cached entry once
// the wrapped store has committed. FindOne samples the version before reading
// the wrapped store and only fills the cache if the version is unchanged at
// commit time (WATCH/MULTI), so a read that overlapped a Save or Delete is
// never cached. If the entry cannot be dropped the write is reported as
// failed. Read-side cache errors fall back to the wrapped store. List queries
// are never cached.
type CachedStore struct {
	next   Store
	client *redis.Client
	ttl    time.Duration
}

// NewCachedStore decorates next. Entries expire after ttl.
func NewCachedStore(next Store, client *redis.Client, ttl time.Duration) *CachedStore {
	return &CachedStore{next: next, client: client, ttl: ttl}
}

func cacheKey(id int64) string {
	return constants.RedisPrefixAuthor + strconv.FormatInt(id, 10)
}

func versionKey(id int64) string {
	return cacheKey(id) + constants.RedisSuffixVersion
}

func (store *CachedStore) Save(ctx context.Context, a Author) (Author, error) {
	saved, err := store.next.Save(ctx, a)
	if err != nil {
		return Author{}, err
	}

	if saved.ID != nil {
		if err := store.invalidate(ctx, *saved.ID); err != nil {
			return Author{}, err
		}
	}
	return saved, nil
}

func (store *CachedStore) FindOne(ctx context.Context, id int64) (Author, bool, error) {
	logger := ctxutil.GetLogger(ctx)

	// Entry and version in one round trip; the version guards the fill below.
	version, cacheable := "", true
	values, err := store.client.MGet(ctx, cacheKey(id), versionKey(id)).Result()
	if err != nil {
		cacheable = false
		logger.WarnContext(ctx, "author_cache_read_failed", slog.Int64("author_id", id), slog.Any("error", err))
	} else {
		if payload, ok := values[0].(string); ok {
			var cached Author
			if err := json.Unmarshal([]byte(payload), &cached); err == nil {
				return cached, true, nil
			}
			logger.WarnContext(ctx, "author_cache_corrupt", slog.Int64("author_id", id))
		}
		version, _ = values[1].(string)
	}

	a, found, err := store.next.FindOne(ctx, id)
	if err != nil || !found || !cacheable {
		return a, found, err
	}

	if err := store.fill(ctx, a, version); err != nil {
		if errors.Is(err, errStaleRead) || errors.Is(err, redis.TxFailedErr) {
			logger.DebugContext(ctx, "author_cache_fill_skipped", slog.Int64("author_id", id))
		} else {
			logger.WarnContext(ctx, "author_cache_write_failed", slog.Int64("author_id", id), slog.Any("error", err))
		}
	}
	return a, true, nil
}

// fill caches a as long as no write has bumped the version since it was sampled.
func (store *CachedStore) fill(ctx context.Context, a Author, version string) error {
	payload, err := json.Marshal(a)
	if err != nil {
		return err
	}

	id := *a.ID
	return store.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, versionKey(id)).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != version {
			return errStaleRead
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, cacheKey(id), payload, store.ttl)
			return nil
		})
		return err
	}, versionKey(id))
}

func (store *CachedStore) FindAll(ctx context.Context) ([]Author, error) {
	return store.next.FindAll(ctx)
}

func (store *CachedStore) FindAllOwnedByCurrentUser(ctx context.Context) ([]Author, error) {
	return store.next.FindAllOwnedByCurrentUser(ctx)
}

func (store *CachedStore) Delete(ctx context.Context, id int64) error {
	if err := store.next.Delete(ctx, id); err != nil {
		return err
	}
	return store.invalidate(ctx, id)
}

// invalidate bumps the version and drops the entry in one transaction.
func (store *CachedStore) invalidate(ctx context.Context, id int64) error {
	_, err := store.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, versionKey(id))
		pipe.Expire(ctx, versionKey(id), versionTTL)
		pipe.Del(ctx, cacheKey(id))
		return nil
	})
	if err != nil {
		return apperr.Internal(fmt.Errorf("invalidate_author_cache: %w", err))
	}
	return nil
}
