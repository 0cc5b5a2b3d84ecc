package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/FenadoAI/fv2-cafito-hub-u1n3z9/models"
	"github.com/redis/go-redis/v9"
)

const (
	menuItemKeyPrefix = "menu:item:"
	menuListKeyPrefix = "menu:list:"
	notFoundMarker    = "notfound"
	notFoundTTL       = time.Minute
)

// CachedMenuStore is a read-through Redis cache in front of a MenuStore.
// Redis errors are logged and the call falls through to the wrapped store.
type CachedMenuStore struct {
	realStore MenuStore
	redis     *redis.Client
	ttl       time.Duration
}

var _ MenuStore = (*CachedMenuStore)(nil)

func NewCachedMenuStore(realStore MenuStore, rdb *redis.Client, ttl time.Duration) *CachedMenuStore {
	return &CachedMenuStore{
		realStore: realStore,
		redis:     rdb,
		ttl:       ttl,
	}
}

func itemKey(id string) string {
	return menuItemKeyPrefix + id
}

func listKey(category models.Category, limit int64) string {
	if category == "" {
		return fmt.Sprintf("%s%d:available", menuListKeyPrefix, limit)
	}
	return fmt.Sprintf("%s%d:category:%s", menuListKeyPrefix, limit, category)
}

func (c *CachedMenuStore) FindByID(ctx context.Context, id string) (*models.MenuItem, error) {
	key := itemKey(id)

	data, err := c.redis.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		if string(data) == notFoundMarker {
			return nil, ErrNotFound
		}
		var item models.MenuItem
		if err := json.Unmarshal(data, &item); err != nil {
			slog.Warn("Failed to unmarshal cached menu item, continuing with database", "key", key, "error", err)
			break
		}
		return &item, nil
	case errors.Is(err, redis.Nil):
	default:
		slog.Warn("Redis error, continuing with database", "key", key, "error", err)
	}

	item, err := c.realStore.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			if setErr := c.redis.Set(ctx, key, notFoundMarker, notFoundTTL).Err(); setErr != nil {
				slog.Warn("Failed to cache menu item miss", "key", key, "error", setErr)
			}
		}
		return nil, err
	}

	c.store(ctx, key, item)
	return item, nil
}

func (c *CachedMenuStore) FindAvailable(ctx context.Context, category models.Category, limit int64) ([]models.MenuItem, error) {
	key := listKey(category, limit)

	data, err := c.redis.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var items []models.MenuItem
		if err := json.Unmarshal(data, &items); err == nil {
			return items, nil
		}
		slog.Warn("Failed to unmarshal cached menu list, continuing with database", "key", key)
	case errors.Is(err, redis.Nil):
	default:
		slog.Warn("Redis error, continuing with database", "key", key, "error", err)
	}

	items, err := c.realStore.FindAvailable(ctx, category, limit)
	if err != nil {
		return nil, err
	}

	c.store(ctx, key, items)
	return items, nil
}

func (c *CachedMenuStore) FindAll(ctx context.Context, limit int64) ([]models.MenuItem, error) {
	return c.realStore.FindAll(ctx, limit)
}

func (c *CachedMenuStore) Insert(ctx context.Context, item models.MenuItem) error {
	err := c.realStore.Insert(ctx, item)
	c.invalidate(ctx, item.ID)
	return err
}

func (c *CachedMenuStore) Update(ctx context.Context, id string, item models.MenuItem) (*models.MenuItem, error) {
	updated, err := c.realStore.Update(ctx, id, item)
	c.invalidate(ctx, id)
	return updated, err
}

func (c *CachedMenuStore) DeleteAll(ctx context.Context) (int64, error) {
	n, err := c.realStore.DeleteAll(ctx)
	c.invalidateByPattern(ctx, menuItemKeyPrefix+"*")
	c.invalidateByPattern(ctx, menuListKeyPrefix+"*")
	return n, err
}

func (c *CachedMenuStore) SetImageByName(ctx context.Context, name, imageURL string) (bool, error) {
	changed, err := c.realStore.SetImageByName(ctx, name, imageURL)
	// The id of the touched document is unknown here.
	c.invalidateByPattern(ctx, menuItemKeyPrefix+"*")
	c.invalidateByPattern(ctx, menuListKeyPrefix+"*")
	return changed, err
}

func (c *CachedMenuStore) store(ctx context.Context, key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Warn("Failed to marshal menu cache entry", "key", key, "error", err)
		return
	}
	if err := c.redis.Set(ctx, key, data, c.ttl).Err(); err != nil {
		slog.Warn("Failed to cache menu entry", "key", key, "error", err)
	}
}

func (c *CachedMenuStore) invalidate(ctx context.Context, id string) {
	if id != "" {
		if err := c.redis.Del(ctx, itemKey(id)).Err(); err != nil {
			slog.Warn("Failed to delete menu item cache", "id", id, "error", err)
		}
	}
	c.invalidateByPattern(ctx, menuListKeyPrefix+"*")
}

func (c *CachedMenuStore) invalidateByPattern(ctx context.Context, pattern string) {
	iter := c.redis.Scan(ctx, 0, pattern, 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		slog.Warn("Failed to scan menu cache keys", "pattern", pattern, "error", err)
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := c.redis.Del(ctx, keys...).Err(); err != nil {
		slog.Warn("Failed to delete menu cache keys", "pattern", pattern, "error", err)
	}
}
