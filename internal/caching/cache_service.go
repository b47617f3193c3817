package caching

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"backoffice/internal/catalog"
	"backoffice/internal/models"

	"github.com/redis/go-redis/v9"
)

// CacheService caches the read-heavy catalog structures: the category
// forest, the flattened parent-selector options and the language list.
// Every getter returns (nil, nil) on a cache miss.
type CacheService interface {
	GetCategoryTree(ctx context.Context) ([]*models.Category, error)
	SetCategoryTree(ctx context.Context, tree []*models.Category, ttl time.Duration) error

	GetCategoryOptions(ctx context.Context, excludeID, languageID int64) ([]catalog.Option, error)
	SetCategoryOptions(ctx context.Context, excludeID, languageID int64, options []catalog.Option, ttl time.Duration) error

	GetLanguages(ctx context.Context) ([]*models.Language, error)
	SetLanguages(ctx context.Context, languages []*models.Language, ttl time.Duration) error

	InvalidateCategories(ctx context.Context) error
	InvalidateLanguages(ctx context.Context) error
}

type redisCacheService struct {
	client *redis.Client
}

func NewRedisCacheService(addr, password string, db int) CacheService {
	// Accept redis://host:port as well as bare host:port.
	parsedAddr := addr
	for _, prefix := range []string{"redis://", "rediss://"} {
		parsedAddr = strings.TrimPrefix(parsedAddr, prefix)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     parsedAddr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("WARN: Redis ping failed on initialization: %v (address: %s)", err, parsedAddr)
	}

	return &redisCacheService{client: client}
}

const (
	treeKey      = "backoffice:categories:tree"
	languagesKey = "backoffice:languages"
)

func optionsKey(excludeID, languageID int64) string {
	return fmt.Sprintf("backoffice:categories:options:%d:%d", excludeID, languageID)
}

func (r *redisCacheService) getJSON(ctx context.Context, key string, dst any) (bool, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil // cache miss
		}
		return false, err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, err
	}
	return true, nil
}

func (r *redisCacheService) setJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key, data, ttl).Err()
}

func (r *redisCacheService) GetCategoryTree(ctx context.Context) ([]*models.Category, error) {
	var tree []*models.Category
	found, err := r.getJSON(ctx, treeKey, &tree)
	if err != nil || !found {
		return nil, err
	}
	return tree, nil
}

func (r *redisCacheService) SetCategoryTree(ctx context.Context, tree []*models.Category, ttl time.Duration) error {
	return r.setJSON(ctx, treeKey, tree, ttl)
}

func (r *redisCacheService) GetCategoryOptions(ctx context.Context, excludeID, languageID int64) ([]catalog.Option, error) {
	var options []catalog.Option
	found, err := r.getJSON(ctx, optionsKey(excludeID, languageID), &options)
	if err != nil || !found {
		return nil, err
	}
	return options, nil
}

func (r *redisCacheService) SetCategoryOptions(ctx context.Context, excludeID, languageID int64, options []catalog.Option, ttl time.Duration) error {
	return r.setJSON(ctx, optionsKey(excludeID, languageID), options, ttl)
}

func (r *redisCacheService) GetLanguages(ctx context.Context) ([]*models.Language, error) {
	var languages []*models.Language
	found, err := r.getJSON(ctx, languagesKey, &languages)
	if err != nil || !found {
		return nil, err
	}
	return languages, nil
}

func (r *redisCacheService) SetLanguages(ctx context.Context, languages []*models.Language, ttl time.Duration) error {
	return r.setJSON(ctx, languagesKey, languages, ttl)
}

// InvalidateCategories drops the tree and every cached options variant.
// Any category mutation calls this.
func (r *redisCacheService) InvalidateCategories(ctx context.Context) error {
	keys, err := r.client.Keys(ctx, "backoffice:categories:*").Result()
	if err != nil {
		return err
	}
	if len(keys) > 0 {
		return r.client.Del(ctx, keys...).Err()
	}
	return nil
}

func (r *redisCacheService) InvalidateLanguages(ctx context.Context) error {
	return r.client.Del(ctx, languagesKey).Err()
}
