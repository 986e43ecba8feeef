package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"cyberassess/internal/model"
)

// CatalogCache caches the read-mostly question catalog. Only administrative
// writes (bulk import, order updates) mutate the catalog, and they must call
// Invalidate; the assessment path only reads.
type CatalogCache interface {
	GetCategories(ctx context.Context) ([]*model.Category, error)
	SetCategories(ctx context.Context, categories []*model.Category) error
	GetQuestions(ctx context.Context, categoryID string) ([]*model.Question, error)
	SetQuestions(ctx context.Context, categoryID string, questions []*model.Question) error
	Invalidate(ctx context.Context) error
}

type catalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCatalogCache creates a new catalog cache
func NewCatalogCache(client *redis.Client) CatalogCache {
	return &catalogCache{
		client: client,
		ttl:    10 * time.Minute,
	}
}

func (c *catalogCache) questionsKey(categoryID string) string {
	if categoryID == "" {
		return "catalog:questions:all"
	}
	return "catalog:questions:" + categoryID
}

func (c *catalogCache) GetCategories(ctx context.Context) ([]*model.Category, error) {
	data, err := c.client.Get(ctx, "catalog:categories").Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var categories []*model.Category
	err = json.Unmarshal([]byte(data), &categories)
	return categories, err
}

func (c *catalogCache) SetCategories(ctx context.Context, categories []*model.Category) error {
	data, err := json.Marshal(categories)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, "catalog:categories", data, c.ttl).Err()
}

func (c *catalogCache) GetQuestions(ctx context.Context, categoryID string) ([]*model.Question, error) {
	data, err := c.client.Get(ctx, c.questionsKey(categoryID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var questions []*model.Question
	err = json.Unmarshal([]byte(data), &questions)
	return questions, err
}

func (c *catalogCache) SetQuestions(ctx context.Context, categoryID string, questions []*model.Question) error {
	data, err := json.Marshal(questions)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.questionsKey(categoryID), data, c.ttl).Err()
}

// Invalidate drops every cached catalog key. Called after imports and order
// updates; the catalog is small so the key scan is cheap.
func (c *catalogCache) Invalidate(ctx context.Context) error {
	keys, err := c.client.Keys(ctx, "catalog:*").Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}
