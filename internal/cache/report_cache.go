package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"cyberassess/internal/model"
)

// ReportCache caches computed score reports per assessment. Any answer write
// for the assessment must call Invalidate, and any catalog write that touches
// scoring metadata (weights, option links) must call InvalidateAll, so the
// report always reflects the current answers and catalog metadata.
type ReportCache interface {
	Get(ctx context.Context, assessmentID string) (*model.ScoreReport, error)
	Set(ctx context.Context, report *model.ScoreReport) error
	Invalidate(ctx context.Context, assessmentID string) error
	InvalidateAll(ctx context.Context) error
}

type reportCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewReportCache creates a new report cache
func NewReportCache(client *redis.Client) ReportCache {
	return &reportCache{
		client: client,
		ttl:    30 * time.Minute,
	}
}

func (c *reportCache) key(assessmentID string) string {
	return "report:" + assessmentID
}

func (c *reportCache) Get(ctx context.Context, assessmentID string) (*model.ScoreReport, error) {
	data, err := c.client.Get(ctx, c.key(assessmentID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var report model.ScoreReport
	if err := json.Unmarshal([]byte(data), &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (c *reportCache) Set(ctx context.Context, report *model.ScoreReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(report.AssessmentID), data, c.ttl).Err()
}

func (c *reportCache) Invalidate(ctx context.Context, assessmentID string) error {
	return c.client.Del(ctx, c.key(assessmentID)).Err()
}

// InvalidateAll drops every cached report. Catalog writes can change the
// scoring metadata of any assessment, so there is no narrower key set to
// target.
func (c *reportCache) InvalidateAll(ctx context.Context) error {
	keys, err := c.client.Keys(ctx, "report:*").Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}
