package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"revim/internal/model"
)

// ResultCache keeps the latest assessment per snapshot so repeated
// reads skip re-evaluation.
type ResultCache interface {
	Set(ctx context.Context, snapshotID string, record *model.AssessmentRecord) error
	Get(ctx context.Context, snapshotID string) (*model.AssessmentRecord, error)
	Delete(ctx context.Context, snapshotID string) error
}

type resultCache struct {
	client *redis.Client
}

func NewResultCache(client *redis.Client) ResultCache {
	return &resultCache{
		client: client,
	}
}

func (c *resultCache) Set(ctx context.Context, snapshotID string, record *model.AssessmentRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, "assessment:"+snapshotID, data, 30*time.Minute).Err()
}

func (c *resultCache) Get(ctx context.Context, snapshotID string) (*model.AssessmentRecord, error) {
	data, err := c.client.Get(ctx, "assessment:"+snapshotID).Result()
	if err != nil {
		return nil, err
	}
	var record model.AssessmentRecord
	err = json.Unmarshal([]byte(data), &record)
	return &record, err
}

func (c *resultCache) Delete(ctx context.Context, snapshotID string) error {
	return c.client.Del(ctx, "assessment:"+snapshotID).Err()
}
