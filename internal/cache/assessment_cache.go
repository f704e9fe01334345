package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"workpulse/internal/model"
)

// AssessmentCache holds the latest computed assessment per user. A stale
// entry is still served when a recomputation would fail; freshness policy
// lives in the orchestrator, not here.
type AssessmentCache interface {
	Get(ctx context.Context, userID string) (*model.OverallAssessment, error)
	Set(ctx context.Context, assessment *model.OverallAssessment) error
	Invalidate(ctx context.Context, userID string) error
}

type assessmentCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewAssessmentCache creates a new assessment cache
func NewAssessmentCache(client *redis.Client, ttl time.Duration) AssessmentCache {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &assessmentCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *assessmentCache) key(userID string) string {
	return fmt.Sprintf("user:%s:assessment:latest", userID)
}

func (c *assessmentCache) Get(ctx context.Context, userID string) (*model.OverallAssessment, error) {
	data, err := c.client.Get(ctx, c.key(userID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var assessment model.OverallAssessment
	if err := json.Unmarshal([]byte(data), &assessment); err != nil {
		return nil, err
	}
	return &assessment, nil
}

func (c *assessmentCache) Set(ctx context.Context, assessment *model.OverallAssessment) error {
	data, err := json.Marshal(assessment)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(assessment.UserID), data, c.ttl).Err()
}

func (c *assessmentCache) Invalidate(ctx context.Context, userID string) error {
	return c.client.Del(ctx, c.key(userID)).Err()
}
