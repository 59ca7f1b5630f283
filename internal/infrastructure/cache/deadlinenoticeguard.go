package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lingo-hub/lingo/internal/shared/biztime"
)

const deadlineNoticeKeyPrefix = "deadline_notice:"

// DeadlineNoticeGuard remembers which deadline reminders went out on a given
// day so a rerun of the notifier does not repeat them.
type DeadlineNoticeGuard struct {
	client *redis.Client
	ttl    time.Duration
}

func NewDeadlineNoticeGuard(client *redis.Client, ttl time.Duration) *DeadlineNoticeGuard {
	return &DeadlineNoticeGuard{client: client, ttl: ttl}
}

// buildKey format: deadline_notice:{project_id}:{user_id}:{yyyy-mm-dd}
func (g *DeadlineNoticeGuard) buildKey(projectID, contributorID uint, day time.Time) string {
	return fmt.Sprintf("%s%d:%d:%s", deadlineNoticeKeyPrefix, projectID, contributorID, biztime.FormatDate(day))
}

// TryAcquire claims the reminder with SETNX. False means another run
// already claimed it today.
func (g *DeadlineNoticeGuard) TryAcquire(ctx context.Context, projectID, contributorID uint, day time.Time) (bool, error) {
	acquired, err := g.client.SetNX(ctx, g.buildKey(projectID, contributorID, day), "1", g.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire deadline notice key: %w", err)
	}
	return acquired, nil
}

// Release drops a claim whose send failed so the next run retries it.
func (g *DeadlineNoticeGuard) Release(ctx context.Context, projectID, contributorID uint, day time.Time) error {
	if err := g.client.Del(ctx, g.buildKey(projectID, contributorID, day)).Err(); err != nil {
		return fmt.Errorf("failed to release deadline notice key: %w", err)
	}
	return nil
}
