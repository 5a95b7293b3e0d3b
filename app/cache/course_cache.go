package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"coursehub/app/models"
	"coursehub/global"

	"github.com/redis/go-redis/v9"
)

// CourseCache is a read-through cache for single-course lookups. A nil
// *CourseCache is valid and caches nothing, so callers never branch on
// whether redis is configured.
type CourseCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCourseCache(client *redis.Client, ttl time.Duration) *CourseCache {
	return &CourseCache{client: client, ttl: ttl}
}

func key(id int64) string { return fmt.Sprintf("course:%d", id) }

func (c *CourseCache) Get(ctx context.Context, id int64) (*models.Course, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	payload, err := c.client.Get(ctx, key(id)).Bytes()
	if err != nil {
		if err != redis.Nil {
			global.Logger.Debug().Err(err).Int64("course", id).Msg("cache get")
		}
		return nil, false
	}
	var course models.Course
	if err := json.Unmarshal(payload, &course); err != nil {
		return nil, false
	}
	return &course, true
}

func (c *CourseCache) Set(ctx context.Context, course *models.Course) {
	if c == nil || c.client == nil {
		return
	}
	payload, err := json.Marshal(course)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key(course.CourseID), payload, c.ttl).Err(); err != nil {
		global.Logger.Debug().Err(err).Int64("course", course.CourseID).Msg("cache set")
	}
}

func (c *CourseCache) Invalidate(ctx context.Context, id int64) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, key(id)).Err(); err != nil && err != redis.Nil {
		global.Logger.Debug().Err(err).Int64("course", id).Msg("cache del")
	}
}
