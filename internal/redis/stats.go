package redis

import (
	"context"
	"fmt"
	"strings"
)

const statsPrefix = "recommendation_stats:"

// IncrementRequestStats увеличивает счетчики запросов по типу отчетности и декодеру
func (c *Client) IncrementRequestStats(ctx context.Context, fileType, decoder string) error {
	pipe := c.rdb.Pipeline()
	pipe.Incr(ctx, statsPrefix+"file_type:"+fileType)
	if decoder != "" {
		pipe.Incr(ctx, statsPrefix+"decoder:"+decoder)
	}
	pipe.Incr(ctx, statsPrefix+"total")
	_, err := pipe.Exec(ctx)
	return err
}

// GetRequestStats возвращает все счетчики запросов без общего префикса
func (c *Client) GetRequestStats(ctx context.Context) (map[string]int64, error) {
	stats := make(map[string]int64)

	iter := c.rdb.Scan(ctx, 0, statsPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		value, err := c.rdb.Get(ctx, key).Int64()
		if err != nil {
			return nil, fmt.Errorf("failed to read counter %s: %w", key, err)
		}
		stats[strings.TrimPrefix(key, statsPrefix)] = value
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan request stats: %w", err)
	}

	return stats, nil
}

// ClearRequestStats удаляет все счетчики запросов
func (c *Client) ClearRequestStats(ctx context.Context) error {
	iter := c.rdb.Scan(ctx, 0, statsPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete %s: %w", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to clear request stats: %w", err)
	}
	return nil
}
