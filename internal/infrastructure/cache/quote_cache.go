package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/loanbridge/origination-service/internal/domain/model"
)

// RedisQuoteCache implements port.QuoteCache on Redis. Amortization results
// are pure functions of the loan terms, so cached entries never go stale;
// the TTL only bounds memory use.
type RedisQuoteCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedisQuoteCache creates a quote cache with the given TTL.
func NewRedisQuoteCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *RedisQuoteCache {
	return &RedisQuoteCache{client: client, ttl: ttl, logger: logger}
}

func quoteKey(terms model.LoanTerms) string {
	return fmt.Sprintf("quote:%s:%s:%d",
		terms.Principal.String(), terms.AnnualRatePercent.String(), terms.TermMonths)
}

// Get returns a cached amortization result for the terms, if present. Cache
// failures are treated as misses.
func (c *RedisQuoteCache) Get(ctx context.Context, terms model.LoanTerms) (model.AmortizationResult, bool) {
	payload, err := c.client.Get(ctx, quoteKey(terms)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.WarnContext(ctx, "quote cache read failed", "error", err)
		}
		return model.AmortizationResult{}, false
	}

	var result model.AmortizationResult
	if err := json.Unmarshal(payload, &result); err != nil {
		c.logger.WarnContext(ctx, "quote cache entry corrupt", "error", err)
		return model.AmortizationResult{}, false
	}
	return result, true
}

// Set stores an amortization result. Failures are logged and swallowed: the
// cache is an optimization, never a source of truth.
func (c *RedisQuoteCache) Set(ctx context.Context, terms model.LoanTerms, result model.AmortizationResult) {
	payload, err := json.Marshal(result)
	if err != nil {
		c.logger.WarnContext(ctx, "quote cache marshal failed", "error", err)
		return
	}
	if err := c.client.Set(ctx, quoteKey(terms), payload, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "quote cache write failed", "error", err)
	}
}
