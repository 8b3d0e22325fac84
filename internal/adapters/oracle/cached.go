package oracle

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

// Ingestor requests tweet ingestion.
type Ingestor interface {
	RequestIngestion(ctx context.Context, tweetID string) (string, error)
}

// Cached remembers the object id returned for each tweet so repeated tips
// for the same tweet skip the oracle round trip. Empty answers and errors
// are not cached.
type Cached struct {
	next  Ingestor
	cache *cache.Cache
}

// NewCached wraps next with a cache holding object ids for ttl.
func NewCached(next Ingestor, ttl time.Duration) *Cached {
	return &Cached{next: next, cache: cache.New(ttl, 2*ttl)}
}

func (c *Cached) RequestIngestion(ctx context.Context, tweetID string) (string, error) {
	if v, ok := c.cache.Get(tweetID); ok {
		return v.(string), nil
	}

	id, err := c.next.RequestIngestion(ctx, tweetID)
	if err != nil || id == "" {
		return id, err
	}
	c.cache.SetDefault(tweetID, id)
	return id, nil
}
