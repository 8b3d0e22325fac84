package usecases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tweet-tipping/internal/domain"
	"tweet-tipping/internal/usecases"
)

type fakePreviewCache struct {
	items map[string]*domain.TweetPreview
}

func newFakePreviewCache() *fakePreviewCache {
	return &fakePreviewCache{items: make(map[string]*domain.TweetPreview)}
}

func (c *fakePreviewCache) Get(key string) (*domain.TweetPreview, bool) {
	p, ok := c.items[key]
	return p, ok
}

func (c *fakePreviewCache) Set(key string, p *domain.TweetPreview) {
	c.items[key] = p
}

type fakeFetcher struct {
	preview *domain.TweetPreview
	err     error
	calls   int
}

func (f *fakeFetcher) Preview(_ context.Context, ref domain.TweetReference) (*domain.TweetPreview, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.preview, nil
}

func TestGetPreview_CacheHit(t *testing.T) {
	// Arrange
	cache := newFakePreviewCache()
	cached := &domain.TweetPreview{TweetID: "123", Text: "cached"}
	cache.Set("/status/123/preview", cached)
	fetcher := &fakeFetcher{}
	uc := usecases.NewGetPreviewUseCase(cache, fetcher, nil)

	// Act
	got, err := uc.Execute(context.Background(), "https://x.com/someone/status/123")

	// Assert
	require.NoError(t, err)
	assert.Same(t, cached, got)
	assert.Zero(t, fetcher.calls)
}

func TestGetPreview_MissStoresResult(t *testing.T) {
	cache := newFakePreviewCache()
	fetched := &domain.TweetPreview{
		TweetID: "123",
		Author:  domain.Author{Name: "Rooch", Handle: "RoochNetwork"},
		Text:    "hello",
	}
	fetcher := &fakeFetcher{preview: fetched}
	uc := usecases.NewGetPreviewUseCase(cache, fetcher, nil)

	got, err := uc.Execute(context.Background(), "https://x.com/RoochNetwork/status/123?s=20")
	require.NoError(t, err)
	assert.Equal(t, fetched, got)

	_, err = uc.Execute(context.Background(), "https://x.com/RoochNetwork/status/123")
	require.NoError(t, err)
	assert.Equal(t, 1, fetcher.calls)
	assert.Contains(t, cache.items, "/status/123/preview")
}

func TestGetPreview_FetchError_NotCached(t *testing.T) {
	cache := newFakePreviewCache()
	fetcher := &fakeFetcher{err: errors.Join(domain.ErrPreviewUnavailable, errors.New("timeout"))}
	uc := usecases.NewGetPreviewUseCase(cache, fetcher, nil)

	_, err := uc.Execute(context.Background(), "https://x.com/a/status/9")

	assert.ErrorIs(t, err, domain.ErrPreviewUnavailable)
	assert.Empty(t, cache.items)
}

func TestGetPreview_Disabled(t *testing.T) {
	uc := usecases.NewGetPreviewUseCase(newFakePreviewCache(), nil, nil)

	assert.False(t, uc.Enabled())
	_, err := uc.Execute(context.Background(), "https://x.com/a/status/9")
	assert.ErrorIs(t, err, domain.ErrPreviewUnavailable)
}

func TestGetPreview_InvalidURL(t *testing.T) {
	fetcher := &fakeFetcher{}
	uc := usecases.NewGetPreviewUseCase(newFakePreviewCache(), fetcher, nil)

	_, err := uc.Execute(context.Background(), "https://example.com/a/status/9")

	assert.ErrorIs(t, err, domain.ErrInvalidURL)
	assert.Zero(t, fetcher.calls)
}
