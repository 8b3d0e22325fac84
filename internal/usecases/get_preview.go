package usecases

import (
	"context"

	"tweet-tipping/internal/domain"
	"tweet-tipping/pkg/log"
)

// GetPreviewUseCase returns tweet previews with a cache-first strategy.
type GetPreviewUseCase struct {
	cache        PreviewCache
	fetcher      PreviewFetcher
	allowedHosts []string
}

// NewGetPreviewUseCase creates a GetPreviewUseCase. A nil fetcher disables
// previews.
func NewGetPreviewUseCase(cache PreviewCache, fetcher PreviewFetcher, allowedHosts []string) *GetPreviewUseCase {
	if len(allowedHosts) == 0 {
		allowedHosts = domain.DefaultAllowedHosts
	}
	return &GetPreviewUseCase{cache: cache, fetcher: fetcher, allowedHosts: allowedHosts}
}

// Enabled reports whether previews can be fetched at all.
func (uc *GetPreviewUseCase) Enabled() bool {
	return uc != nil && uc.fetcher != nil
}

// Execute returns the preview of the tweet at rawURL.
func (uc *GetPreviewUseCase) Execute(ctx context.Context, rawURL string) (*domain.TweetPreview, error) {
	if !uc.Enabled() {
		return nil, domain.ErrPreviewUnavailable
	}
	ref, err := domain.ParseTweetReference(rawURL, uc.allowedHosts)
	if err != nil {
		return nil, err
	}

	key := "/status/" + ref.TweetID + "/preview"
	if preview, found := uc.cache.Get(key); found {
		log.GlobalDebugCtx(ctx, "preview cache hit", "tweet_id", ref.TweetID)
		return preview, nil
	}

	log.GlobalDebugCtx(ctx, "preview cache miss, scraping", "tweet_id", ref.TweetID)

	preview, err := uc.fetcher.Preview(ctx, ref)
	if err != nil {
		return nil, err
	}
	if preview.Partial {
		log.GlobalWarnCtx(ctx, "partial preview retrieved", "tweet_id", ref.TweetID)
	}

	uc.cache.Set(key, preview)
	return preview, nil
}
