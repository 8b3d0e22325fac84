// Package preview renders a tweet in headless Chrome and extracts who wrote
// it, so the user can see who they are about to tip.
package preview

import (
	"context"
	"fmt"

	"github.com/chromedp/chromedp"

	"tweet-tipping/internal/domain"
	"tweet-tipping/pkg/log"
)

const defaultBaseURL = "https://x.com/i/status/"

// Tabber runs work in a browser tab.
type Tabber interface {
	WithTab(ctx context.Context, fn func(tabCtx context.Context) error) error
}

// Scraper loads tweet pages and parses them into previews.
type Scraper struct {
	pool      Tabber
	selectors *SelectorConfig
	baseURL   string
}

// NewScraper creates a scraper. An empty baseURL uses x.com.
func NewScraper(pool Tabber, selectors *SelectorConfig, baseURL string) *Scraper {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Scraper{pool: pool, selectors: selectors, baseURL: baseURL}
}

// Preview fetches the tweet behind ref.
func (s *Scraper) Preview(ctx context.Context, ref domain.TweetReference) (*domain.TweetPreview, error) {
	sel := s.selectors.Get()
	url := s.baseURL + ref.TweetID

	var page string
	err := s.pool.WithTab(ctx, func(tabCtx context.Context) error {
		actions := []chromedp.Action{chromedp.Navigate(url)}
		if sel.TweetContainer != "" {
			actions = append(actions, chromedp.WaitVisible(sel.TweetContainer, chromedp.ByQuery))
		}
		if sel.TweetText != "" {
			actions = append(actions, chromedp.WaitVisible(sel.TweetText, chromedp.ByQuery))
		}
		actions = append(actions, chromedp.OuterHTML("html", &page, chromedp.ByQuery))
		return chromedp.Run(tabCtx, actions...)
	})
	if err != nil {
		log.GlobalWarnCtx(ctx, "preview page load failed", "tweet_id", ref.TweetID, "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrPreviewUnavailable, err)
	}

	p := parsePage(page, ref.TweetID)
	if p.Text == "" && p.Author.Handle == "" {
		return nil, domain.ErrPreviewUnavailable
	}
	if p.Partial {
		log.GlobalDebugCtx(ctx, "partial preview", "tweet_id", ref.TweetID)
	}
	return p, nil
}
