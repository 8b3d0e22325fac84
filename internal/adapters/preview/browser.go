package preview

import (
	"context"
	"os"
	"sync"

	"github.com/chromedp/chromedp"

	"tweet-tipping/pkg/log"
)

// PoolConfig configures the browser behind previews.
type PoolConfig struct {
	// RemoteURL attaches to an already running Chrome via its DevTools
	// websocket instead of launching one.
	RemoteURL string
	// ChromePath overrides the Chrome binary. Falls back to $CHROME_PATH.
	ChromePath string
	Options    []chromedp.ExecAllocatorOption
}

// BrowserPool manages a single Chrome process and serialises tab usage
// (one tab at a time).
type BrowserPool struct {
	cfg    PoolConfig
	ctx    context.Context
	cancel context.CancelFunc

	mu    sync.Mutex
	slots *tabSlots
}

// NewBrowserPool starts (or attaches to) Chrome.
func NewBrowserPool(cfg PoolConfig) (*BrowserPool, error) {
	bp := &BrowserPool{cfg: cfg, slots: newTabSlots(1)}
	if err := bp.start(); err != nil {
		return nil, err
	}
	return bp, nil
}

func (bp *BrowserPool) allocator() (context.Context, context.CancelFunc) {
	if bp.cfg.RemoteURL != "" {
		return chromedp.NewRemoteAllocator(context.Background(), bp.cfg.RemoteURL)
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-sync", true),
		chromedp.Flag("disable-background-networking", true),
		chromedp.Flag("disable-notifications", true),
		chromedp.Flag("disable-features", "Translate,BackForwardCache"),
		chromedp.Flag("mute-audio", true),
		chromedp.Flag("no-first-run", true),
	)
	opts = append(opts, bp.cfg.Options...)

	chromePath := bp.cfg.ChromePath
	if chromePath == "" {
		chromePath = os.Getenv("CHROME_PATH")
	}
	if chromePath != "" {
		log.GlobalInfo("browser pool using custom chrome path", "path", chromePath)
		opts = append(opts, chromedp.ExecPath(chromePath))
	}

	return chromedp.NewExecAllocator(context.Background(), opts...)
}

// start initializes or restarts Chrome.
func (bp *BrowserPool) start() error {
	bp.mu.Lock()
	defer bp.mu.Unlock()

	if bp.cancel != nil {
		bp.cancel()
	}

	allocCtx, cancelAlloc := bp.allocator()
	ctx, cancelCtx := chromedp.NewContext(allocCtx)
	cancel := func() {
		cancelCtx()
		cancelAlloc()
	}

	// Force Chrome startup
	if err := chromedp.Run(ctx); err != nil {
		cancel()
		return err
	}

	bp.ctx = ctx
	bp.cancel = cancel

	log.GlobalInfo("browser pool chrome started", "remote", bp.cfg.RemoteURL != "")
	return nil
}

// WithTab runs fn with exclusive use of a fresh tab. Waiting for the tab
// is abandoned when ctx is done, and the tab is closed when ctx is.
func (bp *BrowserPool) WithTab(ctx context.Context, fn func(tabCtx context.Context) error) error {
	if err := bp.slots.acquire(ctx); err != nil {
		return err
	}
	defer bp.slots.release()

	tabCtx, tabCancel, err := bp.acquireTab()
	if err != nil {
		return err
	}
	defer tabCancel()

	stop := context.AfterFunc(ctx, tabCancel)
	defer stop()

	return fn(tabCtx)
}

// acquireTab opens a tab, restarting Chrome once if the tab is unhealthy.
func (bp *BrowserPool) acquireTab() (context.Context, context.CancelFunc, error) {
	bp.mu.Lock()
	tabCtx, tabCancel := chromedp.NewContext(bp.ctx)
	bp.mu.Unlock()

	if err := chromedp.Run(tabCtx); err != nil {
		tabCancel()

		log.GlobalWarn("browser pool tab failed, restarting chrome", "error", err)

		if restartErr := bp.start(); restartErr != nil {
			return nil, nil, restartErr
		}

		bp.mu.Lock()
		tabCtx, tabCancel = chromedp.NewContext(bp.ctx)
		bp.mu.Unlock()
	}

	return tabCtx, tabCancel, nil
}

// Close shuts down the browser.
func (bp *BrowserPool) Close() {
	bp.mu.Lock()
	defer bp.mu.Unlock()

	if bp.cancel != nil {
		bp.cancel()
		bp.cancel = nil
		log.GlobalInfo("browser pool chrome stopped")
	}
}

// tabSlots is a counting semaphore whose acquire honours ctx.
type tabSlots struct {
	sem chan struct{}
}

func newTabSlots(n int) *tabSlots {
	return &tabSlots{sem: make(chan struct{}, n)}
}

func (s *tabSlots) acquire(ctx context.Context) error {
	select {
	case s.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *tabSlots) release() {
	<-s.sem
}
