// Package app builds the tipping services from configuration. Both the
// HTTP server and the CLI start from here.
package app

import (
	"context"
	"errors"
	"fmt"

	"tweet-tipping/internal/adapters/bridge"
	"tweet-tipping/internal/adapters/cache"
	"tweet-tipping/internal/adapters/events"
	"tweet-tipping/internal/adapters/guard"
	"tweet-tipping/internal/adapters/ledger"
	"tweet-tipping/internal/adapters/oracle"
	"tweet-tipping/internal/adapters/preview"
	"tweet-tipping/internal/adapters/rooch"
	"tweet-tipping/internal/config"
	"tweet-tipping/internal/domain"
	"tweet-tipping/internal/usecases"
	"tweet-tipping/internal/wallet"
	"tweet-tipping/pkg/log"
)

// Options turns optional components off regardless of configuration.
type Options struct {
	// NoPreview skips starting Chrome.
	NoPreview bool
}

// App holds the wired services.
type App struct {
	Config   *config.Config
	Session  *wallet.Session
	Chain    *rooch.Client
	Resolver *usecases.ResolveAuthorUseCase
	Tip      *usecases.TipUseCase
	Claim    *usecases.ClaimUseCase
	Preview  *usecases.GetPreviewUseCase
	// Ledger is nil when no ledger database is configured.
	Ledger *ledger.Store

	closers []func() error
}

// New wires every component enabled in cfg. On error, whatever was already
// opened is closed.
func New(ctx context.Context, cfg *config.Config, logger *log.Logger, opts Options) (_ *App, err error) {
	a := &App{Config: cfg}
	defer func() {
		if err != nil {
			_ = a.Close()
		}
	}()

	a.Chain, err = rooch.NewClient(rooch.Config{
		URL:          cfg.Chain.URL,
		Timeout:      cfg.Chain.Timeout,
		MaxGasAmount: cfg.Chain.MaxGasAmount,
	})
	if err != nil {
		return nil, err
	}
	a.onClose(func() error { a.Chain.Close(); return nil })

	wallets := make([]wallet.Wallet, 0, len(cfg.Wallets))
	for _, w := range cfg.Wallets {
		bw, err := bridge.New(bridge.Config{Name: w.Name, URL: w.URL, Timeout: w.Timeout})
		if err != nil {
			return nil, err
		}
		wallets = append(wallets, bw)
	}
	a.Session = wallet.NewSession(wallets...)

	ingestor := oracle.NewCached(oracle.NewClient(oracle.Config{
		URL:     cfg.Oracle.URL,
		Timeout: cfg.Oracle.Timeout,
	}), cfg.Oracle.CacheTTL)

	authors := cache.NewAuthorCache(cfg.Resolver.AuthorTTL)
	a.onClose(func() error { authors.Close(); return nil })

	a.Resolver = usecases.NewResolveAuthorUseCase(ingestor, a.Chain, authors, usecases.ResolverConfig{
		MaxRetries: cfg.Resolver.MaxRetries,
		Delay:      cfg.Resolver.Delay,
	})

	inflight, err := a.newGuard(cfg.Guard)
	if err != nil {
		return nil, err
	}

	recorder, err := a.newRecorder(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	a.Tip = usecases.NewTipUseCase(a.Resolver, a.Session, a.Chain, inflight, recorder, usecases.TipConfig{
		Contract:      cfg.Chain.Contract,
		AllowedHosts:  cfg.Tweets.AllowedHosts,
		SubmitTimeout: cfg.Chain.SubmitTimeout,
	})
	a.Claim = usecases.NewClaimUseCase(a.Session, a.Chain, recorder, usecases.ClaimConfig{
		Contract:      cfg.Chain.Contract,
		SubmitTimeout: cfg.Chain.SubmitTimeout,
	})

	fetcher, err := a.newPreviewFetcher(cfg.Preview, opts)
	if err != nil {
		return nil, err
	}
	previews := cache.NewMemoryCache[*domain.TweetPreview](cfg.Preview.CacheTTL)
	a.onClose(func() error { previews.Close(); return nil })
	a.Preview = usecases.NewGetPreviewUseCase(previews, fetcher, cfg.Tweets.AllowedHosts)

	return a, nil
}

func (a *App) onClose(fn func() error) {
	a.closers = append(a.closers, fn)
}

func (a *App) newGuard(cfg config.GuardConfig) (usecases.InflightGuard, error) {
	if cfg.Backend != "redis" {
		return guard.NewLocal(), nil
	}
	g := guard.NewRedis(guard.NewRedisClient(guard.RedisConfig{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}), cfg.TTL)
	a.onClose(g.Close)
	return g, nil
}

func (a *App) newRecorder(ctx context.Context, cfg *config.Config, logger *log.Logger) (*usecases.Recorder, error) {
	var (
		writer    usecases.LedgerWriter
		publisher usecases.EventPublisher
	)

	if cfg.Ledger.Enabled() {
		store, err := ledger.Open(ctx, ledger.Config{Driver: cfg.Ledger.Driver, DSN: cfg.Ledger.DSN})
		if err != nil {
			return nil, fmt.Errorf("open ledger: %w", err)
		}
		a.onClose(store.Close)
		a.Ledger = store
		writer = store
	}

	if cfg.Events.Enabled() {
		mq, err := events.NewRabbitMQ(events.Config{
			URL:        cfg.Events.URL,
			Exchange:   cfg.Events.Exchange,
			QueueName:  cfg.Events.QueueName,
			BindingKey: cfg.Events.BindingKey,
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("connect events: %w", err)
		}
		a.onClose(mq.Close)
		publisher = mq
	}

	return usecases.NewRecorder(writer, publisher), nil
}

func (a *App) newPreviewFetcher(cfg config.PreviewConfig, opts Options) (usecases.PreviewFetcher, error) {
	if !cfg.Enabled || opts.NoPreview {
		return nil, nil
	}

	selectors, err := preview.LoadSelectors(cfg.SelectorsFile, cfg.ReloadInterval)
	if err != nil {
		return nil, fmt.Errorf("load selectors: %w", err)
	}
	a.onClose(func() error { selectors.Close(); return nil })

	pool, err := preview.NewBrowserPool(preview.PoolConfig{
		RemoteURL:  cfg.RemoteURL,
		ChromePath: cfg.ChromePath,
	})
	if err != nil {
		return nil, fmt.Errorf("start browser: %w", err)
	}
	a.onClose(func() error { pool.Close(); return nil })

	return preview.NewScraper(pool, selectors, cfg.BaseURL), nil
}

// Close releases every opened component in reverse order.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
