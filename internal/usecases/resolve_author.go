package usecases

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"tweet-tipping/internal/domain"
	"tweet-tipping/internal/retry"
	"tweet-tipping/pkg/log"
)

var tracer = otel.Tracer("tweet-tipping/usecases")

const (
	DefaultMaxRetries = 20
	DefaultRetryDelay = 1200 * time.Millisecond
)

// ResolverConfig bounds the polling for the author id.
type ResolverConfig struct {
	MaxRetries int
	Delay      time.Duration
	// Sleep replaces the real-time wait, for tests.
	Sleep retry.Sleeper
}

// Resolution is a resolved tweet author.
type Resolution struct {
	TweetID  string `json:"tweet_id"`
	ObjectID string `json:"object_id,omitempty"`
	AuthorID string `json:"author_id"`
	// Attempts counts state queries, including the first.
	Attempts int  `json:"attempts"`
	Cached   bool `json:"cached"`
}

// ResolveAuthorUseCase finds the on-chain author id of a tweet: it asks the
// oracle to ingest the tweet, then polls the tweet object until the oracle
// has filled in author_id.
type ResolveAuthorUseCase struct {
	ingestor Ingestor
	reader   StateReader
	cache    AuthorCache
	cfg      ResolverConfig
}

// NewResolveAuthorUseCase creates the resolver. cache may be nil.
func NewResolveAuthorUseCase(ingestor Ingestor, reader StateReader, cache AuthorCache, cfg ResolverConfig) *ResolveAuthorUseCase {
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	return &ResolveAuthorUseCase{
		ingestor: ingestor,
		reader:   reader,
		cache:    cache,
		cfg:      cfg,
	}
}

// Execute resolves the author of ref. It fails with
// domain.ErrNoIngestionReference when the oracle returns no object, and with
// domain.ErrDataNotReady when author_id is still absent after the last retry.
// Transport errors are returned unclassified.
func (uc *ResolveAuthorUseCase) Execute(ctx context.Context, ref domain.TweetReference) (Resolution, error) {
	res := Resolution{TweetID: ref.TweetID}

	if uc.cache != nil {
		if author, found := uc.cache.GetAuthor(ref.TweetID); found {
			log.GlobalDebugCtx(ctx, "author cache hit", "tweet_id", ref.TweetID)
			res.AuthorID = author
			res.Cached = true
			return res, nil
		}
	}

	ctx, span := tracer.Start(ctx, "ResolveAuthor")
	defer span.End()
	span.SetAttributes(attribute.String("tweet.id", ref.TweetID))

	objectID, err := uc.ingestor.RequestIngestion(ctx, ref.TweetID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "ingestion failed")
		return res, err
	}
	if objectID == "" {
		log.GlobalInfoCtx(ctx, "ingestion returned no object", "tweet_id", ref.TweetID)
		span.SetAttributes(attribute.String("resolve.outcome", "no_reference"))
		return res, domain.ErrNoIngestionReference
	}
	res.ObjectID = objectID
	span.SetAttributes(attribute.String("object.id", objectID))

	policy := retry.Policy{
		MaxRetries: uc.cfg.MaxRetries,
		Delay:      uc.cfg.Delay,
		Sleep:      uc.cfg.Sleep,
		OnRetry: func(n int) {
			log.GlobalDebugCtx(ctx, "author not ready, retrying", "object_id", objectID, "retry", n)
		},
	}
	polled, err := retry.Poll(ctx, policy,
		func(ctx context.Context) (string, error) { return uc.reader.AuthorID(ctx, objectID) },
		func(author string) bool { return author != "" },
	)
	res.Attempts = polled.Attempts
	span.SetAttributes(attribute.Int("resolve.attempts", polled.Attempts))

	switch {
	case errors.Is(err, retry.ErrExhausted):
		log.GlobalWarnCtx(ctx, "author not ready after retries", "object_id", objectID, "attempts", polled.Attempts)
		span.SetAttributes(attribute.String("resolve.outcome", "not_ready"))
		return res, domain.ErrDataNotReady
	case err != nil:
		span.RecordError(err)
		span.SetStatus(codes.Error, "state query failed")
		return res, err
	}

	res.AuthorID = polled.Value
	if uc.cache != nil {
		uc.cache.SetAuthor(ref.TweetID, res.AuthorID)
	}
	span.SetAttributes(attribute.String("resolve.outcome", "found"))
	return res, nil
}
