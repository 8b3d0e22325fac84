package usecases

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"tweet-tipping/internal/domain"
	"tweet-tipping/internal/wallet"
)

// Ingestor asks the oracle to ingest a tweet. An empty object id means
// the oracle gave no reference.
type Ingestor interface {
	RequestIngestion(ctx context.Context, tweetID string) (string, error)
}

// StateReader reads the author id of an ingested tweet object. It returns
// "" while the field is not populated.
type StateReader interface {
	AuthorID(ctx context.Context, objectID string) (string, error)
}

// Submitter submits a function call signed by signer.
type Submitter interface {
	Submit(ctx context.Context, signer wallet.Signer, call domain.FunctionCall) (domain.ExecutionResult, error)
}

// SignerSource yields the connected signer or domain.ErrWalletNotConnected.
type SignerSource interface {
	Signer() (wallet.Signer, error)
}

// AuthorCache caches resolved author ids by tweet id.
type AuthorCache interface {
	GetAuthor(tweetID string) (string, bool)
	SetAuthor(tweetID, authorID string)
}

// InflightGuard serialises work per key.
type InflightGuard interface {
	Acquire(ctx context.Context, key string) (func(), error)
}

// LedgerWriter stores workflow outcomes.
type LedgerWriter interface {
	Record(ctx context.Context, entry *domain.LedgerEntry) error
}

// EventPublisher announces workflow outcomes.
type EventPublisher interface {
	Publish(ctx context.Context, entry domain.LedgerEntry) error
}

// PreviewFetcher renders a tweet preview.
type PreviewFetcher interface {
	Preview(ctx context.Context, ref domain.TweetReference) (*domain.TweetPreview, error)
}

// PreviewCache caches previews by key.
type PreviewCache interface {
	Get(key string) (*domain.TweetPreview, bool)
	Set(key string, preview *domain.TweetPreview)
}
