package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"cooked-flow/internal/recipe/repository"
	pkgLog "cooked-flow/pkg/log"
)

// Config tunes the bulk import pipeline.
type Config struct {
	ChunkSize      int
	RatePerSecond  float64
	DedupCacheSize int
	DedupCacheTTL  time.Duration
}

type implUseCase struct {
	l         pkgLog.Logger
	repo      repository.Repository
	limiter   *rate.Limiter
	dedup     *expirable.LRU[string, struct{}]
	chunkSize int
}

// New creates a new recipe UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository, cfg Config) *implUseCase {
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = 500
	}
	if cfg.RatePerSecond <= 0 {
		cfg.RatePerSecond = 10
	}
	if cfg.DedupCacheSize <= 0 {
		cfg.DedupCacheSize = 100000
	}
	if cfg.DedupCacheTTL <= 0 {
		cfg.DedupCacheTTL = time.Hour
	}

	return &implUseCase{
		l:         l,
		repo:      repo,
		limiter:   rate.NewLimiter(rate.Limit(cfg.RatePerSecond), 1),
		dedup:     expirable.NewLRU[string, struct{}](cfg.DedupCacheSize, nil, cfg.DedupCacheTTL),
		chunkSize: cfg.ChunkSize,
	}
}
