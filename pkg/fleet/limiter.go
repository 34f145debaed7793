package fleet

import (
	"sync"

	"golang.org/x/time/rate"
)

// Pacing limiter keys shared by the bulk operations.
const (
	PacerKeyBulkInstall   = "bulk_install"
	PacerKeyBulkUninstall = "bulk_uninstall"
	PacerKeyScheduleBatch = "schedule_batch"
)

// RateLimiterStore manages keyed rate limiters: key -> rate limiter. The HTTP
// layer keys it by client, the core keys it by batch operation.
type RateLimiterStore struct {
	limiters     map[string]*rate.Limiter
	mu           sync.Mutex
	defaultRate  rate.Limit
	defaultBurst int
}

func NewRateLimiterStore(defaultRate rate.Limit, defaultBurst int) *RateLimiterStore {
	return &RateLimiterStore{
		limiters:     make(map[string]*rate.Limiter),
		defaultRate:  defaultRate,
		defaultBurst: defaultBurst,
	}
}

func (s *RateLimiterStore) GetLimiter(key string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[key]
	if !exists {
		limiter = rate.NewLimiter(s.defaultRate, s.defaultBurst)
		s.limiters[key] = limiter
	}
	return limiter
}

func (s *RateLimiterStore) SetLimiter(key string, keyRate rate.Limit, keyBurst int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.limiters[key] = rate.NewLimiter(keyRate, keyBurst)
}
