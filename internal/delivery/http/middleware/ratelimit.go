package middleware

import (
	"context"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberutils "github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/ride-booking/internal/pkg/errors"
	"github.com/ride-booking/internal/pkg/utils"
)

// idleLimiterTTL - через сколько неактивный лимитер IP удаляется
const idleLimiterTTL = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	mu       sync.Mutex
	lastSeen time.Time
}

// IPRateLimiter - token bucket на каждый IP клиента
type IPRateLimiter struct {
	visitors sync.Map
	rate     rate.Limit
	burst    int
	logger   *zap.Logger
	now      func() time.Time
}

// NewIPRateLimiter создаёт лимитер. rps <= 0 отключает ограничение.
func NewIPRateLimiter(rps float64, burst int, logger *zap.Logger) *IPRateLimiter {
	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}
	if burst <= 0 {
		burst = 1
	}
	return &IPRateLimiter{
		rate:   limit,
		burst:  burst,
		logger: logger,
		now:    time.Now,
	}
}

func (l *IPRateLimiter) allow(ip string) bool {
	v, _ := l.visitors.LoadOrStore(ip, &visitor{limiter: rate.NewLimiter(l.rate, l.burst)})
	vis := v.(*visitor)

	vis.mu.Lock()
	vis.lastSeen = l.now()
	vis.mu.Unlock()

	return vis.limiter.Allow()
}

// Cleanup удаляет лимитеры IP, не активных дольше idleLimiterTTL
func (l *IPRateLimiter) Cleanup() {
	cutoff := l.now().Add(-idleLimiterTTL)
	l.visitors.Range(func(key, value interface{}) bool {
		vis := value.(*visitor)
		vis.mu.Lock()
		idle := vis.lastSeen.Before(cutoff)
		vis.mu.Unlock()
		if idle {
			l.visitors.Delete(key)
		}
		return true
	})
}

// RunCleanup периодически вызывает Cleanup до отмены ctx
func (l *IPRateLimiter) RunCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.Cleanup()
		}
	}
}

// RateLimit - middleware, отвечает 429 при превышении лимита
func (l *IPRateLimiter) RateLimit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ip := c.IP()
		if !l.allow(ip) {
			l.logger.Warn("Rate limit exceeded",
				zap.String("ip", ip),
				zap.String("path", fiberutils.CopyString(c.Path())))
			c.Set(fiber.HeaderRetryAfter, "1")
			return utils.SendError(c, errors.ErrTooManyRequests)
		}
		return c.Next()
	}
}
