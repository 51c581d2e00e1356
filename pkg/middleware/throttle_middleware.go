package middleware

import (
	baseHttp "net/http"
	"time"

	"github.com/inkpress/pkg/endpoint"
	"github.com/inkpress/pkg/limiter"
	"github.com/inkpress/pkg/portal"
)

// ThrottleMiddleware applies a per-client-IP sliding-window limit to the
// mutating admin routes. Reads are left unthrottled.
type ThrottleMiddleware struct {
	rateLimiter *limiter.MemoryLimiter
}

func MakeThrottleMiddleware(window time.Duration, maxHits int) ThrottleMiddleware {
	return ThrottleMiddleware{
		rateLimiter: limiter.NewMemoryLimiter(window, maxHits),
	}
}

func (m ThrottleMiddleware) Handle(next endpoint.ApiHandler) endpoint.ApiHandler {
	return func(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
		if m.rateLimiter == nil {
			return endpoint.InternalError("throttle middleware missing its limiter")
		}

		key := portal.ParseClientIP(r)

		if m.rateLimiter.TooMany(key) {
			return endpoint.TooManyRequestsError("slow down")
		}

		m.rateLimiter.Hit(key)

		return next(w, r)
	}
}
