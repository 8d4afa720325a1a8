package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"furls/dashboard/internal/auth"
	"furls/dashboard/internal/metrics"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// UploadLimiter hands out one token bucket per user.
type UploadLimiter struct {
	mu       sync.Mutex
	limiters map[uint]*rate.Limiter
	limit    rate.Limit
	burst    int
}

// NewUploadLimiter allows perMinute uploads per user with a burst of the same
// size. perMinute <= 0 disables limiting.
func NewUploadLimiter(perMinute int) *UploadLimiter {
	l := &UploadLimiter{limiters: make(map[uint]*rate.Limiter)}
	if perMinute <= 0 {
		l.limit = rate.Inf
		return l
	}
	l.limit = rate.Every(time.Minute / time.Duration(perMinute))
	l.burst = perMinute
	return l
}

func (l *UploadLimiter) limiter(userID uint) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	lim, ok := l.limiters[userID]
	if !ok {
		lim = rate.NewLimiter(l.limit, l.burst)
		l.limiters[userID] = lim
	}
	return lim
}

// Allow reports whether userID may upload now.
func (l *UploadLimiter) Allow(userID uint) bool {
	return l.limiter(userID).Allow()
}

// Middleware must run after authentication so the user id is known.
func (l *UploadLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.UserID(c)
		if !ok {
			c.Next()
			return
		}
		if !l.Allow(userID) {
			metrics.RecordUpload("rate_limited")
			if l.limit != rate.Inf && l.limit > 0 {
				retry := time.Duration(float64(time.Second) / float64(l.limit))
				c.Header("Retry-After", strconv.Itoa(int(retry.Seconds())+1))
			}
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Upload rate limit exceeded"})
			return
		}
		c.Next()
	}
}
