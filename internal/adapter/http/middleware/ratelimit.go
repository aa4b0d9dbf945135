package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"tasklist/pkg/apimessages"
	"tasklist/pkg/translator"
)

// RateLimiter hands out one token bucket per client IP and rejects
// requests over budget with 429. The language is negotiated directly from
// the header because the limiter can run before LanguageMiddleware.
func RateLimiter(r rate.Limit, b int) gin.HandlerFunc {
	visitors := make(map[string]*rate.Limiter)
	var mu sync.Mutex

	getVisitor := func(ip string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		limiter, exists := visitors[ip]
		if !exists {
			limiter = rate.NewLimiter(r, b)
			visitors[ip] = limiter
		}
		return limiter
	}

	return func(c *gin.Context) {
		if !getVisitor(c.ClientIP()).Allow() {
			lang := translator.MatchLanguage(c.GetHeader("Accept-Language"))
			c.AbortWithStatusJSON(
				http.StatusTooManyRequests,
				apimessages.CreateError(http.StatusTooManyRequests, apimessages.MsgRateLimited, lang),
			)
			return
		}
		c.Next()
	}
}
