package middlewares

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"illusphere_backend/pkg"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	defaultSubmissionDailyLimit = 3
	submissionLimitWindow       = 24 * time.Hour
	submissionLimitKeyPrefix    = "intake:submissions:"
)

var errTooManySubmissions = pkg.NewDomainErrorSimple(
	"TOO_MANY_SUBMISSIONS",
	"Maximum project submissions per day reached. Please try again tomorrow.",
	http.StatusTooManyRequests,
)

// SubmissionLimiter caps submissions per client email, keyed on the body's
// clientEmail field rather than the caller IP. Requests without a readable
// email pass through; shape validation rejects them downstream anyway.
//
// Counting is Redis INCR with a 24h expiry set on first increment. When rdb
// is nil or Redis is unreachable the limiter fails open: intake availability
// beats spam protection.
func SubmissionLimiter(rdb *redis.Client) gin.HandlerFunc {
	limit := submissionDailyLimit()

	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		email := peekClientEmail(c)
		if email == "" {
			c.Next()
			return
		}

		key := submissionLimitKeyPrefix + email
		count, err := rdb.Incr(c.Request.Context(), key).Result()
		if err != nil {
			log.Printf("[ratelimit] redis incr failed, allowing request: %v", err)
			c.Next()
			return
		}
		if count == 1 {
			if err := rdb.Expire(c.Request.Context(), key, submissionLimitWindow).Err(); err != nil {
				log.Printf("[ratelimit] redis expire failed key=%s: %v", key, err)
			}
		}

		if count > int64(limit) {
			c.AbortWithStatusJSON(errTooManySubmissions.HTTPStatus, errTooManySubmissions.ToHTTPError())
			return
		}
		c.Next()
	}
}

// peekClientEmail reads the clientEmail field without consuming the body the
// handler still needs.
func peekClientEmail(c *gin.Context) string {
	if c.Request.Body == nil {
		return ""
	}
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return ""
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(body))

	var probe struct {
		ClientEmail string `json:"clientEmail"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(probe.ClientEmail))
}

func submissionDailyLimit() int {
	if v := os.Getenv("SUBMISSION_DAILY_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return defaultSubmissionDailyLimit
}
