package middleware

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

// The assistant endpoints proxy a metered third-party API, so they get
// a tight per-caller budget.
const (
	assistantLimit = rate.Limit(1)
	assistantBurst = 5
)

// visitor holds the rate limiter and the last time it was seen.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var (
	visitors   = make(map[string]*visitor)
	visitorsMu sync.Mutex
)

func init() {
	go cleanupVisitors()
}

// getVisitor retrieves or creates a rate limiter for the given key.
func getVisitor(key string, r rate.Limit, b int) *rate.Limiter {
	visitorsMu.Lock()
	defer visitorsMu.Unlock()

	v, exists := visitors[key]
	if !exists {
		limiter := rate.NewLimiter(r, b)
		visitors[key] = &visitor{limiter, time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

// cleanupVisitors removes stale entries so the map doesn't grow forever.
func cleanupVisitors() {
	for {
		time.Sleep(time.Minute)

		visitorsMu.Lock()
		for key, v := range visitors {
			if time.Since(v.lastSeen) > 3*time.Minute {
				delete(visitors, key)
			}
		}
		visitorsMu.Unlock()
	}
}

// AssistantRateLimit throttles assistant requests per caller. The
// authenticated user ID is preferred as the bucket key; anonymous
// callers fall back to their IP.
func AssistantRateLimit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity := "ip:" + c.IP()
		if userID := UserID(c); userID != "" {
			identity = "user:" + userID
		}

		limiter := getVisitor(identity+":assistant", assistantLimit, assistantBurst)
		if !limiter.Allow() {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"message": "Too many requests, slow down",
			})
		}

		return c.Next()
	}
}
