package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"stylecraft-backend/internal/models"
)

// InFlight allows at most one request per user and action at a time.
type InFlight struct {
	mu     sync.Mutex
	active map[string]struct{}
}

func NewInFlight() *InFlight {
	return &InFlight{active: make(map[string]struct{})}
}

// Guard rejects a request with 409 while the same user already has a
// request for action running. It must run after AuthMiddleware.
func (f *InFlight) Guard(action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetString(UserIDKey) + ":" + action

		if !f.acquire(key) {
			Logger(c).WithField("action", action).Warn("concurrent request rejected")
			c.AbortWithStatusJSON(http.StatusConflict, models.ErrorResponse{
				Error:   "request already in progress",
				Message: "Please wait for your current " + action + " to finish",
			})
			return
		}
		defer f.release(key)

		c.Next()
	}
}

func (f *InFlight) acquire(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, busy := f.active[key]; busy {
		return false
	}
	f.active[key] = struct{}{}
	return true
}

func (f *InFlight) release(key string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.active, key)
}
