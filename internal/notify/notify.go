package notify

import (
	"sync"
	"time"
)

const DefaultTTL = 3 * time.Second

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notification is a transient message shown near the top of the page. Ids are
// timestamp-derived, matching the Date.now() scheme the UI expects.
type Notification struct {
	ID       int64    `json:"id"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// Center queues notifications per session and drops each one after a fixed
// interval. Expiry is pure timer-based and independent of any request
// lifecycle.
type Center struct {
	mu     sync.Mutex
	ttl    time.Duration
	now    func() time.Time
	active map[string][]Notification
}

func NewCenter(ttl time.Duration) *Center {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Center{
		ttl:    ttl,
		now:    time.Now,
		active: make(map[string][]Notification),
	}
}

func (c *Center) Push(sessionID, message string, severity Severity) {
	c.mu.Lock()
	id := c.now().UnixMilli()
	// Two pushes within the same millisecond would collide; bump until free.
	for c.exists(sessionID, id) {
		id++
	}
	c.active[sessionID] = append(c.active[sessionID], Notification{
		ID:       id,
		Message:  message,
		Severity: severity,
	})
	c.mu.Unlock()

	time.AfterFunc(c.ttl, func() {
		c.remove(sessionID, id)
	})
}

// Active returns the not-yet-expired notifications for a session, oldest
// first.
func (c *Center) Active(sessionID string) []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Notification, len(c.active[sessionID]))
	copy(out, c.active[sessionID])
	return out
}

func (c *Center) exists(sessionID string, id int64) bool {
	for _, n := range c.active[sessionID] {
		if n.ID == id {
			return true
		}
	}
	return false
}

func (c *Center) remove(sessionID string, id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.active[sessionID][:0]
	for _, n := range c.active[sessionID] {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	if len(kept) == 0 {
		delete(c.active, sessionID)
		return
	}
	c.active[sessionID] = kept
}
