// internal/domain/order/ids.go
package order

import (
	"fmt"
	"math/rand"
	"strconv"
	"sync"
	"time"
)

// IDGenerator issues order IDs of the form ORD<millis>. IDs are strictly
// increasing even when two orders land in the same millisecond.
type IDGenerator struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

// NewIDGenerator creates a generator backed by the wall clock
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{now: time.Now}
}

// Next returns a fresh order ID
func (g *IDGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return "ORD" + strconv.FormatInt(ms, 10)
}

// NewTrackingNumber returns TRK followed by nine random digits
func NewTrackingNumber() string {
	return fmt.Sprintf("TRK%09d", rand.Intn(1_000_000_000))
}
