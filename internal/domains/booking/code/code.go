// Package code issues human-facing booking codes: a prefix followed by the
// last six digits of the creation time in milliseconds.
package code

import (
	"fmt"
	"sync"
	"time"
)

const digitsModulo = 1_000_000

type Clock func() time.Time

type Generator interface {
	Next() string
}

func format(prefix string, millis int64) string {
	return fmt.Sprintf("%s%06d", prefix, millis%digitsModulo)
}

type legacyGenerator struct {
	prefix string
	clock  Clock
}

// NewLegacy reads the clock on every call, so two calls within the same millisecond return the same code.
func NewLegacy(prefix string, clock Clock) Generator {
	return &legacyGenerator{prefix: prefix, clock: clock}
}

func (g *legacyGenerator) Next() string {
	return format(g.prefix, g.clock().UnixMilli())
}

type monotonicGenerator struct {
	mu     sync.Mutex
	prefix string
	clock  Clock
	last   int64
}

// NewMonotonic never issues the same millisecond twice: when the clock has not advanced
// past the last issued value it moves one millisecond ahead of it.
func NewMonotonic(prefix string, clock Clock) Generator {
	return &monotonicGenerator{prefix: prefix, clock: clock}
}

func (g *monotonicGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	millis := g.clock().UnixMilli()
	if millis <= g.last {
		millis = g.last + 1
	}

	g.last = millis

	return format(g.prefix, millis)
}
