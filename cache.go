package decimal

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Cache interns decimals by coefficient and scale.
// Entries are only ever added, so a decimal stays canonical for the lifetime
// of its cache.
// A Cache is safe for concurrent use: concurrent first requests for the same
// coefficient and scale all receive the same *Decimal.
//
// Most programs use the process-wide [Default] cache through [New] and
// [Parse]. A separate cache is useful when interned values should not
// outlive a component, for example in tests.
type Cache struct {
	values sync.Map // cacheKey -> *Decimal

	entries atomic.Int64
	hits    atomic.Int64
	misses  atomic.Int64
}

type cacheKey struct {
	coef  int32
	scale int
}

// CacheStats is a snapshot of the counters of a [Cache].
type CacheStats struct {
	// Entries is the number of interned decimals.
	Entries int64
	// Hits is the number of lookups that returned an existing decimal.
	Hits int64
	// Misses is the number of lookups that created a decimal.
	Misses int64
}

// defaultCache lives for the whole process.
var defaultCache = NewCache()

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{}
}

// Default returns the process-wide cache used by [New] and [Parse].
func Default() *Cache {
	return defaultCache
}

// New returns the decimal equal to coef / 10^scale interned in c.
// New returns an error wrapping [ErrInvalidArgument] if scale is negative or
// if coef is negative or greater than [MaxCoef]. Nothing is cached on error.
func (c *Cache) New(coef int64, scale int) (*Decimal, error) {
	switch {
	case scale < 0:
		return nil, fmt.Errorf("New(%v, %v) failed: %w", coef, scale, errScaleRange)
	case coef < 0 || coef > MaxCoef:
		return nil, fmt.Errorf("New(%v, %v) failed: %w", coef, scale, errCoefRange)
	}
	return c.get(int32(coef), scale), nil
}

// Parse converts a string to a decimal with the given scale interned in c.
// See [IsValidInput] for the accepted format.
// Parse returns a [*ParseError] wrapping [ErrFormat] if s is not valid.
func (c *Cache) Parse(s string, scale int) (*Decimal, error) {
	coef, err := parseInput(s, scale)
	if err != nil {
		return nil, &ParseError{Input: s, Scale: scale, Err: err}
	}
	return c.get(coef, scale), nil
}

// Len returns the number of interned decimals.
func (c *Cache) Len() int {
	return int(c.entries.Load())
}

// Stats returns a snapshot of the cache counters.
func (c *Cache) Stats() CacheStats {
	return CacheStats{
		Entries: c.entries.Load(),
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
	}
}

// get returns the canonical decimal for a coefficient and scale,
// creating it on first use.
// The arguments must already be validated.
func (c *Cache) get(coef int32, scale int) *Decimal {
	key := cacheKey{coef: coef, scale: scale}

	if v, ok := c.values.Load(key); ok {
		c.hits.Add(1)
		return v.(*Decimal)
	}

	v, loaded := c.values.LoadOrStore(key, &Decimal{coef: coef, scale: scale, cache: c})
	if loaded {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
		c.entries.Add(1)
	}
	return v.(*Decimal)
}
