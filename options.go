package bigcoll

import (
	"fmt"
	"math"

	bcerrors "github.com/tamirms/bigcoll/errors"
)

const (
	// DefaultChunkLength is the maximum number of elements per chunk,
	// chosen as the largest count a single 32-bit-indexed buffer can hold.
	// Total addressable capacity is the square of the chunk length.
	DefaultChunkLength = int64(math.MaxInt32)

	// MaxGrowFactor bounds the multiplicative growth factor.
	MaxGrowFactor = 16.0

	// DefaultGrowFactor is the multiplicative growth factor applied while
	// capacity is below the fixed-grow limit.
	DefaultGrowFactor = 1.5

	// DefaultFixedGrowLimit is the capacity at which growth switches from
	// multiplicative to additive.
	DefaultFixedGrowLimit = int64(1) << 30

	// DefaultFixedGrowAmount is the additive growth step used at or above
	// the fixed-grow limit.
	DefaultFixedGrowAmount = int64(1) << 24

	// DefaultMinLoadFactor and DefaultMaxLoadFactor bound the live-element
	// to bucket ratio of a hash table before it shrinks or grows.
	DefaultMinLoadFactor = 0.3
	DefaultMaxLoadFactor = 1.0

	// DefaultMinLoadFactorTolerance scales the minimum load factor before
	// a shrink triggers, keeping a table that hovers around the boundary
	// from rehashing on every removal.
	DefaultMinLoadFactorTolerance = 0.9

	// DefaultBucketCount is the initial bucket capacity of a hash table.
	DefaultBucketCount = int64(16)

	// maxBucketCount caps hash-table bucket capacity at the 32-bit hash
	// domain. A larger table cannot further reduce collisions under a
	// 32-bit hash.
	maxBucketCount = int64(1) << 32
)

// Option is a functional option shared by every container constructor.
type Option func(*config)

type config struct {
	chunkLength            int64
	growFactor             float64
	fixedGrowAmount        int64
	fixedGrowLimit         int64
	minLoadFactor          float64
	maxLoadFactor          float64
	minLoadFactorTolerance float64
	bucketCount            int64
}

func defaultConfig() config {
	return config{
		chunkLength:            DefaultChunkLength,
		growFactor:             DefaultGrowFactor,
		fixedGrowAmount:        DefaultFixedGrowAmount,
		fixedGrowLimit:         DefaultFixedGrowLimit,
		minLoadFactor:          DefaultMinLoadFactor,
		maxLoadFactor:          DefaultMaxLoadFactor,
		minLoadFactorTolerance: DefaultMinLoadFactorTolerance,
		bucketCount:            DefaultBucketCount,
	}
}

func newConfig(opts ...Option) (config, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return config{}, err
	}
	return cfg, nil
}

func (c config) validate() error {
	switch {
	case c.chunkLength < 1:
		return fmt.Errorf("%w: chunk length %d, must be at least 1", bcerrors.ErrInvalidConfiguration, c.chunkLength)
	case c.growFactor <= 1.0 || c.growFactor > MaxGrowFactor:
		return fmt.Errorf("%w: grow factor %v, must be in (1.0, %v]", bcerrors.ErrInvalidConfiguration, c.growFactor, MaxGrowFactor)
	case c.fixedGrowAmount < 1:
		return fmt.Errorf("%w: fixed grow amount %d, must be at least 1", bcerrors.ErrInvalidConfiguration, c.fixedGrowAmount)
	case c.fixedGrowLimit < 1:
		return fmt.Errorf("%w: fixed grow limit %d, must be at least 1", bcerrors.ErrInvalidConfiguration, c.fixedGrowLimit)
	case c.minLoadFactor <= 0 || c.maxLoadFactor <= 0:
		return fmt.Errorf("%w: load factors must be positive", bcerrors.ErrInvalidConfiguration)
	case c.minLoadFactor >= c.maxLoadFactor:
		return fmt.Errorf("%w: min load factor %v must be below max load factor %v",
			bcerrors.ErrInvalidConfiguration, c.minLoadFactor, c.maxLoadFactor)
	case c.minLoadFactorTolerance < 0:
		return fmt.Errorf("%w: min load factor tolerance %v, must be non-negative", bcerrors.ErrInvalidConfiguration, c.minLoadFactorTolerance)
	case c.bucketCount < 1 || c.bucketCount > maxBucketCount:
		return fmt.Errorf("%w: bucket count %d, must be in [1, %d]", bcerrors.ErrInvalidConfiguration, c.bucketCount, maxBucketCount)
	}
	return nil
}

// grownCapacity applies the growth policy: multiplicative below the
// fixed-grow limit, additive at or above it, clamped to maxCapacity.
func (c config) grownCapacity(capacity, maxCapacity int64) int64 {
	var next int64
	if capacity < c.fixedGrowLimit {
		grown := float64(capacity)*c.growFactor + 1
		if grown >= float64(maxCapacity) {
			return maxCapacity
		}
		next = int64(grown)
	} else {
		next = capacity + c.fixedGrowAmount
	}
	if next < capacity || next > maxCapacity { // overflow or clamp
		next = maxCapacity
	}
	return next
}

// WithChunkLength sets the maximum number of elements per chunk. Small
// values (e.g. 10) make chunk boundaries easy to exercise in tests.
func WithChunkLength(length int64) Option {
	return func(c *config) {
		c.chunkLength = length
	}
}

// WithGrowFactor sets the multiplicative growth factor used below the
// fixed-grow limit. Must be in (1.0, MaxGrowFactor].
func WithGrowFactor(factor float64) Option {
	return func(c *config) {
		c.growFactor = factor
	}
}

// WithFixedGrowAmount sets the additive growth step used at or above the
// fixed-grow limit.
func WithFixedGrowAmount(amount int64) Option {
	return func(c *config) {
		c.fixedGrowAmount = amount
	}
}

// WithFixedGrowLimit sets the capacity at which growth switches from
// multiplicative to additive.
func WithFixedGrowLimit(limit int64) Option {
	return func(c *config) {
		c.fixedGrowLimit = limit
	}
}

// WithMinLoadFactor sets the load factor at or below which (scaled by the
// tolerance) a hash table shrinks its bucket array.
func WithMinLoadFactor(f float64) Option {
	return func(c *config) {
		c.minLoadFactor = f
	}
}

// WithMaxLoadFactor sets the load factor above which a hash table grows
// its bucket array.
func WithMaxLoadFactor(f float64) Option {
	return func(c *config) {
		c.maxLoadFactor = f
	}
}

// WithMinLoadFactorTolerance scales the minimum load factor before a
// shrink triggers. Zero shrinks eagerly; one applies the minimum exactly.
func WithMinLoadFactorTolerance(tolerance float64) Option {
	return func(c *config) {
		c.minLoadFactorTolerance = tolerance
	}
}

// WithBucketCount sets the initial bucket capacity of a hash table.
func WithBucketCount(count int64) Option {
	return func(c *config) {
		c.bucketCount = count
	}
}
