package euler

import "fmt"

// Option configures a constructive search.
type Option func(*searchConfig)

type searchConfig struct {
	stepLimit int // 0 = unlimited
}

func defaultSearchConfig() searchConfig {
	return searchConfig{stepLimit: 0}
}

// WithStepLimit bounds the number of edge traversals a single search may try.
// Panics if n <= 0: an empty budget can never find anything.
func WithStepLimit(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("euler: WithStepLimit(%d): limit must be > 0", n))
	}
	return func(c *searchConfig) { c.stepLimit = n }
}
