package cardinality

import "github.com/rkilar/koala-networkit/blossomlog"

type config struct {
	logger            blossomlog.Logger
	consistencyChecks bool
}

func defaultConfig() config {
	return config{logger: blossomlog.Nop()}
}

// Option configures a Matcher at construction time.
type Option func(*config)

// WithLogger attaches a structured logger. The default discards every
// message.
func WithLogger(l blossomlog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithConsistencyChecks enables an O(n) matching-involution check after
// Run completes. Meant for tests and debugging.
func WithConsistencyChecks(enabled bool) Option {
	return func(c *config) { c.consistencyChecks = enabled }
}
