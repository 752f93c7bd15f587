package matching

import "github.com/rkilar/koala-networkit/blossomlog"

// Variant selects which of the three weighted-matching engines New
// builds.
type Variant int

const (
	// Edmonds is Edmonds' original algorithm: O(n+m) work rediscovering
	// useful edges by full scan at every dual adjustment. Simplest,
	// slowest; good as a reference implementation and for small graphs.
	Edmonds Variant = iota

	// Gabow augments Edmonds with a per-blossom best-edge cache so
	// computing delta2 and delta3 no longer requires a full scan. The
	// edges a delta2/delta3 step makes tight are still found by Edmonds'
	// full scan, so the worst case per stage stays that of Edmonds.
	Gabow

	// GalilMicaliGabow further replaces the caches with the pqueue
	// package's two-level and indexed priority queues (and keeps blossom
	// membership in concatenable queues), so every delta is a queue read.
	// The edges a delta2/delta3 step makes tight are still found by
	// Edmonds' full scan, so the worst case per stage stays that of
	// Edmonds.
	GalilMicaliGabow
)

func (v Variant) String() string {
	switch v {
	case Gabow:
		return "gabow"
	case GalilMicaliGabow:
		return "galil-micali-gabow"
	default:
		return "edmonds"
	}
}

type config struct {
	variant           Variant
	logger            blossomlog.Logger
	consistencyChecks bool
}

func defaultConfig() config {
	return config{
		variant: Edmonds,
		logger:  blossomlog.Nop(),
	}
}

// Option configures a Matcher at construction time.
type Option func(*config)

// WithVariant selects the weighted-matching engine. The default is
// Edmonds.
func WithVariant(v Variant) Option {
	return func(c *config) { c.variant = v }
}

// WithLogger attaches a structured logger. The default discards every
// message.
func WithLogger(l blossomlog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithConsistencyChecks enables O(n+m) blossom-forest invariant checks
// after every stage. Meant for tests and debugging; it roughly doubles
// running time and should stay off in production use.
func WithConsistencyChecks(enabled bool) Option {
	return func(c *config) { c.consistencyChecks = enabled }
}
