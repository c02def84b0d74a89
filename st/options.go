package st

import "github.com/hupe1980/symtab"

// DefaultCapacity is the initial capacity used by callers that have no
// better estimate.
const DefaultCapacity = 4

// Options configures a BinarySearch table.
type Options struct {
	// MinCapacity is the floor below which removals never shrink storage.
	// Storage is halved only when the half is still >= MinCapacity.
	// Zero selects the initial capacity (at least 1).
	// A floor above the initial capacity raises the initial capacity.
	MinCapacity int

	// Logger receives a debug record for every reallocation.
	// Nil selects symtab.NoopLogger().
	Logger *symtab.Logger

	// Metrics is notified about every reallocation.
	// Nil selects symtab.NoopMetricsCollector.
	Metrics symtab.MetricsCollector
}

// DefaultOptions returns default table options.
var DefaultOptions = Options{
	MinCapacity: 0,
}

func (o *Options) normalize(capacity int) int {
	if o.MinCapacity <= 0 {
		o.MinCapacity = max(capacity, 1)
	}
	if o.Logger == nil {
		o.Logger = symtab.NoopLogger()
	}
	if o.Metrics == nil {
		o.Metrics = symtab.NoopMetricsCollector{}
	}
	return max(capacity, o.MinCapacity)
}
