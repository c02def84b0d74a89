package snapshot

import (
	"github.com/hupe1980/symtab"
	"github.com/hupe1980/symtab/codec"
)

// Options configures Save, Restore and SaveAll.
type Options struct {
	// Codec encodes the entries. It must be registered with codec.Register
	// so that Load can find it again by name.
	Codec codec.Codec
	// Compression is applied to the encoded entries.
	Compression Compression
	// Logger receives one record per save or restore.
	Logger *symtab.Logger
	// Metrics records sizes, durations and failures.
	Metrics symtab.MetricsCollector
}

// DefaultOptions are used when no option functions are given.
var DefaultOptions = Options{
	Codec:       codec.Default,
	Compression: CompressionZSTD,
	Logger:      symtab.NoopLogger(),
	Metrics:     symtab.NoopMetricsCollector{},
}

func buildOptions(optFns []func(o *Options)) Options {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Codec == nil {
		opts.Codec = codec.Default
	}
	if opts.Logger == nil {
		opts.Logger = symtab.NoopLogger()
	}
	if opts.Metrics == nil {
		opts.Metrics = symtab.NoopMetricsCollector{}
	}
	return opts
}
