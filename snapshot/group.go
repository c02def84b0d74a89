package snapshot

import (
	"context"
	"iter"

	"github.com/hupe1980/symtab/blobstore"
	"golang.org/x/sync/errgroup"
)

// Job is one snapshot written by SaveAll.
type Job struct {
	Name string
	save func(ctx context.Context, store blobstore.Store) error
}

// NewJob prepares a Save of entries under name for SaveAll.
func NewJob[K, V any](name string, entries iter.Seq2[K, V], optFns ...func(o *Options)) Job {
	return Job{
		Name: name,
		save: func(ctx context.Context, store blobstore.Store) error {
			return Save(ctx, store, name, entries, optFns...)
		},
	}
}

// SaveAll writes the jobs concurrently, running at most limit at a time
// (limit <= 0 means no limit). The first failure cancels the remaining
// jobs and is returned. The tables behind the jobs must not be mutated
// until SaveAll returns.
func SaveAll(ctx context.Context, store blobstore.Store, jobs []Job, limit int) error {
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for _, job := range jobs {
		g.Go(func() error {
			return job.save(gctx, store)
		})
	}
	return g.Wait()
}
