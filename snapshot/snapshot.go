package snapshot

import (
	"context"
	"fmt"
	"iter"
	"time"

	"github.com/hupe1980/symtab/blobstore"
	"github.com/hupe1980/symtab/codec"
	"github.com/hupe1980/symtab/internal/conv"
	"github.com/hupe1980/symtab/internal/hash"
)

// Entry is a single key/value pair in a snapshot.
type Entry[K, V any] struct {
	Key   K `json:"k"`
	Value V `json:"v"`
}

// Save writes the sequence of entries to store under name. The sequence is
// consumed once, in order; Load returns the entries in the same order.
func Save[K, V any](ctx context.Context, store blobstore.Store, name string, entries iter.Seq2[K, V], optFns ...func(o *Options)) (err error) {
	opts := buildOptions(optFns)
	start := time.Now()
	n, size := 0, 0

	defer func() {
		opts.Logger.LogSnapshot(ctx, name, n, err)
		opts.Metrics.RecordSnapshot(n, size, time.Since(start), err)
	}()

	data, n, err := encode(entries, opts)
	if err != nil {
		return fmt.Errorf("snapshot: encode %s: %w", name, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := store.Put(ctx, name, data); err != nil {
		return fmt.Errorf("snapshot: put %s: %w", name, err)
	}
	size = len(data)
	return nil
}

// Load reads and decodes the snapshot stored under name.
func Load[K, V any](ctx context.Context, store blobstore.Store, name string) ([]Entry[K, V], error) {
	data, err := store.Get(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("snapshot: get %s: %w", name, err)
	}
	entries, err := decode[K, V](data)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %s: %w", name, err)
	}
	return entries, nil
}

// Restore loads the snapshot stored under name and passes every entry to
// put in stored order. It returns the number of entries accepted by put.
// A failing put stops the restore.
func Restore[K, V any](ctx context.Context, store blobstore.Store, name string, put func(K, V) error, optFns ...func(o *Options)) (n int, err error) {
	opts := buildOptions(optFns)
	start := time.Now()

	defer func() {
		opts.Logger.LogRestore(ctx, name, n, err)
		opts.Metrics.RecordRestore(n, time.Since(start), err)
	}()

	entries, err := Load[K, V](ctx, store, name)
	if err != nil {
		return 0, err
	}
	for i, e := range entries {
		if err := ctx.Err(); err != nil {
			return n, err
		}
		if err := put(e.Key, e.Value); err != nil {
			return n, fmt.Errorf("snapshot: restore %s entry %d: %w", name, i, err)
		}
		n++
	}
	return n, nil
}

// Stat reads the header of a stored snapshot.
func Stat(ctx context.Context, store blobstore.Store, name string) (Info, error) {
	data, err := store.Get(ctx, name)
	if err != nil {
		return Info{}, fmt.Errorf("snapshot: get %s: %w", name, err)
	}
	h, _, err := parseHeader(data)
	if err != nil {
		return Info{}, fmt.Errorf("snapshot: %s: %w", name, err)
	}
	return h, nil
}

func encode[K, V any](entries iter.Seq2[K, V], opts Options) ([]byte, int, error) {
	name := opts.Codec.Name()
	if _, ok := codec.ByName(name); !ok {
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
	}

	list := make([]Entry[K, V], 0)
	for k, v := range entries {
		list = append(list, Entry[K, V]{Key: k, Value: v})
	}
	count, err := conv.ToUint32(len(list))
	if err != nil {
		return nil, 0, err
	}

	raw, err := opts.Codec.Marshal(list)
	if err != nil {
		return nil, 0, err
	}
	rawLen, err := conv.ToUint32(len(raw))
	if err != nil {
		return nil, 0, err
	}

	payload, used, err := compress(raw, opts.Compression)
	if err != nil {
		return nil, 0, err
	}

	h := Info{
		Version:     Version,
		Compression: used,
		Codec:       name,
		Entries:     count,
		RawSize:     rawLen,
		Checksum:    hash.CRC32C(raw),
	}
	buf := make([]byte, 0, minHeader+len(name)+len(payload))
	buf = appendHeader(buf, h)
	buf = append(buf, payload...)
	return buf, len(list), nil
}

func decode[K, V any](data []byte) ([]Entry[K, V], error) {
	h, payload, err := parseHeader(data)
	if err != nil {
		return nil, err
	}

	c, ok := codec.ByName(h.Codec)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, h.Codec)
	}

	rawLen, err := conv.ToInt(h.RawSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	raw, err := decompress(payload, h.Compression, rawLen)
	if err != nil {
		return nil, err
	}
	if !hash.Verify(raw, h.Checksum) {
		return nil, fmt.Errorf("%w: checksum mismatch", ErrCorrupt)
	}

	var entries []Entry[K, V]
	if err := c.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decode entries with %s: %w", h.Codec, err)
	}
	if uint64(len(entries)) != uint64(h.Entries) {
		return nil, fmt.Errorf("%w: %d entries, header says %d", ErrCorrupt, len(entries), h.Entries)
	}
	return entries, nil
}
