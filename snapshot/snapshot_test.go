package snapshot

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"testing"

	"github.com/hupe1980/symtab"
	"github.com/hupe1980/symtab/blobstore"
	"github.com/hupe1980/symtab/codec"
	"github.com/hupe1980/symtab/st"
	"github.com/hupe1980/symtab/testutil"
	"github.com/hupe1980/symtab/tree"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withCompression(c Compression) func(o *Options) {
	return func(o *Options) { o.Compression = c }
}

func sampleTable(t *testing.T, n int) *st.BinarySearch[string, int] {
	t.Helper()
	table, err := st.NewBinarySearch[string, int](st.DefaultCapacity)
	require.NoError(t, err)
	for i := range n {
		require.NoError(t, table.Add(fmt.Sprintf("key-%05d", i), i))
	}
	return table
}

func TestSaveRestore(t *testing.T) {
	ctx := context.Background()
	table := sampleTable(t, 500)

	for _, c := range []Compression{CompressionNone, CompressionLZ4, CompressionZSTD} {
		for _, cd := range []codec.Codec{codec.JSON{}, codec.GoJSON{}} {
			t.Run(c.String()+"/"+cd.Name(), func(t *testing.T) {
				store := blobstore.NewMemoryStore()
				err := Save(ctx, store, "users", table.All(), withCompression(c), func(o *Options) { o.Codec = cd })
				require.NoError(t, err)

				info, err := Stat(ctx, store, "users")
				require.NoError(t, err)
				assert.Equal(t, Version, info.Version)
				assert.Equal(t, c, info.Compression)
				assert.Equal(t, cd.Name(), info.Codec)
				assert.Equal(t, uint32(500), info.Entries)

				fresh, err := st.NewBinarySearch[string, int](st.DefaultCapacity)
				require.NoError(t, err)
				n, err := Restore(ctx, store, "users", fresh.Add)
				require.NoError(t, err)
				assert.Equal(t, 500, n)

				assert.Equal(t, slices.Collect(table.Keys()), slices.Collect(fresh.Keys()))
				v, ok := fresh.Get("key-00042")
				assert.True(t, ok)
				assert.Equal(t, 42, v)
			})
		}
	}
}

func TestSave_CompressionShrinksPayload(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()
	table := sampleTable(t, 2000)

	require.NoError(t, Save(ctx, store, "none", table.All(), withCompression(CompressionNone)))
	require.NoError(t, Save(ctx, store, "zstd", table.All(), withCompression(CompressionZSTD)))

	none, err := Stat(ctx, store, "none")
	require.NoError(t, err)
	zstd, err := Stat(ctx, store, "zstd")
	require.NoError(t, err)

	assert.Less(t, zstd.StoredSize, none.StoredSize)
	assert.Equal(t, none.RawSize, zstd.RawSize)
	assert.Equal(t, none.Checksum, zstd.Checksum)
}

func TestSave_IncompressibleFallsBackToNone(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	one := maps.All(map[int]int{1: 1})
	require.NoError(t, Save(ctx, store, "tiny", one, withCompression(CompressionLZ4)))

	info, err := Stat(ctx, store, "tiny")
	require.NoError(t, err)
	assert.Equal(t, CompressionNone, info.Compression)

	entries, err := Load[int, int](ctx, store, "tiny")
	require.NoError(t, err)
	assert.Equal(t, []Entry[int, int]{{Key: 1, Value: 1}}, entries)
}

func TestSaveRestore_BST(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewLocalStoreFs(afero.NewMemMapFs(), "/snapshots")

	src := tree.NewBST[int, string]()
	rng := testutil.NewRNG(5)
	for _, k := range rng.Perm(300) {
		require.NoError(t, src.Put(k, fmt.Sprint(k)))
	}

	require.NoError(t, Save(ctx, store, "bst/ids", src.All()))

	dst := tree.NewBST[int, string]()
	n, err := Restore(ctx, store, "bst/ids", dst.Put)
	require.NoError(t, err)
	assert.Equal(t, 300, n)
	assert.Equal(t, slices.Collect(src.Keys()), slices.Collect(dst.Keys()))

	// Ascending input degrades the restored tree to a chain.
	assert.Equal(t, 300, dst.Height())
}

func TestSave_Empty(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()
	table := sampleTable(t, 0)

	require.NoError(t, Save(ctx, store, "empty", table.All()))

	entries, err := Load[string, int](ctx, store, "empty")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLoad_Errors(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()
	table := sampleTable(t, 100)
	require.NoError(t, Save(ctx, store, "good", table.All(), withCompression(CompressionNone)))

	good, err := store.Get(ctx, "good")
	require.NoError(t, err)

	mutate := func(name string, fn func(b []byte) []byte) {
		b := fn(bytes.Clone(good))
		require.NoError(t, store.Put(ctx, name, b))
	}

	t.Run("missing", func(t *testing.T) {
		_, err := Load[string, int](ctx, store, "nope")
		assert.ErrorIs(t, err, blobstore.ErrNotFound)
	})

	t.Run("truncated", func(t *testing.T) {
		mutate("short", func(b []byte) []byte { return b[:10] })
		_, err := Load[string, int](ctx, store, "short")
		assert.ErrorIs(t, err, ErrCorrupt)
	})

	t.Run("bad magic", func(t *testing.T) {
		mutate("magic", func(b []byte) []byte { b[0] = 'X'; return b })
		_, err := Load[string, int](ctx, store, "magic")
		assert.ErrorIs(t, err, ErrCorrupt)
	})

	t.Run("future version", func(t *testing.T) {
		mutate("version", func(b []byte) []byte { b[4] = Version + 1; return b })
		_, err := Load[string, int](ctx, store, "version")
		assert.ErrorIs(t, err, ErrVersion)
	})

	t.Run("flipped payload bit", func(t *testing.T) {
		mutate("flip", func(b []byte) []byte { b[len(b)-5] ^= 0x01; return b })
		_, err := Load[string, int](ctx, store, "flip")
		assert.ErrorIs(t, err, ErrCorrupt)
	})

	t.Run("truncated payload", func(t *testing.T) {
		mutate("cut", func(b []byte) []byte { return b[:len(b)-1] })
		_, err := Load[string, int](ctx, store, "cut")
		assert.ErrorIs(t, err, ErrCorrupt)
	})

	t.Run("unknown codec", func(t *testing.T) {
		mutate("codec", func(b []byte) []byte {
			// first byte of the codec name
			b[7] = 'X'
			return b
		})
		_, err := Load[string, int](ctx, store, "codec")
		assert.ErrorIs(t, err, ErrUnknownCodec)
	})

	t.Run("wrong value type", func(t *testing.T) {
		_, err := Load[string, bool](ctx, store, "good")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrCorrupt)
	})
}

type unregistered struct{ codec.JSON }

func (unregistered) Name() string { return "unregistered" }

func TestSave_UnregisteredCodec(t *testing.T) {
	store := blobstore.NewMemoryStore()
	err := Save(context.Background(), store, "x", maps.All(map[int]int{}), func(o *Options) { o.Codec = unregistered{} })
	assert.ErrorIs(t, err, ErrUnknownCodec)
	assert.Zero(t, store.Len())
}

func TestRestore_PutFailureStops(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()
	require.NoError(t, Save(ctx, store, "t", sampleTable(t, 10).All()))

	boom := errors.New("boom")
	calls := 0
	n, err := Restore(ctx, store, "t", func(string, int) error {
		calls++
		if calls == 4 {
			return boom
		}
		return nil
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 3, n)
}

func TestRestore_NilKeyRejected(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	one, two := 1, 2
	src := func(yield func(*int, int) bool) {
		_ = yield(&one, 1) && yield(nil, 0) && yield(&two, 2)
	}
	require.NoError(t, Save(ctx, store, "ptr", src))

	table := st.NewSequentialSearch[*int, int]()
	n, err := Restore(ctx, store, "ptr", table.Add)
	assert.ErrorIs(t, err, symtab.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "entry 1")
	assert.Equal(t, 1, n)
	assert.Equal(t, 1, table.Len())
}

func TestSaveRestore_LogsAndMetrics(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	var buf bytes.Buffer
	logger := symtab.NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	metrics := &symtab.BasicMetricsCollector{}
	observe := func(o *Options) {
		o.Logger = logger
		o.Metrics = metrics
	}

	require.NoError(t, Save(ctx, store, "obs", sampleTable(t, 20).All(), observe))
	_, err := Restore(ctx, store, "obs", func(string, int) error { return nil }, observe)
	require.NoError(t, err)
	_, err = Restore(ctx, store, "missing", func(string, int) error { return nil }, observe)
	require.Error(t, err)

	stats := metrics.GetStats()
	assert.Equal(t, int64(1), stats.SnapshotCount)
	assert.Positive(t, stats.SnapshotBytes)
	assert.Equal(t, int64(2), stats.RestoreCount)
	assert.Equal(t, int64(1), stats.RestoreErrors)
	assert.Equal(t, int64(20), stats.RestoreEntries)

	out := buf.String()
	assert.Contains(t, out, "snapshot saved")
	assert.Contains(t, out, "snapshot restored")
	assert.Contains(t, out, "snapshot restore failed")
	assert.True(t, strings.Contains(out, "name=obs"))
}

func TestSave_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := blobstore.NewMemoryStore()
	err := Save(ctx, store, "x", sampleTable(t, 3).All())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, store.Len())
}

func TestSaveAll(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	a := sampleTable(t, 50)
	b := tree.NewBST[int, int]()
	for i := range 40 {
		require.NoError(t, b.Put(i, i*i))
	}

	jobs := []Job{
		NewJob("a", a.All()),
		NewJob("b", b.All(), withCompression(CompressionLZ4)),
	}
	for i := range 6 {
		jobs = append(jobs, NewJob(fmt.Sprintf("c/%d", i), a.All()))
	}
	require.NoError(t, SaveAll(ctx, store, jobs, 2))

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, names, 8)

	entries, err := Load[int, int](ctx, store, "b")
	require.NoError(t, err)
	require.Len(t, entries, 40)
	assert.Equal(t, Entry[int, int]{Key: 7, Value: 49}, entries[7])
}

type failingStore struct {
	*blobstore.MemoryStore
	fail string
}

func (s failingStore) Put(ctx context.Context, name string, data []byte) error {
	if name == s.fail {
		return errors.New("disk full")
	}
	return s.MemoryStore.Put(ctx, name, data)
}

func TestSaveAll_FirstErrorWins(t *testing.T) {
	store := failingStore{MemoryStore: blobstore.NewMemoryStore(), fail: "bad"}
	table := sampleTable(t, 5)

	err := SaveAll(context.Background(), store, []Job{
		NewJob("good", table.All()),
		NewJob("bad", table.All()),
	}, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Contains(t, err.Error(), "bad")
}

func BenchmarkSave(b *testing.B) {
	ctx := context.Background()
	table, _ := st.NewBinarySearch[string, int](st.DefaultCapacity)
	for i := range 10_000 {
		_ = table.Add(fmt.Sprintf("key-%05d", i), i)
	}
	for _, c := range []Compression{CompressionNone, CompressionLZ4, CompressionZSTD} {
		b.Run(c.String(), func(b *testing.B) {
			store := blobstore.NewMemoryStore()
			b.ReportAllocs()
			for b.Loop() {
				if err := Save(ctx, store, "bench", table.All(), withCompression(c)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
