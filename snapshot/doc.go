// Package snapshot persists the contents of a symbol table to a blob store
// and restores it.
//
// A snapshot is a self-describing blob: a short header naming the format
// version, the codec and the compression, followed by the encoded entries.
// The header carries a CRC32-C of the uncompressed payload, so truncated or
// bit-flipped blobs are reported as ErrCorrupt instead of decoding garbage.
//
//	store := blobstore.NewLocalStore("/var/lib/app")
//	err := snapshot.Save(ctx, store, "users", table.All(),
//		func(o *snapshot.Options) { o.Compression = snapshot.CompressionLZ4 })
//
//	fresh, _ := st.NewBinarySearch[string, int](st.DefaultCapacity)
//	n, err := snapshot.Restore(ctx, store, "users", fresh.Add)
//
// Any table whose All method yields iter.Seq2 can be saved, and any insert
// method of the form func(K, V) error can restore.
package snapshot
