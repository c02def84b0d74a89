package minio

import (
	"context"
	"errors"
	"testing"

	"github.com/hupe1980/symtab/blobstore"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsNotFound(t *testing.T) {
	assert.True(t, isNotFound(minio.ErrorResponse{Code: "NoSuchKey"}))
	assert.True(t, isNotFound(minio.ErrorResponse{Code: "NotFound"}))
	assert.False(t, isNotFound(minio.ErrorResponse{Code: "AccessDenied"}))
	assert.False(t, isNotFound(errors.New("boom")))
}

func TestStore_Key(t *testing.T) {
	s := NewStore(nil, "bucket", "tables/")
	assert.Equal(t, "tables/users", s.key("users"))
	assert.Equal(t, "tables", s.key(""))

	err := s.mapErr("get", "users", minio.ErrorResponse{Code: "NoSuchKey"})
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}

func TestStore_PutInvalidName(t *testing.T) {
	s := NewStore(nil, "bucket", "")
	assert.ErrorIs(t, s.Put(context.Background(), "../x", nil), blobstore.ErrInvalidName)
}

// TestMinioStore_Integration requires a running MinIO instance.
// Skip if not available.
func TestMinioStore_Integration(t *testing.T) {
	endpoint := "localhost:9000"
	accessKey := "minioadmin"
	secretKey := "minioadmin"
	bucket := "test-symtab"

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: false,
	})
	if err != nil {
		t.Skipf("MinIO client creation failed: %v", err)
	}

	ctx := context.Background()

	// Check if MinIO is reachable
	_, err = client.ListBuckets(ctx)
	if err != nil {
		t.Skipf("MinIO not available: %v", err)
	}

	// Ensure bucket exists
	exists, err := client.BucketExists(ctx, bucket)
	require.NoError(t, err)
	if !exists {
		err = client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{})
		require.NoError(t, err)
	}

	store := NewStore(client, bucket, "test-prefix/")

	data := []byte("hello minio world")
	require.NoError(t, store.Put(ctx, "test.snap", data))

	got, err := store.Get(ctx, "test.snap")
	require.NoError(t, err)
	assert.Equal(t, data, got)

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Contains(t, names, "test.snap")

	require.NoError(t, store.Delete(ctx, "test.snap"))
	require.NoError(t, store.Delete(ctx, "test.snap"))

	_, err = store.Get(ctx, "test.snap")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}
