package snapshot

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeader_RoundTrip(t *testing.T) {
	h := Info{
		Version:     Version,
		Compression: CompressionZSTD,
		Codec:       "go-json",
		Entries:     42,
		RawSize:     1 << 20,
		Checksum:    0xdeadbeef,
	}
	data := appendHeader(nil, h)
	data = append(data, "payload"...)

	got, payload, err := parseHeader(data)
	require.NoError(t, err)

	h.StoredSize = len(data)
	assert.Equal(t, h, got)
	assert.Equal(t, []byte("payload"), payload)
}

func TestHeader_CodecLengthBeyondData(t *testing.T) {
	data := appendHeader(nil, Info{Version: Version, Codec: "json"})
	data[6] = 200

	_, _, err := parseHeader(data)
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestHeader_ZeroVersion(t *testing.T) {
	data := appendHeader(nil, Info{Version: 0, Codec: "json"})

	_, _, err := parseHeader(data)
	assert.ErrorIs(t, err, ErrVersion)
}

func TestCompression_String(t *testing.T) {
	assert.Equal(t, "none", CompressionNone.String())
	assert.Equal(t, "lz4", CompressionLZ4.String())
	assert.Equal(t, "zstd", CompressionZSTD.String())
	assert.Equal(t, "compression(9)", Compression(9).String())
}

func TestCompress_RoundTrip(t *testing.T) {
	raw := bytes.Repeat([]byte(`{"k":"key","v":12345},`), 500)

	for _, c := range []Compression{CompressionLZ4, CompressionZSTD} {
		t.Run(c.String(), func(t *testing.T) {
			payload, used, err := compress(raw, c)
			require.NoError(t, err)
			assert.Equal(t, c, used)
			assert.Less(t, len(payload), len(raw))

			got, err := decompress(payload, used, len(raw))
			require.NoError(t, err)
			assert.Equal(t, raw, got)

			_, err = decompress(payload, used, len(raw)+1)
			assert.ErrorIs(t, err, ErrCorrupt)
		})
	}
}

func TestCompress_UnknownKind(t *testing.T) {
	_, _, err := compress([]byte("abc"), Compression(7))
	assert.ErrorIs(t, err, ErrCorrupt)

	_, err = decompress([]byte("abc"), Compression(7), 3)
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestDecompress_ImplausibleLZ4Size(t *testing.T) {
	_, err := decompress([]byte{0x10}, CompressionLZ4, 1<<30)
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestDecompress_GarbageZSTD(t *testing.T) {
	_, err := decompress([]byte("definitely not zstd"), CompressionZSTD, 10)
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestDecompress_ZSTDFrameSizeDisagrees(t *testing.T) {
	raw := bytes.Repeat([]byte("0123456789"), 1000)
	enc := getZstdEncoder()
	payload := enc.EncodeAll(raw, nil)
	zstdEncoderPool.Put(enc)

	// The frame declares 10000 bytes; a header claiming 4 GiB is rejected
	// before anything is decoded.
	_, err := decompress(payload, CompressionZSTD, 1<<32-1)
	assert.ErrorIs(t, err, ErrCorrupt)
	assert.Contains(t, err.Error(), "frame size")
}

func TestDecompress_ZSTDWithoutFrameSize(t *testing.T) {
	// Small inputs are encoded without a frame content size.
	raw := bytes.Repeat([]byte("ab"), 100)
	enc := getZstdEncoder()
	payload := enc.EncodeAll(raw, nil)
	zstdEncoderPool.Put(enc)

	got, err := decompress(payload, CompressionZSTD, len(raw))
	require.NoError(t, err)
	assert.Equal(t, raw, got)

	_, err = decompress(payload, CompressionZSTD, 10)
	assert.ErrorIs(t, err, ErrCorrupt)

	_, err = decompress(payload, CompressionZSTD, len(raw)+50)
	assert.ErrorIs(t, err, ErrCorrupt)
}
