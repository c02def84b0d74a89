package snapshot

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Version is the snapshot format version written by this package.
const Version uint8 = 1

// Layout (little endian):
//
//	magic "SYMT" | version u8 | compression u8 | codecLen u8 | codec name |
//	entries u32 | rawLen u32 | crc32c(raw) u32 | payload
const (
	magic     = "SYMT"
	preamble  = len(magic) + 3
	trailer   = 12
	minHeader = preamble + trailer
)

var (
	// ErrCorrupt is returned when a snapshot fails structural or checksum
	// validation.
	ErrCorrupt = errors.New("snapshot: corrupt")
	// ErrUnknownCodec is returned when a snapshot names a codec that is not
	// registered.
	ErrUnknownCodec = errors.New("snapshot: unknown codec")
	// ErrVersion is returned for snapshots written by a newer format.
	ErrVersion = errors.New("snapshot: unsupported version")
)

// Info describes a stored snapshot without decoding its entries.
type Info struct {
	Version     uint8
	Compression Compression
	Codec       string
	Entries     uint32
	RawSize     uint32
	StoredSize  int
	Checksum    uint32
}

func appendHeader(dst []byte, h Info) []byte {
	dst = append(dst, magic...)
	dst = append(dst, h.Version, byte(h.Compression), byte(len(h.Codec)))
	dst = append(dst, h.Codec...)
	dst = binary.LittleEndian.AppendUint32(dst, h.Entries)
	dst = binary.LittleEndian.AppendUint32(dst, h.RawSize)
	dst = binary.LittleEndian.AppendUint32(dst, h.Checksum)
	return dst
}

// parseHeader validates the header and returns it with the payload.
func parseHeader(data []byte) (Info, []byte, error) {
	var h Info
	if len(data) < minHeader {
		return h, nil, fmt.Errorf("%w: %d bytes is too short", ErrCorrupt, len(data))
	}
	if string(data[:len(magic)]) != magic {
		return h, nil, fmt.Errorf("%w: bad magic %q", ErrCorrupt, data[:len(magic)])
	}

	h.Version = data[4]
	if h.Version == 0 || h.Version > Version {
		return h, nil, fmt.Errorf("%w: %d", ErrVersion, h.Version)
	}
	h.Compression = Compression(data[5])

	codecLen := int(data[6])
	if len(data) < minHeader+codecLen {
		return h, nil, fmt.Errorf("%w: truncated header", ErrCorrupt)
	}
	h.Codec = string(data[preamble : preamble+codecLen])

	rest := data[preamble+codecLen:]
	h.Entries = binary.LittleEndian.Uint32(rest[0:])
	h.RawSize = binary.LittleEndian.Uint32(rest[4:])
	h.Checksum = binary.LittleEndian.Uint32(rest[8:])
	h.StoredSize = len(data)

	return h, rest[trailer:], nil
}
