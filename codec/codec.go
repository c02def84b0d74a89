// Package codec encodes the key/value entries written by snapshots.
//
// Snapshot headers record the codec name, so a snapshot can only be read
// back by a codec registered under the same name.
package codec

import (
	"fmt"
	"sort"
	"sync"
)

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// Default is the codec used for new snapshots.
var Default Codec = GoJSON{}

var (
	mu       sync.RWMutex
	registry = map[string]Codec{
		JSON{}.Name():   JSON{},
		GoJSON{}.Name(): GoJSON{},
	}
)

// Register makes c available to ByName. Names are limited to 255 bytes
// because snapshot headers store them with a one byte length prefix.
func Register(c Codec) error {
	name := c.Name()
	if name == "" || len(name) > 255 {
		return fmt.Errorf("codec: invalid name %q", name)
	}

	mu.Lock()
	defer mu.Unlock()

	if _, dup := registry[name]; dup {
		return fmt.Errorf("codec: %q already registered", name)
	}
	registry[name] = c
	return nil
}

// ByName returns a registered codec by its stable name.
func ByName(name string) (Codec, bool) {
	mu.RLock()
	defer mu.RUnlock()

	c, ok := registry[name]
	return c, ok
}

// Names returns the registered codec names in sorted order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
