// Package plugin defines plugin identity metadata and the processor
// contract a host integration layer drives.
package plugin

import (
	"hash/fnv"
)

// Info contains plugin metadata
type Info struct {
	ID       string // Unique plugin identifier (e.g., "com.example.myplugin")
	Name     string // Display name
	Version  string // Semantic version (e.g., "1.0.0")
	Vendor   string // Company/developer name
	Category string // Plugin category (e.g., "Fx", "Fx|Tools")
	URL      string
	Email    string
}

// UID derives a stable 16-byte class identifier from the string ID.
func (i Info) UID() [16]byte {
	h := fnv.New128a()
	h.Write([]byte(i.ID))

	var uid [16]byte
	copy(uid[:], h.Sum(nil))
	return uid
}
