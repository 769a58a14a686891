package trace

import (
	"crypto/sha256"
	"encoding/hex"
)

// Domain prefixes for content digests. The version suffix leaves room to
// change the encoding later without colliding with old digests.
const (
	DomainSnapshot = "arraykit/snapshot/v1"
	DomainEvent    = "arraykit/event/v1"
)

// Digest returns the hex SHA-256 of domain, a 0x00 separator, and data.
func Digest(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
