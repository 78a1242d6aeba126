package wire

import (
	"crypto/sha256"
	"encoding/hex"
)

// ClockboardFormat names the clockboard payload format and doubles as the
// digest domain. The suffix changes only when payload bytes would change
// for identical input.
const ClockboardFormat = "zonebuilder/clockboard/v1"

// Digest returns the hex SHA-256 of domain, a 0x00 separator, then data.
// The separator keeps domain/data boundaries unambiguous.
func Digest(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
