package plan

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns a short hex digest of the ordered plan.
//
// It hashes with BLAKE2b-256 and truncates to 10 bytes (20 hex chars). Any
// change of name, directory or order yields a different fingerprint.
func Fingerprint(pkgs []Package) string {
	h, _ := blake2b.New256(nil)
	for _, p := range pkgs {
		h.Write([]byte(p.Name))
		h.Write([]byte{0})
		h.Write([]byte(p.Dir))
		h.Write([]byte{'\n'})
	}
	sum := h.Sum(nil)
	return hex.EncodeToString(sum[:10])
}
