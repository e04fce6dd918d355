// Package blocks implements the per-block binary codecs (L5): exact
// byte/nibble layouts for each of the codeplug blocks, built on top of
// internal/fieldcodec's primitives. Every codec defines the meaning of
// every byte it owns; all other bytes in a record remain 0xFF.
package blocks

// allFF reports whether every byte of b is 0xFF.
func allFF(b []byte) bool {
	for _, c := range b {
		if c != 0xFF {
			return false
		}
	}
	return true
}

// allZero reports whether every byte of b is 0x00.
func allZero(b []byte) bool {
	for _, c := range b {
		if c != 0x00 {
			return false
		}
	}
	return true
}

// fillFF fills b entirely with the 0xFF "unused" sentinel byte.
func fillFF(b []byte) {
	for i := range b {
		b[i] = 0xFF
	}
}
