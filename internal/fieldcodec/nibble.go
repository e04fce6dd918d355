package fieldcodec

import (
	"fmt"
	"strings"
)

// DtmfAlphabet is the digit alphabet used by DTMF fields (current ID,
// code groups).
const DtmfAlphabet = "0123456789ABCD*#"

// KeyAlphabet is the digit alphabet used by encryption-key hex fields.
const KeyAlphabet = "0123456789ABCDEF"

// EncodeNibbleString encodes s (every character must be in alphabet) as a
// nibble-indexed string into a field of exactly fieldLen bytes: one byte
// per character (low nibble holds the alphabet index, high nibble is
// unused and written as 0), then 0xFF for every unused byte, which also
// terminates the string on decode.
func EncodeNibbleString(s, alphabet string, fieldLen int) ([]byte, error) {
	if len(s) > fieldLen {
		return nil, fmt.Errorf("fieldcodec: %q exceeds field length %d", s, fieldLen)
	}
	out := make([]byte, fieldLen)
	for i := 0; i < fieldLen; i++ {
		if i >= len(s) {
			out[i] = 0xFF
			continue
		}
		idx := strings.IndexByte(alphabet, s[i])
		if idx < 0 {
			return nil, fmt.Errorf("fieldcodec: character %q not in alphabet %q", s[i], alphabet)
		}
		out[i] = byte(idx)
	}
	return out, nil
}

// DecodeNibbleString decodes a nibble-indexed digit string, stopping at
// the first 0xFF byte.
func DecodeNibbleString(b []byte, alphabet string) (string, error) {
	var sb strings.Builder
	for _, by := range b {
		if by == 0xFF {
			break
		}
		idx := int(by & 0x0F)
		if idx >= len(alphabet) {
			return "", fmt.Errorf("fieldcodec: nibble index %d out of range for alphabet %q", idx, alphabet)
		}
		sb.WriteByte(alphabet[idx])
	}
	return sb.String(), nil
}
