package fieldcodec

import (
	"fmt"

	"golang.org/x/text/encoding/simplifiedchinese"
)

// gb2312Encoding is the one-shot package-level codec registration called
// out in spec.md's design notes: GB2312 text is a subset of GBK (same
// byte sequences for every GB2312-range character), and GBK is what
// golang.org/x/text actually exposes, so it is used directly rather than
// hand-rolling a GB2312-only table.
var gb2312Encoding = simplifiedchinese.GBK

// EncodeGB2312Field encodes s as GB2312(GBK) bytes into a field of exactly
// fieldLen bytes: the encoded name, then a single 0x00 terminator if a
// byte remains, then 0xFF padding for whatever is left.
func EncodeGB2312Field(s string, fieldLen int) ([]byte, error) {
	raw, err := gb2312Encoding.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("fieldcodec: encode GB2312 %q: %w", s, err)
	}
	if len(raw) > fieldLen {
		return nil, fmt.Errorf("fieldcodec: %q encodes to %d bytes, exceeds field length %d", s, len(raw), fieldLen)
	}

	out := make([]byte, fieldLen)
	n := copy(out, raw)
	if n < fieldLen {
		out[n] = 0x00
		n++
	}
	for i := n; i < fieldLen; i++ {
		out[i] = 0xFF
	}
	return out, nil
}

// DecodeGB2312Field decodes a fixed-width GB2312(GBK) field, stopping at
// the first 0x00 or 0xFF byte.
func DecodeGB2312Field(b []byte) (string, error) {
	end := len(b)
	for i, c := range b {
		if c == 0x00 || c == 0xFF {
			end = i
			break
		}
	}
	if end == 0 {
		return "", nil
	}
	dec, err := gb2312Encoding.NewDecoder().Bytes(b[:end])
	if err != nil {
		return "", fmt.Errorf("fieldcodec: decode GB2312 field: %w", err)
	}
	return string(dec), nil
}
