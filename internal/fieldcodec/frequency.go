package fieldcodec

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
)

// DecodeFrequencyBytes reads the 4-byte little-endian raw frequency value
// (round(MHz x 100000), i.e. units of 10Hz) from b.
func DecodeFrequencyBytes(b []byte) (uint32, error) {
	if len(b) != 4 {
		return 0, fmt.Errorf("fieldcodec: frequency field must be 4 bytes, got %d", len(b))
	}
	return binary.LittleEndian.Uint32(b), nil
}

// EncodeFrequencyBytes writes raw as the 4-byte little-endian on-wire
// value.
func EncodeFrequencyBytes(raw uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, raw)
	return b
}

// FormatFrequencyMHz renders raw as a decimal MHz string with six fraction
// digits, e.g. "438.500000". Exact integer arithmetic is used throughout
// so the conversion never loses precision to floating point.
func FormatFrequencyMHz(raw uint32) string {
	hz := uint64(raw) * 10
	mhz := hz / 1_000_000
	frac := hz % 1_000_000
	return fmt.Sprintf("%d.%06d", mhz, frac)
}

// ParseFrequencyMHz parses a decimal MHz string (up to 6 fraction digits)
// into the raw on-wire value, rounding to the nearest 10Hz increment.
func ParseFrequencyMHz(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	intPart, fracPart, _ := strings.Cut(s, ".")
	if len(fracPart) > 6 {
		return 0, fmt.Errorf("fieldcodec: frequency %q has more than 6 fraction digits", s)
	}
	for len(fracPart) < 6 {
		fracPart += "0"
	}
	if intPart == "" {
		intPart = "0"
	}
	hz, err := strconv.ParseUint(intPart+fracPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("fieldcodec: malformed frequency %q: %w", s, err)
	}
	raw := (hz + 5) / 10
	if raw > 0xFFFFFFFF {
		return 0, fmt.Errorf("fieldcodec: frequency %q out of range", s)
	}
	return uint32(raw), nil
}
