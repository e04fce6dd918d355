package fieldcodec

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// SubAudioKind discriminates the sub-audio tagged union.
type SubAudioKind int

const (
	SubAudioOff SubAudioKind = iota
	SubAudioCTCSS
	SubAudioDCS
)

// SubAudio is Off | CTCSS(hz) | DCS(code). Only the field matching Kind is
// meaningful.
type SubAudio struct {
	Kind    SubAudioKind
	CTCSSHz float64 // one decimal place
	DCSCode string  // "D" + 3 digits + "N"|"I", e.g. "D023N"
}

// Off is the zero-value sentinel sub-audio setting.
var Off = SubAudio{Kind: SubAudioOff}

// CTCSS constructs a CTCSS sub-audio value.
func CTCSS(hz float64) SubAudio {
	return SubAudio{Kind: SubAudioCTCSS, CTCSSHz: math.Round(hz*10) / 10}
}

// DCS constructs a DCS sub-audio value from a table index (0..104) and
// inverted flag.
func DCS(index int, inverted bool) (SubAudio, error) {
	if index < 0 || index >= len(dcsCodes) {
		return SubAudio{}, fmt.Errorf("fieldcodec: DCS index %d out of range", index)
	}
	suffix := "N"
	if inverted {
		suffix = "I"
	}
	return SubAudio{Kind: SubAudioDCS, DCSCode: "D" + dcsCodes[index] + suffix}, nil
}

// DecodeSubAudio decodes the 2-byte on-wire sub-audio field. Byte0==0 &&
// byte1==0 means Off. When byte1==0 and 1<=byte0<=210, the DCS
// interpretation wins over CTCSS (decoder precedence rule). Otherwise the
// bytes are a little-endian CTCSS value in tenths of a Hz.
func DecodeSubAudio(b []byte) (SubAudio, error) {
	if len(b) != 2 {
		return SubAudio{}, fmt.Errorf("fieldcodec: sub-audio field must be 2 bytes, got %d", len(b))
	}
	if b[0] == 0x00 && b[1] == 0x00 {
		return Off, nil
	}
	if b[1] == 0x00 && b[0] >= 1 && b[0] <= 210 {
		i := int(b[0]) - 1
		if i < len(dcsCodes) {
			return DCS(i, false)
		}
		return DCS(i-len(dcsCodes), true)
	}
	raw := uint16(b[0]) | uint16(b[1])<<8
	return CTCSS(float64(raw) / 10.0), nil
}

// EncodeSubAudio encodes sa into its 2-byte on-wire form.
func EncodeSubAudio(sa SubAudio) ([]byte, error) {
	switch sa.Kind {
	case SubAudioOff:
		return []byte{0x00, 0x00}, nil
	case SubAudioDCS:
		idx, inverted, err := parseDCSCode(sa.DCSCode)
		if err != nil {
			return nil, err
		}
		b0 := idx + 1
		if inverted {
			b0 += len(dcsCodes)
		}
		return []byte{byte(b0), 0x00}, nil
	case SubAudioCTCSS:
		raw := uint16(math.Round(sa.CTCSSHz * 10))
		return []byte{byte(raw), byte(raw >> 8)}, nil
	default:
		return nil, fmt.Errorf("fieldcodec: unknown sub-audio kind %d", sa.Kind)
	}
}

func parseDCSCode(code string) (index int, inverted bool, err error) {
	if len(code) != 5 || code[0] != 'D' {
		return 0, false, fmt.Errorf("fieldcodec: malformed DCS code %q", code)
	}
	digits := code[1:4]
	suffix := code[4]
	if suffix != 'N' && suffix != 'I' {
		return 0, false, fmt.Errorf("fieldcodec: malformed DCS code %q", code)
	}
	idx, ok := dcsIndex[digits]
	if !ok {
		return 0, false, fmt.Errorf("fieldcodec: unknown DCS code %q", code)
	}
	return idx, suffix == 'I', nil
}

// FormatSubAudio renders sa as the document-facing string: "OFF",
// "CTCSS 88.5", or "D023N"/"D023I".
func FormatSubAudio(sa SubAudio) string {
	switch sa.Kind {
	case SubAudioCTCSS:
		return "CTCSS " + strconv.FormatFloat(sa.CTCSSHz, 'f', 1, 64)
	case SubAudioDCS:
		return sa.DCSCode
	default:
		return "OFF"
	}
}

// ParseSubAudio parses the document-facing string form back into a
// SubAudio.
func ParseSubAudio(s string) (SubAudio, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "" || strings.EqualFold(s, "OFF"):
		return Off, nil
	case strings.HasPrefix(strings.ToUpper(s), "CTCSS"):
		hzStr := strings.TrimSpace(s[len("CTCSS"):])
		hz, err := strconv.ParseFloat(hzStr, 64)
		if err != nil {
			return SubAudio{}, fmt.Errorf("fieldcodec: malformed CTCSS value %q: %w", s, err)
		}
		return CTCSS(hz), nil
	case len(s) == 5 && (s[0] == 'D' || s[0] == 'd'):
		idx, inverted, err := parseDCSCode("D" + s[1:4] + strings.ToUpper(s[4:5]))
		if err != nil {
			return SubAudio{}, err
		}
		return DCS(idx, inverted)
	default:
		return SubAudio{}, fmt.Errorf("fieldcodec: malformed sub-audio value %q", s)
	}
}
