package blocks

import (
	"fmt"

	"github.com/zardoz99/rt5d/internal/fieldcodec"
)

// ChannelRecordSize is the fixed size of one channel record.
const ChannelRecordSize = 64

// Power is a channel's transmit power level.
type Power int

const (
	PowerLow Power = iota
	PowerMid
	PowerHigh
)

// ChannelKind distinguishes an analog FM channel from a DMR channel.
type ChannelKind int

const (
	ChannelDMR ChannelKind = iota
	ChannelAnalog
)

// DMRMode selects Tier I (direct, no repeater timeslots) or Tier II.
type DMRMode int

const (
	DMRTierI DMRMode = iota
	DMRTierII
)

const (
	chOffRxFreq     = 0
	chOffTxFreq     = 4
	chOffRxSubAudio = 8
	chOffTxSubAudio = 10
	chOffPower      = 12
	chOffFlags      = 13
	chOffKind       = 14
	chOffDMRMode    = 15
	chOffColorCode  = 16
	chOffTimeSlot   = 17
	chOffFHSS       = 28 // 28,29,30: packed digits; 31: valid flag
	chOffName       = 32
	chNameLen       = 10

	chFlagScanAdd = 1 << 0
	chFlagWide    = 1 << 1
)

// Channel is one memory channel, either analog FM or DMR.
type Channel struct {
	RxFreq    uint32 // raw 10Hz units, see fieldcodec.DecodeFrequencyBytes
	TxFreq    uint32
	RxTone    fieldcodec.SubAudio
	TxTone    fieldcodec.SubAudio
	Power     Power
	ScanAdd   bool
	Wide      bool // wideband FM; narrowband if false
	Kind      ChannelKind
	DMRMode   DMRMode // only meaningful when Kind == ChannelDMR
	ColorCode int     // 0-15, DMR only
	TimeSlot  int     // 1 or 2, DMR only
	FHSS      string  // 6 uppercase hex digits, or "" if unused
	Name      string  // up to 10 bytes GB2312
}

const fhssHexDigits = "0123456789ABCDEF"

// decodeFHSS unpacks the 6-hex-digit FHSS seed from bytes 28-31. The digits
// are packed in reversed nibble order: byte28 = (d4<<4)|d5, byte29 =
// (d2<<4)|d3, byte30 = (d0<<4)|d1; byte31 is 0x00 when the seed is valid,
// 0xFF when unused.
func decodeFHSS(b []byte) string {
	if b[3] == 0xFF {
		return ""
	}
	d4 := b[0] >> 4
	d5 := b[0] & 0x0F
	d2 := b[1] >> 4
	d3 := b[1] & 0x0F
	d0 := b[2] >> 4
	d1 := b[2] & 0x0F
	digits := [6]byte{d0, d1, d2, d3, d4, d5}
	out := make([]byte, 6)
	for i, d := range digits {
		out[i] = fhssHexDigits[d]
	}
	return string(out)
}

func hexNibble(c byte) (byte, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	default:
		return 0, fmt.Errorf("blocks: FHSS code must be hex digits, got %q", c)
	}
}

func encodeFHSS(code string) ([4]byte, error) {
	var out [4]byte
	if code == "" {
		out[0], out[1], out[2], out[3] = 0xFF, 0xFF, 0xFF, 0xFF
		return out, nil
	}
	if len(code) != 6 {
		return out, fmt.Errorf("blocks: FHSS code must be 6 hex digits, got %q", code)
	}
	var d [6]byte
	for i := 0; i < 6; i++ {
		n, err := hexNibble(code[i])
		if err != nil {
			return out, err
		}
		d[i] = n
	}
	out[0] = (d[4] << 4) | d[5]
	out[1] = (d[2] << 4) | d[3]
	out[2] = (d[0] << 4) | d[1]
	out[3] = 0x00
	return out, nil
}

// DecodeChannel decodes a 64-byte channel record. A nil result means the
// slot is empty (first 4 bytes all 0xFF or all 0x00).
func DecodeChannel(b []byte) (*Channel, error) {
	if len(b) != ChannelRecordSize {
		return nil, fmt.Errorf("blocks: channel record must be %d bytes, got %d", ChannelRecordSize, len(b))
	}
	if allFF(b[:4]) || allZero(b[:4]) {
		return nil, nil
	}

	rxFreq, err := fieldcodec.DecodeFrequencyBytes(b[chOffRxFreq : chOffRxFreq+4])
	if err != nil {
		return nil, err
	}
	txFreq, err := fieldcodec.DecodeFrequencyBytes(b[chOffTxFreq : chOffTxFreq+4])
	if err != nil {
		return nil, err
	}
	rxTone, err := fieldcodec.DecodeSubAudio(b[chOffRxSubAudio : chOffRxSubAudio+2])
	if err != nil {
		return nil, err
	}
	txTone, err := fieldcodec.DecodeSubAudio(b[chOffTxSubAudio : chOffTxSubAudio+2])
	if err != nil {
		return nil, err
	}

	flags := b[chOffFlags]

	return &Channel{
		RxFreq:    rxFreq,
		TxFreq:    txFreq,
		RxTone:    rxTone,
		TxTone:    txTone,
		Power:     Power(b[chOffPower] & 0x0F),
		ScanAdd:   flags&chFlagScanAdd != 0,
		Wide:      flags&chFlagWide != 0,
		Kind:      ChannelKind(b[chOffKind] & 0x0F),
		DMRMode:   DMRMode(b[chOffDMRMode] & 0x0F),
		ColorCode: int(b[chOffColorCode] & 0x0F),
		TimeSlot:  int(b[chOffTimeSlot] & 0x0F),
		FHSS:      decodeFHSS(b[chOffFHSS : chOffFHSS+4]),
		Name:      mustDecodeName(b[chOffName : chOffName+chNameLen]),
	}, nil
}

func mustDecodeName(b []byte) string {
	name, err := fieldcodec.DecodeGB2312Field(b)
	if err != nil {
		return ""
	}
	return name
}

// EncodeChannel encodes c into a 64-byte record. A nil c encodes the empty
// sentinel record.
func EncodeChannel(c *Channel) ([]byte, error) {
	out := make([]byte, ChannelRecordSize)
	fillFF(out)
	if c == nil {
		return out, nil
	}

	copy(out[chOffRxFreq:], fieldcodec.EncodeFrequencyBytes(c.RxFreq))
	copy(out[chOffTxFreq:], fieldcodec.EncodeFrequencyBytes(c.TxFreq))

	rxTone, err := fieldcodec.EncodeSubAudio(c.RxTone)
	if err != nil {
		return nil, fmt.Errorf("blocks: channel rx tone: %w", err)
	}
	copy(out[chOffRxSubAudio:], rxTone)

	txTone, err := fieldcodec.EncodeSubAudio(c.TxTone)
	if err != nil {
		return nil, fmt.Errorf("blocks: channel tx tone: %w", err)
	}
	copy(out[chOffTxSubAudio:], txTone)

	out[chOffPower] = byte(c.Power) & 0x0F

	var flags byte
	if c.ScanAdd {
		flags |= chFlagScanAdd
	}
	if c.Wide {
		flags |= chFlagWide
	}
	out[chOffFlags] = flags

	out[chOffKind] = byte(c.Kind) & 0x0F
	out[chOffDMRMode] = byte(c.DMRMode) & 0x0F
	out[chOffColorCode] = byte(c.ColorCode) & 0x0F
	out[chOffTimeSlot] = byte(c.TimeSlot) & 0x0F

	fhss, err := encodeFHSS(c.FHSS)
	if err != nil {
		return nil, err
	}
	copy(out[chOffFHSS:], fhss[:])

	nameBytes, err := fieldcodec.EncodeGB2312Field(c.Name, chNameLen)
	if err != nil {
		return nil, fmt.Errorf("blocks: channel name: %w", err)
	}
	copy(out[chOffName:], nameBytes)

	return out, nil
}
