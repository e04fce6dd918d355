package blocks

import (
	"fmt"

	"github.com/zardoz99/rt5d/internal/fieldcodec"
)

// VfoRecordSize is the fixed size of one VFO bank record.
const VfoRecordSize = 64

// VfoBank identifies which of the radio's two VFO banks a record belongs
// to; the two banks have different default frequencies.
type VfoBank int

const (
	VfoBankA VfoBank = iota
	VfoBankB
)

// defaultVfoFreq holds the factory frequency substituted in for each of a
// bank's rx/tx frequency fields that is unprogrammed.
var defaultVfoFreq = map[VfoBank]uint32{
	VfoBankA: 136125000 / 10, // 136.125 MHz in raw 10Hz units
	VfoBankB: 400125000 / 10, // 400.125 MHz
}

// stepKHz is the ordered table of selectable channel steps; the wire byte
// is the index into this table.
var stepKHz = [8]float64{2.5, 5, 6.25, 10, 12.5, 20, 25, 50}

const (
	vfoOffRxFreq     = 0
	vfoOffTxFreq     = 4
	vfoOffRxSubAudio = 8
	vfoOffTxSubAudio = 10
	vfoOffPower      = 12
	vfoOffFlags      = 13
	vfoOffKind       = 14
	vfoOffDMRMode    = 15
	vfoOffColorCode  = 16
	vfoOffTimeSlot   = 17
	vfoOffStep       = 18

	vfoFlagWide = 1 << 1
)

// Vfo is one VFO bank's dial state.
type Vfo struct {
	RxFreq    uint32
	TxFreq    uint32
	RxTone    fieldcodec.SubAudio
	TxTone    fieldcodec.SubAudio
	Power     Power
	Wide      bool
	Kind      ChannelKind
	DMRMode   DMRMode
	ColorCode int
	TimeSlot  int
	StepKHz   float64
}

func stepIndex(khz float64) (byte, error) {
	for i, v := range stepKHz {
		if v == khz {
			return byte(i), nil
		}
	}
	return 0, fmt.Errorf("blocks: %v kHz is not a valid VFO step", khz)
}

// DecodeVfo decodes a 64-byte VFO bank record. Each of the rx/tx frequency
// fields is substituted with the bank's factory default individually when
// it decodes to 0x00000000 or 0xFFFFFFFF, regardless of what the rest of
// the record holds.
func DecodeVfo(b []byte, bank VfoBank) (*Vfo, error) {
	if len(b) != VfoRecordSize {
		return nil, fmt.Errorf("blocks: VFO record must be %d bytes, got %d", VfoRecordSize, len(b))
	}

	rxFreq, err := fieldcodec.DecodeFrequencyBytes(b[vfoOffRxFreq : vfoOffRxFreq+4])
	if err != nil {
		return nil, err
	}
	if rxFreq == 0x00000000 || rxFreq == 0xFFFFFFFF {
		rxFreq = defaultVfoFreq[bank]
	}
	txFreq, err := fieldcodec.DecodeFrequencyBytes(b[vfoOffTxFreq : vfoOffTxFreq+4])
	if err != nil {
		return nil, err
	}
	if txFreq == 0x00000000 || txFreq == 0xFFFFFFFF {
		txFreq = defaultVfoFreq[bank]
	}
	rxTone, err := fieldcodec.DecodeSubAudio(b[vfoOffRxSubAudio : vfoOffRxSubAudio+2])
	if err != nil {
		return nil, err
	}
	txTone, err := fieldcodec.DecodeSubAudio(b[vfoOffTxSubAudio : vfoOffTxSubAudio+2])
	if err != nil {
		return nil, err
	}

	stepIdx := int(b[vfoOffStep])
	if stepIdx < 0 || stepIdx >= len(stepKHz) {
		stepIdx = 3
	}

	return &Vfo{
		RxFreq:    rxFreq,
		TxFreq:    txFreq,
		RxTone:    rxTone,
		TxTone:    txTone,
		Power:     Power(b[vfoOffPower] & 0x0F),
		Wide:      b[vfoOffFlags]&vfoFlagWide != 0,
		Kind:      ChannelKind(b[vfoOffKind] & 0x0F),
		DMRMode:   DMRMode(b[vfoOffDMRMode] & 0x0F),
		ColorCode: int(b[vfoOffColorCode] & 0x0F),
		TimeSlot:  int(b[vfoOffTimeSlot] & 0x0F),
		StepKHz:   stepKHz[stepIdx],
	}, nil
}

// EncodeVfo encodes v into a 64-byte record.
func EncodeVfo(v *Vfo) ([]byte, error) {
	out := make([]byte, VfoRecordSize)
	fillFF(out)

	copy(out[vfoOffRxFreq:], fieldcodec.EncodeFrequencyBytes(v.RxFreq))
	copy(out[vfoOffTxFreq:], fieldcodec.EncodeFrequencyBytes(v.TxFreq))

	rxTone, err := fieldcodec.EncodeSubAudio(v.RxTone)
	if err != nil {
		return nil, fmt.Errorf("blocks: VFO rx tone: %w", err)
	}
	copy(out[vfoOffRxSubAudio:], rxTone)

	txTone, err := fieldcodec.EncodeSubAudio(v.TxTone)
	if err != nil {
		return nil, fmt.Errorf("blocks: VFO tx tone: %w", err)
	}
	copy(out[vfoOffTxSubAudio:], txTone)

	out[vfoOffPower] = byte(v.Power) & 0x0F

	var flags byte
	if v.Wide {
		flags |= vfoFlagWide
	}
	out[vfoOffFlags] = flags

	out[vfoOffKind] = byte(v.Kind) & 0x0F
	out[vfoOffDMRMode] = byte(v.DMRMode) & 0x0F
	out[vfoOffColorCode] = byte(v.ColorCode) & 0x0F
	out[vfoOffTimeSlot] = byte(v.TimeSlot) & 0x0F

	idx, err := stepIndex(v.StepKHz)
	if err != nil {
		return nil, err
	}
	out[vfoOffStep] = idx

	return out, nil
}
