package blocks

import (
	"fmt"

	"github.com/zardoz99/rt5d/internal/fieldcodec"
)

// DtmfBlockSize is the fixed size of the DTMF block.
const DtmfBlockSize = 272

// PttID selects when the current DTMF ID is keyed out automatically.
type PttID int

const (
	PttIDOff PttID = iota
	PttIDBot       // beginning of transmission
	PttIDEot       // end of transmission
	PttIDBoth
)

// durationMS and the interval share the same documented set of allowed
// values; the wire byte is simply the index into this table.
var dtmfTimingMS = [5]int{50, 100, 150, 200, 250}

const (
	dtmfOffCurrentID  = 0
	dtmfLenCurrentID  = 5
	dtmfOffPttID      = 5
	dtmfOffDuration   = 6
	dtmfOffInterval   = 7
	dtmfOffCodeGroups = 16
	dtmfLenCodeGroup  = 6
	dtmfMaxCodeGroups = 15
)

// Dtmf is the DTMF signalling block.
type Dtmf struct {
	CurrentID  string // digits, alphabet fieldcodec.DtmfAlphabet, <=5 chars
	PttID      PttID
	DurationMS int // one of 50/100/150/200/250
	IntervalMS int // one of 50/100/150/200/250
	CodeGroups []string // up to 15 entries, each <=6 digits; empty entries omitted
}

func durationIndex(ms int) (byte, error) {
	for i, v := range dtmfTimingMS {
		if v == ms {
			return byte(i), nil
		}
	}
	return 0, fmt.Errorf("blocks: %dms is not a valid DTMF duration/interval", ms)
}

// DecodeDtmf decodes the 272-byte DTMF block.
func DecodeDtmf(b []byte) (*Dtmf, error) {
	if len(b) != DtmfBlockSize {
		return nil, fmt.Errorf("blocks: DTMF block must be %d bytes, got %d", DtmfBlockSize, len(b))
	}

	currentID, err := fieldcodec.DecodeNibbleString(b[dtmfOffCurrentID:dtmfOffCurrentID+dtmfLenCurrentID], fieldcodec.DtmfAlphabet)
	if err != nil {
		return nil, err
	}

	pttID := PttID(b[dtmfOffPttID] & 0x0F)
	if pttID > PttIDBoth {
		pttID = PttIDOff
	}

	durIdx := int(b[dtmfOffDuration])
	if durIdx < 0 || durIdx >= len(dtmfTimingMS) {
		durIdx = 0
	}
	intIdx := int(b[dtmfOffInterval])
	if intIdx < 0 || intIdx >= len(dtmfTimingMS) {
		intIdx = 0
	}

	var groups []string
	for i := 0; i < dtmfMaxCodeGroups; i++ {
		off := dtmfOffCodeGroups + i*dtmfLenCodeGroup
		field := b[off : off+dtmfLenCodeGroup]
		if allFF(field) {
			continue
		}
		code, err := fieldcodec.DecodeNibbleString(field, fieldcodec.DtmfAlphabet)
		if err != nil {
			return nil, err
		}
		groups = append(groups, code)
	}

	return &Dtmf{
		CurrentID:  currentID,
		PttID:      pttID,
		DurationMS: dtmfTimingMS[durIdx],
		IntervalMS: dtmfTimingMS[intIdx],
		CodeGroups: groups,
	}, nil
}

// EncodeDtmf encodes d into the 272-byte DTMF block.
func EncodeDtmf(d *Dtmf) ([]byte, error) {
	out := make([]byte, DtmfBlockSize)
	fillFF(out)

	idBytes, err := fieldcodec.EncodeNibbleString(d.CurrentID, fieldcodec.DtmfAlphabet, dtmfLenCurrentID)
	if err != nil {
		return nil, fmt.Errorf("blocks: DTMF current ID: %w", err)
	}
	copy(out[dtmfOffCurrentID:], idBytes)

	if d.PttID > PttIDBoth {
		return nil, fmt.Errorf("blocks: invalid PTT ID %d", d.PttID)
	}
	out[dtmfOffPttID] = byte(d.PttID)

	durIdx, err := durationIndex(d.DurationMS)
	if err != nil {
		return nil, err
	}
	out[dtmfOffDuration] = durIdx

	intIdx, err := durationIndex(d.IntervalMS)
	if err != nil {
		return nil, err
	}
	out[dtmfOffInterval] = intIdx

	if len(d.CodeGroups) > dtmfMaxCodeGroups {
		return nil, fmt.Errorf("blocks: %d code groups exceeds max %d", len(d.CodeGroups), dtmfMaxCodeGroups)
	}
	for i, code := range d.CodeGroups {
		off := dtmfOffCodeGroups + i*dtmfLenCodeGroup
		codeBytes, err := fieldcodec.EncodeNibbleString(code, fieldcodec.DtmfAlphabet, dtmfLenCodeGroup)
		if err != nil {
			return nil, fmt.Errorf("blocks: DTMF code group %d: %w", i, err)
		}
		copy(out[off:], codeBytes)
	}

	return out, nil
}
