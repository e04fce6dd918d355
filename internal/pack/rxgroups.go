package pack

import (
	"fmt"

	"github.com/zardoz99/rt5d/internal/blocks"
)

// RxGroups is the number of rx-group slots the radio exposes.
const RxGroups = 32

// PackRxGroups encodes up to RxGroups entries into a 4096-byte buffer.
func PackRxGroups(slots []*blocks.RxGroup) ([]byte, error) {
	if len(slots) > RxGroups {
		return nil, fmt.Errorf("pack: %d rx groups exceeds max %d", len(slots), RxGroups)
	}
	out := make([]byte, RxGroups*blocks.RxGroupRecordSize)
	for i := 0; i < RxGroups; i++ {
		var g *blocks.RxGroup
		if i < len(slots) {
			g = slots[i]
		}
		rec, err := blocks.EncodeRxGroup(g)
		if err != nil {
			return nil, fmt.Errorf("pack: rx group slot %d: %w", i, err)
		}
		copy(out[i*blocks.RxGroupRecordSize:], rec)
	}
	return out, nil
}

// UnpackRxGroups decodes a 4096-byte buffer into RxGroups slots; empty
// slots are nil.
func UnpackRxGroups(buf []byte) ([]*blocks.RxGroup, error) {
	want := RxGroups * blocks.RxGroupRecordSize
	if len(buf) != want {
		return nil, fmt.Errorf("pack: rx groups buffer must be %d bytes, got %d", want, len(buf))
	}
	slots := make([]*blocks.RxGroup, RxGroups)
	for i := 0; i < RxGroups; i++ {
		rec := buf[i*blocks.RxGroupRecordSize : (i+1)*blocks.RxGroupRecordSize]
		g, err := blocks.DecodeRxGroup(rec)
		if err != nil {
			return nil, fmt.Errorf("pack: rx group slot %d: %w", i, err)
		}
		slots[i] = g
	}
	return slots, nil
}
