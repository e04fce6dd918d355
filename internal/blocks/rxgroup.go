package blocks

import (
	"fmt"

	"github.com/zardoz99/rt5d/internal/fieldcodec"
)

// RxGroupRecordSize is the fixed size of one rx-group-list record.
const RxGroupRecordSize = 128

// MaxRxGroupMembers is the maximum number of member DMR IDs per group.
const MaxRxGroupMembers = 32

// RxGroup is one receive group list.
type RxGroup struct {
	Name    string   // up to 12 bytes GB2312
	Members []uint32 // ordered, up to MaxRxGroupMembers DMR IDs
}

// DecodeRxGroup decodes a 128-byte rx-group record. A nil result means the
// slot is empty (byte 96 is 0xFF).
func DecodeRxGroup(b []byte) (*RxGroup, error) {
	if len(b) != RxGroupRecordSize {
		return nil, fmt.Errorf("blocks: rx-group record must be %d bytes, got %d", RxGroupRecordSize, len(b))
	}
	if b[96] == 0xFF {
		return nil, nil
	}

	var members []uint32
	for i := 0; i < MaxRxGroupMembers; i++ {
		off := i * 3
		triple := b[off : off+3]
		if allZero(triple) {
			break
		}
		id, err := fieldcodec.DecodeDMRID(triple)
		if err != nil {
			return nil, err
		}
		members = append(members, id)
	}

	name, err := fieldcodec.DecodeGB2312Field(b[96:108])
	if err != nil {
		return nil, err
	}

	return &RxGroup{Name: name, Members: members}, nil
}

// EncodeRxGroup encodes g into a 128-byte record. A nil g encodes the
// empty sentinel record. Members are written followed by an explicit
// all-zero terminator triple when room remains; the encoder never relies
// on 0xFF padding to terminate, since FF FF FF is itself a valid 24-bit ID
// (16,777,215).
func EncodeRxGroup(g *RxGroup) ([]byte, error) {
	out := make([]byte, RxGroupRecordSize)
	fillFF(out)
	if g == nil {
		return out, nil
	}
	if len(g.Members) > MaxRxGroupMembers {
		return nil, fmt.Errorf("blocks: rx-group has %d members, max is %d", len(g.Members), MaxRxGroupMembers)
	}

	for i, id := range g.Members {
		idBytes, err := fieldcodec.EncodeDMRID(id)
		if err != nil {
			return nil, err
		}
		off := i * 3
		copy(out[off:off+3], idBytes)
	}
	if len(g.Members) < MaxRxGroupMembers {
		off := len(g.Members) * 3
		out[off] = 0x00
		out[off+1] = 0x00
		out[off+2] = 0x00
	}

	nameBytes, err := fieldcodec.EncodeGB2312Field(g.Name, 12)
	if err != nil {
		return nil, fmt.Errorf("blocks: rx-group name: %w", err)
	}
	copy(out[96:108], nameBytes)

	return out, nil
}
