// Package pack fans the logical per-slot arrays (contacts, rx groups,
// channels) out to and in from the flat multi-packet buffers the wire
// protocol moves as SessionPayloads fields. Each packer is independent of
// packet boundaries: boundaries only matter to the transport layer, which
// slices the same flat buffer via SessionPayloads.*Packet.
package pack

import (
	"fmt"

	"github.com/zardoz99/rt5d/internal/blocks"
)

// Channels is the number of channel slots the radio exposes.
const Channels = 1024

// PackChannels encodes up to Channels entries into a 65536-byte buffer.
// A nil entry (or a slice shorter than Channels) encodes the empty
// sentinel record for the remaining slots.
func PackChannels(slots []*blocks.Channel) ([]byte, error) {
	if len(slots) > Channels {
		return nil, fmt.Errorf("pack: %d channels exceeds max %d", len(slots), Channels)
	}
	out := make([]byte, Channels*blocks.ChannelRecordSize)
	for i := 0; i < Channels; i++ {
		var c *blocks.Channel
		if i < len(slots) {
			c = slots[i]
		}
		rec, err := blocks.EncodeChannel(c)
		if err != nil {
			return nil, fmt.Errorf("pack: channel slot %d: %w", i, err)
		}
		copy(out[i*blocks.ChannelRecordSize:], rec)
	}
	return out, nil
}

// UnpackChannels decodes a 65536-byte buffer into Channels slots; empty
// slots are nil.
func UnpackChannels(buf []byte) ([]*blocks.Channel, error) {
	want := Channels * blocks.ChannelRecordSize
	if len(buf) != want {
		return nil, fmt.Errorf("pack: channels buffer must be %d bytes, got %d", want, len(buf))
	}
	slots := make([]*blocks.Channel, Channels)
	for i := 0; i < Channels; i++ {
		rec := buf[i*blocks.ChannelRecordSize : (i+1)*blocks.ChannelRecordSize]
		c, err := blocks.DecodeChannel(rec)
		if err != nil {
			return nil, fmt.Errorf("pack: channel slot %d: %w", i, err)
		}
		slots[i] = c
	}
	return slots, nil
}
