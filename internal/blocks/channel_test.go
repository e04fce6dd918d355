package blocks

import (
	"testing"

	"github.com/zardoz99/rt5d/internal/fieldcodec"
)

func TestChannelTierIIRoundTrip(t *testing.T) {
	rx, err := fieldcodec.ParseFrequencyMHz("441.000000")
	if err != nil {
		t.Fatalf("ParseFrequencyMHz rx: %v", err)
	}
	tx, err := fieldcodec.ParseFrequencyMHz("446.000000")
	if err != nil {
		t.Fatalf("ParseFrequencyMHz tx: %v", err)
	}

	c := &Channel{
		RxFreq:    rx,
		TxFreq:    tx,
		RxTone:    fieldcodec.Off,
		TxTone:    fieldcodec.Off,
		Power:     PowerHigh,
		Kind:      ChannelDMR,
		DMRMode:   DMRTierII,
		ColorCode: 7,
		TimeSlot:  1,
		Name:      "Repeater",
	}

	b, err := EncodeChannel(c)
	if err != nil {
		t.Fatalf("EncodeChannel: %v", err)
	}
	if len(b) != ChannelRecordSize {
		t.Fatalf("len = %d, want %d", len(b), ChannelRecordSize)
	}
	if b[14]&0x0F != 0 {
		t.Fatalf("byte14 low nibble = %#x, want 0", b[14]&0x0F)
	}
	if b[15]&0x0F != 1 {
		t.Fatalf("byte15 low nibble = %#x, want 1", b[15]&0x0F)
	}

	decoded, err := DecodeChannel(b)
	if err != nil {
		t.Fatalf("DecodeChannel: %v", err)
	}
	if decoded == nil {
		t.Fatal("decoded channel is nil")
	}
	if decoded.RxFreq != rx || decoded.TxFreq != tx {
		t.Fatalf("freq mismatch: rx=%d tx=%d", decoded.RxFreq, decoded.TxFreq)
	}
	if decoded.ColorCode != 7 || decoded.TimeSlot != 1 {
		t.Fatalf("color/slot mismatch: %+v", decoded)
	}
	if decoded.Kind != ChannelDMR || decoded.DMRMode != DMRTierII {
		t.Fatalf("kind/mode mismatch: %+v", decoded)
	}
	if decoded.Name != "Repeater" {
		t.Fatalf("name = %q", decoded.Name)
	}
}

func TestChannelEmptySentinel(t *testing.T) {
	b, err := EncodeChannel(nil)
	if err != nil {
		t.Fatalf("EncodeChannel(nil): %v", err)
	}
	if !allFF(b) {
		t.Fatalf("expected all-0xFF sentinel record")
	}
	decoded, err := DecodeChannel(b)
	if err != nil {
		t.Fatalf("DecodeChannel: %v", err)
	}
	if decoded != nil {
		t.Fatalf("expected nil for empty channel, got %+v", decoded)
	}
}

func TestChannelFHSSRoundTrip(t *testing.T) {
	c := &Channel{
		RxFreq: 1000000,
		TxFreq: 1000000,
		RxTone: fieldcodec.Off,
		TxTone: fieldcodec.Off,
		FHSS:   "1A2B3C",
	}
	b, err := EncodeChannel(c)
	if err != nil {
		t.Fatalf("EncodeChannel: %v", err)
	}
	if b[28] != 0x3C || b[29] != 0x2B || b[30] != 0x1A || b[31] != 0x00 {
		t.Fatalf("FHSS bytes = % X", b[28:32])
	}
	decoded, err := DecodeChannel(b)
	if err != nil {
		t.Fatalf("DecodeChannel: %v", err)
	}
	if decoded.FHSS != "1A2B3C" {
		t.Fatalf("FHSS = %q, want 1A2B3C", decoded.FHSS)
	}
}
