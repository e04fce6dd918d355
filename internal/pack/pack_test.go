package pack

import (
	"testing"

	"github.com/zardoz99/rt5d/internal/blocks"
	"github.com/zardoz99/rt5d/internal/fieldcodec"
)

func TestPackChannelsAllEmptyRoundTrip(t *testing.T) {
	buf, err := PackChannels(nil)
	if err != nil {
		t.Fatalf("PackChannels(nil): %v", err)
	}
	if len(buf) != Channels*blocks.ChannelRecordSize {
		t.Fatalf("len = %d, want %d", len(buf), Channels*blocks.ChannelRecordSize)
	}
	for _, b := range buf {
		if b != 0xFF {
			t.Fatalf("expected all-0xFF buffer, found %#02x", b)
		}
	}
	slots, err := UnpackChannels(buf)
	if err != nil {
		t.Fatalf("UnpackChannels: %v", err)
	}
	if len(slots) != Channels {
		t.Fatalf("len(slots) = %d, want %d", len(slots), Channels)
	}
	for i, s := range slots {
		if s != nil {
			t.Fatalf("slot %d expected nil, got %+v", i, s)
		}
	}
}

func TestPackChannelsPartial(t *testing.T) {
	ch := &blocks.Channel{
		RxFreq: 14550000,
		TxFreq: 14550000,
		RxTone: fieldcodec.Off,
		TxTone: fieldcodec.Off,
		Name:   "Test",
	}
	buf, err := PackChannels([]*blocks.Channel{ch})
	if err != nil {
		t.Fatalf("PackChannels: %v", err)
	}
	slots, err := UnpackChannels(buf)
	if err != nil {
		t.Fatalf("UnpackChannels: %v", err)
	}
	if slots[0] == nil || slots[0].Name != "Test" {
		t.Fatalf("slot 0 = %+v", slots[0])
	}
	for i := 1; i < Channels; i++ {
		if slots[i] != nil {
			t.Fatalf("slot %d expected nil, got %+v", i, slots[i])
		}
	}
}

func TestPackContactsRoundTrip(t *testing.T) {
	c := &blocks.Contact{CallType: blocks.CallTypeGroup, CallID: 99, Name: "Group99"}
	buf, err := PackContacts([]*blocks.Contact{nil, c})
	if err != nil {
		t.Fatalf("PackContacts: %v", err)
	}
	slots, err := UnpackContacts(buf)
	if err != nil {
		t.Fatalf("UnpackContacts: %v", err)
	}
	if slots[0] != nil {
		t.Fatalf("slot 0 expected nil, got %+v", slots[0])
	}
	if slots[1] == nil || slots[1].CallID != 99 {
		t.Fatalf("slot 1 = %+v", slots[1])
	}
}

func TestPackRxGroupsRoundTrip(t *testing.T) {
	g := &blocks.RxGroup{Name: "G1", Members: []uint32{1, 2, 3}}
	buf, err := PackRxGroups([]*blocks.RxGroup{g})
	if err != nil {
		t.Fatalf("PackRxGroups: %v", err)
	}
	slots, err := UnpackRxGroups(buf)
	if err != nil {
		t.Fatalf("UnpackRxGroups: %v", err)
	}
	if slots[0] == nil || len(slots[0].Members) != 3 {
		t.Fatalf("slot 0 = %+v", slots[0])
	}
	for i := 1; i < RxGroups; i++ {
		if slots[i] != nil {
			t.Fatalf("slot %d expected nil, got %+v", i, slots[i])
		}
	}
}

func TestPackChannelsOverCapacity(t *testing.T) {
	if _, err := PackChannels(make([]*blocks.Channel, Channels+1)); err == nil {
		t.Fatal("expected error for over-capacity slice")
	}
}
