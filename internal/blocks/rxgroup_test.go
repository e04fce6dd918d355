package blocks

import "testing"

func TestRxGroupRoundTrip(t *testing.T) {
	g := &RxGroup{Name: "Locals", Members: []uint32{1234, 5678, 91011}}
	enc, err := EncodeRxGroup(g)
	if err != nil {
		t.Fatalf("EncodeRxGroup: %v", err)
	}
	if len(enc) != RxGroupRecordSize {
		t.Fatalf("encoded len = %d, want %d", len(enc), RxGroupRecordSize)
	}
	want := []byte{0x00, 0x00, 0x00}
	if got := enc[9:12]; string(got) != string(want) {
		t.Fatalf("terminator bytes = % x, want % x", got, want)
	}

	dec, err := DecodeRxGroup(enc)
	if err != nil {
		t.Fatalf("DecodeRxGroup: %v", err)
	}
	if dec.Name != g.Name || len(dec.Members) != len(g.Members) {
		t.Fatalf("decoded = %+v, want %+v", dec, g)
	}
	for i, m := range g.Members {
		if dec.Members[i] != m {
			t.Fatalf("member %d = %d, want %d", i, dec.Members[i], m)
		}
	}
}

func TestRxGroupEmptySentinel(t *testing.T) {
	enc, err := EncodeRxGroup(nil)
	if err != nil {
		t.Fatalf("EncodeRxGroup(nil): %v", err)
	}
	dec, err := DecodeRxGroup(enc)
	if err != nil {
		t.Fatalf("DecodeRxGroup: %v", err)
	}
	if dec != nil {
		t.Fatalf("decoded empty slot = %+v, want nil", dec)
	}
}

func TestRxGroupFullMembership(t *testing.T) {
	members := make([]uint32, MaxRxGroupMembers)
	for i := range members {
		members[i] = uint32(i + 1)
	}
	g := &RxGroup{Name: "Full", Members: members}
	enc, err := EncodeRxGroup(g)
	if err != nil {
		t.Fatalf("EncodeRxGroup: %v", err)
	}
	dec, err := DecodeRxGroup(enc)
	if err != nil {
		t.Fatalf("DecodeRxGroup: %v", err)
	}
	if len(dec.Members) != MaxRxGroupMembers {
		t.Fatalf("decoded %d members, want %d", len(dec.Members), MaxRxGroupMembers)
	}
}

func TestRxGroupTooManyMembers(t *testing.T) {
	members := make([]uint32, MaxRxGroupMembers+1)
	if _, err := EncodeRxGroup(&RxGroup{Members: members}); err == nil {
		t.Fatal("expected error for over-capacity member list")
	}
}
