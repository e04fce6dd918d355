package blocks

import "testing"

func TestContactRoundTrip(t *testing.T) {
	c := &Contact{CallType: CallTypePrivate, CallID: 3100099, Name: "Alice"}
	enc, err := EncodeContact(c)
	if err != nil {
		t.Fatalf("EncodeContact: %v", err)
	}
	if len(enc) != ContactRecordSize {
		t.Fatalf("encoded len = %d, want %d", len(enc), ContactRecordSize)
	}

	dec, err := DecodeContact(enc)
	if err != nil {
		t.Fatalf("DecodeContact: %v", err)
	}
	if dec.CallType != c.CallType || dec.CallID != c.CallID || dec.Name != c.Name {
		t.Fatalf("decoded = %+v, want %+v", dec, c)
	}
}

func TestContactEmptySentinel(t *testing.T) {
	enc, err := EncodeContact(nil)
	if err != nil {
		t.Fatalf("EncodeContact(nil): %v", err)
	}
	for _, b := range enc {
		if b != 0xFF {
			t.Fatalf("empty contact record not all 0xFF: % x", enc)
		}
	}
	dec, err := DecodeContact(enc)
	if err != nil {
		t.Fatalf("DecodeContact: %v", err)
	}
	if dec != nil {
		t.Fatalf("decoded empty slot = %+v, want nil", dec)
	}
}

func TestContactCallIDOutOfRange(t *testing.T) {
	if _, err := EncodeContact(&Contact{CallID: 0}); err == nil {
		t.Fatal("expected error for call ID 0")
	}
	if _, err := EncodeContact(&Contact{CallID: 0x1000000}); err == nil {
		t.Fatal("expected error for call ID over 24 bits")
	}
}
