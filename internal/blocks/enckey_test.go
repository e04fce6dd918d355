package blocks

import "testing"

func TestEncKeyRoundTrip(t *testing.T) {
	k := &EncKey{Algorithm: AlgorithmAes128, Hex: "DEADBEEFCAFE0102030405060708091A"}
	b, err := EncodeEncKey(k)
	if err != nil {
		t.Fatalf("EncodeEncKey: %v", err)
	}
	if len(b) != EncKeyRecordSize {
		t.Fatalf("len = %d, want %d", len(b), EncKeyRecordSize)
	}
	decoded, err := DecodeEncKey(b)
	if err != nil {
		t.Fatalf("DecodeEncKey: %v", err)
	}
	if decoded == nil || decoded.Hex != k.Hex || decoded.Algorithm != AlgorithmAes128 {
		t.Fatalf("decoded = %+v, want %+v", decoded, k)
	}
}

func TestEncKeyArc4(t *testing.T) {
	k := &EncKey{Algorithm: AlgorithmArc4, Hex: "0123456789"}
	b, err := EncodeEncKey(k)
	if err != nil {
		t.Fatalf("EncodeEncKey: %v", err)
	}
	decoded, err := DecodeEncKey(b)
	if err != nil {
		t.Fatalf("DecodeEncKey: %v", err)
	}
	if decoded.Hex != "0123456789" {
		t.Fatalf("Hex = %q", decoded.Hex)
	}
}

func TestEncKeyWrongLengthForAlgorithm(t *testing.T) {
	k := &EncKey{Algorithm: AlgorithmArc4, Hex: "01234567"}
	if _, err := EncodeEncKey(k); err == nil {
		t.Fatal("expected error for wrong key length")
	}
}

func TestEncKeyEmptySlot(t *testing.T) {
	b, err := EncodeEncKey(nil)
	if err != nil {
		t.Fatalf("EncodeEncKey(nil): %v", err)
	}
	for _, x := range b {
		if x != 0xFF {
			t.Fatalf("empty key record not all 0xFF: % x", b)
		}
	}
	decoded, err := DecodeEncKey(b)
	if err != nil {
		t.Fatalf("DecodeEncKey: %v", err)
	}
	if decoded != nil {
		t.Fatalf("expected nil for empty slot, got %+v", decoded)
	}
}

// A slot an unconfigured radio actually produces: NewSessionPayloads fills
// EncryptionKeys with 0xFF, so DecodeEncKey must treat it as empty rather
// than an unrecognized algorithm tag.
func TestEncKeyDecodeRawAllFF(t *testing.T) {
	b := make([]byte, EncKeyRecordSize)
	for i := range b {
		b[i] = 0xFF
	}
	decoded, err := DecodeEncKey(b)
	if err != nil {
		t.Fatalf("DecodeEncKey: %v", err)
	}
	if decoded != nil {
		t.Fatalf("expected nil for all-0xFF slot, got %+v", decoded)
	}
}
