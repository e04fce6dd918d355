package blocks

import "testing"

func TestOptionsRoundTrip(t *testing.T) {
	o := &Options{
		Squelch:        5,
		VoxLevel:       3,
		BacklightTimer: 10,
		TOTSeconds:     180,
		RogerBeep:      true,
		DualWatch:      true,
		MainChannel:    1,
		WorkModeACh:    WorkModeVFO,
		WorkModeBCh:    WorkModeChannel,
		KeepCallTime:   17,
	}
	b, err := EncodeOptions(o)
	if err != nil {
		t.Fatalf("EncodeOptions: %v", err)
	}
	if len(b) != OptionsBlockSize {
		t.Fatalf("len = %d, want %d", len(b), OptionsBlockSize)
	}
	if b[26]>>4 != 1 || b[26]&0x0F != 0 {
		t.Fatalf("byte26 = %#02x, want high nibble 1 low nibble 0", b[26])
	}
	if b[50]&0x1F != 17 {
		t.Fatalf("byte50 low 5 bits = %d, want 17", b[50]&0x1F)
	}

	decoded, err := DecodeOptions(b)
	if err != nil {
		t.Fatalf("DecodeOptions: %v", err)
	}
	if decoded.TOTSeconds != 180 || decoded.KeepCallTime != 17 {
		t.Fatalf("decoded = %+v", decoded)
	}
	if decoded.WorkModeACh != WorkModeVFO || decoded.WorkModeBCh != WorkModeChannel {
		t.Fatalf("work modes = %v/%v", decoded.WorkModeACh, decoded.WorkModeBCh)
	}
	if !decoded.RogerBeep || !decoded.DualWatch {
		t.Fatalf("bool fields lost: %+v", decoded)
	}
}

func TestOptionsInvalidTOT(t *testing.T) {
	o := &Options{TOTSeconds: 7}
	if _, err := EncodeOptions(o); err == nil {
		t.Fatal("expected error for non-multiple-of-15 TOT")
	}
}

func TestOptionsKeepCallTimeOutOfRange(t *testing.T) {
	o := &Options{KeepCallTime: 32}
	if _, err := EncodeOptions(o); err == nil {
		t.Fatal("expected error for keep call time out of 5-bit range")
	}
}
