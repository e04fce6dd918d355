package blocks

import (
	"testing"

	"github.com/zardoz99/rt5d/internal/fieldcodec"
)

func TestVfoRoundTrip(t *testing.T) {
	v := &Vfo{
		RxFreq:    14550000,
		TxFreq:    14550000,
		RxTone:    fieldcodec.Off,
		TxTone:    fieldcodec.Off,
		Power:     PowerMid,
		Kind:      ChannelAnalog,
		ColorCode: 0,
		TimeSlot:  0,
		StepKHz:   12.5,
	}
	b, err := EncodeVfo(v)
	if err != nil {
		t.Fatalf("EncodeVfo: %v", err)
	}
	if len(b) != VfoRecordSize {
		t.Fatalf("len = %d, want %d", len(b), VfoRecordSize)
	}
	decoded, err := DecodeVfo(b, VfoBankA)
	if err != nil {
		t.Fatalf("DecodeVfo: %v", err)
	}
	if decoded.RxFreq != v.RxFreq || decoded.StepKHz != 12.5 {
		t.Fatalf("decoded = %+v", decoded)
	}
}

func TestVfoDefaultSubstitution(t *testing.T) {
	blank := make([]byte, VfoRecordSize)
	fillFF(blank)

	a, err := DecodeVfo(blank, VfoBankA)
	if err != nil {
		t.Fatalf("DecodeVfo bank A: %v", err)
	}
	wantA, err := fieldcodec.ParseFrequencyMHz("136.125000")
	if err != nil {
		t.Fatalf("ParseFrequencyMHz: %v", err)
	}
	if a.RxFreq != wantA {
		t.Fatalf("bank A default = %d, want %d", a.RxFreq, wantA)
	}

	bnk, err := DecodeVfo(blank, VfoBankB)
	if err != nil {
		t.Fatalf("DecodeVfo bank B: %v", err)
	}
	wantB, err := fieldcodec.ParseFrequencyMHz("400.125000")
	if err != nil {
		t.Fatalf("ParseFrequencyMHz: %v", err)
	}
	if bnk.RxFreq != wantB {
		t.Fatalf("bank B default = %d, want %d", bnk.RxFreq, wantB)
	}
}

// TestVfoPartialBlankFrequency covers a bank that is programmed (a real
// step index set) but whose frequency fields alone are unprogrammed: the
// substitution must apply per field, not only when the whole record is
// blank.
func TestVfoPartialBlankFrequency(t *testing.T) {
	b := make([]byte, VfoRecordSize)
	fillFF(b)
	b[vfoOffStep] = 4 // 12.5 kHz, a real programmed value

	v, err := DecodeVfo(b, VfoBankA)
	if err != nil {
		t.Fatalf("DecodeVfo: %v", err)
	}
	wantA, err := fieldcodec.ParseFrequencyMHz("136.125000")
	if err != nil {
		t.Fatalf("ParseFrequencyMHz: %v", err)
	}
	if v.RxFreq != wantA || v.TxFreq != wantA {
		t.Fatalf("freq = %+v, want default %d", v, wantA)
	}
	if v.StepKHz != 12.5 {
		t.Fatalf("StepKHz = %v, want 12.5 (programmed byte must survive)", v.StepKHz)
	}
}
