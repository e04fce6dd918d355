package blocks

import "testing"

func TestDtmfRoundTrip(t *testing.T) {
	d := &Dtmf{
		CurrentID:  "123*#",
		PttID:      PttIDBoth,
		DurationMS: 150,
		IntervalMS: 250,
		CodeGroups: []string{"1234", "ABCD*#"},
	}
	b, err := EncodeDtmf(d)
	if err != nil {
		t.Fatalf("EncodeDtmf: %v", err)
	}
	if len(b) != DtmfBlockSize {
		t.Fatalf("len = %d, want %d", len(b), DtmfBlockSize)
	}
	decoded, err := DecodeDtmf(b)
	if err != nil {
		t.Fatalf("DecodeDtmf: %v", err)
	}
	if decoded.CurrentID != d.CurrentID {
		t.Fatalf("CurrentID = %q", decoded.CurrentID)
	}
	if decoded.PttID != d.PttID {
		t.Fatalf("PttID = %v", decoded.PttID)
	}
	if decoded.DurationMS != 150 || decoded.IntervalMS != 250 {
		t.Fatalf("timing mismatch: %+v", decoded)
	}
	if len(decoded.CodeGroups) != 2 || decoded.CodeGroups[0] != "1234" || decoded.CodeGroups[1] != "ABCD*#" {
		t.Fatalf("code groups = %v", decoded.CodeGroups)
	}
}

func TestDtmfInvalidDuration(t *testing.T) {
	d := &Dtmf{DurationMS: 999, IntervalMS: 50}
	if _, err := EncodeDtmf(d); err == nil {
		t.Fatal("expected error for invalid duration")
	}
}

func TestDtmfEmptyCodeGroups(t *testing.T) {
	d := &Dtmf{CurrentID: "1", DurationMS: 50, IntervalMS: 50}
	b, err := EncodeDtmf(d)
	if err != nil {
		t.Fatalf("EncodeDtmf: %v", err)
	}
	decoded, err := DecodeDtmf(b)
	if err != nil {
		t.Fatalf("DecodeDtmf: %v", err)
	}
	if len(decoded.CodeGroups) != 0 {
		t.Fatalf("expected no code groups, got %v", decoded.CodeGroups)
	}
}
