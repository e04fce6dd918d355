package codeplug

import (
	"errors"
	"testing"

	"github.com/zardoz99/rt5d"
)

func sampleCodeplug() *Codeplug {
	return &Codeplug{
		RadioInfo: RadioInfo{ModelName: "RT-5D", ModelID: "00000888"},
		Dtmf:      Dtmf{CurrentID: "123", PttID: "Bot", DurationMS: 100, IntervalMS: 100},
		EncryptionKeys: []EncryptionKey{
			{Slot: 1, Algorithm: "Aes128", Hex: "0123456789ABCDEF0123456789ABCDEF"[:32]},
		},
		Contacts: []Contact{
			{Slot: 1, CallType: "Group", CallID: 1234, Name: "Alpha"},
			{Slot: 10, CallType: "Private", CallID: 9999999, Name: "Beta"},
		},
		RxGroups: []RxGroup{
			{Slot: 1, Name: "G1", Members: []uint32{1234, 5678}},
		},
		Channels: []Channel{
			{
				Slot: 1, RxFreq: "441.000000", TxFreq: "446.000000",
				Power: "High", Kind: "DMR", DMRMode: "TierII",
				ColorCode: 7, TimeSlot: 1, Name: "Repeater",
			},
		},
		VfoBanks: VfoBanks{
			A: Vfo{RxFreq: "145.500000", TxFreq: "145.500000", Power: "Mid", Kind: "Analog", StepKHz: 12.5},
			B: Vfo{RxFreq: "446.000000", TxFreq: "446.000000", Power: "Mid", Kind: "Analog", StepKHz: 25},
		},
		Settings: Settings{Squelch: 5, TOTSeconds: 180, MainChannel: "A"},
	}
}

func TestRoundTripThroughPayloads(t *testing.T) {
	cp := sampleCodeplug()
	p, err := ToPayloads(cp)
	if err != nil {
		t.Fatalf("ToPayloads: %v", err)
	}
	if len(p.Channels) != rt5dChannelsSize(t) {
		t.Fatalf("unexpected channels buffer size %d", len(p.Channels))
	}

	back, err := FromPayloads(p)
	if err != nil {
		t.Fatalf("FromPayloads: %v", err)
	}

	if back.RadioInfo != cp.RadioInfo {
		t.Fatalf("RadioInfo = %+v, want %+v", back.RadioInfo, cp.RadioInfo)
	}
	if back.Dtmf.CurrentID != cp.Dtmf.CurrentID || back.Dtmf.PttID != cp.Dtmf.PttID {
		t.Fatalf("Dtmf = %+v", back.Dtmf)
	}
	if len(back.EncryptionKeys) != 1 || back.EncryptionKeys[0].Hex != cp.EncryptionKeys[0].Hex {
		t.Fatalf("EncryptionKeys = %+v", back.EncryptionKeys)
	}
	if len(back.Contacts) != 2 {
		t.Fatalf("Contacts = %+v", back.Contacts)
	}
	if back.Contacts[0].Slot != 1 || back.Contacts[0].Name != "Alpha" {
		t.Fatalf("Contacts[0] = %+v", back.Contacts[0])
	}
	if back.Contacts[1].Slot != 10 || back.Contacts[1].Name != "Beta" {
		t.Fatalf("Contacts[1] = %+v", back.Contacts[1])
	}
	if len(back.Channels) != 1 || back.Channels[0].ColorCode != 7 || back.Channels[0].TimeSlot != 1 {
		t.Fatalf("Channels = %+v", back.Channels)
	}
	if back.VfoBanks.A.StepKHz != 12.5 || back.VfoBanks.B.StepKHz != 25 {
		t.Fatalf("VfoBanks = %+v", back.VfoBanks)
	}
	if back.Settings.Squelch != 5 || back.Settings.TOTSeconds != 180 {
		t.Fatalf("Settings = %+v", back.Settings)
	}
}

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	cp := sampleCodeplug()
	data, err := Marshal(cp)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	back, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back.RadioInfo != cp.RadioInfo {
		t.Fatalf("RadioInfo = %+v, want %+v", back.RadioInfo, cp.RadioInfo)
	}
	if len(back.Contacts) != len(cp.Contacts) {
		t.Fatalf("Contacts len = %d, want %d", len(back.Contacts), len(cp.Contacts))
	}
}

func TestUnmarshalDefaultsMissingSections(t *testing.T) {
	cp, err := Unmarshal([]byte(`{}`))
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if cp.VfoBanks.A.RxFreq != "136.125000" {
		t.Fatalf("default VFO A = %+v", cp.VfoBanks.A)
	}
	if cp.VfoBanks.B.RxFreq != "400.125000" {
		t.Fatalf("default VFO B = %+v", cp.VfoBanks.B)
	}
	if cp.Dtmf.DurationMS != 100 || cp.Dtmf.IntervalMS != 100 {
		t.Fatalf("default DTMF timing = %+v", cp.Dtmf)
	}
}

func TestUnmarshalClampsSlotNumbers(t *testing.T) {
	cp, err := Unmarshal([]byte(`{"contacts":[{"slot":99999,"name":"X"}]}`))
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if cp.Contacts[0].Slot != 4000 {
		t.Fatalf("clamped slot = %d, want 4000", cp.Contacts[0].Slot)
	}
}

func TestUnmarshalMalformedJSONIsErrUsage(t *testing.T) {
	if _, err := Unmarshal([]byte(`{not json`)); !errors.Is(err, ErrUsage) {
		t.Fatalf("Unmarshal error = %v, want errors.Is(err, ErrUsage)", err)
	}
}

func TestToPayloadsErrorIsErrCodec(t *testing.T) {
	cp := sampleCodeplug()
	cp.Channels[0].RxFreq = "not-a-frequency"
	if _, err := ToPayloads(cp); !errors.Is(err, ErrCodec) {
		t.Fatalf("ToPayloads error = %v, want errors.Is(err, ErrCodec)", err)
	}
}

func rt5dChannelsSize(t *testing.T) int {
	t.Helper()
	p := rt5d.NewSessionPayloads()
	return len(p.Channels)
}
