package codeplug

import (
	"encoding/json"
	"fmt"

	"github.com/zardoz99/rt5d/internal/blocks"
	"github.com/zardoz99/rt5d/internal/pack"
)

// defaultVfo is substituted for a missing VFO bank on load.
func defaultVfo(bank blocks.VfoBank) Vfo {
	freq := "136.125000"
	if bank == blocks.VfoBankB {
		freq = "400.125000"
	}
	return Vfo{RxFreq: freq, TxFreq: freq, Power: "Mid", Kind: "Analog", StepKHz: 10}
}

// Marshal renders a codeplug as an indented JSON document.
func Marshal(cp *Codeplug) ([]byte, error) {
	return json.MarshalIndent(cp, "", "  ")
}

// Unmarshal parses a JSON document into a codeplug, applying the
// documented load-time normalization: missing sections fall back to
// default blocks and out-of-range slot numbers are clamped into range.
// Unknown enumeration values are handled deeper in the pipeline (see
// enums.go), always falling back to a documented default rather than
// failing to load.
func Unmarshal(data []byte) (*Codeplug, error) {
	cp := &Codeplug{}
	if err := json.Unmarshal(data, cp); err != nil {
		return nil, fmt.Errorf("codeplug: malformed document: %w: %w", ErrUsage, err)
	}

	if cp.Dtmf.DurationMS == 0 {
		cp.Dtmf.DurationMS = 100
	}
	if cp.Dtmf.IntervalMS == 0 {
		cp.Dtmf.IntervalMS = 100
	}
	if cp.VfoBanks.A.RxFreq == "" {
		cp.VfoBanks.A = defaultVfo(blocks.VfoBankA)
	}
	if cp.VfoBanks.B.RxFreq == "" {
		cp.VfoBanks.B = defaultVfo(blocks.VfoBankB)
	}

	for i := range cp.EncryptionKeys {
		if cp.EncryptionKeys[i].Slot < 1 {
			cp.EncryptionKeys[i].Slot = 1
		}
		if cp.EncryptionKeys[i].Slot > blocks.MaxEncKeys {
			cp.EncryptionKeys[i].Slot = blocks.MaxEncKeys
		}
	}
	clampContacts(cp.Contacts, pack.Contacts)
	clampRxGroups(cp.RxGroups, pack.RxGroups)
	clampChannels(cp.Channels, pack.Channels)

	return cp, nil
}

func clampContacts(entries []Contact, max int) {
	for i := range entries {
		if entries[i].Slot < 1 {
			entries[i].Slot = 1
		}
		if entries[i].Slot > max {
			entries[i].Slot = max
		}
	}
}

func clampRxGroups(entries []RxGroup, max int) {
	for i := range entries {
		if entries[i].Slot < 1 {
			entries[i].Slot = 1
		}
		if entries[i].Slot > max {
			entries[i].Slot = max
		}
	}
}

func clampChannels(entries []Channel, max int) {
	for i := range entries {
		if entries[i].Slot < 1 {
			entries[i].Slot = 1
		}
		if entries[i].Slot > max {
			entries[i].Slot = max
		}
	}
}
