// Package codeplug implements the document binding (L7): the lossless
// round-trip between the flat binary session payloads and a human-readable
// JSON document where every field is a named, typed value. Enumerations
// are represented as short strings rather than raw wire codes so that the
// document is meaningful without cross-referencing the block layouts.
package codeplug

import (
	"errors"
	"fmt"
)

// ErrCodec is the sentinel every field-level codec failure chains to: an
// out-of-range slot, an unrecoverable enum, or a malformed hex/digit
// string. Callers match it with errors.Is rather than inspecting the
// field path string.
var ErrCodec = errors.New("codeplug: codec error")

// ErrUsage is the sentinel for a malformed input document: a JSON parse
// failure, as opposed to a well-formed document with an out-of-range or
// unparseable field (ErrCodec).
var ErrUsage = errors.New("codeplug: usage error")

// RadioInfo identifies the target radio model.
type RadioInfo struct {
	ModelName string `json:"modelName"`
	ModelID   string `json:"modelId"`
}

// Dtmf is the DTMF signalling configuration.
type Dtmf struct {
	CurrentID  string   `json:"currentId"`
	PttID      string   `json:"pttId"` // Off, Bot, Eot, Both
	DurationMS int      `json:"durationMs"`
	IntervalMS int      `json:"intervalMs"`
	CodeGroups []string `json:"codeGroups,omitempty"`
}

// EncryptionKey is one populated basic-privacy key slot.
type EncryptionKey struct {
	Slot      int    `json:"slot"`
	Algorithm string `json:"algorithm"` // Arc4, Aes128, Aes256
	Hex       string `json:"hex"`
}

// Contact is one populated address-book entry.
type Contact struct {
	Slot     int    `json:"slot"`
	CallType string `json:"callType"` // Group, Private, AllCall
	CallID   uint32 `json:"callId"`
	Name     string `json:"name"`
}

// RxGroup is one populated receive group list.
type RxGroup struct {
	Slot    int      `json:"slot"`
	Name    string   `json:"name"`
	Members []uint32 `json:"members,omitempty"`
}

// Channel is one populated memory channel.
type Channel struct {
	Slot      int    `json:"slot"`
	RxFreq    string `json:"rxFreq"` // decimal MHz, six fraction digits
	TxFreq    string `json:"txFreq"`
	RxTone    string `json:"rxTone,omitempty"`
	TxTone    string `json:"txTone,omitempty"`
	Power     string `json:"power"` // Low, Mid, High
	ScanAdd   bool   `json:"scanAdd,omitempty"`
	Wide      bool   `json:"wide,omitempty"`
	Kind      string `json:"kind"` // Analog, DMR
	DMRMode   string `json:"dmrMode,omitempty"`
	ColorCode int    `json:"colorCode,omitempty"`
	TimeSlot  int    `json:"timeSlot,omitempty"`
	FHSS      string `json:"fhss,omitempty"`
	Name      string `json:"name,omitempty"`
}

// Vfo is one VFO bank's dial state.
type Vfo struct {
	RxFreq    string  `json:"rxFreq"`
	TxFreq    string  `json:"txFreq"`
	RxTone    string  `json:"rxTone,omitempty"`
	TxTone    string  `json:"txTone,omitempty"`
	Power     string  `json:"power"`
	Wide      bool    `json:"wide,omitempty"`
	Kind      string  `json:"kind"`
	DMRMode   string  `json:"dmrMode,omitempty"`
	ColorCode int     `json:"colorCode,omitempty"`
	TimeSlot  int     `json:"timeSlot,omitempty"`
	StepKHz   float64 `json:"stepKhz"`
}

// VfoBanks holds the radio's two VFO dial states.
type VfoBanks struct {
	A Vfo `json:"a"`
	B Vfo `json:"b"`
}

// Settings is the flat record of optional functions and button
// assignments (the "Settings" block of the symbolic model).
type Settings struct {
	Squelch        int    `json:"squelch,omitempty"`
	VoxLevel       int    `json:"voxLevel,omitempty"`
	VoicePrompt    int    `json:"voicePrompt,omitempty"`
	BacklightTimer int    `json:"backlightTimer,omitempty"`
	AutoLockMin    int    `json:"autoLockMin,omitempty"`
	TOTSeconds     int    `json:"totSeconds,omitempty"`
	RogerBeep      bool   `json:"rogerBeep,omitempty"`
	BatterySave    bool   `json:"batterySave,omitempty"`
	DualWatch      bool   `json:"dualWatch,omitempty"`
	ScanMode       int    `json:"scanMode,omitempty"`
	ScanResume     int    `json:"scanResume,omitempty"`
	KeyBeep        bool   `json:"keyBeep,omitempty"`
	LEDMode        int    `json:"ledMode,omitempty"`
	BusyLock       bool   `json:"busyLock,omitempty"`
	TailElim       bool   `json:"tailElim,omitempty"`
	RepeaterTail   bool   `json:"repeaterTail,omitempty"`
	FMRadio        bool   `json:"fmRadio,omitempty"`
	SideKeyShort   int    `json:"sideKeyShort,omitempty"`
	SideKeyLong    int    `json:"sideKeyLong,omitempty"`
	PttIDEnable    bool   `json:"pttIdEnable,omitempty"`
	DisplayMode    int    `json:"displayMode,omitempty"`
	PowerOnDisplay int    `json:"powerOnDisplay,omitempty"`
	Language       int    `json:"language,omitempty"`
	OffsetDir      int    `json:"offsetDir,omitempty"`
	ChannelLock    bool   `json:"channelLock,omitempty"`
	MainChannel    string `json:"mainChannel,omitempty"` // A, B
	WorkModeACh    string `json:"workModeACh,omitempty"` // Channel, VFO
	WorkModeBCh    string `json:"workModeBCh,omitempty"`
	KeepCallTime   int    `json:"keepCallTime,omitempty"`
}

// Codeplug is the complete symbolic document: the radio's full
// configuration in human-readable form.
type Codeplug struct {
	RadioInfo      RadioInfo       `json:"radioInfo"`
	Dtmf           Dtmf            `json:"dtmf"`
	EncryptionKeys []EncryptionKey `json:"encryptionKeys,omitempty"`
	Contacts       []Contact       `json:"contacts,omitempty"`
	RxGroups       []RxGroup       `json:"rxGroups,omitempty"`
	Channels       []Channel       `json:"channels,omitempty"`
	VfoBanks       VfoBanks        `json:"vfoBanks"`
	Settings       Settings        `json:"settings"`
}

// fieldError reports a document field that failed to parse or fell out of
// its documented range, identified by its JSON path.
type fieldError struct {
	path string
	err  error
}

func (e *fieldError) Error() string {
	return fmt.Sprintf("codeplug: field %s: %v", e.path, e.err)
}

func (e *fieldError) Unwrap() error { return e.err }

func (e *fieldError) Is(target error) bool { return target == ErrCodec }
