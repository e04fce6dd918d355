package blocks

import "fmt"

// OptionsBlockSize is the fixed size of the optional-functions block.
const OptionsBlockSize = 64

// WorkMode selects whether a VFO panel displays a tuned frequency or a
// stored channel.
type WorkMode int

const (
	WorkModeChannel WorkMode = iota
	WorkModeVFO
)

const (
	optOffSquelch        = 0
	optOffVox            = 1
	optOffVoicePrompt    = 2
	optOffBacklightTimer = 3
	optOffAutoLockMin    = 4
	optOffTOT            = 5 // units of 15s, 0 = off
	optOffRogerBeep      = 6
	optOffBatterySave    = 7
	optOffDualWatch      = 8
	optOffScanMode       = 9
	optOffScanResume     = 10
	optOffKeyBeep        = 11
	optOffLEDMode        = 12
	optOffBusyLock       = 13
	optOffTailElim       = 14
	optOffRepeaterTail   = 15
	optOffFMRadio        = 16
	optOffSideKeyShort   = 17
	optOffSideKeyLong    = 18
	optOffPttIDEnable    = 19
	optOffDisplayMode    = 20
	optOffPowerOnDisplay = 21
	optOffLanguage       = 22
	optOffOffsetDir      = 23
	optOffChannelLock    = 24
	optOffMainChannel    = 25
	optOffWorkMode       = 26 // high nibble: channel A, low nibble: channel B
	optOffKeepCallTime   = 50 // bits 0-4
)

// Options is the optional-functions block.
type Options struct {
	Squelch        int
	VoxLevel       int
	VoicePrompt    int
	BacklightTimer int
	AutoLockMin    int
	TOTSeconds     int // 0 means off
	RogerBeep      bool
	BatterySave    bool
	DualWatch      bool
	ScanMode       int
	ScanResume     int
	KeyBeep        bool
	LEDMode        int
	BusyLock       bool
	TailElim       bool
	RepeaterTail   bool
	FMRadio        bool
	SideKeyShort   int
	SideKeyLong    int
	PttIDEnable    bool
	DisplayMode    int
	PowerOnDisplay int
	Language       int
	OffsetDir      int
	ChannelLock    bool
	MainChannel    int // 0 = A, 1 = B
	WorkModeACh    WorkMode
	WorkModeBCh    WorkMode
	KeepCallTime   int // seconds, 0-31
}

func decodeBool(b byte) bool { return b != 0 }

func encodeBool(v bool) byte {
	if v {
		return 1
	}
	return 0
}

// DecodeOptions decodes the 64-byte optional-functions block.
func DecodeOptions(b []byte) (*Options, error) {
	if len(b) != OptionsBlockSize {
		return nil, fmt.Errorf("blocks: options block must be %d bytes, got %d", OptionsBlockSize, len(b))
	}

	workMode := b[optOffWorkMode]

	return &Options{
		Squelch:        int(b[optOffSquelch]),
		VoxLevel:       int(b[optOffVox]),
		VoicePrompt:    int(b[optOffVoicePrompt]),
		BacklightTimer: int(b[optOffBacklightTimer]),
		AutoLockMin:    int(b[optOffAutoLockMin]),
		TOTSeconds:     int(b[optOffTOT]) * 15,
		RogerBeep:      decodeBool(b[optOffRogerBeep]),
		BatterySave:    decodeBool(b[optOffBatterySave]),
		DualWatch:      decodeBool(b[optOffDualWatch]),
		ScanMode:       int(b[optOffScanMode]),
		ScanResume:     int(b[optOffScanResume]),
		KeyBeep:        decodeBool(b[optOffKeyBeep]),
		LEDMode:        int(b[optOffLEDMode]),
		BusyLock:       decodeBool(b[optOffBusyLock]),
		TailElim:       decodeBool(b[optOffTailElim]),
		RepeaterTail:   decodeBool(b[optOffRepeaterTail]),
		FMRadio:        decodeBool(b[optOffFMRadio]),
		SideKeyShort:   int(b[optOffSideKeyShort]),
		SideKeyLong:    int(b[optOffSideKeyLong]),
		PttIDEnable:    decodeBool(b[optOffPttIDEnable]),
		DisplayMode:    int(b[optOffDisplayMode]),
		PowerOnDisplay: int(b[optOffPowerOnDisplay]),
		Language:       int(b[optOffLanguage]),
		OffsetDir:      int(b[optOffOffsetDir]),
		ChannelLock:    decodeBool(b[optOffChannelLock]),
		MainChannel:    int(b[optOffMainChannel]),
		WorkModeACh:    WorkMode(workMode >> 4),
		WorkModeBCh:    WorkMode(workMode & 0x0F),
		KeepCallTime:   int(b[optOffKeepCallTime] & 0x1F),
	}, nil
}

// EncodeOptions encodes o into the 64-byte optional-functions block.
func EncodeOptions(o *Options) ([]byte, error) {
	out := make([]byte, OptionsBlockSize)
	fillFF(out)

	if o.TOTSeconds%15 != 0 {
		return nil, fmt.Errorf("blocks: TOT must be a multiple of 15 seconds, got %d", o.TOTSeconds)
	}

	out[optOffSquelch] = byte(o.Squelch)
	out[optOffVox] = byte(o.VoxLevel)
	out[optOffVoicePrompt] = byte(o.VoicePrompt)
	out[optOffBacklightTimer] = byte(o.BacklightTimer)
	out[optOffAutoLockMin] = byte(o.AutoLockMin)
	out[optOffTOT] = byte(o.TOTSeconds / 15)
	out[optOffRogerBeep] = encodeBool(o.RogerBeep)
	out[optOffBatterySave] = encodeBool(o.BatterySave)
	out[optOffDualWatch] = encodeBool(o.DualWatch)
	out[optOffScanMode] = byte(o.ScanMode)
	out[optOffScanResume] = byte(o.ScanResume)
	out[optOffKeyBeep] = encodeBool(o.KeyBeep)
	out[optOffLEDMode] = byte(o.LEDMode)
	out[optOffBusyLock] = encodeBool(o.BusyLock)
	out[optOffTailElim] = encodeBool(o.TailElim)
	out[optOffRepeaterTail] = encodeBool(o.RepeaterTail)
	out[optOffFMRadio] = encodeBool(o.FMRadio)
	out[optOffSideKeyShort] = byte(o.SideKeyShort)
	out[optOffSideKeyLong] = byte(o.SideKeyLong)
	out[optOffPttIDEnable] = encodeBool(o.PttIDEnable)
	out[optOffDisplayMode] = byte(o.DisplayMode)
	out[optOffPowerOnDisplay] = byte(o.PowerOnDisplay)
	out[optOffLanguage] = byte(o.Language)
	out[optOffOffsetDir] = byte(o.OffsetDir)
	out[optOffChannelLock] = encodeBool(o.ChannelLock)
	out[optOffMainChannel] = byte(o.MainChannel)
	out[optOffWorkMode] = (byte(o.WorkModeACh) << 4) | (byte(o.WorkModeBCh) & 0x0F)

	if o.KeepCallTime > 0x1F {
		return nil, fmt.Errorf("blocks: keep call time %d exceeds 5-bit range", o.KeepCallTime)
	}
	out[optOffKeepCallTime] = byte(o.KeepCallTime) & 0x1F

	return out, nil
}
