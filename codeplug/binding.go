package codeplug

import (
	"fmt"

	"github.com/zardoz99/rt5d"
	"github.com/zardoz99/rt5d/internal/blocks"
	"github.com/zardoz99/rt5d/internal/fieldcodec"
	"github.com/zardoz99/rt5d/internal/pack"
)

// FromPayloads decodes a complete set of raw session payloads into the
// symbolic document. Empty slots are omitted from the resulting slices;
// populated entries carry their 1-based slot number.
func FromPayloads(p *rt5d.SessionPayloads) (*Codeplug, error) {
	cp := &Codeplug{}

	basicInfo, err := blocks.DecodeBasicInfo(p.BasicInfo)
	if err != nil {
		return nil, &fieldError{"radioInfo", err}
	}
	cp.RadioInfo = RadioInfo{ModelName: basicInfo.ModelName, ModelID: basicInfo.ModelID}

	dtmf, err := blocks.DecodeDtmf(p.DTMF)
	if err != nil {
		return nil, &fieldError{"dtmf", err}
	}
	cp.Dtmf = Dtmf{
		CurrentID:  dtmf.CurrentID,
		PttID:      pttIDToString(dtmf.PttID),
		DurationMS: dtmf.DurationMS,
		IntervalMS: dtmf.IntervalMS,
		CodeGroups: dtmf.CodeGroups,
	}

	for i := 0; i < blocks.MaxEncKeys; i++ {
		rec := p.EncryptionKeys[i*blocks.EncKeyRecordSize : (i+1)*blocks.EncKeyRecordSize]
		k, err := blocks.DecodeEncKey(rec)
		if err != nil {
			return nil, &fieldError{fmt.Sprintf("encryptionKeys[%d]", i+1), err}
		}
		if k == nil {
			continue
		}
		cp.EncryptionKeys = append(cp.EncryptionKeys, EncryptionKey{
			Slot:      i + 1,
			Algorithm: algorithmToString(k.Algorithm),
			Hex:       k.Hex,
		})
	}

	contacts, err := pack.UnpackContacts(p.Contacts)
	if err != nil {
		return nil, &fieldError{"contacts", err}
	}
	for i, c := range contacts {
		if c == nil {
			continue
		}
		cp.Contacts = append(cp.Contacts, Contact{
			Slot:     i + 1,
			CallType: callTypeToString(c.CallType),
			CallID:   c.CallID,
			Name:     c.Name,
		})
	}

	rxGroups, err := pack.UnpackRxGroups(p.RxGroups)
	if err != nil {
		return nil, &fieldError{"rxGroups", err}
	}
	for i, g := range rxGroups {
		if g == nil {
			continue
		}
		cp.RxGroups = append(cp.RxGroups, RxGroup{Slot: i + 1, Name: g.Name, Members: g.Members})
	}

	channels, err := pack.UnpackChannels(p.Channels)
	if err != nil {
		return nil, &fieldError{"channels", err}
	}
	for i, c := range channels {
		if c == nil {
			continue
		}
		entry := Channel{
			Slot:      i + 1,
			RxFreq:    fieldcodec.FormatFrequencyMHz(c.RxFreq),
			TxFreq:    fieldcodec.FormatFrequencyMHz(c.TxFreq),
			RxTone:    subAudioOrEmpty(c.RxTone),
			TxTone:    subAudioOrEmpty(c.TxTone),
			Power:     powerToString(c.Power),
			ScanAdd:   c.ScanAdd,
			Wide:      c.Wide,
			Kind:      kindToString(c.Kind),
			FHSS:      c.FHSS,
			Name:      c.Name,
		}
		if c.Kind == blocks.ChannelDMR {
			entry.DMRMode = dmrModeToString(c.DMRMode)
			entry.ColorCode = c.ColorCode
			entry.TimeSlot = c.TimeSlot
		}
		cp.Channels = append(cp.Channels, entry)
	}

	vfoA, err := blocks.DecodeVfo(p.VFO[:blocks.VfoRecordSize], blocks.VfoBankA)
	if err != nil {
		return nil, &fieldError{"vfoBanks.a", err}
	}
	vfoB, err := blocks.DecodeVfo(p.VFO[blocks.VfoRecordSize:], blocks.VfoBankB)
	if err != nil {
		return nil, &fieldError{"vfoBanks.b", err}
	}
	cp.VfoBanks = VfoBanks{A: vfoToDoc(vfoA), B: vfoToDoc(vfoB)}

	opts, err := blocks.DecodeOptions(p.Options)
	if err != nil {
		return nil, &fieldError{"settings", err}
	}
	cp.Settings = Settings{
		Squelch:        opts.Squelch,
		VoxLevel:       opts.VoxLevel,
		VoicePrompt:    opts.VoicePrompt,
		BacklightTimer: opts.BacklightTimer,
		AutoLockMin:    opts.AutoLockMin,
		TOTSeconds:     opts.TOTSeconds,
		RogerBeep:      opts.RogerBeep,
		BatterySave:    opts.BatterySave,
		DualWatch:      opts.DualWatch,
		ScanMode:       opts.ScanMode,
		ScanResume:     opts.ScanResume,
		KeyBeep:        opts.KeyBeep,
		LEDMode:        opts.LEDMode,
		BusyLock:       opts.BusyLock,
		TailElim:       opts.TailElim,
		RepeaterTail:   opts.RepeaterTail,
		FMRadio:        opts.FMRadio,
		SideKeyShort:   opts.SideKeyShort,
		SideKeyLong:    opts.SideKeyLong,
		PttIDEnable:    opts.PttIDEnable,
		DisplayMode:    opts.DisplayMode,
		PowerOnDisplay: opts.PowerOnDisplay,
		Language:       opts.Language,
		OffsetDir:      opts.OffsetDir,
		ChannelLock:    opts.ChannelLock,
		MainChannel:    mainChannelToString(opts.MainChannel),
		WorkModeACh:    workModeToString(opts.WorkModeACh),
		WorkModeBCh:    workModeToString(opts.WorkModeBCh),
		KeepCallTime:   opts.KeepCallTime,
	}

	return cp, nil
}

func subAudioOrEmpty(sa fieldcodec.SubAudio) string {
	if sa.Kind == fieldcodec.SubAudioOff {
		return ""
	}
	return fieldcodec.FormatSubAudio(sa)
}

func parseSubAudioOrOff(s string) (fieldcodec.SubAudio, error) {
	if s == "" {
		return fieldcodec.Off, nil
	}
	return fieldcodec.ParseSubAudio(s)
}

func vfoToDoc(v *blocks.Vfo) Vfo {
	doc := Vfo{
		RxFreq:  fieldcodec.FormatFrequencyMHz(v.RxFreq),
		TxFreq:  fieldcodec.FormatFrequencyMHz(v.TxFreq),
		RxTone:  subAudioOrEmpty(v.RxTone),
		TxTone:  subAudioOrEmpty(v.TxTone),
		Power:   powerToString(v.Power),
		Wide:    v.Wide,
		Kind:    kindToString(v.Kind),
		StepKHz: v.StepKHz,
	}
	if v.Kind == blocks.ChannelDMR {
		doc.DMRMode = dmrModeToString(v.DMRMode)
		doc.ColorCode = v.ColorCode
		doc.TimeSlot = v.TimeSlot
	}
	return doc
}

func vfoFromDoc(v Vfo) (*blocks.Vfo, error) {
	rx, err := fieldcodec.ParseFrequencyMHz(v.RxFreq)
	if err != nil {
		return nil, err
	}
	tx, err := fieldcodec.ParseFrequencyMHz(v.TxFreq)
	if err != nil {
		return nil, err
	}
	rxTone, err := parseSubAudioOrOff(v.RxTone)
	if err != nil {
		return nil, err
	}
	txTone, err := parseSubAudioOrOff(v.TxTone)
	if err != nil {
		return nil, err
	}
	return &blocks.Vfo{
		RxFreq:    rx,
		TxFreq:    tx,
		RxTone:    rxTone,
		TxTone:    txTone,
		Power:     powerFromString(v.Power),
		Wide:      v.Wide,
		Kind:      kindFromString(v.Kind),
		DMRMode:   dmrModeFromString(v.DMRMode),
		ColorCode: v.ColorCode,
		TimeSlot:  v.TimeSlot,
		StepKHz:   v.StepKHz,
	}, nil
}

// ToPayloads encodes the symbolic document into a fresh set of raw session
// payloads, ready to hand to Session.WriteSession.
func ToPayloads(cp *Codeplug) (*rt5d.SessionPayloads, error) {
	p := rt5d.NewSessionPayloads()

	basicInfo, err := blocks.EncodeBasicInfo(&blocks.BasicInfo{
		ModelName: cp.RadioInfo.ModelName,
		ModelID:   cp.RadioInfo.ModelID,
	})
	if err != nil {
		return nil, &fieldError{"radioInfo", err}
	}
	copy(p.BasicInfo, basicInfo)

	dtmfBytes, err := blocks.EncodeDtmf(&blocks.Dtmf{
		CurrentID:  cp.Dtmf.CurrentID,
		PttID:      pttIDFromString(cp.Dtmf.PttID),
		DurationMS: cp.Dtmf.DurationMS,
		IntervalMS: cp.Dtmf.IntervalMS,
		CodeGroups: cp.Dtmf.CodeGroups,
	})
	if err != nil {
		return nil, &fieldError{"dtmf", err}
	}
	copy(p.DTMF, dtmfBytes)

	keySlots := make([]*blocks.EncKey, blocks.MaxEncKeys)
	for _, k := range cp.EncryptionKeys {
		if k.Slot < 1 || k.Slot > blocks.MaxEncKeys {
			return nil, &fieldError{"encryptionKeys", fmt.Errorf("slot %d out of range 1..%d", k.Slot, blocks.MaxEncKeys)}
		}
		keySlots[k.Slot-1] = &blocks.EncKey{Algorithm: algorithmFromString(k.Algorithm), Hex: k.Hex}
	}
	for i, k := range keySlots {
		rec, err := blocks.EncodeEncKey(k)
		if err != nil {
			return nil, &fieldError{fmt.Sprintf("encryptionKeys[%d]", i+1), err}
		}
		copy(p.EncryptionKeys[i*blocks.EncKeyRecordSize:], rec)
	}

	contactSlots := make([]*blocks.Contact, pack.Contacts)
	for _, c := range cp.Contacts {
		if c.Slot < 1 || c.Slot > pack.Contacts {
			return nil, &fieldError{"contacts", fmt.Errorf("slot %d out of range 1..%d", c.Slot, pack.Contacts)}
		}
		contactSlots[c.Slot-1] = &blocks.Contact{CallType: callTypeFromString(c.CallType), CallID: c.CallID, Name: c.Name}
	}
	contactsBuf, err := pack.PackContacts(contactSlots)
	if err != nil {
		return nil, &fieldError{"contacts", err}
	}
	copy(p.Contacts, contactsBuf)

	rxGroupSlots := make([]*blocks.RxGroup, pack.RxGroups)
	for _, g := range cp.RxGroups {
		if g.Slot < 1 || g.Slot > pack.RxGroups {
			return nil, &fieldError{"rxGroups", fmt.Errorf("slot %d out of range 1..%d", g.Slot, pack.RxGroups)}
		}
		rxGroupSlots[g.Slot-1] = &blocks.RxGroup{Name: g.Name, Members: g.Members}
	}
	rxGroupsBuf, err := pack.PackRxGroups(rxGroupSlots)
	if err != nil {
		return nil, &fieldError{"rxGroups", err}
	}
	copy(p.RxGroups, rxGroupsBuf)

	channelSlots := make([]*blocks.Channel, pack.Channels)
	for _, c := range cp.Channels {
		if c.Slot < 1 || c.Slot > pack.Channels {
			return nil, &fieldError{"channels", fmt.Errorf("slot %d out of range 1..%d", c.Slot, pack.Channels)}
		}
		rxFreq, err := fieldcodec.ParseFrequencyMHz(c.RxFreq)
		if err != nil {
			return nil, &fieldError{fmt.Sprintf("channels[%d].rxFreq", c.Slot), err}
		}
		txFreq, err := fieldcodec.ParseFrequencyMHz(c.TxFreq)
		if err != nil {
			return nil, &fieldError{fmt.Sprintf("channels[%d].txFreq", c.Slot), err}
		}
		rxTone, err := parseSubAudioOrOff(c.RxTone)
		if err != nil {
			return nil, &fieldError{fmt.Sprintf("channels[%d].rxTone", c.Slot), err}
		}
		txTone, err := parseSubAudioOrOff(c.TxTone)
		if err != nil {
			return nil, &fieldError{fmt.Sprintf("channels[%d].txTone", c.Slot), err}
		}
		channelSlots[c.Slot-1] = &blocks.Channel{
			RxFreq:    rxFreq,
			TxFreq:    txFreq,
			RxTone:    rxTone,
			TxTone:    txTone,
			Power:     powerFromString(c.Power),
			ScanAdd:   c.ScanAdd,
			Wide:      c.Wide,
			Kind:      kindFromString(c.Kind),
			DMRMode:   dmrModeFromString(c.DMRMode),
			ColorCode: c.ColorCode,
			TimeSlot:  c.TimeSlot,
			FHSS:      c.FHSS,
			Name:      c.Name,
		}
	}
	channelsBuf, err := pack.PackChannels(channelSlots)
	if err != nil {
		return nil, &fieldError{"channels", err}
	}
	copy(p.Channels, channelsBuf)

	vfoA, err := vfoFromDoc(cp.VfoBanks.A)
	if err != nil {
		return nil, &fieldError{"vfoBanks.a", err}
	}
	vfoB, err := vfoFromDoc(cp.VfoBanks.B)
	if err != nil {
		return nil, &fieldError{"vfoBanks.b", err}
	}
	vfoABytes, err := blocks.EncodeVfo(vfoA)
	if err != nil {
		return nil, &fieldError{"vfoBanks.a", err}
	}
	vfoBBytes, err := blocks.EncodeVfo(vfoB)
	if err != nil {
		return nil, &fieldError{"vfoBanks.b", err}
	}
	copy(p.VFO, vfoABytes)
	copy(p.VFO[blocks.VfoRecordSize:], vfoBBytes)

	s := cp.Settings
	optsBytes, err := blocks.EncodeOptions(&blocks.Options{
		Squelch:        s.Squelch,
		VoxLevel:       s.VoxLevel,
		VoicePrompt:    s.VoicePrompt,
		BacklightTimer: s.BacklightTimer,
		AutoLockMin:    s.AutoLockMin,
		TOTSeconds:     s.TOTSeconds,
		RogerBeep:      s.RogerBeep,
		BatterySave:    s.BatterySave,
		DualWatch:      s.DualWatch,
		ScanMode:       s.ScanMode,
		ScanResume:     s.ScanResume,
		KeyBeep:        s.KeyBeep,
		LEDMode:        s.LEDMode,
		BusyLock:       s.BusyLock,
		TailElim:       s.TailElim,
		RepeaterTail:   s.RepeaterTail,
		FMRadio:        s.FMRadio,
		SideKeyShort:   s.SideKeyShort,
		SideKeyLong:    s.SideKeyLong,
		PttIDEnable:    s.PttIDEnable,
		DisplayMode:    s.DisplayMode,
		PowerOnDisplay: s.PowerOnDisplay,
		Language:       s.Language,
		OffsetDir:      s.OffsetDir,
		ChannelLock:    s.ChannelLock,
		MainChannel:    mainChannelFromString(s.MainChannel),
		WorkModeACh:    workModeFromString(s.WorkModeACh),
		WorkModeBCh:    workModeFromString(s.WorkModeBCh),
		KeepCallTime:   s.KeepCallTime,
	})
	if err != nil {
		return nil, &fieldError{"settings", err}
	}
	copy(p.Options, optsBytes)

	return p, nil
}
