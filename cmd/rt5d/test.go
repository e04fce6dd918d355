package main

import (
	"bytes"
	"fmt"

	"github.com/zardoz99/rt5d/internal/blocks"
	"github.com/zardoz99/rt5d/internal/fieldcodec"
	"github.com/zardoz99/rt5d/internal/pack"
	"github.com/zardoz99/rt5d/internal/wire"
)

type selfCheck struct {
	name string
	run  func() error
}

// selfChecks runs the quantified invariants and concrete scenarios of the
// testable-properties section as in-process checks.
var selfChecks = []selfCheck{
	{"crc16 known vector", checkCRC16Vector},
	{"handshake frame bytes", checkHandshakeFrame},
	{"password frame bytes", checkPasswordFrame},
	{"channel write header", checkChannelWriteHeader},
	{"ctcss 88.5 round trip", checkCTCSSRoundTrip},
	{"dcs d023i round trip", checkDCSRoundTrip},
	{"frequency 145.5 MHz round trip", checkFrequencyRoundTrip},
	{"channel tier II round trip", checkChannelTierII},
	{"vfo default substitution", checkVfoDefaults},
	{"rx group member terminator", checkRxGroupTerminator},
	{"empty channel packer round trip", checkEmptyPackerRoundTrip},
}

func runTest(args []string) int {
	fs, _ := newFlagSet("test")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	allPass := true
	for _, c := range selfChecks {
		if err := c.run(); err != nil {
			fmt.Printf("FAIL %s: %v\n", c.name, err)
			allPass = false
			continue
		}
		fmt.Printf("PASS %s\n", c.name)
	}

	if !allPass {
		return exitUsage
	}
	return exitOK
}

func checkCRC16Vector() error {
	got := wire.CRC16([]byte("123456789"))
	if got != 0x31C3 {
		return fmt.Errorf("CRC16(\"123456789\") = %#04x, want 0x31C3", got)
	}
	return nil
}

func checkHandshakeFrame() error {
	frame := wire.BuildFrame(0x02, 0, []byte("PROGRAMJC8810DU"))
	want := []byte{0xA5, 0x02, 0x00, 0x00, 0x00, 0x0F}
	if !bytes.Equal(frame[:6], want) {
		return fmt.Errorf("header = % x, want % x", frame[:6], want)
	}
	if frame[6] != 'P' || frame[20] != 'U' {
		return fmt.Errorf("payload boundary bytes wrong: [6]=%#02x [20]=%#02x", frame[6], frame[20])
	}
	if len(frame) != 23 {
		return fmt.Errorf("frame length = %d, want 23", len(frame))
	}
	return nil
}

func checkPasswordFrame() error {
	frame := wire.BuildFrame(0x05, 0, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF})
	if frame[1] != 0x05 || frame[5] != 0x06 || frame[6] != 0xFF {
		return fmt.Errorf("header bytes wrong: [1]=%#02x [5]=%#02x [6]=%#02x", frame[1], frame[5], frame[6])
	}
	if len(frame) != 14 {
		return fmt.Errorf("frame length = %d, want 14", len(frame))
	}
	return nil
}

func checkChannelWriteHeader() error {
	frame := wire.BuildFrame(0x30, 0, make([]byte, 1024))
	want := []byte{0x04, 0x00}
	if !bytes.Equal(frame[4:6], want) {
		return fmt.Errorf("length field = % x, want % x", frame[4:6], want)
	}
	if len(frame) != 1032 {
		return fmt.Errorf("frame length = %d, want 1032", len(frame))
	}
	return nil
}

func checkCTCSSRoundTrip() error {
	sa := fieldcodec.CTCSS(88.5)
	b, err := fieldcodec.EncodeSubAudio(sa)
	if err != nil {
		return err
	}
	want := []byte{0x75, 0x03}
	if !bytes.Equal(b, want) {
		return fmt.Errorf("encoded = % x, want % x", b, want)
	}
	back, err := fieldcodec.DecodeSubAudio(b)
	if err != nil {
		return err
	}
	if back.Kind != fieldcodec.SubAudioCTCSS || back.CTCSSHz != 88.5 {
		return fmt.Errorf("decoded = %+v, want CTCSS 88.5", back)
	}
	return nil
}

func checkDCSRoundTrip() error {
	sa, err := fieldcodec.ParseSubAudio("D023I")
	if err != nil {
		return err
	}
	b, err := fieldcodec.EncodeSubAudio(sa)
	if err != nil {
		return err
	}
	want := []byte{0x6A, 0x00}
	if !bytes.Equal(b, want) {
		return fmt.Errorf("encoded = % x, want % x", b, want)
	}
	back, err := fieldcodec.DecodeSubAudio(b)
	if err != nil {
		return err
	}
	if back.DCSCode != "D023I" {
		return fmt.Errorf("decoded code = %q, want D023I", back.DCSCode)
	}
	return nil
}

func checkFrequencyRoundTrip() error {
	raw, err := fieldcodec.ParseFrequencyMHz("145.5")
	if err != nil {
		return err
	}
	b := fieldcodec.EncodeFrequencyBytes(raw)
	want := []byte{0xF0, 0x03, 0xDE, 0x00}
	if !bytes.Equal(b, want) {
		return fmt.Errorf("encoded = % x, want % x", b, want)
	}
	back, err := fieldcodec.DecodeFrequencyBytes(b)
	if err != nil {
		return err
	}
	if fieldcodec.FormatFrequencyMHz(back) != "145.500000" {
		return fmt.Errorf("round trip = %s, want 145.500000", fieldcodec.FormatFrequencyMHz(back))
	}
	return nil
}

func checkChannelTierII() error {
	c := &blocks.Channel{
		RxFreq: mustFreq("441.0"), TxFreq: mustFreq("446.0"),
		RxTone: fieldcodec.Off, TxTone: fieldcodec.Off,
		Power: blocks.PowerHigh, Kind: blocks.ChannelDMR, DMRMode: blocks.DMRTierII,
		ColorCode: 7, TimeSlot: 1, Name: "Repeater",
	}
	enc, err := blocks.EncodeChannel(c)
	if err != nil {
		return err
	}
	if enc[14]&0x0F != 0 {
		return fmt.Errorf("byte 14 low nibble = %d, want 0", enc[14]&0x0F)
	}
	if enc[15]&0x0F != 1 {
		return fmt.Errorf("byte 15 low nibble = %d, want 1", enc[15]&0x0F)
	}
	dec, err := blocks.DecodeChannel(enc)
	if err != nil {
		return err
	}
	if dec.ColorCode != 7 || dec.TimeSlot != 1 {
		return fmt.Errorf("decoded ColorCode/TimeSlot = %d/%d, want 7/1", dec.ColorCode, dec.TimeSlot)
	}
	return nil
}

func checkVfoDefaults() error {
	buf := make([]byte, blocks.VfoRecordSize)
	for i := range buf {
		buf[i] = 0xFF
	}
	a, err := blocks.DecodeVfo(buf, blocks.VfoBankA)
	if err != nil {
		return err
	}
	if fieldcodec.FormatFrequencyMHz(a.RxFreq) != "136.125000" {
		return fmt.Errorf("bank A default = %s, want 136.125000", fieldcodec.FormatFrequencyMHz(a.RxFreq))
	}
	b, err := blocks.DecodeVfo(buf, blocks.VfoBankB)
	if err != nil {
		return err
	}
	if fieldcodec.FormatFrequencyMHz(b.RxFreq) != "400.125000" {
		return fmt.Errorf("bank B default = %s, want 400.125000", fieldcodec.FormatFrequencyMHz(b.RxFreq))
	}
	return nil
}

func checkRxGroupTerminator() error {
	g := &blocks.RxGroup{Name: "G1", Members: []uint32{1, 2, 3}}
	enc, err := blocks.EncodeRxGroup(g)
	if err != nil {
		return err
	}
	want := []byte{0x00, 0x00, 0x00}
	if !bytes.Equal(enc[9:12], want) {
		return fmt.Errorf("terminator bytes = % x, want % x", enc[9:12], want)
	}
	return nil
}

func checkEmptyPackerRoundTrip() error {
	buf, err := pack.PackChannels(nil)
	if err != nil {
		return err
	}
	for _, b := range buf {
		if b != 0xFF {
			return fmt.Errorf("packed empty buffer has non-0xFF byte")
		}
	}
	slots, err := pack.UnpackChannels(buf)
	if err != nil {
		return err
	}
	for i, s := range slots {
		if s != nil {
			return fmt.Errorf("slot %d decoded non-nil from empty buffer", i)
		}
	}
	return nil
}

func mustFreq(mhz string) uint32 {
	raw, err := fieldcodec.ParseFrequencyMHz(mhz)
	if err != nil {
		panic(err)
	}
	return raw
}
