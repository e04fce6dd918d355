package rt5d

import (
	"bytes"
	"context"
	"encoding/binary"
	"testing"
	"time"

	"github.com/zardoz99/rt5d/internal/transport"
	"github.com/zardoz99/rt5d/internal/wire"
)

// fakeRadio behaves like the radio's protocol state machine: every Write
// of a valid request frame is answered with one canned response frame of
// the documented size for that step, available to the next Read calls.
type fakeRadio struct {
	pending []byte
}

func (r *fakeRadio) Write(ctx context.Context, p []byte) error {
	if len(p) < 6 {
		return nil
	}
	cmd := p[1]
	seq := binary.BigEndian.Uint16(p[2:4])

	var respLen int
	switch cmd {
	case cmdHandshake, cmdPassword, cmdEndSession:
		respLen = 0
	case cmdVersion:
		respLen = versionSize
	case cmdDtmfRead:
		respLen = dtmfSize
	case cmdKeysRead:
		respLen = keysSize
	case cmdContacts:
		respLen = contactsPacketSize
	case cmdRxGroups:
		respLen = rxGroupsPacketSize
	case cmdChannels:
		respLen = channelsPacketSize
	case cmdVFO:
		respLen = vfoSize
	case cmdOptions:
		respLen = optionsSize
	case cmdBasicInfo:
		respLen = basicInfoSize
	}

	payload := bytes.Repeat([]byte{0xFF}, respLen)
	r.pending = append(r.pending, wire.BuildFrame(cmd, seq, payload)...)
	return nil
}

func (r *fakeRadio) ReadExact(ctx context.Context, n int) ([]byte, error) {
	if n > len(r.pending) {
		return nil, transport.ErrTimeout
	}
	out := r.pending[:n]
	r.pending = r.pending[n:]
	return out, nil
}

func (r *fakeRadio) ReadByte(ctx context.Context) (byte, error) {
	b, err := r.ReadExact(ctx, 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *fakeRadio) DiscardInput() error { return nil }
func (r *fakeRadio) Close() error        { return nil }

var _ transport.Transport = (*fakeRadio)(nil)

func TestReadSessionFullSequence(t *testing.T) {
	var steps []Progress
	s := NewSession(&fakeRadio{}, WithProgress(func(p Progress) { steps = append(steps, p) }))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	payloads, err := s.ReadSession(ctx)
	if err != nil {
		t.Fatalf("ReadSession: %v", err)
	}

	if len(payloads.Version) != versionSize {
		t.Fatalf("Version size = %d", len(payloads.Version))
	}
	if len(payloads.Contacts) != contactsTotalSize {
		t.Fatalf("Contacts size = %d", len(payloads.Contacts))
	}
	if len(payloads.Channels) != channelsTotalSize {
		t.Fatalf("Channels size = %d", len(payloads.Channels))
	}
	if len(payloads.RxGroups) != rxGroupsTotalSize {
		t.Fatalf("RxGroups size = %d", len(payloads.RxGroups))
	}

	sawChannelsPacket63 := false
	for _, p := range steps {
		if p.Phase == "channels" && p.PacketIndex == 63 {
			sawChannelsPacket63 = true
		}
	}
	if !sawChannelsPacket63 {
		t.Fatalf("expected progress report for the last channels packet")
	}
}

func TestWriteSessionRunsVerifyRead(t *testing.T) {
	s := NewSession(&fakeRadio{})
	p := NewSessionPayloads()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := s.WriteSession(ctx, p, WriteOptions{}); err != nil {
		t.Fatalf("WriteSession: %v", err)
	}
}
