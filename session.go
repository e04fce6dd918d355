package rt5d

import (
	"context"
	"fmt"
	"time"

	"github.com/zardoz99/rt5d/internal/logx"
	"github.com/zardoz99/rt5d/internal/transport"
)

// restartWait is how long the radio takes to restart after a write
// session's end-session step, before the mandatory verify read may begin.
const restartWait = 10 * time.Second

// Option configures a Session.
type Option func(*Session)

// WithLogger attaches a logger; nil (the default) disables logging.
func WithLogger(l *logx.Logger) Option {
	return func(s *Session) { s.log = l }
}

// WithProgress attaches a progress observer; nil (the default) disables
// progress reporting.
func WithProgress(fn ProgressFunc) Option {
	return func(s *Session) { s.progress = fn }
}

// Session drives the ordered twelve-step sequence over a single Transport.
// One Session corresponds to exactly one radio session; no state survives
// between sessions.
type Session struct {
	tr       transport.Transport
	log      *logx.Logger
	progress ProgressFunc
}

// NewSession constructs a Session over tr.
func NewSession(tr transport.Transport, opts ...Option) *Session {
	s := &Session{tr: tr}
	for _, o := range opts {
		o(s)
	}
	return s
}

// WriteOptions controls optional steps of a write session.
type WriteOptions struct {
	// IncludeBasicInfo writes step 11 (basic info). Basic info is always
	// read, but only written when the caller explicitly opts in.
	IncludeBasicInfo bool
}

func expectSize(step string, got []byte, want int) error {
	if len(got) != want {
		return fmt.Errorf("%w: step %s got %d bytes, want %d", ErrWrongSize, step, len(got), want)
	}
	return nil
}

func (s *Session) handshake(ctx context.Context) error {
	s.report("handshake", 0, 1)
	_, err := s.sendReceive(ctx, cmdHandshake, 0, handshakePayload)
	return err
}

func (s *Session) password(ctx context.Context) error {
	s.report("password", 0, 1)
	_, err := s.sendReceive(ctx, cmdPassword, 0, defaultPassword)
	return err
}

func (s *Session) version(ctx context.Context) ([]byte, error) {
	s.report("version", 0, 1)
	frame, err := s.sendReceive(ctx, cmdVersion, 0, nil)
	if err != nil {
		return nil, err
	}
	if err := expectSize("version", frame.Payload, versionSize); err != nil {
		return nil, err
	}
	return frame.Payload, nil
}

func (s *Session) endSession(ctx context.Context) error {
	s.report("end", 0, 1)
	_, err := s.sendReceive(ctx, cmdEndSession, 0, endSessionPayload)
	return err
}

// preamble runs the handshake/password/version steps shared by read and
// write sessions (steps 1-3). Version is required even for writes.
func (s *Session) preamble(ctx context.Context) (version []byte, err error) {
	if err := s.handshake(ctx); err != nil {
		return nil, err
	}
	if err := s.password(ctx); err != nil {
		return nil, err
	}
	return s.version(ctx)
}

// Info performs steps 1-3 and 12 only (handshake, password, version read,
// end session) and returns the raw 128-byte version block, without
// touching any codeplug block. Used by the CLI's info command.
func (s *Session) Info(ctx context.Context) ([]byte, error) {
	version, err := s.preamble(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.endSession(ctx); err != nil {
		return nil, err
	}
	return version, nil
}

// ReadSession executes the full read session (steps 1-12 with read
// opcodes) and returns the raw payloads of every block.
func (s *Session) ReadSession(ctx context.Context) (*SessionPayloads, error) {
	p := NewSessionPayloads()

	version, err := s.preamble(ctx)
	if err != nil {
		return nil, err
	}
	p.Version = version

	s.report("dtmf", 0, 1)
	frame, err := s.sendReceive(ctx, cmdDtmfRead, 0, nil)
	if err != nil {
		return nil, err
	}
	if err := expectSize("dtmf", frame.Payload, dtmfSize); err != nil {
		return nil, err
	}
	p.DTMF = frame.Payload

	s.report("encryption-keys", 0, 1)
	frame, err = s.sendReceive(ctx, cmdKeysRead, 0, nil)
	if err != nil {
		return nil, err
	}
	if err := expectSize("encryption-keys", frame.Payload, keysSize); err != nil {
		return nil, err
	}
	p.EncryptionKeys = frame.Payload

	for i := 0; i < contactsPacketCount; i++ {
		s.report("contacts", i, contactsPacketCount)
		frame, err = s.sendReceive(ctx, cmdContacts, uint16(i), nil)
		if err != nil {
			return nil, err
		}
		if err := expectSize("contacts", frame.Payload, contactsPacketSize); err != nil {
			return nil, err
		}
		copy(p.contactsPacket(i), frame.Payload)
	}

	for i := 0; i < rxGroupsPacketCount; i++ {
		s.report("rx-groups", i, rxGroupsPacketCount)
		frame, err = s.sendReceive(ctx, cmdRxGroups, uint16(i), nil)
		if err != nil {
			return nil, err
		}
		if err := expectSize("rx-groups", frame.Payload, rxGroupsPacketSize); err != nil {
			return nil, err
		}
		copy(p.rxGroupsPacket(i), frame.Payload)
	}

	for i := 0; i < channelsPacketCount; i++ {
		s.report("channels", i, channelsPacketCount)
		frame, err = s.sendReceive(ctx, cmdChannels, uint16(i), nil)
		if err != nil {
			return nil, err
		}
		if err := expectSize("channels", frame.Payload, channelsPacketSize); err != nil {
			return nil, err
		}
		copy(p.channelsPacket(i), frame.Payload)
	}

	s.report("vfo", 0, 1)
	frame, err = s.sendReceive(ctx, cmdVFO, 0, nil)
	if err != nil {
		return nil, err
	}
	if err := expectSize("vfo", frame.Payload, vfoSize); err != nil {
		return nil, err
	}
	p.VFO = frame.Payload

	s.report("options", 0, 1)
	frame, err = s.sendReceive(ctx, cmdOptions, 0, nil)
	if err != nil {
		return nil, err
	}
	if err := expectSize("options", frame.Payload, optionsSize); err != nil {
		return nil, err
	}
	p.Options = frame.Payload

	s.report("basic-info", 0, 1)
	frame, err = s.sendReceive(ctx, cmdBasicInfo, 0, nil)
	if err != nil {
		return nil, err
	}
	if err := expectSize("basic-info", frame.Payload, basicInfoSize); err != nil {
		return nil, err
	}
	p.BasicInfo = frame.Payload

	if err := s.endSession(ctx); err != nil {
		return nil, err
	}

	return p, nil
}

// WriteSession executes the full write session: steps 1-3 (read opcodes
// for handshake/password/version), then steps 4-10 with write opcodes
// carrying p's payloads, optionally step 11, then step 12. After closing
// the session it waits restartWait for the radio to restart and performs a
// full verify read; success is reported only if that verify read completes
// cleanly.
func (s *Session) WriteSession(ctx context.Context, p *SessionPayloads, opts WriteOptions) error {
	if err := expectSize("dtmf", p.DTMF, dtmfSize); err != nil {
		return err
	}
	if err := expectSize("encryption-keys", p.EncryptionKeys, keysSize); err != nil {
		return err
	}
	if err := expectSize("contacts", p.Contacts, contactsTotalSize); err != nil {
		return err
	}
	if err := expectSize("rx-groups", p.RxGroups, rxGroupsTotalSize); err != nil {
		return err
	}
	if err := expectSize("channels", p.Channels, channelsTotalSize); err != nil {
		return err
	}
	if err := expectSize("vfo", p.VFO, vfoSize); err != nil {
		return err
	}
	if err := expectSize("options", p.Options, optionsSize); err != nil {
		return err
	}
	if err := expectSize("basic-info", p.BasicInfo, basicInfoSize); err != nil {
		return err
	}

	if _, err := s.preamble(ctx); err != nil {
		return err
	}

	s.report("dtmf", 0, 1)
	if _, err := s.sendReceive(ctx, cmdDtmfWrite, 0, p.DTMF); err != nil {
		return err
	}

	s.report("encryption-keys", 0, 1)
	if _, err := s.sendReceive(ctx, cmdKeysWrite, 0, p.EncryptionKeys); err != nil {
		return err
	}

	for i := 0; i < contactsPacketCount; i++ {
		s.report("contacts", i, contactsPacketCount)
		if _, err := s.sendReceive(ctx, cmdContactsWr, uint16(i), p.contactsPacket(i)); err != nil {
			return err
		}
	}

	for i := 0; i < rxGroupsPacketCount; i++ {
		s.report("rx-groups", i, rxGroupsPacketCount)
		if _, err := s.sendReceive(ctx, cmdRxGroupsWr, uint16(i), p.rxGroupsPacket(i)); err != nil {
			return err
		}
	}

	for i := 0; i < channelsPacketCount; i++ {
		s.report("channels", i, channelsPacketCount)
		if _, err := s.sendReceive(ctx, cmdChannelsWr, uint16(i), p.channelsPacket(i)); err != nil {
			return err
		}
	}

	s.report("vfo", 0, 1)
	if _, err := s.sendReceive(ctx, cmdVFOWr, 0, p.VFO); err != nil {
		return err
	}

	s.report("options", 0, 1)
	if _, err := s.sendReceive(ctx, cmdOptionsWr, 0, p.Options); err != nil {
		return err
	}

	if opts.IncludeBasicInfo {
		s.report("basic-info", 0, 1)
		if _, err := s.sendReceive(ctx, cmdBasicInfoW, 0, p.BasicInfo); err != nil {
			return err
		}
	}

	if err := s.endSession(ctx); err != nil {
		return err
	}

	s.report("restart-wait", 0, 1)
	select {
	case <-time.After(restartWait):
	case <-ctx.Done():
		return ctx.Err()
	}

	s.report("verify", 0, 1)
	if _, err := s.ReadSession(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrVerifyFailed, err)
	}

	return nil
}
