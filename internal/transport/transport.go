// Package transport implements the byte-level serial connection (L0) to the
// radio: opening the programming cable's virtual COM port, asserting
// DTR/RTS, and exact-length reads/writes bounded by a cancellation signal.
package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"go.bug.st/serial"
)

// ErrTransport wraps every I/O-level failure: a closed port, an OS error,
// or a zero-byte read that signals the far end went away.
var ErrTransport = errors.New("transport error")

// ErrTimeout is returned by ReadExact/ReadByte when per-byte inactivity
// exceeds the configured read window without the requested byte count
// arriving.
var ErrTimeout = errors.New("transport: read timeout")

// readWindow bounds per-Read inactivity. It is intentionally longer than
// the 1s retry window of the session's send_receive loop (package rt5d) so
// that loop, not this layer, decides when to give up and retransmit.
const readWindow = 2 * time.Second

// settleDelay is how long we wait after opening the port before sending
// the first byte, to let the cable's switching circuitry stabilize.
const settleDelay = 200 * time.Millisecond

// Transport is the byte-level contract the framing layer builds on.
type Transport interface {
	Write(ctx context.Context, p []byte) error
	ReadExact(ctx context.Context, n int) ([]byte, error)
	ReadByte(ctx context.Context) (byte, error)
	DiscardInput() error
	Close() error
}

// Serial is a Transport backed by a real serial port.
type Serial struct {
	port serial.Port

	writeMu sync.Mutex
}

// Open opens portName at 115200 8N1, no parity, no flow control, asserts
// DTR and RTS (the programming cable uses these lines for power/enable),
// and waits settleDelay before returning.
func Open(portName string) (*Serial, error) {
	mode := &serial.Mode{
		BaudRate: 115200,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	port, err := serial.Open(portName, mode)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrTransport, portName, err)
	}
	if err := port.SetDTR(true); err != nil {
		port.Close()
		return nil, fmt.Errorf("%w: set DTR: %v", ErrTransport, err)
	}
	if err := port.SetRTS(true); err != nil {
		port.Close()
		return nil, fmt.Errorf("%w: set RTS: %v", ErrTransport, err)
	}
	if err := port.SetReadTimeout(readWindow); err != nil {
		port.Close()
		return nil, fmt.Errorf("%w: set read timeout: %v", ErrTransport, err)
	}

	time.Sleep(settleDelay)

	return &Serial{port: port}, nil
}

// Write enqueues all of p, serialized across concurrent callers.
func (s *Serial) Write(ctx context.Context, p []byte) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	n, err := s.port.Write(p)
	if err != nil {
		return fmt.Errorf("%w: write: %v", ErrTransport, err)
	}
	if n != len(p) {
		return fmt.Errorf("%w: short write (%d of %d bytes)", ErrTransport, n, len(p))
	}
	return nil
}

// ReadExact returns exactly n bytes, or ErrTimeout if per-byte inactivity
// exceeds readWindow, or ErrTransport on a genuine I/O failure. The
// underlying serial library has no context support, so cancellation is
// polled between individual Read syscalls rather than interrupting one in
// flight.
func (s *Serial) ReadExact(ctx context.Context, n int) ([]byte, error) {
	buf := make([]byte, n)
	got := 0
	for got < n {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		m, err := s.port.Read(buf[got:])
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("%w: port closed", ErrTransport)
			}
			return nil, fmt.Errorf("%w: read: %v", ErrTransport, err)
		}
		if m == 0 {
			return nil, ErrTimeout
		}
		got += m
	}
	return buf, nil
}

// ReadByte is a convenience wrapper over ReadExact(ctx, 1).
func (s *Serial) ReadByte(ctx context.Context) (byte, error) {
	b, err := s.ReadExact(ctx, 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// DiscardInput empties the OS receive buffer. Called before a retransmit
// so a stale response from a previous attempt can't be mistaken for the
// reply to the new one.
func (s *Serial) DiscardInput() error {
	if err := s.port.ResetInputBuffer(); err != nil {
		return fmt.Errorf("%w: discard input: %v", ErrTransport, err)
	}
	return nil
}

// Close releases the underlying port.
func (s *Serial) Close() error {
	return s.port.Close()
}
