package wire

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/zardoz99/rt5d/internal/transport"
)

// SOF is the start-of-frame sentinel byte.
const SOF byte = 0xA5

// maxPayloadLen bounds the announced LEN field well above the largest real
// packet this protocol ever sends (the 1024-byte channel/rx-group packets),
// so a corrupt length byte pair can't make ReadFrame block on an
// implausibly large read.
const maxPayloadLen = 4096

// ErrCrcMismatch is returned when a frame's trailing CRC does not match
// the CRC computed over its header+payload. Not retried: a wire problem
// won't be fixed by sending the same bytes again.
var ErrCrcMismatch = errors.New("wire: CRC mismatch")

// ErrMalformedLength is returned when the announced LEN field is larger
// than this implementation is willing to buffer.
var ErrMalformedLength = errors.New("wire: malformed length")

// Frame is one parsed request or response unit on the wire.
type Frame struct {
	CMD     byte
	Seq     uint16
	Payload []byte
}

// BuildFrame serializes (cmd, seq, payload) into the on-wire byte layout:
//
//	[0]        SOF  = 0xA5
//	[1]        CMD
//	[2..3]     SEQ      big-endian u16
//	[4..5]     LEN = N  big-endian u16
//	[6..6+N-1] PAYLOAD
//	[6+N..+1]  CRC-16   big-endian, over bytes [1..5+N]
func BuildFrame(cmd byte, seq uint16, payload []byte) []byte {
	n := len(payload)
	buf := make([]byte, 8+n)
	buf[0] = SOF
	buf[1] = cmd
	binary.BigEndian.PutUint16(buf[2:4], seq)
	binary.BigEndian.PutUint16(buf[4:6], uint16(n))
	copy(buf[6:6+n], payload)
	crc := CRC16(buf[1 : 6+n])
	binary.BigEndian.PutUint16(buf[6+n:8+n], crc)
	return buf
}

// ReadFrame runs the receive state machine once over tr: S1 scans for SOF,
// S2 reads the 5-byte header, S3 reads payload+CRC and validates it.
// Returns ErrCrcMismatch if the frame is well-formed but its CRC doesn't
// match, ErrMalformedLength if LEN exceeds what this implementation will
// buffer, or a transport error (including transport.ErrTimeout) if a read
// fails outright.
func ReadFrame(ctx context.Context, tr transport.Transport) (Frame, error) {
	// S1: scan for SOF.
	for {
		b, err := tr.ReadByte(ctx)
		if err != nil {
			return Frame{}, err
		}
		if b == SOF {
			break
		}
	}

	// S2: header.
	header, err := tr.ReadExact(ctx, 5)
	if err != nil {
		return Frame{}, err
	}
	cmd := header[0]
	seq := binary.BigEndian.Uint16(header[1:3])
	length := binary.BigEndian.Uint16(header[3:5])
	if length > maxPayloadLen {
		return Frame{}, ErrMalformedLength
	}

	// S3: body (payload + CRC).
	body, err := tr.ReadExact(ctx, int(length)+2)
	if err != nil {
		return Frame{}, err
	}
	payload := body[:length]
	gotCRC := binary.BigEndian.Uint16(body[length : length+2])

	crcInput := make([]byte, 0, 5+len(payload))
	crcInput = append(crcInput, header...)
	crcInput = append(crcInput, payload...)
	wantCRC := CRC16(crcInput)

	if gotCRC != wantCRC {
		return Frame{}, fmt.Errorf("%w: got %#04x want %#04x", ErrCrcMismatch, gotCRC, wantCRC)
	}

	return Frame{CMD: cmd, Seq: seq, Payload: append([]byte(nil), payload...)}, nil
}
