package rt5d

import (
	"context"
	"errors"
	"time"

	"github.com/zardoz99/rt5d/internal/logx"
	"github.com/zardoz99/rt5d/internal/transport"
	"github.com/zardoz99/rt5d/internal/wire"
)

// retryWindow and maxRetries implement spec.md's send_receive contract:
// wait up to 1s for a response, retry up to 3 times (4 attempts total).
const (
	retryWindow = 1 * time.Second
	maxRetries  = 3
)

// sendReceive builds and transmits one frame, waits for a matching
// response within retryWindow (silently dropping NAK frames without
// consuming a retry), and retransmits up to maxRetries times on timeout.
// A CRC mismatch fails immediately with no retry: it indicates a wire
// problem retries won't fix.
func (s *Session) sendReceive(ctx context.Context, cmd byte, seq uint16, payload []byte) (wire.Frame, error) {
	frameBytes := wire.BuildFrame(cmd, seq, payload)

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			if err := s.tr.DiscardInput(); err != nil {
				return wire.Frame{}, err
			}
		}
		if err := s.tr.Write(ctx, frameBytes); err != nil {
			return wire.Frame{}, err
		}

		attemptCtx, cancel := context.WithTimeout(ctx, retryWindow)
		frame, err := readNonNAK(attemptCtx, s.tr)
		cancel()

		if err == nil {
			if s.log != nil {
				s.log.Debug("send_receive ok",
					logx.Int("cmd", int(cmd)), logx.Int("seq", int(seq)), logx.Int("attempt", attempt))
			}
			return frame, nil
		}

		if errors.Is(err, wire.ErrCrcMismatch) {
			if s.log != nil {
				s.log.Debug("send_receive CRC mismatch",
					logx.Int("cmd", int(cmd)), logx.Int("seq", int(seq)), logx.Int("attempt", attempt), logx.Error(err))
			}
			return wire.Frame{}, err
		}
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, transport.ErrTimeout) {
			if s.log != nil {
				s.log.Debug("send_receive timeout, retrying",
					logx.Int("cmd", int(cmd)), logx.Int("seq", int(seq)), logx.Int("attempt", attempt))
			}
			continue
		}
		// Any other error (context cancellation, transport failure) aborts
		// the whole exchange; retrying won't help.
		if s.log != nil {
			s.log.Debug("send_receive failed",
				logx.Int("cmd", int(cmd)), logx.Int("seq", int(seq)), logx.Int("attempt", attempt), logx.Error(err))
		}
		return wire.Frame{}, err
	}

	return wire.Frame{}, ErrRetryExhausted
}

// readNonNAK reads frames from tr until one is not a NAK (CMD == 0xEE) or
// ctx expires. A NAK carries no useful information but does not constitute
// a failed attempt.
func readNonNAK(ctx context.Context, tr transport.Transport) (wire.Frame, error) {
	for {
		frame, err := wire.ReadFrame(ctx, tr)
		if err != nil {
			return wire.Frame{}, err
		}
		if frame.CMD == nakCMD {
			continue
		}
		return frame, nil
	}
}
