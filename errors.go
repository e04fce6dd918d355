// Package rt5d drives the twelve-step ordered session that reads or writes
// a JJCC-888DMR / RT-5D codeplug over the programming cable. It sits above
// internal/wire (framing+CRC) and internal/transport (the serial byte
// stream), and below codeplug (the symbolic document binding).
package rt5d

import "errors"

// ErrRetryExhausted is returned when all attempts of a send_receive
// exchange time out.
var ErrRetryExhausted = errors.New("rt5d: retry exhausted")

// ErrWrongSize is returned when a step's response payload is not the
// documented exact size for that step.
var ErrWrongSize = errors.New("rt5d: wrong payload size")

// ErrVerifyFailed is returned when the post-write verify read does not
// complete cleanly.
var ErrVerifyFailed = errors.New("rt5d: write verification failed")
