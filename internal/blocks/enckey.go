package blocks

import (
	"fmt"

	"github.com/zardoz99/rt5d/internal/fieldcodec"
)

// EncKeyRecordSize is the fixed size of one encryption key slot.
const EncKeyRecordSize = 33

// MaxEncKeys is the number of encryption key slots.
const MaxEncKeys = 8

// Algorithm identifies a basic-privacy encryption algorithm. Each
// algorithm fixes the key's hex-digit length.
type Algorithm int

const (
	AlgorithmNone Algorithm = iota
	AlgorithmArc4
	AlgorithmAes128
	AlgorithmAes256
)

// algorithmHexLen is the required hex-digit count per algorithm.
var algorithmHexLen = map[Algorithm]int{
	AlgorithmArc4:   10,
	AlgorithmAes128: 32,
	AlgorithmAes256: 64,
}

const (
	ekOffAlgorithm = 0
	ekOffHex       = 1
	ekHexLen       = 32 // bytes available for the packed hex digits
)

// EncKey is one basic-privacy encryption key, stored as uppercase hex.
type EncKey struct {
	Algorithm Algorithm
	Hex       string // hex digits, length fixed by Algorithm
}

// DecodeEncKey decodes a 33-byte encryption key record. A nil result means
// the slot is unused (bytes 0 and 1 are both 0xFF).
func DecodeEncKey(b []byte) (*EncKey, error) {
	if len(b) != EncKeyRecordSize {
		return nil, fmt.Errorf("blocks: encryption key record must be %d bytes, got %d", EncKeyRecordSize, len(b))
	}
	if b[ekOffAlgorithm] == 0xFF && b[ekOffHex] == 0xFF {
		return nil, nil
	}
	alg := Algorithm(b[ekOffAlgorithm])
	digitLen, ok := algorithmHexLen[alg]
	if !ok {
		return nil, fmt.Errorf("blocks: unknown encryption algorithm tag %d", b[ekOffAlgorithm])
	}
	hex, err := fieldcodec.DecodeHexKeyField(b[ekOffHex:ekOffHex+ekHexLen], digitLen)
	if err != nil {
		return nil, err
	}
	return &EncKey{Algorithm: alg, Hex: hex}, nil
}

// EncodeEncKey encodes k into a 33-byte record. A nil k encodes the unused
// sentinel record (bytes 0 and 1 both 0xFF).
func EncodeEncKey(k *EncKey) ([]byte, error) {
	out := make([]byte, EncKeyRecordSize)
	fillFF(out)
	if k == nil {
		return out, nil
	}

	wantLen, ok := algorithmHexLen[k.Algorithm]
	if !ok {
		return nil, fmt.Errorf("blocks: unknown encryption algorithm %d", k.Algorithm)
	}
	if len(k.Hex) != wantLen {
		return nil, fmt.Errorf("blocks: %v key must be %d hex digits, got %d", k.Algorithm, wantLen, len(k.Hex))
	}

	hexBytes, err := fieldcodec.EncodeHexKeyField(k.Hex, wantLen, ekHexLen)
	if err != nil {
		return nil, fmt.Errorf("blocks: encryption key: %w", err)
	}
	out[ekOffAlgorithm] = byte(k.Algorithm)
	copy(out[ekOffHex:], hexBytes)

	return out, nil
}
