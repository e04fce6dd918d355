package blocks

import (
	"fmt"
	"strings"

	"github.com/zardoz99/rt5d/internal/fieldcodec"
)

// BasicInfoBlockSize is the fixed size of the basic info block.
const BasicInfoBlockSize = 64

const (
	biOffModelName = 8
	biModelNameLen = 12
	biOffModelID   = 20
	biModelIDLen   = 8
)

// BasicInfo is the radio's basic identification block.
type BasicInfo struct {
	ModelName string // up to 12 bytes GB2312
	ModelID   string // exactly 8 ASCII digits, left-padded with '0'
}

// DecodeBasicInfo decodes the 64-byte basic info block. A block left
// entirely unprogrammed (all 0xFF) falls back to an empty default rather
// than erroring on the non-digit model ID bytes.
func DecodeBasicInfo(b []byte) (*BasicInfo, error) {
	if len(b) != BasicInfoBlockSize {
		return nil, fmt.Errorf("blocks: basic info block must be %d bytes, got %d", BasicInfoBlockSize, len(b))
	}
	if allFF(b) {
		return &BasicInfo{ModelID: strings.Repeat("0", biModelIDLen)}, nil
	}

	modelName, err := fieldcodec.DecodeGB2312Field(b[biOffModelName : biOffModelName+biModelNameLen])
	if err != nil {
		return nil, err
	}

	idBytes := b[biOffModelID : biOffModelID+biModelIDLen]
	for _, c := range idBytes {
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("blocks: model ID must be ASCII digits, got % X", idBytes)
		}
	}

	return &BasicInfo{
		ModelName: modelName,
		ModelID:   string(idBytes),
	}, nil
}

// EncodeBasicInfo encodes info into the 64-byte basic info block.
func EncodeBasicInfo(info *BasicInfo) ([]byte, error) {
	out := make([]byte, BasicInfoBlockSize)
	fillFF(out)

	nameBytes, err := fieldcodec.EncodeGB2312Field(info.ModelName, biModelNameLen)
	if err != nil {
		return nil, fmt.Errorf("blocks: model name: %w", err)
	}
	copy(out[biOffModelName:], nameBytes)

	if len(info.ModelID) > biModelIDLen {
		return nil, fmt.Errorf("blocks: model ID %q exceeds %d digits", info.ModelID, biModelIDLen)
	}
	for _, c := range info.ModelID {
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("blocks: model ID must be ASCII digits, got %q", info.ModelID)
		}
	}
	padded := strings.Repeat("0", biModelIDLen-len(info.ModelID)) + info.ModelID
	copy(out[biOffModelID:], padded)

	return out, nil
}
