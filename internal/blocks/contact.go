package blocks

import (
	"fmt"

	"github.com/zardoz99/rt5d/internal/fieldcodec"
)

// ContactRecordSize is the fixed size of one contact record.
const ContactRecordSize = 16

// CallType discriminates a contact's DMR call type.
type CallType int

const (
	CallTypeGroup CallType = iota
	CallTypePrivate
	CallTypeAllCall
)

// Contact is one address-book entry.
type Contact struct {
	CallType CallType
	CallID   uint32 // 24-bit unsigned, 1..16,777,215
	Name     string // up to 10 bytes GB2312
}

// DecodeContact decodes a 16-byte contact record. A nil Contact with a nil
// error means the slot is empty (byte 0, 1, or 5 is 0xFF).
func DecodeContact(b []byte) (*Contact, error) {
	if len(b) != ContactRecordSize {
		return nil, fmt.Errorf("blocks: contact record must be %d bytes, got %d", ContactRecordSize, len(b))
	}
	if b[0] == 0xFF || b[1] == 0xFF || b[5] == 0xFF {
		return nil, nil
	}

	callType := CallType(b[0] & 0x0F)
	callID, err := fieldcodec.DecodeDMRID(b[2:5])
	if err != nil {
		return nil, err
	}
	name, err := fieldcodec.DecodeGB2312Field(b[5:15])
	if err != nil {
		return nil, err
	}

	return &Contact{CallType: callType, CallID: callID, Name: name}, nil
}

// EncodeContact encodes c into a 16-byte record. A nil c encodes the empty
// sentinel record.
func EncodeContact(c *Contact) ([]byte, error) {
	out := make([]byte, ContactRecordSize)
	fillFF(out)
	if c == nil {
		return out, nil
	}
	if c.CallID < 1 || c.CallID > 0xFFFFFF {
		return nil, fmt.Errorf("blocks: contact call ID %d out of range", c.CallID)
	}

	out[0] = byte(c.CallType) & 0x0F
	out[1] = 0x00

	idBytes, err := fieldcodec.EncodeDMRID(c.CallID)
	if err != nil {
		return nil, err
	}
	copy(out[2:5], idBytes)

	nameBytes, err := fieldcodec.EncodeGB2312Field(c.Name, 10)
	if err != nil {
		return nil, fmt.Errorf("blocks: contact name: %w", err)
	}
	copy(out[5:15], nameBytes)

	// Byte 15 is reserved and stays 0xFF.
	return out, nil
}
