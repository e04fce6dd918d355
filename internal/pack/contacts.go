package pack

import (
	"fmt"

	"github.com/zardoz99/rt5d/internal/blocks"
)

// Contacts is the number of contact slots the radio exposes.
const Contacts = 4000

// PackContacts encodes up to Contacts entries into a 64000-byte buffer.
func PackContacts(slots []*blocks.Contact) ([]byte, error) {
	if len(slots) > Contacts {
		return nil, fmt.Errorf("pack: %d contacts exceeds max %d", len(slots), Contacts)
	}
	out := make([]byte, Contacts*blocks.ContactRecordSize)
	for i := 0; i < Contacts; i++ {
		var c *blocks.Contact
		if i < len(slots) {
			c = slots[i]
		}
		rec, err := blocks.EncodeContact(c)
		if err != nil {
			return nil, fmt.Errorf("pack: contact slot %d: %w", i, err)
		}
		copy(out[i*blocks.ContactRecordSize:], rec)
	}
	return out, nil
}

// UnpackContacts decodes a 64000-byte buffer into Contacts slots; empty
// slots are nil.
func UnpackContacts(buf []byte) ([]*blocks.Contact, error) {
	want := Contacts * blocks.ContactRecordSize
	if len(buf) != want {
		return nil, fmt.Errorf("pack: contacts buffer must be %d bytes, got %d", want, len(buf))
	}
	slots := make([]*blocks.Contact, Contacts)
	for i := 0; i < Contacts; i++ {
		rec := buf[i*blocks.ContactRecordSize : (i+1)*blocks.ContactRecordSize]
		c, err := blocks.DecodeContact(rec)
		if err != nil {
			return nil, fmt.Errorf("pack: contact slot %d: %w", i, err)
		}
		slots[i] = c
	}
	return slots, nil
}
