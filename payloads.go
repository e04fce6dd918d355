package rt5d

// SessionPayloads is the raw hand-off between the wire layer and the
// binary codec layer: the raw bytes of the version block and of the eight
// codeplug blocks, each sized exactly as the session table documents.
// Multi-packet blocks (Contacts, RxGroups, Channels) are flattened into one
// contiguous buffer; contactsPacket, rxGroupsPacket and channelsPacket
// return the per-packet slice views over it.
type SessionPayloads struct {
	Version        []byte
	DTMF           []byte
	EncryptionKeys []byte
	Contacts       []byte
	RxGroups       []byte
	Channels       []byte
	VFO            []byte
	Options        []byte
	BasicInfo      []byte
}

// NewSessionPayloads allocates a SessionPayloads with every block at its
// documented size, filled with 0xFF (the radio's "unused" sentinel byte).
func NewSessionPayloads() *SessionPayloads {
	p := &SessionPayloads{
		Version:        make([]byte, versionSize),
		DTMF:           make([]byte, dtmfSize),
		EncryptionKeys: make([]byte, keysSize),
		Contacts:       make([]byte, contactsTotalSize),
		RxGroups:       make([]byte, rxGroupsTotalSize),
		Channels:       make([]byte, channelsTotalSize),
		VFO:            make([]byte, vfoSize),
		Options:        make([]byte, optionsSize),
		BasicInfo:      make([]byte, basicInfoSize),
	}
	fill := func(b []byte) {
		for i := range b {
			b[i] = 0xFF
		}
	}
	fill(p.Version)
	fill(p.DTMF)
	fill(p.EncryptionKeys)
	fill(p.Contacts)
	fill(p.RxGroups)
	fill(p.Channels)
	fill(p.VFO)
	fill(p.Options)
	fill(p.BasicInfo)
	return p
}

// contactsPacket returns the i-th (0-based) 800-byte contacts packet.
func (p *SessionPayloads) contactsPacket(i int) []byte {
	return p.Contacts[i*contactsPacketSize : (i+1)*contactsPacketSize]
}

// rxGroupsPacket returns the i-th (0-based) 1024-byte rx-group packet.
func (p *SessionPayloads) rxGroupsPacket(i int) []byte {
	return p.RxGroups[i*rxGroupsPacketSize : (i+1)*rxGroupsPacketSize]
}

// channelsPacket returns the i-th (0-based) 1024-byte channel packet.
func (p *SessionPayloads) channelsPacket(i int) []byte {
	return p.Channels[i*channelsPacketSize : (i+1)*channelsPacketSize]
}
