package rt5d

// Command bytes for each of the twelve session steps. Where a step has
// distinct read/write opcodes both are listed; steps 1-3 and 12 share one
// opcode regardless of session direction.
const (
	cmdHandshake  byte = 0x02
	cmdPassword   byte = 0x05
	cmdVersion    byte = 0x46
	cmdDtmfRead   byte = 0x16
	cmdDtmfWrite  byte = 0x36
	cmdKeysRead   byte = 0x15
	cmdKeysWrite  byte = 0x35
	cmdContacts   byte = 0x13
	cmdContactsWr byte = 0x33
	cmdRxGroups   byte = 0x14
	cmdRxGroupsWr byte = 0x34
	cmdChannels   byte = 0x10
	cmdChannelsWr byte = 0x30
	cmdVFO        byte = 0x11
	cmdVFOWr      byte = 0x31
	cmdOptions    byte = 0x12
	cmdOptionsWr  byte = 0x32
	cmdBasicInfo  byte = 0x19
	cmdBasicInfoW byte = 0x39
	cmdEndSession byte = 0x01

	nakCMD byte = 0xEE
)

// handshakePayload is the fixed 15-byte handshake string step 1 always
// sends, in both read and write sessions.
var handshakePayload = []byte("PROGRAMJC8810DU")

// defaultPassword is the hard-coded blank password sent in step 2.
// Non-blank passwords are not implemented.
var defaultPassword = []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}

// endSessionPayload is step 12's fixed 2-byte payload.
var endSessionPayload = []byte{0x00, 0x00}

// Exact documented sizes for each block's total raw payload, and the
// packet geometry for the three multi-packet blocks.
const (
	versionSize   = 128
	dtmfSize      = 272
	keysSize      = 264
	vfoSize       = 128
	optionsSize   = 64
	basicInfoSize = 64

	contactsPacketSize  = 800
	contactsPacketCount = 80
	contactsTotalSize   = contactsPacketSize * contactsPacketCount // 64000

	rxGroupsPacketSize  = 1024
	rxGroupsPacketCount = 4
	rxGroupsTotalSize   = rxGroupsPacketSize * rxGroupsPacketCount // 4096

	channelsPacketSize  = 1024
	channelsPacketCount = 64
	channelsTotalSize   = channelsPacketSize * channelsPacketCount // 65536
)
