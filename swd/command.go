package swd

// Command byte layout. The address occupies the two lowest bits, followed by
// the direction, port-space, and reset flags. The remaining bits are
// reserved and ignored on decode.
const (
	cmdAddressMask = 0b00011
	cmdReadBit     = 0b00100
	cmdAPBit       = 0b01000
	cmdResetBit    = 0b10000
)

// A Command is one host-issued debug operation, parsed from a single
// command-register byte.
type Command struct {
	// Reset requests a full target-reset sequence instead of a register
	// transaction. The other fields are ignored when Reset is set.
	Reset bool

	// AccessPort selects the AP register space. DP when false.
	AccessPort bool

	// Read selects the transaction direction. Write when false.
	Read bool

	// Address is the 2-bit register address within the selected space.
	Address uint8
}

// DecodeCommand parses a host command byte.
func DecodeCommand(b byte) Command {
	return Command{
		Reset:      b&cmdResetBit != 0,
		AccessPort: b&cmdAPBit != 0,
		Read:       b&cmdReadBit != 0,
		Address:    b & cmdAddressMask,
	}
}

// Encode re-assembles the command byte. Reserved bits are zero.
func (c Command) Encode() byte {
	b := c.Address & cmdAddressMask

	if c.Read {
		b |= cmdReadBit
	}

	if c.AccessPort {
		b |= cmdAPBit
	}

	if c.Reset {
		b |= cmdResetBit
	}

	return b
}
