package ctrl

import "github.com/sarchlab/swdsim/swd"

// Status byte layout: the idle flag occupies the top bit, the
// acknowledgement code the low three bits. The bits in between are
// reserved and read as zero.
const statusIdleBit = 0x80

// A registerFile holds the host-visible state of the controller: the
// write-data shift buffer, the pending-command slot, the read-data buffer
// with its read cursor, and the status code. All registers start at zero.
type registerFile struct {
	// writeData keeps the four most recently written data bytes. A new byte
	// shifts in at the bottom, so the first byte of a 4-byte sequence ends
	// up in the most significant position.
	writeData uint32

	pendingCmd swd.Command
	cmdPending bool
	readData   [4]byte
	readCursor uint8
	status     swd.Ack
}

// PushWriteData appends one byte to the write-data buffer. Only the latest
// four bytes are retained.
func (r *registerFile) PushWriteData(b byte) {
	r.writeData = r.writeData<<8 | uint32(b)
}

// WriteWord returns the write-data buffer assembled into a 32-bit word in
// write order.
func (r *registerFile) WriteWord() uint32 {
	return r.writeData
}

// SetPendingCommand latches a command into the pending slot, overwriting
// any previous one.
func (r *registerFile) SetPendingCommand(cmd swd.Command) {
	r.pendingCmd = cmd
	r.cmdPending = true
}

// PendingCommand returns the pending command, if any.
func (r *registerFile) PendingCommand() (swd.Command, bool) {
	return r.pendingCmd, r.cmdPending
}

// ClearPendingCommand empties the pending-command slot.
func (r *registerFile) ClearPendingCommand() {
	r.cmdPending = false
}

// CommitReadData fills the read-data buffer from a 32-bit transaction
// payload, most significant byte first.
func (r *registerFile) CommitReadData(data uint32) {
	r.readData[0] = byte(data >> 24)
	r.readData[1] = byte(data >> 16)
	r.readData[2] = byte(data >> 8)
	r.readData[3] = byte(data)
}

// ClearReadData zeroes the read-data buffer.
func (r *registerFile) ClearReadData() {
	r.readData = [4]byte{}
}

// NextReadByte returns the byte at the read cursor and advances the cursor,
// wrapping after four reads. The cursor moves on every call, even when the
// buffer content is stale.
func (r *registerFile) NextReadByte() byte {
	b := r.readData[r.readCursor]
	r.readCursor = (r.readCursor + 1) % 4

	return b
}

// SetStatus records the acknowledgement outcome of the last transaction.
func (r *registerFile) SetStatus(ack swd.Ack) {
	r.status = ack
}

// StatusByte assembles the host-visible status byte.
func (r *registerFile) StatusByte(idle bool) byte {
	b := byte(r.status) & 0x07

	if idle {
		b |= statusIdleBit
	}

	return b
}
