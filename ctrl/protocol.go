package ctrl

import "github.com/sarchlab/swdsim/sim"

var regAccessByteOverhead = 2

// A Reg identifies one host-visible register of the controller.
type Reg uint8

// Host-visible registers. Each bus access strobes exactly one of them.
const (
	// RegWData is the write-only register that appends one byte to the
	// write-data buffer.
	RegWData Reg = iota

	// RegCmd is the write-only register that latches a pending command.
	RegCmd

	// RegRData is the read-only register that returns the next byte of the
	// read-data buffer and advances the read cursor.
	RegRData

	// RegStatus is the read-only register that reports the idle flag and
	// the last acknowledgement code.
	RegStatus
)

func (r Reg) String() string {
	switch r {
	case RegWData:
		return "WData"
	case RegCmd:
		return "Cmd"
	case RegRData:
		return "RData"
	case RegStatus:
		return "Status"
	default:
		return "Reg(unknown)"
	}
}

// A RegWriteMsg is one byte-wide write strobe on the host bus. The
// controller discards write strobes that arrive while a transaction is in
// flight.
type RegWriteMsg struct {
	sim.MsgMeta

	Reg   Reg
	Value byte
}

// Meta returns the meta data of the message.
func (m *RegWriteMsg) Meta() *sim.MsgMeta {
	return &m.MsgMeta
}

// Clone returns a cloned RegWriteMsg with a different ID.
func (m *RegWriteMsg) Clone() sim.Msg {
	cloneMsg := *m
	cloneMsg.ID = sim.GetIDGenerator().Generate()

	return &cloneMsg
}

// RegWriteMsgBuilder can build register write strobes.
type RegWriteMsgBuilder struct {
	src, dst sim.RemotePort
	reg      Reg
	value    byte
}

// WithSrc sets the source of the message to build.
func (b RegWriteMsgBuilder) WithSrc(src sim.RemotePort) RegWriteMsgBuilder {
	b.src = src
	return b
}

// WithDst sets the destination of the message to build.
func (b RegWriteMsgBuilder) WithDst(dst sim.RemotePort) RegWriteMsgBuilder {
	b.dst = dst
	return b
}

// WithReg sets the register the strobe targets.
func (b RegWriteMsgBuilder) WithReg(reg Reg) RegWriteMsgBuilder {
	b.reg = reg
	return b
}

// WithValue sets the byte written by the strobe.
func (b RegWriteMsgBuilder) WithValue(value byte) RegWriteMsgBuilder {
	b.value = value
	return b
}

// Build creates a new RegWriteMsg.
func (b RegWriteMsgBuilder) Build() *RegWriteMsg {
	m := &RegWriteMsg{}
	m.ID = sim.GetIDGenerator().Generate()
	m.Src = b.src
	m.Dst = b.dst
	m.TrafficBytes = regAccessByteOverhead
	m.Reg = b.reg
	m.Value = b.value

	return m
}

// A RegReadReq is one byte-wide read strobe on the host bus. Reads are
// always served, even while a transaction is in flight.
type RegReadReq struct {
	sim.MsgMeta

	Reg Reg
}

// Meta returns the meta data of the message.
func (m *RegReadReq) Meta() *sim.MsgMeta {
	return &m.MsgMeta
}

// Clone returns a cloned RegReadReq with a different ID.
func (m *RegReadReq) Clone() sim.Msg {
	cloneMsg := *m
	cloneMsg.ID = sim.GetIDGenerator().Generate()

	return &cloneMsg
}

// RegReadReqBuilder can build register read strobes.
type RegReadReqBuilder struct {
	src, dst sim.RemotePort
	reg      Reg
}

// WithSrc sets the source of the request to build.
func (b RegReadReqBuilder) WithSrc(src sim.RemotePort) RegReadReqBuilder {
	b.src = src
	return b
}

// WithDst sets the destination of the request to build.
func (b RegReadReqBuilder) WithDst(dst sim.RemotePort) RegReadReqBuilder {
	b.dst = dst
	return b
}

// WithReg sets the register the strobe targets.
func (b RegReadReqBuilder) WithReg(reg Reg) RegReadReqBuilder {
	b.reg = reg
	return b
}

// Build creates a new RegReadReq.
func (b RegReadReqBuilder) Build() *RegReadReq {
	m := &RegReadReq{}
	m.ID = sim.GetIDGenerator().Generate()
	m.Src = b.src
	m.Dst = b.dst
	m.TrafficBytes = regAccessByteOverhead
	m.Reg = b.reg

	return m
}

// A RegReadRsp returns the byte read by a RegReadReq.
type RegReadRsp struct {
	sim.MsgMeta

	RespondTo string
	Reg       Reg
	Value     byte
}

// Meta returns the meta data of the message.
func (m *RegReadRsp) Meta() *sim.MsgMeta {
	return &m.MsgMeta
}

// Clone returns a cloned RegReadRsp with a different ID.
func (m *RegReadRsp) Clone() sim.Msg {
	cloneMsg := *m
	cloneMsg.ID = sim.GetIDGenerator().Generate()

	return &cloneMsg
}

// GetRspTo returns the ID of the read strobe this response responds to.
func (m *RegReadRsp) GetRspTo() string {
	return m.RespondTo
}

// RegReadRspBuilder can build register read responses.
type RegReadRspBuilder struct {
	src, dst sim.RemotePort
	rspTo    string
	reg      Reg
	value    byte
}

// WithSrc sets the source of the response to build.
func (b RegReadRspBuilder) WithSrc(src sim.RemotePort) RegReadRspBuilder {
	b.src = src
	return b
}

// WithDst sets the destination of the response to build.
func (b RegReadRspBuilder) WithDst(dst sim.RemotePort) RegReadRspBuilder {
	b.dst = dst
	return b
}

// WithRspTo sets the ID of the read strobe the response responds to.
func (b RegReadRspBuilder) WithRspTo(rspTo string) RegReadRspBuilder {
	b.rspTo = rspTo
	return b
}

// WithReg sets the register the response reports.
func (b RegReadRspBuilder) WithReg(reg Reg) RegReadRspBuilder {
	b.reg = reg
	return b
}

// WithValue sets the byte returned by the response.
func (b RegReadRspBuilder) WithValue(value byte) RegReadRspBuilder {
	b.value = value
	return b
}

// Build creates a new RegReadRsp.
func (b RegReadRspBuilder) Build() *RegReadRsp {
	m := &RegReadRsp{}
	m.ID = sim.GetIDGenerator().Generate()
	m.Src = b.src
	m.Dst = b.dst
	m.TrafficBytes = regAccessByteOverhead + 1
	m.RespondTo = b.rspTo
	m.Reg = b.reg
	m.Value = b.value

	return m
}
