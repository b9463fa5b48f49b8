package swd

import "github.com/sarchlab/swdsim/sim"

var linkReqByteOverhead = 4
var linkRspByteOverhead = 4

// A ResetReq asks the link engine to run the full target-reset sequence.
// The link engine answers with a LinkReadyMsg once the sequence completes.
type ResetReq struct {
	sim.MsgMeta
}

// Meta returns the meta data of the message.
func (r *ResetReq) Meta() *sim.MsgMeta {
	return &r.MsgMeta
}

// Clone returns a cloned ResetReq with a different ID.
func (r *ResetReq) Clone() sim.Msg {
	cloneMsg := *r
	cloneMsg.ID = sim.GetIDGenerator().Generate()

	return &cloneMsg
}

// ResetReqBuilder can build reset requests.
type ResetReqBuilder struct {
	src, dst sim.RemotePort
}

// WithSrc sets the source of the request to build.
func (b ResetReqBuilder) WithSrc(src sim.RemotePort) ResetReqBuilder {
	b.src = src
	return b
}

// WithDst sets the destination of the request to build.
func (b ResetReqBuilder) WithDst(dst sim.RemotePort) ResetReqBuilder {
	b.dst = dst
	return b
}

// Build creates a new ResetReq.
func (b ResetReqBuilder) Build() *ResetReq {
	r := &ResetReq{}
	r.ID = sim.GetIDGenerator().Generate()
	r.Src = b.src
	r.Dst = b.dst
	r.TrafficBytes = linkReqByteOverhead

	return r
}

// A LinkReadyMsg is the readiness notification the link engine sends after
// a ResetReq completes internally.
type LinkReadyMsg struct {
	sim.MsgMeta

	RespondTo string
}

// Meta returns the meta data of the message.
func (m *LinkReadyMsg) Meta() *sim.MsgMeta {
	return &m.MsgMeta
}

// Clone returns a cloned LinkReadyMsg with a different ID.
func (m *LinkReadyMsg) Clone() sim.Msg {
	cloneMsg := *m
	cloneMsg.ID = sim.GetIDGenerator().Generate()

	return &cloneMsg
}

// GetRspTo returns the ID of the reset request this message responds to.
func (m *LinkReadyMsg) GetRspTo() string {
	return m.RespondTo
}

// LinkReadyMsgBuilder can build link-ready notifications.
type LinkReadyMsgBuilder struct {
	src, dst sim.RemotePort
	rspTo    string
}

// WithSrc sets the source of the message to build.
func (b LinkReadyMsgBuilder) WithSrc(src sim.RemotePort) LinkReadyMsgBuilder {
	b.src = src
	return b
}

// WithDst sets the destination of the message to build.
func (b LinkReadyMsgBuilder) WithDst(dst sim.RemotePort) LinkReadyMsgBuilder {
	b.dst = dst
	return b
}

// WithRspTo sets the ID of the reset request the message responds to.
func (b LinkReadyMsgBuilder) WithRspTo(rspTo string) LinkReadyMsgBuilder {
	b.rspTo = rspTo
	return b
}

// Build creates a new LinkReadyMsg.
func (b LinkReadyMsgBuilder) Build() *LinkReadyMsg {
	m := &LinkReadyMsg{}
	m.ID = sim.GetIDGenerator().Generate()
	m.Src = b.src
	m.Dst = b.dst
	m.TrafficBytes = linkRspByteOverhead
	m.RespondTo = b.rspTo

	return m
}

// A ReadReq asks the link engine to read one DP or AP register.
type ReadReq struct {
	sim.MsgMeta

	AccessPort bool
	Address    uint8
}

// Meta returns the meta data of the message.
func (r *ReadReq) Meta() *sim.MsgMeta {
	return &r.MsgMeta
}

// Clone returns a cloned ReadReq with a different ID.
func (r *ReadReq) Clone() sim.Msg {
	cloneMsg := *r
	cloneMsg.ID = sim.GetIDGenerator().Generate()

	return &cloneMsg
}

// ReadReqBuilder can build read requests.
type ReadReqBuilder struct {
	src, dst   sim.RemotePort
	accessPort bool
	address    uint8
}

// WithSrc sets the source of the request to build.
func (b ReadReqBuilder) WithSrc(src sim.RemotePort) ReadReqBuilder {
	b.src = src
	return b
}

// WithDst sets the destination of the request to build.
func (b ReadReqBuilder) WithDst(dst sim.RemotePort) ReadReqBuilder {
	b.dst = dst
	return b
}

// WithAccessPort makes the request target the AP register space.
func (b ReadReqBuilder) WithAccessPort() ReadReqBuilder {
	b.accessPort = true
	return b
}

// WithAddress sets the register address of the request to build.
func (b ReadReqBuilder) WithAddress(address uint8) ReadReqBuilder {
	b.address = address
	return b
}

// Build creates a new ReadReq.
func (b ReadReqBuilder) Build() *ReadReq {
	r := &ReadReq{}
	r.ID = sim.GetIDGenerator().Generate()
	r.Src = b.src
	r.Dst = b.dst
	r.TrafficBytes = linkReqByteOverhead
	r.AccessPort = b.accessPort
	r.Address = b.address

	return r
}

// A WriteReq asks the link engine to write one DP or AP register.
type WriteReq struct {
	sim.MsgMeta

	AccessPort bool
	Address    uint8
	Data       uint32
}

// Meta returns the meta data of the message.
func (r *WriteReq) Meta() *sim.MsgMeta {
	return &r.MsgMeta
}

// Clone returns a cloned WriteReq with a different ID.
func (r *WriteReq) Clone() sim.Msg {
	cloneMsg := *r
	cloneMsg.ID = sim.GetIDGenerator().Generate()

	return &cloneMsg
}

// WriteReqBuilder can build write requests.
type WriteReqBuilder struct {
	src, dst   sim.RemotePort
	accessPort bool
	address    uint8
	data       uint32
}

// WithSrc sets the source of the request to build.
func (b WriteReqBuilder) WithSrc(src sim.RemotePort) WriteReqBuilder {
	b.src = src
	return b
}

// WithDst sets the destination of the request to build.
func (b WriteReqBuilder) WithDst(dst sim.RemotePort) WriteReqBuilder {
	b.dst = dst
	return b
}

// WithAccessPort makes the request target the AP register space.
func (b WriteReqBuilder) WithAccessPort() WriteReqBuilder {
	b.accessPort = true
	return b
}

// WithAddress sets the register address of the request to build.
func (b WriteReqBuilder) WithAddress(address uint8) WriteReqBuilder {
	b.address = address
	return b
}

// WithData sets the 32-bit word the request writes.
func (b WriteReqBuilder) WithData(data uint32) WriteReqBuilder {
	b.data = data
	return b
}

// Build creates a new WriteReq.
func (b WriteReqBuilder) Build() *WriteReq {
	r := &WriteReq{}
	r.ID = sim.GetIDGenerator().Generate()
	r.Src = b.src
	r.Dst = b.dst
	r.TrafficBytes = linkReqByteOverhead + 4
	r.AccessPort = b.accessPort
	r.Address = b.address
	r.Data = b.data

	return r
}

// A ReadRsp carries the outcome of a read transaction: the acknowledgement
// code and the 32-bit payload with its parity bit.
type ReadRsp struct {
	sim.MsgMeta

	RespondTo string
	Ack       Ack
	Data      uint32
	Parity    uint8
}

// Meta returns the meta data of the message.
func (r *ReadRsp) Meta() *sim.MsgMeta {
	return &r.MsgMeta
}

// Clone returns a cloned ReadRsp with a different ID.
func (r *ReadRsp) Clone() sim.Msg {
	cloneMsg := *r
	cloneMsg.ID = sim.GetIDGenerator().Generate()

	return &cloneMsg
}

// GetRspTo returns the ID of the request this response responds to.
func (r *ReadRsp) GetRspTo() string {
	return r.RespondTo
}

// ReadRspBuilder can build read responses.
type ReadRspBuilder struct {
	src, dst sim.RemotePort
	rspTo    string
	ack      Ack
	data     uint32
	parity   uint8
}

// WithSrc sets the source of the response to build.
func (b ReadRspBuilder) WithSrc(src sim.RemotePort) ReadRspBuilder {
	b.src = src
	return b
}

// WithDst sets the destination of the response to build.
func (b ReadRspBuilder) WithDst(dst sim.RemotePort) ReadRspBuilder {
	b.dst = dst
	return b
}

// WithRspTo sets the ID of the request the response responds to.
func (b ReadRspBuilder) WithRspTo(rspTo string) ReadRspBuilder {
	b.rspTo = rspTo
	return b
}

// WithAck sets the acknowledgement code of the response to build.
func (b ReadRspBuilder) WithAck(ack Ack) ReadRspBuilder {
	b.ack = ack
	return b
}

// WithData sets the 32-bit payload of the response to build.
func (b ReadRspBuilder) WithData(data uint32) ReadRspBuilder {
	b.data = data
	return b
}

// WithParity sets the parity bit of the response to build.
func (b ReadRspBuilder) WithParity(parity uint8) ReadRspBuilder {
	b.parity = parity
	return b
}

// Build creates a new ReadRsp.
func (b ReadRspBuilder) Build() *ReadRsp {
	r := &ReadRsp{}
	r.ID = sim.GetIDGenerator().Generate()
	r.Src = b.src
	r.Dst = b.dst
	r.TrafficBytes = linkRspByteOverhead + 5
	r.RespondTo = b.rspTo
	r.Ack = b.ack
	r.Data = b.data
	r.Parity = b.parity

	return r
}

// A WriteRsp carries the outcome of a write transaction.
type WriteRsp struct {
	sim.MsgMeta

	RespondTo string
	Ack       Ack
}

// Meta returns the meta data of the message.
func (r *WriteRsp) Meta() *sim.MsgMeta {
	return &r.MsgMeta
}

// Clone returns a cloned WriteRsp with a different ID.
func (r *WriteRsp) Clone() sim.Msg {
	cloneMsg := *r
	cloneMsg.ID = sim.GetIDGenerator().Generate()

	return &cloneMsg
}

// GetRspTo returns the ID of the request this response responds to.
func (r *WriteRsp) GetRspTo() string {
	return r.RespondTo
}

// WriteRspBuilder can build write responses.
type WriteRspBuilder struct {
	src, dst sim.RemotePort
	rspTo    string
	ack      Ack
}

// WithSrc sets the source of the response to build.
func (b WriteRspBuilder) WithSrc(src sim.RemotePort) WriteRspBuilder {
	b.src = src
	return b
}

// WithDst sets the destination of the response to build.
func (b WriteRspBuilder) WithDst(dst sim.RemotePort) WriteRspBuilder {
	b.dst = dst
	return b
}

// WithRspTo sets the ID of the request the response responds to.
func (b WriteRspBuilder) WithRspTo(rspTo string) WriteRspBuilder {
	b.rspTo = rspTo
	return b
}

// WithAck sets the acknowledgement code of the response to build.
func (b WriteRspBuilder) WithAck(ack Ack) WriteRspBuilder {
	b.ack = ack
	return b
}

// Build creates a new WriteRsp.
func (b WriteRspBuilder) Build() *WriteRsp {
	r := &WriteRsp{}
	r.ID = sim.GetIDGenerator().Generate()
	r.Src = b.src
	r.Dst = b.dst
	r.TrafficBytes = linkRspByteOverhead
	r.RespondTo = b.rspTo
	r.Ack = b.ack

	return r
}
