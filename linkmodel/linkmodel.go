// Package linkmodel provides a behavioral model of an SWD link engine. The
// model performs no bit-level signaling; it services one request at a time
// with a fixed cycle latency and keeps DP and AP register banks in memory.
// Fault-injection knobs allow tests to exercise the controller's error
// paths.
package linkmodel

import (
	"log"
	"reflect"

	"github.com/sarchlab/swdsim/sim"
	"github.com/sarchlab/swdsim/swd"
	"github.com/sarchlab/swdsim/tracing"
)

// Comp is the link-engine model.
type Comp struct {
	*sim.TickingComponent

	TopPort sim.Port

	Latency int

	dp [4]uint32
	ap [4]uint32

	currentReq sim.Msg
	cyclesLeft int

	ackOverrides []swd.Ack
	parityFaults int
}

// ForceAck makes the next count transactions acknowledge with the given
// code instead of OK. Transactions that do not acknowledge OK are not
// executed.
func (c *Comp) ForceAck(ack swd.Ack, count int) {
	for i := 0; i < count; i++ {
		c.ackOverrides = append(c.ackOverrides, ack)
	}
}

// CorruptParity makes the next count read responses carry a flipped parity
// bit.
func (c *Comp) CorruptParity(count int) {
	c.parityFaults += count
}

// SetRegister presets one register of the DP or AP bank.
func (c *Comp) SetRegister(accessPort bool, address uint8, value uint32) {
	if accessPort {
		c.ap[address&0x3] = value
		return
	}

	c.dp[address&0x3] = value
}

// Register returns the current value of one register of the DP or AP bank.
func (c *Comp) Register(accessPort bool, address uint8) uint32 {
	if accessPort {
		return c.ap[address&0x3]
	}

	return c.dp[address&0x3]
}

// Tick updates the state of the link engine.
func (c *Comp) Tick() bool {
	madeProgress := false

	madeProgress = c.respond() || madeProgress
	madeProgress = c.countDown() || madeProgress
	madeProgress = c.accept() || madeProgress

	return madeProgress
}

// accept takes in the next request. The link engine serves a single
// outstanding request.
func (c *Comp) accept() bool {
	if c.currentReq != nil {
		return false
	}

	msg := c.TopPort.RetrieveIncoming()
	if msg == nil {
		return false
	}

	tracing.TraceReqReceive(msg, c)

	c.currentReq = msg
	c.cyclesLeft = c.Latency

	return true
}

func (c *Comp) countDown() bool {
	if c.currentReq == nil || c.cyclesLeft == 0 {
		return false
	}

	c.cyclesLeft--

	return true
}

func (c *Comp) respond() bool {
	if c.currentReq == nil || c.cyclesLeft > 0 {
		return false
	}

	var rsp sim.Msg

	switch req := c.currentReq.(type) {
	case *swd.ResetReq:
		rsp = c.executeReset(req)
	case *swd.ReadReq:
		rsp = c.executeRead(req)
	case *swd.WriteReq:
		rsp = c.executeWrite(req)
	default:
		log.Panicf("cannot handle request of type %s", reflect.TypeOf(req))
	}

	err := c.TopPort.Send(rsp)
	if err != nil {
		return false
	}

	tracing.TraceReqComplete(c.currentReq, c)

	c.currentReq = nil

	return true
}

// executeReset runs the target-reset sequence: both register banks come up
// as zero and the readiness notification is sent.
func (c *Comp) executeReset(req *swd.ResetReq) sim.Msg {
	c.dp = [4]uint32{}
	c.ap = [4]uint32{}

	return swd.LinkReadyMsgBuilder{}.
		WithSrc(c.TopPort.AsRemote()).
		WithDst(req.Src).
		WithRspTo(req.ID).
		Build()
}

func (c *Comp) executeRead(req *swd.ReadReq) sim.Msg {
	ack := c.nextAck()

	var data uint32
	if ack == swd.AckOK {
		data = c.Register(req.AccessPort, req.Address)
	}

	parity := swd.ParityBit(data)
	if c.parityFaults > 0 {
		c.parityFaults--
		parity ^= 1
	}

	return swd.ReadRspBuilder{}.
		WithSrc(c.TopPort.AsRemote()).
		WithDst(req.Src).
		WithRspTo(req.ID).
		WithAck(ack).
		WithData(data).
		WithParity(parity).
		Build()
}

func (c *Comp) executeWrite(req *swd.WriteReq) sim.Msg {
	ack := c.nextAck()

	if ack == swd.AckOK {
		c.SetRegister(req.AccessPort, req.Address, req.Data)
	}

	return swd.WriteRspBuilder{}.
		WithSrc(c.TopPort.AsRemote()).
		WithDst(req.Src).
		WithRspTo(req.ID).
		WithAck(ack).
		Build()
}

func (c *Comp) nextAck() swd.Ack {
	if len(c.ackOverrides) == 0 {
		return swd.AckOK
	}

	ack := c.ackOverrides[0]
	c.ackOverrides = c.ackOverrides[1:]

	return ack
}
