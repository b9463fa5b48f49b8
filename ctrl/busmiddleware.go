package ctrl

import (
	"log"
	"reflect"

	"github.com/sarchlab/swdsim/swd"
)

// busMiddleware decodes host bus strobes into register-file updates and
// serves register reads. It ticks before the sequencer middleware so that a
// bus write and the consumption of a pending command never interleave
// within one cycle.
type busMiddleware struct {
	*Comp
}

func (m *busMiddleware) Tick() bool {
	msg := m.HostPort.PeekIncoming()
	if msg == nil {
		return false
	}

	switch msg := msg.(type) {
	case *RegWriteMsg:
		return m.handleRegWrite(msg)
	case *RegReadReq:
		return m.handleRegRead(msg)
	default:
		log.Panicf("cannot handle msg of type %s", reflect.TypeOf(msg))
	}

	return false
}

// handleRegWrite applies one write strobe. Write strobes are gated on the
// sequencer being idle; a strobe that arrives mid-transaction is consumed
// and discarded, protecting the in-flight data.
func (m *busMiddleware) handleRegWrite(msg *RegWriteMsg) bool {
	m.HostPort.RetrieveIncoming()

	if !m.Idle() {
		return true
	}

	switch msg.Reg {
	case RegWData:
		m.regs.PushWriteData(msg.Value)
	case RegCmd:
		m.regs.SetPendingCommand(swd.DecodeCommand(msg.Value))
	default:
		log.Panicf("register %s is not writable", msg.Reg)
	}

	return true
}

// handleRegRead serves one read strobe. Reads are never gated: rdata and
// status are readable even mid-transaction, though rdata advances its
// cursor on every access.
func (m *busMiddleware) handleRegRead(msg *RegReadReq) bool {
	if !m.HostPort.CanSend() {
		return false
	}

	var value byte

	switch msg.Reg {
	case RegRData:
		value = m.regs.NextReadByte()
	case RegStatus:
		value = m.regs.StatusByte(m.Idle())
	default:
		log.Panicf("register %s is not readable", msg.Reg)
	}

	rsp := RegReadRspBuilder{}.
		WithSrc(m.HostPort.AsRemote()).
		WithDst(msg.Src).
		WithRspTo(msg.ID).
		WithReg(msg.Reg).
		WithValue(value).
		Build()

	err := m.HostPort.Send(rsp)
	if err != nil {
		return false
	}

	m.HostPort.RetrieveIncoming()

	return true
}
