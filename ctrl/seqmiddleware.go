package ctrl

import (
	"log"
	"reflect"

	"github.com/sarchlab/swdsim/sim"
	"github.com/sarchlab/swdsim/swd"
	"github.com/sarchlab/swdsim/tracing"
)

// seqMiddleware is the transaction sequencer: a three-state machine that
// consumes the pending command, drives the link engine with a single
// outstanding request, and commits results back into the register file.
type seqMiddleware struct {
	*Comp
}

func (m *seqMiddleware) Tick() bool {
	switch m.state {
	case stateIdle:
		return m.issuePendingCommand()
	case stateResetWait:
		return m.processLinkReady()
	case stateTransactionWait:
		return m.processLinkResponse()
	default:
		log.Panicf("sequencer in unknown state %d", m.state)
	}

	return false
}

// issuePendingCommand starts a transaction for the pending command, if any.
func (m *seqMiddleware) issuePendingCommand() bool {
	cmd, pending := m.regs.PendingCommand()
	if !pending {
		return false
	}

	if cmd.Reset {
		return m.issueReset()
	}

	return m.issueTransaction(cmd)
}

func (m *seqMiddleware) issueReset() bool {
	req := swd.ResetReqBuilder{}.
		WithSrc(m.LinkPort.AsRemote()).
		WithDst(m.linkDst()).
		Build()

	err := m.LinkPort.Send(req)
	if err != nil {
		return false
	}

	tracing.TraceReqInitiate(req, m.Comp, "")

	m.inflightReq = req
	m.state = stateResetWait

	return true
}

func (m *seqMiddleware) issueTransaction(cmd swd.Command) bool {
	var req sim.Msg

	if cmd.Read {
		readReq := swd.ReadReqBuilder{}.
			WithSrc(m.LinkPort.AsRemote()).
			WithDst(m.linkDst()).
			WithAddress(cmd.Address)
		if cmd.AccessPort {
			readReq = readReq.WithAccessPort()
		}
		req = readReq.Build()
	} else {
		writeReq := swd.WriteReqBuilder{}.
			WithSrc(m.LinkPort.AsRemote()).
			WithDst(m.linkDst()).
			WithAddress(cmd.Address).
			WithData(m.regs.WriteWord())
		if cmd.AccessPort {
			writeReq = writeReq.WithAccessPort()
		}
		req = writeReq.Build()
	}

	err := m.LinkPort.Send(req)
	if err != nil {
		return false
	}

	tracing.TraceReqInitiate(req, m.Comp, "")

	m.inflightReq = req
	m.state = stateTransactionWait

	return true
}

// processLinkReady waits for the link engine's readiness notification and
// then issues a read of DP register 0. The read warms up the link after a
// reset; its payload goes through the regular response commit.
func (m *seqMiddleware) processLinkReady() bool {
	msg := m.LinkPort.PeekIncoming()
	if msg == nil {
		return false
	}

	_, ok := msg.(*swd.LinkReadyMsg)
	if !ok {
		log.Panicf(
			"expecting link readiness, got msg of type %s",
			reflect.TypeOf(msg))
	}

	dummyRead := swd.ReadReqBuilder{}.
		WithSrc(m.LinkPort.AsRemote()).
		WithDst(m.linkDst()).
		WithAddress(0).
		Build()

	err := m.LinkPort.Send(dummyRead)
	if err != nil {
		return false
	}

	m.LinkPort.RetrieveIncoming()
	tracing.TraceReqFinalize(m.inflightReq, m.Comp)
	tracing.TraceReqInitiate(dummyRead, m.Comp, "")

	m.inflightReq = dummyRead
	m.state = stateTransactionWait

	return true
}

// processLinkResponse commits the response of the in-flight transaction and
// returns the sequencer to IDLE.
func (m *seqMiddleware) processLinkResponse() bool {
	msg := m.LinkPort.PeekIncoming()
	if msg == nil {
		return false
	}

	switch rsp := msg.(type) {
	case *swd.WriteRsp:
		m.commitWriteRsp(rsp)
	case *swd.ReadRsp:
		m.commitReadRsp(rsp)
	default:
		log.Panicf("cannot handle msg of type %s", reflect.TypeOf(msg))
	}

	m.LinkPort.RetrieveIncoming()
	tracing.TraceReqFinalize(m.inflightReq, m.Comp)

	m.inflightReq = nil
	m.regs.ClearPendingCommand()
	m.state = stateIdle

	return true
}

func (m *seqMiddleware) commitWriteRsp(rsp *swd.WriteRsp) {
	m.regs.SetStatus(rsp.Ack)
	m.regs.ClearReadData()
}

// commitReadRsp validates the read payload parity. A parity violation
// overrides the link's acknowledgement with ERROR and discards the payload.
func (m *seqMiddleware) commitReadRsp(rsp *swd.ReadRsp) {
	if !swd.ParityOK(rsp.Data, rsp.Parity) {
		m.regs.SetStatus(swd.AckError)
		m.regs.ClearReadData()

		return
	}

	m.regs.SetStatus(rsp.Ack)
	m.regs.CommitReadData(rsp.Data)
}

func (m *seqMiddleware) linkDst() sim.RemotePort {
	return m.LinkEngine
}
