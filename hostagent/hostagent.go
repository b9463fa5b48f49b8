// Package hostagent provides a scripted host-side driver that exercises the
// debug-interface controller through its byte bus. It is mainly useful for
// acceptance tests and demos.
package hostagent

import (
	"log"
	"reflect"

	"github.com/sarchlab/swdsim/ctrl"
	"github.com/sarchlab/swdsim/sim"
	"github.com/sarchlab/swdsim/swd"
)

var dumpLog = false

// OpKind is the type of a host operation.
type OpKind int

// Host operations that the agent can drive.
const (
	// OpReset resets the target and re-establishes the link.
	OpReset OpKind = iota

	// OpRead reads a 32-bit DP or AP register.
	OpRead

	// OpWrite writes a 32-bit DP or AP register.
	OpWrite
)

func (k OpKind) String() string {
	switch k {
	case OpReset:
		return "reset"
	case OpRead:
		return "read"
	case OpWrite:
		return "write"
	default:
		return "op(unknown)"
	}
}

// An Op is one high-level operation to drive through the controller.
type Op struct {
	Kind       OpKind
	AccessPort bool
	Address    uint8
	Data       uint32
}

// A Result records the outcome of a completed operation.
type Result struct {
	Op   Op
	Ack  swd.Ack
	Data uint32
}

type stepKind int

const (
	// stepWrite strobes one write-only register.
	stepWrite stepKind = iota

	// stepPollStatus reads the status register until the idle flag is set.
	stepPollStatus

	// stepReadData reads one byte of the read-data buffer.
	stepReadData
)

type step struct {
	kind  stepKind
	reg   ctrl.Reg
	value byte
}

// An Agent drives scripted operations through the controller byte bus. Each
// operation is compiled into a sequence of register strobes: data bytes
// first, then the command, then status polling, then data readback for
// reads.
type Agent struct {
	*sim.TickingComponent

	// Controller is the remote host port of the controller. Set during
	// wiring.
	Controller sim.RemotePort

	busPort sim.Port

	ops     []Op
	results []Result

	opIndex     int
	steps       []step
	stepIndex   int
	pendingRead *ctrl.RegReadReq

	currentAck swd.Ack
	dataBytes  []byte
}

// AddOp appends one operation to the script.
func (a *Agent) AddOp(op Op) {
	a.ops = append(a.ops, op)

	if a.opIndex == len(a.ops)-1 {
		a.compileCurrentOp()
	}
}

// Results returns the outcomes of the operations completed so far.
func (a *Agent) Results() []Result {
	return a.results
}

// Done reports whether all scripted operations have completed.
func (a *Agent) Done() bool {
	return a.opIndex >= len(a.ops)
}

// Tick updates the state of the agent.
func (a *Agent) Tick() bool {
	madeProgress := a.processRsp()
	madeProgress = a.issueStrobe() || madeProgress

	return madeProgress
}

func (a *Agent) processRsp() bool {
	msg := a.busPort.RetrieveIncoming()
	if msg == nil {
		return false
	}

	rsp, ok := msg.(*ctrl.RegReadRsp)
	if !ok {
		log.Panicf("cannot process message of type %s", reflect.TypeOf(msg))
	}

	if a.pendingRead == nil || rsp.RespondTo != a.pendingRead.ID {
		log.Panicf("unexpected response %s", rsp.RespondTo)
	}

	a.pendingRead = nil

	switch a.steps[a.stepIndex].kind {
	case stepPollStatus:
		a.processStatusByte(rsp.Value)
	case stepReadData:
		a.dataBytes = append(a.dataBytes, rsp.Value)
		a.advanceStep()
	default:
		log.Panic("read response without a pending read step")
	}

	return true
}

func (a *Agent) processStatusByte(status byte) {
	idle := status&0x80 != 0
	if !idle {
		// Not done yet, poll again.
		return
	}

	a.currentAck = swd.Ack(status & 0x07)
	a.advanceStep()
}

func (a *Agent) issueStrobe() bool {
	if a.Done() || a.pendingRead != nil {
		return false
	}

	s := a.steps[a.stepIndex]

	switch s.kind {
	case stepWrite:
		return a.issueWriteStrobe(s)
	case stepPollStatus, stepReadData:
		return a.issueReadStrobe(s)
	}

	return false
}

func (a *Agent) issueWriteStrobe(s step) bool {
	strobe := ctrl.RegWriteMsgBuilder{}.
		WithSrc(a.busPort.AsRemote()).
		WithDst(a.Controller).
		WithReg(s.reg).
		WithValue(s.value).
		Build()

	err := a.busPort.Send(strobe)
	if err != nil {
		return false
	}

	if dumpLog {
		log.Printf("%.10f, agent, write %s, 0x%02X\n",
			a.CurrentTime(), s.reg, s.value)
	}

	a.advanceStep()

	return true
}

func (a *Agent) issueReadStrobe(s step) bool {
	strobe := ctrl.RegReadReqBuilder{}.
		WithSrc(a.busPort.AsRemote()).
		WithDst(a.Controller).
		WithReg(s.reg).
		Build()

	err := a.busPort.Send(strobe)
	if err != nil {
		return false
	}

	a.pendingRead = strobe

	return true
}

func (a *Agent) advanceStep() {
	a.stepIndex++
	if a.stepIndex < len(a.steps) {
		return
	}

	a.finishCurrentOp()
}

func (a *Agent) finishCurrentOp() {
	op := a.ops[a.opIndex]

	result := Result{
		Op:  op,
		Ack: a.currentAck,
	}

	if op.Kind == OpRead {
		for _, b := range a.dataBytes {
			result.Data = result.Data<<8 | uint32(b)
		}
	}

	a.results = append(a.results, result)

	if dumpLog {
		log.Printf("%.10f, agent, %s complete, ack %s, 0x%08X\n",
			a.CurrentTime(), op.Kind, result.Ack, result.Data)
	}

	a.opIndex++
	a.compileCurrentOp()
}

// compileCurrentOp turns the current operation into a strobe sequence.
func (a *Agent) compileCurrentOp() {
	a.steps = nil
	a.stepIndex = 0
	a.dataBytes = nil
	a.currentAck = 0

	if a.Done() {
		return
	}

	op := a.ops[a.opIndex]

	switch op.Kind {
	case OpReset:
		a.compileReset()
	case OpWrite:
		a.compileWrite(op)
	case OpRead:
		a.compileRead(op)
	}
}

func (a *Agent) compileReset() {
	cmd := swd.Command{Reset: true}

	a.steps = append(a.steps,
		step{kind: stepWrite, reg: ctrl.RegCmd, value: cmd.Encode()},
		step{kind: stepPollStatus, reg: ctrl.RegStatus},
	)
}

func (a *Agent) compileWrite(op Op) {
	a.steps = append(a.steps,
		step{kind: stepWrite, reg: ctrl.RegWData, value: byte(op.Data >> 24)},
		step{kind: stepWrite, reg: ctrl.RegWData, value: byte(op.Data >> 16)},
		step{kind: stepWrite, reg: ctrl.RegWData, value: byte(op.Data >> 8)},
		step{kind: stepWrite, reg: ctrl.RegWData, value: byte(op.Data)},
	)

	cmd := swd.Command{
		AccessPort: op.AccessPort,
		Address:    op.Address,
	}
	a.steps = append(a.steps,
		step{kind: stepWrite, reg: ctrl.RegCmd, value: cmd.Encode()},
		step{kind: stepPollStatus, reg: ctrl.RegStatus},
	)
}

func (a *Agent) compileRead(op Op) {
	cmd := swd.Command{
		AccessPort: op.AccessPort,
		Read:       true,
		Address:    op.Address,
	}

	a.steps = append(a.steps,
		step{kind: stepWrite, reg: ctrl.RegCmd, value: cmd.Encode()},
		step{kind: stepPollStatus, reg: ctrl.RegStatus},
		step{kind: stepReadData, reg: ctrl.RegRData},
		step{kind: stepReadData, reg: ctrl.RegRData},
		step{kind: stepReadData, reg: ctrl.RegRData},
		step{kind: stepReadData, reg: ctrl.RegRData},
	)
}
