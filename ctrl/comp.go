// Package ctrl implements the debug-interface controller that sits between
// a host-facing byte bus and an SWD link engine. The controller decodes
// host register strobes into a small register file and drives exactly one
// SWD transaction at a time through the link engine.
package ctrl

import (
	"log"
	"reflect"

	"github.com/sarchlab/swdsim/sim"
)

// seqState is the state of the transaction sequencer.
type seqState uint8

const (
	// stateIdle accepts host bus writes and waits for a pending command.
	stateIdle seqState = iota

	// stateResetWait waits for the link engine to report readiness after a
	// reset request.
	stateResetWait

	// stateTransactionWait waits for the response of the in-flight
	// transaction.
	stateTransactionWait
)

func (s seqState) String() string {
	switch s {
	case stateIdle:
		return "IDLE"
	case stateResetWait:
		return "RESET_WAIT"
	case stateTransactionWait:
		return "TRANSACTION_WAIT"
	default:
		return "seqState(unknown)"
	}
}

// Comp is the debug-interface controller. The host accesses its four
// registers through HostPort; the controller drives the link engine through
// LinkPort with a strict one-request/one-response discipline.
type Comp struct {
	*sim.TickingComponent
	sim.MiddlewareHolder

	HostPort sim.Port
	LinkPort sim.Port

	// LinkEngine is the remote port of the link engine the controller
	// drives. Set during wiring.
	LinkEngine sim.RemotePort

	regs  registerFile
	state seqState

	// inflightReq is the link request whose response the sequencer is
	// waiting for. Nil in IDLE.
	inflightReq sim.Msg
}

// Tick updates the state of the controller.
func (c *Comp) Tick() bool {
	return c.MiddlewareHolder.Tick()
}

// Handle processes the events scheduled for the controller.
func (c *Comp) Handle(e sim.Event) error {
	switch e := e.(type) {
	case sim.TickEvent:
		return c.TickingComponent.Handle(e)
	default:
		log.Panicf("cannot handle event of type %s", reflect.TypeOf(e))
	}

	return nil
}

// Idle reports whether the sequencer can accept host bus writes.
func (c *Comp) Idle() bool {
	return c.state == stateIdle
}
