// Package swd defines the messages and data types of the Serial Wire Debug
// link-engine protocol: the commands a debug host issues, the
// acknowledgement codes a link engine reports, and the request/response
// messages exchanged between the debug-interface controller and the link
// engine.
package swd

import "fmt"

// An Ack is the acknowledgement outcome of one SWD transaction. The code
// values for successful and failing transactions are defined by the link
// engine and pass through the controller verbatim. AckError is never
// produced by a link engine; the controller synthesizes it locally when a
// read response fails parity validation.
type Ack uint8

// Acknowledgement codes.
const (
	AckOK    Ack = 0b001
	AckWait  Ack = 0b010
	AckFault Ack = 0b100
	AckError Ack = 0b111
)

func (a Ack) String() string {
	switch a {
	case AckOK:
		return "OK"
	case AckWait:
		return "WAIT"
	case AckFault:
		return "FAULT"
	case AckError:
		return "ERROR"
	default:
		return fmt.Sprintf("Ack(%d)", uint8(a))
	}
}
