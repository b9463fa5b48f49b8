// Package directconnection provides a latency-free connection between
// components.
package directconnection

import (
	"github.com/sarchlab/swdsim/sim"
)

// Comp is a connection that delivers messages to their destinations without
// latency.
type Comp struct {
	*sim.TickingComponent
	sim.MiddlewareHolder

	nextPortID int
	ports      []sim.Port
}

// PlugIn marks a port as connected to this connection.
func (c *Comp) PlugIn(port sim.Port) {
	c.Lock()
	defer c.Unlock()

	c.ports = append(c.ports, port)
	port.SetConnection(c)
}

// Unplug marks a port as no longer connected to this connection.
func (c *Comp) Unplug(_ sim.Port) {
	panic("not implemented")
}

// NotifyAvailable is called by a port to notify the connection that the port
// can accept deliveries again.
func (c *Comp) NotifyAvailable(p sim.Port) {
	for _, port := range c.ports {
		if port == p {
			continue
		}

		port.NotifyAvailable()
	}

	c.TickNow()
}

// NotifySend is called by a port to notify that a message is waiting in the
// port's outgoing buffer.
func (c *Comp) NotifySend() {
	c.TickNow()
}

// Tick updates the state of the connection.
func (c *Comp) Tick() bool {
	return c.MiddlewareHolder.Tick()
}

type middleware struct {
	*Comp
}

// Tick forwards messages from the outgoing buffers of the connected ports to
// the incoming buffers of their destinations.
func (m *middleware) Tick() bool {
	madeProgress := false

	for i := 0; i < len(m.ports); i++ {
		portID := (i + m.nextPortID) % len(m.ports)
		port := m.ports[portID]
		madeProgress = m.forwardMany(port) || madeProgress
	}

	m.nextPortID = (m.nextPortID + 1) % len(m.ports)

	return madeProgress
}

func (m *middleware) forwardMany(port sim.Port) bool {
	madeProgress := false

	for {
		head := port.PeekOutgoing()
		if head == nil {
			break
		}

		dst := m.findPort(head.Meta().Dst)
		err := dst.Deliver(head)
		if err != nil {
			break
		}

		madeProgress = true
		port.RetrieveOutgoing()
	}

	return madeProgress
}

func (m *middleware) findPort(dst sim.RemotePort) sim.Port {
	for _, port := range m.ports {
		if port.AsRemote() == dst {
			return port
		}
	}

	panic("destination " + string(dst) + " is not connected")
}
