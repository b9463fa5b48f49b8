package sim

// SendError marks a failure to send or receive a message.
type SendError struct{}

// NewSendError creates a SendError.
func NewSendError() *SendError {
	e := new(SendError)
	return e
}

// A Connection is responsible for delivering messages to their destinations.
type Connection interface {
	Named
	Hookable

	// PlugIn connects a port to this connection.
	PlugIn(port Port)

	// Unplug detaches a port from this connection.
	Unplug(port Port)

	// NotifyAvailable is called by a port to notify the connection that the
	// port can accept deliveries again.
	NotifyAvailable(port Port)

	// NotifySend is called by a port to notify the connection that there is
	// a message in the port's outgoing buffer.
	NotifySend()
}

// HookPosConnStartSend marks when a connection accepts a message to send.
var HookPosConnStartSend = &HookPos{Name: "Conn Start Send"}

// HookPosConnDeliver marks when a connection delivers a message.
var HookPosConnDeliver = &HookPos{Name: "Conn Deliver"}
