package sim

import "sync"

// A Named object is an object that has a name.
type Named interface {
	Name() string
}

// NameMustBeValid panics if the name is empty or contains spaces. Component,
// port, and buffer names appear in trace output and in the monitoring API,
// where they must be usable as identifiers.
func NameMustBeValid(name string) {
	if name == "" {
		panic("name must not be empty")
	}

	for _, c := range name {
		if c == ' ' || c == '\t' || c == '\n' {
			panic("name must not contain whitespace")
		}
	}
}

// A Component is an element that is being simulated. It communicates with
// other components through ports and updates its state when handling events.
type Component interface {
	Named
	Handler
	Hookable
	PortOwner

	// NotifyRecv is called when a message arrives at one of the component's
	// ports.
	NotifyRecv(port Port)

	// NotifyPortFree is called when one of the component's ports becomes
	// available for sending again.
	NotifyPortFree(port Port)
}

// ComponentBase provides the functions that other components can reuse.
type ComponentBase struct {
	HookableBase
	*PortOwnerBase
	sync.Mutex

	name string
}

// NewComponentBase creates a new ComponentBase.
func NewComponentBase(name string) *ComponentBase {
	NameMustBeValid(name)

	c := new(ComponentBase)
	c.name = name
	c.PortOwnerBase = NewPortOwnerBase()
	return c
}

// Name returns the name of the component.
func (c *ComponentBase) Name() string {
	return c.name
}
