package sim

import (
	"fmt"
	"sort"
)

// A PortOwner is an element that can communicate with others through ports.
type PortOwner interface {
	AddPort(name string, port Port)
	GetPortByName(name string) Port
	Ports() []Port
}

// PortOwnerBase provides an implementation of the PortOwner interface.
type PortOwnerBase struct {
	ports map[string]Port
}

// NewPortOwnerBase creates a new PortOwnerBase.
func NewPortOwnerBase() *PortOwnerBase {
	return &PortOwnerBase{
		ports: make(map[string]Port),
	}
}

// AddPort adds a new port with a given name.
func (po *PortOwnerBase) AddPort(name string, port Port) {
	if _, found := po.ports[name]; found {
		panic("port already exists")
	}

	po.ports[name] = port
}

// GetPortByName returns the port with the given name. It panics when the
// name is not found.
func (po PortOwnerBase) GetPortByName(name string) Port {
	port, found := po.ports[name]
	if !found {
		errMsg := fmt.Sprintf("port %s is not available.\n", name)
		errMsg += "available ports include:\n"
		for n := range po.ports {
			errMsg += fmt.Sprintf("\t%s\n", n)
		}

		panic(errMsg)
	}

	return port
}

// Ports returns all the ports of the owner, sorted by name.
func (po PortOwnerBase) Ports() []Port {
	names := make([]string, 0, len(po.ports))
	for name := range po.ports {
		names = append(names, name)
	}
	sort.Strings(names)

	list := make([]Port, 0, len(po.ports))
	for _, name := range names {
		list = append(list, po.ports[name])
	}

	return list
}
