package hostagent

import "github.com/sarchlab/swdsim/sim"

// Builder can build host agents.
type Builder struct {
	engine  sim.Engine
	freq    sim.Freq
	bufSize int
}

// MakeBuilder returns a new Builder with default parameters.
func MakeBuilder() Builder {
	return Builder{
		freq:    100 * sim.MHz,
		bufSize: 4,
	}
}

// WithEngine sets the engine that the agent uses.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency of the agent.
func (b Builder) WithFreq(freq sim.Freq) Builder {
	b.freq = freq
	return b
}

// Build creates a new host agent.
func (b Builder) Build(name string) *Agent {
	a := new(Agent)
	a.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, a)

	a.busPort = sim.NewPort(a, b.bufSize, b.bufSize, name+".BusPort")
	a.AddPort("Bus", a.busPort)

	return a
}
