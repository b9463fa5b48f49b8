package linkmodel

import "github.com/sarchlab/swdsim/sim"

// Builder can build link-engine models.
type Builder struct {
	engine  sim.Engine
	freq    sim.Freq
	latency int
}

// MakeBuilder returns a new Builder with default parameters.
func MakeBuilder() Builder {
	return Builder{
		freq:    100 * sim.MHz,
		latency: 8,
	}
}

// WithEngine sets the engine that the link engine uses.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency of the link engine.
func (b Builder) WithFreq(freq sim.Freq) Builder {
	b.freq = freq
	return b
}

// WithLatency sets the number of cycles the link engine takes to serve one
// request.
func (b Builder) WithLatency(latency int) Builder {
	b.latency = latency
	return b
}

// Build creates a new link-engine model.
func (b Builder) Build(name string) *Comp {
	c := &Comp{
		Latency: b.latency,
	}
	c.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, c)

	c.TopPort = sim.NewPort(c, 1, 1, name+".TopPort")
	c.AddPort("Top", c.TopPort)

	return c
}
