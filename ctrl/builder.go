package ctrl

import "github.com/sarchlab/swdsim/sim"

// Builder can build debug-interface controllers.
type Builder struct {
	engine      sim.Engine
	freq        sim.Freq
	hostBufSize int
	linkBufSize int
}

// MakeBuilder returns a new Builder with default parameters.
func MakeBuilder() Builder {
	return Builder{
		freq:        100 * sim.MHz,
		hostBufSize: 4,
		linkBufSize: 1,
	}
}

// WithEngine sets the engine that the controller uses.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency of the controller.
func (b Builder) WithFreq(freq sim.Freq) Builder {
	b.freq = freq
	return b
}

// WithHostBufSize sets the incoming buffer size of the host port.
func (b Builder) WithHostBufSize(n int) Builder {
	b.hostBufSize = n
	return b
}

// Build creates a new controller.
func (b Builder) Build(name string) *Comp {
	c := &Comp{}
	c.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, c)

	c.HostPort = sim.NewPort(c, b.hostBufSize, b.hostBufSize,
		name+".HostPort")
	c.AddPort("Host", c.HostPort)

	// The link engine is used with a single outstanding request, so a
	// one-deep link port is sufficient.
	c.LinkPort = sim.NewPort(c, b.linkBufSize, b.linkBufSize,
		name+".LinkPort")
	c.AddPort("Link", c.LinkPort)

	// Bus decode ticks before the sequencer so that the hardware's
	// concurrent guarded actions become an ordered sequence of checks.
	c.AddMiddleware(&busMiddleware{Comp: c})
	c.AddMiddleware(&seqMiddleware{Comp: c})

	return c
}
