package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/swdsim/ctrl"
	"github.com/sarchlab/swdsim/hostagent"
	"github.com/sarchlab/swdsim/linkmodel"
	"github.com/sarchlab/swdsim/sim"
	"github.com/sarchlab/swdsim/sim/directconnection"
	"github.com/sarchlab/swdsim/simulation"
	"github.com/sarchlab/swdsim/swd"
	"github.com/sarchlab/swdsim/tracing"
)

var (
	seedFlag        int64
	numOpsFlag      int
	linkLatencyFlag int
	faultRateFlag   float64
	monitorFlag     bool
	monitorPortFlag int
	outputFlag      string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a randomized workload through the controller",
	Run: func(cmd *cobra.Command, args []string) {
		runWorkload()
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Int64Var(&seedFlag, "seed", 0,
		"random seed, 0 picks one from the clock")
	runCmd.Flags().IntVar(&numOpsFlag, "num-ops", 100,
		"number of register operations to drive")
	runCmd.Flags().IntVar(&linkLatencyFlag, "link-latency", 8,
		"link engine latency in cycles")
	runCmd.Flags().Float64Var(&faultRateFlag, "fault-rate", 0,
		"probability of injecting a fault per operation")
	runCmd.Flags().BoolVar(&monitorFlag, "monitor", false,
		"start the monitoring server")
	runCmd.Flags().IntVar(&monitorPortFlag, "monitor-port", 0,
		"port for the monitoring server, 0 picks a random one")
	runCmd.Flags().StringVar(&outputFlag, "output", "",
		"output database name, without the .sqlite3 suffix")
}

func defaultMonitorPort() int {
	v := os.Getenv("SWDSIM_MONITOR_PORT")
	if v == "" {
		return 0
	}

	port, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}

	return port
}

type demoSystem struct {
	simulation *simulation.Simulation
	agent      *hostagent.Agent
	controller *ctrl.Comp
	link       *linkmodel.Comp
}

func buildDemoSystem() *demoSystem {
	builder := simulation.MakeBuilder()

	// The env default is resolved here, after godotenv has loaded .env.
	port := monitorPortFlag
	if port == 0 {
		port = defaultMonitorPort()
	}

	if !monitorFlag {
		builder = builder.WithoutMonitoring()
	} else if port > 0 {
		builder = builder.WithMonitorPort(port)
	}

	if outputFlag != "" {
		builder = builder.WithOutputFileName(outputFlag)
	}

	s := builder.Build()
	engine := s.GetEngine()

	conn := directconnection.MakeBuilder().
		WithEngine(engine).
		WithFreq(1 * sim.GHz).
		Build("Conn")

	agent := hostagent.MakeBuilder().
		WithEngine(engine).
		Build("Host")

	controller := ctrl.MakeBuilder().
		WithEngine(engine).
		Build("Ctrl")

	link := linkmodel.MakeBuilder().
		WithEngine(engine).
		WithLatency(linkLatencyFlag).
		Build("Link")

	agent.Controller = controller.HostPort.AsRemote()
	controller.LinkEngine = link.TopPort.AsRemote()

	conn.PlugIn(agent.GetPortByName("Bus"))
	conn.PlugIn(controller.GetPortByName("Host"))
	conn.PlugIn(controller.GetPortByName("Link"))
	conn.PlugIn(link.GetPortByName("Top"))

	s.RegisterComponent(agent)
	s.RegisterComponent(controller)
	s.RegisterComponent(link)

	tracing.CollectTrace(controller, s.GetVisTracer())
	tracing.CollectTrace(link, s.GetVisTracer())

	return &demoSystem{
		simulation: s,
		agent:      agent,
		controller: controller,
		link:       link,
	}
}

func runWorkload() {
	seed := seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	fmt.Fprintf(os.Stderr, "Seed %d\n", seed)
	rng := rand.New(rand.NewSource(seed))

	system := buildDemoSystem()

	system.agent.AddOp(hostagent.Op{Kind: hostagent.OpReset})

	for i := 0; i < numOpsFlag; i++ {
		if rng.Float64() < faultRateFlag {
			injectFault(rng, system.link)
		}

		system.agent.AddOp(randomOp(rng))
	}

	system.agent.TickLater()

	err := system.simulation.GetEngine().Run()
	if err != nil {
		panic(err)
	}

	reportResults(system)

	system.simulation.Terminate()
	atexit.Exit(0)
}

func randomOp(rng *rand.Rand) hostagent.Op {
	op := hostagent.Op{
		AccessPort: rng.Intn(2) == 1,
		Address:    uint8(rng.Intn(4)),
	}

	if rng.Intn(2) == 1 {
		op.Kind = hostagent.OpWrite
		op.Data = rng.Uint32()
	} else {
		op.Kind = hostagent.OpRead
	}

	return op
}

func injectFault(rng *rand.Rand, link *linkmodel.Comp) {
	switch rng.Intn(3) {
	case 0:
		link.ForceAck(swd.AckWait, 1)
	case 1:
		link.ForceAck(swd.AckFault, 1)
	case 2:
		link.CorruptParity(1)
	}
}

func reportResults(system *demoSystem) {
	if !system.agent.Done() {
		panic("not all operations completed")
	}

	ackCount := map[swd.Ack]int{}
	for _, result := range system.agent.Results() {
		ackCount[result.Ack]++
	}

	fmt.Printf("Completed %d operations at time %.10f\n",
		len(system.agent.Results()),
		float64(system.simulation.GetEngine().CurrentTime()))

	for _, ack := range []swd.Ack{
		swd.AckOK, swd.AckWait, swd.AckFault, swd.AckError,
	} {
		if ackCount[ack] == 0 {
			continue
		}

		fmt.Printf("  %-5s %d\n", ack, ackCount[ack])
	}
}
