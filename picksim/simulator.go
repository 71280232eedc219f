package picksim

import (
	"container/heap"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// monitorIntervalMin is how often the utilization monitor samples.
const monitorIntervalMin = 10.0

// PickOrder is one pick line flowing through the simulation.
type PickOrder struct {
	ID               int
	PartNo           string
	Quantity         int
	CabinetDistanceM float64 // walking distance of the SKU's assigned cabinet

	arrivalTime float64
	serviceTime float64
}

// Simulator runs one scenario over one shift: a Poisson stream of pick
// orders contending for a fixed pool of pickers. Time is in shift minutes.
type Simulator struct {
	Clock   float64
	Horizon float64 // shift length in minutes
	Pickers int

	scenario Scenario
	events   EventQueue
	waitQ    []*PickOrder
	busy     int
	rng      *rand.Rand

	Stats *Stats
}

// NewSimulator prepares a simulation of the given scenario. Orders arrive as
// a Poisson process whose rate spreads all orders across the shift; service
// times are drawn at arrival so a run is fully determined by the seed.
func NewSimulator(sc Scenario, orders []PickOrder, pickers int, shiftMin float64, seed int64) *Simulator {
	sim := &Simulator{
		Horizon:  shiftMin,
		Pickers:  pickers,
		scenario: sc,
		events:   make(EventQueue, 0, len(orders)+1),
		rng:      rand.New(rand.NewSource(seed)),
		Stats:    NewStats(),
	}

	avgInterarrival := shiftMin / float64(max(len(orders), 1))
	t := 0.0
	for i := range orders {
		order := orders[i]
		order.serviceTime = sc.serviceTime(&order, sim.rng)
		sim.Schedule(&ArrivalEvent{time: t, Order: &order})
		t += sim.rng.ExpFloat64() * avgInterarrival
	}
	sim.Schedule(&MonitorEvent{time: 0, interval: monitorIntervalMin})
	return sim
}

// Schedule pushes an event into the simulator's event queue.
func (sim *Simulator) Schedule(ev Event) {
	heap.Push(&sim.events, ev)
}

// Run drains the event queue until the shift ends or no events remain.
func (sim *Simulator) Run() {
	for len(sim.events) > 0 {
		ev := heap.Pop(&sim.events).(Event)
		if ev.Timestamp() > sim.Horizon {
			break
		}
		sim.Clock = ev.Timestamp()
		logrus.Debugf("[%7.2f min] executing %T", sim.Clock, ev)
		ev.Execute(sim)
	}
	logrus.Infof("picksim: %s finished %d picks in %.0f min with %d pickers",
		sim.scenario.Name, sim.Stats.PicksCompleted, sim.Horizon, sim.Pickers)
}

// startService hands an order to a free picker.
func (sim *Simulator) startService(order *PickOrder, now float64) {
	sim.busy++
	sim.Stats.WaitTimes = append(sim.Stats.WaitTimes, now-order.arrivalTime)
	sim.Schedule(&FinishEvent{time: now + order.serviceTime, Order: order})
}
