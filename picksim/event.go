package picksim

// Event is one simulation event: a timestamp in shift minutes and an action
// that advances simulator state.
type Event interface {
	Timestamp() float64
	Execute(*Simulator)
}

// EventQueue implements heap.Interface and orders events by timestamp.
type EventQueue []Event

func (eq EventQueue) Len() int           { return len(eq) }
func (eq EventQueue) Less(i, j int) bool { return eq[i].Timestamp() < eq[j].Timestamp() }
func (eq EventQueue) Swap(i, j int)      { eq[i], eq[j] = eq[j], eq[i] }

func (eq *EventQueue) Push(x any) {
	*eq = append(*eq, x.(Event))
}

func (eq *EventQueue) Pop() any {
	old := *eq
	n := len(old)
	item := old[n-1]
	*eq = old[0 : n-1]
	return item
}

// ArrivalEvent is a pick order entering the system. If a picker is idle the
// order starts service immediately; otherwise it joins the FIFO wait queue.
type ArrivalEvent struct {
	time  float64
	Order *PickOrder
}

func (e *ArrivalEvent) Timestamp() float64 { return e.time }

func (e *ArrivalEvent) Execute(sim *Simulator) {
	e.Order.arrivalTime = e.time
	if sim.busy < sim.Pickers {
		sim.startService(e.Order, e.time)
	} else {
		sim.waitQ = append(sim.waitQ, e.Order)
	}
}

// FinishEvent is a picker completing an order; the freed picker immediately
// takes the next waiting order, if any.
type FinishEvent struct {
	time  float64
	Order *PickOrder
}

func (e *FinishEvent) Timestamp() float64 { return e.time }

func (e *FinishEvent) Execute(sim *Simulator) {
	sim.busy--
	sim.Stats.recordCompletion(e.Order, e.time)
	if len(sim.waitQ) > 0 {
		next := sim.waitQ[0]
		sim.waitQ = sim.waitQ[1:]
		sim.startService(next, e.time)
	}
}

// MonitorEvent samples queue length and picker utilization at a fixed
// interval, mirroring the background monitor process of the study.
type MonitorEvent struct {
	time     float64
	interval float64
}

func (e *MonitorEvent) Timestamp() float64 { return e.time }

func (e *MonitorEvent) Execute(sim *Simulator) {
	sim.Stats.QueueLengths = append(sim.Stats.QueueLengths, float64(len(sim.waitQ)))
	sim.Stats.UtilizationSamples = append(sim.Stats.UtilizationSamples, float64(sim.busy)/float64(sim.Pickers))
	next := e.time + e.interval
	if next <= sim.Horizon {
		sim.Schedule(&MonitorEvent{time: next, interval: e.interval})
	}
}
