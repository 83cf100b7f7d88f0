package ordering

// State is the phase of a drag-reorder interaction.
type State int

const (
	Idle State = iota
	Dragging
	// Dropped holds while the reorder is being applied.
	Dropped
)

func (s State) String() string {
	switch s {
	case Dragging:
		return "dragging"
	case Dropped:
		return "dropped"
	}
	return "idle"
}

// Drag captures a pick-up index and applies the reorder on drop.
// The zero value is Idle.
type Drag struct {
	state  State
	source int
}

func (d *Drag) State() State { return d.state }

// Source returns the captured index while dragging.
func (d *Drag) Source() (int, bool) {
	if d.state != Dragging {
		return 0, false
	}
	return d.source, true
}

// PickUp starts a drag at index. Picking up again replaces the source.
func (d *Drag) PickUp(index int) {
	d.state = Dragging
	d.source = index
}

// Drop finishes the drag at target and calls apply(source, target) unless
// nothing was picked up or target equals the source. The machine is Idle
// afterwards in every case. It reports whether apply ran.
func (d *Drag) Drop(target int, apply func(from, to int)) bool {
	defer d.Cancel()
	if d.state != Dragging || d.source == target {
		return false
	}
	d.state = Dropped
	apply(d.source, target)
	return true
}

// Cancel abandons the drag.
func (d *Drag) Cancel() {
	d.state = Idle
	d.source = 0
}
