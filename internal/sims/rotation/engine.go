package rotation

import "fmt"

// Phase selects which partition a half-step uses.
type Phase int

const (
	// PhaseA partitions at offset 0.
	PhaseA Phase = iota
	// PhaseB partitions at offset 1 and shifts the grid back into frame.
	PhaseB
)

// Offset returns the partition offset for the phase.
func (p Phase) Offset() int {
	if p == PhaseB {
		return 1
	}
	return 0
}

func (p Phase) String() string {
	switch p {
	case PhaseA:
		return "A"
	case PhaseB:
		return "B"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Engine drives half-steps on a grid. The Margolus scheme is only correct when
// phases alternate A, B, A, ..., so the engine tracks which phase is due and
// refuses any other.
type Engine struct {
	grid *Grid
	next Phase
	gens int
}

// NewEngine returns an engine for g with phase A due.
func NewEngine(g *Grid) *Engine {
	return &Engine{grid: g}
}

// Grid returns the grid the engine mutates.
func (e *Engine) Grid() *Grid { return e.grid }

// Next returns the phase the next half-step will run.
func (e *Engine) Next() Phase { return e.next }

// Generations returns the number of completed A+B cycles.
func (e *Engine) Generations() int { return e.gens }

// Reset makes phase A due again and zeroes the generation counter.
func (e *Engine) Reset() {
	e.next = PhaseA
	e.gens = 0
}

// Step runs phase p. It returns ErrPhaseOrder without touching the grid when p
// is not the phase that is due.
func (e *Engine) Step(p Phase) error {
	if p != e.next {
		return fmt.Errorf("%w: got %v, want %v", ErrPhaseOrder, p, e.next)
	}
	e.HalfStep()
	return nil
}

// HalfStep runs whichever phase is due and returns it.
func (e *Engine) HalfStep() Phase {
	p := e.next
	halfStep(e.grid, p)
	if p == PhaseB {
		e.next = PhaseA
		e.gens++
	} else {
		e.next = PhaseB
	}
	return p
}

// Generation completes the current generation: A then B when starting fresh,
// or just B when A already ran.
func (e *Engine) Generation() {
	if e.next == PhaseA {
		e.HalfStep()
	}
	e.HalfStep()
}

func halfStep(g *Grid, p Phase) {
	sub := g.Partition(p.Offset())
	for y := range sub {
		for x := range sub[y] {
			sub[y][x] = Apply(sub[y][x])
		}
	}
	g.reassemble(sub)
	if p == PhaseB {
		g.ShiftToroidal(1, 1)
	}
}
