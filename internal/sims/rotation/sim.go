package rotation

import "rotca/internal/core"

// Sim adapts the rotation engine to core.Sim. Each Step is one half-step, so
// a renderer driving it draws after both phase A and phase B.
type Sim struct {
	cfg     Config
	engine  *Engine
	display *core.ByteGrid
}

// NewSim returns a Sim seeded from cfg.Seed.
func NewSim(cfg Config) *Sim {
	s := &Sim{cfg: cfg}
	s.Reset(0)
	return s
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "rotation" }

// Size reports the normalized grid dimensions.
func (s *Sim) Size() core.Size {
	g := s.engine.Grid()
	return core.Size{W: g.Width(), H: g.Height()}
}

// Cells exposes the display buffer: bit 0 is the cell value, bit 1 marks the
// center cell.
func (s *Sim) Cells() []uint8 { return s.display.Cells() }

// Grid exposes the underlying cell grid.
func (s *Sim) Grid() *Grid { return s.engine.Grid() }

// Engine exposes the phase engine.
func (s *Sim) Engine() *Engine { return s.engine }

// Config returns the active configuration.
func (s *Sim) Config() Config { return s.cfg }

// Reset reseeds the grid. A zero seed falls back to the configured one.
func (s *Sim) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = s.cfg.Seed
	}
	rng := core.NewRNG(effective)
	var g *Grid
	if s.cfg.Circular {
		g = NewCircular(s.cfg.Width, s.cfg.Height, s.cfg.Radius, s.cfg.Fill, rng)
	} else {
		g = New(s.cfg.Width, s.cfg.Height, s.cfg.Fill, rng)
	}
	s.engine = NewEngine(g)
	s.display = core.NewByteGrid(g.Width(), g.Height())
	s.rebuildDisplay()
}

// Step advances the automaton by one half-step.
func (s *Sim) Step() {
	s.engine.HalfStep()
	s.rebuildDisplay()
}

func init() {
	core.Register("rotation", func(cfg map[string]string) core.Sim {
		return NewSim(FromMap(cfg))
	})
}
