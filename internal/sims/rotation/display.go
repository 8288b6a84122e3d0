package rotation

import "image/color"

const (
	displayAliveBit  = 0x01
	displayCenterBit = 0x02
)

var rotationPalette = []color.RGBA{
	{R: 0, G: 0, B: 0, A: 255},
	{R: 230, G: 230, B: 230, A: 255},
	{R: 110, G: 20, B: 20, A: 255},
	{R: 255, G: 60, B: 60, A: 255},
}

// Palette exposes the color palette indexed by the display buffer.
func (s *Sim) Palette() []color.RGBA {
	return rotationPalette
}

func encodeDisplayValue(alive, center bool) uint8 {
	var v uint8
	if alive {
		v |= displayAliveBit
	}
	if center {
		v |= displayCenterBit
	}
	return v
}

func (s *Sim) rebuildDisplay() {
	g := s.engine.Grid()
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			s.display.Set(col, row, encodeDisplayValue(g.ValueAt(row, col), g.IsCenter(row, col)))
		}
	}
}
