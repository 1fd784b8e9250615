package sandspan

import "github.com/vovakirdan/sandspan/internal/games/sandspan/core"

// FillRGBA writes one opaque RGBA pixel per grid cell into pix, row by
// row. Empty cells and flashing cells in their off phase are black. pix
// must hold at least Cols*Rows*4 bytes.
func (s *Session) FillRGBA(pix []byte) {
	sim := s.sim
	highlight := sim.IsHighlightTick()
	flashing := sim.Flashing()

	i := 0
	for r := 0; r < sim.Rows(); r++ {
		for c := 0; c < sim.Cols(); c++ {
			cell := sim.Cell(r, c)
			col := core.Black
			if cell.Filled && !(flashing && !highlight && sim.IsFlashing(core.C(r, c))) {
				col = cell.Color
			}
			pix[i] = col.R
			pix[i+1] = col.G
			pix[i+2] = col.B
			pix[i+3] = 0xff
			i += 4
		}
	}
}
