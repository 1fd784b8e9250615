package sandspan

import (
	"fmt"

	platformcore "github.com/vovakirdan/sandspan/internal/core"
	"github.com/vovakirdan/sandspan/internal/games/sandspan/core"
)

// Glyphs
const (
	grainChar  = '█'
	gridChar   = '·'
	cursorChar = '+'
	swatchChar = '■'
)

// Render draws the HUD and the visible part of the board.
func (g *Game) Render(dst *platformcore.Screen) {
	if g.err != nil {
		dst.DrawTextCentered(dst.Height()/2, "Cannot start: "+g.err.Error(), platformcore.ColorAccent)
		return
	}
	if g.session == nil {
		return
	}
	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", platformcore.ColorAccent)
		return
	}

	g.renderHUD(dst)
	dst.DrawBox(g.board, platformcore.ColorDim)
	g.renderBoard(dst)
}

func (g *Game) renderHUD(dst *platformcore.Screen) {
	s := g.session
	sim := s.Sim()

	x := 1
	write := func(text string, c platformcore.Color) {
		dst.DrawTextColored(x, 0, text, c)
		x += len([]rune(text))
	}

	write(g.Title(), platformcore.ColorWhite)
	write("  ", platformcore.ColorDefault)
	dst.SetColored(x, 0, swatchChar, g.termColor(sim.CurrentColor()))
	x++
	write(fmt.Sprintf("  score %d  spans %d", s.Score(), s.Spans()), platformcore.ColorGray)
	if sim.Flashing() {
		write(fmt.Sprintf("  clearing %d", sim.FlashRemaining()), platformcore.ColorAccent)
	}
	if s.Paused() {
		write("  PAUSED", platformcore.ColorAccent)
	}
	if g.message != "" {
		write("  "+g.message, platformcore.ColorWhite)
	}
}

func (g *Game) renderBoard(dst *platformcore.Screen) {
	sim := g.session.Sim()
	top := g.viewTop()
	rows := min(sim.Rows()-top, g.inner.H)
	cols := min(sim.Cols(), g.inner.W/cellW)
	highlight := sim.IsHighlightTick()
	showGrid := g.session.ShowGrid()

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			coord := core.C(top+r, c)
			cell := sim.Cell(coord.Row, coord.Col)

			glyph := platformcore.Cell{Rune: ' '}
			switch {
			case cell.Filled && !(sim.IsFlashing(coord) && !highlight):
				glyph = platformcore.Cell{Rune: grainChar, Color: g.termColor(cell.Color)}
			case showGrid:
				glyph = platformcore.Cell{Rune: gridChar, Color: platformcore.ColorDim}
			}
			if g.showCursor && coord == g.cursor && !cell.Filled {
				glyph = platformcore.Cell{Rune: cursorChar, Color: platformcore.ColorAccent}
			}

			x := g.inner.X + c*cellW
			y := g.inner.Y + r
			dst.SetCell(x, y, glyph)
			if glyph.Rune == grainChar {
				dst.SetCell(x+1, y, glyph)
			}
		}
	}
}

// termColor converts a sand color to a screen color, caching the result.
func (g *Game) termColor(c core.Color) platformcore.Color {
	if tc, ok := g.palette[c]; ok {
		return tc
	}
	tc := platformcore.Color(c.Hex())
	g.palette[c] = tc
	return tc
}
