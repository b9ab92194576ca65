package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

const (
	cellWidth    = 2  // each board cell is drawn as two runes so it looks square
	sidebarWidth = 16 // next-piece box and HUD
	sidebarGap   = 2
	sidebarRows  = 14
)

var kindColors = [KindCount]core.Color{
	KindO: core.ColorYellow,
	KindZ: core.ColorRed,
	KindT: core.ColorMagenta,
	KindS: core.ColorGreen,
	KindL: core.ColorOrange,
	KindJ: core.ColorBlue,
	KindI: core.ColorCyan,
}

// KindColor returns the color used to draw pieces of kind k.
func KindColor(k Kind) core.Color {
	if k < 0 || int(k) >= KindCount {
		return core.ColorWhite
	}
	return kindColors[k]
}

// MinScreen returns the smallest terminal that fits the well and sidebar.
func (g *Game) MinScreen() core.Extent {
	size := g.boardSize()
	return core.Extent{
		Width:  size.Width*cellWidth + 2 + sidebarGap + sidebarWidth,
		Height: core.Max(size.Height+2, sidebarRows),
	}
}

func (g *Game) boardSize() core.Extent {
	if g.panel != nil {
		return g.panel.Size()
	}
	def := g.cfg.Board
	if def.Width == 0 || def.Height == 0 {
		return core.Ext(10, 20)
	}
	return core.Ext(def.Width, def.Height)
}

// Render draws the well, the live piece with its ghost, the next-piece box
// and the HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.panel == nil {
		return
	}

	minSize := g.MinScreen()
	if dst.Width() < minSize.Width || dst.Height() < minSize.Height {
		g.renderTooSmall(dst, minSize)
		return
	}

	size := g.panel.Size()
	wellW := size.Width*cellWidth + 2
	wellH := size.Height + 2
	totalW := wellW + sidebarGap + sidebarWidth
	origin := core.Pt((dst.Width()-totalW)/2, (dst.Height()-wellH)/2)

	well := core.RectAt(origin, core.Ext(wellW, wellH))
	dst.DrawBox(well)
	inner := origin.Add(core.Pt(1, 1))

	g.renderLocked(dst, inner, size)
	g.renderGhost(dst, inner)
	g.renderLive(dst, inner)

	side := core.Pt(well.Right()+sidebarGap, origin.Y)
	g.renderNext(dst, side)
	g.renderHUD(dst, side.Add(core.Pt(0, 7)))

	switch {
	case g.gameOver:
		renderOverlay(dst, well, "GAME OVER", "R to restart")
	case g.paused:
		renderOverlay(dst, well, "PAUSED", "P to resume")
	}
}

func drawCell(dst *core.Screen, inner core.Point, p core.Point, r rune, c core.Color) {
	x := inner.X + p.X*cellWidth
	y := inner.Y + p.Y
	for i := range cellWidth {
		dst.SetColored(x+i, y, r, c)
	}
}

func (g *Game) renderLocked(dst *core.Screen, inner core.Point, size core.Extent) {
	for y := range size.Height {
		for x := range size.Width {
			p := core.Pt(x, y)
			if g.panel.Locked(p) {
				drawCell(dst, inner, p, '█', core.ColorWhite)
			} else {
				dst.SetColored(inner.X+x*cellWidth, inner.Y+y, ' ', core.ColorDefault)
				dst.SetColored(inner.X+x*cellWidth+1, inner.Y+y, '.', core.ColorGray)
			}
		}
	}
}

func (g *Game) renderGhost(dst *core.Screen, inner core.Point) {
	live, ok := g.panel.Live()
	if !ok {
		return
	}
	pos, ok := g.panel.DropPosition()
	if !ok || pos == live.Position {
		return
	}
	for _, c := range live.Piece.At(pos) {
		drawCell(dst, inner, c, '░', core.ColorGray)
	}
}

func (g *Game) renderLive(dst *core.Screen, inner core.Point) {
	live, ok := g.panel.Live()
	if !ok {
		return
	}
	color := KindColor(live.Piece.Kind())
	for _, c := range live.Cells() {
		drawCell(dst, inner, c, '█', color)
	}
}

func (g *Game) renderNext(dst *core.Screen, at core.Point) {
	box := core.RectAt(at, core.Ext(sidebarWidth, 6))
	dst.DrawBox(box)
	dst.DrawText(at.X+2, at.Y, " Next ")

	b := g.next.Bounds()
	inner := core.Pt(
		at.X+(sidebarWidth-b.Width*cellWidth)/2,
		at.Y+1+(4-b.Height)/2,
	)
	color := KindColor(g.next.Kind())
	for _, c := range g.next.Cells() {
		drawCell(dst, inner, c, '█', color)
	}
}

func (g *Game) renderHUD(dst *core.Screen, at core.Point) {
	lines := []string{
		fmt.Sprintf("Score  %d", g.score),
		fmt.Sprintf("Lines  %d", g.lines),
		fmt.Sprintf("Pieces %d", g.pieces),
	}
	for i, line := range lines {
		dst.DrawText(at.X, at.Y+i, line)
	}
	if g.lastClear.Count() > 0 {
		dst.DrawTextColored(at.X, at.Y+len(lines)+1,
			fmt.Sprintf("Last   +%d", LineScore(g.lastClear.Count())), core.ColorBrightYellow)
	}
}

func (g *Game) renderTooSmall(dst *core.Screen, need core.Extent) {
	y := dst.Height()/2 - 1
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", need.Width, need.Height))
}

// renderOverlay draws a two-line message box centered on area.
func renderOverlay(dst *core.Screen, area core.Rect, line1, line2 string) {
	boxW := core.Max(len(line1), len(line2)) + 4
	boxH := 4
	cx, cy := area.Center()
	box := core.NewRect(cx-boxW/2, cy-boxH/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextColored(box.X+(boxW-len(line1))/2, box.Y+1, line1, core.ColorBrightWhite)
	dst.DrawText(box.X+(boxW-len(line2))/2, box.Y+2, line2)
}
