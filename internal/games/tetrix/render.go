package tetrix

import (
	"fmt"

	"github.com/vovakirdan/tui-tetrix/internal/core"
)

// Style controls how the well is drawn. Each cell is two columns wide so
// the well looks roughly square in a terminal.
type Style struct {
	Block  string     // glyph pair for a solid cell
	Empty  string     // glyph pair for an empty cell
	Locked core.Color // color of every locked cell
	Border core.Color
}

// DefaultStyle returns the built-in look: gray locked cells, as the well
// keeps no per-cell color.
func DefaultStyle() Style {
	return Style{
		Block:  "[]",
		Empty:  " .",
		Locked: core.RGB(0xA0A0A0),
		Border: core.ColorDefault,
	}
}

var renderStyle = DefaultStyle()

// SetStyle sets the style used by games created afterwards.
// Glyphs are padded or cut to exactly two columns.
func SetStyle(s Style) {
	s.Block = cellGlyph(s.Block, "[]")
	s.Empty = cellGlyph(s.Empty, " .")
	renderStyle = s
}

func currentStyle() Style {
	return renderStyle
}

func cellGlyph(s, fallback string) string {
	r := []rune(s)
	switch {
	case len(r) == 0:
		return fallback
	case len(r) == 1:
		return string([]rune{r[0], r[0]})
	default:
		return string(r[:2])
	}
}

// Layout dimensions in screen columns/rows.
const (
	cellW       = 2
	wellBoxW    = WellWidth*cellW + 2
	wellBoxH    = WellHeight + 2
	panelGap    = 2
	panelW      = 18
	previewBoxW = MaxGridSize*cellW + 2
	previewBoxH = MaxGridSize + 2

	// MinScreenW and MinScreenH are the smallest screen the layout fits.
	MinScreenW = wellBoxW + panelGap + panelW
	MinScreenH = wellBoxH
)

var (
	statusColors = map[Status]core.Color{
		StatusPlaying:  core.RGB(0x007F00),
		StatusPaused:   core.RGB(0xFFFF00),
		StatusGameOver: core.RGB(0xFF0000),
	}
	labelNext  = core.RGB(0x0000FF)
	labelScore = core.RGB(0x007F00)
	labelLines = core.RGB(0x0094FF)
	labelLevel = core.RGB(0x0094FF)
)

// Render draws the well, the side panel and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}

	snap := g.engine.Snapshot()
	ox := (dst.Width() - MinScreenW) / 2
	oy := (dst.Height() - MinScreenH) / 2
	well := core.NewRect(ox, oy, wellBoxW, wellBoxH)

	g.renderWell(dst, well, snap)
	g.renderPanel(dst, well.Right()+panelGap, oy, snap)

	switch snap.Status {
	case StatusGameOver:
		renderOverlay(dst, well, "GAME OVER", "N: new game")
	case StatusPaused:
		renderOverlay(dst, well, "PAUSED", "P: resume")
	}
}

func (g *Game) renderWell(dst *core.Screen, box core.Rect, snap Snapshot) {
	dst.DrawBox(box, g.style.Border)
	inner := box.Inner()

	for y, row := range snap.Well {
		for x, solid := range row {
			if solid {
				dst.DrawTextColor(inner.X+x*cellW, inner.Y+y, g.style.Block, g.style.Locked)
			} else {
				dst.DrawTextColor(inner.X+x*cellW, inner.Y+y, g.style.Empty, core.ColorGray)
			}
		}
	}

	// The active piece disappears once the game is over.
	if snap.Status == StatusGameOver {
		return
	}
	for _, c := range snap.Active.Cells {
		if c.X < 0 || c.X >= WellWidth || c.Y < 0 || c.Y >= WellHeight {
			continue
		}
		dst.DrawTextColor(inner.X+c.X*cellW, inner.Y+c.Y, g.style.Block, snap.Active.Color)
	}
}

func (g *Game) renderPanel(dst *core.Screen, x, y int, snap Snapshot) {
	dst.DrawTextColor(x, y, "Next piece:", labelNext)

	preview := core.NewRect(x, y+1, previewBoxW, previewBoxH)
	dst.DrawBox(preview, g.style.Border)
	inner := preview.Inner()
	for _, c := range snap.Next.Cells {
		px := c.X - PreviewX
		py := c.Y - PreviewY
		dst.DrawTextColor(inner.X+px*cellW, inner.Y+py, g.style.Block, snap.Next.Color)
	}

	row := preview.Bottom() + 1
	dst.DrawTextColor(x, row, fmt.Sprintf("Score: %d", snap.Score), labelScore)
	dst.DrawTextColor(x, row+2, fmt.Sprintf("Lines: %d", snap.Lines), labelLines)
	dst.DrawTextColor(x, row+4, fmt.Sprintf("Level: %d", snap.Level), labelLevel)
	dst.DrawTextColor(x, row+6, "Status: "+snap.Status.String(), statusColors[snap.Status])
}

// renderOverlay draws a boxed two-line message centered over area.
func renderOverlay(dst *core.Screen, area core.Rect, line1, line2 string) {
	boxW := max(len(line1), len(line2)) + 4
	boxH := 5
	box := core.NewRect(area.X+(area.W-boxW)/2, area.Y+(area.H-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorBrightWhite)
	dst.DrawTextColor(box.X+(boxW-len(line1))/2, box.Y+1, line1, core.ColorBrightWhite)
	dst.DrawText(box.X+(boxW-len(line2))/2, box.Y+3, line2)
}
