package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// Layout constants for the game screen.
const (
	cellWidth  = 2  // Each board cell is two columns wide
	panelGap   = 2  // Columns between board and side panel
	panelWidth = 18 // Side panel width
	previewH   = 4  // Next box height including borders
)

const (
	blockRune = '█'
	emptyRune = '·'
)

// controls is the key legend printed in the side panel.
var controls = [][2]string{
	{"←→", "move"},
	{"↑ x", "rotate"},
	{"↓", "soft drop"},
	{"spc", "hard drop"},
	{"p", "pause"},
	{"r", "restart"},
	{"q", "quit"},
}

// layout holds the screen rectangles for one frame.
type layout struct {
	board core.Rect
	panel core.Rect
}

// panelHeight is the number of rows the side panel needs.
func panelHeight() int {
	// Next box, gap, three stat lines, gap, header, legend
	return previewH + 1 + 3 + 1 + 1 + len(controls)
}

// computeLayout centers board and panel on a screen of the given size.
// ok is false when the screen cannot hold them.
func computeLayout(screenW, screenH, cols, rows int) (layout, bool) {
	boardW := cols*cellWidth + 2
	boardH := rows + 2
	totalW := boardW + panelGap + panelWidth
	totalH := core.Max(boardH, panelHeight())

	if !core.NewRect(0, 0, screenW, screenH).Fits(core.NewRect(0, 0, totalW, totalH)) {
		return layout{}, false
	}

	ox := (screenW - totalW) / 2
	oy := (screenH - totalH) / 2
	return layout{
		board: core.NewRect(ox, oy, boardW, boardH),
		panel: core.NewRect(ox+boardW+panelGap, oy, panelWidth, totalH),
	}, true
}

// minScreenSize reports the smallest screen that fits the layout.
func minScreenSize(cols, rows int) (int, int) {
	return cols*cellWidth + 2 + panelGap + panelWidth, core.Max(rows+2, panelHeight())
}

// drawGame renders a full frame of the game into dst.
func drawGame(dst *core.Screen, snap tetris.Snapshot, palette map[tetris.Kind]core.Color) {
	dst.Clear()

	lay, ok := computeLayout(dst.Width(), dst.Height(), snap.Width, snap.Height)
	if !ok {
		drawTooSmall(dst, snap.Width, snap.Height)
		return
	}

	drawBoard(dst, lay.board, snap, palette)
	drawPanel(dst, lay.panel, snap, palette)

	cx, cy := lay.board.Center()
	switch snap.Status {
	case tetris.StatusPaused:
		drawOverlay(dst, cx, cy, core.ColorBrightYellow, "PAUSED", "", "Press P to resume")
	case tetris.StatusGameOver:
		drawOverlay(dst, cx, cy, core.ColorBrightRed,
			"GAME OVER", "", fmt.Sprintf("Score: %d", snap.Score), "Press R to restart")
	}
}

// drawBoard draws the well, the locked cells and the falling piece.
func drawBoard(dst *core.Screen, r core.Rect, snap tetris.Snapshot, palette map[tetris.Kind]core.Color) {
	dst.DrawBoxColored(r, core.ColorGray)

	for y, row := range snap.Grid {
		for x, kind := range row {
			if kind == tetris.Empty {
				dst.SetColored(r.X+1+x*cellWidth, r.Y+1+y, emptyRune, core.ColorGray)
				continue
			}
			drawCell(dst, r.X+1+x*cellWidth, r.Y+1+y, palette[kind])
		}
	}

	if snap.Status == tetris.StatusGameOver {
		return
	}
	color := palette[snap.Current.Kind]
	for _, b := range snap.Current.Blocks() {
		// Rows above the well are not visible
		if b.Y < 0 {
			continue
		}
		drawCell(dst, r.X+1+b.X*cellWidth, r.Y+1+b.Y, color)
	}
}

// drawPanel draws the next-piece preview, the stats and the key legend.
func drawPanel(dst *core.Screen, r core.Rect, snap tetris.Snapshot, palette map[tetris.Kind]core.Color) {
	preview := core.NewRect(r.X, r.Y, r.W, previewH)
	dst.DrawBoxColored(preview, core.ColorGray)
	dst.DrawText(preview.X+2, preview.Y, " Next ")

	shape := snap.Next.Shape
	px := preview.X + (preview.W-shape.Width()*cellWidth)/2
	py := preview.Y + 1 + (previewH-2-shape.Height())/2
	for _, b := range shape.Blocks() {
		drawCell(dst, px+b.X*cellWidth, py+b.Y, palette[snap.Next.Kind])
	}

	y := preview.Bottom() + 1
	for _, stat := range []struct {
		label string
		value int
	}{
		{"Score", snap.Score},
		{"Level", snap.Level},
		{"Lines", snap.Lines},
	} {
		dst.DrawText(r.X, y, stat.label)
		val := fmt.Sprintf("%d", stat.value)
		dst.DrawTextColored(r.Right()-len(val), y, val, core.ColorBrightWhite)
		y++
	}

	y++
	dst.DrawTextColored(r.X, y, "Controls", core.ColorGray)
	y++
	for _, c := range controls {
		dst.DrawTextColored(r.X, y, c[0], core.ColorCyan)
		dst.DrawText(r.X+5, y, c[1])
		y++
	}
}

// drawCell paints one board cell.
func drawCell(dst *core.Screen, x, y int, c core.Color) {
	for i := range cellWidth {
		dst.SetColored(x+i, y, blockRune, c)
	}
}

// drawOverlay draws a boxed message centered at (cx, cy).
func drawOverlay(dst *core.Screen, cx, cy int, c core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len([]rune(line)))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(cx-boxW/2, cy-boxH/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBoxColored(box, c)
	for i, line := range lines {
		x := box.X + (boxW-len([]rune(line)))/2
		dst.DrawTextColored(x, box.Y+1+i, line, c)
	}
}

// drawTooSmall tells the player how large the terminal needs to be.
func drawTooSmall(dst *core.Screen, cols, rows int) {
	w, h := minScreenSize(cols, rows)
	msg := []string{
		"Window too small",
		fmt.Sprintf("need %dx%d", w, h),
	}
	y := dst.Height()/2 - 1
	for i, line := range msg {
		dst.DrawTextCentered(y+i, line)
	}
}
