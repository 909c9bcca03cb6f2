package render

import (
	"fmt"

	"dungeon-inventory/internal/grid"
	"dungeon-inventory/internal/sim"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// MessageLog keeps the most recent narration lines. It implements
// sim.NarrationSink.
type MessageLog struct {
	limit int
	lines []string
}

// NewMessageLog returns a log that keeps at most limit lines.
func NewMessageLog(limit int) *MessageLog {
	if limit < 1 {
		limit = 1
	}
	return &MessageLog{limit: limit}
}

// Narrate appends line, dropping the oldest line when full.
func (l *MessageLog) Narrate(line string) {
	l.lines = append(l.lines, line)
	if over := len(l.lines) - l.limit; over > 0 {
		l.lines = append(l.lines[:0], l.lines[over:]...)
	}
}

// Lines returns the kept lines, oldest first.
func (l *MessageLog) Lines() []string { return l.lines }

// Last returns up to n of the newest lines, oldest first.
func (l *MessageLog) Last(n int) []string {
	start := len(l.lines) - n
	if start < 0 {
		start = 0
	}
	return l.lines[start:]
}

// DrawHUD renders the legend, the last tick summary and the newest narration
// lines below the panels, then shows the screen.
func (r *Renderer) DrawHUD(stats sim.TickStats, log *MessageLog) {
	_, screenH := r.screen.Size()
	hudY := screenH - HUDHeight

	r.drawHLine(hudY, tcell.ColorGray)

	x := 0
	for _, name := range grid.Names {
		theme := PanelThemes[name]
		style := tcell.StyleDefault.Foreground(theme.LabelFG).Background(theme.ItemBG)
		x = r.drawText(x, hudY+1, " "+theme.Label+" ", style) + 1
	}
	status := fmt.Sprintf("tick %d  spawned %d  dropped %d  unknown %d",
		stats.Tick, stats.Spawned, stats.Dropped, stats.LootMisses)
	r.drawText(x+1, hudY+1, status, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	for i, msg := range log.Last(HUDHeight - 3) {
		r.drawText(0, hudY+2+i, msg, tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
	}
	r.drawText(0, screenH-1, "l/L loot  n narrate  s stash  e equip  c clear  q quit", tcell.StyleDefault.Foreground(tcell.ColorGray))

	r.screen.Show()
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

// drawText writes text from column x, truncated to the screen width, and
// returns the column after the last cell written.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) int {
	w, _ := r.screen.Size()
	if x >= w {
		return x
	}
	text = runewidth.Truncate(text, w-x, "…")
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += runewidth.RuneWidth(ch)
	}
	return col
}
