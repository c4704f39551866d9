package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// LoadingScreen shows preload progress before the scene mounts
type LoadingScreen struct {
	screen tcell.Screen
}

// NewLoadingScreen creates a loading screen on screen
func NewLoadingScreen(screen tcell.Screen) *LoadingScreen {
	return &LoadingScreen{screen: screen}
}

// Draw renders "loaded: N%" centred with a bar below it
func (l *LoadingScreen) Draw(percent int) {
	percent = max(0, min(percent, 100))
	l.screen.Clear()
	w, h := l.screen.Size()

	text := fmt.Sprintf("loaded: %d%%", percent)
	y := h / 2
	drawText(l.screen, max((w-len(text))/2, 0), y, text, tcell.StyleDefault.Foreground(RgbHUDText), w)

	barWidth := min(w-4, 40)
	if barWidth > 0 && y+1 < h {
		x0 := (w - barWidth) / 2
		filled := barWidth * percent / 100
		for i := 0; i < barWidth; i++ {
			r, c := '░', RgbHUDHelp
			if i < filled {
				r, c = '█', RgbLoadingBar
			}
			l.screen.SetContent(x0+i, y+1, r, nil, tcell.StyleDefault.Foreground(c))
		}
	}
	l.screen.Show()
}
