package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// revealTickMsg advances all in-progress fade transitions by one frame.
type revealTickMsg struct{}

const fadeInterval = 60 * time.Millisecond

func revealTick() tea.Cmd {
	return tea.Tick(fadeInterval, func(time.Time) tea.Msg {
		return revealTickMsg{}
	})
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.clampOffset()
		a.log.Debug("window size", "width", msg.Width, "height", msg.Height)
		return a.dispatch()

	case revealTickMsg:
		return a.advanceFades()

	case tea.KeyMsg:
		if a.jump.active {
			return a.updateJump(msg)
		}
		return a.updateScroll(msg)
	}
	return a, nil
}

func (a App) updateScroll(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Help):
		a.showHelp = !a.showHelp
		return a, nil
	case key.Matches(msg, a.keys.Jump):
		a.jump = jumpState{active: true}
		return a, nil
	case key.Matches(msg, a.keys.Down):
		a.offset++
	case key.Matches(msg, a.keys.Up):
		a.offset--
	case key.Matches(msg, a.keys.PageDown):
		a.offset += a.viewHeight()
	case key.Matches(msg, a.keys.PageUp):
		a.offset -= a.viewHeight()
	case key.Matches(msg, a.keys.Top):
		a.offset = 0
	case key.Matches(msg, a.keys.Bottom):
		a.offset = a.maxOffset()
	default:
		return a, nil
	}
	a.clampOffset()
	return a.dispatch()
}

// updateJump handles keys while the picker is open. Letters go into the
// query, so bindings that share letter keys (j/k, g/G, q) are matched by
// key type here, not through the key map.
func (a App) updateJump(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return a, tea.Quit
	case tea.KeyEsc:
		a.jump = jumpState{}
		return a, nil
	case tea.KeyEnter:
		ranked := rankItems(a.jumpItems, a.jump.query)
		if len(ranked) > 0 {
			i := a.jump.cursor
			if i >= len(ranked) {
				i = len(ranked) - 1
			}
			a.offset = ranked[i].top
		}
		a.jump = jumpState{}
		a.clampOffset()
		return a.dispatch()
	case tea.KeyUp:
		if a.jump.cursor > 0 {
			a.jump.cursor--
		}
	case tea.KeyDown:
		if a.jump.cursor < len(a.jumpItems)-1 {
			a.jump.cursor++
		}
	case tea.KeyBackspace:
		if r := []rune(a.jump.query); len(r) > 0 {
			a.jump.query = string(r[:len(r)-1])
			a.jump.cursor = 0
		}
	case tea.KeySpace:
		a.jump.query += " "
		a.jump.cursor = 0
	case tea.KeyRunes:
		a.jump.query += string(msg.Runes)
		a.jump.cursor = 0
	}
	return a, nil
}

func (a *App) clampOffset() {
	if a.offset > a.maxOffset() {
		a.offset = a.maxOffset()
	}
	if a.offset < 0 {
		a.offset = 0
	}
}

// dispatch feeds the current window through both sources, starts fade
// transitions for anything newly marked, and keeps the tick loop alive
// while a fade is in progress.
func (a App) dispatch() (tea.Model, tea.Cmd) {
	if !a.ready {
		return a, nil
	}
	for _, src := range a.sources {
		src.Dispatch(a.offset, a.viewHeight())
	}

	started := false
	for _, b := range a.blocks {
		obs := a.observerFor(b)
		if obs == nil || !obs.Revealed(b.id) {
			continue
		}
		if a.fade[b.id] == 0 {
			if a.cfg.UI.ReducedMotion {
				a.fade[b.id] = fadeFrames
			} else {
				a.fade[b.id] = 1
				started = true
			}
		}
	}
	if started && !a.fading {
		a.fading = true
		return a, revealTick()
	}
	return a, nil
}

func (a App) advanceFades() (tea.Model, tea.Cmd) {
	still := false
	for id, f := range a.fade {
		if f < fadeFrames {
			a.fade[id] = f + 1
			if f+1 < fadeFrames {
				still = true
			}
		}
	}
	a.fading = still
	if still {
		return a, revealTick()
	}
	return a, nil
}
