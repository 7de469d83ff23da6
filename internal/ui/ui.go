// Package ui renders the photokeys terminal client.
//
// The view is deliberately thin: it draws the album list with binding
// hints, routes keystrokes to the app by mode, and shows the partial-input
// and next-available-characters state the validator reports. All keybinding
// logic lives in the keybind package.
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/photokeys/internal/app"
	"github.com/dshills/photokeys/internal/config"
	"github.com/dshills/photokeys/internal/keybind"
)

// UI is the terminal view and event loop.
type UI struct {
	screen tcell.Screen
	app    *app.App
	cfg    config.UIConfig
	log    *app.Logger

	status      string
	statusStyle tcell.Style
	quit        bool
}

// New creates a UI on the real terminal.
func New(a *app.App, cfg config.UIConfig, log *app.Logger) (*UI, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	return NewWithScreen(screen, a, cfg, log), nil
}

// NewWithScreen creates a UI on the given screen. Tests pass a simulation
// screen here.
func NewWithScreen(screen tcell.Screen, a *app.App, cfg config.UIConfig, log *app.Logger) *UI {
	return &UI{screen: screen, app: a, cfg: cfg, log: log}
}

// Run initializes the screen and processes events until quit.
func (u *UI) Run() error {
	if err := u.screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer u.screen.Fini()

	for !u.quit {
		u.render()
		u.handle(u.screen.PollEvent())
	}
	return nil
}

// Interrupt asks the event loop to quit. Safe to call from another
// goroutine; used for signal handling.
func (u *UI) Interrupt() {
	u.screen.PostEventWait(tcell.NewEventInterrupt(nil))
}

func (u *UI) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventInterrupt:
		u.quit = true
	case *tcell.EventResize:
		u.screen.Sync()
	case *tcell.EventKey:
		u.handleKey(ev)
	}
}

func (u *UI) handleKey(ev *tcell.EventKey) {
	switch {
	case ev.Key() == tcell.KeyCtrlC:
		u.quit = true

	case ev.Key() == tcell.KeyEscape:
		u.app.Escape()
		u.status = ""

	case ev.Key() == tcell.KeyBackspace || ev.Key() == tcell.KeyBackspace2:
		switch u.app.Mode() {
		case app.ModeKeybind:
			u.app.Backspace()
		case app.ModeSearch:
			u.app.SearchBackspace()
		}

	case ev.Key() == tcell.KeyRune:
		u.handleRune(ev.Rune())
	}
}

func (u *UI) handleRune(r rune) {
	switch u.app.Mode() {
	case app.ModeBrowse:
		switch r {
		case 'q':
			u.quit = true
		case '/':
			u.app.EnterSearchMode()
			u.status = ""
		default:
			// Any other rune arms keybinding mode and counts as its
			// first keystroke.
			u.app.EnterKeybindMode()
			u.keybindingKey(r)
		}

	case app.ModeKeybind:
		u.keybindingKey(r)

	case app.ModeSearch:
		u.app.SearchKey(r)
	}
}

func (u *UI) keybindingKey(r rune) {
	result := u.app.Key(r)

	switch result.Kind {
	case keybind.ResultExactMatch:
		if album, ok := u.app.Album(result.Album); ok {
			u.status = fmt.Sprintf("Selected %s", album.Name)
			u.statusStyle = styleTyped
		}
		u.app.Escape()

	case keybind.ResultInvalid:
		u.status = fmt.Sprintf("no binding continues with %q", string(result.Rejected))
		u.statusStyle = styleError

	case keybind.ResultValidContinuation:
		u.status = ""
	}
}
