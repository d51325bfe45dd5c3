package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/dshills/softboard/internal/correction"
	"github.com/dshills/softboard/internal/geometry"
	"github.com/dshills/softboard/internal/keyboard"
	"github.com/dshills/softboard/internal/locale"
	"github.com/dshills/softboard/internal/tracker"
)

// Pointer ids for the two mouse buttons the demo maps to touches.
const (
	primaryPointer = 0
	chordPointer   = 1
)

// ui renders the layout with tcell and feeds mouse events into the
// tracker as touch events. The left button is the primary touch, the
// right button a chord pointer.
type ui struct {
	screen tcell.Screen
	geo    *geometry.Geometry
	boards *boardSource
	name   string
	logger *zap.Logger

	// Live status shown in the footer.
	lastCode   string
	candidates string
	modeLabel  string
	localeName string

	// Mouse button state from the previous event, for press/release
	// edge detection.
	leftDown  bool
	rightDown bool

	// hotIndex is the key under the active touch, for highlighting.
	hotIndex int

	// symbols is the view currently on screen. Swap requests arrive in
	// tracker callbacks while the tracker's own mutex is held, so they
	// are only flagged there and applied back in the event loop.
	symbols     bool
	wantSymbols bool
	modeDirty   bool
}

// newUI initializes the terminal around the initial keyboard variant.
func newUI(name string, kbd *keyboard.Keyboard, boards *boardSource, logger *zap.Logger) (*ui, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()

	return &ui{
		screen:     screen,
		geo:        kbd.Geometry,
		boards:     boards,
		name:       name,
		logger:     logger,
		modeLabel:  "alpha",
		localeName: locale.Default.DisplayName(),
		hotIndex:   -1,
	}, nil
}

// Close restores the terminal.
func (u *ui) Close() {
	u.screen.Fini()
}

// KeyCommitted is the tracker's commit callback.
func (u *ui) KeyCommitted(code geometry.Code) {
	u.lastCode = code.String()
}

// ModeChanged is the tracker's layout-swap callback. It may fire while
// the tracker holds its mutex, so the geometry swap itself is deferred
// to the event loop.
func (u *ui) ModeChanged(symbols bool) {
	if symbols {
		u.modeLabel = "symbols"
	} else {
		u.modeLabel = "alpha"
	}
	u.wantSymbols = symbols
	u.modeDirty = true
}

// LocaleChanged is the tracker's locale callback.
func (u *ui) LocaleChanged(delta int, current locale.Locale) {
	u.localeName = current.DisplayName()
	u.logger.Info("locale changed",
		zap.Int("delta", delta),
		zap.String("locale", current.String()))
}

// layoutChangedEvent reenters the event loop when a watched layout
// file changes on disk.
type layoutChangedEvent struct {
	when time.Time
	path string
}

func (e *layoutChangedEvent) When() time.Time { return e.when }

// LayoutFileChanged is the layout watcher's change callback. It runs on
// the watcher goroutine, so the reload is handed to the event loop as a
// posted event rather than done here.
func (u *ui) LayoutFileChanged(path string) {
	_ = u.screen.PostEvent(&layoutChangedEvent{when: time.Now(), path: path})
}

// Run drives the event loop until Escape or Ctrl+C.
func (u *ui) Run(tr *tracker.Tracker) error {
	for {
		u.draw(tr)
		ev := u.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			u.screen.Sync()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
				return nil
			case ev.Key() == tcell.KeyTab:
				tr.ToggleSymbols()
			case ev.Rune() == 'h':
				tr.HoldSymbols()
			}
		case *tcell.EventMouse:
			u.handleMouse(tr, ev)
		case *layoutChangedEvent:
			u.logger.Info("layout changed on disk", zap.String("path", ev.path))
			u.boards.Invalidate()
			u.applyKeyboard(tr, u.symbols)
		}
		if u.modeDirty {
			u.modeDirty = false
			u.applyKeyboard(tr, u.wantSymbols)
		}
	}
}

// applyKeyboard swaps in the variant for the requested view. A failed
// build keeps the current geometry on screen.
func (u *ui) applyKeyboard(tr *tracker.Tracker, symbols bool) {
	kbd, err := u.boards.Keyboard(symbols)
	if err != nil {
		u.logger.Warn("keyboard build failed", zap.Error(err))
		return
	}
	u.symbols = symbols
	u.geo = kbd.Geometry
	u.hotIndex = -1
	tr.SetGeometry(kbd.Geometry)
}

// handleMouse converts button edges into pointer events.
func (u *ui) handleMouse(tr *tracker.Tracker, ev *tcell.EventMouse) {
	x, y := ev.Position()
	p := geometry.Point{X: x, Y: y}
	buttons := ev.Buttons()

	left := buttons&tcell.Button1 != 0
	right := buttons&tcell.Button2 != 0

	switch {
	case left && !u.leftDown:
		res := tr.PointerDown(primaryPointer, p)
		u.hotIndex = res.KeyIndex
		u.candidates = candidateLine(res)
	case left && u.leftDown:
		res := tr.PointerMove(primaryPointer, p)
		u.hotIndex = res.KeyIndex
		u.candidates = candidateLine(res)
	case !left && u.leftDown:
		tr.PointerUp(primaryPointer, p)
		u.hotIndex = -1
	}
	u.leftDown = left

	switch {
	case right && !u.rightDown:
		tr.PointerDown(chordPointer, p)
	case !right && u.rightDown:
		tr.PointerUp(chordPointer, p)
	}
	u.rightDown = right
}

// draw renders the layout and the status footer.
func (u *ui) draw(tr *tracker.Tracker) {
	u.screen.Clear()

	keyStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	hotStyle := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)

	for i, key := range u.geo.Keys() {
		style := keyStyle
		if i == u.hotIndex {
			style = hotStyle
		}
		u.drawKey(&key, style)
	}

	state := tr.Machine().State()
	status := fmt.Sprintf(" %s | mode=%s state=%s locale=%s last=%s %s",
		u.name, u.modeLabel, state, u.localeName, u.lastCode, u.candidates)
	_, height := u.screen.Size()
	u.drawText(0, height-1, status, tcell.StyleDefault.Reverse(true))

	u.screen.Show()
}

// drawKey outlines one key region and centers its label.
func (u *ui) drawKey(key *geometry.Key, style tcell.Style) {
	r := key.Rect
	for dy := 0; dy < r.Height; dy++ {
		for dx := 0; dx < r.Width; dx++ {
			ch := ' '
			switch {
			case dy == 0 || dy == r.Height-1:
				ch = '-'
			case dx == 0 || dx == r.Width-1:
				ch = '|'
			}
			u.screen.SetContent(r.X+dx, r.Y+dy, ch, nil, style)
		}
	}
	label := key.Code().String()
	lx := r.X + (r.Width-len(label))/2
	ly := r.Y + r.Height/2
	u.drawText(lx, ly, label, style)
}

// drawText writes a string starting at (x, y).
func (u *ui) drawText(x, y int, s string, style tcell.Style) {
	for i, r := range s {
		u.screen.SetContent(x+i, y, r, nil, style)
	}
}

// candidateLine formats the nearby-candidate buffer for the footer.
func candidateLine(res correction.Result) string {
	codes := res.Candidates.Codes()
	if len(codes) == 0 {
		return ""
	}
	names := make([]string, len(codes))
	for i, c := range codes {
		names[i] = c.String()
	}
	return "near=[" + strings.Join(names, " ") + "]"
}
