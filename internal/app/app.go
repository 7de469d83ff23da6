package app

import (
	"context"
	"errors"
	"sync"

	"github.com/dshills/photokeys/internal/catalog"
	"github.com/dshills/photokeys/internal/keybind"
	"github.com/dshills/photokeys/internal/script"
	"github.com/dshills/photokeys/internal/search"
)

// Mode is the client interaction mode.
type Mode string

const (
	// ModeBrowse is the default list view.
	ModeBrowse Mode = "browse"
	// ModeKeybind routes keystrokes to the keybinding validator.
	ModeKeybind Mode = "keybind"
	// ModeSearch routes keystrokes to the text search fallback.
	ModeSearch Mode = "search"
)

// ErrNoSource is returned by New when no catalog source is configured.
var ErrNoSource = errors.New("app: catalog source required")

// Options configures the application.
type Options struct {
	// Source supplies album snapshots. Required.
	Source catalog.Source

	// Rules optionally pins keybindings for named albums.
	Rules *script.Rules

	// Logger defaults to a stderr logger at info level.
	Logger *Logger
}

// App owns the current album snapshot and the derived keybinding state.
//
// The keybinding table is rebuilt wholesale on every Refresh; consumers see
// atomic snapshots. A validator is tied to the table generation it was built
// from, so Refresh replays any in-flight partial input against the new
// table and clears it if it no longer leads anywhere.
type App struct {
	mu sync.RWMutex

	log     *Logger
	source  catalog.Source
	rules   *script.Rules
	matcher *search.Matcher

	albums    []catalog.Album
	table     keybind.Table
	validator *keybind.Validator

	mode        Mode
	searchQuery string
}

// New creates the application.
func New(opts Options) (*App, error) {
	if opts.Source == nil {
		return nil, ErrNoSource
	}
	log := opts.Logger
	if log == nil {
		log = NewLogger(DefaultLoggerConfig())
	}

	return &App{
		log:       log,
		source:    opts.Source,
		rules:     opts.Rules,
		matcher:   search.NewMatcher(search.DefaultWeights()),
		table:     keybind.Table{},
		validator: keybind.NewValidator(keybind.Table{}),
		mode:      ModeBrowse,
	}, nil
}

// Refresh fetches a new album snapshot and rebuilds the keybinding table.
func (a *App) Refresh(ctx context.Context) error {
	albums, err := a.source.Albums(ctx)
	if err != nil {
		return err
	}
	albums = catalog.SortByID(albums)

	var pins keybind.Table
	if a.rules != nil {
		var rejected []script.Rejection
		pins, rejected = a.rules.Apply(albums)
		for _, r := range rejected {
			a.log.Warn("rules: pin %q -> %q ignored: %s", r.Name, r.Binding, r.Reason)
		}
	}

	table := keybind.AllocateWithPins(albums, pins)
	validator := keybind.NewValidator(table)

	a.mu.Lock()
	partial := a.validator.Partial()
	a.albums = albums
	a.table = table
	a.validator = validator
	a.replayPartial(partial)
	a.mu.Unlock()

	a.log.Info("table rebuilt: %d albums, %d bound, %d unbound",
		len(albums), table.Len(), len(albums)-table.Len())
	return nil
}

// replayPartial feeds an old partial buffer into the fresh validator.
// If any keystroke stops being a valid continuation, the buffer clears:
// stale input must not silently select against the new table, so an exact
// match during replay also clears.
func (a *App) replayPartial(partial string) {
	for _, c := range partial {
		if r := a.validator.Key(c); r.Kind != keybind.ResultValidContinuation {
			a.validator.Reset()
			return
		}
	}
}

// Albums returns the current snapshot.
func (a *App) Albums() []catalog.Album {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]catalog.Album, len(a.albums))
	copy(out, a.albums)
	return out
}

// Table returns a copy of the current keybinding table.
func (a *App) Table() keybind.Table {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.table.Clone()
}

// Unbound returns the albums that did not receive a keybinding, in ID
// order. These remain reachable through search.
func (a *App) Unbound() []catalog.Album {
	a.mu.RLock()
	defer a.mu.RUnlock()

	var out []catalog.Album
	for _, album := range a.albums {
		if _, ok := a.table.Binding(album.ID); !ok {
			out = append(out, album)
		}
	}
	return out
}

// Mode returns the current interaction mode.
func (a *App) Mode() Mode {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.mode
}

// EnterKeybindMode switches to keybinding entry with an empty buffer.
func (a *App) EnterKeybindMode() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.mode = ModeKeybind
	a.validator.Reset()
}

// EnterSearchMode switches to text search with an empty query.
func (a *App) EnterSearchMode() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.mode = ModeSearch
	a.searchQuery = ""
}

// Escape clears transient input and returns to browsing.
func (a *App) Escape() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.mode = ModeBrowse
	a.searchQuery = ""
	a.validator.Reset()
}

// Partial returns the keybinding buffer typed so far.
func (a *App) Partial() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.validator.Partial()
}

// NextAvailable returns the characters that can extend the current buffer.
func (a *App) NextAvailable() []rune {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.validator.NextAvailable(a.validator.Partial())
}

// Key routes one keystroke in keybinding mode.
func (a *App) Key(c rune) keybind.Result {
	a.mu.Lock()
	defer a.mu.Unlock()

	result := a.validator.Key(c)
	switch result.Kind {
	case keybind.ResultExactMatch:
		a.log.Debug("keybinding matched album %s", result.Album)
	case keybind.ResultInvalid:
		a.log.Debug("keystroke %q rejected (buffer %q)", result.Rejected, a.validator.Partial())
	}
	return result
}

// Backspace truncates the keybinding buffer and returns the new buffer.
func (a *App) Backspace() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.validator.Truncate()
}

// SearchKey appends a character to the search query.
func (a *App) SearchKey(c rune) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.searchQuery += string(c)
}

// SearchBackspace removes the last character of the search query.
func (a *App) SearchBackspace() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.searchQuery != "" {
		runes := []rune(a.searchQuery)
		a.searchQuery = string(runes[:len(runes)-1])
	}
}

// SearchQuery returns the current search query.
func (a *App) SearchQuery() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.searchQuery
}

// SearchResults returns albums matching the current query, best first.
func (a *App) SearchResults(limit int) []search.Result {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.matcher.Match(a.searchQuery, a.albums, limit)
}

// Album looks up an album in the current snapshot.
func (a *App) Album(id catalog.AlbumID) (catalog.Album, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	for _, album := range a.albums {
		if album.ID == id {
			return album, true
		}
	}
	return catalog.Album{}, false
}
