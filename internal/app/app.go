// Package app wires the motion engine to a terminal. It owns the session:
// configuration, logging, the renderer and its blinking cursor, live
// config reload, and the event loop.
package app

import (
	"context"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	glua "github.com/yuin/gopher-lua"

	"github.com/dshills/vimotion/internal/config"
	"github.com/dshills/vimotion/internal/engine"
	"github.com/dshills/vimotion/internal/input/key"
	"github.com/dshills/vimotion/internal/plugin/lua"
	"github.com/dshills/vimotion/internal/renderer"
	"github.com/dshills/vimotion/internal/renderer/backend"
)

// Application is one editing session.
type Application struct {
	mu sync.Mutex

	cfg       *config.Config
	logger    *Logger
	sessionID string

	engine   *engine.Engine
	backend  backend.Backend
	renderer *renderer.Renderer
	blinker  *renderer.Blinker
	blink    atomic.Bool

	// Script key hook, set by RunScript when the script defines on_key
	hook *lua.KeyHook

	// Config file watcher of the last Run
	watcher *config.Watcher

	running  atomic.Bool
	done     chan struct{}
	doneOnce sync.Once

	opts Options
}

// Options configures the application.
type Options struct {
	// Config holds the settings. Nil means config.Default().
	Config *config.Config

	// ConfigPath is watched for changes while the application runs.
	// Empty disables live reload.
	ConfigPath string

	// Logger receives application logs. Nil disables logging.
	Logger *Logger
}

// New creates an application with the given options.
func New(opts Options) (*Application, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	cfg = cfg.Clone()

	logger := opts.Logger
	if logger == nil {
		logger = NullLogger
	}

	app := &Application{
		cfg:       cfg,
		sessionID: uuid.NewString(),
		blinker:   renderer.NewBlinker(cfg.Cursor.BlinkInterval.Std()),
		done:      make(chan struct{}),
		opts:      opts,
	}
	app.logger = logger.WithField("session", app.sessionID)
	app.blink.Store(cfg.Cursor.Blink)

	e, err := engine.New(cfg.Document.Lines, engine.WithLogger(app.logger.WithComponent("engine")))
	if err != nil {
		return nil, &InitError{Component: "engine", Err: err}
	}
	app.engine = e

	app.logger.Debug("session created with %d lines", len(cfg.Document.Lines))
	return app, nil
}

// SetBackend sets the terminal backend.
// Must be called before Run().
func (app *Application) SetBackend(b backend.Backend) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.running.Load() {
		return ErrAlreadyRunning
	}

	app.backend = b
	return nil
}

// SessionID returns the session identifier used in logs.
func (app *Application) SessionID() string {
	return app.sessionID
}

// Logger returns the session logger.
func (app *Application) Logger() *Logger {
	return app.logger
}

// Config returns a copy of the current settings.
func (app *Application) Config() *config.Config {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.cfg.Clone()
}

// Engine returns the engine. Callers must not use it while Run is active;
// use HandleKey instead.
func (app *Application) Engine() *engine.Engine {
	return app.engine
}

// IsRunning returns true if the event loop is running.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// HandleKey sends code to the engine and redraws if the result changed
// what is on screen.
func (app *Application) HandleKey(code key.Code) engine.Outcome {
	app.mu.Lock()
	prev := app.engine.State()
	out := app.engine.HandleKey(code)
	if out.IsApplied() && out.Result.NeedsRedraw(prev.Cursor, prev.Mode) {
		app.refresh()
	}
	hook := app.hook
	app.mu.Unlock()

	// The hook runs unlocked so on_key can query and press keys.
	if hook != nil && hook.Active() {
		if err := hook.Notify(code, out); err != nil {
			app.logger.Warn("%v", NewComponentError("script", lua.KeyHookName, err))
		}
	}
	return out
}

// State returns the engine state.
func (app *Application) State() engine.State {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.engine.State()
}

// Lines returns the document.
func (app *Application) Lines() []string {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.engine.Lines()
}

// Page returns a snapshot of what the renderer draws.
func (app *Application) Page() renderer.Page {
	app.mu.Lock()
	defer app.mu.Unlock()
	return renderer.PageOf(app.engine)
}

// Feed handles every key of a key specification such as "wwx<Esc>" and
// returns how many were applied.
func (app *Application) Feed(spec string) (int, error) {
	codes, err := key.ParseSequence(spec)
	if err != nil {
		return 0, fmt.Errorf("parsing keys: %w", err)
	}

	applied := 0
	for _, code := range codes {
		if app.HandleKey(code).IsApplied() {
			applied++
		}
	}
	app.logger.Debug("fed %d keys, %d applied", len(codes), applied)
	return applied, nil
}

// RunScript runs the Lua script at path against this session. Script
// output goes to out. The global session holds the session id.
//
// If the script defines on_key, the script stays loaded and on_key is
// called after every later key until the next script or Close.
func (app *Application) RunScript(path string, out io.Writer) error {
	state, err := lua.NewState(lua.WithOutput(out))
	if err != nil {
		return NewComponentError("script", "create state", err)
	}

	lua.Bind(state, app)
	state.SetGlobal("session", glua.LString(app.sessionID))
	if err := state.DoFile(path); err != nil {
		state.Close()
		return NewComponentError("script", "run "+path, err)
	}

	hook, ok := lua.NewKeyHook(state)
	if !ok {
		return state.Close()
	}

	app.mu.Lock()
	prev := app.hook
	app.hook = hook
	app.mu.Unlock()

	if prev != nil {
		prev.Close()
	}
	app.logger.Debug("script %s installed %s", path, lua.KeyHookName)
	return nil
}

// Close releases the session's script state.
func (app *Application) Close() error {
	app.mu.Lock()
	hook := app.hook
	app.hook = nil
	app.mu.Unlock()

	if hook == nil {
		return nil
	}
	return hook.Close()
}

// Reload applies new settings. Theme and cursor blink settings take
// effect immediately; the document and log settings are kept.
func (app *Application) Reload(cfg *config.Config) {
	app.mu.Lock()
	defer app.mu.Unlock()

	app.cfg.Theme = cfg.Theme
	app.cfg.Cursor = cfg.Cursor
	app.blinker.SetInterval(cfg.Cursor.BlinkInterval.Std())
	app.blink.Store(cfg.Cursor.Blink)

	if app.renderer != nil {
		app.renderer.SetTheme(themeOf(app.cfg.Theme))
		app.refresh()
	}
	app.logger.Info("configuration reloaded")
}

// ReloadConfig reloads the watched config file now. It fails with
// config.ErrWatcherClosed when no session is watching a file.
func (app *Application) ReloadConfig() error {
	app.mu.Lock()
	w := app.watcher
	app.mu.Unlock()

	if w == nil {
		return fmt.Errorf("%w: no config file is watched", config.ErrWatcherClosed)
	}
	if err := w.Reload(); err != nil {
		return NewComponentError("config", "reload "+w.Path(), err)
	}
	return nil
}

// refresh draws the current page and restarts the blink interval.
// Caller holds app.mu.
func (app *Application) refresh() {
	if app.renderer == nil {
		return
	}
	app.renderer.RenderPage(renderer.PageOf(app.engine))
	app.blinker.Reset()
}

// Run starts the event loop on the backend. It blocks until the user
// quits, ctx is canceled, or Shutdown is called.
func (app *Application) Run(ctx context.Context) error {
	app.mu.Lock()
	b := app.backend
	app.mu.Unlock()
	if b == nil {
		return ErrNoBackend
	}

	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := b.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer b.Shutdown()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	app.mu.Lock()
	app.renderer = renderer.New(b, renderer.WithTheme(themeOf(app.cfg.Theme)))
	app.refresh()
	app.mu.Unlock()
	defer func() {
		app.mu.Lock()
		app.renderer = nil
		app.mu.Unlock()
	}()

	go app.blinker.Run(ctx)

	if app.opts.ConfigPath != "" {
		w, err := config.NewWatcher(app.opts.ConfigPath, app.Reload,
			config.WithErrorHandler(func(err error) {
				app.logger.WithComponent("config").Warn("reload failed: %v", err)
			}),
		)
		if err != nil {
			app.logger.Warn("%v", NewComponentError("config", "watch "+app.opts.ConfigPath, err))
		} else {
			app.mu.Lock()
			app.watcher = w
			app.mu.Unlock()
			defer w.Close()
		}
	}

	app.logger.Info("session started")
	err := app.eventLoop(ctx)
	app.logger.Info("session ended")
	return err
}

// Shutdown stops a running event loop.
func (app *Application) Shutdown() {
	app.doneOnce.Do(func() {
		close(app.done)
	})

	app.mu.Lock()
	b := app.backend
	app.mu.Unlock()
	if b != nil && app.running.Load() {
		b.PostEvent(backend.Event{Type: backend.EventInterrupt})
	}
}

// themeOf converts theme settings to renderer colors.
func themeOf(t config.ThemeConfig) renderer.Theme {
	return renderer.Theme{
		CursorForeground: t.CursorForeground,
		CursorBackground: t.CursorBackground,
		StatusForeground: t.StatusForeground,
		StatusBackground: t.StatusBackground,
	}
}
