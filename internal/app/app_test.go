package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/vimotion/internal/config"
	"github.com/dshills/vimotion/internal/engine"
	"github.com/dshills/vimotion/internal/input/key"
	"github.com/dshills/vimotion/internal/input/mode"
	"github.com/dshills/vimotion/internal/renderer"
	"github.com/dshills/vimotion/internal/renderer/backend"
	"github.com/dshills/vimotion/internal/renderer/backend/backendtest"
)

// steadyConfig returns defaults with blinking off so cell colors are stable.
func steadyConfig() *config.Config {
	cfg := config.Default()
	cfg.Cursor.Blink = false
	return cfg
}

func newTestApp(t *testing.T, cfg *config.Config) (*Application, *backendtest.NullBackend) {
	t.Helper()
	app, err := New(Options{Config: cfg})
	require.NoError(t, err)

	b := backendtest.NewNullBackend(80, 6)
	require.NoError(t, app.SetBackend(b))
	return app, b
}

var quitEvent = backend.Event{Type: backend.EventKey, Key: backend.KeyCtrlQ}

// runKeys posts events followed by a quit and runs the session to the end.
func runKeys(t *testing.T, app *Application, b *backendtest.NullBackend, events ...backend.Event) {
	t.Helper()
	for _, ev := range events {
		b.PostEvent(ev)
	}
	b.PostEvent(quitEvent)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, app.Run(ctx))
}

// startApp runs the session in the background and waits until it draws.
func startApp(t *testing.T, app *Application) <-chan error {
	t.Helper()
	errc := make(chan error, 1)
	go func() { errc <- app.Run(context.Background()) }()
	require.Eventually(t, func() bool { return currentRenderer(app) != nil }, 5*time.Second, 5*time.Millisecond)
	return errc
}

func stopApp(t *testing.T, app *Application, errc <-chan error) {
	t.Helper()
	app.Shutdown()
	select {
	case err := <-errc:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after Shutdown")
	}
}

func currentRenderer(app *Application) *renderer.Renderer {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.renderer
}

func TestNew_Defaults(t *testing.T) {
	app, err := New(Options{})
	require.NoError(t, err)

	assert.Len(t, app.Lines(), 10)
	assert.Equal(t, mode.Normal, app.State().Mode)
	assert.Equal(t, 0, app.State().Cursor.Row)
	assert.False(t, app.IsRunning())

	_, err = uuid.Parse(app.SessionID())
	assert.NoError(t, err, "session id should be a UUID")
}

func TestNew_EmptyDocument(t *testing.T) {
	cfg := config.Default()
	cfg.Document.Lines = nil

	_, err := New(Options{Config: cfg})
	require.Error(t, err)
	assert.ErrorIs(t, err, engine.ErrEmptyDocument)

	var initErr *InitError
	require.ErrorAs(t, err, &initErr)
	assert.Equal(t, "engine", initErr.Component)
}

func TestNew_CopiesConfig(t *testing.T) {
	cfg := config.Default()
	app, err := New(Options{Config: cfg})
	require.NoError(t, err)

	cfg.Theme.CursorBackground = "red"
	assert.Equal(t, "white", app.Config().Theme.CursorBackground)
}

func TestHandleKey_WithoutBackend(t *testing.T) {
	app, err := New(Options{})
	require.NoError(t, err)

	out := app.HandleKey(key.CodeW)
	assert.True(t, out.IsApplied())
	assert.Equal(t, 6, app.State().Cursor.Col)
}

func TestFeed(t *testing.T) {
	app, err := New(Options{})
	require.NoError(t, err)

	n, err := app.Feed("wwx<Esc>")
	require.NoError(t, err)
	assert.Equal(t, 3, n, "escape in normal mode is rejected")
	assert.Equal(t, "Lorem e psum dolor sit amet, ut mei errem constituto,", app.Lines()[0])

	_, err = app.Feed("<oops")
	assert.ErrorIs(t, err, key.ErrUnmatchedBracket)
}

func TestPage(t *testing.T) {
	app, err := New(Options{})
	require.NoError(t, err)

	_, err = app.Feed("jli")
	require.NoError(t, err)

	p := app.Page()
	assert.Equal(t, 1, p.Row)
	assert.Equal(t, 1, p.Col)
	assert.Equal(t, "-- INSERT --", p.CommandText())
}

func TestRun_NoBackend(t *testing.T) {
	app, err := New(Options{})
	require.NoError(t, err)
	assert.ErrorIs(t, app.Run(context.Background()), ErrNoBackend)
}

func TestRun_DrawsPage(t *testing.T) {
	app, b := newTestApp(t, steadyConfig())

	runKeys(t, app, b, backendtest.KeyEvent(key.CodeW))

	assert.Equal(t, "Lorem e ipsum dolor sit amet, ut mei errem constituto,", b.Row(0))
	assert.Equal(t, "illud errem vidisse nam te. Nam quis scripserit at,", b.Row(1))
	assert.Equal(t, "", b.Row(5), "normal mode shows an empty command window")

	x, y, visible := b.CursorPosition()
	assert.True(t, visible)
	assert.Equal(t, 6, x)
	assert.Equal(t, 0, y)

	cell := b.GetCell(6, 0)
	assert.Equal(t, 'e', cell.Rune)
	assert.Equal(t, "white", cell.Style.Background)
	assert.Equal(t, "#2c3331", cell.Style.Foreground)
	assert.False(t, app.IsRunning())
}

func TestRun_InsertMode(t *testing.T) {
	app, b := newTestApp(t, steadyConfig())

	runKeys(t, app, b,
		backendtest.KeyEvent(key.CodeI),
		backendtest.KeyEvent(key.FromRune('X')),
	)

	assert.Equal(t, "XLorem e ipsum dolor sit amet, ut mei errem constituto,", b.Row(0))
	assert.Equal(t, "-- INSERT --", b.Row(5))
	assert.Equal(t, backend.CursorBar, b.CursorStyleValue())
	assert.Equal(t, mode.Insert, app.State().Mode)
}

func TestRun_EscapeLeavesInsert(t *testing.T) {
	app, b := newTestApp(t, steadyConfig())

	runKeys(t, app, b,
		backendtest.KeyEvent(key.CodeI),
		backendtest.KeyEvent(key.FromRune('a')),
		backend.Event{Type: backend.EventKey, Key: backend.KeyEscape},
	)

	assert.Equal(t, "", b.Row(5))
	assert.Equal(t, backend.CursorBlock, b.CursorStyleValue())
	assert.Equal(t, mode.Normal, app.State().Mode)
	assert.Equal(t, 0, app.State().Cursor.Col)
}

func TestRun_IgnoresUntranslatedKeys(t *testing.T) {
	app, b := newTestApp(t, steadyConfig())

	runKeys(t, app, b,
		backend.Event{Type: backend.EventKey, Key: backend.KeyEnter},
		backend.Event{Type: backend.EventKey, Key: backend.KeyOther},
		backendtest.KeyEvent(key.CodeL),
	)

	assert.Equal(t, 1, app.State().Cursor.Col)
	assert.Equal(t, 0, app.State().Cursor.Row)
}

func TestRun_RejectedKeyDoesNotRedraw(t *testing.T) {
	app, b := newTestApp(t, steadyConfig())

	runKeys(t, app, b,
		backendtest.KeyEvent(key.CodeH), // already at column 0
		backendtest.KeyEvent(key.FromRune('z')),
	)

	assert.Equal(t, 1, b.ShowCount(), "only the initial page is drawn")
}

func TestRun_ScrollsToCursor(t *testing.T) {
	app, b := newTestApp(t, steadyConfig())

	events := make([]backend.Event, 0, 6)
	for range 6 {
		events = append(events, backendtest.KeyEvent(key.CodeJ))
	}
	runKeys(t, app, b, events...)

	// Five text rows; the cursor is on document line 6.
	assert.Equal(t, "Sale splendide eam et, in atqui voluptua conclusionemque sea,", b.Row(4))
	_, y, _ := b.CursorPosition()
	assert.Equal(t, 4, y)
}

func TestRun_AlreadyRunning(t *testing.T) {
	app, _ := newTestApp(t, steadyConfig())
	errc := startApp(t, app)

	assert.True(t, app.IsRunning())
	assert.ErrorIs(t, app.Run(context.Background()), ErrAlreadyRunning)
	assert.ErrorIs(t, app.SetBackend(backendtest.NewNullBackend(1, 1)), ErrAlreadyRunning)

	stopApp(t, app, errc)
	assert.False(t, app.IsRunning())
}

func TestRun_ContextCancel(t *testing.T) {
	app, _ := newTestApp(t, steadyConfig())

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- app.Run(ctx) }()
	require.Eventually(t, app.IsRunning, 5*time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-errc:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRun_CursorBlinks(t *testing.T) {
	cfg := config.Default()
	cfg.Cursor.BlinkInterval = config.Duration(10 * time.Millisecond)

	app, _ := newTestApp(t, cfg)
	errc := startApp(t, app)

	r := currentRenderer(app)
	require.NotNil(t, r)
	assert.Eventually(t, func() bool { return !r.BlinkOn() }, 5*time.Second, 2*time.Millisecond)

	stopApp(t, app, errc)
}

func TestRun_BackendInitError(t *testing.T) {
	app, err := New(Options{})
	require.NoError(t, err)
	require.NoError(t, app.SetBackend(failingBackend{backendtest.NewNullBackend(1, 1)}))

	err = app.Run(context.Background())
	var initErr *InitError
	require.ErrorAs(t, err, &initErr)
	assert.Equal(t, "backend", initErr.Component)
}

type failingBackend struct {
	*backendtest.NullBackend
}

func (failingBackend) Init() error { return errors.New("no tty") }

func TestReload(t *testing.T) {
	app, b := newTestApp(t, steadyConfig())

	next := config.Default()
	next.Document.Lines = []string{"ignored"}
	next.Theme.CursorBackground = "red"
	next.Cursor.Blink = false
	next.Cursor.BlinkInterval = config.Duration(time.Second)
	app.Reload(next)

	assert.Equal(t, time.Second, app.blinker.Interval())
	assert.Equal(t, "red", app.Config().Theme.CursorBackground)
	assert.Len(t, app.Lines(), 10, "the document is not reloaded")

	runKeys(t, app, b)
	assert.Equal(t, "red", b.GetCell(0, 0).Style.Background)
}

func TestRun_WatchesConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[cursor]\nblink = false\n"), 0o644))

	app, err := New(Options{Config: steadyConfig(), ConfigPath: path})
	require.NoError(t, err)
	require.NoError(t, app.SetBackend(backendtest.NewNullBackend(80, 6)))
	errc := startApp(t, app)

	content := []byte("[cursor]\nblink = false\n\n[theme]\ncursor_bg = \"red\"\n")
	assert.Eventually(t, func() bool {
		if app.Config().Theme.CursorBackground == "red" {
			return true
		}
		_ = os.WriteFile(path, content, 0o644)
		return false
	}, 10*time.Second, 50*time.Millisecond)

	assert.Equal(t, "red", currentRenderer(app).Theme().CursorBackground)
	stopApp(t, app, errc)
}

func TestReloadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[cursor]\nblink = false\n"), 0o644))

	app, err := New(Options{Config: steadyConfig(), ConfigPath: path})
	require.NoError(t, err)
	assert.ErrorIs(t, app.ReloadConfig(), config.ErrWatcherClosed, "no watcher before Run")

	require.NoError(t, app.SetBackend(backendtest.NewNullBackend(80, 6)))
	errc := startApp(t, app)

	require.NoError(t, os.WriteFile(path, []byte("[cursor]\nblink = false\n\n[theme]\ncursor_bg = \"green\"\n"), 0o644))
	require.Eventually(t, func() bool {
		return app.ReloadConfig() == nil
	}, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, "green", app.Config().Theme.CursorBackground)

	require.NoError(t, os.WriteFile(path, []byte("[log]\nlevel = \"shout\"\n"), 0o644))
	var compErr *ComponentError
	require.ErrorAs(t, app.ReloadConfig(), &compErr)
	assert.Equal(t, "config", compErr.Component)
	assert.Equal(t, "green", app.Config().Theme.CursorBackground)

	stopApp(t, app, errc)
	assert.ErrorIs(t, app.ReloadConfig(), config.ErrWatcherClosed)
}

func TestRunScript(t *testing.T) {
	app, err := New(Options{})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "moves.lua")
	script := `
keys("ww")
press("x")
print(cursor())
print(lines()[1])
`
	require.NoError(t, os.WriteFile(path, []byte(script), 0o644))

	var out bytes.Buffer
	require.NoError(t, app.RunScript(path, &out))
	assert.Equal(t, "0\t8\tnormal\nLorem e psum dolor sit amet, ut mei errem constituto,\n", out.String())
}

func TestRunScript_Error(t *testing.T) {
	app, err := New(Options{})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "bad.lua")
	require.NoError(t, os.WriteFile(path, []byte(`keys("<nope>")`), 0o644))

	err = app.RunScript(path, &bytes.Buffer{})
	var compErr *ComponentError
	require.ErrorAs(t, err, &compErr)
	assert.Equal(t, "script", compErr.Component)
}

func TestRunScript_KeyHook(t *testing.T) {
	app, err := New(Options{})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "hook.lua")
	script := `
keys("w")
function on_key(code, command, applied)
  print(code, command, applied)
end
print(session)
`
	require.NoError(t, os.WriteFile(path, []byte(script), 0o644))

	var out bytes.Buffer
	require.NoError(t, app.RunScript(path, &out))
	assert.Equal(t, app.SessionID()+"\n", out.String(), "keys pressed while loading are not reported")

	out.Reset()
	_, err = app.Feed("wz")
	require.NoError(t, err)
	assert.Equal(t, "119\tword-forward\ttrue\n122\tnone\tfalse\n", out.String())

	require.NoError(t, app.Close())
	out.Reset()
	app.HandleKey(key.CodeW)
	assert.Empty(t, out.String(), "no hook after Close")
	require.NoError(t, app.Close())
}

func TestRunScript_ReplacesKeyHook(t *testing.T) {
	app, err := New(Options{})
	require.NoError(t, err)
	dir := t.TempDir()

	first := filepath.Join(dir, "first.lua")
	second := filepath.Join(dir, "second.lua")
	require.NoError(t, os.WriteFile(first, []byte(`function on_key() print("first") end`), 0o644))
	require.NoError(t, os.WriteFile(second, []byte(`function on_key() print("second") end`), 0o644))

	var out bytes.Buffer
	require.NoError(t, app.RunScript(first, &out))
	require.NoError(t, app.RunScript(second, &out))
	t.Cleanup(func() { app.Close() })

	app.HandleKey(key.CodeL)
	assert.Equal(t, "second\n", out.String())
}

func TestRunScript_KeyHookErrorIsLogged(t *testing.T) {
	var logs bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelDebug, Output: &logs})
	app, err := New(Options{Logger: logger})
	require.NoError(t, err)
	t.Cleanup(func() { app.Close() })

	path := filepath.Join(t.TempDir(), "bad_hook.lua")
	require.NoError(t, os.WriteFile(path, []byte(`function on_key() error("boom") end`), 0o644))
	require.NoError(t, app.RunScript(path, &bytes.Buffer{}))

	out := app.HandleKey(key.CodeL)
	assert.True(t, out.IsApplied())
	assert.Equal(t, 1, app.State().Cursor.Col)
	assert.Contains(t, logs.String(), "[WARN]")
	assert.Contains(t, logs.String(), "boom")
}
