package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/dshills/vimotion/internal/renderer/backend"
)

// eventLoop handles terminal events and blink ticks until quit.
func (app *Application) eventLoop(ctx context.Context) error {
	events := app.startInputPolling(ctx)

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-app.done:
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			err := app.handleBackendEvent(ev)
			switch {
			case errors.Is(err, ErrQuit):
				return nil
			case errors.Is(err, ErrUnknownKey):
				app.logger.Debug("%v", err)
			case err != nil:
				return err
			}

		case <-app.blinker.Ticks():
			if app.blink.Load() {
				app.renderer.Blink()
			}
		}
	}
}

// handleBackendEvent processes a backend event.
// Returns ErrQuit if the application should exit.
func (app *Application) handleBackendEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventResize:
		app.renderer.Redraw()
		return nil
	case backend.EventKey:
		return app.handleKeyEvent(ev)
	default:
		return nil
	}
}

// handleKeyEvent translates a key event and hands it to the engine.
func (app *Application) handleKeyEvent(ev backend.Event) error {
	if ev.IsQuit() {
		return ErrQuit
	}

	code, ok := ev.Code()
	if !ok {
		return fmt.Errorf("%w: key %d", ErrUnknownKey, ev.Key)
	}
	app.HandleKey(code)
	return nil
}

// startInputPolling starts a goroutine that polls for input events.
// Events are sent to the returned channel.
//
// PollEvent is blocking. The backend.Shutdown() call in Run() unblocks
// it once ctx is canceled.
func (app *Application) startInputPolling(ctx context.Context) <-chan backend.Event {
	events := make(chan backend.Event, 100)

	go func() {
		defer close(events)

		for {
			ev := app.backend.PollEvent()
			if ctx.Err() != nil {
				return
			}
			if ev.Type == backend.EventNone {
				continue
			}

			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	return events
}
