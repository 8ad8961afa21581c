// Package renderer provides the display layer for the editor.
//
// The renderer draws a Page (a snapshot of the document, cursor, and mode)
// onto a terminal backend:
//   - every document line, one per screen row
//   - exactly one highlighted cell at the cursor column, a blank cell when
//     the cursor sits on an empty line or past the end of the text
//   - a command window on the last screen row showing the mode indicator
//
// The highlighted cell blinks between two color pairs. A Blinker delivers
// ticks to the caller's event loop; any full redraw restarts the blink in
// the "on" phase.
//
// Usage:
//
//	b, _ := backend.NewTerminal()
//	r := renderer.New(b, renderer.WithTheme(renderer.DefaultTheme()))
//	r.RenderPage(renderer.PageOf(e))
package renderer
