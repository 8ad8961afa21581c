// Package markup renders a page as a styled string.
//
// It is the string counterpart of the terminal renderer: headless runs
// print the page, and the cursor cell is styled with the theme's cursor
// colors through lipgloss. The color profile decides whether any escape
// sequences are emitted; termenv.Ascii yields plain text.
package markup
