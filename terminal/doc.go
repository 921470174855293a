// Package terminal is the character-cell drawing surface.
//
// Features:
//   - Cell, Style and Color values independent of the output device
//   - In-memory Buffer canvas and a tcell-backed Screen canvas
//   - Painter primitives: fill-rect, draw-text, draw-border, clip stack
//   - True color and 256-color palette mapping
//   - Color mode and cell aspect ratio detection
package terminal
