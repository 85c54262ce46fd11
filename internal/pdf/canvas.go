// Package pdf renders a courier invoice as a paginated two-copy A4 document:
// a sender's copy and a receiver's copy separated by a cut line, with the
// line-item table breaking onto continuation pages when it outgrows a page.
package pdf

// Color is an opaque RGB fill/stroke/text color.
type Color struct {
	R, G, B int
}

// Align positions a text run relative to its x coordinate.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// LineStyle selects the stroke pattern of a rule.
type LineStyle int

const (
	Solid LineStyle = iota
	Dashed
)

// TextOpts style a single text run. A zero Size falls back to the canvas
// default; Style uses fpdf's flags ("", "B", "I").
type TextOpts struct {
	Align Align
	Size  float64
	Style string
	Color Color
}

// Canvas is a fixed-size drawing surface in page units (millimetres).
// It is purely geometric: it never interprets the invoice record. All
// y coordinates are supplied by the caller — the layout cursor lives in the
// rendering code, not in the surface.
type Canvas interface {
	// FillRect draws a filled rectangle.
	FillRect(x, y, w, h float64, c Color)

	// Text draws a single line anchored at (x, y baseline) per o.Align.
	Text(x, y float64, s string, o TextOpts)

	// WrappedText splits s to fit maxWidth and draws one line per lineHeight
	// step starting at y. Returns the number of lines drawn so the caller can
	// advance its cursor.
	WrappedText(x, y, maxWidth, lineHeight float64, s string, o TextOpts) int

	// Rule draws a horizontal line from x1 to x2 at height y.
	Rule(x1, y, x2 float64, c Color, style LineStyle)

	// NewPage starts a fresh page; everything drawn so far is preserved.
	NewPage()

	PageWidth() float64
	PageHeight() float64

	// RemainingSpace reports the drawable height left between y and the
	// bottom margin of the current page.
	RemainingSpace(y float64) float64
}
