package pdf

import (
	"github.com/shopspring/decimal"
)

// Layout constants, in millimetres on an A4 portrait page.
const (
	pageMargin    = 10.0 // outer margin; also the top cursor of a fresh page
	contentMargin = 15.0 // left/right edge of the body blocks

	headerHeight      = 30.0
	badgeWidth        = 50.0
	badgeHeight       = 8.0
	panelHeight       = 20.0 // sender/receiver panel
	tableHeaderHeight = 7.0
	rowHeight         = 7.0
	bottomMargin      = 12.0 // rows must not cross pageHeight - bottomMargin

	defaultFontSize = 7.0
	addressWidth    = 40.0 // wrap width of party addresses inside the panel

	// remarksLimit caps the remarks sub-line under an item type.
	remarksLimit = 20

	// receiverMinSpace is the page-break heuristic before the second copy:
	// a fixed threshold, not a measurement of the copy's rendered height.
	receiverMinSpace = 100.0
)

// Item table column anchors (x positions).
const (
	colTracking = 17.0
	colItem     = 50.0
	colWeight   = 100.0
	colMode     = 125.0
	// the amount column is right-aligned at pageWidth - 17
	amountInset = 17.0
)

var (
	colPrimary = Color{59, 130, 246}
	colText    = Color{0, 0, 0}
	colWhite   = Color{255, 255, 255}
	colPanel   = Color{240, 240, 240}
	colStripe  = Color{250, 250, 250}
	colMuted   = Color{128, 128, 128}
	colRule    = Color{200, 200, 200}
)

const currencyPrefix = "₹"

// money formats a monetary value with the currency glyph and exactly two
// fractional digits. All monetary display goes through here.
func money(d decimal.Decimal) string {
	return currencyPrefix + d.StringFixed(2)
}

// truncate caps s at n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// orNA substitutes the placeholder for absent party/company fields.
func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
