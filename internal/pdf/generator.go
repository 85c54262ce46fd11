package pdf

import (
	"fmt"

	"github.com/bonison01/invoice-cargo/internal/billing"
	"github.com/bonison01/invoice-cargo/internal/model"
)

// Generator renders finished invoice documents. It is stateless and safe to
// share; each Generate call owns its canvas exclusively and runs start to
// finish in one pass.
type Generator struct{}

func NewGenerator() *Generator { return &Generator{} }

// Generate lays out both copies of the invoice and returns the raw PDF along
// with its canonical filename. The invoice is consumed read-only.
func (g *Generator) Generate(inv *model.Invoice) ([]byte, string, error) {
	canvas := newFpdfCanvas()
	assemble(canvas, inv, billing.Aggregate(inv.Items, inv.TaxRate))
	out, err := canvas.bytes()
	if err != nil {
		return nil, "", fmt.Errorf("generate invoice pdf: %w", err)
	}
	return out, Filename(inv.InvoiceNumber), nil
}

// Filename derives the deterministic document name for an invoice number.
func Filename(invoiceNumber string) string {
	return fmt.Sprintf("Invoice_%s.pdf", invoiceNumber)
}

// assemble is the full layout pass over any Canvas: sender copy, cut line,
// page-break decision, receiver copy. The aggregate triple is computed once
// by the caller and handed to both renders.
func assemble(c Canvas, inv *model.Invoice, agg billing.Aggregates) {
	y := renderCopy(c, inv, agg, senderCopy, pageMargin)

	// Cut line between the two copies
	y += 5
	c.Text(c.PageWidth()/2, y-1, "✂ CUT HERE ✂", TextOpts{Align: AlignCenter, Size: 7, Color: colMuted})
	c.Rule(pageMargin, y, c.PageWidth()-pageMargin, colRule, Dashed)
	y += 5

	// Fixed-threshold heuristic, not a measurement of the receiver copy's
	// height: when less than receiverMinSpace remains, start a fresh page.
	// Row-level overflow inside the copy is handled by renderItemTable.
	if c.RemainingSpace(y) < receiverMinSpace {
		c.NewPage()
		y = pageMargin
	}
	renderCopy(c, inv, agg, receiverCopy, y)
}
