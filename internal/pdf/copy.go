package pdf

import (
	"fmt"
	"strings"

	"github.com/bonison01/invoice-cargo/internal/billing"
	"github.com/bonison01/invoice-cargo/internal/model"
)

// copyLabel is the badge text distinguishing the two renders of an invoice.
// It is the only visual difference between them.
type copyLabel string

const (
	senderCopy   copyLabel = "SENDER'S COPY"
	receiverCopy copyLabel = "RECEIVER'S COPY"
)

// renderCopy draws one labeled copy of the invoice starting at startY and
// returns the cursor position after the last element, so the assembler can
// stack the second copy (or the cut line) below it. The cursor is an explicit
// value threaded through every block — the canvas holds no layout state.
func renderCopy(c Canvas, inv *model.Invoice, agg billing.Aggregates, label copyLabel, startY float64) float64 {
	pw := c.PageWidth()
	y := startY

	// ── Header band ──────────────────────────────────────────────────────────
	c.FillRect(pageMargin, y, pw-2*pageMargin, headerHeight, colPrimary)
	c.Text(pw/2, y+10, inv.CompanyName, TextOpts{Align: AlignCenter, Size: 20, Style: "B", Color: colWhite})
	c.Text(pw/2, y+16, inv.CompanyAddress, TextOpts{Align: AlignCenter, Size: 8, Color: colWhite})
	contact := "Phone: " + inv.CompanyPhone
	if inv.CompanyEmail != "" {
		contact += " | Email: " + inv.CompanyEmail
	}
	c.Text(pw/2, y+20, contact, TextOpts{Align: AlignCenter, Size: 8, Color: colWhite})
	if inv.CompanyTaxID != "" {
		c.Text(pw/2, y+24, "GST: "+inv.CompanyTaxID, TextOpts{Align: AlignCenter, Size: 8, Color: colWhite})
	}
	y += headerHeight + 5

	// ── Copy-type badge ──────────────────────────────────────────────────────
	c.FillRect((pw-badgeWidth)/2, y, badgeWidth, badgeHeight, colPrimary)
	c.Text(pw/2, y+5, string(label), TextOpts{Align: AlignCenter, Size: 10, Style: "B", Color: colWhite})
	y += badgeHeight + 4

	// ── Metadata row ─────────────────────────────────────────────────────────
	meta := TextOpts{Size: 8, Style: "B", Color: colText}
	c.Text(contentMargin, y, "Invoice #: "+inv.InvoiceNumber, meta)
	c.Text(contentMargin, y+4, "Date: "+inv.InvoiceDate.Format("2006-01-02"), meta)
	metaRight := TextOpts{Align: AlignRight, Size: 8, Style: "B", Color: colText}
	c.Text(pw-contentMargin, y, "Payment: "+strings.ToUpper(inv.PaymentMode), metaRight)
	c.Text(pw-contentMargin, y+4, "Status: "+strings.ToUpper(inv.PaymentStatus), metaRight)
	y += 10

	// ── Sender / receiver panel ──────────────────────────────────────────────
	panelW := (pw - 2*contentMargin - 5) / 2
	rightX := contentMargin + panelW + 5
	c.FillRect(contentMargin, y, panelW, panelHeight, colPanel)
	c.FillRect(rightX, y, panelW, panelHeight, colPanel)

	panelLabel := TextOpts{Size: 8, Style: "B", Color: colPrimary}
	c.Text(contentMargin+2, y+4, "FROM (SENDER):", panelLabel)
	c.Text(rightX+2, y+4, "TO (RECEIVER):", panelLabel)

	party := TextOpts{Size: 7, Color: colText}
	c.Text(contentMargin+2, y+8, orNA(inv.SenderName), party)
	c.Text(contentMargin+2, y+11, orNA(inv.SenderPhone), party)
	c.WrappedText(contentMargin+2, y+14, addressWidth, 3, orNA(inv.SenderAddress), party)

	c.Text(rightX+2, y+8, orNA(inv.ReceiverName), party)
	c.Text(rightX+2, y+11, orNA(inv.ReceiverPhone), party)
	c.WrappedText(rightX+2, y+14, addressWidth, 3, orNA(inv.ReceiverAddress), party)
	y += panelHeight + 5

	// ── Line-item table ──────────────────────────────────────────────────────
	y = renderItemTable(c, inv, y)
	y += 3

	// ── Totals block ─────────────────────────────────────────────────────────
	totalsX := pw - 70
	valueX := pw - amountInset

	c.Rule(totalsX, y, valueX, colRule, Solid)
	y += 5

	totals := TextOpts{Size: 8, Color: colText}
	c.Text(totalsX, y, "Subtotal:", totals)
	c.Text(valueX, y, money(agg.Subtotal), TextOpts{Align: AlignRight, Size: 8, Color: colText})

	// The tax line renders whenever a rate is set, even if the tax value is zero
	if inv.TaxRate.IsPositive() {
		y += 4
		c.Text(totalsX, y, fmt.Sprintf("GST (%s%%):", inv.TaxRate.String()), totals)
		c.Text(valueX, y, money(agg.Tax), TextOpts{Align: AlignRight, Size: 8, Color: colText})
	}

	y += 5
	c.Rule(totalsX, y-1, valueX, colPrimary, Solid)
	c.Text(totalsX, y, "Total:", TextOpts{Size: 10, Style: "B", Color: colPrimary})
	c.Text(valueX, y, money(agg.Total), TextOpts{Align: AlignRight, Size: 10, Style: "B", Color: colPrimary})
	y += 5

	// ── Notes ────────────────────────────────────────────────────────────────
	if inv.Notes != "" {
		c.FillRect(contentMargin, y, pw-2*contentMargin, 10, colPanel)
		c.Text(contentMargin+2, y+3, "Notes:", TextOpts{Size: 7, Style: "B", Color: colText})
		c.WrappedText(contentMargin+2, y+6, pw-2*contentMargin-5, 3, inv.Notes, TextOpts{Size: 7, Color: colText})
		y += 12
	}

	// ── Footer ───────────────────────────────────────────────────────────────
	c.Text(pw/2, y+3, fmt.Sprintf("Thank you for choosing %s!", inv.CompanyName),
		TextOpts{Align: AlignCenter, Size: 7, Style: "I", Color: colMuted})
	c.Text(pw/2, y+6, "This is a computer generated invoice",
		TextOpts{Align: AlignCenter, Size: 6, Style: "I", Color: colMuted})

	return y + 10
}

// renderItemTable draws the banner header and one striped row per item,
// breaking to a new page — header repeated — whenever the next row would
// cross the bottom margin. This per-row check is what produces genuine
// multi-page documents out of a single copy.
func renderItemTable(c Canvas, inv *model.Invoice, startY float64) float64 {
	pw := c.PageWidth()
	y := startY

	header := func(at float64) float64 {
		c.FillRect(contentMargin, at, pw-2*contentMargin, tableHeaderHeight, colPrimary)
		h := TextOpts{Size: 7, Style: "B", Color: colWhite}
		c.Text(colTracking, at+4.5, "TRACKING ID", h)
		c.Text(colItem, at+4.5, "ITEM", h)
		c.Text(colWeight, at+4.5, "WEIGHT", h)
		c.Text(colMode, at+4.5, "MODE", h)
		c.Text(pw-amountInset, at+4.5, "AMOUNT", TextOpts{Align: AlignRight, Size: 7, Style: "B", Color: colWhite})
		return at + tableHeaderHeight + 2
	}
	y = header(y)

	if len(inv.Items) == 0 {
		c.Text(pw/2, y+5, "No items added", TextOpts{Align: AlignCenter, Size: 7, Color: colText})
		return y + 10
	}

	row := TextOpts{Size: 7, Color: colText}
	for i, item := range inv.Items {
		if c.RemainingSpace(y) < rowHeight {
			c.NewPage()
			y = header(pageMargin)
		}
		if i%2 == 0 {
			c.FillRect(contentMargin, y-2, pw-2*contentMargin, rowHeight, colStripe)
		}
		c.Text(colTracking, y+2, inv.TrackingID, row)
		c.Text(colItem, y+2, item.ItemType, TextOpts{Size: 7, Style: "B", Color: colText})
		if item.Remarks != "" {
			c.Text(colItem, y+5, truncate(item.Remarks, remarksLimit), TextOpts{Size: 6, Color: colText})
		}
		c.Text(colWeight, y+2, item.Weight.String()+item.WeightUnit, row)
		c.Text(colMode, y+2, item.DeliveryMode, row)
		c.Text(pw-amountInset, y+2, money(item.Amount), TextOpts{Align: AlignRight, Size: 7, Style: "B", Color: colText})
		y += rowHeight
	}
	return y
}
