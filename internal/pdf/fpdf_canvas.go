package pdf

import (
	"bytes"

	"github.com/go-pdf/fpdf"
)

// fpdfCanvas implements Canvas on top of go-pdf/fpdf. Auto page breaks are
// disabled: pagination decisions belong to the renderer, which calls NewPage
// explicitly.
type fpdfCanvas struct {
	pdf *fpdf.Fpdf
}

func newFpdfCanvas() *fpdfCanvas {
	p := fpdf.New("P", "mm", "A4", "")
	p.SetAutoPageBreak(false, 0)
	p.AddPage()
	return &fpdfCanvas{pdf: p}
}

func (c *fpdfCanvas) setFont(o TextOpts) {
	size := o.Size
	if size == 0 {
		size = defaultFontSize
	}
	c.pdf.SetFont("Helvetica", o.Style, size)
	c.pdf.SetTextColor(o.Color.R, o.Color.G, o.Color.B)
}

func (c *fpdfCanvas) FillRect(x, y, w, h float64, col Color) {
	c.pdf.SetFillColor(col.R, col.G, col.B)
	c.pdf.Rect(x, y, w, h, "F")
}

func (c *fpdfCanvas) Text(x, y float64, s string, o TextOpts) {
	c.setFont(o)
	switch o.Align {
	case AlignCenter:
		x -= c.pdf.GetStringWidth(s) / 2
	case AlignRight:
		x -= c.pdf.GetStringWidth(s)
	}
	c.pdf.Text(x, y, s)
}

func (c *fpdfCanvas) WrappedText(x, y, maxWidth, lineHeight float64, s string, o TextOpts) int {
	c.setFont(o)
	lines := c.pdf.SplitText(s, maxWidth)
	for i, line := range lines {
		c.pdf.Text(x, y+float64(i)*lineHeight, line)
	}
	return len(lines)
}

func (c *fpdfCanvas) Rule(x1, y, x2 float64, col Color, style LineStyle) {
	c.pdf.SetDrawColor(col.R, col.G, col.B)
	if style == Dashed {
		c.pdf.SetDashPattern([]float64{2, 2}, 0)
		defer c.pdf.SetDashPattern([]float64{}, 0)
	}
	c.pdf.Line(x1, y, x2, y)
}

func (c *fpdfCanvas) NewPage() {
	c.pdf.AddPage()
}

func (c *fpdfCanvas) PageWidth() float64 {
	w, _ := c.pdf.GetPageSize()
	return w
}

func (c *fpdfCanvas) PageHeight() float64 {
	_, h := c.pdf.GetPageSize()
	return h
}

func (c *fpdfCanvas) RemainingSpace(y float64) float64 {
	return c.PageHeight() - bottomMargin - y
}

// bytes finalizes the document and returns the raw PDF.
func (c *fpdfCanvas) bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := c.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
