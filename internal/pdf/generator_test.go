package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bonison01/invoice-cargo/internal/billing"
)

func TestGenerateProducesPDF(t *testing.T) {
	gen := NewGenerator()
	inv := testInvoice(3, "18")

	out, name, err := gen.Generate(inv)
	require.NoError(t, err)

	assert.Equal(t, "Invoice_INV-1001.pdf", name)
	require.Greater(t, len(out), 4)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestGenerateLongInvoiceSpansPages(t *testing.T) {
	inv := testInvoice(60, "18")

	canvas := newFpdfCanvas()
	assemble(canvas, inv, billing.Aggregate(inv.Items, inv.TaxRate))

	assert.Greater(t, canvas.pdf.PageCount(), 1)
	require.NoError(t, canvas.pdf.Error())
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "Invoice_INV-170000.pdf", Filename("INV-170000"))
}
