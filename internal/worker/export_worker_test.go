package worker

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bonison01/invoice-cargo/internal/dto"
	"github.com/bonison01/invoice-cargo/internal/model"
	"github.com/bonison01/invoice-cargo/internal/pdf"
)

// exportRepoStub serves a single invoice and records the stored PDF path.
type exportRepoStub struct {
	inv     *model.Invoice
	pdfPath string
}

func (r *exportRepoStub) CreateHeader(context.Context, *model.Invoice) error      { return nil }
func (r *exportRepoStub) CreateItems(context.Context, []model.DeliveryItem) error { return nil }
func (r *exportRepoStub) UpdateHeader(context.Context, *model.Invoice) error      { return nil }
func (r *exportRepoStub) ReplaceItems(context.Context, uuid.UUID, []model.DeliveryItem) error {
	return nil
}
func (r *exportRepoStub) FindByID(_ context.Context, id uuid.UUID) (*model.Invoice, error) {
	if r.inv == nil || r.inv.ID != id {
		return nil, os.ErrNotExist
	}
	return r.inv, nil
}
func (r *exportRepoStub) List(context.Context, dto.InvoiceFilter) ([]model.Invoice, int64, error) {
	return nil, 0, nil
}
func (r *exportRepoStub) Delete(context.Context, uuid.UUID) error { return nil }
func (r *exportRepoStub) SetPDFPath(_ context.Context, _ uuid.UUID, path string) error {
	r.pdfPath = path
	return nil
}

func TestExportWorkerStoresPDF(t *testing.T) {
	inv := &model.Invoice{
		ID:            uuid.New(),
		TrackingID:    "MT-AB12CD34",
		InvoiceNumber: "INV-2001",
		InvoiceDate:   time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
		CompanyName:   "Mateng Deliveries",
		TaxRate:       decimal.NewFromInt(18),
	}
	repo := &exportRepoStub{inv: inv}
	dir := t.TempDir()
	w := NewExportWorker(repo, pdf.NewGenerator(), nil, dir)

	raw, err := json.Marshal(ExportJobPayload{InvoiceID: inv.ID.String()})
	require.NoError(t, err)
	require.NoError(t, w.Process(context.Background(), raw))

	want := filepath.Join(dir, "Invoice_INV-2001.pdf")
	assert.Equal(t, want, repo.pdfPath)

	out, err := os.ReadFile(want)
	require.NoError(t, err)
	require.Greater(t, len(out), 4)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestExportWorkerRejectsBadPayload(t *testing.T) {
	w := NewExportWorker(&exportRepoStub{}, pdf.NewGenerator(), nil, t.TempDir())

	assert.Error(t, w.Process(context.Background(), json.RawMessage(`{`)))
	assert.Error(t, w.Process(context.Background(), json.RawMessage(`{"invoice_id":"nope"}`)))
}

func TestExportWorkerUnknownInvoice(t *testing.T) {
	w := NewExportWorker(&exportRepoStub{}, pdf.NewGenerator(), nil, t.TempDir())

	raw, err := json.Marshal(ExportJobPayload{InvoiceID: uuid.NewString()})
	require.NoError(t, err)
	assert.Error(t, w.Process(context.Background(), raw))
}
