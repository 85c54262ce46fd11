package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bonison01/invoice-cargo/internal/billing"
	"github.com/bonison01/invoice-cargo/internal/dto"
	"github.com/bonison01/invoice-cargo/internal/model"
	"github.com/bonison01/invoice-cargo/internal/pdf"
	"github.com/bonison01/invoice-cargo/internal/worker"
)

// stubRepo keeps headers and item rows in separate maps, mirroring the
// two-table store, so tests can observe the two-step write and its cleanup.
type stubRepo struct {
	headers   map[uuid.UUID]model.Invoice
	items     map[uuid.UUID][]model.DeliveryItem
	failItems bool
	deleted   []uuid.UUID
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		headers: make(map[uuid.UUID]model.Invoice),
		items:   make(map[uuid.UUID][]model.DeliveryItem),
	}
}

func (r *stubRepo) CreateHeader(_ context.Context, inv *model.Invoice) error {
	header := *inv
	header.Items = nil
	r.headers[inv.ID] = header
	return nil
}

func (r *stubRepo) CreateItems(_ context.Context, items []model.DeliveryItem) error {
	if r.failItems {
		return errors.New("insert failed")
	}
	for _, it := range items {
		r.items[it.InvoiceID] = append(r.items[it.InvoiceID], it)
	}
	return nil
}

func (r *stubRepo) UpdateHeader(_ context.Context, inv *model.Invoice) error {
	header := *inv
	header.Items = nil
	r.headers[inv.ID] = header
	return nil
}

func (r *stubRepo) ReplaceItems(_ context.Context, invoiceID uuid.UUID, items []model.DeliveryItem) error {
	delete(r.items, invoiceID)
	return r.CreateItems(context.Background(), items)
}

func (r *stubRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Invoice, error) {
	header, ok := r.headers[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	header.Items = r.items[id]
	return &header, nil
}

func (r *stubRepo) List(_ context.Context, filter dto.InvoiceFilter) ([]model.Invoice, int64, error) {
	var out []model.Invoice
	for _, h := range r.headers {
		if filter.Status != "" && filter.Status != "all" && h.PaymentStatus != filter.Status {
			continue
		}
		out = append(out, h)
	}
	return out, int64(len(out)), nil
}

func (r *stubRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.deleted = append(r.deleted, id)
	delete(r.headers, id)
	delete(r.items, id)
	return nil
}

func (r *stubRepo) SetPDFPath(_ context.Context, id uuid.UUID, path string) error {
	header, ok := r.headers[id]
	if !ok {
		return errors.New("record not found")
	}
	header.PDFPath = &path
	r.headers[id] = header
	return nil
}

type stubDispatcher struct {
	exports []worker.ExportJobPayload
	err     error
}

func (d *stubDispatcher) EnqueueExport(_ context.Context, payload worker.ExportJobPayload) error {
	if d.err != nil {
		return d.err
	}
	d.exports = append(d.exports, payload)
	return nil
}

func newTestService() (InvoiceService, *stubRepo, *stubDispatcher) {
	repo := newStubRepo()
	dispatcher := &stubDispatcher{}
	return NewInvoiceService(repo, pdf.NewGenerator(), dispatcher), repo, dispatcher
}

func saveRequest() dto.SaveInvoiceRequest {
	return dto.SaveInvoiceRequest{
		CompanyName:    "Mateng Deliveries",
		CompanyAddress: "Sagolband, Imphal",
		CompanyPhone:   "9876543210",
		SenderName:     "Tomba",
		ReceiverName:   "Chaoba",
		InvoiceDate:    "2026-08-28",
		TaxRate:        decimal.NewFromInt(18),
		Items: []dto.DeliveryItemRequest{
			{ItemType: model.ItemTypeParcel, Weight: decimal.NewFromInt(2), BaseCharge: decimal.NewFromInt(100), WeightCharge: decimal.NewFromInt(20)},
			{ItemType: model.ItemTypeDocument, BaseCharge: decimal.NewFromInt(50), WeightCharge: decimal.NewFromInt(5)},
		},
	}
}

func TestCreateGeneratesDefaults(t *testing.T) {
	svc, _, _ := newTestService()

	req := saveRequest()
	req.InvoiceNumber = ""
	req.TrackingID = ""
	req.InvoiceDate = ""

	resp, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(resp.InvoiceNumber, "INV-"))
	assert.True(t, strings.HasPrefix(resp.TrackingID, "MT-"))
	assert.Len(t, resp.TrackingID, 11)
	assert.Equal(t, strings.ToUpper(resp.TrackingID), resp.TrackingID)
	assert.NotEmpty(t, resp.InvoiceDate)
	assert.Equal(t, model.PaymentModeCash, resp.PaymentMode)
	assert.Equal(t, model.PaymentStatusPending, resp.PaymentStatus)
}

func TestCreateDerivesAmountsServerSide(t *testing.T) {
	svc, repo, _ := newTestService()

	resp, err := svc.Create(context.Background(), saveRequest())
	require.NoError(t, err)
	require.Len(t, resp.Items, 2)

	assert.Equal(t, "120.00", resp.Items[0].Amount.StringFixed(2))
	assert.Equal(t, "55.00", resp.Items[1].Amount.StringFixed(2))
	assert.Equal(t, "175.00", resp.Subtotal.StringFixed(2))
	assert.Equal(t, "31.50", resp.TaxAmount.StringFixed(2))
	assert.Equal(t, "206.50", resp.TotalAmount.StringFixed(2))

	// Persisted aggregates are a snapshot of the same computation
	id := uuid.MustParse(resp.ID)
	header := repo.headers[id]
	agg := billing.Aggregate(repo.items[id], header.TaxRate)
	assert.True(t, header.Subtotal.Equal(agg.Subtotal))
	assert.True(t, header.TaxAmount.Equal(agg.Tax))
	assert.True(t, header.TotalAmount.Equal(agg.Total))
}

func TestCreateClampsTaxRate(t *testing.T) {
	svc, _, _ := newTestService()

	req := saveRequest()
	req.TaxRate = decimal.NewFromInt(150)

	resp, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "100", resp.TaxRate.String())
}

func TestCreateItemFailureCleansUpHeader(t *testing.T) {
	svc, repo, _ := newTestService()
	repo.failItems = true

	_, err := svc.Create(context.Background(), saveRequest())
	require.EqualError(t, err, "could not save invoice")

	assert.Empty(t, repo.headers, "the orphaned header row is removed")
	assert.Len(t, repo.deleted, 1)
}

func TestGetRoundTrip(t *testing.T) {
	svc, _, _ := newTestService()

	created, err := svc.Create(context.Background(), saveRequest())
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), uuid.MustParse(created.ID))
	require.NoError(t, err)

	assert.Equal(t, created.InvoiceNumber, got.InvoiceNumber)
	assert.Equal(t, created.TotalAmount.StringFixed(2), got.TotalAmount.StringFixed(2))
	require.Len(t, got.Items, 2)
	assert.Equal(t, created.Items[0].Amount.StringFixed(2), got.Items[0].Amount.StringFixed(2))
}

func TestGetUnknownID(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateInvalidatesStoredPDF(t *testing.T) {
	svc, repo, _ := newTestService()

	created, err := svc.Create(context.Background(), saveRequest())
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)
	require.NoError(t, repo.SetPDFPath(context.Background(), id, "/tmp/Invoice_x.pdf"))

	req := saveRequest()
	req.Notes = "urgent"
	updated, err := svc.Update(context.Background(), id, req)
	require.NoError(t, err)

	assert.Equal(t, "urgent", updated.Notes)
	assert.Nil(t, updated.PDFUrl)
	assert.Nil(t, repo.headers[id].PDFPath)
}

func TestUpdateUnknownID(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Update(context.Background(), uuid.New(), saveRequest())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExportPDF(t *testing.T) {
	svc, _, _ := newTestService()

	created, err := svc.Create(context.Background(), saveRequest())
	require.NoError(t, err)

	out, filename, err := svc.ExportPDF(context.Background(), uuid.MustParse(created.ID))
	require.NoError(t, err)

	assert.Equal(t, "Invoice_"+created.InvoiceNumber+".pdf", filename)
	require.Greater(t, len(out), 4)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestSendPDFRequiresReceiverEmail(t *testing.T) {
	svc, _, dispatcher := newTestService()

	created, err := svc.Create(context.Background(), saveRequest())
	require.NoError(t, err)

	err = svc.SendPDF(context.Background(), uuid.MustParse(created.ID))
	assert.EqualError(t, err, "invoice has no receiver email")
	assert.Empty(t, dispatcher.exports)
}

func TestSendPDFEnqueuesExport(t *testing.T) {
	svc, _, dispatcher := newTestService()

	req := saveRequest()
	req.ReceiverEmail = "chaoba@example.com"
	created, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	require.NoError(t, svc.SendPDF(context.Background(), uuid.MustParse(created.ID)))
	require.Len(t, dispatcher.exports, 1)
	assert.Equal(t, created.ID, dispatcher.exports[0].InvoiceID)
	assert.Equal(t, "chaoba@example.com", dispatcher.exports[0].EmailTo)
}

func TestDeleteUnknownID(t *testing.T) {
	svc, _, _ := newTestService()

	err := svc.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestParseDateFallback(t *testing.T) {
	now := time.Date(2026, 8, 28, 15, 4, 5, 0, time.UTC)

	assert.Equal(t, now.Truncate(24*time.Hour), parseDate("", now))
	assert.Equal(t, now.Truncate(24*time.Hour), parseDate("not-a-date", now))
	assert.Equal(t, "2026-08-28", parseDate("2026-08-28", now).Format("2006-01-02"))
}
