package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/bonison01/invoice-cargo/internal/billing"
	"github.com/bonison01/invoice-cargo/internal/dto"
	"github.com/bonison01/invoice-cargo/internal/model"
	"github.com/bonison01/invoice-cargo/internal/pdf"
	"github.com/bonison01/invoice-cargo/internal/repository"
	"github.com/bonison01/invoice-cargo/internal/worker"
)

// ErrNotFound is returned when an invoice id does not resolve to a row.
var ErrNotFound = errors.New("invoice not found")

// ExportDispatcher enqueues async export jobs. Satisfied by *worker.Dispatcher.
type ExportDispatcher interface {
	EnqueueExport(ctx context.Context, payload worker.ExportJobPayload) error
}

type InvoiceService interface {
	Create(ctx context.Context, req dto.SaveInvoiceRequest) (*dto.InvoiceResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.SaveInvoiceRequest) (*dto.InvoiceResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.InvoiceResponse, error)
	List(ctx context.Context, filter dto.InvoiceFilter) (*dto.InvoiceListResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ExportPDF(ctx context.Context, id uuid.UUID) ([]byte, string, error)
	SendPDF(ctx context.Context, id uuid.UUID) error
}

type invoiceService struct {
	repo       repository.InvoiceRepository
	gen        *pdf.Generator
	dispatcher ExportDispatcher
}

func NewInvoiceService(repo repository.InvoiceRepository, gen *pdf.Generator, dispatcher ExportDispatcher) InvoiceService {
	return &invoiceService{repo: repo, gen: gen, dispatcher: dispatcher}
}

// ── Create ────────────────────────────────────────────────────────────────────
// Two-step write against the backing store: insert the header row, then the
// item rows keyed by the header id. When the second step fails the header is
// already committed; we attempt a cleanup delete and surface a single generic
// failure either way.

func (s *invoiceService) Create(ctx context.Context, req dto.SaveInvoiceRequest) (*dto.InvoiceResponse, error) {
	inv := buildInvoice(req)
	inv.ID = uuid.New()

	if err := s.repo.CreateHeader(ctx, inv); err != nil {
		log.Error().Err(err).Str("invoice", inv.InvoiceNumber).Msg("create invoice header failed")
		return nil, errors.New("could not save invoice")
	}

	for i := range inv.Items {
		inv.Items[i].InvoiceID = inv.ID
	}
	if err := s.repo.CreateItems(ctx, inv.Items); err != nil {
		log.Error().Err(err).Str("invoice", inv.InvoiceNumber).Msg("create invoice items failed")
		if cleanupErr := s.repo.Delete(ctx, inv.ID); cleanupErr != nil {
			// Orphaned header row: surfaced in logs only, the caller sees one failure
			log.Error().Err(cleanupErr).Str("invoice", inv.InvoiceNumber).Msg("cleanup of orphaned header failed")
		}
		return nil, errors.New("could not save invoice")
	}

	return invoiceToResponse(inv), nil
}

// ── Update ────────────────────────────────────────────────────────────────────

func (s *invoiceService) Update(ctx context.Context, id uuid.UUID, req dto.SaveInvoiceRequest) (*dto.InvoiceResponse, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}

	inv := buildInvoice(req)
	inv.ID = existing.ID
	inv.CreatedAt = existing.CreatedAt
	inv.PDFPath = nil // a stored PDF no longer matches the edited record
	for i := range inv.Items {
		inv.Items[i].InvoiceID = inv.ID
	}

	if err := s.repo.UpdateHeader(ctx, inv); err != nil {
		log.Error().Err(err).Str("invoice", inv.InvoiceNumber).Msg("update invoice header failed")
		return nil, errors.New("could not save invoice")
	}
	if err := s.repo.ReplaceItems(ctx, inv.ID, inv.Items); err != nil {
		log.Error().Err(err).Str("invoice", inv.InvoiceNumber).Msg("replace invoice items failed")
		return nil, errors.New("could not save invoice")
	}

	return invoiceToResponse(inv), nil
}

// ── Read ──────────────────────────────────────────────────────────────────────

func (s *invoiceService) Get(ctx context.Context, id uuid.UUID) (*dto.InvoiceResponse, error) {
	inv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return invoiceToResponse(inv), nil
}

func (s *invoiceService) List(ctx context.Context, filter dto.InvoiceFilter) (*dto.InvoiceListResponse, error) {
	invoices, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	items := make([]dto.InvoiceListItem, 0, len(invoices))
	for i := range invoices {
		inv := &invoices[i]
		items = append(items, dto.InvoiceListItem{
			ID:            inv.ID.String(),
			TrackingID:    inv.TrackingID,
			InvoiceNumber: inv.InvoiceNumber,
			InvoiceDate:   inv.InvoiceDate.Format("2006-01-02"),
			CompanyName:   inv.CompanyName,
			SenderName:    inv.SenderName,
			ReceiverName:  inv.ReceiverName,
			TotalAmount:   inv.TotalAmount,
			PaymentStatus: inv.PaymentStatus,
			CreatedAt:     inv.CreatedAt.Format(time.RFC3339),
		})
	}
	return &dto.InvoiceListResponse{
		Data:  items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *invoiceService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

// ── Export ────────────────────────────────────────────────────────────────────

// ExportPDF renders the invoice synchronously and returns the document bytes
// with their canonical filename.
func (s *invoiceService) ExportPDF(ctx context.Context, id uuid.UUID) ([]byte, string, error) {
	inv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, "", ErrNotFound
	}
	out, filename, err := s.gen.Generate(inv)
	if err != nil {
		log.Error().Err(err).Str("invoice", inv.InvoiceNumber).Msg("pdf generation failed")
		return nil, "", errors.New("invoice generation failed")
	}
	return out, filename, nil
}

// SendPDF queues an async export+email job for the receiver.
func (s *invoiceService) SendPDF(ctx context.Context, id uuid.UUID) error {
	inv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ErrNotFound
	}
	if inv.ReceiverEmail == "" {
		return errors.New("invoice has no receiver email")
	}
	return s.dispatcher.EnqueueExport(ctx, worker.ExportJobPayload{
		InvoiceID: inv.ID.String(),
		EmailTo:   inv.ReceiverEmail,
	})
}

// ── helpers ──────────────────────────────────────────────────────────────────

// buildInvoice maps a validated request onto a model, fills generated
// defaults, coerces numeric fields through billing and snapshots the
// aggregate triple. Every save path goes through here, so a persisted total
// always equals what the renderer would print for the same record.
func buildInvoice(req dto.SaveInvoiceRequest) *model.Invoice {
	inv := &model.Invoice{
		TrackingID:      req.TrackingID,
		InvoiceNumber:   req.InvoiceNumber,
		InvoiceDate:     parseDate(req.InvoiceDate, time.Now()),
		CompanyName:     req.CompanyName,
		CompanyAddress:  req.CompanyAddress,
		CompanyPhone:    req.CompanyPhone,
		CompanyEmail:    req.CompanyEmail,
		CompanyTaxID:    req.CompanyTaxID,
		SenderName:      req.SenderName,
		SenderPhone:     req.SenderPhone,
		SenderAddress:   req.SenderAddress,
		ReceiverName:    req.ReceiverName,
		ReceiverPhone:   req.ReceiverPhone,
		ReceiverAddress: req.ReceiverAddress,
		ReceiverEmail:   req.ReceiverEmail,
		Notes:           req.Notes,
		TaxRate:         billing.ClampTaxRate(req.TaxRate),
		PaymentMode:     req.PaymentMode,
		PaymentStatus:   req.PaymentStatus,
	}
	if inv.InvoiceNumber == "" {
		inv.InvoiceNumber = fmt.Sprintf("INV-%d", time.Now().UnixMilli())
	}
	if inv.TrackingID == "" {
		inv.TrackingID = "MT-" + strings.ToUpper(uuid.NewString()[:8])
	}
	if inv.PaymentMode == "" {
		inv.PaymentMode = model.PaymentModeCash
	}
	if inv.PaymentStatus == "" {
		inv.PaymentStatus = model.PaymentStatusPending
	}

	inv.Items = make([]model.DeliveryItem, 0, len(req.Items))
	for i, it := range req.Items {
		item := model.DeliveryItem{
			ID:           uuid.New(),
			ItemType:     it.ItemType,
			Weight:       it.Weight,
			WeightUnit:   it.WeightUnit,
			Quantity:     it.Quantity,
			DeliveryDate: parseDate(it.DeliveryDate, time.Now()),
			DeliveryMode: it.DeliveryMode,
			Remarks:      it.Remarks,
			BaseCharge:   it.BaseCharge,
			WeightCharge: it.WeightCharge,
			SortOrder:    i,
		}
		billing.NormalizeItem(&item)
		inv.Items = append(inv.Items, item)
	}

	agg := billing.Aggregate(inv.Items, inv.TaxRate)
	inv.Subtotal = agg.Subtotal
	inv.TaxAmount = agg.Tax
	inv.TotalAmount = agg.Total
	return inv
}

func parseDate(s string, fallback time.Time) time.Time {
	if s == "" {
		return fallback.Truncate(24 * time.Hour)
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return fallback.Truncate(24 * time.Hour)
	}
	return t
}

func invoiceToResponse(inv *model.Invoice) *dto.InvoiceResponse {
	resp := &dto.InvoiceResponse{
		ID:              inv.ID.String(),
		TrackingID:      inv.TrackingID,
		InvoiceNumber:   inv.InvoiceNumber,
		InvoiceDate:     inv.InvoiceDate.Format("2006-01-02"),
		CompanyName:     inv.CompanyName,
		CompanyAddress:  inv.CompanyAddress,
		CompanyPhone:    inv.CompanyPhone,
		CompanyEmail:    inv.CompanyEmail,
		CompanyTaxID:    inv.CompanyTaxID,
		SenderName:      inv.SenderName,
		SenderPhone:     inv.SenderPhone,
		SenderAddress:   inv.SenderAddress,
		ReceiverName:    inv.ReceiverName,
		ReceiverPhone:   inv.ReceiverPhone,
		ReceiverAddress: inv.ReceiverAddress,
		ReceiverEmail:   inv.ReceiverEmail,
		Notes:           inv.Notes,
		TaxRate:         inv.TaxRate,
		PaymentMode:     inv.PaymentMode,
		PaymentStatus:   inv.PaymentStatus,
		Subtotal:        inv.Subtotal,
		TaxAmount:       inv.TaxAmount,
		TotalAmount:     inv.TotalAmount,
		CreatedAt:       inv.CreatedAt.Format(time.RFC3339),
	}
	if inv.PDFPath != nil && *inv.PDFPath != "" {
		u := "/v1/invoices/" + inv.ID.String() + "/pdf"
		resp.PDFUrl = &u
	}
	resp.Items = make([]dto.DeliveryItemResponse, 0, len(inv.Items))
	for _, it := range inv.Items {
		resp.Items = append(resp.Items, dto.DeliveryItemResponse{
			ID:           it.ID.String(),
			ItemType:     it.ItemType,
			Weight:       it.Weight,
			WeightUnit:   it.WeightUnit,
			Quantity:     it.Quantity,
			DeliveryDate: it.DeliveryDate.Format("2006-01-02"),
			DeliveryMode: it.DeliveryMode,
			Remarks:      it.Remarks,
			BaseCharge:   it.BaseCharge,
			WeightCharge: it.WeightCharge,
			Amount:       it.Amount,
		})
	}
	return resp
}
