package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bonison01/invoice-cargo/internal/dto"
	"github.com/bonison01/invoice-cargo/internal/model"
)

// InvoiceRepository persists invoice headers and their delivery items.
// Header and item writes are deliberately separate calls: the backing store
// exposes them as two tables and the service layer owns the two-step write
// (and its cleanup path when the second step fails).
type InvoiceRepository interface {
	CreateHeader(ctx context.Context, inv *model.Invoice) error
	CreateItems(ctx context.Context, items []model.DeliveryItem) error
	UpdateHeader(ctx context.Context, inv *model.Invoice) error
	ReplaceItems(ctx context.Context, invoiceID uuid.UUID, items []model.DeliveryItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Invoice, error)
	List(ctx context.Context, filter dto.InvoiceFilter) ([]model.Invoice, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SetPDFPath(ctx context.Context, id uuid.UUID, path string) error
}

type invoiceRepo struct{ db *gorm.DB }

func NewInvoiceRepository(db *gorm.DB) InvoiceRepository { return &invoiceRepo{db: db} }

func (r *invoiceRepo) CreateHeader(ctx context.Context, inv *model.Invoice) error {
	// Items are inserted separately by CreateItems
	return r.db.WithContext(ctx).Omit("Items").Create(inv).Error
}

func (r *invoiceRepo) CreateItems(ctx context.Context, items []model.DeliveryItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *invoiceRepo) UpdateHeader(ctx context.Context, inv *model.Invoice) error {
	return r.db.WithContext(ctx).Omit("Items").Save(inv).Error
}

func (r *invoiceRepo) ReplaceItems(ctx context.Context, invoiceID uuid.UUID, items []model.DeliveryItem) error {
	if err := r.db.WithContext(ctx).
		Where("invoice_id = ?", invoiceID).
		Delete(&model.DeliveryItem{}).Error; err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *invoiceRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Invoice, error) {
	var inv model.Invoice
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		First(&inv, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *invoiceRepo) List(ctx context.Context, filter dto.InvoiceFilter) ([]model.Invoice, int64, error) {
	var invoices []model.Invoice
	var total int64
	offset := (filter.Page - 1) * filter.Limit

	q := r.db.WithContext(ctx).Model(&model.Invoice{})

	if filter.Status != "" && filter.Status != "all" {
		q = q.Where("payment_status = ?", filter.Status)
	}
	if filter.Date != "" {
		q = q.Where("invoice_date = ?", filter.Date)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("created_at DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&invoices).Error

	return invoices, total, err
}

func (r *invoiceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	// Item rows go with the header via the FK cascade
	return r.db.WithContext(ctx).Delete(&model.Invoice{}, "id = ?", id).Error
}

func (r *invoiceRepo) SetPDFPath(ctx context.Context, id uuid.UUID, path string) error {
	return r.db.WithContext(ctx).Model(&model.Invoice{}).
		Where("id = ?", id).Update("pdf_path", path).Error
}
