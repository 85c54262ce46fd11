package dto

import "github.com/shopspring/decimal"

// ─── Filter / List ──────────────────────────────────────────────────────────

// InvoiceFilter is bound from the query string of GET /v1/invoices.
type InvoiceFilter struct {
	Date   string `form:"date"`                  // YYYY-MM-DD; empty = any
	Status string `form:"status,default=all"`    // paid | pending | all
	Page   int    `form:"page,default=1"   validate:"min=1"`
	Limit  int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// InvoiceListItem is one row of GET /v1/invoices, mirroring the saved-invoices
// overview table.
type InvoiceListItem struct {
	ID            string          `json:"id"`
	TrackingID    string          `json:"tracking_id"`
	InvoiceNumber string          `json:"invoice_number"`
	InvoiceDate   string          `json:"invoice_date"`
	CompanyName   string          `json:"company_name"`
	SenderName    string          `json:"sender_name"`
	ReceiverName  string          `json:"receiver_name"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaymentStatus string          `json:"payment_status"`
	CreatedAt     string          `json:"created_at"`
}

type InvoiceListResponse struct {
	Data  []InvoiceListItem `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}

// ─── Request DTOs ────────────────────────────────────────────────────────────

// DeliveryItemRequest is one parcel line of a save request. There is no
// amount field: the amount is always derived server-side from the charges.
type DeliveryItemRequest struct {
	ItemType     string          `json:"item_type"     validate:"required,oneof=document parcel fragile electronics food"`
	Weight       decimal.Decimal `json:"weight"`
	WeightUnit   string          `json:"weight_unit"   validate:"omitempty,oneof=kg g"`
	Quantity     int             `json:"quantity"`
	DeliveryDate string          `json:"delivery_date" validate:"omitempty,datetime=2006-01-02"`
	DeliveryMode string          `json:"delivery_mode" validate:"omitempty,oneof=standard express 10-min"`
	Remarks      string          `json:"remarks"`
	BaseCharge   decimal.Decimal `json:"base_charge"`
	WeightCharge decimal.Decimal `json:"weight_charge"`
}

// SaveInvoiceRequest is the body of POST /v1/invoices and PUT /v1/invoices/:id.
// InvoiceNumber, TrackingID and InvoiceDate are generated when absent.
type SaveInvoiceRequest struct {
	CompanyName    string `json:"company_name"    validate:"required"`
	CompanyAddress string `json:"company_address" validate:"required"`
	CompanyPhone   string `json:"company_phone"   validate:"required"`
	CompanyEmail   string `json:"company_email"   validate:"omitempty,email"`
	CompanyTaxID   string `json:"company_tax_id"`

	TrackingID    string `json:"tracking_id"`
	InvoiceNumber string `json:"invoice_number"`
	InvoiceDate   string `json:"invoice_date" validate:"omitempty,datetime=2006-01-02"`

	SenderName    string `json:"sender_name"`
	SenderPhone   string `json:"sender_phone"`
	SenderAddress string `json:"sender_address"`

	ReceiverName    string `json:"receiver_name"`
	ReceiverPhone   string `json:"receiver_phone"`
	ReceiverAddress string `json:"receiver_address"`
	ReceiverEmail   string `json:"receiver_email" validate:"omitempty,email"`

	Items []DeliveryItemRequest `json:"items" validate:"dive"`

	Notes         string          `json:"notes"`
	TaxRate       decimal.Decimal `json:"tax_rate"`
	PaymentMode   string          `json:"payment_mode"   validate:"omitempty,oneof=cash upi card wallet"`
	PaymentStatus string          `json:"payment_status" validate:"omitempty,oneof=paid pending"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type DeliveryItemResponse struct {
	ID           string          `json:"id"`
	ItemType     string          `json:"item_type"`
	Weight       decimal.Decimal `json:"weight"`
	WeightUnit   string          `json:"weight_unit"`
	Quantity     int             `json:"quantity"`
	DeliveryDate string          `json:"delivery_date"`
	DeliveryMode string          `json:"delivery_mode"`
	Remarks      string          `json:"remarks,omitempty"`
	BaseCharge   decimal.Decimal `json:"base_charge"`
	WeightCharge decimal.Decimal `json:"weight_charge"`
	Amount       decimal.Decimal `json:"amount"`
}

// InvoiceResponse carries the full rehydrated record plus the aggregates that
// were persisted at save time.
type InvoiceResponse struct {
	ID            string `json:"id"`
	TrackingID    string `json:"tracking_id"`
	InvoiceNumber string `json:"invoice_number"`
	InvoiceDate   string `json:"invoice_date"`

	CompanyName    string `json:"company_name"`
	CompanyAddress string `json:"company_address"`
	CompanyPhone   string `json:"company_phone"`
	CompanyEmail   string `json:"company_email,omitempty"`
	CompanyTaxID   string `json:"company_tax_id,omitempty"`

	SenderName    string `json:"sender_name"`
	SenderPhone   string `json:"sender_phone"`
	SenderAddress string `json:"sender_address"`

	ReceiverName    string `json:"receiver_name"`
	ReceiverPhone   string `json:"receiver_phone"`
	ReceiverAddress string `json:"receiver_address"`
	ReceiverEmail   string `json:"receiver_email,omitempty"`

	Items []DeliveryItemResponse `json:"items"`

	Notes         string          `json:"notes,omitempty"`
	TaxRate       decimal.Decimal `json:"tax_rate"`
	PaymentMode   string          `json:"payment_mode"`
	PaymentStatus string          `json:"payment_status"`

	Subtotal    decimal.Decimal `json:"subtotal"`
	TaxAmount   decimal.Decimal `json:"tax_amount"`
	TotalAmount decimal.Decimal `json:"total_amount"`

	PDFUrl    *string `json:"pdf_url,omitempty"`
	CreatedAt string  `json:"created_at"`
}
