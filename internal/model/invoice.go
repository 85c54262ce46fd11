package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment enumerations.
// PaymentMode: "cash" | "upi" | "card" | "wallet"
// PaymentStatus: "paid" | "pending"
const (
	PaymentModeCash   = "cash"
	PaymentModeUPI    = "upi"
	PaymentModeCard   = "card"
	PaymentModeWallet = "wallet"

	PaymentStatusPaid    = "paid"
	PaymentStatusPending = "pending"
)

// Invoice is the header row of a courier invoice. The renderer consumes it
// read-only together with its preloaded Items; Subtotal/TaxAmount/TotalAmount
// are snapshots written at save time, never recomputed from the row afterward.
type Invoice struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TrackingID    string    `gorm:"type:varchar(40);index;not null"`
	InvoiceNumber string    `gorm:"type:varchar(60);uniqueIndex;not null"`
	InvoiceDate   time.Time `gorm:"type:date;not null"`

	CompanyName    string `gorm:"type:varchar(120);not null"`
	CompanyAddress string `gorm:"type:text;not null"`
	CompanyPhone   string `gorm:"type:varchar(20);not null"`
	// CompanyEmail and CompanyTaxID are optional; empty means absent
	CompanyEmail string `gorm:"type:varchar(120)"`
	CompanyTaxID string `gorm:"type:varchar(40);column:company_tax_id"`

	SenderName    string `gorm:"type:varchar(120)"`
	SenderPhone   string `gorm:"type:varchar(20)"`
	SenderAddress string `gorm:"type:text"`

	ReceiverName    string `gorm:"type:varchar(120)"`
	ReceiverPhone   string `gorm:"type:varchar(20)"`
	ReceiverAddress string `gorm:"type:text"`
	ReceiverEmail   string `gorm:"type:varchar(120)"`

	Notes         string          `gorm:"type:text"`
	TaxRate       decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	PaymentMode   string          `gorm:"type:varchar(10);not null;default:'cash'"`
	PaymentStatus string          `gorm:"type:varchar(10);not null;default:'pending'"`

	Subtotal    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	TaxAmount   decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`

	// PDFPath is relative to PDF_STORAGE_PATH env var, set by the export worker
	PDFPath *string `gorm:"column:pdf_path"`

	Items []DeliveryItem `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
