package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Delivery enumerations.
// ItemType: "document" | "parcel" | "fragile" | "electronics" | "food"
// DeliveryMode: "standard" | "express" | "10-min"
const (
	ItemTypeDocument    = "document"
	ItemTypeParcel      = "parcel"
	ItemTypeFragile     = "fragile"
	ItemTypeElectronics = "electronics"
	ItemTypeFood        = "food"

	DeliveryModeStandard = "standard"
	DeliveryModeExpress  = "express"
	DeliveryModeTenMin   = "10-min"
)

// DeliveryItem is one billed parcel line of an invoice.
// Amount is derived (BaseCharge + WeightCharge) and is only ever written by
// billing.NormalizeItem — never accepted from a client as-is.
type DeliveryItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	InvoiceID uuid.UUID `gorm:"type:uuid;index;not null"`

	ItemType     string          `gorm:"type:varchar(20);not null"`
	Weight       decimal.Decimal `gorm:"type:decimal(10,3);not null;default:0"`
	WeightUnit   string          `gorm:"type:varchar(2);not null;default:'kg'"`
	Quantity     int             `gorm:"not null;default:1"`
	DeliveryDate time.Time       `gorm:"type:date"`
	DeliveryMode string          `gorm:"type:varchar(10);not null;default:'standard'"`
	Remarks      string          `gorm:"type:text"`

	BaseCharge   decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	WeightCharge decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Amount       decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`

	// SortOrder preserves the order items were entered in the form
	SortOrder int `gorm:"not null;default:0"`

	CreatedAt time.Time
}
