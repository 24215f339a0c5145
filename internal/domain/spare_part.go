package domain

import "time"

// SparePart is a stocked inventory item. StockQuantity is only ever changed
// by an explicit update or by the atomic consumption transaction, and never
// goes below zero.
type SparePart struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string    `gorm:"size:200;not null;index" json:"name"`
	Description   *string   `gorm:"type:text" json:"description"`
	PartNumber    string    `gorm:"size:100;not null" json:"part_number"` // not guaranteed unique
	StockQuantity int       `gorm:"not null;default:0" json:"stock_quantity"`
	UnitPrice     float64   `gorm:"type:numeric(10,2);not null" json:"unit_price"`
	Supplier      *string   `gorm:"size:200" json:"supplier"`
	CreatedAt     time.Time `json:"created_at"`
}
