package domain

import "time"

// ServiceSparePart records a spare part consumed by a service. Rows are
// immutable once created and only ever written inside the consumption
// transaction, together with the matching stock decrement.
type ServiceSparePart struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ServiceID    int64     `gorm:"index;not null" json:"service_id"`
	SparePartID  int64     `gorm:"index;not null" json:"spare_part_id"`
	QuantityUsed int       `gorm:"not null" json:"quantity_used"`
	CreatedAt    time.Time `json:"created_at"`
}
