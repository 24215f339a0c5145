package domain

import "time"

// Customer is a repair shop client. Email is syntactically validated at the
// API boundary but not unique. CreatedAt is set at insertion and never
// modified afterwards.
type Customer struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:200;not null" json:"name"`
	Email     string    `gorm:"size:200;not null" json:"email"`
	Phone     string    `gorm:"size:64;not null" json:"phone"`
	Address   *string   `gorm:"type:text" json:"address"`
	CreatedAt time.Time `json:"created_at"`
}
