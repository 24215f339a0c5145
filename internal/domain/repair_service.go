package domain

import "time"

// Service status values. No transition out of completed/cancelled is
// exercised by any caller path; reverse transitions are intentionally not
// forbidden at the storage layer.
const (
	ServiceStatusInProgress = "in_progress"
	ServiceStatusCompleted  = "completed"
	ServiceStatusCancelled  = "cancelled"
)

// Service is a single repair job for a customer. A freshly created service
// always starts as in_progress with no completion date and no repair
// description, regardless of caller input.
type Service struct {
	ID                 int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID         int64      `gorm:"index;not null" json:"customer_id"`
	StartDate          time.Time  `gorm:"not null" json:"start_date"`
	CompletionDate     *time.Time `json:"completion_date"`
	ProblemDescription string     `gorm:"type:text;not null" json:"problem_description"`
	RepairDescription  *string    `gorm:"type:text" json:"repair_description"`
	ServiceCost        float64    `gorm:"type:numeric(10,2);not null" json:"service_cost"`
	Status             string     `gorm:"size:20;index;default:'in_progress'" json:"status"`
	CreatedAt          time.Time  `json:"created_at"`
}
