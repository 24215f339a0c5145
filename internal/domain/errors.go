package domain

import "fmt"

// NotFoundError signals that a referenced entity does not exist. The message
// always identifies the entity kind and id so it can be surfaced to callers
// as-is.
type NotFoundError struct {
	Kind string
	ID   int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Kind, e.ID)
}

func NewNotFound(kind string, id int64) *NotFoundError {
	return &NotFoundError{Kind: kind, ID: id}
}

// InsufficientStockError signals that a consumption request exceeds the
// available stock. Both quantities are carried for diagnostics.
type InsufficientStockError struct {
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock. available: %d, requested: %d", e.Available, e.Requested)
}
