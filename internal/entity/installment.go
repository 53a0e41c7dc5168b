package entity

import (
	"time"

	"github.com/google/uuid"
)

// Installment represents a single scheduled payable obligation derived from a
// fiscal document. A document owns zero or more installments; ingestion creates
// exactly the first one.
type Installment struct {
	ID           uuid.UUID  `json:"id"`
	DocumentID   uuid.UUID  `json:"document_id"`
	Description  string     `json:"description"`
	SupplierName string     `json:"supplier_name"`
	Amount       float64    `json:"amount"`
	DueDate      time.Time  `json:"due_date"`
	Status       string     `json:"status"`
	Category     string     `json:"category"`
	PaidAt       *time.Time `json:"paid_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
