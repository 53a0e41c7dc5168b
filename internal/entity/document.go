package entity

import (
	"time"

	"github.com/google/uuid"
)

// FiscalDocument represents an ingested NFe document for data transfer between layers.
//
// IssueDate keeps the normalized "YYYY-MM-DD" string form; it is empty when the
// source document carried no emission timestamp, and consumers must handle that.
type FiscalDocument struct {
	ID             uuid.UUID `json:"id"`
	AccessKey      string    `json:"access_key"`
	Number         string    `json:"number"`
	Series         string    `json:"series"`
	IssueDate      string    `json:"issue_date"`
	IssuerTaxID    string    `json:"issuer_tax_id"`
	IssuerName     string    `json:"issuer_name"`
	RecipientTaxID string    `json:"recipient_tax_id,omitempty"`
	RecipientName  string    `json:"recipient_name,omitempty"`
	TotalAmount    float64   `json:"total_amount"`
	ICMSAmount     float64   `json:"icms_amount"`
	PISAmount      float64   `json:"pis_amount"`
	COFINSAmount   float64   `json:"cofins_amount"`
	RawContent     string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
