package payables

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/evozago/fluxo-e-dre-sub001/constants"
	"github.com/evozago/fluxo-e-dre-sub001/internal/entity"
)

// DueDatePolicy decides the due date of a derived installment. The shipped
// policy offsets the processing date; document payment terms could plug in
// here once the upload format carries them.
type DueDatePolicy interface {
	DueDate(processedAt time.Time, doc *entity.FiscalDocument) time.Time
}

// FixedOffsetPolicy adds a fixed number of calendar days to the processing
// date, ignoring the document's own issue date.
type FixedOffsetPolicy struct {
	Days int
}

func (p FixedOffsetPolicy) DueDate(processedAt time.Time, _ *entity.FiscalDocument) time.Time {
	return processedAt.AddDate(0, 0, p.Days)
}

// Deriver builds the first payable installment for an ingested document.
type Deriver struct {
	policy DueDatePolicy
	now    func() time.Time
}

// NewDeriver creates a deriver. A nil policy falls back to the default
// fixed offset; a nil clock falls back to time.Now.
func NewDeriver(policy DueDatePolicy, now func() time.Time) *Deriver {
	if policy == nil {
		policy = FixedOffsetPolicy{Days: constants.DefaultDueDateOffsetDays}
	}
	if now == nil {
		now = time.Now
	}
	return &Deriver{policy: policy, now: now}
}

// Derive builds the installment referencing documentID. Pure apart from the
// injected clock.
func (d *Deriver) Derive(doc *entity.FiscalDocument, documentID uuid.UUID) *entity.Installment {
	return &entity.Installment{
		DocumentID:   documentID,
		Description:  fmt.Sprintf("NFe %s - %s", doc.Number, doc.IssuerName),
		SupplierName: doc.IssuerName,
		Amount:       doc.TotalAmount,
		DueDate:      d.policy.DueDate(d.now(), doc),
		Status:       string(constants.StatusOpen),
		Category:     constants.CategoryNFe,
	}
}
