package payables

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/evozago/fluxo-e-dre-sub001/constants"
	"github.com/evozago/fluxo-e-dre-sub001/internal/entity"
)

func fixedClock(y int, m time.Month, d int) func() time.Time {
	return func() time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
}

func TestDeriveDueDateFromProcessingTime(t *testing.T) {
	d := NewDeriver(nil, fixedClock(2024, time.January, 1))
	doc := &entity.FiscalDocument{
		Number:      "46",
		IssuerName:  "ACME Industria Ltda",
		TotalAmount: 150.75,
		// The document's own issue date is deliberately ignored by the
		// default policy.
		IssueDate: "2020-07-14",
	}

	inst := d.Derive(doc, uuid.New())

	want := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)
	if !inst.DueDate.Equal(want) {
		t.Errorf("DueDate = %v, want %v", inst.DueDate, want)
	}
}

func TestDeriveFields(t *testing.T) {
	docID := uuid.New()
	d := NewDeriver(FixedOffsetPolicy{Days: 10}, fixedClock(2024, time.March, 5))
	doc := &entity.FiscalDocument{
		Number:      "46",
		IssuerName:  "ACME Industria Ltda",
		TotalAmount: 150.75,
	}

	inst := d.Derive(doc, docID)

	if inst.Description != "NFe 46 - ACME Industria Ltda" {
		t.Errorf("Description = %q", inst.Description)
	}
	if inst.SupplierName != "ACME Industria Ltda" {
		t.Errorf("SupplierName = %q", inst.SupplierName)
	}
	if inst.Amount != 150.75 {
		t.Errorf("Amount = %v", inst.Amount)
	}
	if inst.DocumentID != docID {
		t.Errorf("DocumentID = %v, want %v", inst.DocumentID, docID)
	}
	if inst.Category != constants.CategoryNFe {
		t.Errorf("Category = %q", inst.Category)
	}
	if inst.Status != string(constants.StatusOpen) {
		t.Errorf("Status = %q", inst.Status)
	}
	want := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	if !inst.DueDate.Equal(want) {
		t.Errorf("DueDate = %v, want %v", inst.DueDate, want)
	}
}

func TestDeriveCustomPolicy(t *testing.T) {
	issueBased := policyFunc(func(_ time.Time, doc *entity.FiscalDocument) time.Time {
		base, _ := time.Parse("2006-01-02", doc.IssueDate)
		return base.AddDate(0, 0, 15)
	})
	d := NewDeriver(issueBased, fixedClock(2024, time.January, 1))

	inst := d.Derive(&entity.FiscalDocument{IssueDate: "2024-06-01"}, uuid.New())
	want := time.Date(2024, time.June, 16, 0, 0, 0, 0, time.UTC)
	if !inst.DueDate.Equal(want) {
		t.Errorf("DueDate = %v, want %v", inst.DueDate, want)
	}
}

type policyFunc func(time.Time, *entity.FiscalDocument) time.Time

func (f policyFunc) DueDate(now time.Time, doc *entity.FiscalDocument) time.Time {
	return f(now, doc)
}
