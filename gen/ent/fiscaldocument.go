// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/evozago/fluxo-e-dre-sub001/gen/ent/fiscaldocument"
	"github.com/google/uuid"
)

// FiscalDocument is the model entity for the FiscalDocument schema.
type FiscalDocument struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// AccessKey holds the value of the "access_key" field.
	AccessKey string `json:"access_key,omitempty"`
	// Number holds the value of the "number" field.
	Number string `json:"number,omitempty"`
	// Series holds the value of the "series" field.
	Series string `json:"series,omitempty"`
	// IssueDate holds the value of the "issue_date" field.
	IssueDate *time.Time `json:"issue_date,omitempty"`
	// IssuerTaxID holds the value of the "issuer_tax_id" field.
	IssuerTaxID string `json:"issuer_tax_id,omitempty"`
	// IssuerName holds the value of the "issuer_name" field.
	IssuerName string `json:"issuer_name,omitempty"`
	// RecipientTaxID holds the value of the "recipient_tax_id" field.
	RecipientTaxID string `json:"recipient_tax_id,omitempty"`
	// RecipientName holds the value of the "recipient_name" field.
	RecipientName string `json:"recipient_name,omitempty"`
	// TotalAmount holds the value of the "total_amount" field.
	TotalAmount float64 `json:"total_amount,omitempty"`
	// IcmsAmount holds the value of the "icms_amount" field.
	IcmsAmount float64 `json:"icms_amount,omitempty"`
	// PisAmount holds the value of the "pis_amount" field.
	PisAmount float64 `json:"pis_amount,omitempty"`
	// CofinsAmount holds the value of the "cofins_amount" field.
	CofinsAmount float64 `json:"cofins_amount,omitempty"`
	// RawContent holds the value of the "raw_content" field.
	RawContent string `json:"raw_content,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FiscalDocumentQuery when eager-loading is set.
	Edges        FiscalDocumentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FiscalDocumentEdges holds the relations/edges for other nodes in the graph.
type FiscalDocumentEdges struct {
	// Installments holds the value of the installments edge.
	Installments []*Installment `json:"installments,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// InstallmentsOrErr returns the Installments value or an error if the edge
// was not loaded in eager-loading.
func (e FiscalDocumentEdges) InstallmentsOrErr() ([]*Installment, error) {
	if e.loadedTypes[0] {
		return e.Installments, nil
	}
	return nil, &NotLoadedError{edge: "installments"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FiscalDocument) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case fiscaldocument.FieldTotalAmount, fiscaldocument.FieldIcmsAmount, fiscaldocument.FieldPisAmount, fiscaldocument.FieldCofinsAmount:
			values[i] = new(sql.NullFloat64)
		case fiscaldocument.FieldAccessKey, fiscaldocument.FieldNumber, fiscaldocument.FieldSeries, fiscaldocument.FieldIssuerTaxID, fiscaldocument.FieldIssuerName, fiscaldocument.FieldRecipientTaxID, fiscaldocument.FieldRecipientName, fiscaldocument.FieldRawContent:
			values[i] = new(sql.NullString)
		case fiscaldocument.FieldIssueDate, fiscaldocument.FieldCreatedAt, fiscaldocument.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case fiscaldocument.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FiscalDocument fields.
func (_m *FiscalDocument) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case fiscaldocument.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case fiscaldocument.FieldAccessKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field access_key", values[i])
			} else if value.Valid {
				_m.AccessKey = value.String
			}
		case fiscaldocument.FieldNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field number", values[i])
			} else if value.Valid {
				_m.Number = value.String
			}
		case fiscaldocument.FieldSeries:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field series", values[i])
			} else if value.Valid {
				_m.Series = value.String
			}
		case fiscaldocument.FieldIssueDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field issue_date", values[i])
			} else if value.Valid {
				_m.IssueDate = new(time.Time)
				*_m.IssueDate = value.Time
			}
		case fiscaldocument.FieldIssuerTaxID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field issuer_tax_id", values[i])
			} else if value.Valid {
				_m.IssuerTaxID = value.String
			}
		case fiscaldocument.FieldIssuerName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field issuer_name", values[i])
			} else if value.Valid {
				_m.IssuerName = value.String
			}
		case fiscaldocument.FieldRecipientTaxID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recipient_tax_id", values[i])
			} else if value.Valid {
				_m.RecipientTaxID = value.String
			}
		case fiscaldocument.FieldRecipientName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recipient_name", values[i])
			} else if value.Valid {
				_m.RecipientName = value.String
			}
		case fiscaldocument.FieldTotalAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_amount", values[i])
			} else if value.Valid {
				_m.TotalAmount = value.Float64
			}
		case fiscaldocument.FieldIcmsAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field icms_amount", values[i])
			} else if value.Valid {
				_m.IcmsAmount = value.Float64
			}
		case fiscaldocument.FieldPisAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field pis_amount", values[i])
			} else if value.Valid {
				_m.PisAmount = value.Float64
			}
		case fiscaldocument.FieldCofinsAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cofins_amount", values[i])
			} else if value.Valid {
				_m.CofinsAmount = value.Float64
			}
		case fiscaldocument.FieldRawContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_content", values[i])
			} else if value.Valid {
				_m.RawContent = value.String
			}
		case fiscaldocument.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case fiscaldocument.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the FiscalDocument.
// This includes values selected through modifiers, order, etc.
func (_m *FiscalDocument) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryInstallments queries the "installments" edge of the FiscalDocument entity.
func (_m *FiscalDocument) QueryInstallments() *InstallmentQuery {
	return NewFiscalDocumentClient(_m.config).QueryInstallments(_m)
}

// Update returns a builder for updating this FiscalDocument.
// Note that you need to call FiscalDocument.Unwrap() before calling this method if this FiscalDocument
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FiscalDocument) Update() *FiscalDocumentUpdateOne {
	return NewFiscalDocumentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FiscalDocument entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FiscalDocument) Unwrap() *FiscalDocument {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FiscalDocument is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FiscalDocument) String() string {
	var builder strings.Builder
	builder.WriteString("FiscalDocument(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("access_key=")
	builder.WriteString(_m.AccessKey)
	builder.WriteString(", ")
	builder.WriteString("number=")
	builder.WriteString(_m.Number)
	builder.WriteString(", ")
	builder.WriteString("series=")
	builder.WriteString(_m.Series)
	builder.WriteString(", ")
	if v := _m.IssueDate; v != nil {
		builder.WriteString("issue_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("issuer_tax_id=")
	builder.WriteString(_m.IssuerTaxID)
	builder.WriteString(", ")
	builder.WriteString("issuer_name=")
	builder.WriteString(_m.IssuerName)
	builder.WriteString(", ")
	builder.WriteString("recipient_tax_id=")
	builder.WriteString(_m.RecipientTaxID)
	builder.WriteString(", ")
	builder.WriteString("recipient_name=")
	builder.WriteString(_m.RecipientName)
	builder.WriteString(", ")
	builder.WriteString("total_amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalAmount))
	builder.WriteString(", ")
	builder.WriteString("icms_amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.IcmsAmount))
	builder.WriteString(", ")
	builder.WriteString("pis_amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.PisAmount))
	builder.WriteString(", ")
	builder.WriteString("cofins_amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.CofinsAmount))
	builder.WriteString(", ")
	builder.WriteString("raw_content=")
	builder.WriteString(_m.RawContent)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// FiscalDocuments is a parsable slice of FiscalDocument.
type FiscalDocuments []*FiscalDocument
