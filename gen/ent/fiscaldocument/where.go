// Code generated by ent, DO NOT EDIT.

package fiscaldocument

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/evozago/fluxo-e-dre-sub001/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldLTE(FieldID, id))
}

// AccessKey applies equality check predicate on the "access_key" field. It's identical to AccessKeyEQ.
func AccessKey(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldEQ(FieldAccessKey, v))
}

// Number applies equality check predicate on the "number" field. It's identical to NumberEQ.
func Number(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldEQ(FieldNumber, v))
}

// Series applies equality check predicate on the "series" field. It's identical to SeriesEQ.
func Series(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldEQ(FieldSeries, v))
}

// IssueDate applies equality check predicate on the "issue_date" field. It's identical to IssueDateEQ.
func IssueDate(v time.Time) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldEQ(FieldIssueDate, v))
}

// IssuerTaxID applies equality check predicate on the "issuer_tax_id" field. It's identical to IssuerTaxIDEQ.
func IssuerTaxID(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldEQ(FieldIssuerTaxID, v))
}

// IssuerName applies equality check predicate on the "issuer_name" field. It's identical to IssuerNameEQ.
func IssuerName(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldEQ(FieldIssuerName, v))
}

// RecipientTaxID applies equality check predicate on the "recipient_tax_id" field. It's identical to RecipientTaxIDEQ.
func RecipientTaxID(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldEQ(FieldRecipientTaxID, v))
}

// RecipientName applies equality check predicate on the "recipient_name" field. It's identical to RecipientNameEQ.
func RecipientName(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldEQ(FieldRecipientName, v))
}

// TotalAmount applies equality check predicate on the "total_amount" field. It's identical to TotalAmountEQ.
func TotalAmount(v float64) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldEQ(FieldTotalAmount, v))
}

// IcmsAmount applies equality check predicate on the "icms_amount" field. It's identical to IcmsAmountEQ.
func IcmsAmount(v float64) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldEQ(FieldIcmsAmount, v))
}

// PisAmount applies equality check predicate on the "pis_amount" field. It's identical to PisAmountEQ.
func PisAmount(v float64) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldEQ(FieldPisAmount, v))
}

// CofinsAmount applies equality check predicate on the "cofins_amount" field. It's identical to CofinsAmountEQ.
func CofinsAmount(v float64) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldEQ(FieldCofinsAmount, v))
}

// RawContent applies equality check predicate on the "raw_content" field. It's identical to RawContentEQ.
func RawContent(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldEQ(FieldRawContent, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldEQ(FieldUpdatedAt, v))
}

// AccessKeyEQ applies the EQ predicate on the "access_key" field.
func AccessKeyEQ(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldEQ(FieldAccessKey, v))
}

// AccessKeyNEQ applies the NEQ predicate on the "access_key" field.
func AccessKeyNEQ(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldNEQ(FieldAccessKey, v))
}

// AccessKeyIn applies the In predicate on the "access_key" field.
func AccessKeyIn(vs ...string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldIn(FieldAccessKey, vs...))
}

// AccessKeyNotIn applies the NotIn predicate on the "access_key" field.
func AccessKeyNotIn(vs ...string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldNotIn(FieldAccessKey, vs...))
}

// AccessKeyGT applies the GT predicate on the "access_key" field.
func AccessKeyGT(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldGT(FieldAccessKey, v))
}

// AccessKeyGTE applies the GTE predicate on the "access_key" field.
func AccessKeyGTE(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldGTE(FieldAccessKey, v))
}

// AccessKeyLT applies the LT predicate on the "access_key" field.
func AccessKeyLT(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldLT(FieldAccessKey, v))
}

// AccessKeyLTE applies the LTE predicate on the "access_key" field.
func AccessKeyLTE(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldLTE(FieldAccessKey, v))
}

// AccessKeyContains applies the Contains predicate on the "access_key" field.
func AccessKeyContains(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldContains(FieldAccessKey, v))
}

// AccessKeyHasPrefix applies the HasPrefix predicate on the "access_key" field.
func AccessKeyHasPrefix(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldHasPrefix(FieldAccessKey, v))
}

// AccessKeyHasSuffix applies the HasSuffix predicate on the "access_key" field.
func AccessKeyHasSuffix(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldHasSuffix(FieldAccessKey, v))
}

// AccessKeyIsNil applies the IsNil predicate on the "access_key" field.
func AccessKeyIsNil() predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldIsNull(FieldAccessKey))
}

// AccessKeyNotNil applies the NotNil predicate on the "access_key" field.
func AccessKeyNotNil() predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldNotNull(FieldAccessKey))
}

// AccessKeyEqualFold applies the EqualFold predicate on the "access_key" field.
func AccessKeyEqualFold(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldEqualFold(FieldAccessKey, v))
}

// AccessKeyContainsFold applies the ContainsFold predicate on the "access_key" field.
func AccessKeyContainsFold(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldContainsFold(FieldAccessKey, v))
}

// NumberEQ applies the EQ predicate on the "number" field.
func NumberEQ(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldEQ(FieldNumber, v))
}

// NumberNEQ applies the NEQ predicate on the "number" field.
func NumberNEQ(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldNEQ(FieldNumber, v))
}

// NumberIn applies the In predicate on the "number" field.
func NumberIn(vs ...string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldIn(FieldNumber, vs...))
}

// NumberNotIn applies the NotIn predicate on the "number" field.
func NumberNotIn(vs ...string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldNotIn(FieldNumber, vs...))
}

// NumberGT applies the GT predicate on the "number" field.
func NumberGT(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldGT(FieldNumber, v))
}

// NumberGTE applies the GTE predicate on the "number" field.
func NumberGTE(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldGTE(FieldNumber, v))
}

// NumberLT applies the LT predicate on the "number" field.
func NumberLT(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldLT(FieldNumber, v))
}

// NumberLTE applies the LTE predicate on the "number" field.
func NumberLTE(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldLTE(FieldNumber, v))
}

// NumberContains applies the Contains predicate on the "number" field.
func NumberContains(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldContains(FieldNumber, v))
}

// NumberHasPrefix applies the HasPrefix predicate on the "number" field.
func NumberHasPrefix(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldHasPrefix(FieldNumber, v))
}

// NumberHasSuffix applies the HasSuffix predicate on the "number" field.
func NumberHasSuffix(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldHasSuffix(FieldNumber, v))
}

// NumberIsNil applies the IsNil predicate on the "number" field.
func NumberIsNil() predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldIsNull(FieldNumber))
}

// NumberNotNil applies the NotNil predicate on the "number" field.
func NumberNotNil() predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldNotNull(FieldNumber))
}

// NumberEqualFold applies the EqualFold predicate on the "number" field.
func NumberEqualFold(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldEqualFold(FieldNumber, v))
}

// NumberContainsFold applies the ContainsFold predicate on the "number" field.
func NumberContainsFold(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldContainsFold(FieldNumber, v))
}

// SeriesEQ applies the EQ predicate on the "series" field.
func SeriesEQ(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldEQ(FieldSeries, v))
}

// SeriesNEQ applies the NEQ predicate on the "series" field.
func SeriesNEQ(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldNEQ(FieldSeries, v))
}

// SeriesIn applies the In predicate on the "series" field.
func SeriesIn(vs ...string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldIn(FieldSeries, vs...))
}

// SeriesNotIn applies the NotIn predicate on the "series" field.
func SeriesNotIn(vs ...string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldNotIn(FieldSeries, vs...))
}

// SeriesGT applies the GT predicate on the "series" field.
func SeriesGT(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldGT(FieldSeries, v))
}

// SeriesGTE applies the GTE predicate on the "series" field.
func SeriesGTE(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldGTE(FieldSeries, v))
}

// SeriesLT applies the LT predicate on the "series" field.
func SeriesLT(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldLT(FieldSeries, v))
}

// SeriesLTE applies the LTE predicate on the "series" field.
func SeriesLTE(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldLTE(FieldSeries, v))
}

// SeriesContains applies the Contains predicate on the "series" field.
func SeriesContains(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldContains(FieldSeries, v))
}

// SeriesHasPrefix applies the HasPrefix predicate on the "series" field.
func SeriesHasPrefix(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldHasPrefix(FieldSeries, v))
}

// SeriesHasSuffix applies the HasSuffix predicate on the "series" field.
func SeriesHasSuffix(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldHasSuffix(FieldSeries, v))
}

// SeriesIsNil applies the IsNil predicate on the "series" field.
func SeriesIsNil() predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldIsNull(FieldSeries))
}

// SeriesNotNil applies the NotNil predicate on the "series" field.
func SeriesNotNil() predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldNotNull(FieldSeries))
}

// SeriesEqualFold applies the EqualFold predicate on the "series" field.
func SeriesEqualFold(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldEqualFold(FieldSeries, v))
}

// SeriesContainsFold applies the ContainsFold predicate on the "series" field.
func SeriesContainsFold(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldContainsFold(FieldSeries, v))
}

// IssueDateEQ applies the EQ predicate on the "issue_date" field.
func IssueDateEQ(v time.Time) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldEQ(FieldIssueDate, v))
}

// IssueDateNEQ applies the NEQ predicate on the "issue_date" field.
func IssueDateNEQ(v time.Time) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldNEQ(FieldIssueDate, v))
}

// IssueDateIn applies the In predicate on the "issue_date" field.
func IssueDateIn(vs ...time.Time) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldIn(FieldIssueDate, vs...))
}

// IssueDateNotIn applies the NotIn predicate on the "issue_date" field.
func IssueDateNotIn(vs ...time.Time) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldNotIn(FieldIssueDate, vs...))
}

// IssueDateGT applies the GT predicate on the "issue_date" field.
func IssueDateGT(v time.Time) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldGT(FieldIssueDate, v))
}

// IssueDateGTE applies the GTE predicate on the "issue_date" field.
func IssueDateGTE(v time.Time) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldGTE(FieldIssueDate, v))
}

// IssueDateLT applies the LT predicate on the "issue_date" field.
func IssueDateLT(v time.Time) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldLT(FieldIssueDate, v))
}

// IssueDateLTE applies the LTE predicate on the "issue_date" field.
func IssueDateLTE(v time.Time) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldLTE(FieldIssueDate, v))
}

// IssueDateIsNil applies the IsNil predicate on the "issue_date" field.
func IssueDateIsNil() predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldIsNull(FieldIssueDate))
}

// IssueDateNotNil applies the NotNil predicate on the "issue_date" field.
func IssueDateNotNil() predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldNotNull(FieldIssueDate))
}

// IssuerTaxIDEQ applies the EQ predicate on the "issuer_tax_id" field.
func IssuerTaxIDEQ(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldEQ(FieldIssuerTaxID, v))
}

// IssuerTaxIDNEQ applies the NEQ predicate on the "issuer_tax_id" field.
func IssuerTaxIDNEQ(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldNEQ(FieldIssuerTaxID, v))
}

// IssuerTaxIDIn applies the In predicate on the "issuer_tax_id" field.
func IssuerTaxIDIn(vs ...string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldIn(FieldIssuerTaxID, vs...))
}

// IssuerTaxIDNotIn applies the NotIn predicate on the "issuer_tax_id" field.
func IssuerTaxIDNotIn(vs ...string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldNotIn(FieldIssuerTaxID, vs...))
}

// IssuerTaxIDGT applies the GT predicate on the "issuer_tax_id" field.
func IssuerTaxIDGT(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldGT(FieldIssuerTaxID, v))
}

// IssuerTaxIDGTE applies the GTE predicate on the "issuer_tax_id" field.
func IssuerTaxIDGTE(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldGTE(FieldIssuerTaxID, v))
}

// IssuerTaxIDLT applies the LT predicate on the "issuer_tax_id" field.
func IssuerTaxIDLT(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldLT(FieldIssuerTaxID, v))
}

// IssuerTaxIDLTE applies the LTE predicate on the "issuer_tax_id" field.
func IssuerTaxIDLTE(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldLTE(FieldIssuerTaxID, v))
}

// IssuerTaxIDContains applies the Contains predicate on the "issuer_tax_id" field.
func IssuerTaxIDContains(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldContains(FieldIssuerTaxID, v))
}

// IssuerTaxIDHasPrefix applies the HasPrefix predicate on the "issuer_tax_id" field.
func IssuerTaxIDHasPrefix(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldHasPrefix(FieldIssuerTaxID, v))
}

// IssuerTaxIDHasSuffix applies the HasSuffix predicate on the "issuer_tax_id" field.
func IssuerTaxIDHasSuffix(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldHasSuffix(FieldIssuerTaxID, v))
}

// IssuerTaxIDIsNil applies the IsNil predicate on the "issuer_tax_id" field.
func IssuerTaxIDIsNil() predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldIsNull(FieldIssuerTaxID))
}

// IssuerTaxIDNotNil applies the NotNil predicate on the "issuer_tax_id" field.
func IssuerTaxIDNotNil() predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldNotNull(FieldIssuerTaxID))
}

// IssuerTaxIDEqualFold applies the EqualFold predicate on the "issuer_tax_id" field.
func IssuerTaxIDEqualFold(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldEqualFold(FieldIssuerTaxID, v))
}

// IssuerTaxIDContainsFold applies the ContainsFold predicate on the "issuer_tax_id" field.
func IssuerTaxIDContainsFold(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldContainsFold(FieldIssuerTaxID, v))
}

// IssuerNameEQ applies the EQ predicate on the "issuer_name" field.
func IssuerNameEQ(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldEQ(FieldIssuerName, v))
}

// IssuerNameNEQ applies the NEQ predicate on the "issuer_name" field.
func IssuerNameNEQ(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldNEQ(FieldIssuerName, v))
}

// IssuerNameIn applies the In predicate on the "issuer_name" field.
func IssuerNameIn(vs ...string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldIn(FieldIssuerName, vs...))
}

// IssuerNameNotIn applies the NotIn predicate on the "issuer_name" field.
func IssuerNameNotIn(vs ...string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldNotIn(FieldIssuerName, vs...))
}

// IssuerNameGT applies the GT predicate on the "issuer_name" field.
func IssuerNameGT(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldGT(FieldIssuerName, v))
}

// IssuerNameGTE applies the GTE predicate on the "issuer_name" field.
func IssuerNameGTE(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldGTE(FieldIssuerName, v))
}

// IssuerNameLT applies the LT predicate on the "issuer_name" field.
func IssuerNameLT(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldLT(FieldIssuerName, v))
}

// IssuerNameLTE applies the LTE predicate on the "issuer_name" field.
func IssuerNameLTE(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldLTE(FieldIssuerName, v))
}

// IssuerNameContains applies the Contains predicate on the "issuer_name" field.
func IssuerNameContains(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldContains(FieldIssuerName, v))
}

// IssuerNameHasPrefix applies the HasPrefix predicate on the "issuer_name" field.
func IssuerNameHasPrefix(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldHasPrefix(FieldIssuerName, v))
}

// IssuerNameHasSuffix applies the HasSuffix predicate on the "issuer_name" field.
func IssuerNameHasSuffix(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldHasSuffix(FieldIssuerName, v))
}

// IssuerNameIsNil applies the IsNil predicate on the "issuer_name" field.
func IssuerNameIsNil() predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldIsNull(FieldIssuerName))
}

// IssuerNameNotNil applies the NotNil predicate on the "issuer_name" field.
func IssuerNameNotNil() predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldNotNull(FieldIssuerName))
}

// IssuerNameEqualFold applies the EqualFold predicate on the "issuer_name" field.
func IssuerNameEqualFold(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldEqualFold(FieldIssuerName, v))
}

// IssuerNameContainsFold applies the ContainsFold predicate on the "issuer_name" field.
func IssuerNameContainsFold(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldContainsFold(FieldIssuerName, v))
}

// RecipientTaxIDEQ applies the EQ predicate on the "recipient_tax_id" field.
func RecipientTaxIDEQ(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldEQ(FieldRecipientTaxID, v))
}

// RecipientTaxIDNEQ applies the NEQ predicate on the "recipient_tax_id" field.
func RecipientTaxIDNEQ(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldNEQ(FieldRecipientTaxID, v))
}

// RecipientTaxIDIn applies the In predicate on the "recipient_tax_id" field.
func RecipientTaxIDIn(vs ...string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldIn(FieldRecipientTaxID, vs...))
}

// RecipientTaxIDNotIn applies the NotIn predicate on the "recipient_tax_id" field.
func RecipientTaxIDNotIn(vs ...string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldNotIn(FieldRecipientTaxID, vs...))
}

// RecipientTaxIDGT applies the GT predicate on the "recipient_tax_id" field.
func RecipientTaxIDGT(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldGT(FieldRecipientTaxID, v))
}

// RecipientTaxIDGTE applies the GTE predicate on the "recipient_tax_id" field.
func RecipientTaxIDGTE(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldGTE(FieldRecipientTaxID, v))
}

// RecipientTaxIDLT applies the LT predicate on the "recipient_tax_id" field.
func RecipientTaxIDLT(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldLT(FieldRecipientTaxID, v))
}

// RecipientTaxIDLTE applies the LTE predicate on the "recipient_tax_id" field.
func RecipientTaxIDLTE(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldLTE(FieldRecipientTaxID, v))
}

// RecipientTaxIDContains applies the Contains predicate on the "recipient_tax_id" field.
func RecipientTaxIDContains(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldContains(FieldRecipientTaxID, v))
}

// RecipientTaxIDHasPrefix applies the HasPrefix predicate on the "recipient_tax_id" field.
func RecipientTaxIDHasPrefix(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldHasPrefix(FieldRecipientTaxID, v))
}

// RecipientTaxIDHasSuffix applies the HasSuffix predicate on the "recipient_tax_id" field.
func RecipientTaxIDHasSuffix(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldHasSuffix(FieldRecipientTaxID, v))
}

// RecipientTaxIDIsNil applies the IsNil predicate on the "recipient_tax_id" field.
func RecipientTaxIDIsNil() predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldIsNull(FieldRecipientTaxID))
}

// RecipientTaxIDNotNil applies the NotNil predicate on the "recipient_tax_id" field.
func RecipientTaxIDNotNil() predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldNotNull(FieldRecipientTaxID))
}

// RecipientTaxIDEqualFold applies the EqualFold predicate on the "recipient_tax_id" field.
func RecipientTaxIDEqualFold(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldEqualFold(FieldRecipientTaxID, v))
}

// RecipientTaxIDContainsFold applies the ContainsFold predicate on the "recipient_tax_id" field.
func RecipientTaxIDContainsFold(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldContainsFold(FieldRecipientTaxID, v))
}

// RecipientNameEQ applies the EQ predicate on the "recipient_name" field.
func RecipientNameEQ(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldEQ(FieldRecipientName, v))
}

// RecipientNameNEQ applies the NEQ predicate on the "recipient_name" field.
func RecipientNameNEQ(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldNEQ(FieldRecipientName, v))
}

// RecipientNameIn applies the In predicate on the "recipient_name" field.
func RecipientNameIn(vs ...string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldIn(FieldRecipientName, vs...))
}

// RecipientNameNotIn applies the NotIn predicate on the "recipient_name" field.
func RecipientNameNotIn(vs ...string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldNotIn(FieldRecipientName, vs...))
}

// RecipientNameGT applies the GT predicate on the "recipient_name" field.
func RecipientNameGT(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldGT(FieldRecipientName, v))
}

// RecipientNameGTE applies the GTE predicate on the "recipient_name" field.
func RecipientNameGTE(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldGTE(FieldRecipientName, v))
}

// RecipientNameLT applies the LT predicate on the "recipient_name" field.
func RecipientNameLT(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldLT(FieldRecipientName, v))
}

// RecipientNameLTE applies the LTE predicate on the "recipient_name" field.
func RecipientNameLTE(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldLTE(FieldRecipientName, v))
}

// RecipientNameContains applies the Contains predicate on the "recipient_name" field.
func RecipientNameContains(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldContains(FieldRecipientName, v))
}

// RecipientNameHasPrefix applies the HasPrefix predicate on the "recipient_name" field.
func RecipientNameHasPrefix(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldHasPrefix(FieldRecipientName, v))
}

// RecipientNameHasSuffix applies the HasSuffix predicate on the "recipient_name" field.
func RecipientNameHasSuffix(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldHasSuffix(FieldRecipientName, v))
}

// RecipientNameIsNil applies the IsNil predicate on the "recipient_name" field.
func RecipientNameIsNil() predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldIsNull(FieldRecipientName))
}

// RecipientNameNotNil applies the NotNil predicate on the "recipient_name" field.
func RecipientNameNotNil() predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldNotNull(FieldRecipientName))
}

// RecipientNameEqualFold applies the EqualFold predicate on the "recipient_name" field.
func RecipientNameEqualFold(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldEqualFold(FieldRecipientName, v))
}

// RecipientNameContainsFold applies the ContainsFold predicate on the "recipient_name" field.
func RecipientNameContainsFold(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldContainsFold(FieldRecipientName, v))
}

// TotalAmountEQ applies the EQ predicate on the "total_amount" field.
func TotalAmountEQ(v float64) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldEQ(FieldTotalAmount, v))
}

// TotalAmountNEQ applies the NEQ predicate on the "total_amount" field.
func TotalAmountNEQ(v float64) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldNEQ(FieldTotalAmount, v))
}

// TotalAmountIn applies the In predicate on the "total_amount" field.
func TotalAmountIn(vs ...float64) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldIn(FieldTotalAmount, vs...))
}

// TotalAmountNotIn applies the NotIn predicate on the "total_amount" field.
func TotalAmountNotIn(vs ...float64) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldNotIn(FieldTotalAmount, vs...))
}

// TotalAmountGT applies the GT predicate on the "total_amount" field.
func TotalAmountGT(v float64) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldGT(FieldTotalAmount, v))
}

// TotalAmountGTE applies the GTE predicate on the "total_amount" field.
func TotalAmountGTE(v float64) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldGTE(FieldTotalAmount, v))
}

// TotalAmountLT applies the LT predicate on the "total_amount" field.
func TotalAmountLT(v float64) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldLT(FieldTotalAmount, v))
}

// TotalAmountLTE applies the LTE predicate on the "total_amount" field.
func TotalAmountLTE(v float64) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldLTE(FieldTotalAmount, v))
}

// IcmsAmountEQ applies the EQ predicate on the "icms_amount" field.
func IcmsAmountEQ(v float64) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldEQ(FieldIcmsAmount, v))
}

// IcmsAmountNEQ applies the NEQ predicate on the "icms_amount" field.
func IcmsAmountNEQ(v float64) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldNEQ(FieldIcmsAmount, v))
}

// IcmsAmountIn applies the In predicate on the "icms_amount" field.
func IcmsAmountIn(vs ...float64) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldIn(FieldIcmsAmount, vs...))
}

// IcmsAmountNotIn applies the NotIn predicate on the "icms_amount" field.
func IcmsAmountNotIn(vs ...float64) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldNotIn(FieldIcmsAmount, vs...))
}

// IcmsAmountGT applies the GT predicate on the "icms_amount" field.
func IcmsAmountGT(v float64) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldGT(FieldIcmsAmount, v))
}

// IcmsAmountGTE applies the GTE predicate on the "icms_amount" field.
func IcmsAmountGTE(v float64) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldGTE(FieldIcmsAmount, v))
}

// IcmsAmountLT applies the LT predicate on the "icms_amount" field.
func IcmsAmountLT(v float64) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldLT(FieldIcmsAmount, v))
}

// IcmsAmountLTE applies the LTE predicate on the "icms_amount" field.
func IcmsAmountLTE(v float64) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldLTE(FieldIcmsAmount, v))
}

// PisAmountEQ applies the EQ predicate on the "pis_amount" field.
func PisAmountEQ(v float64) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldEQ(FieldPisAmount, v))
}

// PisAmountNEQ applies the NEQ predicate on the "pis_amount" field.
func PisAmountNEQ(v float64) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldNEQ(FieldPisAmount, v))
}

// PisAmountIn applies the In predicate on the "pis_amount" field.
func PisAmountIn(vs ...float64) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldIn(FieldPisAmount, vs...))
}

// PisAmountNotIn applies the NotIn predicate on the "pis_amount" field.
func PisAmountNotIn(vs ...float64) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldNotIn(FieldPisAmount, vs...))
}

// PisAmountGT applies the GT predicate on the "pis_amount" field.
func PisAmountGT(v float64) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldGT(FieldPisAmount, v))
}

// PisAmountGTE applies the GTE predicate on the "pis_amount" field.
func PisAmountGTE(v float64) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldGTE(FieldPisAmount, v))
}

// PisAmountLT applies the LT predicate on the "pis_amount" field.
func PisAmountLT(v float64) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldLT(FieldPisAmount, v))
}

// PisAmountLTE applies the LTE predicate on the "pis_amount" field.
func PisAmountLTE(v float64) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldLTE(FieldPisAmount, v))
}

// CofinsAmountEQ applies the EQ predicate on the "cofins_amount" field.
func CofinsAmountEQ(v float64) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldEQ(FieldCofinsAmount, v))
}

// CofinsAmountNEQ applies the NEQ predicate on the "cofins_amount" field.
func CofinsAmountNEQ(v float64) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldNEQ(FieldCofinsAmount, v))
}

// CofinsAmountIn applies the In predicate on the "cofins_amount" field.
func CofinsAmountIn(vs ...float64) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldIn(FieldCofinsAmount, vs...))
}

// CofinsAmountNotIn applies the NotIn predicate on the "cofins_amount" field.
func CofinsAmountNotIn(vs ...float64) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldNotIn(FieldCofinsAmount, vs...))
}

// CofinsAmountGT applies the GT predicate on the "cofins_amount" field.
func CofinsAmountGT(v float64) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldGT(FieldCofinsAmount, v))
}

// CofinsAmountGTE applies the GTE predicate on the "cofins_amount" field.
func CofinsAmountGTE(v float64) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldGTE(FieldCofinsAmount, v))
}

// CofinsAmountLT applies the LT predicate on the "cofins_amount" field.
func CofinsAmountLT(v float64) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldLT(FieldCofinsAmount, v))
}

// CofinsAmountLTE applies the LTE predicate on the "cofins_amount" field.
func CofinsAmountLTE(v float64) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldLTE(FieldCofinsAmount, v))
}

// RawContentEQ applies the EQ predicate on the "raw_content" field.
func RawContentEQ(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldEQ(FieldRawContent, v))
}

// RawContentNEQ applies the NEQ predicate on the "raw_content" field.
func RawContentNEQ(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldNEQ(FieldRawContent, v))
}

// RawContentIn applies the In predicate on the "raw_content" field.
func RawContentIn(vs ...string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldIn(FieldRawContent, vs...))
}

// RawContentNotIn applies the NotIn predicate on the "raw_content" field.
func RawContentNotIn(vs ...string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldNotIn(FieldRawContent, vs...))
}

// RawContentGT applies the GT predicate on the "raw_content" field.
func RawContentGT(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldGT(FieldRawContent, v))
}

// RawContentGTE applies the GTE predicate on the "raw_content" field.
func RawContentGTE(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldGTE(FieldRawContent, v))
}

// RawContentLT applies the LT predicate on the "raw_content" field.
func RawContentLT(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldLT(FieldRawContent, v))
}

// RawContentLTE applies the LTE predicate on the "raw_content" field.
func RawContentLTE(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldLTE(FieldRawContent, v))
}

// RawContentContains applies the Contains predicate on the "raw_content" field.
func RawContentContains(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldContains(FieldRawContent, v))
}

// RawContentHasPrefix applies the HasPrefix predicate on the "raw_content" field.
func RawContentHasPrefix(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldHasPrefix(FieldRawContent, v))
}

// RawContentHasSuffix applies the HasSuffix predicate on the "raw_content" field.
func RawContentHasSuffix(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldHasSuffix(FieldRawContent, v))
}

// RawContentEqualFold applies the EqualFold predicate on the "raw_content" field.
func RawContentEqualFold(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldEqualFold(FieldRawContent, v))
}

// RawContentContainsFold applies the ContainsFold predicate on the "raw_content" field.
func RawContentContainsFold(v string) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldContainsFold(FieldRawContent, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasInstallments applies the HasEdge predicate on the "installments" edge.
func HasInstallments() predicate.FiscalDocument {
	return predicate.FiscalDocument(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, InstallmentsTable, InstallmentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInstallmentsWith applies the HasEdge predicate on the "installments" edge with a given conditions (other predicates).
func HasInstallmentsWith(preds ...predicate.Installment) predicate.FiscalDocument {
	return predicate.FiscalDocument(func(s *sql.Selector) {
		step := newInstallmentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FiscalDocument) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FiscalDocument) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FiscalDocument) predicate.FiscalDocument {
	return predicate.FiscalDocument(sql.NotPredicates(p))
}
