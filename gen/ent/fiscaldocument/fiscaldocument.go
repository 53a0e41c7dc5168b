// Code generated by ent, DO NOT EDIT.

package fiscaldocument

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the fiscaldocument type in the database.
	Label = "fiscal_document"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldAccessKey holds the string denoting the access_key field in the database.
	FieldAccessKey = "access_key"
	// FieldNumber holds the string denoting the number field in the database.
	FieldNumber = "number"
	// FieldSeries holds the string denoting the series field in the database.
	FieldSeries = "series"
	// FieldIssueDate holds the string denoting the issue_date field in the database.
	FieldIssueDate = "issue_date"
	// FieldIssuerTaxID holds the string denoting the issuer_tax_id field in the database.
	FieldIssuerTaxID = "issuer_tax_id"
	// FieldIssuerName holds the string denoting the issuer_name field in the database.
	FieldIssuerName = "issuer_name"
	// FieldRecipientTaxID holds the string denoting the recipient_tax_id field in the database.
	FieldRecipientTaxID = "recipient_tax_id"
	// FieldRecipientName holds the string denoting the recipient_name field in the database.
	FieldRecipientName = "recipient_name"
	// FieldTotalAmount holds the string denoting the total_amount field in the database.
	FieldTotalAmount = "total_amount"
	// FieldIcmsAmount holds the string denoting the icms_amount field in the database.
	FieldIcmsAmount = "icms_amount"
	// FieldPisAmount holds the string denoting the pis_amount field in the database.
	FieldPisAmount = "pis_amount"
	// FieldCofinsAmount holds the string denoting the cofins_amount field in the database.
	FieldCofinsAmount = "cofins_amount"
	// FieldRawContent holds the string denoting the raw_content field in the database.
	FieldRawContent = "raw_content"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeInstallments holds the string denoting the installments edge name in mutations.
	EdgeInstallments = "installments"
	// Table holds the table name of the fiscaldocument in the database.
	Table = "fiscal_documents"
	// InstallmentsTable is the table that holds the installments relation/edge.
	InstallmentsTable = "installments"
	// InstallmentsInverseTable is the table name for the Installment entity.
	// It exists in this package in order to avoid circular dependency with the "installment" package.
	InstallmentsInverseTable = "installments"
	// InstallmentsColumn is the table column denoting the installments relation/edge.
	InstallmentsColumn = "document_id"
)

// Columns holds all SQL columns for fiscaldocument fields.
var Columns = []string{
	FieldID,
	FieldAccessKey,
	FieldNumber,
	FieldSeries,
	FieldIssueDate,
	FieldIssuerTaxID,
	FieldIssuerName,
	FieldRecipientTaxID,
	FieldRecipientName,
	FieldTotalAmount,
	FieldIcmsAmount,
	FieldPisAmount,
	FieldCofinsAmount,
	FieldRawContent,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the FiscalDocument queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAccessKey orders the results by the access_key field.
func ByAccessKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccessKey, opts...).ToFunc()
}

// ByNumber orders the results by the number field.
func ByNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNumber, opts...).ToFunc()
}

// BySeries orders the results by the series field.
func BySeries(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeries, opts...).ToFunc()
}

// ByIssueDate orders the results by the issue_date field.
func ByIssueDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIssueDate, opts...).ToFunc()
}

// ByIssuerTaxID orders the results by the issuer_tax_id field.
func ByIssuerTaxID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIssuerTaxID, opts...).ToFunc()
}

// ByIssuerName orders the results by the issuer_name field.
func ByIssuerName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIssuerName, opts...).ToFunc()
}

// ByRecipientTaxID orders the results by the recipient_tax_id field.
func ByRecipientTaxID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecipientTaxID, opts...).ToFunc()
}

// ByRecipientName orders the results by the recipient_name field.
func ByRecipientName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecipientName, opts...).ToFunc()
}

// ByTotalAmount orders the results by the total_amount field.
func ByTotalAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalAmount, opts...).ToFunc()
}

// ByIcmsAmount orders the results by the icms_amount field.
func ByIcmsAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIcmsAmount, opts...).ToFunc()
}

// ByPisAmount orders the results by the pis_amount field.
func ByPisAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPisAmount, opts...).ToFunc()
}

// ByCofinsAmount orders the results by the cofins_amount field.
func ByCofinsAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCofinsAmount, opts...).ToFunc()
}

// ByRawContent orders the results by the raw_content field.
func ByRawContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawContent, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByInstallmentsCount orders the results by installments count.
func ByInstallmentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newInstallmentsStep(), opts...)
	}
}

// ByInstallments orders the results by installments terms.
func ByInstallments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newInstallmentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newInstallmentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(InstallmentsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, InstallmentsTable, InstallmentsColumn),
	)
}
