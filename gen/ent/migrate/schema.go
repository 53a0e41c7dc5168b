// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// FiscalDocumentsColumns holds the columns for the "fiscal_documents" table.
	FiscalDocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "access_key", Type: field.TypeString, Nullable: true},
		{Name: "number", Type: field.TypeString, Nullable: true},
		{Name: "series", Type: field.TypeString, Nullable: true},
		{Name: "issue_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "issuer_tax_id", Type: field.TypeString, Nullable: true},
		{Name: "issuer_name", Type: field.TypeString, Nullable: true},
		{Name: "recipient_tax_id", Type: field.TypeString, Nullable: true},
		{Name: "recipient_name", Type: field.TypeString, Nullable: true},
		{Name: "total_amount", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "icms_amount", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "pis_amount", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "cofins_amount", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "raw_content", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// FiscalDocumentsTable holds the schema information for the "fiscal_documents" table.
	FiscalDocumentsTable = &schema.Table{
		Name:       "fiscal_documents",
		Columns:    FiscalDocumentsColumns,
		PrimaryKey: []*schema.Column{FiscalDocumentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "fiscaldocument_access_key",
				Unique:  false,
				Columns: []*schema.Column{FiscalDocumentsColumns[1]},
			},
			{
				Name:    "fiscaldocument_issuer_name",
				Unique:  false,
				Columns: []*schema.Column{FiscalDocumentsColumns[6]},
			},
		},
	}
	// InstallmentsColumns holds the columns for the "installments" table.
	InstallmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "description", Type: field.TypeString},
		{Name: "supplier_name", Type: field.TypeString, Nullable: true},
		{Name: "amount", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "due_date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "status", Type: field.TypeString, Default: "OPEN"},
		{Name: "category", Type: field.TypeString},
		{Name: "paid_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeUUID},
	}
	// InstallmentsTable holds the schema information for the "installments" table.
	InstallmentsTable = &schema.Table{
		Name:       "installments",
		Columns:    InstallmentsColumns,
		PrimaryKey: []*schema.Column{InstallmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "installments_fiscal_documents_installments",
				Columns:    []*schema.Column{InstallmentsColumns[10]},
				RefColumns: []*schema.Column{FiscalDocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "installment_status_due_date",
				Unique:  false,
				Columns: []*schema.Column{InstallmentsColumns[5], InstallmentsColumns[4]},
			},
			{
				Name:    "installment_document_id",
				Unique:  false,
				Columns: []*schema.Column{InstallmentsColumns[10]},
			},
			{
				Name:    "installment_supplier_name",
				Unique:  false,
				Columns: []*schema.Column{InstallmentsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		FiscalDocumentsTable,
		InstallmentsTable,
	}
)

func init() {
	FiscalDocumentsTable.Annotation = &entsql.Annotation{
		Table: "fiscal_documents",
	}
	InstallmentsTable.ForeignKeys[0].RefTable = FiscalDocumentsTable
	InstallmentsTable.Annotation = &entsql.Annotation{
		Table: "installments",
	}
}
