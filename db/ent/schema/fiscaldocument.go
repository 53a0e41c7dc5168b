package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type FiscalDocument struct{ ent.Schema }

func (FiscalDocument) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "fiscal_documents"},
	}
}

func (FiscalDocument) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// Access key is a natural uniqueness key in the NFe domain but is
		// deliberately NOT unique here: duplicate submissions create
		// duplicate rows unless the ingest option rejects them first.
		field.String("access_key").Optional(),
		field.String("number").Optional(),
		field.String("series").Optional(),
		field.Time("issue_date").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("issuer_tax_id").Optional(),
		field.String("issuer_name").Optional(),
		field.String("recipient_tax_id").Optional(),
		field.String("recipient_name").Optional(),
		field.Float("total_amount").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("icms_amount").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("pis_amount").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("cofins_amount").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Text("raw_content"),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (FiscalDocument) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE document -> MANY installments
		edge.To("installments", Installment.Type),
	}
}

func (FiscalDocument) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("access_key"),
		index.Fields("issuer_name"),
	}
}
