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

	"github.com/evozago/fluxo-e-dre-sub001/db/ent/schema/utils"
)

type Installment struct{ ent.Schema }

func (Installment) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "installments"},
	}
}

func (Installment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// explicit FK so we can index on it alongside due_date
		field.UUID("document_id", uuid.UUID{}),
		field.String("description").NotEmpty(),
		field.String("supplier_name").Optional(),
		field.Float("amount").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Time("due_date").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		// OVERDUE is derived at read time and never stored.
		field.String("status").
			Default("OPEN").
			Validate(utils.EnumValidator("OPEN", "PAID")),
		field.String("category").NotEmpty(),
		field.Time("paid_at").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Installment) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY installments -> ONE document (FK: installments.document_id)
		edge.From("document", FiscalDocument.Type).
			Ref("installments").
			Field("document_id").
			Required().
			Unique(),
	}
}

func (Installment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "due_date"),
		index.Fields("document_id"),
		index.Fields("supplier_name"),
	}
}
