// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/evozago/fluxo-e-dre-sub001/gen/ent/fiscaldocument"
	"github.com/evozago/fluxo-e-dre-sub001/gen/ent/installment"
	"github.com/google/uuid"
)

// FiscalDocumentCreate is the builder for creating a FiscalDocument entity.
type FiscalDocumentCreate struct {
	config
	mutation *FiscalDocumentMutation
	hooks    []Hook
}

// SetAccessKey sets the "access_key" field.
func (_c *FiscalDocumentCreate) SetAccessKey(v string) *FiscalDocumentCreate {
	_c.mutation.SetAccessKey(v)
	return _c
}

// SetNillableAccessKey sets the "access_key" field if the given value is not nil.
func (_c *FiscalDocumentCreate) SetNillableAccessKey(v *string) *FiscalDocumentCreate {
	if v != nil {
		_c.SetAccessKey(*v)
	}
	return _c
}

// SetNumber sets the "number" field.
func (_c *FiscalDocumentCreate) SetNumber(v string) *FiscalDocumentCreate {
	_c.mutation.SetNumber(v)
	return _c
}

// SetNillableNumber sets the "number" field if the given value is not nil.
func (_c *FiscalDocumentCreate) SetNillableNumber(v *string) *FiscalDocumentCreate {
	if v != nil {
		_c.SetNumber(*v)
	}
	return _c
}

// SetSeries sets the "series" field.
func (_c *FiscalDocumentCreate) SetSeries(v string) *FiscalDocumentCreate {
	_c.mutation.SetSeries(v)
	return _c
}

// SetNillableSeries sets the "series" field if the given value is not nil.
func (_c *FiscalDocumentCreate) SetNillableSeries(v *string) *FiscalDocumentCreate {
	if v != nil {
		_c.SetSeries(*v)
	}
	return _c
}

// SetIssueDate sets the "issue_date" field.
func (_c *FiscalDocumentCreate) SetIssueDate(v time.Time) *FiscalDocumentCreate {
	_c.mutation.SetIssueDate(v)
	return _c
}

// SetNillableIssueDate sets the "issue_date" field if the given value is not nil.
func (_c *FiscalDocumentCreate) SetNillableIssueDate(v *time.Time) *FiscalDocumentCreate {
	if v != nil {
		_c.SetIssueDate(*v)
	}
	return _c
}

// SetIssuerTaxID sets the "issuer_tax_id" field.
func (_c *FiscalDocumentCreate) SetIssuerTaxID(v string) *FiscalDocumentCreate {
	_c.mutation.SetIssuerTaxID(v)
	return _c
}

// SetNillableIssuerTaxID sets the "issuer_tax_id" field if the given value is not nil.
func (_c *FiscalDocumentCreate) SetNillableIssuerTaxID(v *string) *FiscalDocumentCreate {
	if v != nil {
		_c.SetIssuerTaxID(*v)
	}
	return _c
}

// SetIssuerName sets the "issuer_name" field.
func (_c *FiscalDocumentCreate) SetIssuerName(v string) *FiscalDocumentCreate {
	_c.mutation.SetIssuerName(v)
	return _c
}

// SetNillableIssuerName sets the "issuer_name" field if the given value is not nil.
func (_c *FiscalDocumentCreate) SetNillableIssuerName(v *string) *FiscalDocumentCreate {
	if v != nil {
		_c.SetIssuerName(*v)
	}
	return _c
}

// SetRecipientTaxID sets the "recipient_tax_id" field.
func (_c *FiscalDocumentCreate) SetRecipientTaxID(v string) *FiscalDocumentCreate {
	_c.mutation.SetRecipientTaxID(v)
	return _c
}

// SetNillableRecipientTaxID sets the "recipient_tax_id" field if the given value is not nil.
func (_c *FiscalDocumentCreate) SetNillableRecipientTaxID(v *string) *FiscalDocumentCreate {
	if v != nil {
		_c.SetRecipientTaxID(*v)
	}
	return _c
}

// SetRecipientName sets the "recipient_name" field.
func (_c *FiscalDocumentCreate) SetRecipientName(v string) *FiscalDocumentCreate {
	_c.mutation.SetRecipientName(v)
	return _c
}

// SetNillableRecipientName sets the "recipient_name" field if the given value is not nil.
func (_c *FiscalDocumentCreate) SetNillableRecipientName(v *string) *FiscalDocumentCreate {
	if v != nil {
		_c.SetRecipientName(*v)
	}
	return _c
}

// SetTotalAmount sets the "total_amount" field.
func (_c *FiscalDocumentCreate) SetTotalAmount(v float64) *FiscalDocumentCreate {
	_c.mutation.SetTotalAmount(v)
	return _c
}

// SetIcmsAmount sets the "icms_amount" field.
func (_c *FiscalDocumentCreate) SetIcmsAmount(v float64) *FiscalDocumentCreate {
	_c.mutation.SetIcmsAmount(v)
	return _c
}

// SetPisAmount sets the "pis_amount" field.
func (_c *FiscalDocumentCreate) SetPisAmount(v float64) *FiscalDocumentCreate {
	_c.mutation.SetPisAmount(v)
	return _c
}

// SetCofinsAmount sets the "cofins_amount" field.
func (_c *FiscalDocumentCreate) SetCofinsAmount(v float64) *FiscalDocumentCreate {
	_c.mutation.SetCofinsAmount(v)
	return _c
}

// SetRawContent sets the "raw_content" field.
func (_c *FiscalDocumentCreate) SetRawContent(v string) *FiscalDocumentCreate {
	_c.mutation.SetRawContent(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FiscalDocumentCreate) SetCreatedAt(v time.Time) *FiscalDocumentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FiscalDocumentCreate) SetNillableCreatedAt(v *time.Time) *FiscalDocumentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *FiscalDocumentCreate) SetUpdatedAt(v time.Time) *FiscalDocumentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *FiscalDocumentCreate) SetNillableUpdatedAt(v *time.Time) *FiscalDocumentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FiscalDocumentCreate) SetID(v uuid.UUID) *FiscalDocumentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *FiscalDocumentCreate) SetNillableID(v *uuid.UUID) *FiscalDocumentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddInstallmentIDs adds the "installments" edge to the Installment entity by IDs.
func (_c *FiscalDocumentCreate) AddInstallmentIDs(ids ...uuid.UUID) *FiscalDocumentCreate {
	_c.mutation.AddInstallmentIDs(ids...)
	return _c
}

// AddInstallments adds the "installments" edges to the Installment entity.
func (_c *FiscalDocumentCreate) AddInstallments(v ...*Installment) *FiscalDocumentCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddInstallmentIDs(ids...)
}

// Mutation returns the FiscalDocumentMutation object of the builder.
func (_c *FiscalDocumentCreate) Mutation() *FiscalDocumentMutation {
	return _c.mutation
}

// Save creates the FiscalDocument in the database.
func (_c *FiscalDocumentCreate) Save(ctx context.Context) (*FiscalDocument, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FiscalDocumentCreate) SaveX(ctx context.Context) *FiscalDocument {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FiscalDocumentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FiscalDocumentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FiscalDocumentCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := fiscaldocument.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := fiscaldocument.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := fiscaldocument.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FiscalDocumentCreate) check() error {
	if _, ok := _c.mutation.TotalAmount(); !ok {
		return &ValidationError{Name: "total_amount", err: errors.New(`ent: missing required field "FiscalDocument.total_amount"`)}
	}
	if _, ok := _c.mutation.IcmsAmount(); !ok {
		return &ValidationError{Name: "icms_amount", err: errors.New(`ent: missing required field "FiscalDocument.icms_amount"`)}
	}
	if _, ok := _c.mutation.PisAmount(); !ok {
		return &ValidationError{Name: "pis_amount", err: errors.New(`ent: missing required field "FiscalDocument.pis_amount"`)}
	}
	if _, ok := _c.mutation.CofinsAmount(); !ok {
		return &ValidationError{Name: "cofins_amount", err: errors.New(`ent: missing required field "FiscalDocument.cofins_amount"`)}
	}
	if _, ok := _c.mutation.RawContent(); !ok {
		return &ValidationError{Name: "raw_content", err: errors.New(`ent: missing required field "FiscalDocument.raw_content"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "FiscalDocument.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "FiscalDocument.updated_at"`)}
	}
	return nil
}

func (_c *FiscalDocumentCreate) sqlSave(ctx context.Context) (*FiscalDocument, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FiscalDocumentCreate) createSpec() (*FiscalDocument, *sqlgraph.CreateSpec) {
	var (
		_node = &FiscalDocument{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(fiscaldocument.Table, sqlgraph.NewFieldSpec(fiscaldocument.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.AccessKey(); ok {
		_spec.SetField(fiscaldocument.FieldAccessKey, field.TypeString, value)
		_node.AccessKey = value
	}
	if value, ok := _c.mutation.Number(); ok {
		_spec.SetField(fiscaldocument.FieldNumber, field.TypeString, value)
		_node.Number = value
	}
	if value, ok := _c.mutation.Series(); ok {
		_spec.SetField(fiscaldocument.FieldSeries, field.TypeString, value)
		_node.Series = value
	}
	if value, ok := _c.mutation.IssueDate(); ok {
		_spec.SetField(fiscaldocument.FieldIssueDate, field.TypeTime, value)
		_node.IssueDate = &value
	}
	if value, ok := _c.mutation.IssuerTaxID(); ok {
		_spec.SetField(fiscaldocument.FieldIssuerTaxID, field.TypeString, value)
		_node.IssuerTaxID = value
	}
	if value, ok := _c.mutation.IssuerName(); ok {
		_spec.SetField(fiscaldocument.FieldIssuerName, field.TypeString, value)
		_node.IssuerName = value
	}
	if value, ok := _c.mutation.RecipientTaxID(); ok {
		_spec.SetField(fiscaldocument.FieldRecipientTaxID, field.TypeString, value)
		_node.RecipientTaxID = value
	}
	if value, ok := _c.mutation.RecipientName(); ok {
		_spec.SetField(fiscaldocument.FieldRecipientName, field.TypeString, value)
		_node.RecipientName = value
	}
	if value, ok := _c.mutation.TotalAmount(); ok {
		_spec.SetField(fiscaldocument.FieldTotalAmount, field.TypeFloat64, value)
		_node.TotalAmount = value
	}
	if value, ok := _c.mutation.IcmsAmount(); ok {
		_spec.SetField(fiscaldocument.FieldIcmsAmount, field.TypeFloat64, value)
		_node.IcmsAmount = value
	}
	if value, ok := _c.mutation.PisAmount(); ok {
		_spec.SetField(fiscaldocument.FieldPisAmount, field.TypeFloat64, value)
		_node.PisAmount = value
	}
	if value, ok := _c.mutation.CofinsAmount(); ok {
		_spec.SetField(fiscaldocument.FieldCofinsAmount, field.TypeFloat64, value)
		_node.CofinsAmount = value
	}
	if value, ok := _c.mutation.RawContent(); ok {
		_spec.SetField(fiscaldocument.FieldRawContent, field.TypeString, value)
		_node.RawContent = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(fiscaldocument.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(fiscaldocument.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.InstallmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   fiscaldocument.InstallmentsTable,
			Columns: []string{fiscaldocument.InstallmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(installment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// FiscalDocumentCreateBulk is the builder for creating many FiscalDocument entities in bulk.
type FiscalDocumentCreateBulk struct {
	config
	err      error
	builders []*FiscalDocumentCreate
}

// Save creates the FiscalDocument entities in the database.
func (_c *FiscalDocumentCreateBulk) Save(ctx context.Context) ([]*FiscalDocument, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FiscalDocument, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FiscalDocumentMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *FiscalDocumentCreateBulk) SaveX(ctx context.Context) []*FiscalDocument {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FiscalDocumentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FiscalDocumentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
