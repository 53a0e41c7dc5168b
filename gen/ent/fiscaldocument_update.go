// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/evozago/fluxo-e-dre-sub001/gen/ent/fiscaldocument"
	"github.com/evozago/fluxo-e-dre-sub001/gen/ent/installment"
	"github.com/evozago/fluxo-e-dre-sub001/gen/ent/predicate"
	"github.com/google/uuid"
)

// FiscalDocumentUpdate is the builder for updating FiscalDocument entities.
type FiscalDocumentUpdate struct {
	config
	hooks    []Hook
	mutation *FiscalDocumentMutation
}

// Where appends a list predicates to the FiscalDocumentUpdate builder.
func (_u *FiscalDocumentUpdate) Where(ps ...predicate.FiscalDocument) *FiscalDocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAccessKey sets the "access_key" field.
func (_u *FiscalDocumentUpdate) SetAccessKey(v string) *FiscalDocumentUpdate {
	_u.mutation.SetAccessKey(v)
	return _u
}

// SetNillableAccessKey sets the "access_key" field if the given value is not nil.
func (_u *FiscalDocumentUpdate) SetNillableAccessKey(v *string) *FiscalDocumentUpdate {
	if v != nil {
		_u.SetAccessKey(*v)
	}
	return _u
}

// ClearAccessKey clears the value of the "access_key" field.
func (_u *FiscalDocumentUpdate) ClearAccessKey() *FiscalDocumentUpdate {
	_u.mutation.ClearAccessKey()
	return _u
}

// SetNumber sets the "number" field.
func (_u *FiscalDocumentUpdate) SetNumber(v string) *FiscalDocumentUpdate {
	_u.mutation.SetNumber(v)
	return _u
}

// SetNillableNumber sets the "number" field if the given value is not nil.
func (_u *FiscalDocumentUpdate) SetNillableNumber(v *string) *FiscalDocumentUpdate {
	if v != nil {
		_u.SetNumber(*v)
	}
	return _u
}

// ClearNumber clears the value of the "number" field.
func (_u *FiscalDocumentUpdate) ClearNumber() *FiscalDocumentUpdate {
	_u.mutation.ClearNumber()
	return _u
}

// SetSeries sets the "series" field.
func (_u *FiscalDocumentUpdate) SetSeries(v string) *FiscalDocumentUpdate {
	_u.mutation.SetSeries(v)
	return _u
}

// SetNillableSeries sets the "series" field if the given value is not nil.
func (_u *FiscalDocumentUpdate) SetNillableSeries(v *string) *FiscalDocumentUpdate {
	if v != nil {
		_u.SetSeries(*v)
	}
	return _u
}

// ClearSeries clears the value of the "series" field.
func (_u *FiscalDocumentUpdate) ClearSeries() *FiscalDocumentUpdate {
	_u.mutation.ClearSeries()
	return _u
}

// SetIssueDate sets the "issue_date" field.
func (_u *FiscalDocumentUpdate) SetIssueDate(v time.Time) *FiscalDocumentUpdate {
	_u.mutation.SetIssueDate(v)
	return _u
}

// SetNillableIssueDate sets the "issue_date" field if the given value is not nil.
func (_u *FiscalDocumentUpdate) SetNillableIssueDate(v *time.Time) *FiscalDocumentUpdate {
	if v != nil {
		_u.SetIssueDate(*v)
	}
	return _u
}

// ClearIssueDate clears the value of the "issue_date" field.
func (_u *FiscalDocumentUpdate) ClearIssueDate() *FiscalDocumentUpdate {
	_u.mutation.ClearIssueDate()
	return _u
}

// SetIssuerTaxID sets the "issuer_tax_id" field.
func (_u *FiscalDocumentUpdate) SetIssuerTaxID(v string) *FiscalDocumentUpdate {
	_u.mutation.SetIssuerTaxID(v)
	return _u
}

// SetNillableIssuerTaxID sets the "issuer_tax_id" field if the given value is not nil.
func (_u *FiscalDocumentUpdate) SetNillableIssuerTaxID(v *string) *FiscalDocumentUpdate {
	if v != nil {
		_u.SetIssuerTaxID(*v)
	}
	return _u
}

// ClearIssuerTaxID clears the value of the "issuer_tax_id" field.
func (_u *FiscalDocumentUpdate) ClearIssuerTaxID() *FiscalDocumentUpdate {
	_u.mutation.ClearIssuerTaxID()
	return _u
}

// SetIssuerName sets the "issuer_name" field.
func (_u *FiscalDocumentUpdate) SetIssuerName(v string) *FiscalDocumentUpdate {
	_u.mutation.SetIssuerName(v)
	return _u
}

// SetNillableIssuerName sets the "issuer_name" field if the given value is not nil.
func (_u *FiscalDocumentUpdate) SetNillableIssuerName(v *string) *FiscalDocumentUpdate {
	if v != nil {
		_u.SetIssuerName(*v)
	}
	return _u
}

// ClearIssuerName clears the value of the "issuer_name" field.
func (_u *FiscalDocumentUpdate) ClearIssuerName() *FiscalDocumentUpdate {
	_u.mutation.ClearIssuerName()
	return _u
}

// SetRecipientTaxID sets the "recipient_tax_id" field.
func (_u *FiscalDocumentUpdate) SetRecipientTaxID(v string) *FiscalDocumentUpdate {
	_u.mutation.SetRecipientTaxID(v)
	return _u
}

// SetNillableRecipientTaxID sets the "recipient_tax_id" field if the given value is not nil.
func (_u *FiscalDocumentUpdate) SetNillableRecipientTaxID(v *string) *FiscalDocumentUpdate {
	if v != nil {
		_u.SetRecipientTaxID(*v)
	}
	return _u
}

// ClearRecipientTaxID clears the value of the "recipient_tax_id" field.
func (_u *FiscalDocumentUpdate) ClearRecipientTaxID() *FiscalDocumentUpdate {
	_u.mutation.ClearRecipientTaxID()
	return _u
}

// SetRecipientName sets the "recipient_name" field.
func (_u *FiscalDocumentUpdate) SetRecipientName(v string) *FiscalDocumentUpdate {
	_u.mutation.SetRecipientName(v)
	return _u
}

// SetNillableRecipientName sets the "recipient_name" field if the given value is not nil.
func (_u *FiscalDocumentUpdate) SetNillableRecipientName(v *string) *FiscalDocumentUpdate {
	if v != nil {
		_u.SetRecipientName(*v)
	}
	return _u
}

// ClearRecipientName clears the value of the "recipient_name" field.
func (_u *FiscalDocumentUpdate) ClearRecipientName() *FiscalDocumentUpdate {
	_u.mutation.ClearRecipientName()
	return _u
}

// SetTotalAmount sets the "total_amount" field.
func (_u *FiscalDocumentUpdate) SetTotalAmount(v float64) *FiscalDocumentUpdate {
	_u.mutation.ResetTotalAmount()
	_u.mutation.SetTotalAmount(v)
	return _u
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_u *FiscalDocumentUpdate) SetNillableTotalAmount(v *float64) *FiscalDocumentUpdate {
	if v != nil {
		_u.SetTotalAmount(*v)
	}
	return _u
}

// AddTotalAmount adds value to the "total_amount" field.
func (_u *FiscalDocumentUpdate) AddTotalAmount(v float64) *FiscalDocumentUpdate {
	_u.mutation.AddTotalAmount(v)
	return _u
}

// SetIcmsAmount sets the "icms_amount" field.
func (_u *FiscalDocumentUpdate) SetIcmsAmount(v float64) *FiscalDocumentUpdate {
	_u.mutation.ResetIcmsAmount()
	_u.mutation.SetIcmsAmount(v)
	return _u
}

// SetNillableIcmsAmount sets the "icms_amount" field if the given value is not nil.
func (_u *FiscalDocumentUpdate) SetNillableIcmsAmount(v *float64) *FiscalDocumentUpdate {
	if v != nil {
		_u.SetIcmsAmount(*v)
	}
	return _u
}

// AddIcmsAmount adds value to the "icms_amount" field.
func (_u *FiscalDocumentUpdate) AddIcmsAmount(v float64) *FiscalDocumentUpdate {
	_u.mutation.AddIcmsAmount(v)
	return _u
}

// SetPisAmount sets the "pis_amount" field.
func (_u *FiscalDocumentUpdate) SetPisAmount(v float64) *FiscalDocumentUpdate {
	_u.mutation.ResetPisAmount()
	_u.mutation.SetPisAmount(v)
	return _u
}

// SetNillablePisAmount sets the "pis_amount" field if the given value is not nil.
func (_u *FiscalDocumentUpdate) SetNillablePisAmount(v *float64) *FiscalDocumentUpdate {
	if v != nil {
		_u.SetPisAmount(*v)
	}
	return _u
}

// AddPisAmount adds value to the "pis_amount" field.
func (_u *FiscalDocumentUpdate) AddPisAmount(v float64) *FiscalDocumentUpdate {
	_u.mutation.AddPisAmount(v)
	return _u
}

// SetCofinsAmount sets the "cofins_amount" field.
func (_u *FiscalDocumentUpdate) SetCofinsAmount(v float64) *FiscalDocumentUpdate {
	_u.mutation.ResetCofinsAmount()
	_u.mutation.SetCofinsAmount(v)
	return _u
}

// SetNillableCofinsAmount sets the "cofins_amount" field if the given value is not nil.
func (_u *FiscalDocumentUpdate) SetNillableCofinsAmount(v *float64) *FiscalDocumentUpdate {
	if v != nil {
		_u.SetCofinsAmount(*v)
	}
	return _u
}

// AddCofinsAmount adds value to the "cofins_amount" field.
func (_u *FiscalDocumentUpdate) AddCofinsAmount(v float64) *FiscalDocumentUpdate {
	_u.mutation.AddCofinsAmount(v)
	return _u
}

// SetRawContent sets the "raw_content" field.
func (_u *FiscalDocumentUpdate) SetRawContent(v string) *FiscalDocumentUpdate {
	_u.mutation.SetRawContent(v)
	return _u
}

// SetNillableRawContent sets the "raw_content" field if the given value is not nil.
func (_u *FiscalDocumentUpdate) SetNillableRawContent(v *string) *FiscalDocumentUpdate {
	if v != nil {
		_u.SetRawContent(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *FiscalDocumentUpdate) SetCreatedAt(v time.Time) *FiscalDocumentUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *FiscalDocumentUpdate) SetNillableCreatedAt(v *time.Time) *FiscalDocumentUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FiscalDocumentUpdate) SetUpdatedAt(v time.Time) *FiscalDocumentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddInstallmentIDs adds the "installments" edge to the Installment entity by IDs.
func (_u *FiscalDocumentUpdate) AddInstallmentIDs(ids ...uuid.UUID) *FiscalDocumentUpdate {
	_u.mutation.AddInstallmentIDs(ids...)
	return _u
}

// AddInstallments adds the "installments" edges to the Installment entity.
func (_u *FiscalDocumentUpdate) AddInstallments(v ...*Installment) *FiscalDocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInstallmentIDs(ids...)
}

// Mutation returns the FiscalDocumentMutation object of the builder.
func (_u *FiscalDocumentUpdate) Mutation() *FiscalDocumentMutation {
	return _u.mutation
}

// ClearInstallments clears all "installments" edges to the Installment entity.
func (_u *FiscalDocumentUpdate) ClearInstallments() *FiscalDocumentUpdate {
	_u.mutation.ClearInstallments()
	return _u
}

// RemoveInstallmentIDs removes the "installments" edge to Installment entities by IDs.
func (_u *FiscalDocumentUpdate) RemoveInstallmentIDs(ids ...uuid.UUID) *FiscalDocumentUpdate {
	_u.mutation.RemoveInstallmentIDs(ids...)
	return _u
}

// RemoveInstallments removes "installments" edges to Installment entities.
func (_u *FiscalDocumentUpdate) RemoveInstallments(v ...*Installment) *FiscalDocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInstallmentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FiscalDocumentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FiscalDocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FiscalDocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FiscalDocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FiscalDocumentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := fiscaldocument.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *FiscalDocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(fiscaldocument.Table, fiscaldocument.Columns, sqlgraph.NewFieldSpec(fiscaldocument.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AccessKey(); ok {
		_spec.SetField(fiscaldocument.FieldAccessKey, field.TypeString, value)
	}
	if _u.mutation.AccessKeyCleared() {
		_spec.ClearField(fiscaldocument.FieldAccessKey, field.TypeString)
	}
	if value, ok := _u.mutation.Number(); ok {
		_spec.SetField(fiscaldocument.FieldNumber, field.TypeString, value)
	}
	if _u.mutation.NumberCleared() {
		_spec.ClearField(fiscaldocument.FieldNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Series(); ok {
		_spec.SetField(fiscaldocument.FieldSeries, field.TypeString, value)
	}
	if _u.mutation.SeriesCleared() {
		_spec.ClearField(fiscaldocument.FieldSeries, field.TypeString)
	}
	if value, ok := _u.mutation.IssueDate(); ok {
		_spec.SetField(fiscaldocument.FieldIssueDate, field.TypeTime, value)
	}
	if _u.mutation.IssueDateCleared() {
		_spec.ClearField(fiscaldocument.FieldIssueDate, field.TypeTime)
	}
	if value, ok := _u.mutation.IssuerTaxID(); ok {
		_spec.SetField(fiscaldocument.FieldIssuerTaxID, field.TypeString, value)
	}
	if _u.mutation.IssuerTaxIDCleared() {
		_spec.ClearField(fiscaldocument.FieldIssuerTaxID, field.TypeString)
	}
	if value, ok := _u.mutation.IssuerName(); ok {
		_spec.SetField(fiscaldocument.FieldIssuerName, field.TypeString, value)
	}
	if _u.mutation.IssuerNameCleared() {
		_spec.ClearField(fiscaldocument.FieldIssuerName, field.TypeString)
	}
	if value, ok := _u.mutation.RecipientTaxID(); ok {
		_spec.SetField(fiscaldocument.FieldRecipientTaxID, field.TypeString, value)
	}
	if _u.mutation.RecipientTaxIDCleared() {
		_spec.ClearField(fiscaldocument.FieldRecipientTaxID, field.TypeString)
	}
	if value, ok := _u.mutation.RecipientName(); ok {
		_spec.SetField(fiscaldocument.FieldRecipientName, field.TypeString, value)
	}
	if _u.mutation.RecipientNameCleared() {
		_spec.ClearField(fiscaldocument.FieldRecipientName, field.TypeString)
	}
	if value, ok := _u.mutation.TotalAmount(); ok {
		_spec.SetField(fiscaldocument.FieldTotalAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalAmount(); ok {
		_spec.AddField(fiscaldocument.FieldTotalAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IcmsAmount(); ok {
		_spec.SetField(fiscaldocument.FieldIcmsAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedIcmsAmount(); ok {
		_spec.AddField(fiscaldocument.FieldIcmsAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PisAmount(); ok {
		_spec.SetField(fiscaldocument.FieldPisAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPisAmount(); ok {
		_spec.AddField(fiscaldocument.FieldPisAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CofinsAmount(); ok {
		_spec.SetField(fiscaldocument.FieldCofinsAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCofinsAmount(); ok {
		_spec.AddField(fiscaldocument.FieldCofinsAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RawContent(); ok {
		_spec.SetField(fiscaldocument.FieldRawContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(fiscaldocument.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(fiscaldocument.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.InstallmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInstallmentsIDs(); len(nodes) > 0 && !_u.mutation.InstallmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InstallmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fiscaldocument.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FiscalDocumentUpdateOne is the builder for updating a single FiscalDocument entity.
type FiscalDocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FiscalDocumentMutation
}

// SetAccessKey sets the "access_key" field.
func (_u *FiscalDocumentUpdateOne) SetAccessKey(v string) *FiscalDocumentUpdateOne {
	_u.mutation.SetAccessKey(v)
	return _u
}

// SetNillableAccessKey sets the "access_key" field if the given value is not nil.
func (_u *FiscalDocumentUpdateOne) SetNillableAccessKey(v *string) *FiscalDocumentUpdateOne {
	if v != nil {
		_u.SetAccessKey(*v)
	}
	return _u
}

// ClearAccessKey clears the value of the "access_key" field.
func (_u *FiscalDocumentUpdateOne) ClearAccessKey() *FiscalDocumentUpdateOne {
	_u.mutation.ClearAccessKey()
	return _u
}

// SetNumber sets the "number" field.
func (_u *FiscalDocumentUpdateOne) SetNumber(v string) *FiscalDocumentUpdateOne {
	_u.mutation.SetNumber(v)
	return _u
}

// SetNillableNumber sets the "number" field if the given value is not nil.
func (_u *FiscalDocumentUpdateOne) SetNillableNumber(v *string) *FiscalDocumentUpdateOne {
	if v != nil {
		_u.SetNumber(*v)
	}
	return _u
}

// ClearNumber clears the value of the "number" field.
func (_u *FiscalDocumentUpdateOne) ClearNumber() *FiscalDocumentUpdateOne {
	_u.mutation.ClearNumber()
	return _u
}

// SetSeries sets the "series" field.
func (_u *FiscalDocumentUpdateOne) SetSeries(v string) *FiscalDocumentUpdateOne {
	_u.mutation.SetSeries(v)
	return _u
}

// SetNillableSeries sets the "series" field if the given value is not nil.
func (_u *FiscalDocumentUpdateOne) SetNillableSeries(v *string) *FiscalDocumentUpdateOne {
	if v != nil {
		_u.SetSeries(*v)
	}
	return _u
}

// ClearSeries clears the value of the "series" field.
func (_u *FiscalDocumentUpdateOne) ClearSeries() *FiscalDocumentUpdateOne {
	_u.mutation.ClearSeries()
	return _u
}

// SetIssueDate sets the "issue_date" field.
func (_u *FiscalDocumentUpdateOne) SetIssueDate(v time.Time) *FiscalDocumentUpdateOne {
	_u.mutation.SetIssueDate(v)
	return _u
}

// SetNillableIssueDate sets the "issue_date" field if the given value is not nil.
func (_u *FiscalDocumentUpdateOne) SetNillableIssueDate(v *time.Time) *FiscalDocumentUpdateOne {
	if v != nil {
		_u.SetIssueDate(*v)
	}
	return _u
}

// ClearIssueDate clears the value of the "issue_date" field.
func (_u *FiscalDocumentUpdateOne) ClearIssueDate() *FiscalDocumentUpdateOne {
	_u.mutation.ClearIssueDate()
	return _u
}

// SetIssuerTaxID sets the "issuer_tax_id" field.
func (_u *FiscalDocumentUpdateOne) SetIssuerTaxID(v string) *FiscalDocumentUpdateOne {
	_u.mutation.SetIssuerTaxID(v)
	return _u
}

// SetNillableIssuerTaxID sets the "issuer_tax_id" field if the given value is not nil.
func (_u *FiscalDocumentUpdateOne) SetNillableIssuerTaxID(v *string) *FiscalDocumentUpdateOne {
	if v != nil {
		_u.SetIssuerTaxID(*v)
	}
	return _u
}

// ClearIssuerTaxID clears the value of the "issuer_tax_id" field.
func (_u *FiscalDocumentUpdateOne) ClearIssuerTaxID() *FiscalDocumentUpdateOne {
	_u.mutation.ClearIssuerTaxID()
	return _u
}

// SetIssuerName sets the "issuer_name" field.
func (_u *FiscalDocumentUpdateOne) SetIssuerName(v string) *FiscalDocumentUpdateOne {
	_u.mutation.SetIssuerName(v)
	return _u
}

// SetNillableIssuerName sets the "issuer_name" field if the given value is not nil.
func (_u *FiscalDocumentUpdateOne) SetNillableIssuerName(v *string) *FiscalDocumentUpdateOne {
	if v != nil {
		_u.SetIssuerName(*v)
	}
	return _u
}

// ClearIssuerName clears the value of the "issuer_name" field.
func (_u *FiscalDocumentUpdateOne) ClearIssuerName() *FiscalDocumentUpdateOne {
	_u.mutation.ClearIssuerName()
	return _u
}

// SetRecipientTaxID sets the "recipient_tax_id" field.
func (_u *FiscalDocumentUpdateOne) SetRecipientTaxID(v string) *FiscalDocumentUpdateOne {
	_u.mutation.SetRecipientTaxID(v)
	return _u
}

// SetNillableRecipientTaxID sets the "recipient_tax_id" field if the given value is not nil.
func (_u *FiscalDocumentUpdateOne) SetNillableRecipientTaxID(v *string) *FiscalDocumentUpdateOne {
	if v != nil {
		_u.SetRecipientTaxID(*v)
	}
	return _u
}

// ClearRecipientTaxID clears the value of the "recipient_tax_id" field.
func (_u *FiscalDocumentUpdateOne) ClearRecipientTaxID() *FiscalDocumentUpdateOne {
	_u.mutation.ClearRecipientTaxID()
	return _u
}

// SetRecipientName sets the "recipient_name" field.
func (_u *FiscalDocumentUpdateOne) SetRecipientName(v string) *FiscalDocumentUpdateOne {
	_u.mutation.SetRecipientName(v)
	return _u
}

// SetNillableRecipientName sets the "recipient_name" field if the given value is not nil.
func (_u *FiscalDocumentUpdateOne) SetNillableRecipientName(v *string) *FiscalDocumentUpdateOne {
	if v != nil {
		_u.SetRecipientName(*v)
	}
	return _u
}

// ClearRecipientName clears the value of the "recipient_name" field.
func (_u *FiscalDocumentUpdateOne) ClearRecipientName() *FiscalDocumentUpdateOne {
	_u.mutation.ClearRecipientName()
	return _u
}

// SetTotalAmount sets the "total_amount" field.
func (_u *FiscalDocumentUpdateOne) SetTotalAmount(v float64) *FiscalDocumentUpdateOne {
	_u.mutation.ResetTotalAmount()
	_u.mutation.SetTotalAmount(v)
	return _u
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_u *FiscalDocumentUpdateOne) SetNillableTotalAmount(v *float64) *FiscalDocumentUpdateOne {
	if v != nil {
		_u.SetTotalAmount(*v)
	}
	return _u
}

// AddTotalAmount adds value to the "total_amount" field.
func (_u *FiscalDocumentUpdateOne) AddTotalAmount(v float64) *FiscalDocumentUpdateOne {
	_u.mutation.AddTotalAmount(v)
	return _u
}

// SetIcmsAmount sets the "icms_amount" field.
func (_u *FiscalDocumentUpdateOne) SetIcmsAmount(v float64) *FiscalDocumentUpdateOne {
	_u.mutation.ResetIcmsAmount()
	_u.mutation.SetIcmsAmount(v)
	return _u
}

// SetNillableIcmsAmount sets the "icms_amount" field if the given value is not nil.
func (_u *FiscalDocumentUpdateOne) SetNillableIcmsAmount(v *float64) *FiscalDocumentUpdateOne {
	if v != nil {
		_u.SetIcmsAmount(*v)
	}
	return _u
}

// AddIcmsAmount adds value to the "icms_amount" field.
func (_u *FiscalDocumentUpdateOne) AddIcmsAmount(v float64) *FiscalDocumentUpdateOne {
	_u.mutation.AddIcmsAmount(v)
	return _u
}

// SetPisAmount sets the "pis_amount" field.
func (_u *FiscalDocumentUpdateOne) SetPisAmount(v float64) *FiscalDocumentUpdateOne {
	_u.mutation.ResetPisAmount()
	_u.mutation.SetPisAmount(v)
	return _u
}

// SetNillablePisAmount sets the "pis_amount" field if the given value is not nil.
func (_u *FiscalDocumentUpdateOne) SetNillablePisAmount(v *float64) *FiscalDocumentUpdateOne {
	if v != nil {
		_u.SetPisAmount(*v)
	}
	return _u
}

// AddPisAmount adds value to the "pis_amount" field.
func (_u *FiscalDocumentUpdateOne) AddPisAmount(v float64) *FiscalDocumentUpdateOne {
	_u.mutation.AddPisAmount(v)
	return _u
}

// SetCofinsAmount sets the "cofins_amount" field.
func (_u *FiscalDocumentUpdateOne) SetCofinsAmount(v float64) *FiscalDocumentUpdateOne {
	_u.mutation.ResetCofinsAmount()
	_u.mutation.SetCofinsAmount(v)
	return _u
}

// SetNillableCofinsAmount sets the "cofins_amount" field if the given value is not nil.
func (_u *FiscalDocumentUpdateOne) SetNillableCofinsAmount(v *float64) *FiscalDocumentUpdateOne {
	if v != nil {
		_u.SetCofinsAmount(*v)
	}
	return _u
}

// AddCofinsAmount adds value to the "cofins_amount" field.
func (_u *FiscalDocumentUpdateOne) AddCofinsAmount(v float64) *FiscalDocumentUpdateOne {
	_u.mutation.AddCofinsAmount(v)
	return _u
}

// SetRawContent sets the "raw_content" field.
func (_u *FiscalDocumentUpdateOne) SetRawContent(v string) *FiscalDocumentUpdateOne {
	_u.mutation.SetRawContent(v)
	return _u
}

// SetNillableRawContent sets the "raw_content" field if the given value is not nil.
func (_u *FiscalDocumentUpdateOne) SetNillableRawContent(v *string) *FiscalDocumentUpdateOne {
	if v != nil {
		_u.SetRawContent(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *FiscalDocumentUpdateOne) SetCreatedAt(v time.Time) *FiscalDocumentUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *FiscalDocumentUpdateOne) SetNillableCreatedAt(v *time.Time) *FiscalDocumentUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FiscalDocumentUpdateOne) SetUpdatedAt(v time.Time) *FiscalDocumentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddInstallmentIDs adds the "installments" edge to the Installment entity by IDs.
func (_u *FiscalDocumentUpdateOne) AddInstallmentIDs(ids ...uuid.UUID) *FiscalDocumentUpdateOne {
	_u.mutation.AddInstallmentIDs(ids...)
	return _u
}

// AddInstallments adds the "installments" edges to the Installment entity.
func (_u *FiscalDocumentUpdateOne) AddInstallments(v ...*Installment) *FiscalDocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInstallmentIDs(ids...)
}

// Mutation returns the FiscalDocumentMutation object of the builder.
func (_u *FiscalDocumentUpdateOne) Mutation() *FiscalDocumentMutation {
	return _u.mutation
}

// ClearInstallments clears all "installments" edges to the Installment entity.
func (_u *FiscalDocumentUpdateOne) ClearInstallments() *FiscalDocumentUpdateOne {
	_u.mutation.ClearInstallments()
	return _u
}

// RemoveInstallmentIDs removes the "installments" edge to Installment entities by IDs.
func (_u *FiscalDocumentUpdateOne) RemoveInstallmentIDs(ids ...uuid.UUID) *FiscalDocumentUpdateOne {
	_u.mutation.RemoveInstallmentIDs(ids...)
	return _u
}

// RemoveInstallments removes "installments" edges to Installment entities.
func (_u *FiscalDocumentUpdateOne) RemoveInstallments(v ...*Installment) *FiscalDocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInstallmentIDs(ids...)
}

// Where appends a list predicates to the FiscalDocumentUpdate builder.
func (_u *FiscalDocumentUpdateOne) Where(ps ...predicate.FiscalDocument) *FiscalDocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FiscalDocumentUpdateOne) Select(field string, fields ...string) *FiscalDocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FiscalDocument entity.
func (_u *FiscalDocumentUpdateOne) Save(ctx context.Context) (*FiscalDocument, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FiscalDocumentUpdateOne) SaveX(ctx context.Context) *FiscalDocument {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FiscalDocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FiscalDocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FiscalDocumentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := fiscaldocument.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *FiscalDocumentUpdateOne) sqlSave(ctx context.Context) (_node *FiscalDocument, err error) {
	_spec := sqlgraph.NewUpdateSpec(fiscaldocument.Table, fiscaldocument.Columns, sqlgraph.NewFieldSpec(fiscaldocument.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FiscalDocument.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, fiscaldocument.FieldID)
		for _, f := range fields {
			if !fiscaldocument.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != fiscaldocument.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AccessKey(); ok {
		_spec.SetField(fiscaldocument.FieldAccessKey, field.TypeString, value)
	}
	if _u.mutation.AccessKeyCleared() {
		_spec.ClearField(fiscaldocument.FieldAccessKey, field.TypeString)
	}
	if value, ok := _u.mutation.Number(); ok {
		_spec.SetField(fiscaldocument.FieldNumber, field.TypeString, value)
	}
	if _u.mutation.NumberCleared() {
		_spec.ClearField(fiscaldocument.FieldNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Series(); ok {
		_spec.SetField(fiscaldocument.FieldSeries, field.TypeString, value)
	}
	if _u.mutation.SeriesCleared() {
		_spec.ClearField(fiscaldocument.FieldSeries, field.TypeString)
	}
	if value, ok := _u.mutation.IssueDate(); ok {
		_spec.SetField(fiscaldocument.FieldIssueDate, field.TypeTime, value)
	}
	if _u.mutation.IssueDateCleared() {
		_spec.ClearField(fiscaldocument.FieldIssueDate, field.TypeTime)
	}
	if value, ok := _u.mutation.IssuerTaxID(); ok {
		_spec.SetField(fiscaldocument.FieldIssuerTaxID, field.TypeString, value)
	}
	if _u.mutation.IssuerTaxIDCleared() {
		_spec.ClearField(fiscaldocument.FieldIssuerTaxID, field.TypeString)
	}
	if value, ok := _u.mutation.IssuerName(); ok {
		_spec.SetField(fiscaldocument.FieldIssuerName, field.TypeString, value)
	}
	if _u.mutation.IssuerNameCleared() {
		_spec.ClearField(fiscaldocument.FieldIssuerName, field.TypeString)
	}
	if value, ok := _u.mutation.RecipientTaxID(); ok {
		_spec.SetField(fiscaldocument.FieldRecipientTaxID, field.TypeString, value)
	}
	if _u.mutation.RecipientTaxIDCleared() {
		_spec.ClearField(fiscaldocument.FieldRecipientTaxID, field.TypeString)
	}
	if value, ok := _u.mutation.RecipientName(); ok {
		_spec.SetField(fiscaldocument.FieldRecipientName, field.TypeString, value)
	}
	if _u.mutation.RecipientNameCleared() {
		_spec.ClearField(fiscaldocument.FieldRecipientName, field.TypeString)
	}
	if value, ok := _u.mutation.TotalAmount(); ok {
		_spec.SetField(fiscaldocument.FieldTotalAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalAmount(); ok {
		_spec.AddField(fiscaldocument.FieldTotalAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IcmsAmount(); ok {
		_spec.SetField(fiscaldocument.FieldIcmsAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedIcmsAmount(); ok {
		_spec.AddField(fiscaldocument.FieldIcmsAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PisAmount(); ok {
		_spec.SetField(fiscaldocument.FieldPisAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPisAmount(); ok {
		_spec.AddField(fiscaldocument.FieldPisAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CofinsAmount(); ok {
		_spec.SetField(fiscaldocument.FieldCofinsAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCofinsAmount(); ok {
		_spec.AddField(fiscaldocument.FieldCofinsAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RawContent(); ok {
		_spec.SetField(fiscaldocument.FieldRawContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(fiscaldocument.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(fiscaldocument.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.InstallmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInstallmentsIDs(); len(nodes) > 0 && !_u.mutation.InstallmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InstallmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &FiscalDocument{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fiscaldocument.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
