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

// InstallmentUpdate is the builder for updating Installment entities.
type InstallmentUpdate struct {
	config
	hooks    []Hook
	mutation *InstallmentMutation
}

// Where appends a list predicates to the InstallmentUpdate builder.
func (_u *InstallmentUpdate) Where(ps ...predicate.Installment) *InstallmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *InstallmentUpdate) SetDocumentID(v uuid.UUID) *InstallmentUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *InstallmentUpdate) SetNillableDocumentID(v *uuid.UUID) *InstallmentUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *InstallmentUpdate) SetDescription(v string) *InstallmentUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *InstallmentUpdate) SetNillableDescription(v *string) *InstallmentUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetSupplierName sets the "supplier_name" field.
func (_u *InstallmentUpdate) SetSupplierName(v string) *InstallmentUpdate {
	_u.mutation.SetSupplierName(v)
	return _u
}

// SetNillableSupplierName sets the "supplier_name" field if the given value is not nil.
func (_u *InstallmentUpdate) SetNillableSupplierName(v *string) *InstallmentUpdate {
	if v != nil {
		_u.SetSupplierName(*v)
	}
	return _u
}

// ClearSupplierName clears the value of the "supplier_name" field.
func (_u *InstallmentUpdate) ClearSupplierName() *InstallmentUpdate {
	_u.mutation.ClearSupplierName()
	return _u
}

// SetAmount sets the "amount" field.
func (_u *InstallmentUpdate) SetAmount(v float64) *InstallmentUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *InstallmentUpdate) SetNillableAmount(v *float64) *InstallmentUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *InstallmentUpdate) AddAmount(v float64) *InstallmentUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// SetDueDate sets the "due_date" field.
func (_u *InstallmentUpdate) SetDueDate(v time.Time) *InstallmentUpdate {
	_u.mutation.SetDueDate(v)
	return _u
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_u *InstallmentUpdate) SetNillableDueDate(v *time.Time) *InstallmentUpdate {
	if v != nil {
		_u.SetDueDate(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *InstallmentUpdate) SetStatus(v string) *InstallmentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InstallmentUpdate) SetNillableStatus(v *string) *InstallmentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *InstallmentUpdate) SetCategory(v string) *InstallmentUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *InstallmentUpdate) SetNillableCategory(v *string) *InstallmentUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetPaidAt sets the "paid_at" field.
func (_u *InstallmentUpdate) SetPaidAt(v time.Time) *InstallmentUpdate {
	_u.mutation.SetPaidAt(v)
	return _u
}

// SetNillablePaidAt sets the "paid_at" field if the given value is not nil.
func (_u *InstallmentUpdate) SetNillablePaidAt(v *time.Time) *InstallmentUpdate {
	if v != nil {
		_u.SetPaidAt(*v)
	}
	return _u
}

// ClearPaidAt clears the value of the "paid_at" field.
func (_u *InstallmentUpdate) ClearPaidAt() *InstallmentUpdate {
	_u.mutation.ClearPaidAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *InstallmentUpdate) SetCreatedAt(v time.Time) *InstallmentUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *InstallmentUpdate) SetNillableCreatedAt(v *time.Time) *InstallmentUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InstallmentUpdate) SetUpdatedAt(v time.Time) *InstallmentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDocument sets the "document" edge to the FiscalDocument entity.
func (_u *InstallmentUpdate) SetDocument(v *FiscalDocument) *InstallmentUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the InstallmentMutation object of the builder.
func (_u *InstallmentUpdate) Mutation() *InstallmentMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the FiscalDocument entity.
func (_u *InstallmentUpdate) ClearDocument() *InstallmentUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InstallmentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InstallmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InstallmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InstallmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InstallmentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := installment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InstallmentUpdate) check() error {
	if v, ok := _u.mutation.Description(); ok {
		if err := installment.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Installment.description": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := installment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Installment.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := installment.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Installment.category": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Installment.document"`)
	}
	return nil
}

func (_u *InstallmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(installment.Table, installment.Columns, sqlgraph.NewFieldSpec(installment.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(installment.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.SupplierName(); ok {
		_spec.SetField(installment.FieldSupplierName, field.TypeString, value)
	}
	if _u.mutation.SupplierNameCleared() {
		_spec.ClearField(installment.FieldSupplierName, field.TypeString)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(installment.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(installment.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DueDate(); ok {
		_spec.SetField(installment.FieldDueDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(installment.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(installment.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.PaidAt(); ok {
		_spec.SetField(installment.FieldPaidAt, field.TypeTime, value)
	}
	if _u.mutation.PaidAtCleared() {
		_spec.ClearField(installment.FieldPaidAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(installment.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(installment.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   installment.DocumentTable,
			Columns: []string{installment.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fiscaldocument.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   installment.DocumentTable,
			Columns: []string{installment.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fiscaldocument.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{installment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InstallmentUpdateOne is the builder for updating a single Installment entity.
type InstallmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InstallmentMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *InstallmentUpdateOne) SetDocumentID(v uuid.UUID) *InstallmentUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *InstallmentUpdateOne) SetNillableDocumentID(v *uuid.UUID) *InstallmentUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *InstallmentUpdateOne) SetDescription(v string) *InstallmentUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *InstallmentUpdateOne) SetNillableDescription(v *string) *InstallmentUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetSupplierName sets the "supplier_name" field.
func (_u *InstallmentUpdateOne) SetSupplierName(v string) *InstallmentUpdateOne {
	_u.mutation.SetSupplierName(v)
	return _u
}

// SetNillableSupplierName sets the "supplier_name" field if the given value is not nil.
func (_u *InstallmentUpdateOne) SetNillableSupplierName(v *string) *InstallmentUpdateOne {
	if v != nil {
		_u.SetSupplierName(*v)
	}
	return _u
}

// ClearSupplierName clears the value of the "supplier_name" field.
func (_u *InstallmentUpdateOne) ClearSupplierName() *InstallmentUpdateOne {
	_u.mutation.ClearSupplierName()
	return _u
}

// SetAmount sets the "amount" field.
func (_u *InstallmentUpdateOne) SetAmount(v float64) *InstallmentUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *InstallmentUpdateOne) SetNillableAmount(v *float64) *InstallmentUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *InstallmentUpdateOne) AddAmount(v float64) *InstallmentUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// SetDueDate sets the "due_date" field.
func (_u *InstallmentUpdateOne) SetDueDate(v time.Time) *InstallmentUpdateOne {
	_u.mutation.SetDueDate(v)
	return _u
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_u *InstallmentUpdateOne) SetNillableDueDate(v *time.Time) *InstallmentUpdateOne {
	if v != nil {
		_u.SetDueDate(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *InstallmentUpdateOne) SetStatus(v string) *InstallmentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InstallmentUpdateOne) SetNillableStatus(v *string) *InstallmentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *InstallmentUpdateOne) SetCategory(v string) *InstallmentUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *InstallmentUpdateOne) SetNillableCategory(v *string) *InstallmentUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetPaidAt sets the "paid_at" field.
func (_u *InstallmentUpdateOne) SetPaidAt(v time.Time) *InstallmentUpdateOne {
	_u.mutation.SetPaidAt(v)
	return _u
}

// SetNillablePaidAt sets the "paid_at" field if the given value is not nil.
func (_u *InstallmentUpdateOne) SetNillablePaidAt(v *time.Time) *InstallmentUpdateOne {
	if v != nil {
		_u.SetPaidAt(*v)
	}
	return _u
}

// ClearPaidAt clears the value of the "paid_at" field.
func (_u *InstallmentUpdateOne) ClearPaidAt() *InstallmentUpdateOne {
	_u.mutation.ClearPaidAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *InstallmentUpdateOne) SetCreatedAt(v time.Time) *InstallmentUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *InstallmentUpdateOne) SetNillableCreatedAt(v *time.Time) *InstallmentUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InstallmentUpdateOne) SetUpdatedAt(v time.Time) *InstallmentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDocument sets the "document" edge to the FiscalDocument entity.
func (_u *InstallmentUpdateOne) SetDocument(v *FiscalDocument) *InstallmentUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the InstallmentMutation object of the builder.
func (_u *InstallmentUpdateOne) Mutation() *InstallmentMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the FiscalDocument entity.
func (_u *InstallmentUpdateOne) ClearDocument() *InstallmentUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the InstallmentUpdate builder.
func (_u *InstallmentUpdateOne) Where(ps ...predicate.Installment) *InstallmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InstallmentUpdateOne) Select(field string, fields ...string) *InstallmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Installment entity.
func (_u *InstallmentUpdateOne) Save(ctx context.Context) (*Installment, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InstallmentUpdateOne) SaveX(ctx context.Context) *Installment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InstallmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InstallmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InstallmentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := installment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InstallmentUpdateOne) check() error {
	if v, ok := _u.mutation.Description(); ok {
		if err := installment.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Installment.description": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := installment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Installment.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := installment.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Installment.category": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Installment.document"`)
	}
	return nil
}

func (_u *InstallmentUpdateOne) sqlSave(ctx context.Context) (_node *Installment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(installment.Table, installment.Columns, sqlgraph.NewFieldSpec(installment.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Installment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, installment.FieldID)
		for _, f := range fields {
			if !installment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != installment.FieldID {
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
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(installment.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.SupplierName(); ok {
		_spec.SetField(installment.FieldSupplierName, field.TypeString, value)
	}
	if _u.mutation.SupplierNameCleared() {
		_spec.ClearField(installment.FieldSupplierName, field.TypeString)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(installment.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(installment.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DueDate(); ok {
		_spec.SetField(installment.FieldDueDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(installment.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(installment.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.PaidAt(); ok {
		_spec.SetField(installment.FieldPaidAt, field.TypeTime, value)
	}
	if _u.mutation.PaidAtCleared() {
		_spec.ClearField(installment.FieldPaidAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(installment.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(installment.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   installment.DocumentTable,
			Columns: []string{installment.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fiscaldocument.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   installment.DocumentTable,
			Columns: []string{installment.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fiscaldocument.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Installment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{installment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
