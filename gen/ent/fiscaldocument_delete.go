// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/evozago/fluxo-e-dre-sub001/gen/ent/fiscaldocument"
	"github.com/evozago/fluxo-e-dre-sub001/gen/ent/predicate"
)

// FiscalDocumentDelete is the builder for deleting a FiscalDocument entity.
type FiscalDocumentDelete struct {
	config
	hooks    []Hook
	mutation *FiscalDocumentMutation
}

// Where appends a list predicates to the FiscalDocumentDelete builder.
func (_d *FiscalDocumentDelete) Where(ps ...predicate.FiscalDocument) *FiscalDocumentDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *FiscalDocumentDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *FiscalDocumentDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *FiscalDocumentDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(fiscaldocument.Table, sqlgraph.NewFieldSpec(fiscaldocument.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// FiscalDocumentDeleteOne is the builder for deleting a single FiscalDocument entity.
type FiscalDocumentDeleteOne struct {
	_d *FiscalDocumentDelete
}

// Where appends a list predicates to the FiscalDocumentDelete builder.
func (_d *FiscalDocumentDeleteOne) Where(ps ...predicate.FiscalDocument) *FiscalDocumentDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *FiscalDocumentDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{fiscaldocument.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *FiscalDocumentDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
