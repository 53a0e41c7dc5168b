// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/evozago/fluxo-e-dre-sub001/gen/ent/fiscaldocument"
	"github.com/evozago/fluxo-e-dre-sub001/gen/ent/installment"
	"github.com/evozago/fluxo-e-dre-sub001/gen/ent/predicate"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeFiscalDocument = "FiscalDocument"
	TypeInstallment    = "Installment"
)

// FiscalDocumentMutation represents an operation that mutates the FiscalDocument nodes in the graph.
type FiscalDocumentMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	access_key          *string
	number              *string
	series              *string
	issue_date          *time.Time
	issuer_tax_id       *string
	issuer_name         *string
	recipient_tax_id    *string
	recipient_name      *string
	total_amount        *float64
	addtotal_amount     *float64
	icms_amount         *float64
	addicms_amount      *float64
	pis_amount          *float64
	addpis_amount       *float64
	cofins_amount       *float64
	addcofins_amount    *float64
	raw_content         *string
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	installments        map[uuid.UUID]struct{}
	removedinstallments map[uuid.UUID]struct{}
	clearedinstallments bool
	done                bool
	oldValue            func(context.Context) (*FiscalDocument, error)
	predicates          []predicate.FiscalDocument
}

var _ ent.Mutation = (*FiscalDocumentMutation)(nil)

// fiscaldocumentOption allows management of the mutation configuration using functional options.
type fiscaldocumentOption func(*FiscalDocumentMutation)

// newFiscalDocumentMutation creates new mutation for the FiscalDocument entity.
func newFiscalDocumentMutation(c config, op Op, opts ...fiscaldocumentOption) *FiscalDocumentMutation {
	m := &FiscalDocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeFiscalDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFiscalDocumentID sets the ID field of the mutation.
func withFiscalDocumentID(id uuid.UUID) fiscaldocumentOption {
	return func(m *FiscalDocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *FiscalDocument
		)
		m.oldValue = func(ctx context.Context) (*FiscalDocument, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FiscalDocument.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFiscalDocument sets the old FiscalDocument of the mutation.
func withFiscalDocument(node *FiscalDocument) fiscaldocumentOption {
	return func(m *FiscalDocumentMutation) {
		m.oldValue = func(context.Context) (*FiscalDocument, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FiscalDocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FiscalDocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FiscalDocument entities.
func (m *FiscalDocumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FiscalDocumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FiscalDocumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FiscalDocument.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAccessKey sets the "access_key" field.
func (m *FiscalDocumentMutation) SetAccessKey(s string) {
	m.access_key = &s
}

// AccessKey returns the value of the "access_key" field in the mutation.
func (m *FiscalDocumentMutation) AccessKey() (r string, exists bool) {
	v := m.access_key
	if v == nil {
		return
	}
	return *v, true
}

// OldAccessKey returns the old "access_key" field's value of the FiscalDocument entity.
// If the FiscalDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FiscalDocumentMutation) OldAccessKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccessKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccessKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccessKey: %w", err)
	}
	return oldValue.AccessKey, nil
}

// ClearAccessKey clears the value of the "access_key" field.
func (m *FiscalDocumentMutation) ClearAccessKey() {
	m.access_key = nil
	m.clearedFields[fiscaldocument.FieldAccessKey] = struct{}{}
}

// AccessKeyCleared returns if the "access_key" field was cleared in this mutation.
func (m *FiscalDocumentMutation) AccessKeyCleared() bool {
	_, ok := m.clearedFields[fiscaldocument.FieldAccessKey]
	return ok
}

// ResetAccessKey resets all changes to the "access_key" field.
func (m *FiscalDocumentMutation) ResetAccessKey() {
	m.access_key = nil
	delete(m.clearedFields, fiscaldocument.FieldAccessKey)
}

// SetNumber sets the "number" field.
func (m *FiscalDocumentMutation) SetNumber(s string) {
	m.number = &s
}

// Number returns the value of the "number" field in the mutation.
func (m *FiscalDocumentMutation) Number() (r string, exists bool) {
	v := m.number
	if v == nil {
		return
	}
	return *v, true
}

// OldNumber returns the old "number" field's value of the FiscalDocument entity.
// If the FiscalDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FiscalDocumentMutation) OldNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNumber: %w", err)
	}
	return oldValue.Number, nil
}

// ClearNumber clears the value of the "number" field.
func (m *FiscalDocumentMutation) ClearNumber() {
	m.number = nil
	m.clearedFields[fiscaldocument.FieldNumber] = struct{}{}
}

// NumberCleared returns if the "number" field was cleared in this mutation.
func (m *FiscalDocumentMutation) NumberCleared() bool {
	_, ok := m.clearedFields[fiscaldocument.FieldNumber]
	return ok
}

// ResetNumber resets all changes to the "number" field.
func (m *FiscalDocumentMutation) ResetNumber() {
	m.number = nil
	delete(m.clearedFields, fiscaldocument.FieldNumber)
}

// SetSeries sets the "series" field.
func (m *FiscalDocumentMutation) SetSeries(s string) {
	m.series = &s
}

// Series returns the value of the "series" field in the mutation.
func (m *FiscalDocumentMutation) Series() (r string, exists bool) {
	v := m.series
	if v == nil {
		return
	}
	return *v, true
}

// OldSeries returns the old "series" field's value of the FiscalDocument entity.
// If the FiscalDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FiscalDocumentMutation) OldSeries(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeries is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeries requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeries: %w", err)
	}
	return oldValue.Series, nil
}

// ClearSeries clears the value of the "series" field.
func (m *FiscalDocumentMutation) ClearSeries() {
	m.series = nil
	m.clearedFields[fiscaldocument.FieldSeries] = struct{}{}
}

// SeriesCleared returns if the "series" field was cleared in this mutation.
func (m *FiscalDocumentMutation) SeriesCleared() bool {
	_, ok := m.clearedFields[fiscaldocument.FieldSeries]
	return ok
}

// ResetSeries resets all changes to the "series" field.
func (m *FiscalDocumentMutation) ResetSeries() {
	m.series = nil
	delete(m.clearedFields, fiscaldocument.FieldSeries)
}

// SetIssueDate sets the "issue_date" field.
func (m *FiscalDocumentMutation) SetIssueDate(t time.Time) {
	m.issue_date = &t
}

// IssueDate returns the value of the "issue_date" field in the mutation.
func (m *FiscalDocumentMutation) IssueDate() (r time.Time, exists bool) {
	v := m.issue_date
	if v == nil {
		return
	}
	return *v, true
}

// OldIssueDate returns the old "issue_date" field's value of the FiscalDocument entity.
// If the FiscalDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FiscalDocumentMutation) OldIssueDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIssueDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIssueDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIssueDate: %w", err)
	}
	return oldValue.IssueDate, nil
}

// ClearIssueDate clears the value of the "issue_date" field.
func (m *FiscalDocumentMutation) ClearIssueDate() {
	m.issue_date = nil
	m.clearedFields[fiscaldocument.FieldIssueDate] = struct{}{}
}

// IssueDateCleared returns if the "issue_date" field was cleared in this mutation.
func (m *FiscalDocumentMutation) IssueDateCleared() bool {
	_, ok := m.clearedFields[fiscaldocument.FieldIssueDate]
	return ok
}

// ResetIssueDate resets all changes to the "issue_date" field.
func (m *FiscalDocumentMutation) ResetIssueDate() {
	m.issue_date = nil
	delete(m.clearedFields, fiscaldocument.FieldIssueDate)
}

// SetIssuerTaxID sets the "issuer_tax_id" field.
func (m *FiscalDocumentMutation) SetIssuerTaxID(s string) {
	m.issuer_tax_id = &s
}

// IssuerTaxID returns the value of the "issuer_tax_id" field in the mutation.
func (m *FiscalDocumentMutation) IssuerTaxID() (r string, exists bool) {
	v := m.issuer_tax_id
	if v == nil {
		return
	}
	return *v, true
}

// OldIssuerTaxID returns the old "issuer_tax_id" field's value of the FiscalDocument entity.
// If the FiscalDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FiscalDocumentMutation) OldIssuerTaxID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIssuerTaxID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIssuerTaxID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIssuerTaxID: %w", err)
	}
	return oldValue.IssuerTaxID, nil
}

// ClearIssuerTaxID clears the value of the "issuer_tax_id" field.
func (m *FiscalDocumentMutation) ClearIssuerTaxID() {
	m.issuer_tax_id = nil
	m.clearedFields[fiscaldocument.FieldIssuerTaxID] = struct{}{}
}

// IssuerTaxIDCleared returns if the "issuer_tax_id" field was cleared in this mutation.
func (m *FiscalDocumentMutation) IssuerTaxIDCleared() bool {
	_, ok := m.clearedFields[fiscaldocument.FieldIssuerTaxID]
	return ok
}

// ResetIssuerTaxID resets all changes to the "issuer_tax_id" field.
func (m *FiscalDocumentMutation) ResetIssuerTaxID() {
	m.issuer_tax_id = nil
	delete(m.clearedFields, fiscaldocument.FieldIssuerTaxID)
}

// SetIssuerName sets the "issuer_name" field.
func (m *FiscalDocumentMutation) SetIssuerName(s string) {
	m.issuer_name = &s
}

// IssuerName returns the value of the "issuer_name" field in the mutation.
func (m *FiscalDocumentMutation) IssuerName() (r string, exists bool) {
	v := m.issuer_name
	if v == nil {
		return
	}
	return *v, true
}

// OldIssuerName returns the old "issuer_name" field's value of the FiscalDocument entity.
// If the FiscalDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FiscalDocumentMutation) OldIssuerName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIssuerName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIssuerName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIssuerName: %w", err)
	}
	return oldValue.IssuerName, nil
}

// ClearIssuerName clears the value of the "issuer_name" field.
func (m *FiscalDocumentMutation) ClearIssuerName() {
	m.issuer_name = nil
	m.clearedFields[fiscaldocument.FieldIssuerName] = struct{}{}
}

// IssuerNameCleared returns if the "issuer_name" field was cleared in this mutation.
func (m *FiscalDocumentMutation) IssuerNameCleared() bool {
	_, ok := m.clearedFields[fiscaldocument.FieldIssuerName]
	return ok
}

// ResetIssuerName resets all changes to the "issuer_name" field.
func (m *FiscalDocumentMutation) ResetIssuerName() {
	m.issuer_name = nil
	delete(m.clearedFields, fiscaldocument.FieldIssuerName)
}

// SetRecipientTaxID sets the "recipient_tax_id" field.
func (m *FiscalDocumentMutation) SetRecipientTaxID(s string) {
	m.recipient_tax_id = &s
}

// RecipientTaxID returns the value of the "recipient_tax_id" field in the mutation.
func (m *FiscalDocumentMutation) RecipientTaxID() (r string, exists bool) {
	v := m.recipient_tax_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRecipientTaxID returns the old "recipient_tax_id" field's value of the FiscalDocument entity.
// If the FiscalDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FiscalDocumentMutation) OldRecipientTaxID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecipientTaxID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecipientTaxID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecipientTaxID: %w", err)
	}
	return oldValue.RecipientTaxID, nil
}

// ClearRecipientTaxID clears the value of the "recipient_tax_id" field.
func (m *FiscalDocumentMutation) ClearRecipientTaxID() {
	m.recipient_tax_id = nil
	m.clearedFields[fiscaldocument.FieldRecipientTaxID] = struct{}{}
}

// RecipientTaxIDCleared returns if the "recipient_tax_id" field was cleared in this mutation.
func (m *FiscalDocumentMutation) RecipientTaxIDCleared() bool {
	_, ok := m.clearedFields[fiscaldocument.FieldRecipientTaxID]
	return ok
}

// ResetRecipientTaxID resets all changes to the "recipient_tax_id" field.
func (m *FiscalDocumentMutation) ResetRecipientTaxID() {
	m.recipient_tax_id = nil
	delete(m.clearedFields, fiscaldocument.FieldRecipientTaxID)
}

// SetRecipientName sets the "recipient_name" field.
func (m *FiscalDocumentMutation) SetRecipientName(s string) {
	m.recipient_name = &s
}

// RecipientName returns the value of the "recipient_name" field in the mutation.
func (m *FiscalDocumentMutation) RecipientName() (r string, exists bool) {
	v := m.recipient_name
	if v == nil {
		return
	}
	return *v, true
}

// OldRecipientName returns the old "recipient_name" field's value of the FiscalDocument entity.
// If the FiscalDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FiscalDocumentMutation) OldRecipientName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecipientName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecipientName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecipientName: %w", err)
	}
	return oldValue.RecipientName, nil
}

// ClearRecipientName clears the value of the "recipient_name" field.
func (m *FiscalDocumentMutation) ClearRecipientName() {
	m.recipient_name = nil
	m.clearedFields[fiscaldocument.FieldRecipientName] = struct{}{}
}

// RecipientNameCleared returns if the "recipient_name" field was cleared in this mutation.
func (m *FiscalDocumentMutation) RecipientNameCleared() bool {
	_, ok := m.clearedFields[fiscaldocument.FieldRecipientName]
	return ok
}

// ResetRecipientName resets all changes to the "recipient_name" field.
func (m *FiscalDocumentMutation) ResetRecipientName() {
	m.recipient_name = nil
	delete(m.clearedFields, fiscaldocument.FieldRecipientName)
}

// SetTotalAmount sets the "total_amount" field.
func (m *FiscalDocumentMutation) SetTotalAmount(f float64) {
	m.total_amount = &f
	m.addtotal_amount = nil
}

// TotalAmount returns the value of the "total_amount" field in the mutation.
func (m *FiscalDocumentMutation) TotalAmount() (r float64, exists bool) {
	v := m.total_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalAmount returns the old "total_amount" field's value of the FiscalDocument entity.
// If the FiscalDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FiscalDocumentMutation) OldTotalAmount(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalAmount: %w", err)
	}
	return oldValue.TotalAmount, nil
}

// AddTotalAmount adds f to the "total_amount" field.
func (m *FiscalDocumentMutation) AddTotalAmount(f float64) {
	if m.addtotal_amount != nil {
		*m.addtotal_amount += f
	} else {
		m.addtotal_amount = &f
	}
}

// AddedTotalAmount returns the value that was added to the "total_amount" field in this mutation.
func (m *FiscalDocumentMutation) AddedTotalAmount() (r float64, exists bool) {
	v := m.addtotal_amount
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalAmount resets all changes to the "total_amount" field.
func (m *FiscalDocumentMutation) ResetTotalAmount() {
	m.total_amount = nil
	m.addtotal_amount = nil
}

// SetIcmsAmount sets the "icms_amount" field.
func (m *FiscalDocumentMutation) SetIcmsAmount(f float64) {
	m.icms_amount = &f
	m.addicms_amount = nil
}

// IcmsAmount returns the value of the "icms_amount" field in the mutation.
func (m *FiscalDocumentMutation) IcmsAmount() (r float64, exists bool) {
	v := m.icms_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldIcmsAmount returns the old "icms_amount" field's value of the FiscalDocument entity.
// If the FiscalDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FiscalDocumentMutation) OldIcmsAmount(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIcmsAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIcmsAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIcmsAmount: %w", err)
	}
	return oldValue.IcmsAmount, nil
}

// AddIcmsAmount adds f to the "icms_amount" field.
func (m *FiscalDocumentMutation) AddIcmsAmount(f float64) {
	if m.addicms_amount != nil {
		*m.addicms_amount += f
	} else {
		m.addicms_amount = &f
	}
}

// AddedIcmsAmount returns the value that was added to the "icms_amount" field in this mutation.
func (m *FiscalDocumentMutation) AddedIcmsAmount() (r float64, exists bool) {
	v := m.addicms_amount
	if v == nil {
		return
	}
	return *v, true
}

// ResetIcmsAmount resets all changes to the "icms_amount" field.
func (m *FiscalDocumentMutation) ResetIcmsAmount() {
	m.icms_amount = nil
	m.addicms_amount = nil
}

// SetPisAmount sets the "pis_amount" field.
func (m *FiscalDocumentMutation) SetPisAmount(f float64) {
	m.pis_amount = &f
	m.addpis_amount = nil
}

// PisAmount returns the value of the "pis_amount" field in the mutation.
func (m *FiscalDocumentMutation) PisAmount() (r float64, exists bool) {
	v := m.pis_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldPisAmount returns the old "pis_amount" field's value of the FiscalDocument entity.
// If the FiscalDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FiscalDocumentMutation) OldPisAmount(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPisAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPisAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPisAmount: %w", err)
	}
	return oldValue.PisAmount, nil
}

// AddPisAmount adds f to the "pis_amount" field.
func (m *FiscalDocumentMutation) AddPisAmount(f float64) {
	if m.addpis_amount != nil {
		*m.addpis_amount += f
	} else {
		m.addpis_amount = &f
	}
}

// AddedPisAmount returns the value that was added to the "pis_amount" field in this mutation.
func (m *FiscalDocumentMutation) AddedPisAmount() (r float64, exists bool) {
	v := m.addpis_amount
	if v == nil {
		return
	}
	return *v, true
}

// ResetPisAmount resets all changes to the "pis_amount" field.
func (m *FiscalDocumentMutation) ResetPisAmount() {
	m.pis_amount = nil
	m.addpis_amount = nil
}

// SetCofinsAmount sets the "cofins_amount" field.
func (m *FiscalDocumentMutation) SetCofinsAmount(f float64) {
	m.cofins_amount = &f
	m.addcofins_amount = nil
}

// CofinsAmount returns the value of the "cofins_amount" field in the mutation.
func (m *FiscalDocumentMutation) CofinsAmount() (r float64, exists bool) {
	v := m.cofins_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldCofinsAmount returns the old "cofins_amount" field's value of the FiscalDocument entity.
// If the FiscalDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FiscalDocumentMutation) OldCofinsAmount(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCofinsAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCofinsAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCofinsAmount: %w", err)
	}
	return oldValue.CofinsAmount, nil
}

// AddCofinsAmount adds f to the "cofins_amount" field.
func (m *FiscalDocumentMutation) AddCofinsAmount(f float64) {
	if m.addcofins_amount != nil {
		*m.addcofins_amount += f
	} else {
		m.addcofins_amount = &f
	}
}

// AddedCofinsAmount returns the value that was added to the "cofins_amount" field in this mutation.
func (m *FiscalDocumentMutation) AddedCofinsAmount() (r float64, exists bool) {
	v := m.addcofins_amount
	if v == nil {
		return
	}
	return *v, true
}

// ResetCofinsAmount resets all changes to the "cofins_amount" field.
func (m *FiscalDocumentMutation) ResetCofinsAmount() {
	m.cofins_amount = nil
	m.addcofins_amount = nil
}

// SetRawContent sets the "raw_content" field.
func (m *FiscalDocumentMutation) SetRawContent(s string) {
	m.raw_content = &s
}

// RawContent returns the value of the "raw_content" field in the mutation.
func (m *FiscalDocumentMutation) RawContent() (r string, exists bool) {
	v := m.raw_content
	if v == nil {
		return
	}
	return *v, true
}

// OldRawContent returns the old "raw_content" field's value of the FiscalDocument entity.
// If the FiscalDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FiscalDocumentMutation) OldRawContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawContent: %w", err)
	}
	return oldValue.RawContent, nil
}

// ResetRawContent resets all changes to the "raw_content" field.
func (m *FiscalDocumentMutation) ResetRawContent() {
	m.raw_content = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *FiscalDocumentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FiscalDocumentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the FiscalDocument entity.
// If the FiscalDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FiscalDocumentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FiscalDocumentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *FiscalDocumentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *FiscalDocumentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the FiscalDocument entity.
// If the FiscalDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FiscalDocumentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *FiscalDocumentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddInstallmentIDs adds the "installments" edge to the Installment entity by ids.
func (m *FiscalDocumentMutation) AddInstallmentIDs(ids ...uuid.UUID) {
	if m.installments == nil {
		m.installments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.installments[ids[i]] = struct{}{}
	}
}

// ClearInstallments clears the "installments" edge to the Installment entity.
func (m *FiscalDocumentMutation) ClearInstallments() {
	m.clearedinstallments = true
}

// InstallmentsCleared reports if the "installments" edge to the Installment entity was cleared.
func (m *FiscalDocumentMutation) InstallmentsCleared() bool {
	return m.clearedinstallments
}

// RemoveInstallmentIDs removes the "installments" edge to the Installment entity by IDs.
func (m *FiscalDocumentMutation) RemoveInstallmentIDs(ids ...uuid.UUID) {
	if m.removedinstallments == nil {
		m.removedinstallments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.installments, ids[i])
		m.removedinstallments[ids[i]] = struct{}{}
	}
}

// RemovedInstallments returns the removed IDs of the "installments" edge to the Installment entity.
func (m *FiscalDocumentMutation) RemovedInstallmentsIDs() (ids []uuid.UUID) {
	for id := range m.removedinstallments {
		ids = append(ids, id)
	}
	return
}

// InstallmentsIDs returns the "installments" edge IDs in the mutation.
func (m *FiscalDocumentMutation) InstallmentsIDs() (ids []uuid.UUID) {
	for id := range m.installments {
		ids = append(ids, id)
	}
	return
}

// ResetInstallments resets all changes to the "installments" edge.
func (m *FiscalDocumentMutation) ResetInstallments() {
	m.installments = nil
	m.clearedinstallments = false
	m.removedinstallments = nil
}

// Where appends a list predicates to the FiscalDocumentMutation builder.
func (m *FiscalDocumentMutation) Where(ps ...predicate.FiscalDocument) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FiscalDocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FiscalDocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FiscalDocument, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FiscalDocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FiscalDocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FiscalDocument).
func (m *FiscalDocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FiscalDocumentMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.access_key != nil {
		fields = append(fields, fiscaldocument.FieldAccessKey)
	}
	if m.number != nil {
		fields = append(fields, fiscaldocument.FieldNumber)
	}
	if m.series != nil {
		fields = append(fields, fiscaldocument.FieldSeries)
	}
	if m.issue_date != nil {
		fields = append(fields, fiscaldocument.FieldIssueDate)
	}
	if m.issuer_tax_id != nil {
		fields = append(fields, fiscaldocument.FieldIssuerTaxID)
	}
	if m.issuer_name != nil {
		fields = append(fields, fiscaldocument.FieldIssuerName)
	}
	if m.recipient_tax_id != nil {
		fields = append(fields, fiscaldocument.FieldRecipientTaxID)
	}
	if m.recipient_name != nil {
		fields = append(fields, fiscaldocument.FieldRecipientName)
	}
	if m.total_amount != nil {
		fields = append(fields, fiscaldocument.FieldTotalAmount)
	}
	if m.icms_amount != nil {
		fields = append(fields, fiscaldocument.FieldIcmsAmount)
	}
	if m.pis_amount != nil {
		fields = append(fields, fiscaldocument.FieldPisAmount)
	}
	if m.cofins_amount != nil {
		fields = append(fields, fiscaldocument.FieldCofinsAmount)
	}
	if m.raw_content != nil {
		fields = append(fields, fiscaldocument.FieldRawContent)
	}
	if m.created_at != nil {
		fields = append(fields, fiscaldocument.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, fiscaldocument.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FiscalDocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case fiscaldocument.FieldAccessKey:
		return m.AccessKey()
	case fiscaldocument.FieldNumber:
		return m.Number()
	case fiscaldocument.FieldSeries:
		return m.Series()
	case fiscaldocument.FieldIssueDate:
		return m.IssueDate()
	case fiscaldocument.FieldIssuerTaxID:
		return m.IssuerTaxID()
	case fiscaldocument.FieldIssuerName:
		return m.IssuerName()
	case fiscaldocument.FieldRecipientTaxID:
		return m.RecipientTaxID()
	case fiscaldocument.FieldRecipientName:
		return m.RecipientName()
	case fiscaldocument.FieldTotalAmount:
		return m.TotalAmount()
	case fiscaldocument.FieldIcmsAmount:
		return m.IcmsAmount()
	case fiscaldocument.FieldPisAmount:
		return m.PisAmount()
	case fiscaldocument.FieldCofinsAmount:
		return m.CofinsAmount()
	case fiscaldocument.FieldRawContent:
		return m.RawContent()
	case fiscaldocument.FieldCreatedAt:
		return m.CreatedAt()
	case fiscaldocument.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FiscalDocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case fiscaldocument.FieldAccessKey:
		return m.OldAccessKey(ctx)
	case fiscaldocument.FieldNumber:
		return m.OldNumber(ctx)
	case fiscaldocument.FieldSeries:
		return m.OldSeries(ctx)
	case fiscaldocument.FieldIssueDate:
		return m.OldIssueDate(ctx)
	case fiscaldocument.FieldIssuerTaxID:
		return m.OldIssuerTaxID(ctx)
	case fiscaldocument.FieldIssuerName:
		return m.OldIssuerName(ctx)
	case fiscaldocument.FieldRecipientTaxID:
		return m.OldRecipientTaxID(ctx)
	case fiscaldocument.FieldRecipientName:
		return m.OldRecipientName(ctx)
	case fiscaldocument.FieldTotalAmount:
		return m.OldTotalAmount(ctx)
	case fiscaldocument.FieldIcmsAmount:
		return m.OldIcmsAmount(ctx)
	case fiscaldocument.FieldPisAmount:
		return m.OldPisAmount(ctx)
	case fiscaldocument.FieldCofinsAmount:
		return m.OldCofinsAmount(ctx)
	case fiscaldocument.FieldRawContent:
		return m.OldRawContent(ctx)
	case fiscaldocument.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case fiscaldocument.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown FiscalDocument field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FiscalDocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case fiscaldocument.FieldAccessKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccessKey(v)
		return nil
	case fiscaldocument.FieldNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNumber(v)
		return nil
	case fiscaldocument.FieldSeries:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeries(v)
		return nil
	case fiscaldocument.FieldIssueDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIssueDate(v)
		return nil
	case fiscaldocument.FieldIssuerTaxID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIssuerTaxID(v)
		return nil
	case fiscaldocument.FieldIssuerName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIssuerName(v)
		return nil
	case fiscaldocument.FieldRecipientTaxID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecipientTaxID(v)
		return nil
	case fiscaldocument.FieldRecipientName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecipientName(v)
		return nil
	case fiscaldocument.FieldTotalAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalAmount(v)
		return nil
	case fiscaldocument.FieldIcmsAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIcmsAmount(v)
		return nil
	case fiscaldocument.FieldPisAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPisAmount(v)
		return nil
	case fiscaldocument.FieldCofinsAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCofinsAmount(v)
		return nil
	case fiscaldocument.FieldRawContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawContent(v)
		return nil
	case fiscaldocument.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case fiscaldocument.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown FiscalDocument field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FiscalDocumentMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_amount != nil {
		fields = append(fields, fiscaldocument.FieldTotalAmount)
	}
	if m.addicms_amount != nil {
		fields = append(fields, fiscaldocument.FieldIcmsAmount)
	}
	if m.addpis_amount != nil {
		fields = append(fields, fiscaldocument.FieldPisAmount)
	}
	if m.addcofins_amount != nil {
		fields = append(fields, fiscaldocument.FieldCofinsAmount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FiscalDocumentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case fiscaldocument.FieldTotalAmount:
		return m.AddedTotalAmount()
	case fiscaldocument.FieldIcmsAmount:
		return m.AddedIcmsAmount()
	case fiscaldocument.FieldPisAmount:
		return m.AddedPisAmount()
	case fiscaldocument.FieldCofinsAmount:
		return m.AddedCofinsAmount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FiscalDocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case fiscaldocument.FieldTotalAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalAmount(v)
		return nil
	case fiscaldocument.FieldIcmsAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIcmsAmount(v)
		return nil
	case fiscaldocument.FieldPisAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPisAmount(v)
		return nil
	case fiscaldocument.FieldCofinsAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCofinsAmount(v)
		return nil
	}
	return fmt.Errorf("unknown FiscalDocument numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FiscalDocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(fiscaldocument.FieldAccessKey) {
		fields = append(fields, fiscaldocument.FieldAccessKey)
	}
	if m.FieldCleared(fiscaldocument.FieldNumber) {
		fields = append(fields, fiscaldocument.FieldNumber)
	}
	if m.FieldCleared(fiscaldocument.FieldSeries) {
		fields = append(fields, fiscaldocument.FieldSeries)
	}
	if m.FieldCleared(fiscaldocument.FieldIssueDate) {
		fields = append(fields, fiscaldocument.FieldIssueDate)
	}
	if m.FieldCleared(fiscaldocument.FieldIssuerTaxID) {
		fields = append(fields, fiscaldocument.FieldIssuerTaxID)
	}
	if m.FieldCleared(fiscaldocument.FieldIssuerName) {
		fields = append(fields, fiscaldocument.FieldIssuerName)
	}
	if m.FieldCleared(fiscaldocument.FieldRecipientTaxID) {
		fields = append(fields, fiscaldocument.FieldRecipientTaxID)
	}
	if m.FieldCleared(fiscaldocument.FieldRecipientName) {
		fields = append(fields, fiscaldocument.FieldRecipientName)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FiscalDocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FiscalDocumentMutation) ClearField(name string) error {
	switch name {
	case fiscaldocument.FieldAccessKey:
		m.ClearAccessKey()
		return nil
	case fiscaldocument.FieldNumber:
		m.ClearNumber()
		return nil
	case fiscaldocument.FieldSeries:
		m.ClearSeries()
		return nil
	case fiscaldocument.FieldIssueDate:
		m.ClearIssueDate()
		return nil
	case fiscaldocument.FieldIssuerTaxID:
		m.ClearIssuerTaxID()
		return nil
	case fiscaldocument.FieldIssuerName:
		m.ClearIssuerName()
		return nil
	case fiscaldocument.FieldRecipientTaxID:
		m.ClearRecipientTaxID()
		return nil
	case fiscaldocument.FieldRecipientName:
		m.ClearRecipientName()
		return nil
	}
	return fmt.Errorf("unknown FiscalDocument nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FiscalDocumentMutation) ResetField(name string) error {
	switch name {
	case fiscaldocument.FieldAccessKey:
		m.ResetAccessKey()
		return nil
	case fiscaldocument.FieldNumber:
		m.ResetNumber()
		return nil
	case fiscaldocument.FieldSeries:
		m.ResetSeries()
		return nil
	case fiscaldocument.FieldIssueDate:
		m.ResetIssueDate()
		return nil
	case fiscaldocument.FieldIssuerTaxID:
		m.ResetIssuerTaxID()
		return nil
	case fiscaldocument.FieldIssuerName:
		m.ResetIssuerName()
		return nil
	case fiscaldocument.FieldRecipientTaxID:
		m.ResetRecipientTaxID()
		return nil
	case fiscaldocument.FieldRecipientName:
		m.ResetRecipientName()
		return nil
	case fiscaldocument.FieldTotalAmount:
		m.ResetTotalAmount()
		return nil
	case fiscaldocument.FieldIcmsAmount:
		m.ResetIcmsAmount()
		return nil
	case fiscaldocument.FieldPisAmount:
		m.ResetPisAmount()
		return nil
	case fiscaldocument.FieldCofinsAmount:
		m.ResetCofinsAmount()
		return nil
	case fiscaldocument.FieldRawContent:
		m.ResetRawContent()
		return nil
	case fiscaldocument.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case fiscaldocument.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown FiscalDocument field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FiscalDocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.installments != nil {
		edges = append(edges, fiscaldocument.EdgeInstallments)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FiscalDocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case fiscaldocument.EdgeInstallments:
		ids := make([]ent.Value, 0, len(m.installments))
		for id := range m.installments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FiscalDocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedinstallments != nil {
		edges = append(edges, fiscaldocument.EdgeInstallments)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FiscalDocumentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case fiscaldocument.EdgeInstallments:
		ids := make([]ent.Value, 0, len(m.removedinstallments))
		for id := range m.removedinstallments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FiscalDocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedinstallments {
		edges = append(edges, fiscaldocument.EdgeInstallments)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FiscalDocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case fiscaldocument.EdgeInstallments:
		return m.clearedinstallments
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FiscalDocumentMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown FiscalDocument unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FiscalDocumentMutation) ResetEdge(name string) error {
	switch name {
	case fiscaldocument.EdgeInstallments:
		m.ResetInstallments()
		return nil
	}
	return fmt.Errorf("unknown FiscalDocument edge %s", name)
}

// InstallmentMutation represents an operation that mutates the Installment nodes in the graph.
type InstallmentMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	description     *string
	supplier_name   *string
	amount          *float64
	addamount       *float64
	due_date        *time.Time
	status          *string
	category        *string
	paid_at         *time.Time
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	document        *uuid.UUID
	cleareddocument bool
	done            bool
	oldValue        func(context.Context) (*Installment, error)
	predicates      []predicate.Installment
}

var _ ent.Mutation = (*InstallmentMutation)(nil)

// installmentOption allows management of the mutation configuration using functional options.
type installmentOption func(*InstallmentMutation)

// newInstallmentMutation creates new mutation for the Installment entity.
func newInstallmentMutation(c config, op Op, opts ...installmentOption) *InstallmentMutation {
	m := &InstallmentMutation{
		config:        c,
		op:            op,
		typ:           TypeInstallment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInstallmentID sets the ID field of the mutation.
func withInstallmentID(id uuid.UUID) installmentOption {
	return func(m *InstallmentMutation) {
		var (
			err   error
			once  sync.Once
			value *Installment
		)
		m.oldValue = func(ctx context.Context) (*Installment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Installment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInstallment sets the old Installment of the mutation.
func withInstallment(node *Installment) installmentOption {
	return func(m *InstallmentMutation) {
		m.oldValue = func(context.Context) (*Installment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InstallmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InstallmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Installment entities.
func (m *InstallmentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InstallmentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InstallmentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Installment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *InstallmentMutation) SetDocumentID(u uuid.UUID) {
	m.document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *InstallmentMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the Installment entity.
// If the Installment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstallmentMutation) OldDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *InstallmentMutation) ResetDocumentID() {
	m.document = nil
}

// SetDescription sets the "description" field.
func (m *InstallmentMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *InstallmentMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Installment entity.
// If the Installment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstallmentMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *InstallmentMutation) ResetDescription() {
	m.description = nil
}

// SetSupplierName sets the "supplier_name" field.
func (m *InstallmentMutation) SetSupplierName(s string) {
	m.supplier_name = &s
}

// SupplierName returns the value of the "supplier_name" field in the mutation.
func (m *InstallmentMutation) SupplierName() (r string, exists bool) {
	v := m.supplier_name
	if v == nil {
		return
	}
	return *v, true
}

// OldSupplierName returns the old "supplier_name" field's value of the Installment entity.
// If the Installment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstallmentMutation) OldSupplierName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupplierName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupplierName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupplierName: %w", err)
	}
	return oldValue.SupplierName, nil
}

// ClearSupplierName clears the value of the "supplier_name" field.
func (m *InstallmentMutation) ClearSupplierName() {
	m.supplier_name = nil
	m.clearedFields[installment.FieldSupplierName] = struct{}{}
}

// SupplierNameCleared returns if the "supplier_name" field was cleared in this mutation.
func (m *InstallmentMutation) SupplierNameCleared() bool {
	_, ok := m.clearedFields[installment.FieldSupplierName]
	return ok
}

// ResetSupplierName resets all changes to the "supplier_name" field.
func (m *InstallmentMutation) ResetSupplierName() {
	m.supplier_name = nil
	delete(m.clearedFields, installment.FieldSupplierName)
}

// SetAmount sets the "amount" field.
func (m *InstallmentMutation) SetAmount(f float64) {
	m.amount = &f
	m.addamount = nil
}

// Amount returns the value of the "amount" field in the mutation.
func (m *InstallmentMutation) Amount() (r float64, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the Installment entity.
// If the Installment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstallmentMutation) OldAmount(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// AddAmount adds f to the "amount" field.
func (m *InstallmentMutation) AddAmount(f float64) {
	if m.addamount != nil {
		*m.addamount += f
	} else {
		m.addamount = &f
	}
}

// AddedAmount returns the value that was added to the "amount" field in this mutation.
func (m *InstallmentMutation) AddedAmount() (r float64, exists bool) {
	v := m.addamount
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmount resets all changes to the "amount" field.
func (m *InstallmentMutation) ResetAmount() {
	m.amount = nil
	m.addamount = nil
}

// SetDueDate sets the "due_date" field.
func (m *InstallmentMutation) SetDueDate(t time.Time) {
	m.due_date = &t
}

// DueDate returns the value of the "due_date" field in the mutation.
func (m *InstallmentMutation) DueDate() (r time.Time, exists bool) {
	v := m.due_date
	if v == nil {
		return
	}
	return *v, true
}

// OldDueDate returns the old "due_date" field's value of the Installment entity.
// If the Installment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstallmentMutation) OldDueDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDueDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDueDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDueDate: %w", err)
	}
	return oldValue.DueDate, nil
}

// ResetDueDate resets all changes to the "due_date" field.
func (m *InstallmentMutation) ResetDueDate() {
	m.due_date = nil
}

// SetStatus sets the "status" field.
func (m *InstallmentMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *InstallmentMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Installment entity.
// If the Installment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstallmentMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *InstallmentMutation) ResetStatus() {
	m.status = nil
}

// SetCategory sets the "category" field.
func (m *InstallmentMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *InstallmentMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the Installment entity.
// If the Installment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstallmentMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *InstallmentMutation) ResetCategory() {
	m.category = nil
}

// SetPaidAt sets the "paid_at" field.
func (m *InstallmentMutation) SetPaidAt(t time.Time) {
	m.paid_at = &t
}

// PaidAt returns the value of the "paid_at" field in the mutation.
func (m *InstallmentMutation) PaidAt() (r time.Time, exists bool) {
	v := m.paid_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPaidAt returns the old "paid_at" field's value of the Installment entity.
// If the Installment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstallmentMutation) OldPaidAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaidAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaidAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaidAt: %w", err)
	}
	return oldValue.PaidAt, nil
}

// ClearPaidAt clears the value of the "paid_at" field.
func (m *InstallmentMutation) ClearPaidAt() {
	m.paid_at = nil
	m.clearedFields[installment.FieldPaidAt] = struct{}{}
}

// PaidAtCleared returns if the "paid_at" field was cleared in this mutation.
func (m *InstallmentMutation) PaidAtCleared() bool {
	_, ok := m.clearedFields[installment.FieldPaidAt]
	return ok
}

// ResetPaidAt resets all changes to the "paid_at" field.
func (m *InstallmentMutation) ResetPaidAt() {
	m.paid_at = nil
	delete(m.clearedFields, installment.FieldPaidAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *InstallmentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InstallmentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Installment entity.
// If the Installment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstallmentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InstallmentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *InstallmentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *InstallmentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Installment entity.
// If the Installment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstallmentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *InstallmentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearDocument clears the "document" edge to the FiscalDocument entity.
func (m *InstallmentMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[installment.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the FiscalDocument entity was cleared.
func (m *InstallmentMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *InstallmentMutation) DocumentIDs() (ids []uuid.UUID) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *InstallmentMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// Where appends a list predicates to the InstallmentMutation builder.
func (m *InstallmentMutation) Where(ps ...predicate.Installment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InstallmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InstallmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Installment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InstallmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InstallmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Installment).
func (m *InstallmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InstallmentMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.document != nil {
		fields = append(fields, installment.FieldDocumentID)
	}
	if m.description != nil {
		fields = append(fields, installment.FieldDescription)
	}
	if m.supplier_name != nil {
		fields = append(fields, installment.FieldSupplierName)
	}
	if m.amount != nil {
		fields = append(fields, installment.FieldAmount)
	}
	if m.due_date != nil {
		fields = append(fields, installment.FieldDueDate)
	}
	if m.status != nil {
		fields = append(fields, installment.FieldStatus)
	}
	if m.category != nil {
		fields = append(fields, installment.FieldCategory)
	}
	if m.paid_at != nil {
		fields = append(fields, installment.FieldPaidAt)
	}
	if m.created_at != nil {
		fields = append(fields, installment.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, installment.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InstallmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case installment.FieldDocumentID:
		return m.DocumentID()
	case installment.FieldDescription:
		return m.Description()
	case installment.FieldSupplierName:
		return m.SupplierName()
	case installment.FieldAmount:
		return m.Amount()
	case installment.FieldDueDate:
		return m.DueDate()
	case installment.FieldStatus:
		return m.Status()
	case installment.FieldCategory:
		return m.Category()
	case installment.FieldPaidAt:
		return m.PaidAt()
	case installment.FieldCreatedAt:
		return m.CreatedAt()
	case installment.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InstallmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case installment.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case installment.FieldDescription:
		return m.OldDescription(ctx)
	case installment.FieldSupplierName:
		return m.OldSupplierName(ctx)
	case installment.FieldAmount:
		return m.OldAmount(ctx)
	case installment.FieldDueDate:
		return m.OldDueDate(ctx)
	case installment.FieldStatus:
		return m.OldStatus(ctx)
	case installment.FieldCategory:
		return m.OldCategory(ctx)
	case installment.FieldPaidAt:
		return m.OldPaidAt(ctx)
	case installment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case installment.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Installment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InstallmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case installment.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case installment.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case installment.FieldSupplierName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupplierName(v)
		return nil
	case installment.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case installment.FieldDueDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDueDate(v)
		return nil
	case installment.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case installment.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case installment.FieldPaidAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaidAt(v)
		return nil
	case installment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case installment.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Installment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InstallmentMutation) AddedFields() []string {
	var fields []string
	if m.addamount != nil {
		fields = append(fields, installment.FieldAmount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InstallmentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case installment.FieldAmount:
		return m.AddedAmount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InstallmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case installment.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmount(v)
		return nil
	}
	return fmt.Errorf("unknown Installment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InstallmentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(installment.FieldSupplierName) {
		fields = append(fields, installment.FieldSupplierName)
	}
	if m.FieldCleared(installment.FieldPaidAt) {
		fields = append(fields, installment.FieldPaidAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InstallmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InstallmentMutation) ClearField(name string) error {
	switch name {
	case installment.FieldSupplierName:
		m.ClearSupplierName()
		return nil
	case installment.FieldPaidAt:
		m.ClearPaidAt()
		return nil
	}
	return fmt.Errorf("unknown Installment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InstallmentMutation) ResetField(name string) error {
	switch name {
	case installment.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case installment.FieldDescription:
		m.ResetDescription()
		return nil
	case installment.FieldSupplierName:
		m.ResetSupplierName()
		return nil
	case installment.FieldAmount:
		m.ResetAmount()
		return nil
	case installment.FieldDueDate:
		m.ResetDueDate()
		return nil
	case installment.FieldStatus:
		m.ResetStatus()
		return nil
	case installment.FieldCategory:
		m.ResetCategory()
		return nil
	case installment.FieldPaidAt:
		m.ResetPaidAt()
		return nil
	case installment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case installment.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Installment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InstallmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.document != nil {
		edges = append(edges, installment.EdgeDocument)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InstallmentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case installment.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InstallmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InstallmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InstallmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddocument {
		edges = append(edges, installment.EdgeDocument)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InstallmentMutation) EdgeCleared(name string) bool {
	switch name {
	case installment.EdgeDocument:
		return m.cleareddocument
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InstallmentMutation) ClearEdge(name string) error {
	switch name {
	case installment.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown Installment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InstallmentMutation) ResetEdge(name string) error {
	switch name {
	case installment.EdgeDocument:
		m.ResetDocument()
		return nil
	}
	return fmt.Errorf("unknown Installment edge %s", name)
}
