// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/evozago/fluxo-e-dre-sub001/db/ent/schema"
	"github.com/evozago/fluxo-e-dre-sub001/gen/ent/fiscaldocument"
	"github.com/evozago/fluxo-e-dre-sub001/gen/ent/installment"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	fiscaldocumentFields := schema.FiscalDocument{}.Fields()
	_ = fiscaldocumentFields
	// fiscaldocumentDescCreatedAt is the schema descriptor for created_at field.
	fiscaldocumentDescCreatedAt := fiscaldocumentFields[14].Descriptor()
	// fiscaldocument.DefaultCreatedAt holds the default value on creation for the created_at field.
	fiscaldocument.DefaultCreatedAt = fiscaldocumentDescCreatedAt.Default.(func() time.Time)
	// fiscaldocumentDescUpdatedAt is the schema descriptor for updated_at field.
	fiscaldocumentDescUpdatedAt := fiscaldocumentFields[15].Descriptor()
	// fiscaldocument.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	fiscaldocument.DefaultUpdatedAt = fiscaldocumentDescUpdatedAt.Default.(func() time.Time)
	// fiscaldocument.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	fiscaldocument.UpdateDefaultUpdatedAt = fiscaldocumentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// fiscaldocumentDescID is the schema descriptor for id field.
	fiscaldocumentDescID := fiscaldocumentFields[0].Descriptor()
	// fiscaldocument.DefaultID holds the default value on creation for the id field.
	fiscaldocument.DefaultID = fiscaldocumentDescID.Default.(func() uuid.UUID)
	installmentFields := schema.Installment{}.Fields()
	_ = installmentFields
	// installmentDescDescription is the schema descriptor for description field.
	installmentDescDescription := installmentFields[2].Descriptor()
	// installment.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	installment.DescriptionValidator = installmentDescDescription.Validators[0].(func(string) error)
	// installmentDescStatus is the schema descriptor for status field.
	installmentDescStatus := installmentFields[6].Descriptor()
	// installment.DefaultStatus holds the default value on creation for the status field.
	installment.DefaultStatus = installmentDescStatus.Default.(string)
	// installment.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	installment.StatusValidator = installmentDescStatus.Validators[0].(func(string) error)
	// installmentDescCategory is the schema descriptor for category field.
	installmentDescCategory := installmentFields[7].Descriptor()
	// installment.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	installment.CategoryValidator = installmentDescCategory.Validators[0].(func(string) error)
	// installmentDescCreatedAt is the schema descriptor for created_at field.
	installmentDescCreatedAt := installmentFields[9].Descriptor()
	// installment.DefaultCreatedAt holds the default value on creation for the created_at field.
	installment.DefaultCreatedAt = installmentDescCreatedAt.Default.(func() time.Time)
	// installmentDescUpdatedAt is the schema descriptor for updated_at field.
	installmentDescUpdatedAt := installmentFields[10].Descriptor()
	// installment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	installment.DefaultUpdatedAt = installmentDescUpdatedAt.Default.(func() time.Time)
	// installment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	installment.UpdateDefaultUpdatedAt = installmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// installmentDescID is the schema descriptor for id field.
	installmentDescID := installmentFields[0].Descriptor()
	// installment.DefaultID holds the default value on creation for the id field.
	installment.DefaultID = installmentDescID.Default.(func() uuid.UUID)
}
