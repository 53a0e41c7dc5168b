// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// FiscalDocument is the predicate function for fiscaldocument builders.
type FiscalDocument func(*sql.Selector)

// Installment is the predicate function for installment builders.
type Installment func(*sql.Selector)
