package payables

import (
	"time"

	"github.com/evozago/fluxo-e-dre-sub001/constants"
	"github.com/evozago/fluxo-e-dre-sub001/internal/entity"
)

// EffectiveStatus resolves the dashboard status of an installment: an OPEN
// installment past its due date reads as OVERDUE. today is truncated to
// date precision before comparing.
func EffectiveStatus(in *entity.Installment, today time.Time) constants.InstallmentStatus {
	st := constants.InstallmentStatus(in.Status)
	if st != constants.StatusOpen {
		return st
	}
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	due := time.Date(in.DueDate.Year(), in.DueDate.Month(), in.DueDate.Day(), 0, 0, 0, 0, time.UTC)
	if due.Before(day) {
		return constants.StatusOverdue
	}
	return constants.StatusOpen
}
