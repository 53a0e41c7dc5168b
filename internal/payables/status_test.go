package payables

import (
	"testing"
	"time"

	"github.com/evozago/fluxo-e-dre-sub001/constants"
	"github.com/evozago/fluxo-e-dre-sub001/internal/entity"
)

func TestEffectiveStatus(t *testing.T) {
	today := time.Date(2024, time.June, 15, 13, 45, 0, 0, time.UTC)
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name   string
		status constants.InstallmentStatus
		due    time.Time
		want   constants.InstallmentStatus
	}{
		{"open and not due", constants.StatusOpen, day(2024, time.July, 1), constants.StatusOpen},
		{"open due today", constants.StatusOpen, day(2024, time.June, 15), constants.StatusOpen},
		{"open past due", constants.StatusOpen, day(2024, time.June, 14), constants.StatusOverdue},
		{"paid past due stays paid", constants.StatusPaid, day(2024, time.June, 1), constants.StatusPaid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := &entity.Installment{Status: string(tt.status), DueDate: tt.due}
			if got := EffectiveStatus(in, today); got != tt.want {
				t.Errorf("EffectiveStatus = %q, want %q", got, tt.want)
			}
		})
	}
}
