package constants

// InstallmentStatus is the canonical status for rows in installments.
type InstallmentStatus string

// Stable values (store these exact strings in DB).
const (
	StatusOpen InstallmentStatus = "OPEN" // awaiting payment
	StatusPaid InstallmentStatus = "PAID" // settled

	// StatusOverdue is derived at read time (OPEN past its due date);
	// it is never written to the database.
	StatusOverdue InstallmentStatus = "OVERDUE"
)

// ParseStatus maps a wire string to a known status.
func ParseStatus(s string) (InstallmentStatus, bool) {
	switch InstallmentStatus(s) {
	case StatusOpen, StatusPaid, StatusOverdue:
		return InstallmentStatus(s), true
	}
	return "", false
}
