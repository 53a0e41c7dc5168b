package constants

// CategoryNFe tags installments derived from uploaded NFe documents, as
// opposed to manually entered payables.
const CategoryNFe = "NFe"

// DefaultDueDateOffsetDays is the calendar-day offset applied to the
// processing date when deriving an installment due date.
const DefaultDueDateOffsetDays = 30
