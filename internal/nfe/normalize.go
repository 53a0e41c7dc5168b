package nfe

import (
	"strconv"
	"strings"

	"github.com/evozago/fluxo-e-dre-sub001/internal/entity"
)

// accessKeyPrefix is the literal prepended to the access key in the infNFe Id
// attribute ("NFe" + 44-digit key).
const accessKeyPrefix = "NFe"

// Normalize converts raw extracted fields into a canonical FiscalDocument.
//
// It never fails: the extractor already guaranteed structural validity, and
// absence of optional data degrades to defaults (empty strings, zero amounts).
func Normalize(raw *RawFields, rawContent []byte) *entity.FiscalDocument {
	return &entity.FiscalDocument{
		AccessKey:      strings.TrimPrefix(raw.AccessKey, accessKeyPrefix),
		Number:         raw.Number,
		Series:         raw.Series,
		IssueDate:      truncateDate(raw.IssueDate),
		IssuerTaxID:    raw.IssuerTaxID,
		IssuerName:     raw.IssuerName,
		RecipientTaxID: raw.RecipientTaxID,
		RecipientName:  raw.RecipientName,
		TotalAmount:    parseAmount(raw.Total),
		ICMSAmount:     parseAmount(raw.ICMS),
		PISAmount:      parseAmount(raw.PIS),
		COFINSAmount:   parseAmount(raw.COFINS),
		RawContent:     string(rawContent),
	}
}

// truncateDate keeps the date portion of an NFe emission timestamp
// ("2024-05-01T10:00:00-03:00" -> "2024-05-01"). Empty stays empty.
func truncateDate(s string) string {
	date, _, _ := strings.Cut(s, "T")
	return date
}

// parseAmount parses a decimal-point monetary string, substituting 0 for
// absent or unparsable values.
func parseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}
