package nfe

import "testing"

func TestNormalizeAccessKeyPrefix(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"NFe35200714200166000187550010000000046550000046", "35200714200166000187550010000000046550000046"},
		{"35200714", "35200714"}, // no prefix, unchanged
		{"", ""},
	}
	for _, tt := range tests {
		doc := Normalize(&RawFields{AccessKey: tt.in}, nil)
		if doc.AccessKey != tt.want {
			t.Errorf("Normalize accessKey %q = %q, want %q", tt.in, doc.AccessKey, tt.want)
		}
	}
}

func TestNormalizeIssueDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2024-05-01T10:00:00-03:00", "2024-05-01"},
		{"2024-05-01", "2024-05-01"},
		{"", ""}, // empty stays empty, not a parse failure
	}
	for _, tt := range tests {
		doc := Normalize(&RawFields{IssueDate: tt.in}, nil)
		if doc.IssueDate != tt.want {
			t.Errorf("Normalize issueDate %q = %q, want %q", tt.in, doc.IssueDate, tt.want)
		}
	}
}

func TestNormalizeAmounts(t *testing.T) {
	tests := []struct {
		name string
		raw  RawFields
		want float64
	}{
		{"plain decimal", RawFields{Total: "150.75"}, 150.75},
		{"integer", RawFields{Total: "150"}, 150},
		{"missing", RawFields{}, 0},
		{"non-numeric", RawFields{Total: "abc"}, 0},
		{"comma decimal unsupported", RawFields{Total: "150,75"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Normalize(&tt.raw, nil)
			if doc.TotalAmount != tt.want {
				t.Errorf("TotalAmount = %v, want %v", doc.TotalAmount, tt.want)
			}
		})
	}
}

func TestNormalizeRetainsRawContent(t *testing.T) {
	doc := Normalize(&RawFields{}, []byte(sampleNFe))
	if doc.RawContent != sampleNFe {
		t.Error("RawContent not retained verbatim")
	}
}

func TestNormalizeTaxFields(t *testing.T) {
	doc := Normalize(&RawFields{ICMS: "12.34", PIS: "1.10", COFINS: "bogus"}, nil)
	if doc.ICMSAmount != 12.34 || doc.PISAmount != 1.10 || doc.COFINSAmount != 0 {
		t.Errorf("tax amounts = %v/%v/%v", doc.ICMSAmount, doc.PISAmount, doc.COFINSAmount)
	}
}
