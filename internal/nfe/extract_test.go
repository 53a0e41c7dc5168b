package nfe

import (
	"errors"
	"testing"
)

const sampleNFe = `<?xml version="1.0" encoding="UTF-8"?>
<nfeProc xmlns="http://www.portalfiscal.inf.br/nfe" versao="4.00">
  <NFe>
    <infNFe Id="NFe35200714200166000187550010000000046550000046" versao="4.00">
      <ide>
        <cUF>35</cUF>
        <nNF>46</nNF>
        <serie>1</serie>
        <dhEmi>2024-05-01T10:00:00-03:00</dhEmi>
      </ide>
      <emit>
        <CNPJ>14200166000187</CNPJ>
        <xNome>ACME Industria Ltda</xNome>
      </emit>
      <dest>
        <CNPJ>11222333000181</CNPJ>
        <xNome>Evozago Comercio</xNome>
      </dest>
      <total>
        <ICMSTot>
          <vICMS>12.34</vICMS>
          <vPIS>1.10</vPIS>
          <vCOFINS>5.06</vCOFINS>
          <vNF>150.75</vNF>
        </ICMSTot>
      </total>
    </infNFe>
  </NFe>
</nfeProc>`

const sampleNFeNoDest = `<NFe>
  <infNFe Id="NFe35200714200166000187550010000000046550000046">
    <ide><nNF>46</nNF><serie>1</serie><dhEmi>2024-05-01T10:00:00-03:00</dhEmi></ide>
    <emit><CNPJ>14200166000187</CNPJ><xNome>ACME Industria Ltda</xNome></emit>
    <total><ICMSTot><vNF>150.75</vNF></ICMSTot></total>
  </infNFe>
</NFe>`

func TestExtract(t *testing.T) {
	raw, err := Extract([]byte(sampleNFe))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if raw.AccessKey != "NFe35200714200166000187550010000000046550000046" {
		t.Errorf("AccessKey = %q", raw.AccessKey)
	}
	if raw.Number != "46" || raw.Series != "1" {
		t.Errorf("Number/Series = %q/%q, want 46/1", raw.Number, raw.Series)
	}
	if raw.IssueDate != "2024-05-01T10:00:00-03:00" {
		t.Errorf("IssueDate = %q", raw.IssueDate)
	}
	if raw.IssuerTaxID != "14200166000187" || raw.IssuerName != "ACME Industria Ltda" {
		t.Errorf("issuer = %q/%q", raw.IssuerTaxID, raw.IssuerName)
	}
	if raw.RecipientTaxID != "11222333000181" || raw.RecipientName != "Evozago Comercio" {
		t.Errorf("recipient = %q/%q", raw.RecipientTaxID, raw.RecipientName)
	}
	if raw.Total != "150.75" || raw.ICMS != "12.34" || raw.PIS != "1.10" || raw.COFINS != "5.06" {
		t.Errorf("amounts = %q/%q/%q/%q", raw.Total, raw.ICMS, raw.PIS, raw.COFINS)
	}
}

func TestExtractMissingRecipientIsLenient(t *testing.T) {
	raw, err := Extract([]byte(sampleNFeNoDest))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if raw.RecipientTaxID != "" || raw.RecipientName != "" {
		t.Errorf("recipient fields = %q/%q, want empty", raw.RecipientTaxID, raw.RecipientName)
	}
}

func TestExtractMissingRequiredBlocks(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"no infNFe", `<NFe><other/></NFe>`},
		{"no ide", `<NFe><infNFe Id="NFe1"><emit><xNome>A</xNome></emit><total/></infNFe></NFe>`},
		{"no emit", `<NFe><infNFe Id="NFe1"><ide><nNF>1</nNF></ide><total/></infNFe></NFe>`},
		{"no total", `<NFe><infNFe Id="NFe1"><ide><nNF>1</nNF></ide><emit><xNome>A</xNome></emit></infNFe></NFe>`},
		{"not xml at all", `;;;`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Extract([]byte(tt.payload))
			if !errors.Is(err, ErrMalformedDocument) {
				t.Fatalf("Extract(%s) error = %v, want ErrMalformedDocument", tt.name, err)
			}
		})
	}
}

func TestExtractOptionalFieldsDefaultEmpty(t *testing.T) {
	payload := `<NFe><infNFe><ide/><emit/><total/></infNFe></NFe>`
	raw, err := Extract([]byte(payload))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if raw.AccessKey != "" || raw.Number != "" || raw.Series != "" || raw.IssueDate != "" {
		t.Errorf("identification fields not empty: %+v", raw)
	}
	if raw.IssuerTaxID != "" || raw.IssuerName != "" {
		t.Errorf("issuer fields not empty: %+v", raw)
	}
	if raw.Total != "" || raw.ICMS != "" {
		t.Errorf("amount fields not empty: %+v", raw)
	}
}

func TestExtractIssuerCPFFallback(t *testing.T) {
	payload := `<NFe><infNFe Id="NFe1">
	  <ide><nNF>9</nNF></ide>
	  <emit><CPF>12345678901</CPF><xNome>Fulano</xNome></emit>
	  <total><ICMSTot><vNF>10.00</vNF></ICMSTot></total>
	</infNFe></NFe>`
	raw, err := Extract([]byte(payload))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if raw.IssuerTaxID != "12345678901" {
		t.Errorf("IssuerTaxID = %q, want CPF fallback", raw.IssuerTaxID)
	}
}
