package server

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/evozago/fluxo-e-dre-sub001/internal/entity"
	"github.com/evozago/fluxo-e-dre-sub001/internal/ingest"
	"github.com/evozago/fluxo-e-dre-sub001/internal/payables"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const testNFe = `<NFe>
  <infNFe Id="NFe35200714200166000187550010000000046550000046">
    <ide><nNF>46</nNF><serie>1</serie><dhEmi>2024-05-01T10:00:00-03:00</dhEmi></ide>
    <emit><CNPJ>14200166000187</CNPJ><xNome>ACME Industria Ltda</xNome></emit>
    <total><ICMSTot><vNF>150.75</vNF></ICMSTot></total>
  </infNFe>
</NFe>`

type memDocStore struct {
	created []*entity.FiscalDocument
}

func (m *memDocStore) Create(_ context.Context, doc *entity.FiscalDocument) (*entity.FiscalDocument, error) {
	out := *doc
	out.ID = uuid.New()
	m.created = append(m.created, &out)
	return &out, nil
}

func (m *memDocStore) ExistsByAccessKey(context.Context, string) (bool, error) {
	return false, nil
}

type memInstStore struct {
	created []*entity.Installment
}

func (m *memInstStore) Create(_ context.Context, in *entity.Installment) (*entity.Installment, error) {
	out := *in
	out.ID = uuid.New()
	m.created = append(m.created, &out)
	return &out, nil
}

func newTestHandler() (*UploadHandler, *memDocStore, *memInstStore) {
	docs := &memDocStore{}
	insts := &memInstStore{}
	deriver := payables.NewDeriver(nil, time.Now)
	orch := ingest.NewService(docs, insts, deriver, ingest.Config{}, nil)
	return NewUploadHandler(orch, testLogger()), docs, insts
}

func TestUploadEndpoint(t *testing.T) {
	h, docs, insts := newTestHandler()
	srv := httptest.NewServer(h.Router())
	defer srv.Close()

	body := `{"files":[{"filename":"a.xml","content":"` + base64.StdEncoding.EncodeToString([]byte(testNFe)) + `"}]}`
	resp, err := http.Post(srv.URL+"/api/v1/documents/upload", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var res ingest.BatchResult
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		t.Fatal(err)
	}
	if !res.Success || res.ProcessedCount != 1 || res.ErrorCount != 0 {
		t.Fatalf("result = %+v", res)
	}
	if len(docs.created) != 1 || len(insts.created) != 1 {
		t.Errorf("persisted %d docs / %d installments", len(docs.created), len(insts.created))
	}
}

func TestUploadEndpointRejectsBadManifest(t *testing.T) {
	h, docs, _ := newTestHandler()
	srv := httptest.NewServer(h.Router())
	defer srv.Close()

	tests := []struct {
		name string
		body string
	}{
		{"empty files", `{"files":[]}`},
		{"missing content", `{"files":[{"filename":"a.xml"}]}`},
		{"not json", `garbage`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(srv.URL+"/api/v1/documents/upload", "application/json", strings.NewReader(tt.body))
			if err != nil {
				t.Fatal(err)
			}
			resp.Body.Close()
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
		})
	}
	if len(docs.created) != 0 {
		t.Error("rejected manifests must not persist anything")
	}
}

func TestUploadEndpointBadBase64IsPerFile(t *testing.T) {
	h, _, _ := newTestHandler()
	srv := httptest.NewServer(h.Router())
	defer srv.Close()

	good := base64.StdEncoding.EncodeToString([]byte(testNFe))
	body := `{"files":[{"filename":"ok.xml","content":"` + good + `"},{"filename":"bad.xml","content":"%%%not-base64%%%"}]}`
	resp, err := http.Post(srv.URL+"/api/v1/documents/upload", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var res ingest.BatchResult
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		t.Fatal(err)
	}
	if res.ProcessedCount != 1 || res.ErrorCount != 1 {
		t.Fatalf("result = %+v", res)
	}
	if len(res.Errors) != 1 || res.Errors[0].Source != "bad.xml" {
		t.Errorf("errors = %+v", res.Errors)
	}
}

func TestHealthz(t *testing.T) {
	h, _, _ := newTestHandler()
	srv := httptest.NewServer(h.Router())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
}
