package ingest

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/evozago/fluxo-e-dre-sub001/internal/entity"
	"github.com/evozago/fluxo-e-dre-sub001/internal/payables"
)

const wellFormed = `<NFe>
  <infNFe Id="NFe35200714200166000187550010000000046550000046">
    <ide><nNF>46</nNF><serie>1</serie><dhEmi>2024-05-01T10:00:00-03:00</dhEmi></ide>
    <emit><CNPJ>14200166000187</CNPJ><xNome>ACME Industria Ltda</xNome></emit>
    <total><ICMSTot><vNF>150.75</vNF></ICMSTot></total>
  </infNFe>
</NFe>`

const missingIssuer = `<NFe>
  <infNFe Id="NFe1">
    <ide><nNF>1</nNF></ide>
    <total><ICMSTot><vNF>10.00</vNF></ICMSTot></total>
  </infNFe>
</NFe>`

type fakeDocStore struct {
	mu         sync.Mutex
	created    []*entity.FiscalDocument
	createErr  error
	existing   map[string]bool
	existsErr  error
	existCalls int
}

func (f *fakeDocStore) Create(_ context.Context, doc *entity.FiscalDocument) (*entity.FiscalDocument, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	out := *doc
	out.ID = uuid.New()
	f.created = append(f.created, &out)
	return &out, nil
}

func (f *fakeDocStore) ExistsByAccessKey(_ context.Context, key string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.existCalls++
	if f.existsErr != nil {
		return false, f.existsErr
	}
	return f.existing[key], nil
}

type fakeInstStore struct {
	mu        sync.Mutex
	created   []*entity.Installment
	createErr error
}

func (f *fakeInstStore) Create(_ context.Context, in *entity.Installment) (*entity.Installment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	out := *in
	out.ID = uuid.New()
	f.created = append(f.created, &out)
	return &out, nil
}

func newTestService(docs *fakeDocStore, insts *fakeInstStore, cfg Config) *Service {
	deriver := payables.NewDeriver(nil, func() time.Time {
		return time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	})
	return NewService(docs, insts, deriver, cfg, nil)
}

func TestProcessBatchPartialFailure(t *testing.T) {
	docs := &fakeDocStore{}
	insts := &fakeInstStore{}
	s := newTestService(docs, insts, Config{})

	res := s.ProcessBatch(context.Background(), []Upload{
		{Filename: "a.xml", Content: []byte(wellFormed)},
		{Filename: "b.xml", Content: []byte(missingIssuer)},
		{Filename: "c.xml", Content: []byte(wellFormed)},
	})

	if res.ProcessedCount != 2 || res.ErrorCount != 1 {
		t.Fatalf("counts = %d/%d, want 2/1", res.ProcessedCount, res.ErrorCount)
	}
	if !res.Success {
		t.Error("batch with one success must report success")
	}
	if len(res.Errors) != 1 || res.Errors[0].Source != "b.xml" {
		t.Fatalf("errors = %+v, want single entry for b.xml", res.Errors)
	}
	if !strings.Contains(res.Errors[0].Message, "invalid document structure") {
		t.Errorf("error message = %q", res.Errors[0].Message)
	}
	if len(docs.created) != 2 || len(insts.created) != 2 {
		t.Errorf("persisted %d docs / %d installments, want 2/2", len(docs.created), len(insts.created))
	}
	if len(res.DocumentIDs) != 2 {
		t.Errorf("DocumentIDs = %v", res.DocumentIDs)
	}
}

func TestProcessBatchMalformedSkipsPersistence(t *testing.T) {
	docs := &fakeDocStore{}
	insts := &fakeInstStore{}
	s := newTestService(docs, insts, Config{})

	res := s.ProcessBatch(context.Background(), []Upload{
		{Filename: "bad.xml", Content: []byte(missingIssuer)},
	})

	if res.Success || res.ProcessedCount != 0 || res.ErrorCount != 1 {
		t.Fatalf("result = %+v", res)
	}
	if len(docs.created) != 0 || len(insts.created) != 0 {
		t.Error("malformed document must not reach the store")
	}
}

func TestProcessBatchDocumentInsertFailure(t *testing.T) {
	docs := &fakeDocStore{createErr: errors.New("connection refused")}
	insts := &fakeInstStore{}
	s := newTestService(docs, insts, Config{})

	res := s.ProcessBatch(context.Background(), []Upload{
		{Filename: "a.xml", Content: []byte(wellFormed)},
	})

	if res.Success {
		t.Error("batch with zero successes must report failure")
	}
	if res.ProcessedCount != 0 || res.ErrorCount != 1 {
		t.Fatalf("counts = %d/%d, want 0/1", res.ProcessedCount, res.ErrorCount)
	}
	if len(insts.created) != 0 {
		t.Error("installment insert must not be attempted after document failure")
	}
}

func TestProcessBatchInstallmentFailureKeepsDocument(t *testing.T) {
	docs := &fakeDocStore{}
	insts := &fakeInstStore{createErr: errors.New("constraint violation")}
	s := newTestService(docs, insts, Config{})

	res := s.ProcessBatch(context.Background(), []Upload{
		{Filename: "a.xml", Content: []byte(wellFormed)},
	})

	if res.ProcessedCount != 0 || res.ErrorCount != 1 {
		t.Fatalf("counts = %d/%d, want 0/1", res.ProcessedCount, res.ErrorCount)
	}
	// no compensating rollback: the document row stays and its id is exposed
	if len(docs.created) != 1 {
		t.Fatal("document must remain persisted")
	}
	if len(res.DocumentIDs) != 1 || res.DocumentIDs[0] != docs.created[0].ID.String() {
		t.Errorf("DocumentIDs = %v", res.DocumentIDs)
	}
}

func TestProcessBatchNoDeduplication(t *testing.T) {
	docs := &fakeDocStore{}
	insts := &fakeInstStore{}
	s := newTestService(docs, insts, Config{})

	res := s.ProcessBatch(context.Background(), []Upload{
		{Filename: "a.xml", Content: []byte(wellFormed)},
		{Filename: "a-again.xml", Content: []byte(wellFormed)},
	})

	if res.ProcessedCount != 2 {
		t.Fatalf("ProcessedCount = %d, want 2", res.ProcessedCount)
	}
	if len(docs.created) != 2 || len(insts.created) != 2 {
		t.Fatalf("persisted %d docs / %d installments, want duplicates", len(docs.created), len(insts.created))
	}
	if docs.created[0].ID == docs.created[1].ID {
		t.Error("resubmission must create a distinct document record")
	}
	if docs.existCalls != 0 {
		t.Error("no access-key lookup when uniqueness is not enforced")
	}
}

func TestProcessBatchEnforceUniqueAccessKey(t *testing.T) {
	docs := &fakeDocStore{existing: map[string]bool{
		"35200714200166000187550010000000046550000046": true,
	}}
	insts := &fakeInstStore{}
	s := newTestService(docs, insts, Config{EnforceUniqueAccessKey: true})

	res := s.ProcessBatch(context.Background(), []Upload{
		{Filename: "a.xml", Content: []byte(wellFormed)},
	})

	if res.Success || res.ErrorCount != 1 {
		t.Fatalf("result = %+v", res)
	}
	if !strings.Contains(res.Errors[0].Message, "already exists") {
		t.Errorf("error message = %q", res.Errors[0].Message)
	}
	if len(docs.created) != 0 {
		t.Error("duplicate must not be inserted when uniqueness is enforced")
	}
}

func TestProcessBatchReadError(t *testing.T) {
	docs := &fakeDocStore{}
	insts := &fakeInstStore{}
	s := newTestService(docs, insts, Config{})

	res := s.ProcessBatch(context.Background(), []Upload{
		{Filename: "broken.xml", ReadErr: errors.New("short read")},
		{Filename: "ok.xml", Content: []byte(wellFormed)},
	})

	if res.ProcessedCount != 1 || res.ErrorCount != 1 {
		t.Fatalf("counts = %d/%d, want 1/1", res.ProcessedCount, res.ErrorCount)
	}
	if res.Errors[0].Source != "broken.xml" {
		t.Errorf("errors = %+v", res.Errors)
	}
}

func TestProcessBatchParallel(t *testing.T) {
	docs := &fakeDocStore{}
	insts := &fakeInstStore{}
	s := newTestService(docs, insts, Config{MaxParallel: 4})

	uploads := make([]Upload, 0, 8)
	wantErrs := map[string]bool{}
	for i := 0; i < 8; i++ {
		name := string(rune('a'+i)) + ".xml"
		content := wellFormed
		if i%3 == 0 {
			content = missingIssuer
			wantErrs[name] = true
		}
		uploads = append(uploads, Upload{Filename: name, Content: []byte(content)})
	}

	res := s.ProcessBatch(context.Background(), uploads)

	if int(res.ProcessedCount)+int(res.ErrorCount) != len(uploads) {
		t.Fatalf("counts %d+%d don't cover %d uploads", res.ProcessedCount, res.ErrorCount, len(uploads))
	}
	if int(res.ErrorCount) != len(wantErrs) {
		t.Fatalf("ErrorCount = %d, want %d", res.ErrorCount, len(wantErrs))
	}
	// order may vary under parallelism; compare as a set
	for _, e := range res.Errors {
		if !wantErrs[e.Source] {
			t.Errorf("unexpected error entry %+v", e)
		}
	}
	if len(docs.created) != int(res.ProcessedCount) || len(insts.created) != int(res.ProcessedCount) {
		t.Errorf("persisted %d/%d, want %d", len(docs.created), len(insts.created), res.ProcessedCount)
	}
}

func TestProcessBatchDerivedInstallment(t *testing.T) {
	docs := &fakeDocStore{}
	insts := &fakeInstStore{}
	s := newTestService(docs, insts, Config{})

	s.ProcessBatch(context.Background(), []Upload{
		{Filename: "a.xml", Content: []byte(wellFormed)},
	})

	if len(insts.created) != 1 {
		t.Fatal("expected one installment")
	}
	in := insts.created[0]
	if in.Description != "NFe 46 - ACME Industria Ltda" {
		t.Errorf("Description = %q", in.Description)
	}
	if in.Amount != 150.75 {
		t.Errorf("Amount = %v", in.Amount)
	}
	want := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)
	if !in.DueDate.Equal(want) {
		t.Errorf("DueDate = %v, want %v", in.DueDate, want)
	}
	if in.DocumentID != docs.created[0].ID {
		t.Error("installment must reference the created document")
	}
}
