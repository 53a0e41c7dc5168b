package ingest

import "testing"

func TestUploadSchemaValidation(t *testing.T) {
	schema := BuildUploadJSONSchema()

	tests := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{"valid single file", `{"files":[{"filename":"a.xml","content":"PE5GZT4="}]}`, false},
		{"valid multiple files", `{"files":[{"filename":"a.xml","content":"eA=="},{"filename":"b.xml","content":"eQ=="}]}`, false},
		{"empty files array", `{"files":[]}`, true},
		{"missing files", `{}`, true},
		{"missing filename", `{"files":[{"content":"eA=="}]}`, true},
		{"missing content", `{"files":[{"filename":"a.xml"}]}`, true},
		{"empty filename", `{"files":[{"filename":"","content":"eA=="}]}`, true},
		{"unknown property", `{"files":[{"filename":"a.xml","content":"eA==","extra":1}]}`, true},
		{"not json", `not json`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateJSONAgainstSchema(schema, []byte(tt.payload))
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateJSONAgainstSchema = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
