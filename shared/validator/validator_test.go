package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"worktrack/shared/failure"
	"worktrack/shared/validator"
)

type createPayload struct {
	Text    string `json:"text" validate:"required,max=255"`
	Date    string `json:"date" validate:"required,datestr"`
	EndDate string `json:"endDate" validate:"required,datestr"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name: "valid payload",
			body: `{"text":"walk the dog","date":"2026-08-27","endDate":"2026-08-28"}`,
		},
		{
			name: "RFC 3339 dates are accepted",
			body: `{"text":"walk the dog","date":"2026-08-27T00:00:00Z","endDate":"2026-08-28T10:30:00+07:00"}`,
		},
		{
			name:    "missing text",
			body:    `{"date":"2026-08-27","endDate":"2026-08-28"}`,
			wantErr: true,
		},
		{
			name:    "missing dates",
			body:    `{"text":"walk the dog"}`,
			wantErr: true,
		},
		{
			name:    "garbled date",
			body:    `{"text":"walk the dog","date":"someday","endDate":"2026-08-28"}`,
			wantErr: true,
		},
		{
			name:    "wrong date separator",
			body:    `{"text":"walk the dog","date":"27/08/2026","endDate":"2026-08-28"}`,
			wantErr: true,
		},
		{
			name:    "malformed JSON",
			body:    `{"text":`,
			wantErr: true,
		},
		{
			name:    "text over the limit",
			body:    `{"text":"` + strings.Repeat("x", 256) + `","date":"2026-08-27","endDate":"2026-08-28"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := createPayload{}
			err := validator.Validate(strings.NewReader(tt.body), &payload)

			if !tt.wantErr {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}

				return
			}

			if err == nil {
				t.Fatal("expected an error, got nil")
			}

			if code := failure.GetCode(err); code != http.StatusBadRequest {
				t.Errorf("expected code %d, got %d", http.StatusBadRequest, code)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("2026-08-27", "datestr"); err != nil {
		t.Errorf("expected plain date to pass, got %v", err)
	}

	if err := validator.ValidateVar("not a date", "datestr"); err == nil {
		t.Error("expected free-form text to fail")
	}
}
