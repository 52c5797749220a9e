package request_test

import (
	"errors"
	"testing"

	"github.com/appliedlogix/component-requests/internal/request"
)

func TestValidConcordID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"INT-123-456", true},
		{"abc_1_2", true},
		{"XYZ 99 100", true},
		{"A-1-2", true},
		{"abcdef-12-34", true},
		{"Cap_870-99", true}, // mixed separators are fine

		{"", false},
		{"1234-56-78", false},       // no leading letters
		{"toolong7-1-2", false},     // seven letters
		{"INT-123", false},          // missing second group
		{"INT-123-456-789", false},  // trailing extra group
		{"INT--456", false},         // empty digit group
		{"INT-12a-456", false},      // letters in digits
		{"INT:123:456", false},      // wrong separator
		{" INT-123-456", false},     // leading space
		{"INT-123-456 extra", false},
	}

	for _, tt := range tests {
		if got := request.ValidConcordID(tt.id); got != tt.want {
			t.Errorf("ValidConcordID(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	bad := "not-an-id"
	good := "INT-123-456"

	tests := []struct {
		name      string
		mutate    func(*request.ComponentRequest)
		wantField string
	}{
		{
			name:   "valid defaults",
			mutate: func(r *request.ComponentRequest) {},
		},
		{
			name:      "status outside vocabulary",
			mutate:    func(r *request.ComponentRequest) { r.Status = "Done" },
			wantField: "status",
		},
		{
			name:      "request type outside vocabulary",
			mutate:    func(r *request.ComponentRequest) { r.RequestType = "Symbol" },
			wantField: "request_type",
		},
		{
			name:      "librarian outside roster",
			mutate:    func(r *request.ComponentRequest) { r.Librarian = "Nobody" },
			wantField: "librarian",
		},
		{
			name:      "solution outside vocabulary",
			mutate:    func(r *request.ComponentRequest) { r.Solution = "Guesswork" },
			wantField: "solution",
		},
		{
			name:      "malformed concord id",
			mutate:    func(r *request.ComponentRequest) { r.ConcordID = &bad },
			wantField: "concord_id",
		},
		{
			name:      "malformed concord footprint id",
			mutate:    func(r *request.ComponentRequest) { r.ConcordFootprintID = &bad },
			wantField: "concord_footprint_id",
		},
		{
			name:   "well formed concord ids",
			mutate: func(r *request.ComponentRequest) { r.ConcordID = &good; r.ConcordFootprintID = &good },
		},
		{
			name: "empty required text fields are legal",
			mutate: func(r *request.ComponentRequest) {
				r.Requester, r.Project, r.Task, r.ConcordFolder = "", "", "", ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := request.New(request.Params{})
			tt.mutate(r)

			err := r.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("expected valid, got %v", err)
				}
				return
			}

			var verr *request.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("offending field = %q, want %q", verr.Field, tt.wantField)
			}
		})
	}
}
