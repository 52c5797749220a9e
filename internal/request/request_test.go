package request_test

import (
	"testing"
	"time"

	"github.com/appliedlogix/component-requests/internal/request"
)

func TestNew_Defaults(t *testing.T) {
	before := time.Now().UTC()
	r := request.New(request.Params{})
	after := time.Now().UTC()

	if r.Status != request.StatusNew {
		t.Errorf("default status = %q, want %q", r.Status, request.StatusNew)
	}
	if r.RequestType != request.TypeComponentFull {
		t.Errorf("default request type = %q, want %q", r.RequestType, request.TypeComponentFull)
	}
	if r.Librarian != request.LibrarianRaymondGlover {
		t.Errorf("default librarian = %q, want %q", r.Librarian, request.LibrarianRaymondGlover)
	}
	if r.Solution != request.SolutionExisting {
		t.Errorf("default solution = %q, want %q", r.Solution, request.SolutionExisting)
	}
	if r.RequestDate.Before(before) || r.RequestDate.After(after) {
		t.Errorf("default request date %v not in [%v, %v]", r.RequestDate, before, after)
	}
	if r.Requester != "" || r.Project != "" || r.Task != "" || r.ConcordFolder != "" {
		t.Errorf("required text fields should default to empty strings")
	}
	if r.ConcordID != nil || r.Manufacturer != nil || r.PartNumber != nil ||
		r.ManufacturerLink != nil || r.ConcordFootprintID != nil || r.FootprintName != nil {
		t.Errorf("optional fields should default to absent")
	}
	if !r.ID.IsZero() {
		t.Errorf("identifier must be unset until the store assigns one")
	}
}

func TestNew_KeepsSuppliedValues(t *testing.T) {
	date := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	r := request.New(request.Params{
		Requester:   "Jo Engineer",
		RequestDate: date,
		Status:      request.StatusQC,
		RequestType: request.TypeFootprintOnly,
		Librarian:   request.LibrarianMarkHouck,
		Solution:    request.SolutionManufacturerSpec,
	})

	if r.Requester != "Jo Engineer" {
		t.Errorf("requester = %q", r.Requester)
	}
	if !r.RequestDate.Equal(date) {
		t.Errorf("request date = %v, want %v", r.RequestDate, date)
	}
	if r.Status != request.StatusQC || r.RequestType != request.TypeFootprintOnly ||
		r.Librarian != request.LibrarianMarkHouck || r.Solution != request.SolutionManufacturerSpec {
		t.Errorf("supplied enum values must not be replaced by defaults")
	}
}

func TestSample_CanonicalRecord(t *testing.T) {
	r := request.Sample()

	if err := r.Validate(); err != nil {
		t.Fatalf("sample record must validate, got %v", err)
	}
	if r.Requester != "Max Ludden" {
		t.Errorf("requester = %q", r.Requester)
	}
	if r.Status != request.StatusNew || r.RequestType != request.TypeComponentFull {
		t.Errorf("status/type = %q/%q", r.Status, r.RequestType)
	}
	if r.Librarian != request.LibrarianMaxLudden {
		t.Errorf("librarian = %q", r.Librarian)
	}
	if r.Project != "[INT] Internal" || r.Task != "Training" {
		t.Errorf("project/task = %q/%q", r.Project, r.Task)
	}
	if r.ConcordID == nil || *r.ConcordID != "INT-123-456" {
		t.Errorf("concord_id = %v", r.ConcordID)
	}
	if r.ConcordFolder != "Capacitor" {
		t.Errorf("concord_folder = %q", r.ConcordFolder)
	}
	if r.Manufacturer == nil || *r.Manufacturer != "Murata" {
		t.Errorf("manufacturer = %v", r.Manufacturer)
	}
	if r.PartNumber == nil || *r.PartNumber != "GRM155R71H103KA01D" {
		t.Errorf("part_number = %v", r.PartNumber)
	}
	if r.Solution != request.SolutionCopiedFrom {
		t.Errorf("solution = %q", r.Solution)
	}
	if r.ConcordFootprintID == nil || *r.ConcordFootprintID != "INT-123-456" {
		t.Errorf("concord_footprint_id = %v", r.ConcordFootprintID)
	}
	if r.FootprintName == nil || *r.FootprintName != "0805_h1.5_n" {
		t.Errorf("footprint_name = %v", r.FootprintName)
	}
}

func TestEnums_ClosedSets(t *testing.T) {
	for _, s := range request.Statuses() {
		if !s.Valid() {
			t.Errorf("status %q should be valid", s)
		}
	}
	for _, v := range request.Types() {
		if !v.Valid() {
			t.Errorf("request type %q should be valid", v)
		}
	}
	for _, l := range request.Librarians() {
		if !l.Valid() {
			t.Errorf("librarian %q should be valid", l)
		}
	}
	for _, v := range request.Solutions() {
		if !v.Valid() {
			t.Errorf("solution %q should be valid", v)
		}
	}

	if request.Status("Done").Valid() {
		t.Error("free-text status must be invalid")
	}
	if request.Type("Symbol").Valid() {
		t.Error("free-text request type must be invalid")
	}
	if request.Librarian("Nobody").Valid() {
		t.Error("unknown librarian must be invalid")
	}
	if request.Solution("Guesswork").Valid() {
		t.Error("unknown solution must be invalid")
	}
}
