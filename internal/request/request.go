package request

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Status represents the lifecycle status of a component request.
type Status string

const (
	StatusNew            Status = "New"
	StatusInProgress     Status = "In Progress"
	StatusNeedsFootprint Status = "Needs Footprint"
	StatusQC             Status = "QC"
	StatusComplete       Status = "Complete"
	StatusRejected       Status = "Rejected"
	StatusRemoved        Status = "Removed"
	// StatusDelete is an administrative marker only. Setting it does not
	// remove the document; only Repository.Delete removes documents.
	StatusDelete Status = "Delete"
)

// Type represents the kind of library entry being requested.
type Type string

const (
	TypeComponentFull      Type = "Component Full"
	TypeSymbolOnly         Type = "Symbol Only"
	TypeComponentFootprint Type = "Component Footprint"
	TypeFootprintOnly      Type = "Footprint Only"
)

// Librarian identifies the person responsible for fulfilling a request.
// The roster is fixed; values outside it are rejected on write.
type Librarian string

const (
	LibrarianRaymondGlover Librarian = "Raymond Glover"
	LibrarianReneBrown     Librarian = "René Brown"
	LibrarianMarkHouck     Librarian = "Mark Houck"
	LibrarianPaulShaver    Librarian = "Paul Shaver"
	LibrarianMaxLudden     Librarian = "Max Ludden"
)

// Solution represents the method by which a footprint or symbol was produced.
type Solution string

const (
	SolutionFootprintExpertBuild    Solution = "Footprint Expert Build"
	SolutionFootprintExpertDownload Solution = "Footprint Expert Download"
	SolutionExisting                Solution = "Existing"
	SolutionManufacturerSpec        Solution = "Manufacturer Specification"
	SolutionCopiedFrom              Solution = "Copied From"
)

var statusValues = []Status{
	StatusNew, StatusInProgress, StatusNeedsFootprint, StatusQC,
	StatusComplete, StatusRejected, StatusRemoved, StatusDelete,
}

var typeValues = []Type{
	TypeComponentFull, TypeSymbolOnly, TypeComponentFootprint, TypeFootprintOnly,
}

var librarianValues = []Librarian{
	LibrarianRaymondGlover, LibrarianReneBrown, LibrarianMarkHouck,
	LibrarianPaulShaver, LibrarianMaxLudden,
}

var solutionValues = []Solution{
	SolutionFootprintExpertBuild, SolutionFootprintExpertDownload,
	SolutionExisting, SolutionManufacturerSpec, SolutionCopiedFrom,
}

// Valid reports whether s is one of the closed set of statuses.
func (s Status) Valid() bool {
	for _, v := range statusValues {
		if s == v {
			return true
		}
	}
	return false
}

func (t Type) Valid() bool {
	for _, v := range typeValues {
		if t == v {
			return true
		}
	}
	return false
}

func (l Librarian) Valid() bool {
	for _, v := range librarianValues {
		if l == v {
			return true
		}
	}
	return false
}

func (s Solution) Valid() bool {
	for _, v := range solutionValues {
		if s == v {
			return true
		}
	}
	return false
}

// Statuses returns every status label, for CLI help text and prompts.
func Statuses() []Status { return append([]Status(nil), statusValues...) }

// Types returns every request type label.
func Types() []Type { return append([]Type(nil), typeValues...) }

// Librarians returns the full librarian roster.
func Librarians() []Librarian { return append([]Librarian(nil), librarianValues...) }

// Solutions returns every solution label.
func Solutions() []Solution { return append([]Solution(nil), solutionValues...) }

// ComponentRequest is a single tracked request for a component library entry.
//
// ID is assigned by the store on insert and never changes. Enum fields are
// persisted as their string labels. Optional fields are pointers so that an
// absent value is distinct from an empty string; required text fields accept
// the empty string as a legal unset value.
type ComponentRequest struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Requester          string             `bson:"requester" json:"requester"`
	RequestDate        time.Time          `bson:"request_date" json:"request_date"`
	Status             Status             `bson:"status" json:"status"`
	RequestType        Type               `bson:"request_type" json:"request_type"`
	Librarian          Librarian          `bson:"librarian" json:"librarian"`
	Project            string             `bson:"project" json:"project"`
	Task               string             `bson:"task" json:"task"`
	ConcordID          *string            `bson:"concord_id,omitempty" json:"concord_id,omitempty"`
	ConcordFolder      string             `bson:"concord_folder" json:"concord_folder"`
	Manufacturer       *string            `bson:"manufacturer,omitempty" json:"manufacturer,omitempty"`
	PartNumber         *string            `bson:"part_number,omitempty" json:"part_number,omitempty"`
	ManufacturerLink   *string            `bson:"manufacturer_link,omitempty" json:"manufacturer_link,omitempty"`
	Solution           Solution           `bson:"solution" json:"solution"`
	ConcordFootprintID *string            `bson:"concord_footprint_id,omitempty" json:"concord_footprint_id,omitempty"`
	FootprintName      *string            `bson:"footprint_name,omitempty" json:"footprint_name,omitempty"`
}

// Params carries the caller-supplied fields for constructing a request.
// Zero-valued enum fields and a zero RequestDate receive defaults in New;
// nil pointers stay absent.
type Params struct {
	Requester          string
	RequestDate        time.Time
	Status             Status
	RequestType        Type
	Librarian          Librarian
	Project            string
	Task               string
	ConcordID          *string
	ConcordFolder      string
	Manufacturer       *string
	PartNumber         *string
	ManufacturerLink   *string
	Solution           Solution
	ConcordFootprintID *string
	FootprintName      *string
}

// New constructs a ComponentRequest from p, filling unspecified fields with
// the documented defaults: StatusNew, TypeComponentFull, Raymond Glover,
// SolutionExisting, and the current time for RequestDate. Required text
// fields default to the empty string by construction.
func New(p Params) *ComponentRequest {
	r := &ComponentRequest{
		Requester:          p.Requester,
		RequestDate:        p.RequestDate,
		Status:             p.Status,
		RequestType:        p.RequestType,
		Librarian:          p.Librarian,
		Project:            p.Project,
		Task:               p.Task,
		ConcordID:          p.ConcordID,
		ConcordFolder:      p.ConcordFolder,
		Manufacturer:       p.Manufacturer,
		PartNumber:         p.PartNumber,
		ManufacturerLink:   p.ManufacturerLink,
		Solution:           p.Solution,
		ConcordFootprintID: p.ConcordFootprintID,
		FootprintName:      p.FootprintName,
	}
	if r.RequestDate.IsZero() {
		r.RequestDate = time.Now().UTC()
	}
	if r.Status == "" {
		r.Status = StatusNew
	}
	if r.RequestType == "" {
		r.RequestType = TypeComponentFull
	}
	if r.Librarian == "" {
		r.Librarian = LibrarianRaymondGlover
	}
	if r.Solution == "" {
		r.Solution = SolutionExisting
	}
	return r
}

// Sample returns the canonical example record used to smoke-test the
// pipeline end to end. It is the only record the seeding path persists.
func Sample() *ComponentRequest {
	return New(Params{
		Requester:          "Max Ludden",
		Status:             StatusNew,
		RequestType:        TypeComponentFull,
		Librarian:          LibrarianMaxLudden,
		Project:            "[INT] Internal",
		Task:               "Training",
		ConcordID:          ptr("INT-123-456"),
		ConcordFolder:      "Capacitor",
		Manufacturer:       ptr("Murata"),
		PartNumber:         ptr("GRM155R71H103KA01D"),
		ManufacturerLink:   ptr("https://www.murata.com/en-us/products/productdetail?partno=GRM155R71H103KA01D"),
		Solution:           SolutionCopiedFrom,
		ConcordFootprintID: ptr("INT-123-456"),
		FootprintName:      ptr("0805_h1.5_n"),
	})
}

func ptr(s string) *string { return &s }
