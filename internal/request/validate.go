package request

import "regexp"

// concordIDPattern is the structural shape of a Concord catalog identifier:
// 1-6 letters, a separator, digits, a separator, digits. Existence in the
// catalog is not checked.
var concordIDPattern = regexp.MustCompile(`^[A-Za-z]{1,6}[-_ ]\d+[-_ ]\d+$`)

// ValidConcordID reports whether s satisfies the Concord ID pattern.
func ValidConcordID(s string) bool {
	return concordIDPattern.MatchString(s)
}

// Validate checks r against the schema constraints: every enum field must
// hold a value from its closed vocabulary, and ConcordID and
// ConcordFootprintID, when present, must satisfy the structural pattern.
// It returns the first violation as a *ValidationError, or nil.
//
// Required text fields are not checked here: the empty string is a legal
// unset value, and absence is impossible by construction.
func (r *ComponentRequest) Validate() error {
	if !r.Status.Valid() {
		return NewEnumError("status", string(r.Status))
	}
	if !r.RequestType.Valid() {
		return NewEnumError("request_type", string(r.RequestType))
	}
	if !r.Librarian.Valid() {
		return NewEnumError("librarian", string(r.Librarian))
	}
	if !r.Solution.Valid() {
		return NewEnumError("solution", string(r.Solution))
	}
	if r.ConcordID != nil && !ValidConcordID(*r.ConcordID) {
		return NewPatternError("concord_id", *r.ConcordID)
	}
	if r.ConcordFootprintID != nil && !ValidConcordID(*r.ConcordFootprintID) {
		return NewPatternError("concord_footprint_id", *r.ConcordFootprintID)
	}
	return nil
}
