package request

// legalTransitions maps each status to the statuses it may move to.
// The forward flow is New -> In Progress -> {Needs Footprint, QC} ->
// Complete; QC and Needs Footprint move both ways. The administrative
// markers Rejected, Removed and Delete are reachable from any state and
// Removed/Delete are also reachable from each other.
var legalTransitions = map[Status][]Status{
	StatusNew:            {StatusInProgress},
	StatusInProgress:     {StatusNeedsFootprint, StatusQC},
	StatusNeedsFootprint: {StatusQC, StatusInProgress},
	StatusQC:             {StatusNeedsFootprint, StatusComplete},
	StatusComplete:       {},
	StatusRejected:       {},
	StatusRemoved:        {StatusDelete},
	StatusDelete:         {StatusRemoved},
}

// adminMarkers may be entered from any state.
var adminMarkers = []Status{StatusRejected, StatusRemoved, StatusDelete}

// CanTransition reports whether a request may move from one status to
// another. Self-transitions are always allowed.
func CanTransition(from, to Status) bool {
	if from == to {
		return true
	}
	for _, m := range adminMarkers {
		if to == m {
			return true
		}
	}
	for _, next := range legalTransitions[from] {
		if to == next {
			return true
		}
	}
	return false
}
