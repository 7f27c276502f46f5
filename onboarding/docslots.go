package onboarding

// DocStats is the coverage counter shown on the documents and review steps.
type DocStats struct {
	Required int `json:"required"`
	Attached int `json:"attached"`
}

// OtherDocsGroup is the review-screen bucket for attachments whose docType
// matches no defined slot for the kind.
const OtherDocsGroup = "Others"

// ComputeDocStats counts required slots and how many distinct required slots
// have at least one attachment. Attachments under unknown docTypes are
// tolerated but never counted toward required coverage.
func ComputeDocStats(slots []DocSlot, files []Attachment) DocStats {
	required := map[string]bool{}
	for _, slot := range slots {
		if slot.Required {
			required[slot.Key] = true
		}
	}

	covered := map[string]bool{}
	for _, f := range files {
		if required[f.DocType] {
			covered[f.DocType] = true
		}
	}

	return DocStats{Required: len(required), Attached: len(covered)}
}

// GroupBySlot buckets attachments by slot key for the review screen. Grouping
// is recomputed on read rather than maintained incrementally; file counts per
// session are single-digit.
func GroupBySlot(slots []DocSlot, files []Attachment) map[string][]Attachment {
	known := map[string]bool{}
	for _, slot := range slots {
		known[slot.Key] = true
	}

	groups := map[string][]Attachment{}
	for _, f := range files {
		key := f.DocType
		if !known[key] {
			key = OtherDocsGroup
		}
		groups[key] = append(groups[key], f)
	}
	return groups
}
