package onboarding

import "strings"

// Attachment is a file the invitee has uploaded, classified into a document
// slot via DocType. ObjectKey points at the stored object after a presigned
// upload completes.
type Attachment struct {
	Name      string `json:"name"`
	DocType   string `json:"docType"`
	ObjectKey string `json:"objectKey,omitempty"`
}

// MissingDocsPrefix marks the single aggregated entry the validator reports
// for uncovered required document slots, e.g. "documents:pan,gstCertificate".
const MissingDocsPrefix = "documents:"

// Field paths and document slots waived for Unregistered Person entities.
var urpExemptPaths = map[string]bool{
	"gstNumber":         true,
	"incorporationDate": true,
}

var urpExemptSlots = map[string]bool{
	"gstCertificate":           true,
	"incorporationCertificate": true,
}

// MissingForStep reports the required field paths and document slots still
// missing for one wizard step. It is pure and synchronous: rules conditional
// on other fields (entityType) are re-evaluated against the form state passed
// in on every call, never cached.
//
// Only presence is checked: nil, missing, and whitespace-only string values
// count as missing. Format validation is left to input types and the server.
func MissingForStep(kind Kind, stepKey string, form map[string]any, files []Attachment) []string {
	sch := Schema(kind)
	if len(sch.Steps) == 0 {
		return nil
	}

	// A business invitee must pick an entity type before any later step can
	// be judged; everything hangs off that choice.
	if kind == KindBusiness && stepKey != StepWelcome && stepKey != "entity-type" {
		if isBlank(Get(form, "entityType")) {
			return []string{"entityType"}
		}
	}

	if stepKey == StepReview {
		return missingForReview(sch, kind, form, files)
	}
	return missingForSingle(sch, kind, stepKey, form, files)
}

func missingForSingle(sch EntitySchema, kind Kind, stepKey string, form map[string]any, files []Attachment) []string {
	exempt := urpExempt(kind, form)

	var missing []string
	for _, path := range sch.Required[stepKey] {
		if exempt && urpExemptPaths[path] {
			continue
		}
		if isBlank(Get(form, path)) {
			missing = append(missing, path)
		}
	}

	if stepKey == StepDocs {
		if uncovered := missingSlots(sch, kind, form, files); len(uncovered) > 0 {
			missing = append(missing, MissingDocsPrefix+strings.Join(uncovered, ","))
		}
	}
	return missing
}

// The review step is the submit gate: it re-checks every prior step.
func missingForReview(sch EntitySchema, kind Kind, form map[string]any, files []Attachment) []string {
	var missing []string
	seen := map[string]bool{}
	for _, st := range sch.Steps {
		if st.Key == StepWelcome || st.Key == StepReview {
			continue
		}
		for _, m := range missingForSingle(sch, kind, st.Key, form, files) {
			if !seen[m] {
				seen[m] = true
				missing = append(missing, m)
			}
		}
	}
	return missing
}

func missingSlots(sch EntitySchema, kind Kind, form map[string]any, files []Attachment) []string {
	attached := map[string]bool{}
	for _, f := range files {
		attached[f.DocType] = true
	}

	var uncovered []string
	for _, slot := range RequiredSlots(kind, form) {
		if !attached[slot.Key] {
			uncovered = append(uncovered, slot.Key)
		}
	}
	return uncovered
}

// RequiredSlots returns the document slots a form must cover, with URP
// exemptions already applied.
func RequiredSlots(kind Kind, form map[string]any) []DocSlot {
	exempt := urpExempt(kind, form)

	var out []DocSlot
	for _, slot := range Schema(kind).Slots {
		if !slot.Required {
			continue
		}
		if exempt && urpExemptSlots[slot.Key] {
			continue
		}
		out = append(out, slot)
	}
	return out
}

func urpExempt(kind Kind, form map[string]any) bool {
	if kind != KindVendor && kind != KindBusiness {
		return false
	}
	v, _ := Get(form, "entityType").(string)
	return strings.TrimSpace(v) == EntityTypeURP
}

func isBlank(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	default:
		return false
	}
}
