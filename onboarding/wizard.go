package onboarding

// Wizard is the linear step cursor for one onboarding session. It owns the
// in-memory form state and attachment list, guards forward navigation behind
// the step validator, and nudges the draft scheduler on every change.
//
// Not safe for concurrent use; one wizard serves one session.
type Wizard struct {
	kind      Kind
	schema    EntitySchema
	cursor    int
	submitted bool

	Form  map[string]any
	Files []Attachment

	// Drafts, when set, is scheduled after every mutation and advance.
	Drafts *DraftScheduler
}

func NewWizard(kind Kind) *Wizard {
	return &Wizard{
		kind:   kind,
		schema: Schema(kind),
		Form:   map[string]any{},
	}
}

func (w *Wizard) Kind() Kind           { return w.kind }
func (w *Wizard) Schema() EntitySchema { return w.schema }
func (w *Wizard) Cursor() int          { return w.cursor }
func (w *Wizard) Submitted() bool      { return w.submitted }

func (w *Wizard) CurrentStep() Step {
	return w.schema.Steps[w.cursor]
}

// Progress is the percentage of steps completed, for the header bar.
func (w *Wizard) Progress() int {
	if w.submitted {
		return 100
	}
	last := len(w.schema.Steps) - 1
	if last == 0 {
		return 0
	}
	return w.cursor * 100 / last
}

// SetField writes one field through the path accessor and reschedules the
// draft save.
func (w *Wizard) SetField(path string, value any) {
	w.Form = Set(w.Form, path, value)
	w.scheduleDraft()
}

func (w *Wizard) Field(path string) any {
	return Get(w.Form, path)
}

// Attach records an uploaded file against its document slot.
func (w *Wizard) Attach(f Attachment) {
	w.Files = append(w.Files, f)
	w.scheduleDraft()
}

// Detach removes an attachment by object key.
func (w *Wizard) Detach(objectKey string) {
	kept := w.Files[:0]
	for _, f := range w.Files {
		if f.ObjectKey != objectKey {
			kept = append(kept, f)
		}
	}
	w.Files = kept
	w.scheduleDraft()
}

// Start leaves the welcome splash. It is the only way onto the first real
// step; Back never returns to welcome.
func (w *Wizard) Start() {
	if w.cursor == 0 {
		w.cursor = 1
	}
}

// Next validates the current step and advances by exactly one on success.
// The returned list is non-empty iff navigation was refused.
func (w *Wizard) Next() ([]string, bool) {
	if w.submitted || w.cursor >= len(w.schema.Steps)-1 {
		return nil, false
	}
	missing := MissingForStep(w.kind, w.CurrentStep().Key, w.Form, w.Files)
	if len(missing) > 0 {
		return missing, false
	}
	w.cursor++
	w.scheduleDraft()
	return nil, true
}

// Back moves one step back without validation, floored at the first real step.
func (w *Wizard) Back() bool {
	if w.submitted || w.cursor <= 1 {
		return false
	}
	w.cursor--
	return true
}

// Submit re-validates the review step (the union of all steps) and moves to
// the terminal submitted state. Only callable from the last step.
func (w *Wizard) Submit() ([]string, bool) {
	if w.submitted || w.cursor != len(w.schema.Steps)-1 {
		return nil, false
	}
	missing := MissingForStep(w.kind, StepReview, w.Form, w.Files)
	if len(missing) > 0 {
		return missing, false
	}
	w.submitted = true
	return nil, true
}

// DocStats reports live required-vs-attached coverage for the current form.
func (w *Wizard) DocStats() DocStats {
	return ComputeDocStats(RequiredSlots(w.kind, w.Form), w.Files)
}

func (w *Wizard) scheduleDraft() {
	if w.Drafts != nil {
		w.Drafts.Schedule()
	}
}
