package onboarding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fill sets every required field of a step to a non-empty value.
func fill(form map[string]any, sch EntitySchema, stepKey string) map[string]any {
	for _, path := range sch.Required[stepKey] {
		form = Set(form, path, "x")
	}
	return form
}

// coverRequired attaches one file per required slot.
func coverRequired(kind Kind, form map[string]any) []Attachment {
	var files []Attachment
	for _, slot := range RequiredSlots(kind, form) {
		files = append(files, Attachment{Name: slot.Key + ".pdf", DocType: slot.Key})
	}
	return files
}

func TestEmptyFormReportsAllRequiredFields(t *testing.T) {
	for _, kind := range []Kind{KindEmployee, KindVendor, KindBusiness} {
		sch := Schema(kind)
		for stepKey, required := range sch.Required {
			if kind == KindBusiness && stepKey != "entity-type" {
				continue // gated on entityType, covered separately
			}
			missing := MissingForStep(kind, stepKey, map[string]any{}, nil)
			assert.ElementsMatch(t, required, missing, "%s/%s", kind, stepKey)
		}
	}
}

func TestFilledStepReportsNothing(t *testing.T) {
	for _, kind := range []Kind{KindEmployee, KindVendor, KindBusiness} {
		sch := Schema(kind)
		for stepKey := range sch.Required {
			form := map[string]any{}
			if kind == KindBusiness {
				form = Set(form, "entityType", "Private Limited")
			}
			form = fill(form, sch, stepKey)
			assert.Empty(t, MissingForStep(kind, stepKey, form, nil), "%s/%s", kind, stepKey)
		}
	}
}

func TestWhitespaceOnlyValueIsMissing(t *testing.T) {
	form := map[string]any{
		"fullName":            "  \t ",
		"dateOfBirth":         "1990-01-01",
		"gender":              "Female",
		"fatherOrHusbandName": "X",
	}
	missing := MissingForStep(KindEmployee, "identity", form, nil)
	assert.Equal(t, []string{"fullName"}, missing)
}

func TestEmployeeIdentityScenario(t *testing.T) {
	form := map[string]any{
		"fullName":            "A",
		"dateOfBirth":         "",
		"gender":              "Male",
		"fatherOrHusbandName": "B",
	}
	missing := MissingForStep(KindEmployee, "identity", form, nil)
	assert.Equal(t, []string{"dateOfBirth"}, missing)
}

func TestBusinessEntityTypeGate(t *testing.T) {
	// Everything else filled, entityType unset: the gate wins on every step
	// past the selector.
	form := map[string]any{}
	sch := Schema(KindBusiness)
	for stepKey := range sch.Required {
		form = fill(form, sch, stepKey)
	}
	form = Set(form, "entityType", "")

	for _, stepKey := range []string{"biz-basic", "key-contacts", "bank", StepDocs, StepReview} {
		assert.Equal(t, []string{"entityType"}, MissingForStep(KindBusiness, stepKey, form, nil), stepKey)
	}
}

func TestURPRelaxation(t *testing.T) {
	t.Run("vendor tax step", func(t *testing.T) {
		form := map[string]any{"entityType": EntityTypeURP, "panNumber": "ABCDE1234F"}
		assert.Empty(t, MissingForStep(KindVendor, "tax", form, nil))

		form["entityType"] = "Partnership"
		assert.Equal(t, []string{"gstNumber"}, MissingForStep(KindVendor, "tax", form, nil))
	})

	t.Run("business biz-basic step", func(t *testing.T) {
		form := map[string]any{
			"entityType": EntityTypeURP,
			"legalName":  "Ram Traders",
			"panNumber":  "ABCDE1234F",
		}
		assert.Empty(t, MissingForStep(KindBusiness, "biz-basic", form, nil))

		form["entityType"] = "LLP"
		missing := MissingForStep(KindBusiness, "biz-basic", form, nil)
		assert.ElementsMatch(t, []string{"gstNumber", "incorporationDate"}, missing)
	})

	t.Run("URP waives GST document slots", func(t *testing.T) {
		form := map[string]any{"entityType": EntityTypeURP}
		for _, slot := range RequiredSlots(KindBusiness, form) {
			assert.NotContains(t, []string{"gstCertificate", "incorporationCertificate"}, slot.Key)
		}

		form["entityType"] = "LLP"
		keys := map[string]bool{}
		for _, slot := range RequiredSlots(KindBusiness, form) {
			keys[slot.Key] = true
		}
		assert.True(t, keys["gstCertificate"])
		assert.True(t, keys["incorporationCertificate"])
	})

	t.Run("relaxation is re-evaluated against current state", func(t *testing.T) {
		form := map[string]any{"entityType": EntityTypeURP, "panNumber": "P"}
		assert.Empty(t, MissingForStep(KindVendor, "tax", form, nil))

		// Flipping entityType immediately reinstates the requirement.
		form = Set(form, "entityType", "Proprietorship")
		assert.Equal(t, []string{"gstNumber"}, MissingForStep(KindVendor, "tax", form, nil))
	})
}

func TestDocsStepAggregatesMissingSlots(t *testing.T) {
	form := map[string]any{"entityType": "LLP"}
	files := []Attachment{
		{Name: "pan.pdf", DocType: "pan"},
		{Name: "cheque.jpg", DocType: "cancelledCheque"},
	}
	missing := MissingForStep(KindBusiness, StepDocs, form, files)

	require.Len(t, missing, 1)
	assert.Equal(t, MissingDocsPrefix+"gstCertificate,incorporationCertificate", missing[0])
}

func TestDocsStepFullyCovered(t *testing.T) {
	form := map[string]any{"entityType": "LLP"}
	files := coverRequired(KindBusiness, form)
	assert.Empty(t, MissingForStep(KindBusiness, StepDocs, form, files))
}

func TestReviewIsUnionOfAllSteps(t *testing.T) {
	sch := Schema(KindEmployee)
	form := map[string]any{}
	for stepKey := range sch.Required {
		form = fill(form, sch, stepKey)
	}
	form = Set(form, "bank.ifsc", "") // poke one hole

	missing := MissingForStep(KindEmployee, StepReview, form, coverRequired(KindEmployee, form))
	assert.Equal(t, []string{"bank.ifsc"}, missing)

	// Complete form and full doc coverage: review passes.
	form = Set(form, "bank.ifsc", "HDFC0001")
	assert.Empty(t, MissingForStep(KindEmployee, StepReview, form, coverRequired(KindEmployee, form)))
}

func TestUnknownKindReportsNothing(t *testing.T) {
	assert.Empty(t, MissingForStep(Kind("contractor"), "identity", map[string]any{}, nil))
}
