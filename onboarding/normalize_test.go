package onboarding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePriorityOrder(t *testing.T) {
	// Both sources present: the higher-priority path wins.
	core := map[string]any{
		"contactPerson": map[string]any{"mobile": "9000000001"},
		"mobile":        "9000000002",
	}
	got := Normalize(KindVendor, core)
	assert.Equal(t, "9000000001", got[FieldMobile])

	// Higher-priority source blank: fall through.
	core = Set(core, "contactPerson.mobile", "   ")
	got = Normalize(KindVendor, core)
	assert.Equal(t, "9000000002", got[FieldMobile])
}

func TestNormalizeOmitsBlanks(t *testing.T) {
	got := Normalize(KindEmployee, map[string]any{
		"fullName": "  Asha Rao ",
		"email":    "",
	})
	assert.Equal(t, "Asha Rao", got[FieldDisplayName])
	assert.NotContains(t, got, FieldEmail)
	assert.NotContains(t, got, FieldMobile)
}

func TestNormalizeIgnoresNonStrings(t *testing.T) {
	got := Normalize(KindEmployee, map[string]any{
		"mobile": 9000000001, // numeric payloads are not coerced
		"phone":  "9000000002",
	})
	assert.Equal(t, "9000000002", got[FieldMobile])
}

func TestNormalizeBusinessRecord(t *testing.T) {
	core := map[string]any{
		"legalName":  "Plum Traders LLP",
		"entityType": "LLP",
		"gstNumber":  "27AAPFU0939F1ZV",
		"primaryContact": map[string]any{
			"email": "ops@plumtraders.in",
		},
		"bank": map[string]any{"accountNumber": "0012345", "ifsc": "HDFC0001"},
	}
	got := Normalize(KindBusiness, core)

	assert.Equal(t, "Plum Traders LLP", got[FieldDisplayName])
	assert.Equal(t, "LLP", got[FieldEntityType])
	assert.Equal(t, "27AAPFU0939F1ZV", got[FieldGST])
	assert.Equal(t, "ops@plumtraders.in", got[FieldEmail])
	assert.Equal(t, "HDFC0001", got[FieldBankIFSC])
}

func TestNormalizeUnknownKindEmpty(t *testing.T) {
	assert.Empty(t, Normalize(Kind("contractor"), map[string]any{"fullName": "A"}))
}
