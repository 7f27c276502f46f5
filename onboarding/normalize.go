package onboarding

import "strings"

// Canonical field names produced by Normalize.
const (
	FieldDisplayName = "displayName"
	FieldEmail       = "email"
	FieldMobile      = "mobile"
	FieldPAN         = "pan"
	FieldGST         = "gst"
	FieldEntityType  = "entityType"
	FieldCity        = "city"
	FieldState       = "state"
	FieldBankAccount = "bankAccount"
	FieldBankIFSC    = "bankIfsc"
)

// sourcePriority maps each canonical field to the form paths probed for it,
// in priority order: the first non-blank value wins. This replaces per-screen
// fallback chains with one table.
var sourcePriority = map[Kind]map[string][]string{
	KindEmployee: {
		FieldDisplayName: {"fullName"},
		FieldEmail:       {"email", "contact.email"},
		FieldMobile:      {"mobile", "contact.mobile", "phone"},
		FieldPAN:         {"panNumber", "pan"},
		FieldCity:        {"currentAddress.city"},
		FieldState:       {"currentAddress.state"},
		FieldBankAccount: {"bank.accountNumber"},
		FieldBankIFSC:    {"bank.ifsc"},
	},
	KindVendor: {
		FieldDisplayName: {"legalName", "tradeName"},
		FieldEmail:       {"contactPerson.email", "email"},
		FieldMobile:      {"contactPerson.mobile", "mobile", "phone"},
		FieldPAN:         {"panNumber", "pan"},
		FieldGST:         {"gstNumber", "gst"},
		FieldEntityType:  {"entityType"},
		FieldCity:        {"registeredAddress.city"},
		FieldState:       {"registeredAddress.state"},
		FieldBankAccount: {"bank.accountNumber"},
		FieldBankIFSC:    {"bank.ifsc"},
	},
	KindBusiness: {
		FieldDisplayName: {"legalName", "tradeName"},
		FieldEmail:       {"primaryContact.email", "email"},
		FieldMobile:      {"primaryContact.mobile", "mobile", "phone"},
		FieldPAN:         {"panNumber", "pan"},
		FieldGST:         {"gstNumber", "gst"},
		FieldEntityType:  {"entityType"},
		FieldBankAccount: {"bank.accountNumber"},
		FieldBankIFSC:    {"bank.ifsc"},
	},
}

// Normalize flattens a submitted form into the canonical record the admin
// consoles index on. Blank fields are omitted; values are trimmed. Pure.
func Normalize(kind Kind, core map[string]any) map[string]string {
	out := map[string]string{}
	for field, paths := range sourcePriority[kind] {
		for _, path := range paths {
			s, ok := Get(core, path).(string)
			if !ok {
				continue
			}
			if s = strings.TrimSpace(s); s != "" {
				out[field] = s
				break
			}
		}
	}
	return out
}
