package onboarding

// Kind is the record kind an invite onboards.
type Kind string

const (
	KindEmployee Kind = "employee"
	KindVendor   Kind = "vendor"
	KindBusiness Kind = "business"
)

func ValidKind(k Kind) bool {
	return k == KindEmployee || k == KindVendor || k == KindBusiness
}

// Well-known step keys shared by every kind.
const (
	StepWelcome = "welcome"
	StepDocs    = "docs"
	StepReview  = "review"
)

// EntityType value exempt from GST and incorporation requirements.
const EntityTypeURP = "URP"

type Step struct {
	Key   string `json:"key"`
	Title string `json:"title"`
}

type DocSlot struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Accept   string `json:"accept"`
	Required bool   `json:"required"`
	Multiple bool   `json:"multiple"`
}

// EntitySchema bundles everything the wizard needs for one kind: the ordered
// step list, the required field paths per step, and the document slots.
type EntitySchema struct {
	Kind     Kind
	Steps    []Step
	Required map[string][]string
	Slots    []DocSlot
}

// StepIndex returns the position of a step key, or -1.
func (s EntitySchema) StepIndex(key string) int {
	for i, st := range s.Steps {
		if st.Key == key {
			return i
		}
	}
	return -1
}

func (s EntitySchema) Slot(key string) (DocSlot, bool) {
	for _, slot := range s.Slots {
		if slot.Key == key {
			return slot, true
		}
	}
	return DocSlot{}, false
}

var employeeSchema = EntitySchema{
	Kind: KindEmployee,
	Steps: []Step{
		{Key: StepWelcome, Title: "Welcome"},
		{Key: "identity", Title: "Identity"},
		{Key: "contact", Title: "Contact & Address"},
		{Key: "emergency", Title: "Emergency Contact"},
		{Key: "ids", Title: "Government IDs"},
		{Key: "bank", Title: "Bank Details"},
		{Key: "education", Title: "Education"},
		{Key: "employment", Title: "Employment"},
		{Key: "statutory", Title: "Statutory"},
		{Key: "good-to-have", Title: "Good to Have"},
		{Key: StepDocs, Title: "Documents"},
		{Key: StepReview, Title: "Review & Submit"},
	},
	Required: map[string][]string{
		"identity":  {"fullName", "dateOfBirth", "gender", "fatherOrHusbandName"},
		"contact":   {"mobile", "email", "currentAddress.line1", "currentAddress.city", "currentAddress.state", "currentAddress.pincode"},
		"emergency": {"emergencyContact.name", "emergencyContact.relation", "emergencyContact.mobile"},
		"ids":       {"panNumber", "aadhaarNumber"},
		"bank":      {"bank.holderName", "bank.accountNumber", "bank.ifsc"},
		"education": {"education.highestQualification"},
		"employment": {
			"employment.designation", "employment.dateOfJoining",
		},
		"statutory":    {"statutory.uan"},
		"good-to-have": {},
	},
	Slots: []DocSlot{
		{Key: "photo", Label: "Passport Photo", Accept: ".jpg,.jpeg,.png", Required: true},
		{Key: "pan", Label: "PAN Card", Accept: ".jpg,.jpeg,.png,.pdf", Required: true},
		{Key: "aadhaar", Label: "Aadhaar Card", Accept: ".jpg,.jpeg,.png,.pdf", Required: true},
		{Key: "bankProof", Label: "Cancelled Cheque / Passbook", Accept: ".jpg,.jpeg,.png,.pdf", Required: true},
		{Key: "educationCerts", Label: "Education Certificates", Accept: ".pdf", Multiple: true},
		{Key: "experienceLetters", Label: "Experience Letters", Accept: ".pdf", Multiple: true},
		{Key: "salarySlips", Label: "Previous Salary Slips", Accept: ".pdf", Multiple: true},
	},
}

var vendorSchema = EntitySchema{
	Kind: KindVendor,
	Steps: []Step{
		{Key: StepWelcome, Title: "Welcome"},
		{Key: "basic", Title: "Basic Details"},
		{Key: "contacts", Title: "Contact Persons"},
		{Key: "addresses", Title: "Addresses"},
		{Key: "tax", Title: "Tax Details"},
		{Key: "bank", Title: "Bank Details"},
		{Key: "services", Title: "Services Offered"},
		{Key: StepDocs, Title: "Documents"},
		{Key: StepReview, Title: "Review & Submit"},
	},
	Required: map[string][]string{
		"basic":     {"legalName", "entityType"},
		"contacts":  {"contactPerson.name", "contactPerson.mobile", "contactPerson.email"},
		"addresses": {"registeredAddress.line1", "registeredAddress.city", "registeredAddress.state", "registeredAddress.pincode"},
		"tax":       {"panNumber", "gstNumber"},
		"bank":      {"bank.holderName", "bank.accountNumber", "bank.ifsc"},
		"services":  {"services.category"},
	},
	Slots: []DocSlot{
		{Key: "pan", Label: "PAN Card", Accept: ".jpg,.jpeg,.png,.pdf", Required: true},
		{Key: "gstCertificate", Label: "GST Certificate", Accept: ".pdf", Required: true},
		{Key: "cancelledCheque", Label: "Cancelled Cheque", Accept: ".jpg,.jpeg,.png,.pdf", Required: true},
		{Key: "msmeCertificate", Label: "MSME Certificate", Accept: ".pdf"},
		{Key: "workOrders", Label: "Sample Work Orders", Accept: ".pdf", Multiple: true},
	},
}

var businessSchema = EntitySchema{
	Kind: KindBusiness,
	Steps: []Step{
		{Key: StepWelcome, Title: "Welcome"},
		{Key: "entity-type", Title: "Entity Type"},
		{Key: "biz-basic", Title: "Business Details"},
		{Key: "key-contacts", Title: "Key Contacts"},
		{Key: "bank", Title: "Bank Details"},
		{Key: StepDocs, Title: "Documents"},
		{Key: StepReview, Title: "Review & Submit"},
	},
	Required: map[string][]string{
		"entity-type":  {"entityType"},
		"biz-basic":    {"legalName", "panNumber", "gstNumber", "incorporationDate"},
		"key-contacts": {"primaryContact.name", "primaryContact.mobile", "primaryContact.email"},
		"bank":         {"bank.holderName", "bank.accountNumber", "bank.ifsc"},
	},
	Slots: []DocSlot{
		{Key: "pan", Label: "PAN Card", Accept: ".jpg,.jpeg,.png,.pdf", Required: true},
		{Key: "gstCertificate", Label: "GST Certificate", Accept: ".pdf", Required: true},
		{Key: "incorporationCertificate", Label: "Certificate of Incorporation", Accept: ".pdf", Required: true},
		{Key: "cancelledCheque", Label: "Cancelled Cheque", Accept: ".jpg,.jpeg,.png,.pdf", Required: true},
		{Key: "addressProof", Label: "Registered Address Proof", Accept: ".pdf"},
	},
}

var schemas = map[Kind]EntitySchema{
	KindEmployee: employeeSchema,
	KindVendor:   vendorSchema,
	KindBusiness: businessSchema,
}

// Schema returns the wizard schema for a kind. Unknown kinds yield a zero
// schema; callers gate on ValidKind first.
func Schema(kind Kind) EntitySchema {
	return schemas[kind]
}
