package domain

import "strings"

// Field identifies one column of the canonical registration schema.
// Values are the zero-based column positions used by the source spreadsheets.
type Field int

// Canonical fields, in source column order.
const (
	FieldSeq Field = iota
	FieldRegistrationNo
	FieldCrop
	FieldDisease
	FieldCategory
	FieldItemName
	FieldBrandName
	FieldActiveIngredient
	FieldIngredientContent
	FieldFormulation
	FieldHumanToxicity
	FieldFishToxicity
	FieldModeOfAction
	FieldUsageMethod
	FieldDilution
	FieldDosage
	FieldTiming
	FieldMaxApplications
	FieldSafeUseDays
	FieldRegisteredOn
	FieldCompany
	FieldRemarks

	// FieldCount is the number of canonical fields.
	FieldCount = int(FieldRemarks) + 1
)

type fieldInfo struct {
	key    string
	header string
	label  string
}

var fieldTable = [FieldCount]fieldInfo{
	FieldSeq:               {"seq", "순번", "No."},
	FieldRegistrationNo:    {"registration_no", "등록번호", "Registration No."},
	FieldCrop:              {"crop", "작물명", "Crop"},
	FieldDisease:           {"disease", "적용병해충", "Disease/Pest"},
	FieldCategory:          {"category", "용도", "Category"},
	FieldItemName:          {"item_name", "품목명", "Item"},
	FieldBrandName:         {"brand_name", "상표명", "Brand"},
	FieldActiveIngredient:  {"active_ingredient", "주성분", "Active Ingredient"},
	FieldIngredientContent: {"ingredient_content", "주성분함량", "Content"},
	FieldFormulation:       {"formulation", "제형", "Formulation"},
	FieldHumanToxicity:     {"human_toxicity", "인축독성", "Human Toxicity"},
	FieldFishToxicity:      {"fish_toxicity", "어독성", "Fish Toxicity"},
	FieldModeOfAction:      {"mode_of_action", "작용기작", "Mode of Action"},
	FieldUsageMethod:       {"usage_method", "사용방법", "Usage Method"},
	FieldDilution:          {"dilution", "희석배수", "Dilution"},
	FieldDosage:            {"dosage", "사용량", "Dosage"},
	FieldTiming:            {"timing", "사용시기", "Timing"},
	FieldMaxApplications:   {"max_applications", "사용횟수", "Max Applications"},
	FieldSafeUseDays:       {"safe_use_days", "안전사용기준", "Safe Use"},
	FieldRegisteredOn:      {"registered_on", "등록일", "Registered On"},
	FieldCompany:           {"company", "등록회사", "Company"},
	FieldRemarks:           {"remarks", "비고", "Remarks"},
}

// AllFields returns every canonical field in column order.
func AllFields() []Field {
	fields := make([]Field, FieldCount)
	for i := range fields {
		fields[i] = Field(i)
	}
	return fields
}

// IsValid returns true if the field is one of the canonical fields.
func (f Field) IsValid() bool {
	return f >= 0 && int(f) < FieldCount
}

// Key returns the stable machine-readable key (used in JSON and config).
func (f Field) Key() string {
	if !f.IsValid() {
		return "unknown"
	}
	return fieldTable[f].key
}

// Header returns the canonical spreadsheet header.
func (f Field) Header() string {
	if !f.IsValid() {
		return ""
	}
	return fieldTable[f].header
}

// Label returns a short English display label.
func (f Field) Label() string {
	if !f.IsValid() {
		return unknownDescription
	}
	return fieldTable[f].label
}

// String returns the field key.
func (f Field) String() string {
	return f.Key()
}

// FieldByKey looks up a field by its key, case-insensitively.
func FieldByKey(key string) (Field, bool) {
	key = strings.ToLower(strings.TrimSpace(key))
	for i := range fieldTable {
		if fieldTable[i].key == key {
			return Field(i), true
		}
	}
	return 0, false
}

// PesticideRecord is one pesticide registration row normalised to the
// canonical schema. Records are read-only snapshots of a query.
type PesticideRecord struct {
	Seq               string `json:"seq"`
	RegistrationNo    string `json:"registration_no"`
	Crop              string `json:"crop"`
	Disease           string `json:"disease"`
	Category          string `json:"category"`
	ItemName          string `json:"item_name"`
	BrandName         string `json:"brand_name"`
	ActiveIngredient  string `json:"active_ingredient"`
	IngredientContent string `json:"ingredient_content"`
	Formulation       string `json:"formulation"`
	HumanToxicity     string `json:"human_toxicity"`
	FishToxicity      string `json:"fish_toxicity"`
	ModeOfAction      string `json:"mode_of_action"`
	UsageMethod       string `json:"usage_method"`
	Dilution          string `json:"dilution"`
	Dosage            string `json:"dosage"`
	Timing            string `json:"timing"`
	MaxApplications   string `json:"max_applications"`
	SafeUseDays       string `json:"safe_use_days"`
	RegisteredOn      string `json:"registered_on"`
	Company           string `json:"company"`
	Remarks           string `json:"remarks"`

	// Row is the 1-based spreadsheet row this record was read from.
	Row int `json:"row,omitempty"`

	// Extra holds source columns that are not part of the canonical schema.
	Extra map[string]string `json:"extra,omitempty"`
}

func (r *PesticideRecord) field(f Field) *string {
	switch f {
	case FieldSeq:
		return &r.Seq
	case FieldRegistrationNo:
		return &r.RegistrationNo
	case FieldCrop:
		return &r.Crop
	case FieldDisease:
		return &r.Disease
	case FieldCategory:
		return &r.Category
	case FieldItemName:
		return &r.ItemName
	case FieldBrandName:
		return &r.BrandName
	case FieldActiveIngredient:
		return &r.ActiveIngredient
	case FieldIngredientContent:
		return &r.IngredientContent
	case FieldFormulation:
		return &r.Formulation
	case FieldHumanToxicity:
		return &r.HumanToxicity
	case FieldFishToxicity:
		return &r.FishToxicity
	case FieldModeOfAction:
		return &r.ModeOfAction
	case FieldUsageMethod:
		return &r.UsageMethod
	case FieldDilution:
		return &r.Dilution
	case FieldDosage:
		return &r.Dosage
	case FieldTiming:
		return &r.Timing
	case FieldMaxApplications:
		return &r.MaxApplications
	case FieldSafeUseDays:
		return &r.SafeUseDays
	case FieldRegisteredOn:
		return &r.RegisteredOn
	case FieldCompany:
		return &r.Company
	case FieldRemarks:
		return &r.Remarks
	default:
		return nil
	}
}

// Get returns the value of a canonical field, or "" for an unknown field.
func (r PesticideRecord) Get(f Field) string {
	if p := r.field(f); p != nil {
		return *p
	}
	return ""
}

// Set assigns the value of a canonical field. Unknown fields are ignored.
func (r *PesticideRecord) Set(f Field, value string) {
	if p := r.field(f); p != nil {
		*p = value
	}
}

// Values returns all canonical field values in column order.
func (r PesticideRecord) Values() []string {
	values := make([]string, FieldCount)
	for i := range values {
		values[i] = r.Get(Field(i))
	}
	return values
}
