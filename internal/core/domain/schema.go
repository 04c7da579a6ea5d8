package domain

// Schema maps each canonical field to the header names accepted for it in
// source spreadsheets. It is validated when a spreadsheet is loaded.
type Schema struct {
	// Aliases lists accepted headers per field. The canonical header and the
	// field key are always accepted and need not be listed.
	Aliases map[Field][]string

	// Required lists fields that must resolve for a table to be usable.
	Required []Field
}

// DefaultSchema returns the built-in schema used for registration spreadsheets.
func DefaultSchema() Schema {
	return Schema{
		Aliases: map[Field][]string{
			FieldSeq:               {"번호", "No", "연번"},
			FieldRegistrationNo:    {"등록 번호", "등록번호(품목)"},
			FieldCrop:              {"작물", "작물이름", "적용작물"},
			FieldDisease:           {"병해충", "병해충명", "병해명", "적용 병해충"},
			FieldCategory:          {"구분", "약제구분"},
			FieldItemName:          {"품목", "농약명"},
			FieldBrandName:         {"상표", "상품명"},
			FieldActiveIngredient:  {"유효성분", "성분명"},
			FieldIngredientContent: {"함량", "성분함량"},
			FieldFormulation:       {"제형명"},
			FieldHumanToxicity:     {"인축독성구분", "독성"},
			FieldFishToxicity:      {"어독성구분"},
			FieldModeOfAction:      {"작용기작구분"},
			FieldUsageMethod:       {"사용 방법"},
			FieldDilution:          {"희석배수(배)", "희석 배수"},
			FieldDosage:            {"사용량(10a)", "10a당 사용량"},
			FieldTiming:            {"사용 시기", "사용적기"},
			FieldMaxApplications:   {"사용 횟수", "안전사용횟수"},
			FieldSafeUseDays:       {"안전사용시기", "수확전일수"},
			FieldRegisteredOn:      {"등록일자", "최초등록일"},
			FieldCompany:           {"회사명", "제조사", "등록업체"},
			FieldRemarks:           {"참고", "메모"},
		},
		Required: []Field{FieldCrop, FieldDisease},
	}
}

// AliasesFor returns every accepted header for a field: the canonical header,
// the field key, then the configured aliases.
func (s Schema) AliasesFor(f Field) []string {
	out := []string{f.Header(), f.Key()}
	return append(out, s.Aliases[f]...)
}

// IsRequired reports whether a field must resolve.
func (s Schema) IsRequired(f Field) bool {
	for _, r := range s.Required {
		if r == f {
			return true
		}
	}
	return false
}

// CanonicalHeaders returns the canonical header row.
func CanonicalHeaders() []string {
	headers := make([]string, FieldCount)
	for i := range headers {
		headers[i] = Field(i).Header()
	}
	return headers
}
