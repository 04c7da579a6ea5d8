package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldCount(t *testing.T) {
	assert.Equal(t, 22, FieldCount)
	assert.Len(t, AllFields(), 22)
}

func TestField_Positions(t *testing.T) {
	// Crop and disease sit at columns 2 and 3 of the source spreadsheets.
	assert.Equal(t, 2, int(FieldCrop))
	assert.Equal(t, 3, int(FieldDisease))
}

func TestField_Metadata(t *testing.T) {
	seenKeys := make(map[string]bool)
	seenHeaders := make(map[string]bool)
	for _, f := range AllFields() {
		assert.True(t, f.IsValid())
		assert.NotEmpty(t, f.Key())
		assert.NotEmpty(t, f.Header())
		assert.NotEmpty(t, f.Label())
		assert.False(t, seenKeys[f.Key()], "duplicate key %s", f.Key())
		assert.False(t, seenHeaders[f.Header()], "duplicate header %s", f.Header())
		seenKeys[f.Key()] = true
		seenHeaders[f.Header()] = true
	}
}

func TestField_Invalid(t *testing.T) {
	f := Field(99)
	assert.False(t, f.IsValid())
	assert.Equal(t, "unknown", f.Key())
	assert.Equal(t, "", f.Header())
	assert.Equal(t, "Unknown", f.Label())
	assert.False(t, Field(-1).IsValid())
}

func TestFieldByKey(t *testing.T) {
	f, ok := FieldByKey("crop")
	require.True(t, ok)
	assert.Equal(t, FieldCrop, f)

	f, ok = FieldByKey("  Active_Ingredient ")
	require.True(t, ok)
	assert.Equal(t, FieldActiveIngredient, f)

	_, ok = FieldByKey("colour")
	assert.False(t, ok)
}

func TestPesticideRecord_GetSet(t *testing.T) {
	var r PesticideRecord
	for _, f := range AllFields() {
		r.Set(f, f.Key()+"-value")
	}
	for _, f := range AllFields() {
		assert.Equal(t, f.Key()+"-value", r.Get(f))
	}
	assert.Equal(t, "crop-value", r.Crop)
	assert.Equal(t, "company-value", r.Company)

	r.Set(Field(42), "ignored")
	assert.Equal(t, "", r.Get(Field(42)))
}

func TestPesticideRecord_Values(t *testing.T) {
	r := PesticideRecord{Crop: "사과", Disease: "탄저병", Company: "팜한농"}
	values := r.Values()
	require.Len(t, values, FieldCount)
	assert.Equal(t, "사과", values[FieldCrop])
	assert.Equal(t, "탄저병", values[FieldDisease])
	assert.Equal(t, "팜한농", values[FieldCompany])
	assert.Equal(t, "", values[FieldSeq])
}

func TestDefaultSchema(t *testing.T) {
	s := DefaultSchema()
	assert.True(t, s.IsRequired(FieldCrop))
	assert.True(t, s.IsRequired(FieldDisease))
	assert.False(t, s.IsRequired(FieldCompany))

	aliases := s.AliasesFor(FieldDisease)
	assert.Equal(t, "적용병해충", aliases[0])
	assert.Equal(t, "disease", aliases[1])
	assert.Contains(t, aliases, "병해명")
}

func TestCanonicalHeaders(t *testing.T) {
	headers := CanonicalHeaders()
	require.Len(t, headers, FieldCount)
	assert.Equal(t, "작물명", headers[2])
	assert.Equal(t, "적용병해충", headers[3])
}
