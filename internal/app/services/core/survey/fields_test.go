package survey

import (
	"testing"

	"intake-service/internal/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathRoundTrip(t *testing.T) {
	age := 42.0
	height := "5 ft 10 in"
	inches := 70
	completedAt := "2024-05-01T09:30:00.000Z"

	values := map[string]any{}
	for _, entry := range []struct {
		path  string
		value any
	}{
		{"meta", models.SurveyMeta{AssistantVersion: "v1"}},
		{"meta.assistant_version", "v2"},
		{"meta.completed_at", &completedAt},
		{"meta.progress", models.SurveyProgress{TotalQuestions: 12, Answered: 3}},
		{"meta.progress.total_questions", 12},
		{"meta.progress.answered", 5},
		{"basic_profile", models.BasicProfile{Ancestries: []models.Ancestry{}}},
		{"basic_profile.age", &age},
		{"basic_profile.weight_pounds", models.RawWeight("150 lbs")},
		{"basic_profile.height", &height},
		{"basic_profile.height_inches_total", &inches},
		{"basic_profile.sex_assigned_at_birth", &height},
		{"basic_profile.ancestries", []models.Ancestry{{Label: "East Asian"}}},
		{"medical_history", models.MedicalHistory{}},
		{"medical_history.conditions", []models.Condition{{Label: "Asthma"}}},
		{"medical_history.surgeries_or_hospital_stays", []string{"Appendectomy (2015)"}},
		{"medical_history.allergies", []models.Allergy{{Label: "Nuts"}}},
		{"medications_and_supplements", models.MedicationsAndSupplements{}},
		{"medications_and_supplements.medications", []models.MedicationOrSupplement{models.BareMedicationOrSupplement("Metformin")}},
		{"medications_and_supplements.supplements", []models.MedicationOrSupplement{models.BareMedicationOrSupplement("Vitamin D")}},
		{"miscellaneous", models.Miscellaneous{}},
		{"miscellaneous.cam_fields", []string{"Ayurveda"}},
		{"miscellaneous.wearable_devices", []string{"Fitbit"}},
	} {
		values[entry.path] = entry.value
	}

	assert.Len(t, KnownPaths(), len(values), "every known path should be covered")

	for _, path := range KnownPaths() {
		t.Run(path, func(t *testing.T) {
			value, ok := values[path]
			require.True(t, ok, "test table is missing %s", path)

			record := models.NewSurveyData()
			require.NoError(t, SetPath(&record, path, value))

			got, ok := GetPath(&record, path)
			require.True(t, ok)
			assert.Equal(t, value, got, "get should return the value just set")
		})
	}
}

func TestSetPathErrors(t *testing.T) {
	t.Run("Unknown Path", func(t *testing.T) {
		record := models.NewSurveyData()
		err := SetPath(&record, "basic_profile.shoe_size", 42)
		assert.ErrorIs(t, err, ErrUnknownPath)
		assert.Equal(t, models.NewSurveyData(), record, "record should be unchanged")
	})

	t.Run("Wrong Value Type", func(t *testing.T) {
		record := models.NewSurveyData()
		err := SetPath(&record, "basic_profile.age", "forty")
		assert.ErrorIs(t, err, ErrFieldType)
		assert.Nil(t, record.BasicProfile.Age)
	})

	t.Run("Unknown Path Lookup", func(t *testing.T) {
		record := models.NewSurveyData()
		_, ok := GetPath(&record, "basic_profile")
		assert.True(t, ok, "groups are addressable")
		_, ok = GetPath(&record, "basic_profile.age.value")
		assert.False(t, ok)
	})
}

func TestCatalogPathsAreKnown(t *testing.T) {
	for _, q := range Questions() {
		if q.Kind == KindIntro {
			assert.Empty(t, q.Path)
			continue
		}
		_, ok := fieldsByPath[q.Path]
		assert.True(t, ok, "question %d writes unknown path %s", q.ID, q.Path)
	}
}
