package survey

import (
	"fmt"
	"sort"

	"intake-service/internal/app/models"
)

// Field is a typed accessor for one addressable location in the answer
// record. Questions bind to Field values instead of path strings, so a
// question can only ever write the type its field holds.
type Field[T any] struct {
	path string
	ref  func(*models.SurveyData) *T
}

func (f Field[T]) Path() string { return f.path }

func (f Field[T]) Get(record *models.SurveyData) T { return *f.ref(record) }

func (f Field[T]) Set(record *models.SurveyData, value T) { *f.ref(record) = value }

func (f Field[T]) getAny(record *models.SurveyData) any { return f.Get(record) }

func (f Field[T]) setAny(record *models.SurveyData, value any) error {
	typed, ok := value.(T)
	if !ok {
		return fmt.Errorf("%w: %s holds %T, got %T", ErrFieldType, f.path, *new(T), value)
	}
	f.Set(record, typed)
	return nil
}

type addressable interface {
	Path() string
	getAny(record *models.SurveyData) any
	setAny(record *models.SurveyData, value any) error
}

var (
	FieldMeta             = Field[models.SurveyMeta]{"meta", func(r *models.SurveyData) *models.SurveyMeta { return &r.Meta }}
	FieldAssistantVersion = Field[string]{"meta.assistant_version", func(r *models.SurveyData) *string { return &r.Meta.AssistantVersion }}
	FieldCompletedAt      = Field[*string]{"meta.completed_at", func(r *models.SurveyData) **string { return &r.Meta.CompletedAt }}
	FieldProgress         = Field[models.SurveyProgress]{"meta.progress", func(r *models.SurveyData) *models.SurveyProgress { return &r.Meta.Progress }}
	FieldTotalQuestions   = Field[int]{"meta.progress.total_questions", func(r *models.SurveyData) *int { return &r.Meta.Progress.TotalQuestions }}
	FieldAnswered         = Field[int]{"meta.progress.answered", func(r *models.SurveyData) *int { return &r.Meta.Progress.Answered }}

	FieldBasicProfile       = Field[models.BasicProfile]{"basic_profile", func(r *models.SurveyData) *models.BasicProfile { return &r.BasicProfile }}
	FieldAge                = Field[*float64]{"basic_profile.age", func(r *models.SurveyData) **float64 { return &r.BasicProfile.Age }}
	FieldWeightPounds       = Field[models.Weight]{"basic_profile.weight_pounds", func(r *models.SurveyData) *models.Weight { return &r.BasicProfile.WeightPounds }}
	FieldHeight             = Field[*string]{"basic_profile.height", func(r *models.SurveyData) **string { return &r.BasicProfile.Height }}
	FieldHeightInchesTotal  = Field[*int]{"basic_profile.height_inches_total", func(r *models.SurveyData) **int { return &r.BasicProfile.HeightInchesTotal }}
	FieldSexAssignedAtBirth = Field[*string]{"basic_profile.sex_assigned_at_birth", func(r *models.SurveyData) **string { return &r.BasicProfile.SexAssignedAtBirth }}
	FieldAncestries         = Field[[]models.Ancestry]{"basic_profile.ancestries", func(r *models.SurveyData) *[]models.Ancestry { return &r.BasicProfile.Ancestries }}

	FieldMedicalHistory = Field[models.MedicalHistory]{"medical_history", func(r *models.SurveyData) *models.MedicalHistory { return &r.MedicalHistory }}
	FieldConditions     = Field[[]models.Condition]{"medical_history.conditions", func(r *models.SurveyData) *[]models.Condition { return &r.MedicalHistory.Conditions }}
	FieldSurgeries      = Field[[]string]{"medical_history.surgeries_or_hospital_stays", func(r *models.SurveyData) *[]string { return &r.MedicalHistory.SurgeriesOrHospitalStays }}
	FieldAllergies      = Field[[]models.Allergy]{"medical_history.allergies", func(r *models.SurveyData) *[]models.Allergy { return &r.MedicalHistory.Allergies }}

	FieldMedicationsAndSupplements = Field[models.MedicationsAndSupplements]{"medications_and_supplements", func(r *models.SurveyData) *models.MedicationsAndSupplements { return &r.MedicationsAndSupplements }}
	FieldMedications               = Field[[]models.MedicationOrSupplement]{"medications_and_supplements.medications", func(r *models.SurveyData) *[]models.MedicationOrSupplement { return &r.MedicationsAndSupplements.Medications }}
	FieldSupplements               = Field[[]models.MedicationOrSupplement]{"medications_and_supplements.supplements", func(r *models.SurveyData) *[]models.MedicationOrSupplement { return &r.MedicationsAndSupplements.Supplements }}

	FieldMiscellaneous   = Field[models.Miscellaneous]{"miscellaneous", func(r *models.SurveyData) *models.Miscellaneous { return &r.Miscellaneous }}
	FieldCAMFields       = Field[[]string]{"miscellaneous.cam_fields", func(r *models.SurveyData) *[]string { return &r.Miscellaneous.CAMFields }}
	FieldWearableDevices = Field[[]string]{"miscellaneous.wearable_devices", func(r *models.SurveyData) *[]string { return &r.Miscellaneous.WearableDevices }}
)

var fieldsByPath = indexFields(
	FieldMeta, FieldAssistantVersion, FieldCompletedAt, FieldProgress, FieldTotalQuestions, FieldAnswered,
	FieldBasicProfile, FieldAge, FieldWeightPounds, FieldHeight, FieldHeightInchesTotal, FieldSexAssignedAtBirth, FieldAncestries,
	FieldMedicalHistory, FieldConditions, FieldSurgeries, FieldAllergies,
	FieldMedicationsAndSupplements, FieldMedications, FieldSupplements,
	FieldMiscellaneous, FieldCAMFields, FieldWearableDevices,
)

func indexFields(fields ...addressable) map[string]addressable {
	index := make(map[string]addressable, len(fields))
	for _, field := range fields {
		if _, exists := index[field.Path()]; exists {
			panic("survey: duplicate field path " + field.Path())
		}
		index[field.Path()] = field
	}
	return index
}

// GetPath returns the value stored at a dotted path such as
// "basic_profile.age". ok is false when the path names no field.
func GetPath(record *models.SurveyData, path string) (value any, ok bool) {
	field, ok := fieldsByPath[path]
	if !ok {
		return nil, false
	}
	return field.getAny(record), true
}

// SetPath assigns value at a dotted path in place. The value must have the
// field's exact Go type.
func SetPath(record *models.SurveyData, path string, value any) error {
	field, ok := fieldsByPath[path]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPath, path)
	}
	return field.setAny(record, value)
}

func KnownPaths() []string {
	paths := make([]string, 0, len(fieldsByPath))
	for path := range fieldsByPath {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}
