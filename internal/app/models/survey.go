package models

import "intake-service/internal/pkg/constvars"

type SurveyData struct {
	Meta                      SurveyMeta                `json:"meta" yaml:"meta"`
	BasicProfile              BasicProfile              `json:"basic_profile" yaml:"basic_profile"`
	MedicalHistory            MedicalHistory            `json:"medical_history" yaml:"medical_history"`
	MedicationsAndSupplements MedicationsAndSupplements `json:"medications_and_supplements" yaml:"medications_and_supplements"`
	Miscellaneous             Miscellaneous             `json:"miscellaneous" yaml:"miscellaneous"`
}

type SurveyMeta struct {
	AssistantVersion string         `json:"assistant_version" yaml:"assistant_version"`
	CompletedAt      *string        `json:"completed_at" yaml:"completed_at"`
	Progress         SurveyProgress `json:"progress" yaml:"progress"`
}

type SurveyProgress struct {
	TotalQuestions int `json:"total_questions" yaml:"total_questions"`
	Answered       int `json:"answered" yaml:"answered"`
}

type BasicProfile struct {
	Age                *float64   `json:"age" yaml:"age"`
	WeightPounds       Weight     `json:"weight_pounds" yaml:"weight_pounds"`
	Height             *string    `json:"height" yaml:"height"`
	HeightInchesTotal  *int       `json:"height_inches_total" yaml:"height_inches_total"`
	SexAssignedAtBirth *string    `json:"sex_assigned_at_birth" yaml:"sex_assigned_at_birth"`
	Ancestries         []Ancestry `json:"ancestries" yaml:"ancestries"`
}

type MedicalHistory struct {
	Conditions               []Condition `json:"conditions" yaml:"conditions"`
	SurgeriesOrHospitalStays []string    `json:"surgeries_or_hospital_stays" yaml:"surgeries_or_hospital_stays"`
	Allergies                []Allergy   `json:"allergies" yaml:"allergies"`
}

type MedicationsAndSupplements struct {
	Medications []MedicationOrSupplement `json:"medications" yaml:"medications"`
	Supplements []MedicationOrSupplement `json:"supplements" yaml:"supplements"`
}

type Miscellaneous struct {
	CAMFields       []string `json:"cam_fields" yaml:"cam_fields"`
	WearableDevices []string `json:"wearable_devices" yaml:"wearable_devices"`
}

type Ancestry struct {
	Label     string  `json:"label" yaml:"label"`
	OtherNote *string `json:"other_note" yaml:"other_note"`
}

type Condition struct {
	Label     string  `json:"label" yaml:"label"`
	StartYear *int    `json:"start_year" yaml:"start_year"`
	OtherNote *string `json:"other_note" yaml:"other_note"`
}

type Allergy struct {
	Label     string  `json:"label" yaml:"label"`
	Reaction  *string `json:"reaction" yaml:"reaction"`
	OtherNote *string `json:"other_note" yaml:"other_note"`
}

// NewSurveyData returns the record every session starts from: every leaf is
// null and every sequence is empty.
func NewSurveyData() SurveyData {
	return SurveyData{
		Meta: SurveyMeta{
			AssistantVersion: constvars.SurveyAssistantVersion,
			Progress: SurveyProgress{
				TotalQuestions: constvars.SurveyTotalQuestions,
			},
		},
		BasicProfile: BasicProfile{
			Ancestries: []Ancestry{},
		},
		MedicalHistory: MedicalHistory{
			Conditions:               []Condition{},
			SurgeriesOrHospitalStays: []string{},
			Allergies:                []Allergy{},
		},
		MedicationsAndSupplements: MedicationsAndSupplements{
			Medications: []MedicationOrSupplement{},
			Supplements: []MedicationOrSupplement{},
		},
		Miscellaneous: Miscellaneous{
			CAMFields:       []string{},
			WearableDevices: []string{},
		},
	}
}

// Clone returns a deep copy. Nil sequences come back empty so the copy always
// serializes them as [].
func (s SurveyData) Clone() SurveyData {
	out := s
	out.Meta.CompletedAt = clonePtr(s.Meta.CompletedAt)

	out.BasicProfile.Age = clonePtr(s.BasicProfile.Age)
	out.BasicProfile.WeightPounds = s.BasicProfile.WeightPounds.Clone()
	out.BasicProfile.Height = clonePtr(s.BasicProfile.Height)
	out.BasicProfile.HeightInchesTotal = clonePtr(s.BasicProfile.HeightInchesTotal)
	out.BasicProfile.SexAssignedAtBirth = clonePtr(s.BasicProfile.SexAssignedAtBirth)
	out.BasicProfile.Ancestries = cloneSlice(s.BasicProfile.Ancestries, Ancestry.Clone)

	out.MedicalHistory.Conditions = cloneSlice(s.MedicalHistory.Conditions, Condition.Clone)
	out.MedicalHistory.SurgeriesOrHospitalStays = cloneSlice(s.MedicalHistory.SurgeriesOrHospitalStays, identity[string])
	out.MedicalHistory.Allergies = cloneSlice(s.MedicalHistory.Allergies, Allergy.Clone)

	out.MedicationsAndSupplements.Medications = cloneSlice(s.MedicationsAndSupplements.Medications, MedicationOrSupplement.Clone)
	out.MedicationsAndSupplements.Supplements = cloneSlice(s.MedicationsAndSupplements.Supplements, MedicationOrSupplement.Clone)

	out.Miscellaneous.CAMFields = cloneSlice(s.Miscellaneous.CAMFields, identity[string])
	out.Miscellaneous.WearableDevices = cloneSlice(s.Miscellaneous.WearableDevices, identity[string])
	return out
}

func (a Ancestry) Clone() Ancestry {
	a.OtherNote = clonePtr(a.OtherNote)
	return a
}

func (c Condition) Clone() Condition {
	c.StartYear = clonePtr(c.StartYear)
	c.OtherNote = clonePtr(c.OtherNote)
	return c
}

func (a Allergy) Clone() Allergy {
	a.Reaction = clonePtr(a.Reaction)
	a.OtherNote = clonePtr(a.OtherNote)
	return a
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneSlice[T any](in []T, clone func(T) T) []T {
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = clone(v)
	}
	return out
}

func identity[T any](v T) T { return v }
