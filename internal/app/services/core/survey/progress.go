package survey

import (
	"intake-service/internal/app/models"
	"intake-service/internal/pkg/constvars"
)

// CountAnswered returns how many of the twelve questions hold an answer.
// Scalars count when set and non-empty; lists count when non-empty, except
// that a list whose first entry is the "None" sentinel does not count.
func CountAnswered(record models.SurveyData) int {
	profile := record.BasicProfile
	history := record.MedicalHistory
	meds := record.MedicationsAndSupplements
	misc := record.Miscellaneous

	checks := []bool{
		profile.Age != nil,
		hasWeight(profile.WeightPounds),
		hasText(profile.Height),
		hasText(profile.SexAssignedAtBirth),
		len(profile.Ancestries) > 0 && profile.Ancestries[0].Label != constvars.SurveyOptionNone,
		len(history.Conditions) > 0 && history.Conditions[0].Label != constvars.SurveyOptionNone,
		len(history.SurgeriesOrHospitalStays) > 0,
		len(history.Allergies) > 0 && history.Allergies[0].Label != constvars.SurveyOptionNone,
		len(meds.Medications) > 0,
		len(meds.Supplements) > 0,
		len(misc.CAMFields) > 0,
		len(misc.WearableDevices) > 0 && misc.WearableDevices[0] != constvars.SurveyOptionNone,
	}

	answered := 0
	for _, ok := range checks {
		if ok {
			answered++
		}
	}
	return answered
}

func hasText(value *string) bool {
	return value != nil && *value != ""
}

func hasWeight(w models.Weight) bool {
	if w.Pounds != nil {
		return true
	}
	return hasText(w.Raw)
}
