package survey

import (
	"fmt"

	"intake-service/internal/app/models"
	"intake-service/internal/pkg/constvars"
)

const (
	IntroQuestionID = 0
	LastQuestionID  = constvars.SurveyTotalQuestions
)

var catalog = []Question{
	newQuestion(0, constvars.SurveyStepIntro,
		"Welcome!",
		"Hi, I'm your survey assistant. We'll go through 12 quick questions (~3 minutes). No rush, your progress is saved automatically. Ready?",
		introHandler{}),
	newQuestion(1, constvars.SurveyStepBasicProfile,
		"Question 1/12: Age",
		"How old are you?",
		numericTextHandler{field: FieldAge}),
	newQuestion(2, constvars.SurveyStepBasicProfile,
		"Question 2/12: Weight",
		"What is your weight? (e.g., '150 lbs' or '68 kg')",
		freeTextHandler[models.Weight]{field: FieldWeightPounds, wrap: rawWeight}),
	newQuestion(3, constvars.SurveyStepBasicProfile,
		"Question 3/12: Height",
		"What is your height? (e.g., '5ft 10in' or '178 cm')",
		freeTextHandler[*string]{field: FieldHeight, wrap: identity[*string]}),
	newQuestion(4, constvars.SurveyStepBasicProfile,
		"Question 4/12: Sex Assigned at Birth",
		"What was your sex assigned at birth?",
		freeTextHandler[*string]{field: FieldSexAssignedAtBirth, wrap: identity[*string]}),
	newQuestion(5, constvars.SurveyStepBasicProfile,
		"Question 5/12: Ancestries",
		"Which ancestries apply to you? (Choose from the list. If 'Other', please specify in the text box below.)",
		multiChoiceWithOtherHandler[models.Ancestry]{
			field:   FieldAncestries,
			options: constvars.AncestriesEnum,
			other:   constvars.SurveyOptionOther,
			newEntry: func(label string, note *string) models.Ancestry {
				return models.Ancestry{Label: label, OtherNote: note}
			},
			labelOf: func(a models.Ancestry) string { return a.Label },
			withNote: func(a models.Ancestry, note *string) models.Ancestry {
				a.OtherNote = note
				return a
			},
		}),
	newQuestion(6, constvars.SurveyStepMedicalHistory,
		"Question 6/12: Medical Conditions",
		"Please select any conditions from this list. (If 'Other', specify in the text box below. If 'None', choose only 'None'. The AI agent would then ask for the start year for each selected condition.)",
		multiChoiceWithOtherHandler[models.Condition]{
			field:   FieldConditions,
			options: constvars.MedicalConditionsEnum,
			other:   constvars.SurveyOptionOther,
			none:    constvars.SurveyOptionNone,
			newEntry: func(label string, note *string) models.Condition {
				return models.Condition{Label: label, OtherNote: note}
			},
			labelOf: func(c models.Condition) string { return c.Label },
			withNote: func(c models.Condition, note *string) models.Condition {
				c.OtherNote = note
				return c
			},
		}),
	newQuestion(7, constvars.SurveyStepMedicalHistory,
		"Question 7/12: Surgeries or Hospital Stays",
		`Any surgeries or overnight hospital stays? (List as "procedure (year)". Say "none" if none. The AI agent will parse this free text.)`,
		freeTextListHandler[string]{field: FieldSurgeries, item: identity[string]}),
	newQuestion(8, constvars.SurveyStepMedicalHistory,
		"Question 8/12: Allergies",
		`Do you have any allergies? (Choose from allergens list. If "Other Allergens", please specify allergen name(s) in the text box below. The AI agent would then ask for the reaction for each selected allergy.)`,
		multiChoiceWithOtherHandler[models.Allergy]{
			field:   FieldAllergies,
			options: constvars.AllergensEnum,
			other:   constvars.SurveyOptionOtherAllergens,
			none:    constvars.SurveyOptionNone,
			newEntry: func(label string, note *string) models.Allergy {
				return models.Allergy{Label: label, OtherNote: note}
			},
			labelOf: func(a models.Allergy) string { return a.Label },
			withNote: func(a models.Allergy, note *string) models.Allergy {
				a.OtherNote = note
				return a
			},
		}),
	newQuestion(9, constvars.SurveyStepMedicationsAndSupplements,
		"Question 9/12: Medications",
		`Do you take any medications? (For each: Name, Dose/Strength, Frequency, Purpose. List each medication on a new line. Say "none" if none. The AI agent will parse this free text.)`,
		freeTextListHandler[models.MedicationOrSupplement]{field: FieldMedications, item: models.BareMedicationOrSupplement}),
	newQuestion(10, constvars.SurveyStepMedicationsAndSupplements,
		"Question 10/12: Supplements",
		`Do you take any supplements? (For each: Name, Dose/Strength, Frequency, Purpose. List each supplement on a new line. Say "none" if none. The AI agent will parse this free text.)`,
		freeTextListHandler[models.MedicationOrSupplement]{field: FieldSupplements, item: models.BareMedicationOrSupplement}),
	newQuestion(11, constvars.SurveyStepMiscellaneous,
		"Question 11/12: CAM Fields",
		"Which complementary & alternative medicine (CAM) fields do you prefer? (Options: Functional Medicine, Ayurveda, Traditional Chinese Medicine, Homeopathy, Hanyak, All. 'All' expands to all options except 'All'.)",
		multiChoiceHandler{
			field:     FieldCAMFields,
			options:   constvars.CAMFieldsEnum,
			synonyms:  constvars.SurveyCAMFieldSynonyms,
			expandAll: constvars.SurveyOptionAll,
		}),
	newQuestion(12, constvars.SurveyStepMiscellaneous,
		"Question 12/12: Wearable Devices",
		"Do you use any of these wearable devices? (OURA Ring, Apple Watch, Google Pixel Watch, Fitbit, None.)",
		multiChoiceHandler{
			field:     FieldWearableDevices,
			options:   constvars.WearablesEnum,
			exclusive: constvars.SurveyOptionNone,
		}),
}

func newQuestion(id int, step, title, description string, handler answerHandler) Question {
	q := Question{
		ID:          id,
		Step:        step,
		Title:       title,
		Description: description,
		Kind:        handler.kind(),
		Path:        handler.path(),
		handler:     handler,
	}
	for _, label := range handler.optionLabels() {
		q.Options = append(q.Options, Option{Label: label, Value: label})
	}
	if other, ok := handler.(otherNoteHandler); ok {
		q.OtherLabel = other.otherLabel()
	}
	return q
}

func rawWeight(text *string) models.Weight {
	if text == nil {
		return models.Weight{}
	}
	return models.RawWeight(*text)
}

func identity[T any](v T) T { return v }

// Questions returns the catalog in presentation order, intro first.
func Questions() []Question {
	out := make([]Question, len(catalog))
	copy(out, catalog)
	return out
}

func QuestionByID(id int) (Question, error) {
	if id < 0 || id >= len(catalog) {
		return Question{}, fmt.Errorf("%w: %d", ErrUnknownQuestion, id)
	}
	return catalog[id], nil
}

// QuestionByPath returns the question that writes the given dotted path.
func QuestionByPath(path string) (Question, bool) {
	for _, q := range catalog {
		if q.Path != "" && q.Path == path {
			return q, true
		}
	}
	return Question{}, false
}
