package survey

import (
	"time"

	"intake-service/internal/app/models"
	"intake-service/internal/pkg/constvars"
)

// CompletedAtLayout renders completed_at as an ISO 8601 UTC instant with
// millisecond precision, e.g. 2024-05-01T09:30:00.000Z.
const CompletedAtLayout = "2006-01-02T15:04:05.000Z"

// Finalize runs the completion pass over record and returns the terminal
// document. Unit conversions only touch values that are still raw text, so
// running Finalize on its own output changes nothing except completed_at.
func Finalize(record models.SurveyData, now time.Time) models.SurveyData {
	out := record.Clone()

	out.Meta.AssistantVersion = constvars.SurveyAssistantVersion
	out.Meta.Progress = models.SurveyProgress{
		TotalQuestions: constvars.SurveyTotalQuestions,
		Answered:       CountAnswered(out),
	}
	completedAt := now.UTC().Format(CompletedAtLayout)
	out.Meta.CompletedAt = &completedAt

	out.BasicProfile.WeightPounds = finalizeWeight(out.BasicProfile.WeightPounds)
	out.BasicProfile.HeightInchesTotal = finalizeHeight(out.BasicProfile.Height, out.BasicProfile.HeightInchesTotal)

	out.MedicationsAndSupplements.Medications = liftForEnrichment(out.MedicationsAndSupplements.Medications)
	out.MedicationsAndSupplements.Supplements = liftForEnrichment(out.MedicationsAndSupplements.Supplements)
	return out
}

func finalizeWeight(w models.Weight) models.Weight {
	if !w.IsRaw() {
		return w
	}
	pounds := ParseWeightPounds(*w.Raw)
	if pounds == nil {
		return models.Weight{}
	}
	return models.WeightInPounds(*pounds)
}

func finalizeHeight(height *string, inches *int) *int {
	if height == nil || inches != nil {
		return inches
	}
	return ParseHeightInches(*height)
}

// liftForEnrichment turns bare free-text entries into structured entries
// whose detail fields carry the enrichment placeholder.
func liftForEnrichment(entries []models.MedicationOrSupplement) []models.MedicationOrSupplement {
	out := make([]models.MedicationOrSupplement, len(entries))
	for i, entry := range entries {
		if entry.IsBare() {
			entry = models.MedicationOrSupplement{
				Name:         entry.Name,
				DoseStrength: placeholder(),
				Frequency:    placeholder(),
				Purpose:      placeholder(),
			}
		}
		out[i] = entry
	}
	return out
}

func placeholder() *string {
	value := constvars.SurveyEnrichmentPlaceholder
	return &value
}
