package constvars

const (
	SurveyAssistantVersion = "v1"
	SurveyTotalQuestions   = 12
)

// Sentinel labels that change how a selection is stored.
const (
	SurveyOptionNone           = "None"
	SurveyOptionOther          = "Other"
	SurveyOptionOtherAllergens = "Other Allergens"
	SurveyOptionAll            = "All"
)

const SurveyEnrichmentPlaceholder = "N/A (Agent parses)"

const (
	SurveyStepIntro                     = "Intro"
	SurveyStepBasicProfile              = "Basic Profile"
	SurveyStepMedicalHistory            = "Medical History"
	SurveyStepMedicationsAndSupplements = "Medications & Supplements"
	SurveyStepMiscellaneous             = "Miscellaneous"
)

const (
	PoundsPerKilogram  = 2.20462
	CentimetersPerInch = 2.54
)

// Free-text answers equal to one of these are stored as null (or an empty list).
var SurveySkipTokens = []string{"skip", "none", "not sure"}

// Free-text answers equal to one of these end the survey.
var SurveyCompletionCommands = []string{"done", "finish", "stop"}

var SurveyCAMFieldSynonyms = map[string]string{
	"TCM":                     "Traditional Chinese Medicine",
	"Hanbang/Korean Medicine": "Hanyak",
}

var MedicalConditionsEnum = []string{
	"Anxiety disorder", "Arthritis", "Asthma", "Bleeding disorder", "Blood clots/DVT",
	"Cancer", "Coronary artery disease", "Claustrophobic", "Diabetes (insulin)",
	"Diabetes (non-insulin)", "Dialysis", "Diverticulitis", "Fibromyalgia", "Gout",
	"Has pacemaker", "Heart attack", "Heart murmur", "Hiatal hernia/reflux disease",
	"HIV/AIDS", "High cholesterol", "High blood pressure", "Overactive thyroid",
	"Kidney disease", "Kidney stones", "Leg/foot ulcers", "Liver disease", "Osteoporosis",
	"Polio", "Pulmonary embolism", "Reflux/ulcers", "Stroke", "Tuberculosis",
	"Other", "None",
}

var AncestriesEnum = []string{
	"African-American", "East Asian", "Northern European/Caucasian",
	"Hispanic/Latino", "Native American", "Pacific Islander", "South Asian",
	"Mediterranean", "Middle Eastern", "Ashkenazi Jewish", "Other",
}

var AllergensEnum = []string{
	"Artificial Colors & Dyes (FD&C Yellow No. 5)", "Nuts", "Dairy", "Egg", "Gluten",
	"Soy", "Fish (e.g., Salmon, Tuna)", "Shellfish (e.g., Shrimp, Crab, Lobster)",
	"Sesame", "Corn", "Gelatin", "Other Allergens",
}

var CAMFieldsEnum = []string{
	"Functional Medicine", "Ayurveda", "Traditional Chinese Medicine",
	"Homeopathy", "Hanyak", "All",
}

var WearablesEnum = []string{
	"OURA Ring", "Apple Watch", "Google Pixel Watch", "Fitbit", "None",
}
