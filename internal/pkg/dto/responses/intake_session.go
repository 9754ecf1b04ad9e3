package responses

import (
	"time"

	"intake-service/internal/app/models"
)

type QuestionOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Question struct {
	ID          int              `json:"id"`
	Step        string           `json:"step"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Type        string           `json:"type"`
	Key         string           `json:"key,omitempty"`
	Options     []QuestionOption `json:"options,omitempty"`
	OtherLabel  string           `json:"other_label,omitempty"`
}

type IntakeSession struct {
	SessionID       string                `json:"session_id"`
	CurrentQuestion Question              `json:"current_question"`
	Selection       []string              `json:"selection,omitempty"`
	Progress        models.SurveyProgress `json:"progress"`
	Completed       bool                  `json:"completed"`
	OtherNotes      map[string]string     `json:"other_notes"`
	Record          models.SurveyData     `json:"record"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
}

type IntakeSessionCreated struct {
	IntakeSession
	SessionToken string `json:"session_token"`
}

type IntakeDocument struct {
	SessionID string            `json:"session_id"`
	Document  models.SurveyData `json:"document"`
}
