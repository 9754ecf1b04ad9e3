package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	GetQuestionsSuccessMessage         = "get questions successfully"
	CreateIntakeSessionSuccessMessage  = "intake session created successfully"
	GetIntakeSessionSuccessMessage     = "get intake session successfully"
	AnswerQuestionSuccessMessage       = "answer saved successfully"
	UpdateOtherNoteSuccessMessage      = "other note saved successfully"
	MoveIntakeSessionSuccessMessage    = "intake session moved successfully"
	FinishIntakeSessionSuccessMessage  = "intake session finished successfully"
	RestartIntakeSessionSuccessMessage = "intake session restarted successfully"
	GetIntakeDocumentSuccessMessage    = "get intake document successfully"
	DeleteIntakeSessionSuccessMessage  = "intake session deleted successfully"
)
