package constvars

const (
	URLParamSessionID  = "session_id"
	URLParamQuestionID = "question_id"
)
