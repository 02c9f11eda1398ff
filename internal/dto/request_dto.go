package dto

// CreateAttemptRequest starts a new attempt for a student on an exam.
type CreateAttemptRequest struct {
	ExamID    uint `json:"exam_id" binding:"required"`
	StudentID uint `json:"student_id" binding:"required"`
}

// SaveAnswerRequest records or replaces a student's answer for one question
// of an in-progress attempt. Exactly one of AnswerText or SelectedOptions
// is expected depending on the question type.
type SaveAnswerRequest struct {
	QuestionID      uint     `json:"question_id" binding:"required"`
	AnswerText      string   `json:"answer_text"`
	SelectedOptions []string `json:"selected_options"`
}

// ViolationRequest reports one proctoring incident against an attempt.
type ViolationRequest struct {
	Type        string         `json:"type" binding:"required,oneof=tab_switch copy_paste fullscreen_exit face_not_detected multiple_faces suspicious_activity"`
	Description string         `json:"description"`
	Metadata    map[string]any `json:"metadata"`
}
