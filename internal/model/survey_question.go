package model

// QuestionType distinguishes multiple-choice from free-text questions.
type QuestionType string

const (
	QuestionTypeChoice QuestionType = "choice"
	QuestionTypeText   QuestionType = "text"
)

// SurveyQuestion is one localized catalog entry. (survey_type, identifier)
// is unique; Order defines the display sequence within a survey type.
type SurveyQuestion struct {
	ID           int          `json:"id"`
	SurveyType   SurveyType   `json:"survey_type"`
	Section      string       `json:"section"`
	Identifier   string       `json:"identifier"`
	TextEN       string       `json:"text_en"`
	TextAR       string       `json:"text_ar"`
	QuestionType QuestionType `json:"question_type"`
	OptionsEN    []string     `json:"options_en"`
	OptionsAR    []string     `json:"options_ar"`
	Order        int          `json:"order"`
	IsActive     bool         `json:"is_active"`
}

// CreateQuestionRequest is the admin payload for adding a catalog entry.
type CreateQuestionRequest struct {
	SurveyType   SurveyType   `json:"survey_type" binding:"required,oneof=student teacher"`
	Section      string       `json:"section" binding:"required,max=50"`
	Identifier   string       `json:"identifier" binding:"required,max=50"`
	TextEN       string       `json:"text_en" binding:"required"`
	TextAR       string       `json:"text_ar" binding:"required"`
	QuestionType QuestionType `json:"question_type" binding:"omitempty,oneof=choice text"`
	OptionsEN    []string     `json:"options_en"`
	OptionsAR    []string     `json:"options_ar"`
	Order        int          `json:"order" binding:"min=0"`
	IsActive     *bool        `json:"is_active"`
}

// UpdateQuestionRequest is the admin payload for editing a catalog entry.
type UpdateQuestionRequest struct {
	Section      string       `json:"section" binding:"required,max=50"`
	TextEN       string       `json:"text_en" binding:"required"`
	TextAR       string       `json:"text_ar" binding:"required"`
	QuestionType QuestionType `json:"question_type" binding:"required,oneof=choice text"`
	OptionsEN    []string     `json:"options_en"`
	OptionsAR    []string     `json:"options_ar"`
	Order        int          `json:"order" binding:"min=0"`
	IsActive     *bool        `json:"is_active" binding:"required"`
}

// ResetQuestionsRequest selects which survey type to restore to defaults.
type ResetQuestionsRequest struct {
	SurveyType SurveyType `json:"survey_type" binding:"required,oneof=student teacher"`
}
