package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/ustazlink/survey-backend/internal/logger"
	"github.com/ustazlink/survey-backend/internal/model"
	"github.com/ustazlink/survey-backend/internal/repository"
)

// QuestionService manages the dynamic question catalog.
type QuestionService struct {
	repo QuestionStore
	log  zerolog.Logger
}

// NewQuestionService creates a new QuestionService.
func NewQuestionService(repo QuestionStore, log zerolog.Logger) *QuestionService {
	return &QuestionService{
		repo: repo,
		log:  logger.Component(log, "question_service"),
	}
}

// List returns catalog entries matching the filter, in display order.
func (s *QuestionService) List(ctx context.Context, f repository.QuestionFilter) ([]model.SurveyQuestion, error) {
	return s.repo.List(ctx, f)
}

// Get retrieves a single catalog entry.
func (s *QuestionService) Get(ctx context.Context, id int) (*model.SurveyQuestion, error) {
	return s.repo.GetByID(ctx, id)
}

// Create adds a catalog entry. Unset question_type defaults to choice and
// unset is_active defaults to true, matching the reset catalog.
func (s *QuestionService) Create(ctx context.Context, req *model.CreateQuestionRequest) (*model.SurveyQuestion, error) {
	q := &model.SurveyQuestion{
		SurveyType:   req.SurveyType,
		Section:      req.Section,
		Identifier:   req.Identifier,
		TextEN:       req.TextEN,
		TextAR:       req.TextAR,
		QuestionType: req.QuestionType,
		OptionsEN:    req.OptionsEN,
		OptionsAR:    req.OptionsAR,
		Order:        req.Order,
		IsActive:     true,
	}
	if q.QuestionType == "" {
		q.QuestionType = model.QuestionTypeChoice
	}
	if req.IsActive != nil {
		q.IsActive = *req.IsActive
	}
	if q.OptionsEN == nil {
		q.OptionsEN = []string{}
	}
	if q.OptionsAR == nil {
		q.OptionsAR = []string{}
	}

	if err := s.repo.Create(ctx, q); err != nil {
		return nil, err
	}
	s.log.Info().Int("id", q.ID).Str("identifier", q.Identifier).Msg("question created")
	return q, nil
}

// Update edits a catalog entry. Survey type and identifier are immutable.
func (s *QuestionService) Update(ctx context.Context, id int, req *model.UpdateQuestionRequest) (*model.SurveyQuestion, error) {
	q, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	q.Section = req.Section
	q.TextEN = req.TextEN
	q.TextAR = req.TextAR
	q.QuestionType = req.QuestionType
	q.OptionsEN = req.OptionsEN
	q.OptionsAR = req.OptionsAR
	q.Order = req.Order
	q.IsActive = *req.IsActive
	if q.OptionsEN == nil {
		q.OptionsEN = []string{}
	}
	if q.OptionsAR == nil {
		q.OptionsAR = []string{}
	}

	if err := s.repo.Update(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

// ResetToDefaults wipes the catalog for one survey type and restores the
// built-in bilingual set. Returns the number of questions created.
func (s *QuestionService) ResetToDefaults(ctx context.Context, surveyType model.SurveyType) (int, error) {
	var defaults []model.SurveyQuestion
	switch surveyType {
	case model.SurveyTypeStudent:
		defaults = defaultStudentQuestions()
	case model.SurveyTypeTeacher:
		defaults = defaultTeacherQuestions()
	}

	count, err := s.repo.ReplaceAll(ctx, surveyType, defaults)
	if err != nil {
		return 0, err
	}
	s.log.Info().Str("survey_type", string(surveyType)).Int("count", count).Msg("question catalog reset")
	return count, nil
}
