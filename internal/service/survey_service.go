package service

import (
	"context"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/ustazlink/survey-backend/internal/config"
	"github.com/ustazlink/survey-backend/internal/logger"
	"github.com/ustazlink/survey-backend/internal/model"
	"github.com/ustazlink/survey-backend/internal/phone"
)

// Validation messages for the checks that binding tags cannot express.
const (
	msgNameRequired  = "Full name is required."
	msgNameTooShort  = "Full name must be at least 3 characters long."
	msgPhoneRequired = "Phone number is required."
)

// CheckPhoneResult is the duplicate-check outcome. Valid and Exists
// are independent: a phone can be well-formed yet already taken.
type CheckPhoneResult struct {
	Valid  bool     `json:"valid"`
	Exists bool     `json:"exists"`
	Errors []string `json:"error,omitempty"`
}

// SurveyService validates and persists survey submissions.
type SurveyService struct {
	studentRepo StudentSurveyStore
	teacherRepo TeacherSurveyStore
	rdb         *redis.Client
	log         zerolog.Logger
}

// NewSurveyService creates a new SurveyService.
func NewSurveyService(
	studentRepo StudentSurveyStore,
	teacherRepo TeacherSurveyStore,
	rdb *redis.Client,
	log zerolog.Logger,
) *SurveyService {
	return &SurveyService{
		studentRepo: studentRepo,
		teacherRepo: teacherRepo,
		rdb:         rdb,
		log:         logger.Component(log, "survey_service"),
	}
}

// SubmitStudent validates and persists one student response. Field errors
// are collected, not short-circuited; a non-nil map means nothing was saved.
func (s *SurveyService) SubmitStudent(ctx context.Context, req *model.CreateStudentSurveyRequest, ip string) (*model.StudentSurvey, map[string][]string, error) {
	fieldErrs := make(map[string][]string)

	name := strings.TrimSpace(req.FullName)
	switch {
	case name == "":
		fieldErrs["full_name"] = append(fieldErrs["full_name"], msgNameRequired)
	case len(name) < 3:
		fieldErrs["full_name"] = append(fieldErrs["full_name"], msgNameTooShort)
	}

	// Phone is optional for students; blank means no identity attached.
	var canonicalPhone *string
	if req.PhoneNumber != nil && strings.TrimSpace(*req.PhoneNumber) != "" {
		normalized, err := phone.Normalize(*req.PhoneNumber)
		if err != nil {
			fieldErrs["phone_number"] = append(fieldErrs["phone_number"], err.Error())
		} else {
			canonicalPhone = &normalized
		}
	}

	if len(fieldErrs) > 0 {
		return nil, fieldErrs, nil
	}

	survey := &model.StudentSurvey{
		FullName:               name,
		AgeRange:               req.AgeRange,
		Gender:                 req.Gender,
		PhoneNumber:            canonicalPhone,
		QuranExperience:        req.QuranExperience,
		TakenOnlineLessons:     *req.TakenOnlineLessons,
		OnlineLessonsReason:    req.OnlineLessonsReason,
		TeacherChallenges:      req.TeacherChallenges,
		TimePreference:         req.TimePreference,
		PreferredSessionLength: req.PreferredSessionLength,
		PreferredFrequency:     req.PreferredFrequency,
		FairPriceETB:           req.FairPriceETB,
		SubjectsOfInterest:     req.SubjectsOfInterest,
		TrustFactors:           req.TrustFactors,
		WillingToTry:           *req.WillingToTry,
		WillingToTryReason:     req.WillingToTryReason,
		DesiredFeatures:        req.DesiredFeatures,
		DynamicResponses:       req.DynamicResponses,
	}
	if survey.DynamicResponses == nil {
		survey.DynamicResponses = map[string]any{}
	}
	if ip != "" {
		survey.IPAddress = &ip
	}

	if err := s.studentRepo.Create(ctx, survey); err != nil {
		return nil, nil, err
	}

	s.invalidateAnalytics(ctx, model.SurveyTypeStudent)
	s.log.Info().Int("id", survey.ID).Msg("student survey submitted")
	return survey, nil, nil
}

// SubmitTeacher validates and persists one teacher response. Phone is
// mandatory for teachers.
func (s *SurveyService) SubmitTeacher(ctx context.Context, req *model.CreateTeacherSurveyRequest, ip string) (*model.TeacherSurvey, map[string][]string, error) {
	fieldErrs := make(map[string][]string)

	name := strings.TrimSpace(req.FullName)
	switch {
	case name == "":
		fieldErrs["full_name"] = append(fieldErrs["full_name"], msgNameRequired)
	case len(name) < 3:
		fieldErrs["full_name"] = append(fieldErrs["full_name"], msgNameTooShort)
	}

	var canonicalPhone string
	if strings.TrimSpace(req.PhoneNumber) == "" {
		fieldErrs["phone_number"] = append(fieldErrs["phone_number"], msgPhoneRequired)
	} else {
		normalized, err := phone.Normalize(req.PhoneNumber)
		if err != nil {
			fieldErrs["phone_number"] = append(fieldErrs["phone_number"], err.Error())
		} else {
			canonicalPhone = normalized
		}
	}

	if len(fieldErrs) > 0 {
		return nil, fieldErrs, nil
	}

	survey := &model.TeacherSurvey{
		FullName:                  name,
		AgeRange:                  req.AgeRange,
		Gender:                    req.Gender,
		PhoneNumber:               canonicalPhone,
		TeachingBackground:        req.TeachingBackground,
		TeachingBackgroundDetails: req.TeachingBackgroundDetails,
		TriedOnlineTeaching:       *req.TriedOnlineTeaching,
		OnlineTeachingReason:      req.OnlineTeachingReason,
		TeachingChallenges:        req.TeachingChallenges,
		StudentsPerWeek:           req.StudentsPerWeek,
		PreferredSessionLength:    req.PreferredSessionLength,
		FairRateETB:               req.FairRateETB,
		ConfidentTopics:           req.ConfidentTopics,
		WouldJoinPlatform:         *req.WouldJoinPlatform,
		SupportNeeded:             req.SupportNeeded,
		PlatformConcerns:          req.PlatformConcerns,
		FeedbackPreferences:       req.FeedbackPreferences,
		WantsEarlyAccess:          req.WantsEarlyAccess,
		EarlyAccessContact:        req.EarlyAccessContact,
		DynamicResponses:          req.DynamicResponses,
	}
	if survey.DynamicResponses == nil {
		survey.DynamicResponses = map[string]any{}
	}
	if ip != "" {
		survey.IPAddress = &ip
	}

	if err := s.teacherRepo.Create(ctx, survey); err != nil {
		return nil, nil, err
	}

	s.invalidateAnalytics(ctx, model.SurveyTypeTeacher)
	s.log.Info().Int("id", survey.ID).Msg("teacher survey submitted")
	return survey, nil, nil
}

// ListStudents returns all student responses, most recent first.
func (s *SurveyService) ListStudents(ctx context.Context) ([]model.StudentSurvey, error) {
	return s.studentRepo.List(ctx)
}

// ListTeachers returns all teacher responses, most recent first.
func (s *SurveyService) ListTeachers(ctx context.Context) ([]model.TeacherSurvey, error) {
	return s.teacherRepo.List(ctx)
}

// GetStudent retrieves a single student response.
func (s *SurveyService) GetStudent(ctx context.Context, id int) (*model.StudentSurvey, error) {
	return s.studentRepo.GetByID(ctx, id)
}

// GetTeacher retrieves a single teacher response.
func (s *SurveyService) GetTeacher(ctx context.Context, id int) (*model.TeacherSurvey, error) {
	return s.teacherRepo.GetByID(ctx, id)
}

// CheckPhone normalizes a raw phone and reports whether a record of the
// given survey type already holds the canonical number. Read-only.
func (s *SurveyService) CheckPhone(ctx context.Context, surveyType model.SurveyType, raw string) (*CheckPhoneResult, error) {
	if strings.TrimSpace(raw) == "" {
		return &CheckPhoneResult{Valid: false, Exists: false, Errors: []string{msgPhoneRequired}}, nil
	}

	normalized, err := phone.Normalize(raw)
	if err != nil {
		return &CheckPhoneResult{Valid: false, Exists: false, Errors: []string{err.Error()}}, nil
	}

	var exists bool
	switch surveyType {
	case model.SurveyTypeStudent:
		exists, err = s.studentRepo.ExistsByPhone(ctx, normalized)
	case model.SurveyTypeTeacher:
		exists, err = s.teacherRepo.ExistsByPhone(ctx, normalized)
	}
	if err != nil {
		return nil, err
	}
	return &CheckPhoneResult{Valid: true, Exists: exists}, nil
}

// invalidateAnalytics drops cached analytics affected by a new submission.
// Best effort: a stale cache entry only delays the dashboard by one TTL.
func (s *SurveyService) invalidateAnalytics(ctx context.Context, surveyType model.SurveyType) {
	if s.rdb == nil {
		return
	}
	keys := config.CacheKey.SurveyAnalyticsKeys(string(surveyType))
	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		s.log.Warn().Err(err).Strs("keys", keys).Msg("analytics cache invalidation failed")
	}
}
