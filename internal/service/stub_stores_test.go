package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ustazlink/survey-backend/internal/model"
	"github.com/ustazlink/survey-backend/internal/repository"
)

// In-memory stores backing the service tests. They mimic the repository
// contracts: duplicate phones fail, List returns most recent first.

type stubStudentStore struct {
	records   []model.StudentSurvey
	createErr error
}

func (s *stubStudentStore) Create(_ context.Context, rec *model.StudentSurvey) error {
	if s.createErr != nil {
		return s.createErr
	}
	if rec.PhoneNumber != nil {
		for i := range s.records {
			if s.records[i].PhoneNumber != nil && *s.records[i].PhoneNumber == *rec.PhoneNumber {
				return repository.ErrDuplicatePhone
			}
		}
	}
	rec.ID = len(s.records) + 1
	if rec.SubmittedAt.IsZero() {
		rec.SubmittedAt = time.Now()
	}
	s.records = append(s.records, *rec)
	return nil
}

func (s *stubStudentStore) GetByID(_ context.Context, id int) (*model.StudentSurvey, error) {
	for i := range s.records {
		if s.records[i].ID == id {
			rec := s.records[i]
			return &rec, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (s *stubStudentStore) List(_ context.Context) ([]model.StudentSurvey, error) {
	out := append([]model.StudentSurvey{}, s.records...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].SubmittedAt.After(out[j].SubmittedAt) })
	return out, nil
}

func (s *stubStudentStore) ExistsByPhone(_ context.Context, phone string) (bool, error) {
	for i := range s.records {
		if s.records[i].PhoneNumber != nil && *s.records[i].PhoneNumber == phone {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubStudentStore) Count(_ context.Context) (int, error) {
	return len(s.records), nil
}

func (s *stubStudentStore) LastSubmittedAt(_ context.Context) (*time.Time, error) {
	var last *time.Time
	for i := range s.records {
		t := s.records[i].SubmittedAt
		if last == nil || t.After(*last) {
			last = &t
		}
	}
	return last, nil
}

type stubTeacherStore struct {
	records   []model.TeacherSurvey
	createErr error
}

func (s *stubTeacherStore) Create(_ context.Context, rec *model.TeacherSurvey) error {
	if s.createErr != nil {
		return s.createErr
	}
	for i := range s.records {
		if s.records[i].PhoneNumber == rec.PhoneNumber {
			return repository.ErrDuplicatePhone
		}
	}
	rec.ID = len(s.records) + 1
	if rec.SubmittedAt.IsZero() {
		rec.SubmittedAt = time.Now()
	}
	s.records = append(s.records, *rec)
	return nil
}

func (s *stubTeacherStore) GetByID(_ context.Context, id int) (*model.TeacherSurvey, error) {
	for i := range s.records {
		if s.records[i].ID == id {
			rec := s.records[i]
			return &rec, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (s *stubTeacherStore) List(_ context.Context) ([]model.TeacherSurvey, error) {
	out := append([]model.TeacherSurvey{}, s.records...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].SubmittedAt.After(out[j].SubmittedAt) })
	return out, nil
}

func (s *stubTeacherStore) ExistsByPhone(_ context.Context, phone string) (bool, error) {
	for i := range s.records {
		if s.records[i].PhoneNumber == phone {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubTeacherStore) Count(_ context.Context) (int, error) {
	return len(s.records), nil
}

func (s *stubTeacherStore) LastSubmittedAt(_ context.Context) (*time.Time, error) {
	var last *time.Time
	for i := range s.records {
		t := s.records[i].SubmittedAt
		if last == nil || t.After(*last) {
			last = &t
		}
	}
	return last, nil
}

type stubQuestionStore struct {
	questions []model.SurveyQuestion
	nextID    int
}

func (s *stubQuestionStore) assignID(q *model.SurveyQuestion) {
	s.nextID++
	q.ID = s.nextID
}

func (s *stubQuestionStore) List(_ context.Context, f repository.QuestionFilter) ([]model.SurveyQuestion, error) {
	var out []model.SurveyQuestion
	for _, q := range s.questions {
		if f.SurveyType != nil && q.SurveyType != *f.SurveyType {
			continue
		}
		if f.Section != nil && q.Section != *f.Section {
			continue
		}
		if f.IsActive != nil && q.IsActive != *f.IsActive {
			continue
		}
		out = append(out, q)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *stubQuestionStore) GetByID(_ context.Context, id int) (*model.SurveyQuestion, error) {
	for i := range s.questions {
		if s.questions[i].ID == id {
			q := s.questions[i]
			return &q, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (s *stubQuestionStore) Create(_ context.Context, q *model.SurveyQuestion) error {
	for i := range s.questions {
		if s.questions[i].SurveyType == q.SurveyType && s.questions[i].Identifier == q.Identifier {
			return repository.ErrDuplicateIdentifier
		}
	}
	s.assignID(q)
	s.questions = append(s.questions, *q)
	return nil
}

func (s *stubQuestionStore) Update(_ context.Context, q *model.SurveyQuestion) error {
	for i := range s.questions {
		if s.questions[i].ID == q.ID {
			s.questions[i] = *q
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (s *stubQuestionStore) ReplaceAll(_ context.Context, surveyType model.SurveyType, questions []model.SurveyQuestion) (int, error) {
	kept := s.questions[:0]
	for _, q := range s.questions {
		if q.SurveyType != surveyType {
			kept = append(kept, q)
		}
	}
	s.questions = kept
	for i := range questions {
		s.assignID(&questions[i])
		s.questions = append(s.questions, questions[i])
	}
	return len(questions), nil
}

type stubAdminStore struct {
	admins []model.Admin
}

func (s *stubAdminStore) GetByEmail(_ context.Context, email string) (*model.Admin, error) {
	for i := range s.admins {
		if s.admins[i].Email == email {
			a := s.admins[i]
			return &a, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (s *stubAdminStore) Create(_ context.Context, a *model.Admin) error {
	for i := range s.admins {
		if s.admins[i].Email == a.Email {
			return repository.ErrDuplicateEmail
		}
	}
	a.ID = len(s.admins) + 1
	a.CreatedAt = time.Now()
	s.admins = append(s.admins, *a)
	return nil
}

var (
	_ StudentSurveyStore = (*stubStudentStore)(nil)
	_ TeacherSurveyStore = (*stubTeacherStore)(nil)
	_ QuestionStore      = (*stubQuestionStore)(nil)
	_ AdminStore         = (*stubAdminStore)(nil)
)

// Fixture builders shared across the service tests.

func strPtr(v string) *string { return &v }
func boolPtr(v bool) *bool    { return &v }

func studentFixture(id int, mutate func(*model.StudentSurvey)) model.StudentSurvey {
	phone := "+251911000000"
	exp := model.ExperienceBeginner
	rec := model.StudentSurvey{
		ID:                     id,
		FullName:               "Test Student",
		AgeRange:               model.AgeRange15to24,
		Gender:                 model.GenderFemale,
		PhoneNumber:            &phone,
		QuranExperience:        &exp,
		TakenOnlineLessons:     false,
		TimePreference:         model.TimeEvenings,
		PreferredSessionLength: 30,
		PreferredFrequency:     model.FrequencyTwiceWeek,
		FairPriceETB:           150,
		SubjectsOfInterest:     []string{"Quran Reading"},
		TrustFactors:           "reviews",
		WillingToTry:           true,
		DynamicResponses:       map[string]any{},
		SubmittedAt:            time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC).Add(time.Duration(id) * time.Minute),
	}
	if mutate != nil {
		mutate(&rec)
	}
	return rec
}

func teacherFixture(id int, mutate func(*model.TeacherSurvey)) model.TeacherSurvey {
	rec := model.TeacherSurvey{
		ID:                     id,
		FullName:               "Test Ustaz",
		AgeRange:               model.AgeRange24to32,
		Gender:                 model.GenderMale,
		PhoneNumber:            fmt.Sprintf("+2519110%05d", id),
		TeachingBackground:     model.BackgroundMadrasa,
		TriedOnlineTeaching:    false,
		TeachingChallenges:     "scheduling",
		StudentsPerWeek:        10,
		PreferredSessionLength: 45,
		FairRateETB:            200,
		ConfidentTopics:        []string{"Tajweed"},
		WouldJoinPlatform:      true,
		SupportNeeded:          "training",
		FeedbackPreferences:    "monthly",
		DynamicResponses:       map[string]any{},
		SubmittedAt:            time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC).Add(time.Duration(id) * time.Minute),
	}
	if mutate != nil {
		mutate(&rec)
	}
	return rec
}
