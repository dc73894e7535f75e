package service

import (
	"context"
	"time"

	"github.com/ustazlink/survey-backend/internal/model"
	"github.com/ustazlink/survey-backend/internal/repository"
)

// StudentSurveyStore is the persistence surface the services need for
// student responses. *repository.StudentSurveyRepository satisfies it.
type StudentSurveyStore interface {
	Create(ctx context.Context, s *model.StudentSurvey) error
	GetByID(ctx context.Context, id int) (*model.StudentSurvey, error)
	List(ctx context.Context) ([]model.StudentSurvey, error)
	ExistsByPhone(ctx context.Context, phone string) (bool, error)
	Count(ctx context.Context) (int, error)
	LastSubmittedAt(ctx context.Context) (*time.Time, error)
}

// TeacherSurveyStore is the persistence surface for teacher responses.
type TeacherSurveyStore interface {
	Create(ctx context.Context, t *model.TeacherSurvey) error
	GetByID(ctx context.Context, id int) (*model.TeacherSurvey, error)
	List(ctx context.Context) ([]model.TeacherSurvey, error)
	ExistsByPhone(ctx context.Context, phone string) (bool, error)
	Count(ctx context.Context) (int, error)
	LastSubmittedAt(ctx context.Context) (*time.Time, error)
}

// QuestionStore is the persistence surface for the question catalog.
type QuestionStore interface {
	List(ctx context.Context, f repository.QuestionFilter) ([]model.SurveyQuestion, error)
	GetByID(ctx context.Context, id int) (*model.SurveyQuestion, error)
	Create(ctx context.Context, q *model.SurveyQuestion) error
	Update(ctx context.Context, q *model.SurveyQuestion) error
	ReplaceAll(ctx context.Context, surveyType model.SurveyType, questions []model.SurveyQuestion) (int, error)
}

// AdminStore is the persistence surface for dashboard admins.
type AdminStore interface {
	GetByEmail(ctx context.Context, email string) (*model.Admin, error)
	Create(ctx context.Context, a *model.Admin) error
}

var (
	_ StudentSurveyStore = (*repository.StudentSurveyRepository)(nil)
	_ TeacherSurveyStore = (*repository.TeacherSurveyRepository)(nil)
	_ QuestionStore      = (*repository.SurveyQuestionRepository)(nil)
	_ AdminStore         = (*repository.AdminRepository)(nil)
)
