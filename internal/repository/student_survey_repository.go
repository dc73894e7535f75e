package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ustazlink/survey-backend/internal/model"
)

// ErrDuplicatePhone is returned when the unique phone constraint is violated.
// Concurrent submissions with the same canonical phone race on the DB
// constraint; exactly one wins.
var ErrDuplicatePhone = errors.New("a response with this phone number already exists")

const studentColumns = `id, full_name, age_range, gender, phone_number, quran_experience,
	taken_online_lessons, online_lessons_reason, teacher_challenges, time_preference,
	preferred_session_length, preferred_frequency, fair_price_etb, subjects_of_interest,
	trust_factors, willing_to_try, willing_to_try_reason, desired_features,
	dynamic_responses, submitted_at, ip_address`

// StudentSurveyRepository handles student survey data access.
type StudentSurveyRepository struct {
	pool *pgxpool.Pool
}

// NewStudentSurveyRepository creates a new StudentSurveyRepository.
func NewStudentSurveyRepository(pool *pgxpool.Pool) *StudentSurveyRepository {
	return &StudentSurveyRepository{pool: pool}
}

func scanStudent(row pgx.Row, s *model.StudentSurvey) error {
	return row.Scan(
		&s.ID, &s.FullName, &s.AgeRange, &s.Gender, &s.PhoneNumber, &s.QuranExperience,
		&s.TakenOnlineLessons, &s.OnlineLessonsReason, &s.TeacherChallenges, &s.TimePreference,
		&s.PreferredSessionLength, &s.PreferredFrequency, &s.FairPriceETB, &s.SubjectsOfInterest,
		&s.TrustFactors, &s.WillingToTry, &s.WillingToTryReason, &s.DesiredFeatures,
		&s.DynamicResponses, &s.SubmittedAt, &s.IPAddress,
	)
}

// Create inserts a new student survey response. submitted_at is assigned by
// the database so insertion order and timestamp order agree.
func (r *StudentSurveyRepository) Create(ctx context.Context, s *model.StudentSurvey) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO student_surveys (
			full_name, age_range, gender, phone_number, quran_experience,
			taken_online_lessons, online_lessons_reason, teacher_challenges, time_preference,
			preferred_session_length, preferred_frequency, fair_price_etb, subjects_of_interest,
			trust_factors, willing_to_try, willing_to_try_reason, desired_features,
			dynamic_responses, ip_address)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		 RETURNING id, submitted_at`,
		s.FullName, s.AgeRange, s.Gender, s.PhoneNumber, s.QuranExperience,
		s.TakenOnlineLessons, s.OnlineLessonsReason, s.TeacherChallenges, s.TimePreference,
		s.PreferredSessionLength, s.PreferredFrequency, s.FairPriceETB, s.SubjectsOfInterest,
		s.TrustFactors, s.WillingToTry, s.WillingToTryReason, s.DesiredFeatures,
		s.DynamicResponses, s.IPAddress,
	).Scan(&s.ID, &s.SubmittedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicatePhone
		}
		return err
	}
	return nil
}

// GetByID retrieves a single student survey response.
func (r *StudentSurveyRepository) GetByID(ctx context.Context, id int) (*model.StudentSurvey, error) {
	s := &model.StudentSurvey{}
	err := scanStudent(r.pool.QueryRow(ctx,
		`SELECT `+studentColumns+` FROM student_surveys WHERE id = $1`, id), s)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// List retrieves all student survey responses, most recent first.
func (r *StudentSurveyRepository) List(ctx context.Context) ([]model.StudentSurvey, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+studentColumns+` FROM student_surveys ORDER BY submitted_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var surveys []model.StudentSurvey
	for rows.Next() {
		var s model.StudentSurvey
		if err := scanStudent(rows, &s); err != nil {
			return nil, err
		}
		surveys = append(surveys, s)
	}
	return surveys, rows.Err()
}

// ExistsByPhone reports whether any student response holds the canonical phone.
func (r *StudentSurveyRepository) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM student_surveys WHERE phone_number = $1)`, phone,
	).Scan(&exists)
	return exists, err
}

// Count returns the total number of student responses.
func (r *StudentSurveyRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM student_surveys`).Scan(&n)
	return n, err
}

// LastSubmittedAt returns the most recent submission time, or nil when empty.
func (r *StudentSurveyRepository) LastSubmittedAt(ctx context.Context) (*time.Time, error) {
	var t *time.Time
	err := r.pool.QueryRow(ctx, `SELECT MAX(submitted_at) FROM student_surveys`).Scan(&t)
	return t, err
}
