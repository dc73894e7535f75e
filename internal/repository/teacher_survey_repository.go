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

const teacherColumns = `id, full_name, age_range, gender, phone_number, teaching_background,
	teaching_background_details, tried_online_teaching, online_teaching_reason,
	teaching_challenges, students_per_week, preferred_session_length, fair_rate_etb,
	confident_topics, would_join_platform, support_needed, platform_concerns,
	feedback_preferences, wants_early_access, early_access_contact,
	dynamic_responses, submitted_at, ip_address`

// TeacherSurveyRepository handles teacher survey data access.
type TeacherSurveyRepository struct {
	pool *pgxpool.Pool
}

// NewTeacherSurveyRepository creates a new TeacherSurveyRepository.
func NewTeacherSurveyRepository(pool *pgxpool.Pool) *TeacherSurveyRepository {
	return &TeacherSurveyRepository{pool: pool}
}

func scanTeacher(row pgx.Row, t *model.TeacherSurvey) error {
	return row.Scan(
		&t.ID, &t.FullName, &t.AgeRange, &t.Gender, &t.PhoneNumber, &t.TeachingBackground,
		&t.TeachingBackgroundDetails, &t.TriedOnlineTeaching, &t.OnlineTeachingReason,
		&t.TeachingChallenges, &t.StudentsPerWeek, &t.PreferredSessionLength, &t.FairRateETB,
		&t.ConfidentTopics, &t.WouldJoinPlatform, &t.SupportNeeded, &t.PlatformConcerns,
		&t.FeedbackPreferences, &t.WantsEarlyAccess, &t.EarlyAccessContact,
		&t.DynamicResponses, &t.SubmittedAt, &t.IPAddress,
	)
}

// Create inserts a new teacher survey response.
func (r *TeacherSurveyRepository) Create(ctx context.Context, t *model.TeacherSurvey) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO teacher_surveys (
			full_name, age_range, gender, phone_number, teaching_background,
			teaching_background_details, tried_online_teaching, online_teaching_reason,
			teaching_challenges, students_per_week, preferred_session_length, fair_rate_etb,
			confident_topics, would_join_platform, support_needed, platform_concerns,
			feedback_preferences, wants_early_access, early_access_contact,
			dynamic_responses, ip_address)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		 RETURNING id, submitted_at`,
		t.FullName, t.AgeRange, t.Gender, t.PhoneNumber, t.TeachingBackground,
		t.TeachingBackgroundDetails, t.TriedOnlineTeaching, t.OnlineTeachingReason,
		t.TeachingChallenges, t.StudentsPerWeek, t.PreferredSessionLength, t.FairRateETB,
		t.ConfidentTopics, t.WouldJoinPlatform, t.SupportNeeded, t.PlatformConcerns,
		t.FeedbackPreferences, t.WantsEarlyAccess, t.EarlyAccessContact,
		t.DynamicResponses, t.IPAddress,
	).Scan(&t.ID, &t.SubmittedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicatePhone
		}
		return err
	}
	return nil
}

// GetByID retrieves a single teacher survey response.
func (r *TeacherSurveyRepository) GetByID(ctx context.Context, id int) (*model.TeacherSurvey, error) {
	t := &model.TeacherSurvey{}
	err := scanTeacher(r.pool.QueryRow(ctx,
		`SELECT `+teacherColumns+` FROM teacher_surveys WHERE id = $1`, id), t)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// List retrieves all teacher survey responses, most recent first.
func (r *TeacherSurveyRepository) List(ctx context.Context) ([]model.TeacherSurvey, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+teacherColumns+` FROM teacher_surveys ORDER BY submitted_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var surveys []model.TeacherSurvey
	for rows.Next() {
		var t model.TeacherSurvey
		if err := scanTeacher(rows, &t); err != nil {
			return nil, err
		}
		surveys = append(surveys, t)
	}
	return surveys, rows.Err()
}

// ExistsByPhone reports whether any teacher response holds the canonical phone.
func (r *TeacherSurveyRepository) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM teacher_surveys WHERE phone_number = $1)`, phone,
	).Scan(&exists)
	return exists, err
}

// Count returns the total number of teacher responses.
func (r *TeacherSurveyRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM teacher_surveys`).Scan(&n)
	return n, err
}

// LastSubmittedAt returns the most recent submission time, or nil when empty.
func (r *TeacherSurveyRepository) LastSubmittedAt(ctx context.Context) (*time.Time, error) {
	var t *time.Time
	err := r.pool.QueryRow(ctx, `SELECT MAX(submitted_at) FROM teacher_surveys`).Scan(&t)
	return t, err
}
