package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ustazlink/survey-backend/internal/model"
)

// ErrDuplicateIdentifier is returned when (survey_type, identifier) collides.
var ErrDuplicateIdentifier = errors.New("a question with this identifier already exists for this survey type")

const questionColumns = `id, survey_type, section, identifier, text_en, text_ar,
	question_type, options_en, options_ar, "order", is_active`

// QuestionFilter narrows catalog listings. Nil fields are ignored.
type QuestionFilter struct {
	SurveyType *model.SurveyType
	Section    *string
	IsActive   *bool
}

// SurveyQuestionRepository handles question catalog data access.
type SurveyQuestionRepository struct {
	pool *pgxpool.Pool
}

// NewSurveyQuestionRepository creates a new SurveyQuestionRepository.
func NewSurveyQuestionRepository(pool *pgxpool.Pool) *SurveyQuestionRepository {
	return &SurveyQuestionRepository{pool: pool}
}

// List retrieves catalog entries matching the filter, in display order.
func (r *SurveyQuestionRepository) List(ctx context.Context, f QuestionFilter) ([]model.SurveyQuestion, error) {
	query := `SELECT ` + questionColumns + ` FROM survey_questions`
	var args []interface{}
	var conds []string

	if f.SurveyType != nil {
		args = append(args, *f.SurveyType)
		conds = append(conds, `survey_type = $`+strconv.Itoa(len(args)))
	}
	if f.Section != nil {
		args = append(args, *f.Section)
		conds = append(conds, `section = $`+strconv.Itoa(len(args)))
	}
	if f.IsActive != nil {
		args = append(args, *f.IsActive)
		conds = append(conds, `is_active = $`+strconv.Itoa(len(args)))
	}
	for i, cond := range conds {
		if i == 0 {
			query += ` WHERE ` + cond
		} else {
			query += ` AND ` + cond
		}
	}
	query += ` ORDER BY "order", id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []model.SurveyQuestion
	for rows.Next() {
		var q model.SurveyQuestion
		if err := rows.Scan(&q.ID, &q.SurveyType, &q.Section, &q.Identifier, &q.TextEN, &q.TextAR,
			&q.QuestionType, &q.OptionsEN, &q.OptionsAR, &q.Order, &q.IsActive); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

// GetByID retrieves a single catalog entry.
func (r *SurveyQuestionRepository) GetByID(ctx context.Context, id int) (*model.SurveyQuestion, error) {
	q := &model.SurveyQuestion{}
	err := r.pool.QueryRow(ctx,
		`SELECT `+questionColumns+` FROM survey_questions WHERE id = $1`, id,
	).Scan(&q.ID, &q.SurveyType, &q.Section, &q.Identifier, &q.TextEN, &q.TextAR,
		&q.QuestionType, &q.OptionsEN, &q.OptionsAR, &q.Order, &q.IsActive)
	if err != nil {
		return nil, err
	}
	return q, nil
}

// Create inserts a new catalog entry.
func (r *SurveyQuestionRepository) Create(ctx context.Context, q *model.SurveyQuestion) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO survey_questions (survey_type, section, identifier, text_en, text_ar,
			question_type, options_en, options_ar, "order", is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id`,
		q.SurveyType, q.Section, q.Identifier, q.TextEN, q.TextAR,
		q.QuestionType, q.OptionsEN, q.OptionsAR, q.Order, q.IsActive,
	).Scan(&q.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateIdentifier
		}
		return err
	}
	return nil
}

// Update modifies an existing catalog entry. Identifier and survey type are
// immutable once created.
func (r *SurveyQuestionRepository) Update(ctx context.Context, q *model.SurveyQuestion) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE survey_questions
		 SET section = $1, text_en = $2, text_ar = $3, question_type = $4,
		     options_en = $5, options_ar = $6, "order" = $7, is_active = $8
		 WHERE id = $9`,
		q.Section, q.TextEN, q.TextAR, q.QuestionType,
		q.OptionsEN, q.OptionsAR, q.Order, q.IsActive, q.ID,
	)
	return err
}

// ReplaceAll deletes every question of the given survey type and inserts the
// provided set in order, all in one transaction. Returns the inserted count.
func (r *SurveyQuestionRepository) ReplaceAll(ctx context.Context, surveyType model.SurveyType, questions []model.SurveyQuestion) (int, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`DELETE FROM survey_questions WHERE survey_type = $1`, surveyType); err != nil {
		return 0, err
	}

	for i := range questions {
		q := &questions[i]
		if err := tx.QueryRow(ctx,
			`INSERT INTO survey_questions (survey_type, section, identifier, text_en, text_ar,
				question_type, options_en, options_ar, "order", is_active)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			 RETURNING id`,
			q.SurveyType, q.Section, q.Identifier, q.TextEN, q.TextAR,
			q.QuestionType, q.OptionsEN, q.OptionsAR, q.Order, q.IsActive,
		).Scan(&q.ID); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return len(questions), nil
}
