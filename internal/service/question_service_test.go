package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/ustazlink/survey-backend/internal/model"
	"github.com/ustazlink/survey-backend/internal/repository"
)

func newQuestionService(store *stubQuestionStore) *QuestionService {
	return NewQuestionService(store, zerolog.Nop())
}

func TestResetToDefaultsOrdering(t *testing.T) {
	store := &stubQuestionStore{}
	svc := newQuestionService(store)
	ctx := context.Background()

	count, err := svc.ResetToDefaults(ctx, model.SurveyTypeStudent)
	if err != nil {
		t.Fatalf("ResetToDefaults: %v", err)
	}
	if count != 14 {
		t.Errorf("count = %d, want 14", count)
	}

	questions, err := svc.List(ctx, repository.QuestionFilter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(questions) != 14 {
		t.Fatalf("len = %d, want 14", len(questions))
	}

	// Order is assigned sequentially across sections; every entry is active
	// and bilingual.
	wantSections := []string{"Quran Reading", "Tajweed", "Hadith", "Arabic Language", "Islamic Arts"}
	sectionIdx := 0
	for i, q := range questions {
		if q.Order != i {
			t.Errorf("questions[%d].Order = %d, want %d", i, q.Order, i)
		}
		if !q.IsActive {
			t.Errorf("questions[%d] inactive", i)
		}
		if q.TextEN == "" || q.TextAR == "" {
			t.Errorf("questions[%d] missing localized text", i)
		}
		for q.Section != wantSections[sectionIdx] {
			sectionIdx++
			if sectionIdx >= len(wantSections) {
				t.Fatalf("unexpected section order at %d: %s", i, q.Section)
			}
		}
	}
}

func TestResetToDefaultsReplacesExisting(t *testing.T) {
	store := &stubQuestionStore{}
	svc := newQuestionService(store)
	ctx := context.Background()

	if _, err := svc.Create(ctx, &model.CreateQuestionRequest{
		SurveyType: model.SurveyTypeStudent,
		Section:    "Custom",
		Identifier: "custom_q",
		TextEN:     "Custom?",
		TextAR:     "مخصص؟",
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	teacherCount, err := svc.ResetToDefaults(ctx, model.SurveyTypeTeacher)
	if err != nil {
		t.Fatalf("ResetToDefaults(teacher): %v", err)
	}
	if teacherCount != 9 {
		t.Errorf("teacher count = %d, want 9", teacherCount)
	}

	if _, err := svc.ResetToDefaults(ctx, model.SurveyTypeStudent); err != nil {
		t.Fatalf("ResetToDefaults(student): %v", err)
	}

	// Student reset wipes the custom student question but leaves the
	// teacher catalog alone.
	studentType := model.SurveyTypeStudent
	students, _ := svc.List(ctx, repository.QuestionFilter{SurveyType: &studentType})
	for _, q := range students {
		if q.Identifier == "custom_q" {
			t.Error("custom question survived the reset")
		}
	}
	teacherType := model.SurveyTypeTeacher
	teachers, _ := svc.List(ctx, repository.QuestionFilter{SurveyType: &teacherType})
	if len(teachers) != 9 {
		t.Errorf("teacher catalog len = %d, want 9", len(teachers))
	}
}

func TestCreateQuestionDefaults(t *testing.T) {
	svc := newQuestionService(&stubQuestionStore{})

	q, err := svc.Create(context.Background(), &model.CreateQuestionRequest{
		SurveyType: model.SurveyTypeStudent,
		Section:    "Tajweed",
		Identifier: "extra_q",
		TextEN:     "Extra?",
		TextAR:     "إضافي؟",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if q.QuestionType != model.QuestionTypeChoice {
		t.Errorf("QuestionType = %s, want choice", q.QuestionType)
	}
	if !q.IsActive {
		t.Error("IsActive should default to true")
	}
	if q.OptionsEN == nil || q.OptionsAR == nil {
		t.Error("options should default to empty slices")
	}
}

func TestCreateQuestionDuplicateIdentifier(t *testing.T) {
	svc := newQuestionService(&stubQuestionStore{})
	ctx := context.Background()

	req := &model.CreateQuestionRequest{
		SurveyType: model.SurveyTypeStudent,
		Section:    "Tajweed",
		Identifier: "dup_q",
		TextEN:     "Dup?",
		TextAR:     "مكرر؟",
	}
	if _, err := svc.Create(ctx, req); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	if _, err := svc.Create(ctx, req); !errors.Is(err, repository.ErrDuplicateIdentifier) {
		t.Errorf("err = %v, want ErrDuplicateIdentifier", err)
	}

	// Same identifier under the other survey type is fine.
	teacherReq := *req
	teacherReq.SurveyType = model.SurveyTypeTeacher
	if _, err := svc.Create(ctx, &teacherReq); err != nil {
		t.Errorf("cross-type Create: %v", err)
	}
}

func TestUpdateQuestionKeepsIdentity(t *testing.T) {
	store := &stubQuestionStore{}
	svc := newQuestionService(store)
	ctx := context.Background()

	created, err := svc.Create(ctx, &model.CreateQuestionRequest{
		SurveyType: model.SurveyTypeStudent,
		Section:    "Tajweed",
		Identifier: "level_q",
		TextEN:     "Level?",
		TextAR:     "المستوى؟",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.Update(ctx, created.ID, &model.UpdateQuestionRequest{
		Section:      "Tajweed",
		TextEN:       "Updated level?",
		TextAR:       "المستوى المحدث؟",
		QuestionType: model.QuestionTypeText,
		Order:        5,
		IsActive:     boolPtr(false),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Identifier != "level_q" || updated.SurveyType != model.SurveyTypeStudent {
		t.Errorf("identity changed: %+v", updated)
	}
	if updated.TextEN != "Updated level?" || updated.Order != 5 || updated.IsActive {
		t.Errorf("update not applied: %+v", updated)
	}
}
