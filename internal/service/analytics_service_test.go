package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/ustazlink/survey-backend/internal/model"
)

func newAnalyticsService(students *stubStudentStore, teachers *stubTeacherStore) *AnalyticsService {
	return NewAnalyticsService(students, teachers, nil, time.Minute, zerolog.Nop())
}

func TestStudentAnalyticsDistributions(t *testing.T) {
	students := &stubStudentStore{records: []model.StudentSurvey{
		studentFixture(1, func(r *model.StudentSurvey) {
			exp := model.ExperienceBeginner
			r.QuranExperience = &exp
			r.PreferredSessionLength = 30
			r.FairPriceETB = 100
			r.WillingToTry = true
			r.TakenOnlineLessons = true
			r.SubjectsOfInterest = []string{"Quran Reading", "Tajweed"}
		}),
		studentFixture(2, func(r *model.StudentSurvey) {
			exp := model.ExperienceAdvanced
			r.QuranExperience = &exp
			r.PreferredSessionLength = 60
			r.FairPriceETB = 200
			r.WillingToTry = false
			r.SubjectsOfInterest = []string{"Tajweed"}
		}),
		studentFixture(3, func(r *model.StudentSurvey) {
			r.QuranExperience = nil
			r.PreferredSessionLength = 30
			r.FairPriceETB = 50
			r.WillingToTry = true
		}),
	}}

	svc := newAnalyticsService(students, &stubTeacherStore{})
	report, err := svc.StudentAnalytics(context.Background())
	if err != nil {
		t.Fatalf("StudentAnalytics: %v", err)
	}

	if report.TotalResponses != 3 {
		t.Errorf("TotalResponses = %d, want 3", report.TotalResponses)
	}
	// Unset experience is skipped, remaining buckets follow enum order.
	wantExp := []ValueCount{{"beginner", 1}, {"advanced", 1}}
	if len(report.ExperienceDistribution) != len(wantExp) {
		t.Fatalf("ExperienceDistribution = %v, want %v", report.ExperienceDistribution, wantExp)
	}
	for i, want := range wantExp {
		if report.ExperienceDistribution[i] != want {
			t.Errorf("ExperienceDistribution[%d] = %v, want %v", i, report.ExperienceDistribution[i], want)
		}
	}

	wantSessions := []SessionLengthCount{{30, 2}, {60, 1}}
	for i, want := range wantSessions {
		if report.SessionLengthPreferences[i] != want {
			t.Errorf("SessionLengthPreferences[%d] = %v, want %v", i, report.SessionLengthPreferences[i], want)
		}
	}

	if report.WillingnessToTry.Willing != 2 || report.WillingnessToTry.NotWilling != 1 {
		t.Errorf("WillingnessToTry = %+v, want 2/1", report.WillingnessToTry)
	}
	if report.OnlineExperience.Yes != 1 || report.OnlineExperience.No != 2 {
		t.Errorf("OnlineExperience = %+v, want 1/2", report.OnlineExperience)
	}

	// (100 + 200 + 50) / 3 = 116.67
	if report.AveragePrice != 116.67 {
		t.Errorf("AveragePrice = %v, want 116.67", report.AveragePrice)
	}

	if report.SubjectsInterest["Tajweed"] != 2 {
		t.Errorf("SubjectsInterest[Tajweed] = %d, want 2", report.SubjectsInterest["Tajweed"])
	}
	if report.AgeSubjectsInterest["15-24"]["Tajweed"] != 2 {
		t.Errorf("AgeSubjectsInterest[15-24][Tajweed] = %d, want 2",
			report.AgeSubjectsInterest["15-24"]["Tajweed"])
	}
}

func TestStudentAnalyticsEmpty(t *testing.T) {
	svc := newAnalyticsService(&stubStudentStore{}, &stubTeacherStore{})
	report, err := svc.StudentAnalytics(context.Background())
	if err != nil {
		t.Fatalf("StudentAnalytics: %v", err)
	}
	if report.TotalResponses != 0 {
		t.Errorf("TotalResponses = %d, want 0", report.TotalResponses)
	}
	if report.AveragePrice != 0 {
		t.Errorf("AveragePrice = %v, want 0", report.AveragePrice)
	}
	if len(report.ExperienceDistribution) != 0 {
		t.Errorf("ExperienceDistribution = %v, want empty", report.ExperienceDistribution)
	}
}

func TestTeacherAnalyticsAverages(t *testing.T) {
	teachers := &stubTeacherStore{records: []model.TeacherSurvey{
		teacherFixture(1, func(r *model.TeacherSurvey) {
			r.StudentsPerWeek = 5
			r.FairRateETB = 100
			r.WantsEarlyAccess = true
			r.TriedOnlineTeaching = true
			r.ConfidentTopics = []string{"Tajweed", "Hadith"}
		}),
		teacherFixture(2, func(r *model.TeacherSurvey) {
			r.StudentsPerWeek = 10
			r.FairRateETB = 250
			r.WouldJoinPlatform = false
			r.TeachingBackground = model.BackgroundMosque
			r.ConfidentTopics = []string{"Tajweed"}
		}),
	}}

	svc := newAnalyticsService(&stubStudentStore{}, teachers)
	report, err := svc.TeacherAnalytics(context.Background())
	if err != nil {
		t.Fatalf("TeacherAnalytics: %v", err)
	}

	if report.TotalResponses != 2 {
		t.Errorf("TotalResponses = %d, want 2", report.TotalResponses)
	}
	if report.AverageRate != 175 {
		t.Errorf("AverageRate = %v, want 175", report.AverageRate)
	}
	if report.AverageStudentsPerWeek != 7.5 {
		t.Errorf("AverageStudentsPerWeek = %v, want 7.5", report.AverageStudentsPerWeek)
	}
	if report.EarlyAccessInterest != 1 {
		t.Errorf("EarlyAccessInterest = %d, want 1", report.EarlyAccessInterest)
	}
	if report.PlatformInterest.WouldJoin != 1 || report.PlatformInterest.WouldNotJoin != 1 {
		t.Errorf("PlatformInterest = %+v, want 1/1", report.PlatformInterest)
	}
	if report.OnlineTeachingExperience.Tried != 1 || report.OnlineTeachingExperience.NotTried != 1 {
		t.Errorf("OnlineTeachingExperience = %+v, want 1/1", report.OnlineTeachingExperience)
	}
	if report.ConfidentTopics["Tajweed"] != 2 {
		t.Errorf("ConfidentTopics[Tajweed] = %d, want 2", report.ConfidentTopics["Tajweed"])
	}

	// Backgrounds keep enum order: madrasa before mosque.
	wantBackgrounds := []ValueCount{{"madrasa", 1}, {"mosque", 1}}
	for i, want := range wantBackgrounds {
		if report.BackgroundDistribution[i] != want {
			t.Errorf("BackgroundDistribution[%d] = %v, want %v", i, report.BackgroundDistribution[i], want)
		}
	}
}

func TestSummary(t *testing.T) {
	studentTime := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	teacherTime := time.Date(2025, 6, 3, 12, 0, 0, 0, time.UTC)

	students := &stubStudentStore{records: []model.StudentSurvey{
		studentFixture(1, func(r *model.StudentSurvey) { r.SubmittedAt = studentTime }),
	}}
	teachers := &stubTeacherStore{records: []model.TeacherSurvey{
		teacherFixture(1, func(r *model.TeacherSurvey) { r.SubmittedAt = teacherTime }),
	}}

	svc := newAnalyticsService(students, teachers)
	report, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}

	if report.TotalResponses != 2 || report.TotalStudentResponses != 1 || report.TotalTeacherResponses != 1 {
		t.Errorf("counts = %d/%d/%d, want 2/1/1",
			report.TotalResponses, report.TotalStudentResponses, report.TotalTeacherResponses)
	}
	if report.LastUpdated == nil || !report.LastUpdated.Equal(teacherTime) {
		t.Errorf("LastUpdated = %v, want %v", report.LastUpdated, teacherTime)
	}
}

func TestSummaryEmpty(t *testing.T) {
	svc := newAnalyticsService(&stubStudentStore{}, &stubTeacherStore{})
	report, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if report.TotalResponses != 0 {
		t.Errorf("TotalResponses = %d, want 0", report.TotalResponses)
	}
	if report.LastUpdated != nil {
		t.Errorf("LastUpdated = %v, want nil", report.LastUpdated)
	}
}
