package service

import (
	"context"
	"testing"

	"github.com/ustazlink/survey-backend/internal/model"
)

func filterFixtures() (*stubStudentStore, *stubTeacherStore) {
	students := &stubStudentStore{records: []model.StudentSurvey{
		studentFixture(1, func(r *model.StudentSurvey) {
			r.Gender = model.GenderFemale
			r.AgeRange = model.AgeRange15to24
			r.FairPriceETB = 50
			r.PreferredSessionLength = 30
			r.WillingToTry = true
		}),
		studentFixture(2, func(r *model.StudentSurvey) {
			r.Gender = model.GenderMale
			r.AgeRange = model.AgeRange15to24
			r.FairPriceETB = 150
			r.PreferredSessionLength = 30
			r.WillingToTry = false
		}),
		studentFixture(3, func(r *model.StudentSurvey) {
			r.Gender = model.GenderMale
			r.AgeRange = model.AgeRange24to32
			r.FairPriceETB = 350
			r.PreferredSessionLength = 60
			r.WillingToTry = true
		}),
	}}
	teachers := &stubTeacherStore{records: []model.TeacherSurvey{
		teacherFixture(1, func(r *model.TeacherSurvey) {
			r.Gender = model.GenderMale
			r.FairRateETB = 100
			r.WouldJoinPlatform = true
		}),
		teacherFixture(2, func(r *model.TeacherSurvey) {
			r.Gender = model.GenderFemale
			r.FairRateETB = 300
			r.WouldJoinPlatform = false
		}),
	}}
	return students, teachers
}

func TestFilteredAnalyticsNoFilter(t *testing.T) {
	students, teachers := filterFixtures()
	svc := newAnalyticsService(students, teachers)

	report, err := svc.FilteredAnalytics(context.Background(), AnalyticsFilter{})
	if err != nil {
		t.Fatalf("FilteredAnalytics: %v", err)
	}

	if report.TotalStudents != 3 || report.TotalTeachers != 2 {
		t.Errorf("totals = %d/%d, want 3/2", report.TotalStudents, report.TotalTeachers)
	}

	// Cell counts must sum back to the filtered student total.
	var ageGenderSum, priceSessionSum int
	for _, cell := range report.AgeGenderMatrix {
		ageGenderSum += cell.Count
	}
	for _, cell := range report.PriceSessionMatrix {
		priceSessionSum += cell.Count
	}
	if ageGenderSum != report.TotalStudents {
		t.Errorf("age_gender_matrix sum = %d, want %d", ageGenderSum, report.TotalStudents)
	}
	if priceSessionSum != report.TotalStudents {
		t.Errorf("price_session_matrix sum = %d, want %d", priceSessionSum, report.TotalStudents)
	}

	// Non-zero cells only, in fixed enumeration order.
	wantAgeGender := []AgeGenderCell{
		{model.AgeRange15to24, model.GenderMale, 1},
		{model.AgeRange15to24, model.GenderFemale, 1},
		{model.AgeRange24to32, model.GenderMale, 1},
	}
	if len(report.AgeGenderMatrix) != len(wantAgeGender) {
		t.Fatalf("AgeGenderMatrix = %v, want %v", report.AgeGenderMatrix, wantAgeGender)
	}
	for i, want := range wantAgeGender {
		if report.AgeGenderMatrix[i] != want {
			t.Errorf("AgeGenderMatrix[%d] = %v, want %v", i, report.AgeGenderMatrix[i], want)
		}
	}

	wantPriceSession := []PriceSessionCell{
		{"0-100", 30, 1},
		{"100-200", 30, 1},
		{"300+", 60, 1},
	}
	for i, want := range wantPriceSession {
		if report.PriceSessionMatrix[i] != want {
			t.Errorf("PriceSessionMatrix[%d] = %v, want %v", i, report.PriceSessionMatrix[i], want)
		}
	}

	if report.AveragePrices.StudentPrice != 183.33 {
		t.Errorf("StudentPrice = %v, want 183.33", report.AveragePrices.StudentPrice)
	}
	if report.AveragePrices.TeacherRate != 200 {
		t.Errorf("TeacherRate = %v, want 200", report.AveragePrices.TeacherRate)
	}
}

func TestFilteredAnalyticsByGender(t *testing.T) {
	students, teachers := filterFixtures()
	svc := newAnalyticsService(students, teachers)

	gender := model.GenderMale
	report, err := svc.FilteredAnalytics(context.Background(), AnalyticsFilter{Gender: &gender})
	if err != nil {
		t.Fatalf("FilteredAnalytics: %v", err)
	}

	if report.TotalStudents != 2 {
		t.Errorf("TotalStudents = %d, want 2", report.TotalStudents)
	}
	if report.TotalTeachers != 1 {
		t.Errorf("TotalTeachers = %d, want 1", report.TotalTeachers)
	}
	if report.FiltersApplied.Gender == nil || *report.FiltersApplied.Gender != gender {
		t.Errorf("FiltersApplied.Gender = %v, want %v", report.FiltersApplied.Gender, gender)
	}
}

func TestFilteredAnalyticsPriceBounds(t *testing.T) {
	students, teachers := filterFixtures()
	svc := newAnalyticsService(students, teachers)

	min, max := 100.0, 200.0
	report, err := svc.FilteredAnalytics(context.Background(), AnalyticsFilter{MinPrice: &min, MaxPrice: &max})
	if err != nil {
		t.Fatalf("FilteredAnalytics: %v", err)
	}

	// Bounds are inclusive: student at 150 and teacher at 100 survive.
	if report.TotalStudents != 1 {
		t.Errorf("TotalStudents = %d, want 1", report.TotalStudents)
	}
	if report.TotalTeachers != 1 {
		t.Errorf("TotalTeachers = %d, want 1", report.TotalTeachers)
	}
}

func TestFilteredAnalyticsPlatformInterest(t *testing.T) {
	students, teachers := filterFixtures()
	svc := newAnalyticsService(students, teachers)

	interest := InterestWilling
	report, err := svc.FilteredAnalytics(context.Background(), AnalyticsFilter{PlatformInterest: &interest})
	if err != nil {
		t.Fatalf("FilteredAnalytics: %v", err)
	}

	if report.TotalStudents != 2 {
		t.Errorf("TotalStudents = %d, want 2", report.TotalStudents)
	}
	if report.TotalTeachers != 1 {
		t.Errorf("TotalTeachers = %d, want 1", report.TotalTeachers)
	}
	if report.PlatformInterest.Students.NotWilling != 0 {
		t.Errorf("Students.NotWilling = %d, want 0", report.PlatformInterest.Students.NotWilling)
	}
}

func TestFilteredAnalyticsFrequencyIgnoresTeachers(t *testing.T) {
	students, teachers := filterFixtures()
	svc := newAnalyticsService(students, teachers)

	frequency := model.FrequencyTwiceWeek
	report, err := svc.FilteredAnalytics(context.Background(), AnalyticsFilter{Frequency: &frequency})
	if err != nil {
		t.Fatalf("FilteredAnalytics: %v", err)
	}

	// All fixture students use twice_week; teachers have no frequency and
	// must pass through untouched.
	if report.TotalStudents != 3 {
		t.Errorf("TotalStudents = %d, want 3", report.TotalStudents)
	}
	if report.TotalTeachers != 2 {
		t.Errorf("TotalTeachers = %d, want 2", report.TotalTeachers)
	}
}
