package service

import (
	"context"

	"github.com/ustazlink/survey-backend/internal/model"
)

// PlatformInterestFilter is the tri-state platform-interest query value.
type PlatformInterestFilter string

const (
	InterestWilling    PlatformInterestFilter = "willing"
	InterestNotWilling PlatformInterestFilter = "not_willing"
)

// AnalyticsFilter narrows both populations. Nil fields are ignored. The
// price bounds are inclusive on both ends and apply to fair_price_etb for
// students and fair_rate_etb for teachers; Frequency only affects students.
type AnalyticsFilter struct {
	Gender           *model.Gender           `json:"gender"`
	AgeRange         *model.AgeRange         `json:"age_range"`
	MinPrice         *float64                `json:"min_price"`
	MaxPrice         *float64                `json:"max_price"`
	Frequency        *model.Frequency        `json:"frequency"`
	SessionLength    *int                    `json:"session_length"`
	PlatformInterest *PlatformInterestFilter `json:"platform_interest"`
}

type studentPredicate func(*model.StudentSurvey) bool
type teacherPredicate func(*model.TeacherSurvey) bool

func (f *AnalyticsFilter) studentPredicates() []studentPredicate {
	var preds []studentPredicate
	if f.Gender != nil {
		g := *f.Gender
		preds = append(preds, func(s *model.StudentSurvey) bool { return s.Gender == g })
	}
	if f.AgeRange != nil {
		a := *f.AgeRange
		preds = append(preds, func(s *model.StudentSurvey) bool { return s.AgeRange == a })
	}
	if f.MinPrice != nil {
		min := *f.MinPrice
		preds = append(preds, func(s *model.StudentSurvey) bool { return s.FairPriceETB >= min })
	}
	if f.MaxPrice != nil {
		max := *f.MaxPrice
		preds = append(preds, func(s *model.StudentSurvey) bool { return s.FairPriceETB <= max })
	}
	if f.Frequency != nil {
		fr := *f.Frequency
		preds = append(preds, func(s *model.StudentSurvey) bool { return s.PreferredFrequency == fr })
	}
	if f.SessionLength != nil {
		l := *f.SessionLength
		preds = append(preds, func(s *model.StudentSurvey) bool { return s.PreferredSessionLength == l })
	}
	if f.PlatformInterest != nil {
		want := *f.PlatformInterest == InterestWilling
		preds = append(preds, func(s *model.StudentSurvey) bool { return s.WillingToTry == want })
	}
	return preds
}

func (f *AnalyticsFilter) teacherPredicates() []teacherPredicate {
	var preds []teacherPredicate
	if f.Gender != nil {
		g := *f.Gender
		preds = append(preds, func(t *model.TeacherSurvey) bool { return t.Gender == g })
	}
	if f.AgeRange != nil {
		a := *f.AgeRange
		preds = append(preds, func(t *model.TeacherSurvey) bool { return t.AgeRange == a })
	}
	if f.MinPrice != nil {
		min := *f.MinPrice
		preds = append(preds, func(t *model.TeacherSurvey) bool { return t.FairRateETB >= min })
	}
	if f.MaxPrice != nil {
		max := *f.MaxPrice
		preds = append(preds, func(t *model.TeacherSurvey) bool { return t.FairRateETB <= max })
	}
	if f.SessionLength != nil {
		l := *f.SessionLength
		preds = append(preds, func(t *model.TeacherSurvey) bool { return t.PreferredSessionLength == l })
	}
	if f.PlatformInterest != nil {
		want := *f.PlatformInterest == InterestWilling
		preds = append(preds, func(t *model.TeacherSurvey) bool { return t.WouldJoinPlatform == want })
	}
	return preds
}

func filterStudents(records []model.StudentSurvey, preds []studentPredicate) []model.StudentSurvey {
	if len(preds) == 0 {
		return records
	}
	out := make([]model.StudentSurvey, 0, len(records))
outer:
	for i := range records {
		for _, p := range preds {
			if !p(&records[i]) {
				continue outer
			}
		}
		out = append(out, records[i])
	}
	return out
}

func filterTeachers(records []model.TeacherSurvey, preds []teacherPredicate) []model.TeacherSurvey {
	if len(preds) == 0 {
		return records
	}
	out := make([]model.TeacherSurvey, 0, len(records))
outer:
	for i := range records {
		for _, p := range preds {
			if !p(&records[i]) {
				continue outer
			}
		}
		out = append(out, records[i])
	}
	return out
}

// AgeGenderCell is one non-zero cell of the age × gender matrix.
type AgeGenderCell struct {
	AgeRange model.AgeRange `json:"age_range"`
	Gender   model.Gender   `json:"gender"`
	Count    int            `json:"count"`
}

// PriceSessionCell is one non-zero cell of the price-bucket × session-length
// matrix.
type PriceSessionCell struct {
	PriceRange    string `json:"price_range"`
	SessionLength int    `json:"session_length"`
	Count         int    `json:"count"`
}

// PopulationSplit holds the platform-interest split per population.
type PopulationSplit struct {
	Students WillingSplit `json:"students"`
	Teachers WillingSplit `json:"teachers"`
}

// AveragePrices holds the filtered per-population price means.
type AveragePrices struct {
	StudentPrice float64 `json:"student_price"`
	TeacherRate  float64 `json:"teacher_rate"`
}

// FilteredAnalyticsReport is the cross-population filtered report.
type FilteredAnalyticsReport struct {
	TotalStudents         int                  `json:"total_students"`
	TotalTeachers         int                  `json:"total_teachers"`
	FiltersApplied        AnalyticsFilter      `json:"filters_applied"`
	GenderDistribution    []ValueCount         `json:"gender_distribution"`
	AgeDistribution       []ValueCount         `json:"age_distribution"`
	SessionDistribution   []SessionLengthCount `json:"session_distribution"`
	FrequencyDistribution []ValueCount         `json:"frequency_distribution"`
	PlatformInterest      PopulationSplit      `json:"platform_interest"`
	AveragePrices         AveragePrices        `json:"average_prices"`
	AgeGenderMatrix       []AgeGenderCell      `json:"age_gender_matrix"`
	PriceSessionMatrix    []PriceSessionCell   `json:"price_session_matrix"`
}

// priceBucket is a half-open [Min, Max) price interval.
type priceBucket struct {
	Min   float64
	Max   float64
	Label string
}

var priceBuckets = []priceBucket{
	{0, 100, "0-100"},
	{100, 200, "100-200"},
	{200, 300, "200-300"},
	{300, 999999, "300+"},
}

// FilteredAnalytics applies the filter independently to both tables and
// builds the cross-population report. Distributions and matrices are
// computed over the filtered student set.
func (s *AnalyticsService) FilteredAnalytics(ctx context.Context, filter AnalyticsFilter) (*FilteredAnalyticsReport, error) {
	allStudents, err := s.students.List(ctx)
	if err != nil {
		return nil, err
	}
	allTeachers, err := s.teachers.List(ctx)
	if err != nil {
		return nil, err
	}

	students := filterStudents(allStudents, filter.studentPredicates())
	teachers := filterTeachers(allTeachers, filter.teacherPredicates())

	report := &FilteredAnalyticsReport{
		TotalStudents:  len(students),
		TotalTeachers:  len(teachers),
		FiltersApplied: filter,
	}

	genders := map[string]int{}
	ages := map[string]int{}
	sessions := map[int]int{}
	frequencies := map[string]int{}
	ageGender := map[model.AgeRange]map[model.Gender]int{}
	priceSession := map[string]map[int]int{}
	var priceSum, rateSum float64

	for _, r := range students {
		genders[string(r.Gender)]++
		ages[string(r.AgeRange)]++
		sessions[r.PreferredSessionLength]++
		frequencies[string(r.PreferredFrequency)]++
		priceSum += r.FairPriceETB

		if r.WillingToTry {
			report.PlatformInterest.Students.Willing++
		} else {
			report.PlatformInterest.Students.NotWilling++
		}

		if ageGender[r.AgeRange] == nil {
			ageGender[r.AgeRange] = map[model.Gender]int{}
		}
		ageGender[r.AgeRange][r.Gender]++

		for _, b := range priceBuckets {
			if r.FairPriceETB >= b.Min && r.FairPriceETB < b.Max {
				if priceSession[b.Label] == nil {
					priceSession[b.Label] = map[int]int{}
				}
				priceSession[b.Label][r.PreferredSessionLength]++
				break
			}
		}
	}

	for _, r := range teachers {
		rateSum += r.FairRateETB
		if r.WouldJoinPlatform {
			report.PlatformInterest.Teachers.Willing++
		} else {
			report.PlatformInterest.Teachers.NotWilling++
		}
	}

	report.GenderDistribution = buckets(genders, string(model.GenderMale), string(model.GenderFemale))
	report.AgeDistribution = ageBuckets(ages)
	report.SessionDistribution = sessionBuckets(sessions)
	report.FrequencyDistribution = buckets(frequencies,
		string(model.FrequencyOnceWeek), string(model.FrequencyTwiceWeek), string(model.FrequencyMore))

	if len(students) > 0 {
		report.AveragePrices.StudentPrice = round2(priceSum / float64(len(students)))
	}
	if len(teachers) > 0 {
		report.AveragePrices.TeacherRate = round2(rateSum / float64(len(teachers)))
	}

	// Only non-zero cells are emitted, in fixed enumeration order.
	report.AgeGenderMatrix = []AgeGenderCell{}
	for _, age := range model.AgeRanges {
		for _, gender := range model.Genders {
			if n := ageGender[age][gender]; n > 0 {
				report.AgeGenderMatrix = append(report.AgeGenderMatrix, AgeGenderCell{
					AgeRange: age, Gender: gender, Count: n,
				})
			}
		}
	}

	report.PriceSessionMatrix = []PriceSessionCell{}
	for _, b := range priceBuckets {
		for _, l := range model.SessionLengths {
			if n := priceSession[b.Label][l]; n > 0 {
				report.PriceSessionMatrix = append(report.PriceSessionMatrix, PriceSessionCell{
					PriceRange: b.Label, SessionLength: l, Count: n,
				})
			}
		}
	}

	return report, nil
}
