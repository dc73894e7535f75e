package service

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/ustazlink/survey-backend/internal/config"
	"github.com/ustazlink/survey-backend/internal/logger"
	"github.com/ustazlink/survey-backend/internal/model"
)

// ValueCount is one group-by bucket of a categorical distribution.
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// SessionLengthCount is one bucket of the session-length distribution.
type SessionLengthCount struct {
	SessionLength int `json:"session_length"`
	Count         int `json:"count"`
}

// WillingSplit is a boolean split over platform interest.
type WillingSplit struct {
	Willing    int `json:"willing"`
	NotWilling int `json:"not_willing"`
}

// YesNoSplit is a boolean split over prior online-lesson experience.
type YesNoSplit struct {
	Yes int `json:"yes"`
	No  int `json:"no"`
}

// JoinSplit is a boolean split over teachers' platform interest.
type JoinSplit struct {
	WouldJoin    int `json:"would_join"`
	WouldNotJoin int `json:"would_not_join"`
}

// TriedSplit is a boolean split over prior online-teaching experience.
type TriedSplit struct {
	Tried    int `json:"tried"`
	NotTried int `json:"not_tried"`
}

// StudentAnalyticsReport aggregates the whole student table.
type StudentAnalyticsReport struct {
	TotalResponses           int                       `json:"total_responses"`
	ExperienceDistribution   []ValueCount              `json:"experience_distribution"`
	SessionLengthPreferences []SessionLengthCount      `json:"session_length_preferences"`
	FrequencyPreferences     []ValueCount              `json:"frequency_preferences"`
	TimePreferences          []ValueCount              `json:"time_preferences"`
	WillingnessToTry         WillingSplit              `json:"willingness_to_try"`
	OnlineExperience         YesNoSplit                `json:"online_experience"`
	AveragePrice             float64                   `json:"average_price"`
	SubjectsInterest         map[string]int            `json:"subjects_interest"`
	AgeDistribution          []ValueCount              `json:"age_distribution"`
	AgeSubjectsInterest      map[string]map[string]int `json:"age_subjects_interest"`
}

// TeacherAnalyticsReport aggregates the whole teacher table.
type TeacherAnalyticsReport struct {
	TotalResponses           int                  `json:"total_responses"`
	BackgroundDistribution   []ValueCount         `json:"background_distribution"`
	SessionLengthPreferences []SessionLengthCount `json:"session_length_preferences"`
	PlatformInterest         JoinSplit            `json:"platform_interest"`
	OnlineTeachingExperience TriedSplit           `json:"online_teaching_experience"`
	EarlyAccessInterest      int                  `json:"early_access_interest"`
	AverageStudentsPerWeek   float64              `json:"average_students_per_week"`
	AverageRate              float64              `json:"average_rate"`
	ConfidentTopics          map[string]int       `json:"confident_topics"`
	AgeDistribution          []ValueCount         `json:"age_distribution"`
}

// SummaryReport is the combined headline for both populations.
type SummaryReport struct {
	TotalStudentResponses int        `json:"total_student_responses"`
	TotalTeacherResponses int        `json:"total_teacher_responses"`
	TotalResponses        int        `json:"total_responses"`
	LastUpdated           *time.Time `json:"last_updated"`
}

// AnalyticsService computes read-only projections over the two response
// tables. Reads are not transactionally isolated from concurrent writes;
// slight skew between two counts in one report is accepted.
type AnalyticsService struct {
	students StudentSurveyStore
	teachers TeacherSurveyStore
	rdb      *redis.Client
	cacheTTL time.Duration
	log      zerolog.Logger
}

// NewAnalyticsService creates a new AnalyticsService. rdb may be nil to
// disable caching (used by tests).
func NewAnalyticsService(students StudentSurveyStore, teachers TeacherSurveyStore, rdb *redis.Client, cacheTTL time.Duration, log zerolog.Logger) *AnalyticsService {
	return &AnalyticsService{
		students: students,
		teachers: teachers,
		rdb:      rdb,
		cacheTTL: cacheTTL,
		log:      logger.Component(log, "analytics_service"),
	}
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round1(v float64) float64 { return math.Round(v*10) / 10 }

// StudentAnalytics builds the full student report, served from cache when
// fresh.
func (s *AnalyticsService) StudentAnalytics(ctx context.Context) (*StudentAnalyticsReport, error) {
	var cached StudentAnalyticsReport
	if s.cacheGet(ctx, config.CacheKey.StudentAnalyticsKey(), &cached) {
		return &cached, nil
	}

	records, err := s.students.List(ctx)
	if err != nil {
		return nil, err
	}

	report := buildStudentAnalytics(records)
	s.cacheSet(ctx, config.CacheKey.StudentAnalyticsKey(), report)
	return report, nil
}

func buildStudentAnalytics(records []model.StudentSurvey) *StudentAnalyticsReport {
	report := &StudentAnalyticsReport{
		TotalResponses:      len(records),
		SubjectsInterest:    map[string]int{},
		AgeSubjectsInterest: map[string]map[string]int{},
	}

	experience := map[string]int{}
	sessions := map[int]int{}
	frequencies := map[string]int{}
	times := map[string]int{}
	ages := map[string]int{}
	var priceSum float64

	for _, r := range records {
		if r.QuranExperience != nil {
			experience[string(*r.QuranExperience)]++
		}
		sessions[r.PreferredSessionLength]++
		frequencies[string(r.PreferredFrequency)]++
		times[string(r.TimePreference)]++
		ages[string(r.AgeRange)]++
		priceSum += r.FairPriceETB

		if r.WillingToTry {
			report.WillingnessToTry.Willing++
		} else {
			report.WillingnessToTry.NotWilling++
		}
		if r.TakenOnlineLessons {
			report.OnlineExperience.Yes++
		} else {
			report.OnlineExperience.No++
		}

		for _, subject := range r.SubjectsOfInterest {
			report.SubjectsInterest[subject]++
			bucket := report.AgeSubjectsInterest[string(r.AgeRange)]
			if bucket == nil {
				bucket = map[string]int{}
				report.AgeSubjectsInterest[string(r.AgeRange)] = bucket
			}
			bucket[subject]++
		}
	}

	report.ExperienceDistribution = buckets(experience,
		string(model.ExperienceBeginner), string(model.ExperienceIntermediate), string(model.ExperienceAdvanced))
	report.SessionLengthPreferences = sessionBuckets(sessions)
	report.FrequencyPreferences = buckets(frequencies,
		string(model.FrequencyOnceWeek), string(model.FrequencyTwiceWeek), string(model.FrequencyMore))
	report.TimePreferences = buckets(times,
		string(model.TimeMornings), string(model.TimeEvenings), string(model.TimeWeekends), string(model.TimeFlexible))
	report.AgeDistribution = ageBuckets(ages)

	if len(records) > 0 {
		report.AveragePrice = round2(priceSum / float64(len(records)))
	}
	return report
}

// TeacherAnalytics builds the full teacher report, served from cache when
// fresh.
func (s *AnalyticsService) TeacherAnalytics(ctx context.Context) (*TeacherAnalyticsReport, error) {
	var cached TeacherAnalyticsReport
	if s.cacheGet(ctx, config.CacheKey.TeacherAnalyticsKey(), &cached) {
		return &cached, nil
	}

	records, err := s.teachers.List(ctx)
	if err != nil {
		return nil, err
	}

	report := buildTeacherAnalytics(records)
	s.cacheSet(ctx, config.CacheKey.TeacherAnalyticsKey(), report)
	return report, nil
}

func buildTeacherAnalytics(records []model.TeacherSurvey) *TeacherAnalyticsReport {
	report := &TeacherAnalyticsReport{
		TotalResponses:  len(records),
		ConfidentTopics: map[string]int{},
	}

	backgrounds := map[string]int{}
	sessions := map[int]int{}
	ages := map[string]int{}
	var rateSum float64
	var studentsSum int

	for _, r := range records {
		backgrounds[string(r.TeachingBackground)]++
		sessions[r.PreferredSessionLength]++
		ages[string(r.AgeRange)]++
		rateSum += r.FairRateETB
		studentsSum += r.StudentsPerWeek

		if r.WouldJoinPlatform {
			report.PlatformInterest.WouldJoin++
		} else {
			report.PlatformInterest.WouldNotJoin++
		}
		if r.TriedOnlineTeaching {
			report.OnlineTeachingExperience.Tried++
		} else {
			report.OnlineTeachingExperience.NotTried++
		}
		if r.WantsEarlyAccess {
			report.EarlyAccessInterest++
		}

		for _, topic := range r.ConfidentTopics {
			report.ConfidentTopics[topic]++
		}
	}

	report.BackgroundDistribution = buckets(backgrounds,
		string(model.BackgroundMadrasa), string(model.BackgroundMosque), string(model.BackgroundPrivate),
		string(model.BackgroundOnline), string(model.BackgroundMixed))
	report.SessionLengthPreferences = sessionBuckets(sessions)
	report.AgeDistribution = ageBuckets(ages)

	if len(records) > 0 {
		report.AverageRate = round2(rateSum / float64(len(records)))
		report.AverageStudentsPerWeek = round1(float64(studentsSum) / float64(len(records)))
	}
	return report
}

// Summary returns the combined headline counts and the most recent
// submission time across both populations (nil when both tables are empty).
func (s *AnalyticsService) Summary(ctx context.Context) (*SummaryReport, error) {
	var cached SummaryReport
	if s.cacheGet(ctx, config.CacheKey.AnalyticsSummaryKey(), &cached) {
		return &cached, nil
	}

	studentCount, err := s.students.Count(ctx)
	if err != nil {
		return nil, err
	}
	teacherCount, err := s.teachers.Count(ctx)
	if err != nil {
		return nil, err
	}
	lastStudent, err := s.students.LastSubmittedAt(ctx)
	if err != nil {
		return nil, err
	}
	lastTeacher, err := s.teachers.LastSubmittedAt(ctx)
	if err != nil {
		return nil, err
	}

	var lastUpdated *time.Time
	switch {
	case lastStudent != nil && lastTeacher != nil:
		lastUpdated = lastStudent
		if lastTeacher.After(*lastStudent) {
			lastUpdated = lastTeacher
		}
	case lastStudent != nil:
		lastUpdated = lastStudent
	case lastTeacher != nil:
		lastUpdated = lastTeacher
	}

	report := &SummaryReport{
		TotalStudentResponses: studentCount,
		TotalTeacherResponses: teacherCount,
		TotalResponses:        studentCount + teacherCount,
		LastUpdated:           lastUpdated,
	}
	s.cacheSet(ctx, config.CacheKey.AnalyticsSummaryKey(), report)
	return report, nil
}

// buckets emits non-zero counts in the given enumeration order so report
// ordering is stable across runs.
func buckets(counts map[string]int, order ...string) []ValueCount {
	out := make([]ValueCount, 0, len(counts))
	for _, v := range order {
		if counts[v] > 0 {
			out = append(out, ValueCount{Value: v, Count: counts[v]})
		}
	}
	return out
}

func sessionBuckets(counts map[int]int) []SessionLengthCount {
	out := make([]SessionLengthCount, 0, len(counts))
	for _, l := range model.SessionLengths {
		if counts[l] > 0 {
			out = append(out, SessionLengthCount{SessionLength: l, Count: counts[l]})
		}
	}
	return out
}

func ageBuckets(counts map[string]int) []ValueCount {
	order := make([]string, 0, len(model.AgeRanges))
	for _, a := range model.AgeRanges {
		order = append(order, string(a))
	}
	return buckets(counts, order...)
}

func (s *AnalyticsService) cacheGet(ctx context.Context, key string, dst any) bool {
	if s.rdb == nil {
		return false
	}
	raw, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.Warn().Err(err).Str("key", key).Msg("analytics cache read failed")
		}
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("analytics cache entry corrupt")
		return false
	}
	return true
}

func (s *AnalyticsService) cacheSet(ctx context.Context, key string, value any) {
	if s.rdb == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, key, raw, s.cacheTTL).Err(); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("analytics cache write failed")
	}
}
