package config

import "fmt"

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// StudentAnalyticsKey returns the cache key for the student analytics report.
func (r *CacheKeyStruct) StudentAnalyticsKey() string {
	return "analytics:students"
}

// TeacherAnalyticsKey returns the cache key for the teacher analytics report.
func (r *CacheKeyStruct) TeacherAnalyticsKey() string {
	return "analytics:teachers"
}

// AnalyticsSummaryKey returns the cache key for the combined summary report.
func (r *CacheKeyStruct) AnalyticsSummaryKey() string {
	return "analytics:summary"
}

// SurveyAnalyticsKeys returns every cache key a new submission of the given
// survey type invalidates.
func (r *CacheKeyStruct) SurveyAnalyticsKeys(surveyType string) []string {
	return []string{
		fmt.Sprintf("analytics:%ss", surveyType),
		r.AnalyticsSummaryKey(),
	}
}

var CacheKey = NewCacheKeyStruct()
