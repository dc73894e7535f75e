package model

import "time"

// TeachingBackground is where the teacher gained their experience.
type TeachingBackground string

const (
	BackgroundMadrasa TeachingBackground = "madrasa"
	BackgroundMosque  TeachingBackground = "mosque"
	BackgroundPrivate TeachingBackground = "private"
	BackgroundOnline  TeachingBackground = "online"
	BackgroundMixed   TeachingBackground = "mixed"
)

// TeacherSurvey is one teacher (Ustaz) interview response.
// Phone is mandatory and unique for teachers.
type TeacherSurvey struct {
	ID                        int                `json:"id"`
	FullName                  string             `json:"full_name"`
	AgeRange                  AgeRange           `json:"age_range"`
	Gender                    Gender             `json:"gender"`
	PhoneNumber               string             `json:"phone_number"`
	TeachingBackground        TeachingBackground `json:"teaching_background"`
	TeachingBackgroundDetails string             `json:"teaching_background_details"`
	TriedOnlineTeaching       bool               `json:"tried_online_teaching"`
	OnlineTeachingReason      string             `json:"online_teaching_reason"`
	TeachingChallenges        string             `json:"teaching_challenges"`
	StudentsPerWeek           int                `json:"students_per_week"`
	PreferredSessionLength    int                `json:"preferred_session_length"`
	FairRateETB               float64            `json:"fair_rate_etb"`
	ConfidentTopics           []string           `json:"confident_topics"`
	WouldJoinPlatform         bool               `json:"would_join_platform"`
	SupportNeeded             string             `json:"support_needed"`
	PlatformConcerns          string             `json:"platform_concerns"`
	FeedbackPreferences       string             `json:"feedback_preferences"`
	WantsEarlyAccess          bool               `json:"wants_early_access"`
	EarlyAccessContact        string             `json:"early_access_contact"`
	DynamicResponses          map[string]any     `json:"dynamic_responses"`
	SubmittedAt               time.Time          `json:"submitted_at"`
	IPAddress                 *string            `json:"ip_address"`
}

// CreateTeacherSurveyRequest is the public submission payload.
type CreateTeacherSurveyRequest struct {
	FullName                  string             `json:"full_name" binding:"required"`
	AgeRange                  AgeRange           `json:"age_range" binding:"required,oneof=8-15 15-24 24-32 32-40 40+"`
	Gender                    Gender             `json:"gender" binding:"required,oneof=male female"`
	PhoneNumber               string             `json:"phone_number" binding:"required"`
	TeachingBackground        TeachingBackground `json:"teaching_background" binding:"required,oneof=madrasa mosque private online mixed"`
	TeachingBackgroundDetails string             `json:"teaching_background_details"`
	TriedOnlineTeaching       *bool              `json:"tried_online_teaching" binding:"required"`
	OnlineTeachingReason      string             `json:"online_teaching_reason"`
	TeachingChallenges        string             `json:"teaching_challenges" binding:"required"`
	StudentsPerWeek           int                `json:"students_per_week" binding:"gte=0"`
	PreferredSessionLength    int                `json:"preferred_session_length" binding:"required,oneof=20 30 45 60"`
	FairRateETB               float64            `json:"fair_rate_etb" binding:"gte=0"`
	ConfidentTopics           []string           `json:"confident_topics" binding:"required"`
	WouldJoinPlatform         *bool              `json:"would_join_platform" binding:"required"`
	SupportNeeded             string             `json:"support_needed" binding:"required"`
	PlatformConcerns          string             `json:"platform_concerns"`
	FeedbackPreferences       string             `json:"feedback_preferences" binding:"required"`
	WantsEarlyAccess          bool               `json:"wants_early_access"`
	EarlyAccessContact        string             `json:"early_access_contact"`
	DynamicResponses          map[string]any     `json:"dynamic_responses"`
}
