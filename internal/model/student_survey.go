package model

import "time"

// QuranExperience is the student's self-assessed Quran reading level.
type QuranExperience string

const (
	ExperienceBeginner     QuranExperience = "beginner"
	ExperienceIntermediate QuranExperience = "intermediate"
	ExperienceAdvanced     QuranExperience = "advanced"
)

// Frequency is the student's preferred lesson frequency.
type Frequency string

const (
	FrequencyOnceWeek  Frequency = "once_week"
	FrequencyTwiceWeek Frequency = "twice_week"
	FrequencyMore      Frequency = "more"
)

// TimePreference is when the student is generally free to study.
type TimePreference string

const (
	TimeMornings TimePreference = "mornings"
	TimeEvenings TimePreference = "evenings"
	TimeWeekends TimePreference = "weekends"
	TimeFlexible TimePreference = "flexible"
)

// StudentSurvey is one student interview response.
// submitted_at and ip_address are server-assigned and never client-settable.
type StudentSurvey struct {
	ID                     int              `json:"id"`
	FullName               string           `json:"full_name"`
	AgeRange               AgeRange         `json:"age_range"`
	Gender                 Gender           `json:"gender"`
	PhoneNumber            *string          `json:"phone_number"`
	QuranExperience        *QuranExperience `json:"quran_experience"`
	TakenOnlineLessons     bool             `json:"taken_online_lessons"`
	OnlineLessonsReason    string           `json:"online_lessons_reason"`
	TeacherChallenges      string           `json:"teacher_challenges"`
	TimePreference         TimePreference   `json:"time_preference"`
	PreferredSessionLength int              `json:"preferred_session_length"`
	PreferredFrequency     Frequency        `json:"preferred_frequency"`
	FairPriceETB           float64          `json:"fair_price_etb"`
	SubjectsOfInterest     []string         `json:"subjects_of_interest"`
	TrustFactors           string           `json:"trust_factors"`
	WillingToTry           bool             `json:"willing_to_try"`
	WillingToTryReason     string           `json:"willing_to_try_reason"`
	DesiredFeatures        string           `json:"desired_features"`
	DynamicResponses       map[string]any   `json:"dynamic_responses"`
	SubmittedAt            time.Time        `json:"submitted_at"`
	IPAddress              *string          `json:"ip_address"`
}

// CreateStudentSurveyRequest is the public submission payload.
// Phone is optional for students; when present it is normalized before insert.
type CreateStudentSurveyRequest struct {
	FullName               string           `json:"full_name" binding:"required"`
	AgeRange               AgeRange         `json:"age_range" binding:"required,oneof=8-15 15-24 24-32 32-40 40+"`
	Gender                 Gender           `json:"gender" binding:"required,oneof=male female"`
	PhoneNumber            *string          `json:"phone_number"`
	QuranExperience        *QuranExperience `json:"quran_experience" binding:"omitempty,oneof=beginner intermediate advanced"`
	TakenOnlineLessons     *bool            `json:"taken_online_lessons" binding:"required"`
	OnlineLessonsReason    string           `json:"online_lessons_reason"`
	TeacherChallenges      string           `json:"teacher_challenges" binding:"required"`
	TimePreference         TimePreference   `json:"time_preference" binding:"required,oneof=mornings evenings weekends flexible"`
	PreferredSessionLength int              `json:"preferred_session_length" binding:"required,oneof=20 30 45 60"`
	PreferredFrequency     Frequency        `json:"preferred_frequency" binding:"required,oneof=once_week twice_week more"`
	FairPriceETB           float64          `json:"fair_price_etb" binding:"gte=0"`
	SubjectsOfInterest     []string         `json:"subjects_of_interest" binding:"required"`
	TrustFactors           string           `json:"trust_factors" binding:"required"`
	WillingToTry           *bool            `json:"willing_to_try" binding:"required"`
	WillingToTryReason     string           `json:"willing_to_try_reason"`
	DesiredFeatures        string           `json:"desired_features"`
	DynamicResponses       map[string]any   `json:"dynamic_responses"`
}
